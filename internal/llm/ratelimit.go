package llm

import (
	"context"
	"sync"
	"time"
)

// Category tags an LLM call with the kind of work it does. Each category has
// its own per-minute budget so one heavy workflow cannot starve the others.
type Category string

const (
	CategoryResumeAnalysis  Category = "resume_analysis"
	CategorySkillExtraction Category = "skill_extraction"
	CategoryMatchScoring    Category = "match_scoring"
	CategoryProfileParsing  Category = "profile_parsing"
)

// DefaultCategoryLimits are calls per minute per category.
var DefaultCategoryLimits = map[Category]int{
	CategoryResumeAnalysis:  10,
	CategorySkillExtraction: 20,
	CategoryMatchScoring:    15,
	CategoryProfileParsing:  10,
}

// MinuteLimiter caps LLM calls per category per wall-clock minute. Acquire
// blocks until the next minute boundary when the current one is exhausted,
// or returns early when the context is cancelled. Counters reset at each
// boundary rather than sliding, which matches how provider quotas meter.
type MinuteLimiter struct {
	mu     sync.Mutex
	limits map[Category]int
	counts map[Category]int
	window time.Time

	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration) error
}

// NewMinuteLimiter builds a limiter with the given per-category ceilings.
// Nil limits fall back to DefaultCategoryLimits; a category without an entry
// is unlimited.
func NewMinuteLimiter(limits map[Category]int) *MinuteLimiter {
	if limits == nil {
		limits = DefaultCategoryLimits
	}
	return &MinuteLimiter{
		limits: limits,
		counts: make(map[Category]int),
		now:    time.Now,
		sleep:  sleepCtx,
	}
}

// Acquire consumes one slot for the category, waiting across minute
// boundaries as needed.
func (l *MinuteLimiter) Acquire(ctx context.Context, cat Category) error {
	for {
		l.mu.Lock()
		nowMinute := l.now().Truncate(time.Minute)
		if !nowMinute.Equal(l.window) {
			l.window = nowMinute
			l.counts = make(map[Category]int)
		}
		limit, limited := l.limits[cat]
		if !limited || l.counts[cat] < limit {
			l.counts[cat]++
			l.mu.Unlock()
			return nil
		}
		wait := l.window.Add(time.Minute).Sub(l.now())
		l.mu.Unlock()

		if wait <= 0 {
			continue
		}
		if err := l.sleep(ctx, wait); err != nil {
			return err
		}
	}
}

// Remaining reports how many calls the category has left in the current
// minute. Purely informational, for logging and handlers.
func (l *MinuteLimiter) Remaining(cat Category) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	limit, limited := l.limits[cat]
	if !limited {
		return -1
	}
	if !l.now().Truncate(time.Minute).Equal(l.window) {
		return limit
	}
	left := limit - l.counts[cat]
	if left < 0 {
		return 0
	}
	return left
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
