package llm

import (
	"context"
	"errors"
	"testing"
	"time"
)

func newTestLimiter(limits map[Category]int) (*MinuteLimiter, *time.Time, *[]time.Duration) {
	clock := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	var slept []time.Duration
	l := NewMinuteLimiter(limits)
	l.now = func() time.Time { return clock }
	l.sleep = func(_ context.Context, d time.Duration) error {
		slept = append(slept, d)
		clock = clock.Add(d)
		return nil
	}
	return l, &clock, &slept
}

func TestMinuteLimiterAllowsUpToLimit(t *testing.T) {
	l, _, slept := newTestLimiter(map[Category]int{CategoryMatchScoring: 3})
	ctx := context.Background()
	for i := 0; i < 3; i++ {
		if err := l.Acquire(ctx, CategoryMatchScoring); err != nil {
			t.Fatalf("acquire %d: %v", i, err)
		}
	}
	if len(*slept) != 0 {
		t.Errorf("slept within budget: %v", *slept)
	}
	if got := l.Remaining(CategoryMatchScoring); got != 0 {
		t.Errorf("remaining = %d", got)
	}
}

func TestMinuteLimiterBlocksUntilNextMinute(t *testing.T) {
	l, clock, slept := newTestLimiter(map[Category]int{CategoryMatchScoring: 1})
	ctx := context.Background()

	*clock = clock.Add(15 * time.Second)
	if err := l.Acquire(ctx, CategoryMatchScoring); err != nil {
		t.Fatal(err)
	}
	if err := l.Acquire(ctx, CategoryMatchScoring); err != nil {
		t.Fatal(err)
	}
	// Second call had to wait the 45 seconds left in the minute.
	if len(*slept) != 1 || (*slept)[0] != 45*time.Second {
		t.Errorf("slept = %v", *slept)
	}
	if got := l.Remaining(CategoryMatchScoring); got != 0 {
		t.Errorf("remaining after rollover = %d", got)
	}
}

func TestMinuteLimiterCategoriesAreIndependent(t *testing.T) {
	l, _, slept := newTestLimiter(map[Category]int{
		CategoryMatchScoring:   1,
		CategoryResumeAnalysis: 1,
	})
	ctx := context.Background()
	if err := l.Acquire(ctx, CategoryMatchScoring); err != nil {
		t.Fatal(err)
	}
	if err := l.Acquire(ctx, CategoryResumeAnalysis); err != nil {
		t.Fatal(err)
	}
	if len(*slept) != 0 {
		t.Errorf("independent categories should not contend: %v", *slept)
	}
}

func TestMinuteLimiterHonorsCancellation(t *testing.T) {
	l, _, _ := newTestLimiter(map[Category]int{CategoryMatchScoring: 1})
	l.sleep = func(ctx context.Context, _ time.Duration) error { return ctx.Err() }

	ctx, cancel := context.WithCancel(context.Background())
	if err := l.Acquire(ctx, CategoryMatchScoring); err != nil {
		t.Fatal(err)
	}
	cancel()
	if err := l.Acquire(ctx, CategoryMatchScoring); !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestMinuteLimiterUnknownCategoryIsUnlimited(t *testing.T) {
	l, _, slept := newTestLimiter(map[Category]int{CategoryMatchScoring: 1})
	ctx := context.Background()
	for i := 0; i < 50; i++ {
		if err := l.Acquire(ctx, CategoryProfileParsing); err != nil {
			t.Fatal(err)
		}
	}
	if len(*slept) != 0 {
		t.Errorf("unlimited category slept: %v", *slept)
	}
}
