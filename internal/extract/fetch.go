package extract

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"time"
)

var linkedinURLRe = regexp.MustCompile(`^https?://([a-z]{2,3}\.)?linkedin\.com/in/[A-Za-z0-9\-_%]+/?`)

const (
	fetchTimeout  = 30 * time.Second
	maxFetchBytes = 5 << 20
)

// Fetcher downloads profile pages for extraction.
type Fetcher struct {
	client *http.Client
}

// NewFetcher constructs a Fetcher with a bounded request timeout.
func NewFetcher() *Fetcher {
	return &Fetcher{client: &http.Client{Timeout: fetchTimeout}}
}

// FetchProfile downloads the HTML of a LinkedIn profile URL.
// The URL must look like a profile page; anything else is rejected up front.
func (f *Fetcher) FetchProfile(ctx context.Context, url string) (string, error) {
	if !linkedinURLRe.MatchString(url) {
		return "", fmt.Errorf("not a linkedin profile url: %s", url)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; recruit-backend/1.0)")
	req.Header.Set("Accept", "text/html")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch profile: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch profile: status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxFetchBytes))
	if err != nil {
		return "", fmt.Errorf("fetch profile: read: %w", err)
	}
	return string(body), nil
}
