package feed

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/lysyi3m/informant/app/config"
)

type Fetcher struct {
	client    *http.Client
	parser    *Parser
	userAgent string
	noCache   bool

	now func() time.Time
}

func NewFetcher(userAgent string, noCache bool) *Fetcher {
	return &Fetcher{
		client:    &http.Client{},
		parser:    NewParser(),
		userAgent: userAgent,
		noCache:   noCache,
		now:       time.Now,
	}
}

// Fetch returns the entries of one configured source, consulting and
// updating its cache record. A cache body still within its max-age is
// parsed without any request; otherwise the request is made
// conditional with If-None-Match and a 304 reuses the cached body.
// Cache mutations are in-memory only; the store persists them on its
// next save.
func (f *Fetcher) Fetch(ctx context.Context, source config.Feed, cache *Cache) ([]Entry, error) {
	now := f.now()

	if !f.noCache && cache.Fresh(now) {
		slog.Debug("Using cached feed", "url", source.URL, "age", now.Sub(cache.LastRequest))
		return f.parser.Run(cache.Body)
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, time.Duration(source.Timeout)*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(timeoutCtx, "GET", source.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", f.userAgent)
	if !f.noCache && cache.ETag != "" {
		req.Header.Set("If-None-Match", cache.ETag)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to read response body: %w", err)
		}

		cache.ETag = resp.Header.Get("Etag")
		cache.Body = data
		cache.LastRequest = now
		cache.MaxAge = parseMaxAge(resp.Header.Get("Cache-Control"))

		return f.parser.Run(data)
	case http.StatusNotModified:
		slog.Debug("Feed not modified", "url", source.URL)
		cache.LastRequest = now
		if maxAge := parseMaxAge(resp.Header.Get("Cache-Control")); maxAge > 0 {
			cache.MaxAge = maxAge
		}
		return f.parser.Run(cache.Body)
	default:
		return nil, fmt.Errorf("HTTP error: %d %s", resp.StatusCode, resp.Status)
	}
}

// parseMaxAge extracts the max-age directive from a Cache-Control
// header, returning 0 when absent or malformed.
func parseMaxAge(header string) int {
	for _, directive := range strings.Split(header, ",") {
		directive = strings.TrimSpace(directive)
		if value, ok := strings.CutPrefix(directive, "max-age="); ok {
			age, err := strconv.Atoi(value)
			if err != nil || age < 0 {
				return 0
			}
			return age
		}
	}
	return 0
}
