package news

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/mmcdole/gofeed"
	"golang.org/x/sync/errgroup"

	"github.com/brieflyhq/briefly/pkg/config"
	"github.com/brieflyhq/briefly/pkg/content"
	"github.com/brieflyhq/briefly/pkg/domain"
)

// snippetLen caps backfilled story descriptions
const snippetLen = 280

// ArticleExtractor backfills descriptions for feed entries that carry none
type ArticleExtractor interface {
	Snippet(ctx context.Context, url string, maxLen int) (string, error)
}

// Fetcher pulls stories from configured RSS feeds, keyed by category
type Fetcher struct {
	feeds     map[string][]string
	client    *http.Client
	userAgent string
	sanitize  *bluemonday.Policy
	extractor ArticleExtractor
}

// NewFetcher creates a feed fetcher from news configuration
func NewFetcher(cfg config.NewsConfig) *Fetcher {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 15 * time.Second
	}
	return &Fetcher{
		feeds: cfg.Feeds,
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		userAgent: cfg.UserAgent,
		sanitize:  bluemonday.StrictPolicy(),
		extractor: content.NewExtractor(timeout),
	}
}

// Enabled reports whether any feeds are configured
func (f *Fetcher) Enabled() bool {
	return len(f.feeds) > 0
}

// Fetch retrieves stories for the requested categories concurrently, up
// to three per feed. Categories without configured feeds are skipped; a
// failure on any feed fails the whole fetch so the caller can fall back.
func (f *Fetcher) Fetch(ctx context.Context, categories []string) ([]domain.NewsItem, error) {
	var mu sync.Mutex
	var items []domain.NewsItem

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(4)

	for _, category := range categories {
		for _, url := range f.feeds[category] {
			g.Go(func() error {
				fetched, err := f.fetchFeed(ctx, category, url)
				if err != nil {
					return fmt.Errorf("fetch %s feed %s: %w", category, url, err)
				}
				mu.Lock()
				items = append(items, fetched...)
				mu.Unlock()
				return nil
			})
		}
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return items, nil
}

// fetchFeed retrieves and parses a single feed
func (f *Fetcher) fetchFeed(ctx context.Context, category, url string) ([]domain.NewsItem, error) {
	body, err := f.get(ctx, url)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	parser := gofeed.NewParser()
	feed, err := parser.Parse(body)
	if err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}

	items := make([]domain.NewsItem, 0, 3)
	for i, entry := range feed.Items {
		if i >= 3 {
			break
		}

		item := domain.NewsItem{
			Title:       entry.Title,
			Description: f.sanitize.Sanitize(entry.Description),
			Category:    category,
			Source:      feed.Title,
			URL:         entry.Link,
			Relevance:   0.5,
		}
		if entry.PublishedParsed != nil {
			item.PublishedAt = *entry.PublishedParsed
		}
		// some feeds publish bare links, backfill from the article itself
		if item.Description == "" && item.URL != "" && f.extractor != nil {
			if snippet, err := f.extractor.Snippet(ctx, item.URL, snippetLen); err == nil {
				item.Description = snippet
			}
		}
		items = append(items, item)
	}
	return items, nil
}

// get retrieves content from a URL
func (f *Fetcher) get(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch URL: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return resp.Body, nil
}
