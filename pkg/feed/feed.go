// Package feed implements the RSS news source. It fans out over the
// configured per-category feeds, normalizes entries into content items
// and caches assembled batches.
package feed

import (
	"context"
	"log"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/mmcdole/gofeed"
	"golang.org/x/sync/errgroup"

	"github.com/umputun/pulse/pkg/cache"
	"github.com/umputun/pulse/pkg/domain"
)

const (
	maxFetchItems  = 20
	maxSearchItems = 15
	maxDescription = 200
)

// Adapter fetches and normalizes RSS feeds for a set of categories
type Adapter struct {
	feeds    map[string][]string
	cache    *cache.Cache
	timeout  time.Duration
	parser   *gofeed.Parser
	sanitize *bluemonday.Policy
	now      func() time.Time
}

// Option configures the adapter
type Option func(*Adapter)

// WithClock overrides the time source, used in tests
func WithClock(now func() time.Time) Option {
	return func(a *Adapter) { a.now = now }
}

// New creates a feed adapter. The cache should carry the RSS TTL and
// timeout bounds each individual feed fetch.
func New(feeds map[string][]string, c *cache.Cache, timeout time.Duration, opts ...Option) *Adapter {
	a := &Adapter{
		feeds:    feeds,
		cache:    c,
		timeout:  timeout,
		parser:   gofeed.NewParser(),
		sanitize: bluemonday.StrictPolicy(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Fetch returns normalized items for the requested categories, newest
// first and capped at 20. Batches are cached per category set and page;
// a later page re-fetches with a fresh batch timestamp, so its item IDs
// never collide with an earlier page of the same feed. When every feed
// fails the error is a recoverable *domain.SourceError so the caller
// can resolve it with fallback data.
func (a *Adapter) Fetch(ctx context.Context, categories []string, page int) ([]domain.ContentItem, error) {
	sorted := append([]string(nil), categories...)
	sort.Strings(sorted)
	key := cache.Key("rss", struct {
		Categories []string `json:"categories"`
		Page       int      `json:"page"`
	}{sorted, page})

	if items, ok := a.cache.Get(key); ok {
		return items, nil
	}

	batch := a.now()
	var mu sync.Mutex
	var items []domain.ContentItem
	attempted, failed := 0, 0
	var lastErr error

	g, gctx := errgroup.WithContext(ctx)
	for _, category := range sorted {
		for _, feedURL := range a.feeds[category] {
			attempted++
			g.Go(func() error {
				fetched, err := a.fetchOne(gctx, feedURL, category, batch)
				mu.Lock()
				defer mu.Unlock()
				if err != nil {
					log.Printf("[WARN] feed %s failed: %v", feedURL, err)
					failed++
					lastErr = err
					return nil // single feed failures never abort the batch
				}
				items = append(items, fetched...)
				return nil
			})
		}
	}
	_ = g.Wait() // goroutines swallow their errors

	if attempted > 0 && failed == attempted {
		return nil, domain.NewSourceError("rss", domain.ReasonUnavailable, lastErr)
	}

	items = dedupe(items)
	sort.Slice(items, func(i, j int) bool { return items[i].PublishedAt.After(items[j].PublishedAt) })
	if len(items) > maxFetchItems {
		items = items[:maxFetchItems]
	}

	a.cache.Set(key, items)
	return items, nil
}

// Search fetches every configured feed regardless of the caller's
// subscriptions and filters items by query against title and
// description, capped at 15. Results are cached per query.
func (a *Adapter) Search(ctx context.Context, query string) ([]domain.ContentItem, error) {
	key := cache.Key("rss-search", query)

	if items, ok := a.cache.Get(key); ok {
		return items, nil
	}

	all := make([]string, 0, len(a.feeds))
	for category := range a.feeds {
		all = append(all, category)
	}

	fetched, err := a.Fetch(ctx, all, 1)
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(query)
	matched := make([]domain.ContentItem, 0, len(fetched))
	for _, it := range fetched {
		if strings.Contains(strings.ToLower(it.Title), q) || strings.Contains(strings.ToLower(it.Description), q) {
			matched = append(matched, it)
			if len(matched) == maxSearchItems {
				break
			}
		}
	}

	a.cache.Set(key, matched)
	return matched, nil
}

// fetchOne retrieves a single feed with its own timeout and converts
// entries to content items.
func (a *Adapter) fetchOne(ctx context.Context, feedURL, category string, batch time.Time) ([]domain.ContentItem, error) {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	feed, err := a.parser.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return nil, err
	}

	source := feed.Title
	if source == "" {
		source = feedURL
	}

	items := make([]domain.ContentItem, 0, len(feed.Items))
	for i, item := range feed.Items {
		published := batch
		if item.PublishedParsed != nil {
			published = *item.PublishedParsed
		} else if item.UpdatedParsed != nil {
			published = *item.UpdatedParsed
		}

		items = append(items, domain.ContentItem{
			ID:          domain.BatchID(category, batch, i),
			Title:       a.clean(item.Title, 0),
			Description: a.clean(item.Description, maxDescription),
			ImageURL:    extractImage(item, category, i),
			Category:    category,
			Source:      source,
			PublishedAt: published,
			URL:         item.Link,
			Type:        domain.TypeNews,
		})
	}
	return items, nil
}

// clean strips HTML from a feed field and optionally truncates it on a
// rune boundary so multi-byte characters are never split.
func (a *Adapter) clean(s string, limit int) string {
	res := strings.TrimSpace(a.sanitize.Sanitize(s))
	if limit > 0 && len(res) > limit {
		if r := []rune(res); len(r) > limit {
			res = string(r[:limit]) + "..."
		}
	}
	return res
}

// dedupe drops items repeating an already seen title and publish time,
// the same story syndicated through multiple feeds.
func dedupe(items []domain.ContentItem) []domain.ContentItem {
	seen := make(map[string]bool, len(items))
	res := items[:0]
	for _, it := range items {
		k := it.Title + "|" + it.PublishedAt.UTC().Format(time.RFC3339)
		if seen[k] {
			continue
		}
		seen[k] = true
		res = append(res, it)
	}
	return res
}
