// Package aggregator composes the source adapters into the feeds the
// dashboard consumes. Source failures marked recoverable resolve to
// mock fallback data at this boundary; genuine errors surface to the
// caller.
package aggregator

import (
	"context"
	"log"

	"golang.org/x/sync/errgroup"

	"github.com/umputun/pulse/pkg/domain"
	"github.com/umputun/pulse/pkg/mockdata"
)

//go:generate moq -out mocks/sources.go -pkg mocks -skip-ensure -fmt goimports . NewsSource MovieSource MusicSource SocialSource RecommendationSource

// NewsSource provides category news feeds
type NewsSource interface {
	Fetch(ctx context.Context, categories []string, page int) ([]domain.ContentItem, error)
	Search(ctx context.Context, query string) ([]domain.ContentItem, error)
}

// MovieSource provides the movie catalog
type MovieSource interface {
	Fetch(ctx context.Context, page int) ([]domain.ContentItem, error)
	Search(ctx context.Context, query string) ([]domain.ContentItem, error)
}

// MusicSource provides music search
type MusicSource interface {
	Search(ctx context.Context, query string) ([]domain.ContentItem, error)
}

// SocialSource provides social posts, filtered views and search
type SocialSource interface {
	Posts(ctx context.Context) ([]domain.ContentItem, error)
	Trending(ctx context.Context, category string) ([]domain.ContentItem, error)
	ByHashtag(ctx context.Context, hashtag, platform string) ([]domain.ContentItem, error)
	ByUser(ctx context.Context, user string) ([]domain.ContentItem, error)
	ByPlatform(ctx context.Context, platform string) ([]domain.ContentItem, error)
	Search(ctx context.Context, query string) ([]domain.ContentItem, error)
}

// RecommendationSource provides the composed recommendation feed
type RecommendationSource interface {
	Recommendations(ctx context.Context) ([]domain.ContentItem, error)
}

// Aggregator fans out to the sources and merges their results
type Aggregator struct {
	news   NewsSource
	movies MovieSource
	music  MusicSource
	social SocialSource
	recs   RecommendationSource
}

// New creates an aggregator over the given sources
func New(news NewsSource, movies MovieSource, music MusicSource, social SocialSource, recs RecommendationSource) *Aggregator {
	return &Aggregator{news: news, movies: movies, music: music, social: social, recs: recs}
}

// FetchContent assembles the main feed for the selected categories.
// News covers every category except entertainment, which pulls the
// movie catalog instead. A news source answering successfully but
// empty still resolves to mock news, and an empty combined feed
// resolves to mock content for the full selection, so the feed is
// never empty because an upstream is down or dry.
func (a *Aggregator) FetchContent(ctx context.Context, categories []string, page int) ([]domain.ContentItem, error) {
	var newsItems, movieItems []domain.ContentItem

	newsCategories := make([]string, 0, len(categories))
	for _, c := range categories {
		if c != "entertainment" {
			newsCategories = append(newsCategories, c)
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	if len(newsCategories) > 0 {
		g.Go(func() error {
			items, err := a.news.Fetch(gctx, newsCategories, page)
			if err != nil && domain.IsSourceError(err) {
				log.Printf("[WARN] news feeds unavailable, using fallback: %v", err)
			}
			newsItems, err = domain.ResolveWithFallback(items, err, func() []domain.ContentItem {
				return newsFallback(newsCategories, page)
			})
			return err
		})
	}
	if contains(categories, "entertainment") {
		g.Go(func() error {
			items, err := a.movies.Fetch(gctx, page)
			if err != nil && domain.IsSourceError(err) {
				log.Printf("[WARN] movie catalog unavailable, using fallback: %v", err)
			}
			movieItems, err = domain.ResolveWithFallback(items, err, mockdata.MovieRecommendations)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if len(newsCategories) > 0 && len(newsItems) == 0 {
		newsItems = mockdata.Content(newsCategories, page)
	}

	res := append(newsItems, movieItems...)
	if len(res) == 0 {
		res = mockdata.Content(categories, page)
	}
	return res, nil
}

// Search queries every source and returns the union, news first, then
// movies, music and social posts. Sources failing recoverably
// contribute their mock results instead, and an empty union falls back
// to the mock keyword search.
func (a *Aggregator) Search(ctx context.Context, query string) ([]domain.ContentItem, error) {
	var newsItems, movieItems, musicItems, socialItems []domain.ContentItem

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		items, err := a.news.Search(gctx, query)
		newsItems, err = domain.ResolveWithFallback(items, err, func() []domain.ContentItem {
			return mockdata.Search(query)
		})
		return err
	})
	g.Go(func() error {
		items, err := a.movies.Search(gctx, query)
		movieItems, err = domain.ResolveWithFallback(items, err, func() []domain.ContentItem { return nil })
		return err
	})
	g.Go(func() error {
		items, err := a.music.Search(gctx, query)
		musicItems, err = domain.ResolveWithFallback(items, err, func() []domain.ContentItem {
			return mockdata.MusicSearch(query)
		})
		return err
	})
	g.Go(func() error {
		items, err := a.social.Search(gctx, query)
		socialItems, err = domain.ResolveWithFallback(items, err, func() []domain.ContentItem { return nil })
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	res := make([]domain.ContentItem, 0, len(newsItems)+len(movieItems)+len(musicItems)+len(socialItems))
	res = append(res, newsItems...)
	res = append(res, movieItems...)
	res = append(res, musicItems...)
	res = append(res, socialItems...)
	if len(res) == 0 {
		res = mockdata.Search(query)
	}
	return res, nil
}

// Recommendations returns the composed recommendation feed
func (a *Aggregator) Recommendations(ctx context.Context) ([]domain.ContentItem, error) {
	return a.recs.Recommendations(ctx)
}

// SocialPosts returns social posts matching the filter. Filter fields
// are exclusive; hashtag takes priority, then user, then category, then
// platform. A platform on a hashtag query narrows it instead.
func (a *Aggregator) SocialPosts(ctx context.Context, filter domain.SocialFilter) ([]domain.ContentItem, error) {
	switch {
	case filter.Hashtag != "":
		return a.social.ByHashtag(ctx, filter.Hashtag, filter.Platform)
	case filter.User != "":
		return a.social.ByUser(ctx, filter.User)
	case filter.Category != "":
		return a.social.Trending(ctx, filter.Category)
	case filter.Platform != "":
		return a.social.ByPlatform(ctx, filter.Platform)
	}
	return a.social.Posts(ctx)
}

// newsFallback builds per-category mock feed items, switching to the
// generic corpus when no requested category has a mock feed.
func newsFallback(categories []string, page int) []domain.ContentItem {
	res := make([]domain.ContentItem, 0)
	for _, category := range categories {
		res = append(res, mockdata.RSSFallback(category)...)
	}
	if len(res) == 0 {
		res = mockdata.Content(categories, page)
	}
	return res
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
