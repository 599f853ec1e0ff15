// Package recommend composes the recommendation feed from the movie
// catalog, the music source and the curated content picks. Movies come
// from a watch-history cross-reference plus favorite-genre discovery,
// music from personalized recommendations with a new-releases fallback
// tier. The two legs run concurrently, recoverable failures resolve to
// mock data, and the merged batch is shuffled so no single source
// dominates the top of the feed.
package recommend

import (
	"context"
	"log"
	"math/rand"

	"golang.org/x/sync/errgroup"

	"github.com/umputun/pulse/pkg/domain"
	"github.com/umputun/pulse/pkg/mockdata"
)

//go:generate moq -out mocks/movie_source.go -pkg mocks -skip-ensure -fmt goimports . MovieSource
//go:generate moq -out mocks/music_source.go -pkg mocks -skip-ensure -fmt goimports . MusicSource

// MovieSource provides movie lookups for the recommendation feed
type MovieSource interface {
	Similar(ctx context.Context, title string) ([]domain.ContentItem, error)
	DiscoverGenre(ctx context.Context, genre string) ([]domain.ContentItem, error)
}

// MusicSource provides music recommendations and the new-releases
// fallback tier.
type MusicSource interface {
	Recommendations(ctx context.Context) ([]domain.ContentItem, error)
	NewReleases(ctx context.Context) ([]domain.ContentItem, error)
}

// profile fixtures standing in for a real user model; the first
// historyDepth titles and genreDepth genres drive the movie leg.
var (
	watchHistory   = []string{"The Matrix", "Inception", "Interstellar", "Mad Max"}
	favoriteGenres = []string{"action", "drama", "comedy", "sci-fi"}
)

const (
	historyDepth = 2
	genreDepth   = 1
)

// Composer assembles the mixed recommendation feed
type Composer struct {
	movies  MovieSource
	music   MusicSource
	shuffle func(n int, swap func(i, j int))
}

// Option configures the composer
type Option func(*Composer)

// WithShuffle overrides the shuffle function, used in tests
func WithShuffle(shuffle func(n int, swap func(i, j int))) Option {
	return func(c *Composer) { c.shuffle = shuffle }
}

// New creates a composer over the given sources
func New(movies MovieSource, music MusicSource, opts ...Option) *Composer {
	c := &Composer{movies: movies, music: music, shuffle: rand.Shuffle}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Recommendations fetches the movie and music legs concurrently and
// returns the shuffled union with the curated content picks appended.
// A leg that fails recoverably contributes its mock fallback instead of
// an error.
func (c *Composer) Recommendations(ctx context.Context) ([]domain.ContentItem, error) {
	var movieItems, musicItems []domain.ContentItem

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		movieItems, err = c.movieLeg(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		musicItems, err = c.musicLeg(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	res := make([]domain.ContentItem, 0, len(movieItems)+len(musicItems)+3)
	res = append(res, movieItems...)
	res = append(res, musicItems...)
	res = append(res, mockdata.ContentRecommendations()...)

	c.shuffle(len(res), func(i, j int) { res[i], res[j] = res[j], res[i] })
	return res, nil
}

// movieLeg cross-references the watch history for similar movies and
// adds favorite-genre discovery. A failed lookup is skipped; an empty
// leg falls back to the mock picks.
func (c *Composer) movieLeg(ctx context.Context) ([]domain.ContentItem, error) {
	var res []domain.ContentItem

	for _, title := range watchHistory[:historyDepth] {
		items, err := c.movies.Similar(ctx, title)
		if err != nil {
			if !domain.IsSourceError(err) {
				return nil, err
			}
			log.Printf("[WARN] similar movies for %q unavailable: %v", title, err)
			continue
		}
		res = append(res, items...)
	}

	for _, genre := range favoriteGenres[:genreDepth] {
		items, err := c.movies.DiscoverGenre(ctx, genre)
		if err != nil {
			if !domain.IsSourceError(err) {
				return nil, err
			}
			log.Printf("[WARN] genre discovery for %q unavailable: %v", genre, err)
			continue
		}
		res = append(res, items...)
	}

	if len(res) == 0 {
		res = mockdata.MovieRecommendations()
	}
	return res, nil
}

// musicLeg tries personalized recommendations, then new releases, then
// the mock catalog. Only a non-recoverable error stops the chain.
func (c *Composer) musicLeg(ctx context.Context) ([]domain.ContentItem, error) {
	items, err := c.music.Recommendations(ctx)
	if err != nil && !domain.IsSourceError(err) {
		return nil, err
	}
	if err == nil && len(items) > 0 {
		return items, nil
	}
	if err != nil {
		log.Printf("[WARN] music recommendations unavailable, trying new releases: %v", err)
	}

	releases, err := c.music.NewReleases(ctx)
	if err != nil && !domain.IsSourceError(err) {
		return nil, err
	}
	if err == nil && len(releases) > 0 {
		return releases, nil
	}
	if err != nil {
		log.Printf("[WARN] new releases unavailable, using mock catalog: %v", err)
	}

	return mockdata.MusicRecommendations(), nil
}
