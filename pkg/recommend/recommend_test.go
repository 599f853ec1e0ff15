package recommend

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/pulse/pkg/domain"
	"github.com/umputun/pulse/pkg/recommend/mocks"
)

// noShuffle keeps the merged order, movies then music then content
func noShuffle(int, func(i, j int)) {}

func similarItem(title string) []domain.ContentItem {
	return []domain.ContentItem{{ID: "sim-" + title, Title: "Like " + title, Type: domain.TypeRecommendation}}
}

func genreItems() []domain.ContentItem {
	return []domain.ContentItem{{ID: "g1", Title: "Genre Pick", Type: domain.TypeRecommendation}}
}

func musicItems() []domain.ContentItem {
	return []domain.ContentItem{{ID: "s1", Title: "Song One", Type: domain.TypeRecommendation}}
}

func okMovies() *mocks.MovieSourceMock {
	return &mocks.MovieSourceMock{
		SimilarFunc: func(_ context.Context, title string) ([]domain.ContentItem, error) {
			return similarItem(title), nil
		},
		DiscoverGenreFunc: func(context.Context, string) ([]domain.ContentItem, error) {
			return genreItems(), nil
		},
	}
}

func okMusic() *mocks.MusicSourceMock {
	return &mocks.MusicSourceMock{
		RecommendationsFunc: func(context.Context) ([]domain.ContentItem, error) { return musicItems(), nil },
	}
}

func TestComposer_Recommendations(t *testing.T) {
	movies := okMovies()
	music := okMusic()

	c := New(movies, music, WithShuffle(noShuffle))
	items, err := c.Recommendations(context.Background())
	require.NoError(t, err)

	require.Len(t, items, 7, "2 history matches + 1 genre pick + 1 song + 3 curated picks")
	assert.Equal(t, "Like The Matrix", items[0].Title)
	assert.Equal(t, "Like Inception", items[1].Title)
	assert.Equal(t, "Genre Pick", items[2].Title)
	assert.Equal(t, "Song One", items[3].Title)
	assert.Equal(t, "The Future of AI in 2024", items[4].Title)

	similar := movies.SimilarCalls()
	require.Len(t, similar, 2, "first two watch-history titles cross-referenced")
	assert.Equal(t, "The Matrix", similar[0].Title)
	assert.Equal(t, "Inception", similar[1].Title)

	genres := movies.DiscoverGenreCalls()
	require.Len(t, genres, 1)
	assert.Equal(t, "action", genres[0].Genre)

	assert.Len(t, music.RecommendationsCalls(), 1)
	assert.Empty(t, music.NewReleasesCalls(), "new releases untouched when recommendations answer")
}

func TestComposer_Recommendations_MovieFallback(t *testing.T) {
	movies := &mocks.MovieSourceMock{
		SimilarFunc: func(context.Context, string) ([]domain.ContentItem, error) {
			return nil, domain.NewSourceError("tmdb", domain.ReasonUnauthenticated, nil)
		},
		DiscoverGenreFunc: func(context.Context, string) ([]domain.ContentItem, error) {
			return nil, domain.NewSourceError("tmdb", domain.ReasonUnauthenticated, nil)
		},
	}

	c := New(movies, okMusic(), WithShuffle(noShuffle))
	items, err := c.Recommendations(context.Background())
	require.NoError(t, err, "recoverable failures resolve to fallback data")

	// 2 mock movies + 1 song + 3 curated picks
	require.Len(t, items, 6)
	assert.Equal(t, "The Matrix Resurrections", items[0].Title)
}

func TestComposer_Recommendations_MusicNewReleasesTier(t *testing.T) {
	music := &mocks.MusicSourceMock{
		RecommendationsFunc: func(context.Context) ([]domain.ContentItem, error) {
			return nil, domain.NewSourceError("spotify", domain.ReasonUnauthenticated, nil)
		},
		NewReleasesFunc: func(context.Context) ([]domain.ContentItem, error) {
			return []domain.ContentItem{{ID: "r1", Title: "Fresh Album", Type: domain.TypeRecommendation}}, nil
		},
	}

	c := New(okMovies(), music, WithShuffle(noShuffle))
	items, err := c.Recommendations(context.Background())
	require.NoError(t, err)

	require.Len(t, items, 7)
	assert.Equal(t, "Fresh Album", items[3].Title, "new releases replace failed recommendations")
	assert.Len(t, music.NewReleasesCalls(), 1)
}

func TestComposer_Recommendations_MusicMockTier(t *testing.T) {
	music := &mocks.MusicSourceMock{
		RecommendationsFunc: func(context.Context) ([]domain.ContentItem, error) {
			return nil, domain.NewSourceError("spotify", domain.ReasonUnavailable, errors.New("conn refused"))
		},
		NewReleasesFunc: func(context.Context) ([]domain.ContentItem, error) {
			return nil, domain.NewSourceError("spotify", domain.ReasonUnavailable, errors.New("conn refused"))
		},
	}

	c := New(okMovies(), music, WithShuffle(noShuffle))
	items, err := c.Recommendations(context.Background())
	require.NoError(t, err)

	// 3 movie leg items + 9 mock tracks + 3 curated picks
	assert.Len(t, items, 15, "both music tiers down lands on the mock catalog")
}

func TestComposer_Recommendations_GenuineError(t *testing.T) {
	genuine := errors.New("assertion failed")
	movies := &mocks.MovieSourceMock{
		SimilarFunc: func(context.Context, string) ([]domain.ContentItem, error) { return nil, genuine },
	}

	c := New(movies, okMusic(), WithShuffle(noShuffle))
	_, err := c.Recommendations(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, genuine, "non-source errors must surface")
}

func TestComposer_Recommendations_Shuffled(t *testing.T) {
	reversed := func(n int, swap func(i, j int)) {
		for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
			swap(i, j)
		}
	}
	c := New(okMovies(), okMusic(), WithShuffle(reversed))

	items, err := c.Recommendations(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Like The Matrix", items[len(items)-1].Title, "shuffle applied to the merged batch")
}

func TestComposer_Recommendations_Concurrent(t *testing.T) {
	// both legs block; concurrent execution finishes well under the
	// serial total
	movies := &mocks.MovieSourceMock{
		SimilarFunc: func(_ context.Context, title string) ([]domain.ContentItem, error) {
			time.Sleep(25 * time.Millisecond)
			return similarItem(title), nil
		},
		DiscoverGenreFunc: func(context.Context, string) ([]domain.ContentItem, error) {
			return genreItems(), nil
		},
	}
	music := &mocks.MusicSourceMock{
		RecommendationsFunc: func(context.Context) ([]domain.ContentItem, error) {
			time.Sleep(50 * time.Millisecond)
			return musicItems(), nil
		},
	}

	c := New(movies, music, WithShuffle(noShuffle))
	start := time.Now()
	_, err := c.Recommendations(context.Background())
	require.NoError(t, err)
	assert.Less(t, time.Since(start), 95*time.Millisecond)
}
