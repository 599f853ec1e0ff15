package store_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/pulse/pkg/domain"
	"github.com/umputun/pulse/pkg/store"
	"github.com/umputun/pulse/pkg/store/mocks"
)

func searchProvider() *mocks.ContentProviderMock {
	return &mocks.ContentProviderMock{
		SearchFunc: func(_ context.Context, query string) ([]domain.ContentItem, error) {
			return []domain.ContentItem{{ID: "hit-" + query, Title: "Result for " + query}}, nil
		},
	}
}

func TestStore_Search(t *testing.T) {
	provider := searchProvider()
	s, err := store.New(context.Background(), provider, emptyPersister(), 5*time.Minute)
	require.NoError(t, err)

	var phases []string
	var mu sync.Mutex
	s.Subscribe(func(ev store.Event) {
		if ev.Section == store.SectionSearch {
			mu.Lock()
			phases = append(phases, ev.Phase)
			mu.Unlock()
		}
	})

	require.NoError(t, s.Search(context.Background(), "golang"))

	st := s.SearchResults()
	require.Len(t, st.Items, 1)
	assert.Equal(t, "hit-golang", st.Items[0].ID)
	assert.Equal(t, "golang", st.Query)
	assert.False(t, st.Loading)

	mu.Lock()
	assert.Equal(t, []string{store.PhasePending, store.PhaseFulfilled}, phases)
	mu.Unlock()
}

func TestStore_Search_Rejected(t *testing.T) {
	searchErr := errors.New("boom")
	provider := &mocks.ContentProviderMock{
		SearchFunc: func(context.Context, string) ([]domain.ContentItem, error) {
			return nil, searchErr
		},
	}
	s, err := store.New(context.Background(), provider, emptyPersister(), 5*time.Minute)
	require.NoError(t, err)

	err = s.Search(context.Background(), "anything")
	require.ErrorIs(t, err, searchErr)
	assert.ErrorIs(t, s.SearchResults().Err, searchErr)
}

func TestStore_Search_EmptyQueryClears(t *testing.T) {
	provider := searchProvider()
	s, err := store.New(context.Background(), provider, emptyPersister(), 5*time.Minute)
	require.NoError(t, err)

	require.NoError(t, s.Search(context.Background(), "golang"))
	require.NotEmpty(t, s.SearchResults().Items)

	require.NoError(t, s.Search(context.Background(), "   "))
	st := s.SearchResults()
	assert.Empty(t, st.Items)
	assert.Empty(t, st.Query)
	assert.Len(t, provider.SearchCalls(), 1, "blank query never reaches the provider")
}

func TestStore_SearchDebounced(t *testing.T) {
	provider := searchProvider()
	s, err := store.New(context.Background(), provider, emptyPersister(), 5*time.Minute,
		store.WithDebounce(30*time.Millisecond))
	require.NoError(t, err)

	// rapid typing, only the final query should run
	s.SearchDebounced("g")
	s.SearchDebounced("go")
	s.SearchDebounced("gol")
	s.SearchDebounced("golang")

	require.Eventually(t, func() bool {
		return len(s.SearchResults().Items) > 0
	}, time.Second, 5*time.Millisecond)

	calls := provider.SearchCalls()
	require.Len(t, calls, 1, "intermediate queries debounced away")
	assert.Equal(t, "golang", calls[0].Query)
	assert.Equal(t, "hit-golang", s.SearchResults().Items[0].ID)
}

func TestStore_SearchDebounced_SupersededInFlight(t *testing.T) {
	release := make(chan struct{})
	provider := &mocks.ContentProviderMock{
		SearchFunc: func(ctx context.Context, query string) ([]domain.ContentItem, error) {
			if query == "slow" {
				select {
				case <-release:
				case <-ctx.Done():
					return nil, ctx.Err()
				}
			}
			return []domain.ContentItem{{ID: "hit-" + query}}, nil
		},
	}
	s, err := store.New(context.Background(), provider, emptyPersister(), 5*time.Minute,
		store.WithDebounce(5*time.Millisecond))
	require.NoError(t, err)

	s.SearchDebounced("slow")
	require.Eventually(t, func() bool {
		return len(provider.SearchCalls()) == 1
	}, time.Second, time.Millisecond, "slow query in flight")

	s.SearchDebounced("fast")
	require.Eventually(t, func() bool {
		return len(s.SearchResults().Items) > 0
	}, time.Second, time.Millisecond)
	close(release)

	assert.Equal(t, "hit-fast", s.SearchResults().Items[0].ID)
	assert.Equal(t, "fast", s.SearchResults().Query, "superseded query never lands")
}

func TestStore_ClearSearch_CancelsPending(t *testing.T) {
	provider := searchProvider()
	s, err := store.New(context.Background(), provider, emptyPersister(), 5*time.Minute,
		store.WithDebounce(20*time.Millisecond))
	require.NoError(t, err)

	s.SearchDebounced("golang")
	s.ClearSearch()

	time.Sleep(60 * time.Millisecond)
	assert.Empty(t, provider.SearchCalls(), "cleared before the debounce fired")
	assert.Empty(t, s.SearchResults().Items)
}
