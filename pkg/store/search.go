package store

import (
	"context"
	"strings"
	"time"

	"github.com/umputun/pulse/pkg/domain"
)

// Search runs a query through the provider with the three-phase
// lifecycle on the search section. A canceled context leaves the
// previous results untouched, a newer query superseded this one.
func (s *Store) Search(ctx context.Context, query string) error {
	query = strings.TrimSpace(query)
	if query == "" {
		s.ClearSearch()
		return nil
	}

	s.mu.Lock()
	s.search.Loading = true
	s.search.Err = nil
	s.search.Query = query
	s.mu.Unlock()
	s.notify(Event{Section: SectionSearch, Phase: PhasePending})

	items, err := s.provider.Search(ctx, query)

	s.mu.Lock()
	if s.search.Query != query {
		// a newer query owns the section now
		s.mu.Unlock()
		return nil
	}
	s.search.Loading = false
	if err != nil {
		if ctx.Err() != nil {
			s.mu.Unlock()
			return nil
		}
		s.search.Err = err
		s.mu.Unlock()
		s.notify(Event{Section: SectionSearch, Phase: PhaseRejected})
		return err
	}
	s.search.Items = items
	s.mu.Unlock()
	s.notify(Event{Section: SectionSearch, Phase: PhaseFulfilled})
	return nil
}

// SearchDebounced schedules a search after the debounce interval.
// Another call within the interval reschedules and cancels any query
// already in flight; only the last query's results land in the state.
func (s *Store) SearchDebounced(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.searchTimer != nil {
		s.searchTimer.Stop()
	}
	if s.searchCancel != nil {
		s.searchCancel()
		s.searchCancel = nil
	}

	query = strings.TrimSpace(query)
	if query == "" {
		s.searchTimer = nil
		go s.ClearSearch()
		return
	}

	s.searchTimer = time.AfterFunc(s.debounce, func() {
		ctx, cancel := context.WithCancel(context.Background())
		s.mu.Lock()
		s.searchCancel = cancel
		s.mu.Unlock()
		_ = s.Search(ctx, query) // error lands in the search section state
	})
}

// ClearSearch cancels pending work and resets the search section
func (s *Store) ClearSearch() {
	s.mu.Lock()
	if s.searchTimer != nil {
		s.searchTimer.Stop()
		s.searchTimer = nil
	}
	if s.searchCancel != nil {
		s.searchCancel()
		s.searchCancel = nil
	}
	s.search = SearchState{}
	s.mu.Unlock()
	s.notify(Event{Section: SectionSearch, Phase: PhaseFulfilled})
}

// SearchResults returns a snapshot of the search section
func (s *Store) SearchResults() SearchState {
	s.mu.Lock()
	defer s.mu.Unlock()
	res := s.search
	res.Items = append([]domain.ContentItem(nil), s.search.Items...)
	return res
}
