// Package store holds the dashboard state: the content feed, search
// results, favorites and user preferences. Every mutation runs through
// a pending, fulfilled or rejected phase, and subscribers get notified
// after each phase change.
package store

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/umputun/pulse/pkg/domain"
)

//go:generate moq -out mocks/provider.go -pkg mocks -skip-ensure -fmt goimports . ContentProvider
//go:generate moq -out mocks/persister.go -pkg mocks -skip-ensure -fmt goimports . Persister

// ContentProvider supplies aggregated content, recommendations, social
// posts and search results
type ContentProvider interface {
	FetchContent(ctx context.Context, categories []string, page int) ([]domain.ContentItem, error)
	Search(ctx context.Context, query string) ([]domain.ContentItem, error)
	Recommendations(ctx context.Context) ([]domain.ContentItem, error)
	SocialPosts(ctx context.Context, filter domain.SocialFilter) ([]domain.ContentItem, error)
}

// Persister stores preferences and favorites across restarts
type Persister interface {
	LoadPreferences(ctx context.Context) (Preferences, error)
	SavePreferences(ctx context.Context, prefs Preferences) error
	AddFavorite(ctx context.Context, item domain.ContentItem) error
	RemoveFavorite(ctx context.Context, id string) error
	ListFavorites(ctx context.Context) ([]domain.ContentItem, error)
}

// Preferences are the persisted user settings. Only these four fields
// exist; unknown keys in an update are dropped.
type Preferences struct {
	Theme         string   `json:"theme"`
	Categories    []string `json:"categories"`
	Language      string   `json:"language"`
	Notifications bool     `json:"notifications"`
}

// DefaultPreferences returns the settings for a fresh profile
func DefaultPreferences() Preferences {
	return Preferences{
		Theme:         "light",
		Categories:    []string{"entertainment", "sports", "news", "technology"},
		Language:      "en",
		Notifications: true,
	}
}

// state sections
const (
	SectionContent         = "content"
	SectionRecommendations = "recommendations"
	SectionSocial          = "social"
	SectionSearch          = "search"
	SectionFavorites       = "favorites"
	SectionPreferences     = "preferences"
)

// lifecycle phases
const (
	PhasePending   = "pending"
	PhaseFulfilled = "fulfilled"
	PhaseRejected  = "rejected"
)

// Event describes a state change delivered to subscribers
type Event struct {
	Section string
	Phase   string
}

// ContentState is a snapshot of the main feed section
type ContentState struct {
	Items       []domain.ContentItem
	Loading     bool
	Err         error
	LastFetched time.Time
	Page        int
	HasMore     bool
}

// SearchState is a snapshot of the search section
type SearchState struct {
	Items   []domain.ContentItem
	Query   string
	Loading bool
	Err     error
}

// ListState is a snapshot of a simple list section (recommendations,
// social posts), each carrying its own freshness timestamp.
type ListState struct {
	Items       []domain.ContentItem
	Loading     bool
	Err         error
	LastFetched time.Time
}

// SocialState is a snapshot of the social posts section
type SocialState struct {
	ListState
	Filter domain.SocialFilter
}

// Store is the single state container behind the HTTP API
type Store struct {
	provider ContentProvider
	persist  Persister
	ttl      time.Duration
	debounce time.Duration
	now      func() time.Time

	mu        sync.Mutex
	content   ContentState
	recs      ListState
	social    SocialState
	search    SearchState
	favorites []domain.ContentItem
	prefs     Preferences

	subs    map[int]func(Event)
	nextSub int

	searchTimer  *time.Timer
	searchCancel context.CancelFunc
}

// Option configures the store
type Option func(*Store)

// WithClock overrides the time source, used in tests
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithDebounce sets the search debounce interval
func WithDebounce(d time.Duration) Option {
	return func(s *Store) { s.debounce = d }
}

// New creates a store and loads persisted preferences and favorites
func New(ctx context.Context, provider ContentProvider, persist Persister, ttl time.Duration, opts ...Option) (*Store, error) {
	s := &Store{
		provider: provider,
		persist:  persist,
		ttl:      ttl,
		debounce: 300 * time.Millisecond,
		now:      time.Now,
		content:  ContentState{Page: 1, HasMore: true},
		subs:     map[int]func(Event){},
		prefs:    DefaultPreferences(),
	}
	for _, opt := range opts {
		opt(s)
	}

	prefs, err := persist.LoadPreferences(ctx)
	if err != nil {
		return nil, err
	}
	s.prefs = prefs

	favorites, err := persist.ListFavorites(ctx)
	if err != nil {
		return nil, err
	}
	s.favorites = favorites

	return s, nil
}

// Subscribe registers a listener for state changes and returns an
// unsubscribe token. Listener panics are contained per listener.
func (s *Store) Subscribe(fn func(Event)) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextSub++
	s.subs[s.nextSub] = fn
	return s.nextSub
}

// Unsubscribe removes a listener; unknown tokens are a no-op
func (s *Store) Unsubscribe(token int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.subs, token)
}

// notify dispatches an event to a snapshot of the listeners. Listeners
// run outside the state lock so they can read the store; a panicking
// listener never takes down the others.
func (s *Store) notify(ev Event) {
	s.mu.Lock()
	listeners := make(map[int]func(Event), len(s.subs))
	for token, fn := range s.subs {
		listeners[token] = fn
	}
	s.mu.Unlock()

	for token, fn := range listeners {
		func() {
			defer func() {
				if r := recover(); r != nil {
					log.Printf("[WARN] listener %d panicked on %s/%s: %v", token, ev.Section, ev.Phase, r)
				}
			}()
			fn(ev)
		}()
	}
}

// FetchContent loads a page of the main feed. Page 1 replaces the
// current items, later pages append. A fresh page-1 batch is served
// from state without hitting the provider; Refresh forces it.
func (s *Store) FetchContent(ctx context.Context, page int) error {
	if page < 1 {
		page = 1
	}

	s.mu.Lock()
	if page == 1 && len(s.content.Items) > 0 && !s.content.LastFetched.IsZero() &&
		s.now().Sub(s.content.LastFetched) < s.ttl {
		s.mu.Unlock()
		return nil
	}
	s.content.Loading = true
	s.content.Err = nil
	categories := append([]string(nil), s.prefs.Categories...)
	s.mu.Unlock()
	s.notify(Event{Section: SectionContent, Phase: PhasePending})

	items, err := s.provider.FetchContent(ctx, categories, page)

	s.mu.Lock()
	s.content.Loading = false
	if err != nil {
		s.content.Err = err
		s.mu.Unlock()
		s.notify(Event{Section: SectionContent, Phase: PhaseRejected})
		return err
	}

	if page == 1 {
		s.content.Items = items
	} else {
		s.content.Items = append(s.content.Items, items...)
	}
	s.content.HasMore = len(items) > 0
	s.content.Page = page + 1
	s.content.LastFetched = s.now()
	s.mu.Unlock()
	s.notify(Event{Section: SectionContent, Phase: PhaseFulfilled})
	return nil
}

// FetchRecommendations loads the recommendation feed. A non-empty fresh
// section is served from state without hitting the provider.
func (s *Store) FetchRecommendations(ctx context.Context) error {
	s.mu.Lock()
	if len(s.recs.Items) > 0 && !s.recs.LastFetched.IsZero() &&
		s.now().Sub(s.recs.LastFetched) < s.ttl {
		s.mu.Unlock()
		return nil
	}
	s.recs.Loading = true
	s.recs.Err = nil
	s.mu.Unlock()
	s.notify(Event{Section: SectionRecommendations, Phase: PhasePending})

	items, err := s.provider.Recommendations(ctx)

	s.mu.Lock()
	s.recs.Loading = false
	if err != nil {
		s.recs.Err = err
		s.mu.Unlock()
		s.notify(Event{Section: SectionRecommendations, Phase: PhaseRejected})
		return err
	}
	s.recs.Items = items
	s.recs.LastFetched = s.now()
	s.mu.Unlock()
	s.notify(Event{Section: SectionRecommendations, Phase: PhaseFulfilled})
	return nil
}

// Recommendations returns a snapshot of the recommendations section
func (s *Store) Recommendations() ListState {
	s.mu.Lock()
	defer s.mu.Unlock()
	res := s.recs
	res.Items = append([]domain.ContentItem(nil), s.recs.Items...)
	return res
}

// FetchSocialPosts loads social posts for the given filter. Only an
// unfiltered fetch is served from a fresh non-empty section; a filtered
// fetch always hits the provider.
func (s *Store) FetchSocialPosts(ctx context.Context, filter domain.SocialFilter) error {
	s.mu.Lock()
	if filter.IsZero() && s.social.Filter.IsZero() && len(s.social.Items) > 0 &&
		!s.social.LastFetched.IsZero() && s.now().Sub(s.social.LastFetched) < s.ttl {
		s.mu.Unlock()
		return nil
	}
	s.social.Loading = true
	s.social.Err = nil
	s.mu.Unlock()
	s.notify(Event{Section: SectionSocial, Phase: PhasePending})

	items, err := s.provider.SocialPosts(ctx, filter)

	s.mu.Lock()
	s.social.Loading = false
	if err != nil {
		s.social.Err = err
		s.mu.Unlock()
		s.notify(Event{Section: SectionSocial, Phase: PhaseRejected})
		return err
	}
	s.social.Items = items
	s.social.Filter = filter
	s.social.LastFetched = s.now()
	s.mu.Unlock()
	s.notify(Event{Section: SectionSocial, Phase: PhaseFulfilled})
	return nil
}

// SocialPosts returns a snapshot of the social section
func (s *Store) SocialPosts() SocialState {
	s.mu.Lock()
	defer s.mu.Unlock()
	res := s.social
	res.Items = append([]domain.ContentItem(nil), s.social.Items...)
	return res
}

// LoadMore fetches the next page, no-op once the feed is exhausted
func (s *Store) LoadMore(ctx context.Context) error {
	s.mu.Lock()
	if !s.content.HasMore {
		s.mu.Unlock()
		return nil
	}
	page := s.content.Page
	s.mu.Unlock()
	return s.FetchContent(ctx, page)
}

// Refresh drops content freshness and reloads page 1
func (s *Store) Refresh(ctx context.Context) error {
	s.mu.Lock()
	s.content.LastFetched = time.Time{}
	s.mu.Unlock()
	return s.FetchContent(ctx, 1)
}

// Content returns a snapshot of the feed section
func (s *Store) Content() ContentState {
	s.mu.Lock()
	defer s.mu.Unlock()
	res := s.content
	res.Items = append([]domain.ContentItem(nil), s.content.Items...)
	return res
}

// Favorites returns the favorites, most recently added first
func (s *Store) Favorites() []domain.ContentItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.ContentItem(nil), s.favorites...)
}

// AddFavorite persists an item and prepends it to the favorites list.
// Adding an already favorited item is a no-op.
func (s *Store) AddFavorite(ctx context.Context, item domain.ContentItem) error {
	s.mu.Lock()
	for _, f := range s.favorites {
		if f.ID == item.ID {
			s.mu.Unlock()
			return nil
		}
	}
	s.mu.Unlock()

	if err := s.persist.AddFavorite(ctx, item); err != nil {
		return err
	}

	s.mu.Lock()
	s.favorites = append([]domain.ContentItem{item}, s.favorites...)
	s.mu.Unlock()
	s.notify(Event{Section: SectionFavorites, Phase: PhaseFulfilled})
	return nil
}

// RemoveFavorite deletes an item from favorites, no-op for unknown IDs
func (s *Store) RemoveFavorite(ctx context.Context, id string) error {
	if err := s.persist.RemoveFavorite(ctx, id); err != nil {
		return err
	}

	s.mu.Lock()
	res := s.favorites[:0]
	for _, f := range s.favorites {
		if f.ID != id {
			res = append(res, f)
		}
	}
	s.favorites = res
	s.mu.Unlock()
	s.notify(Event{Section: SectionFavorites, Phase: PhaseFulfilled})
	return nil
}

// Preferences returns a copy of the current preferences
func (s *Store) Preferences() Preferences {
	s.mu.Lock()
	defer s.mu.Unlock()
	res := s.prefs
	res.Categories = append([]string(nil), s.prefs.Categories...)
	return res
}

// UpdatePreferences applies a partial update. Only theme, categories,
// language and notifications are recognized, anything else in the
// patch is ignored. A category change invalidates content freshness so
// the next fetch hits the sources.
func (s *Store) UpdatePreferences(ctx context.Context, patch map[string]any) error {
	s.mu.Lock()
	updated := s.prefs
	updated.Categories = append([]string(nil), s.prefs.Categories...)
	categoriesChanged := false

	if v, ok := patch["theme"].(string); ok {
		updated.Theme = v
	}
	if v, ok := patch["language"].(string); ok {
		updated.Language = v
	}
	if v, ok := patch["notifications"].(bool); ok {
		updated.Notifications = v
	}
	if v, ok := patch["categories"]; ok {
		if categories := toStrings(v); categories != nil {
			updated.Categories = categories
			categoriesChanged = true
		}
	}
	s.mu.Unlock()

	if err := s.persist.SavePreferences(ctx, updated); err != nil {
		return err
	}

	s.mu.Lock()
	s.prefs = updated
	if categoriesChanged {
		s.content.LastFetched = time.Time{}
	}
	s.mu.Unlock()
	s.notify(Event{Section: SectionPreferences, Phase: PhaseFulfilled})
	return nil
}

// SetTheme updates just the theme preference
func (s *Store) SetTheme(ctx context.Context, theme string) error {
	return s.UpdatePreferences(ctx, map[string]any{"theme": theme})
}

// toStrings converts a []string or []any of strings, nil otherwise
func toStrings(v any) []string {
	switch vv := v.(type) {
	case []string:
		return append([]string(nil), vv...)
	case []any:
		res := make([]string, 0, len(vv))
		for _, e := range vv {
			s, ok := e.(string)
			if !ok {
				return nil
			}
			res = append(res, s)
		}
		return res
	}
	return nil
}
