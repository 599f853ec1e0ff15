package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/umputun/pulse/pkg/domain"
	"github.com/umputun/pulse/pkg/mockdata"
	"github.com/umputun/pulse/pkg/notify"
	"github.com/umputun/pulse/pkg/store"
)

// contentResponse is the feed section as the UI consumes it
type contentResponse struct {
	Items       []domain.ContentItem `json:"items"`
	Page        int                  `json:"page"`
	HasMore     bool                 `json:"hasMore"`
	Loading     bool                 `json:"loading"`
	Error       string               `json:"error,omitempty"`
	LastFetched *time.Time           `json:"lastFetched,omitempty"`
}

// contentHandler loads a feed page and returns the resulting state
func (s *Server) contentHandler(w http.ResponseWriter, r *http.Request) {
	page := 1
	if v := r.URL.Query().Get("page"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil || p < 1 {
			RenderError(w, r, fmt.Errorf("invalid page %q", v), http.StatusBadRequest)
			return
		}
		page = p
	}

	if err := s.store.FetchContent(r.Context(), page); err != nil {
		RenderError(w, r, err, http.StatusBadGateway)
		return
	}
	RenderJSON(w, r, http.StatusOK, contentState(s.store.Content()))
}

// refreshHandler forces a feed reload and pings the notification channel
func (s *Server) refreshHandler(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Refresh(r.Context()); err != nil {
		RenderError(w, r, err, http.StatusBadGateway)
		return
	}
	s.notifier.TriggerRefresh()
	RenderJSON(w, r, http.StatusOK, contentState(s.store.Content()))
}

// contentState converts the store snapshot to the wire shape
func contentState(st store.ContentState) contentResponse {
	res := contentResponse{
		Items:   st.Items,
		Page:    st.Page,
		HasMore: st.HasMore,
		Loading: st.Loading,
	}
	if res.Items == nil {
		res.Items = []domain.ContentItem{}
	}
	if st.Err != nil {
		res.Error = st.Err.Error()
	}
	if !st.LastFetched.IsZero() {
		t := st.LastFetched
		res.LastFetched = &t
	}
	return res
}

// recommendationsHandler loads the recommendation feed through the
// store, so a fresh section is served without an upstream round trip.
func (s *Server) recommendationsHandler(w http.ResponseWriter, r *http.Request) {
	if err := s.store.FetchRecommendations(r.Context()); err != nil {
		RenderError(w, r, err, http.StatusBadGateway)
		return
	}
	st := s.store.Recommendations()
	items := st.Items
	if items == nil {
		items = []domain.ContentItem{}
	}
	RenderJSON(w, r, http.StatusOK, map[string]any{"items": items})
}

// searchHandler runs a query across all sources
func (s *Server) searchHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		RenderError(w, r, fmt.Errorf("missing query parameter q"), http.StatusBadRequest)
		return
	}

	if err := s.store.Search(r.Context(), query); err != nil {
		RenderError(w, r, err, http.StatusBadGateway)
		return
	}

	st := s.store.SearchResults()
	RenderJSON(w, r, http.StatusOK, map[string]any{"query": st.Query, "items": st.Items})
}

// socialHandler loads social posts through the store, optionally
// filtered by hashtag, user, category or platform. Filters are
// mutually exclusive, first match wins; platform also narrows a
// hashtag query.
func (s *Server) socialHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.SocialFilter{
		Hashtag:  q.Get("hashtag"),
		User:     q.Get("user"),
		Category: q.Get("category"),
		Platform: q.Get("platform"),
	}

	if err := s.store.FetchSocialPosts(r.Context(), filter); err != nil {
		RenderError(w, r, err, http.StatusBadGateway)
		return
	}
	st := s.store.SocialPosts()
	items := st.Items
	if items == nil {
		items = []domain.ContentItem{}
	}
	RenderJSON(w, r, http.StatusOK, map[string]any{"items": items})
}

func (s *Server) socialTrendingHandler(w http.ResponseWriter, r *http.Request) {
	tags, err := s.social.TrendingHashtags(r.Context())
	if err != nil {
		RenderError(w, r, err, http.StatusBadGateway)
		return
	}
	RenderJSON(w, r, http.StatusOK, map[string]any{"hashtags": tags})
}

func (s *Server) socialSuggestionsHandler(w http.ResponseWriter, r *http.Request) {
	users, err := s.social.UserSuggestions(r.Context())
	if err != nil {
		RenderError(w, r, err, http.StatusBadGateway)
		return
	}
	RenderJSON(w, r, http.StatusOK, map[string]any{"users": users})
}

// favoritesHandler lists saved items
func (s *Server) favoritesHandler(w http.ResponseWriter, r *http.Request) {
	RenderJSON(w, r, http.StatusOK, map[string]any{"items": s.store.Favorites()})
}

// addFavoriteHandler saves the posted item
func (s *Server) addFavoriteHandler(w http.ResponseWriter, r *http.Request) {
	var item domain.ContentItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		RenderError(w, r, fmt.Errorf("invalid item: %w", err), http.StatusBadRequest)
		return
	}
	if item.ID == "" {
		RenderError(w, r, fmt.Errorf("item id is required"), http.StatusBadRequest)
		return
	}

	if err := s.store.AddFavorite(r.Context(), item); err != nil {
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}
	RenderJSON(w, r, http.StatusCreated, map[string]any{"items": s.store.Favorites()})
}

// removeFavoriteHandler deletes a saved item by ID
func (s *Server) removeFavoriteHandler(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := s.store.RemoveFavorite(r.Context(), id); err != nil {
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}
	RenderJSON(w, r, http.StatusOK, map[string]any{"items": s.store.Favorites()})
}

// preferencesHandler returns the current preferences
func (s *Server) preferencesHandler(w http.ResponseWriter, r *http.Request) {
	RenderJSON(w, r, http.StatusOK, s.store.Preferences())
}

// updatePreferencesHandler applies a partial preferences update
func (s *Server) updatePreferencesHandler(w http.ResponseWriter, r *http.Request) {
	var patch map[string]any
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		RenderError(w, r, fmt.Errorf("invalid preferences: %w", err), http.StatusBadRequest)
		return
	}

	if err := s.store.UpdatePreferences(r.Context(), patch); err != nil {
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}
	RenderJSON(w, r, http.StatusOK, s.store.Preferences())
}

// themeHandler switches just the theme
func (s *Server) themeHandler(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Theme string `json:"theme"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Theme == "" {
		RenderError(w, r, fmt.Errorf("theme is required"), http.StatusBadRequest)
		return
	}

	if err := s.store.SetTheme(r.Context(), body.Theme); err != nil {
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}
	RenderJSON(w, r, http.StatusOK, s.store.Preferences())
}

// spotifyAuthURLHandler returns the OAuth redirect target
func (s *Server) spotifyAuthURLHandler(w http.ResponseWriter, r *http.Request) {
	RenderJSON(w, r, http.StatusOK, map[string]any{
		"url":           s.music.AuthURL(),
		"authenticated": s.music.Authenticated(),
	})
}

// spotifyTokenHandler exchanges an authorization code server-side so
// the client secret never reaches the browser.
func (s *Server) spotifyTokenHandler(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Code string `json:"code"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Code == "" {
		RenderError(w, r, fmt.Errorf("code is required"), http.StatusBadRequest)
		return
	}

	if err := s.music.Exchange(r.Context(), body.Code); err != nil {
		RenderError(w, r, err, http.StatusUnauthorized)
		return
	}
	RenderJSON(w, r, http.StatusOK, map[string]any{"authenticated": true})
}

// spotifyNewReleasesHandler returns the latest releases; an unavailable
// or unauthenticated upstream falls back to the mock catalog.
func (s *Server) spotifyNewReleasesHandler(w http.ResponseWriter, r *http.Request) {
	items, err := s.music.NewReleases(r.Context())
	items, err = domain.ResolveWithFallback(items, err, mockdata.MusicRecommendations)
	if err != nil {
		RenderError(w, r, err, http.StatusBadGateway)
		return
	}
	RenderJSON(w, r, http.StatusOK, map[string]any{"items": items})
}

// notificationsStreamHandler streams simulator events as server-sent
// events until the client goes away.
func (s *Server) notificationsStreamHandler(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		RenderError(w, r, fmt.Errorf("streaming not supported"), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	events := make(chan notify.Event, 16)
	token := s.notifier.Subscribe(func(ev notify.Event) {
		select {
		case events <- ev:
		default: // slow client, drop rather than block the simulator
		}
	})
	defer s.notifier.Unsubscribe(token)

	for {
		select {
		case <-r.Context().Done():
			return
		case ev := <-events:
			data, err := json.Marshal(ev)
			if err != nil {
				continue
			}
			fmt.Fprintf(w, "data: %s\n\n", data)
			flusher.Flush()
		}
	}
}

func (s *Server) notificationsConnectHandler(w http.ResponseWriter, r *http.Request) {
	s.notifier.Connect()
	RenderJSON(w, r, http.StatusOK, map[string]any{"connected": true})
}

func (s *Server) notificationsDisconnectHandler(w http.ResponseWriter, r *http.Request) {
	s.notifier.Disconnect()
	RenderJSON(w, r, http.StatusOK, map[string]any{"connected": false})
}
