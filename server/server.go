// Package server exposes the dashboard state over a JSON REST API and
// streams simulated real-time notifications.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/umputun/pulse/pkg/domain"
	"github.com/umputun/pulse/pkg/notify"
	"github.com/umputun/pulse/pkg/store"
)

// Store is the state container behind the API
type Store interface {
	FetchContent(ctx context.Context, page int) error
	Refresh(ctx context.Context) error
	Content() store.ContentState
	FetchRecommendations(ctx context.Context) error
	Recommendations() store.ListState
	FetchSocialPosts(ctx context.Context, filter domain.SocialFilter) error
	SocialPosts() store.SocialState
	Search(ctx context.Context, query string) error
	SearchResults() store.SearchState
	Favorites() []domain.ContentItem
	AddFavorite(ctx context.Context, item domain.ContentItem) error
	RemoveFavorite(ctx context.Context, id string) error
	Preferences() store.Preferences
	UpdatePreferences(ctx context.Context, patch map[string]any) error
	SetTheme(ctx context.Context, theme string) error
}

// SocialSource serves the social discovery lists
type SocialSource interface {
	TrendingHashtags(ctx context.Context) ([]string, error)
	UserSuggestions(ctx context.Context) ([]string, error)
}

// MusicService handles the music OAuth flow and the release feed
type MusicService interface {
	AuthURL() string
	Exchange(ctx context.Context, code string) error
	Authenticated() bool
	NewReleases(ctx context.Context) ([]domain.ContentItem, error)
}

// Notifier is the simulated real-time channel
type Notifier interface {
	Connect()
	Disconnect()
	Connected() bool
	Subscribe(fn func(notify.Event)) int
	Unsubscribe(token int)
	TriggerRefresh()
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
}

// Server represents HTTP server instance
type Server struct {
	config   ConfigProvider
	store    Store
	social   SocialSource
	music    MusicService
	notifier Notifier
	version  string
	debug    bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// New initializes a new server instance
func New(cfg ConfigProvider, st Store, social SocialSource, music MusicService, notifier Notifier, version string, debug bool) *Server {
	s := &Server{
		config:   cfg,
		store:    st,
		social:   social,
		music:    music,
		notifier: notifier,
		version:  version,
		debug:    debug,
		router:   routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	log.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:         listen,
		Handler:      s.router,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		log.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("pulse", "umputun", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(1024 * 1024)) // 1MB
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)

		r.HandleFunc("GET /content", s.contentHandler)
		r.HandleFunc("POST /content/refresh", s.refreshHandler)
		r.HandleFunc("GET /recommendations", s.recommendationsHandler)
		r.HandleFunc("GET /search", s.searchHandler)

		r.HandleFunc("GET /social", s.socialHandler)
		r.HandleFunc("GET /social/trending", s.socialTrendingHandler)
		r.HandleFunc("GET /social/suggestions", s.socialSuggestionsHandler)

		r.HandleFunc("GET /favorites", s.favoritesHandler)
		r.HandleFunc("POST /favorites", s.addFavoriteHandler)
		r.HandleFunc("DELETE /favorites/{id}", s.removeFavoriteHandler)

		r.HandleFunc("GET /preferences", s.preferencesHandler)
		r.HandleFunc("PUT /preferences", s.updatePreferencesHandler)
		r.HandleFunc("PUT /preferences/theme", s.themeHandler)

		r.HandleFunc("GET /spotify/auth-url", s.spotifyAuthURLHandler)
		r.HandleFunc("POST /spotify/token", s.spotifyTokenHandler)
		r.HandleFunc("GET /spotify/new-releases", s.spotifyNewReleasesHandler)

		r.HandleFunc("GET /notifications/stream", s.notificationsStreamHandler)
		r.HandleFunc("POST /notifications/connect", s.notificationsConnectHandler)
		r.HandleFunc("POST /notifications/disconnect", s.notificationsDisconnectHandler)
	})
}

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	content := s.store.Content()
	status := map[string]interface{}{
		"status":          "ok",
		"version":         s.version,
		"time":            time.Now().UTC(),
		"music_auth":      s.music.Authenticated(),
		"notifications":   s.notifier.Connected(),
		"content_items":   len(content.Items),
		"content_fetched": content.LastFetched,
	}
	RenderJSON(w, r, http.StatusOK, status)
}

// RenderJSON sends JSON response
func RenderJSON(w http.ResponseWriter, _ *http.Request, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// RenderError sends error response as JSON
func RenderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	RenderJSON(w, r, code, map[string]string{"error": errMsg})
}
