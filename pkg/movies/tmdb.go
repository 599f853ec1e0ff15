// Package movies implements the TMDB movie catalog source. Discovery
// runs two queries, regional Telugu releases and worldwide English
// ones, and merges them into a single recommendation batch.
package movies

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/umputun/pulse/pkg/cache"
	"github.com/umputun/pulse/pkg/config"
	"github.com/umputun/pulse/pkg/domain"
)

const (
	perQueryLimit = 10
	similarLimit  = 3
	genreLimit    = 2
)

// Client talks to the TMDB API
type Client struct {
	apiKey       string
	baseURL      string
	imageBaseURL string
	client       *http.Client
	cache        *cache.Cache
	now          func() time.Time

	genreMu sync.Mutex
	genres  map[string]int // lowercased genre name to TMDB id, loaded lazily
}

// Option configures the client
type Option func(*Client)

// WithClock overrides the time source, used in tests
func WithClock(now func() time.Time) Option {
	return func(c *Client) { c.now = now }
}

// New creates a TMDB client. An empty API key is allowed; calls then
// fail with an unauthenticated source error and the caller falls back
// to mock recommendations.
func New(cfg config.TMDBConfig, cc *cache.Cache, opts ...Option) *Client {
	c := &Client{
		apiKey:       cfg.APIKey,
		baseURL:      cfg.BaseURL,
		imageBaseURL: cfg.ImageBaseURL,
		client:       &http.Client{Timeout: cfg.Timeout},
		cache:        cc,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// movie is the TMDB result shape
type movie struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Overview    string  `json:"overview"`
	PosterPath  string  `json:"poster_path"`
	VoteAverage float64 `json:"vote_average"`
	ReleaseDate string  `json:"release_date"`
}

type discoverResponse struct {
	Results []movie `json:"results"`
}

type genreListResponse struct {
	Genres []struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	} `json:"genres"`
}

// Fetch returns popular movies for the requested page, Telugu regional
// picks first followed by worldwide English ones. Each language query
// fails independently; a failed query contributes no items and only
// both failing surfaces an error. Batches are cached per page.
func (c *Client) Fetch(ctx context.Context, page int) ([]domain.ContentItem, error) {
	if c.apiKey == "" {
		return nil, domain.NewSourceError("tmdb", domain.ReasonUnauthenticated, nil)
	}

	key := cache.Key("tmdb-discover", page)
	if items, ok := c.cache.Get(key); ok {
		return items, nil
	}

	batch := c.now()

	telugu, teErr := c.discover(ctx, url.Values{
		"with_original_language": {"te"},
		"region":                 {"IN"},
		"sort_by":                {"popularity.desc"},
		"page":                   {fmt.Sprintf("%d", page)},
	})
	if teErr != nil {
		log.Printf("[WARN] tmdb telugu discover failed: %v", teErr)
	}

	english, enErr := c.discover(ctx, url.Values{
		"with_original_language": {"en"},
		"language":               {"en-US"},
		"sort_by":                {"popularity.desc"},
		"page":                   {fmt.Sprintf("%d", page)},
	})
	if enErr != nil {
		log.Printf("[WARN] tmdb english discover failed: %v", enErr)
	}

	if teErr != nil && enErr != nil {
		return nil, enErr
	}

	items := make([]domain.ContentItem, 0, 2*perQueryLimit)
	for i, m := range capResults(telugu) {
		items = append(items, c.item(m, fmt.Sprintf("movie-te-%d", page), batch, i, "Popular in Telugu cinema"))
	}
	for i, m := range capResults(english) {
		items = append(items, c.item(m, fmt.Sprintf("movie-en-%d", page), batch, i, "Trending worldwide"))
	}

	c.cache.Set(key, items)
	return items, nil
}

// Similar looks up a movie by title and returns up to 3 movies TMDB
// recommends alongside it, each tagged "Because you liked <title>".
func (c *Client) Similar(ctx context.Context, title string) ([]domain.ContentItem, error) {
	if c.apiKey == "" {
		return nil, domain.NewSourceError("tmdb", domain.ReasonUnauthenticated, nil)
	}

	key := cache.Key("tmdb-similar", title)
	if items, ok := c.cache.Get(key); ok {
		return items, nil
	}

	var found discoverResponse
	if err := c.get(ctx, "/search/movie", url.Values{"query": {title}}, &found); err != nil {
		return nil, err
	}
	if len(found.Results) == 0 {
		return nil, nil
	}

	var resp discoverResponse
	path := fmt.Sprintf("/movie/%d/recommendations", found.Results[0].ID)
	if err := c.get(ctx, path, url.Values{}, &resp); err != nil {
		return nil, err
	}

	batch := c.now()
	results := resp.Results
	if len(results) > similarLimit {
		results = results[:similarLimit]
	}
	items := make([]domain.ContentItem, 0, len(results))
	for i, m := range results {
		items = append(items, c.item(m, "movie-similar", batch, i, fmt.Sprintf("Because you liked %s", title)))
	}

	c.cache.Set(key, items)
	return items, nil
}

// DiscoverGenre returns up to 2 popular movies for a named genre,
// resolving the name through the TMDB genre list.
func (c *Client) DiscoverGenre(ctx context.Context, genre string) ([]domain.ContentItem, error) {
	if c.apiKey == "" {
		return nil, domain.NewSourceError("tmdb", domain.ReasonUnauthenticated, nil)
	}

	key := cache.Key("tmdb-genre", genre)
	if items, ok := c.cache.Get(key); ok {
		return items, nil
	}

	id, err := c.genreID(ctx, genre)
	if err != nil {
		return nil, err
	}
	if id == 0 {
		return nil, nil
	}

	var resp discoverResponse
	params := url.Values{
		"with_genres": {fmt.Sprintf("%d", id)},
		"sort_by":     {"popularity.desc"},
	}
	if err := c.get(ctx, "/discover/movie", params, &resp); err != nil {
		return nil, err
	}

	batch := c.now()
	results := resp.Results
	if len(results) > genreLimit {
		results = results[:genreLimit]
	}
	items := make([]domain.ContentItem, 0, len(results))
	for i, m := range results {
		items = append(items, c.item(m, "movie-genre-"+genre, batch, i, "Popular in your favorite genres"))
	}

	c.cache.Set(key, items)
	return items, nil
}

// genreID resolves a genre name to its TMDB id, case-insensitively.
// Unknown names resolve to 0 without an error.
func (c *Client) genreID(ctx context.Context, genre string) (int, error) {
	c.genreMu.Lock()
	defer c.genreMu.Unlock()

	if c.genres == nil {
		var resp genreListResponse
		if err := c.get(ctx, "/genre/movie/list", url.Values{}, &resp); err != nil {
			return 0, err
		}
		c.genres = make(map[string]int, len(resp.Genres))
		for _, g := range resp.Genres {
			c.genres[strings.ToLower(g.Name)] = g.ID
		}
	}
	return c.genres[strings.ToLower(genre)], nil
}

// Search finds movies matching the query, capped at 10
func (c *Client) Search(ctx context.Context, query string) ([]domain.ContentItem, error) {
	if c.apiKey == "" {
		return nil, domain.NewSourceError("tmdb", domain.ReasonUnauthenticated, nil)
	}

	key := cache.Key("tmdb-search", query)
	if items, ok := c.cache.Get(key); ok {
		return items, nil
	}

	var resp discoverResponse
	if err := c.get(ctx, "/search/movie", url.Values{"query": {query}}, &resp); err != nil {
		return nil, err
	}

	batch := c.now()
	items := make([]domain.ContentItem, 0, perQueryLimit)
	for i, m := range capResults(resp.Results) {
		items = append(items, c.item(m, "movie-search", batch, i, "Matches your search"))
	}

	c.cache.Set(key, items)
	return items, nil
}

func (c *Client) discover(ctx context.Context, params url.Values) ([]movie, error) {
	var resp discoverResponse
	if err := c.get(ctx, "/discover/movie", params, &resp); err != nil {
		return nil, err
	}
	return resp.Results, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	params.Set("api_key", c.apiKey)
	reqURL := c.baseURL + path + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return domain.NewSourceError("tmdb", domain.ReasonUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return domain.NewSourceError("tmdb", domain.ReasonUnauthenticated, fmt.Errorf("status %d", resp.StatusCode))
	case resp.StatusCode != http.StatusOK:
		return domain.NewSourceError("tmdb", domain.ReasonBadResponse, fmt.Errorf("status %d", resp.StatusCode))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return domain.NewSourceError("tmdb", domain.ReasonBadResponse, err)
	}
	return nil
}

func (c *Client) item(m movie, tag string, batch time.Time, idx int, reason string) domain.ContentItem {
	imageURL := ""
	if m.PosterPath != "" {
		imageURL = c.imageBaseURL + m.PosterPath
	}

	published := batch
	year := 0
	if t, err := time.Parse("2006-01-02", m.ReleaseDate); err == nil {
		published = t
		year = t.Year()
	}

	return domain.ContentItem{
		ID:          domain.BatchID(tag, batch, idx),
		Title:       m.Title,
		Description: m.Overview,
		ImageURL:    imageURL,
		Category:    "entertainment",
		Source:      "TMDB",
		PublishedAt: published,
		URL:         fmt.Sprintf("https://www.themoviedb.org/movie/%d", m.ID),
		Type:        domain.TypeRecommendation,
		Recommendation: &domain.RecommendationMeta{
			Rating:      m.VoteAverage,
			ReleaseYear: year,
			Reason:      reason,
		},
	}
}

func capResults(movies []movie) []movie {
	if len(movies) > perQueryLimit {
		return movies[:perQueryLimit]
	}
	return movies
}
