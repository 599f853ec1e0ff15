// Package music implements the Spotify music source. The client keeps
// a bearer token obtained through the OAuth authorization code flow; a
// 401 clears the token so the next call reports unauthenticated and
// the caller serves the curated mock catalog while the user re-auths.
package music

import (
	"context"
	"encoding/json"
	"fmt"
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
	trackLimit    = 10
	topTrackLimit = 5
	defaultRating = 8.5
)

// fallbackSeeds feed the recommendations endpoint when the user's top
// tracks are unavailable or empty.
var fallbackSeeds = []string{"4iV5W9uYEdYUVa79Axb7Rh", "1uNFoZAHBGtllmzznpCI3s", "0V3wPSX9ygBnCm8psDIegu"}

// Client talks to the Spotify API
type Client struct {
	cfg    config.SpotifyConfig
	client *http.Client
	cache  *cache.Cache
	now    func() time.Time

	mu    sync.Mutex
	token string
}

// Option configures the client
type Option func(*Client)

// WithClock overrides the time source, used in tests
func WithClock(now func() time.Time) Option {
	return func(c *Client) { c.now = now }
}

// New creates a Spotify client
func New(cfg config.SpotifyConfig, cc *cache.Cache, opts ...Option) *Client {
	c := &Client{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
		cache:  cc,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// AuthURL builds the authorization redirect for the code flow
func (c *Client) AuthURL() string {
	params := url.Values{
		"client_id":     {c.cfg.ClientID},
		"response_type": {"code"},
		"redirect_uri":  {c.cfg.RedirectURI},
		"scope":         {"user-read-private user-top-read"},
	}
	return c.cfg.AuthURL + "/authorize?" + params.Encode()
}

// Authenticated reports whether a bearer token is held
func (c *Client) Authenticated() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.token != ""
}

// SetToken installs a bearer token directly
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

// Exchange trades an authorization code for an access token and stores
// it on the client.
func (c *Client) Exchange(ctx context.Context, code string) error {
	form := url.Values{
		"grant_type":   {"authorization_code"},
		"code":         {code},
		"redirect_uri": {c.cfg.RedirectURI},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.cfg.AuthURL+"/api/token", strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("create token request: %w", err)
	}
	req.SetBasicAuth(c.cfg.ClientID, c.cfg.ClientSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.client.Do(req)
	if err != nil {
		return domain.NewSourceError("spotify", domain.ReasonUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.NewSourceError("spotify", domain.ReasonUnauthenticated,
			fmt.Errorf("token exchange status %d", resp.StatusCode))
	}

	var body struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return domain.NewSourceError("spotify", domain.ReasonBadResponse, err)
	}
	if body.AccessToken == "" {
		return domain.NewSourceError("spotify", domain.ReasonBadResponse, fmt.Errorf("empty access token"))
	}

	c.SetToken(body.AccessToken)
	return nil
}

// track is the Spotify track shape
type track struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Artists []struct {
		Name string `json:"name"`
	} `json:"artists"`
	Album struct {
		Name        string `json:"name"`
		ReleaseDate string `json:"release_date"`
		Images      []struct {
			URL string `json:"url"`
		} `json:"images"`
	} `json:"album"`
	ExternalURLs struct {
		Spotify string `json:"spotify"`
	} `json:"external_urls"`
	DurationMS int `json:"duration_ms"`
}

// topTracks returns the user's most played tracks, capped at 5
func (c *Client) topTracks(ctx context.Context) ([]track, error) {
	var resp struct {
		Items []track `json:"items"`
	}
	params := url.Values{"limit": {fmt.Sprintf("%d", topTrackLimit)}}
	if err := c.get(ctx, "/me/top/tracks", params, &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}

// Recommendations returns tracks seeded from the user's top tracks.
// When top tracks cannot be read a fixed seed set keeps the endpoint
// answering for fresh accounts with no listening history.
func (c *Client) Recommendations(ctx context.Context) ([]domain.ContentItem, error) {
	key := cache.Key("spotify-recommendations", nil)
	if items, ok := c.cache.Get(key); ok {
		return items, nil
	}

	seeds := append([]string(nil), fallbackSeeds...)
	if top, err := c.topTracks(ctx); err == nil && len(top) > 0 {
		seeds = seeds[:0]
		for _, t := range top {
			seeds = append(seeds, t.ID)
		}
	}

	var resp struct {
		Tracks []track `json:"tracks"`
	}
	params := url.Values{"limit": {fmt.Sprintf("%d", trackLimit)}, "seed_tracks": {strings.Join(seeds, ",")}}
	if err := c.get(ctx, "/recommendations", params, &resp); err != nil {
		return nil, err
	}

	items := c.items(resp.Tracks, "spotify-rec", "Based on your listening history")
	c.cache.Set(key, items)
	return items, nil
}

// album is the Spotify album shape returned by the browse endpoints
type album struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Artists []struct {
		Name string `json:"name"`
	} `json:"artists"`
	ReleaseDate string `json:"release_date"`
	Images      []struct {
		URL string `json:"url"`
	} `json:"images"`
	ExternalURLs struct {
		Spotify string `json:"spotify"`
	} `json:"external_urls"`
}

// NewReleases returns the latest album releases
func (c *Client) NewReleases(ctx context.Context) ([]domain.ContentItem, error) {
	key := cache.Key("spotify-new-releases", nil)
	if items, ok := c.cache.Get(key); ok {
		return items, nil
	}

	var resp struct {
		Albums struct {
			Items []album `json:"items"`
		} `json:"albums"`
	}
	params := url.Values{"limit": {fmt.Sprintf("%d", trackLimit)}}
	if err := c.get(ctx, "/browse/new-releases", params, &resp); err != nil {
		return nil, err
	}

	batch := c.now()
	items := make([]domain.ContentItem, 0, len(resp.Albums.Items))
	for i, a := range resp.Albums.Items {
		artists := make([]string, 0, len(a.Artists))
		for _, art := range a.Artists {
			artists = append(artists, art.Name)
		}
		author := strings.Join(artists, ", ")

		imageURL := ""
		if len(a.Images) > 0 {
			imageURL = a.Images[0].URL
		}

		published := batch
		year := 0
		for _, layout := range []string{"2006-01-02", "2006"} {
			if ts, err := time.Parse(layout, a.ReleaseDate); err == nil {
				published = ts
				year = ts.Year()
				break
			}
		}

		items = append(items, domain.ContentItem{
			ID:          domain.BatchID("spotify-release", batch, i),
			Title:       a.Name,
			Description: fmt.Sprintf("New album by %s", author),
			ImageURL:    imageURL,
			Category:    "music",
			Source:      "Spotify",
			PublishedAt: published,
			URL:         a.ExternalURLs.Spotify,
			Type:        domain.TypeRecommendation,
			Recommendation: &domain.RecommendationMeta{
				Rating:      defaultRating,
				Reason:      "New release this week",
				Author:      author,
				ReleaseYear: year,
			},
		})
	}

	c.cache.Set(key, items)
	return items, nil
}

// Search finds tracks matching the query
func (c *Client) Search(ctx context.Context, query string) ([]domain.ContentItem, error) {
	key := cache.Key("spotify-search", query)
	if items, ok := c.cache.Get(key); ok {
		return items, nil
	}

	var resp struct {
		Tracks struct {
			Items []track `json:"items"`
		} `json:"tracks"`
	}
	params := url.Values{"q": {query}, "type": {"track"}, "limit": {fmt.Sprintf("%d", trackLimit)}}
	if err := c.get(ctx, "/search", params, &resp); err != nil {
		return nil, err
	}

	items := c.items(resp.Tracks.Items, "spotify-search", "Matches your search")
	c.cache.Set(key, items)
	return items, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	c.mu.Lock()
	token := c.token
	c.mu.Unlock()
	if token == "" {
		return domain.NewSourceError("spotify", domain.ReasonUnauthenticated, nil)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.cfg.APIURL+path+"?"+params.Encode(), http.NoBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.client.Do(req)
	if err != nil {
		return domain.NewSourceError("spotify", domain.ReasonUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		// token expired or revoked, drop it so the next call reports
		// unauthenticated and the UI can restart the auth flow
		c.SetToken("")
		return domain.NewSourceError("spotify", domain.ReasonUnauthenticated, fmt.Errorf("status %d", resp.StatusCode))
	case resp.StatusCode != http.StatusOK:
		return domain.NewSourceError("spotify", domain.ReasonBadResponse, fmt.Errorf("status %d", resp.StatusCode))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return domain.NewSourceError("spotify", domain.ReasonBadResponse, err)
	}
	return nil
}

func (c *Client) items(tracks []track, tag, reason string) []domain.ContentItem {
	batch := c.now()
	res := make([]domain.ContentItem, 0, len(tracks))
	for i, t := range tracks {
		artists := make([]string, 0, len(t.Artists))
		for _, a := range t.Artists {
			artists = append(artists, a.Name)
		}
		author := strings.Join(artists, ", ")

		imageURL := ""
		if len(t.Album.Images) > 0 {
			imageURL = t.Album.Images[0].URL
		}

		published := batch
		year := 0
		for _, layout := range []string{"2006-01-02", "2006"} {
			if ts, err := time.Parse(layout, t.Album.ReleaseDate); err == nil {
				published = ts
				year = ts.Year()
				break
			}
		}

		dur := time.Duration(t.DurationMS) * time.Millisecond
		res = append(res, domain.ContentItem{
			ID:          domain.BatchID(tag, batch, i),
			Title:       t.Name,
			Description: fmt.Sprintf("%s - %s • %d:%02d", author, t.Album.Name, int(dur.Minutes()), int(dur.Seconds())%60),
			ImageURL:    imageURL,
			Category:    "music",
			Source:      "Spotify",
			PublishedAt: published,
			URL:         t.ExternalURLs.Spotify,
			Type:        domain.TypeRecommendation,
			Recommendation: &domain.RecommendationMeta{
				Rating:      defaultRating,
				Reason:      reason,
				Author:      author,
				ReleaseYear: year,
			},
		})
	}
	return res
}
