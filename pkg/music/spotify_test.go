package music

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/pulse/pkg/cache"
	"github.com/umputun/pulse/pkg/config"
	"github.com/umputun/pulse/pkg/domain"
)

func testConfig(authURL, apiURL string) config.SpotifyConfig {
	return config.SpotifyConfig{
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		RedirectURI:  "http://localhost:3000/callback",
		AuthURL:      authURL,
		APIURL:       apiURL,
		Timeout:      3 * time.Second,
	}
}

const trackJSON = `{"id":"t1","name":"Test Track","artists":[{"name":"Artist One"},{"name":"Artist Two"}],
	"album":{"name":"Test Album","release_date":"2022-05-20","images":[{"url":"https://img.example.com/a.jpg"}]},
	"external_urls":{"spotify":"https://open.spotify.com/track/t1"},"duration_ms":213000}`

func TestClient_Exchange(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/token", r.URL.Path)
		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, "client-id", user)
		assert.Equal(t, "client-secret", pass)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "authorization_code", r.PostForm.Get("grant_type"))
		assert.Equal(t, "the-code", r.PostForm.Get("code"))
		fmt.Fprint(w, `{"access_token":"fresh-token"}`)
	}))
	defer ts.Close()

	c := New(testConfig(ts.URL, "http://unused"), cache.New(30*time.Minute))
	require.False(t, c.Authenticated())

	err := c.Exchange(context.Background(), "the-code")
	require.NoError(t, err)
	assert.True(t, c.Authenticated())
}

func TestClient_Exchange_Rejected(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer ts.Close()

	c := New(testConfig(ts.URL, "http://unused"), cache.New(30*time.Minute))
	err := c.Exchange(context.Background(), "bad-code")
	require.Error(t, err)
	assert.True(t, domain.IsSourceError(err))
	assert.False(t, c.Authenticated())
}

func TestClient_Recommendations(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer good-token", r.Header.Get("Authorization"))
		switch r.URL.Path {
		case "/me/top/tracks":
			require.Equal(t, "5", r.URL.Query().Get("limit"))
			fmt.Fprintf(w, `{"items":[%s]}`, trackJSON)
		case "/recommendations":
			assert.Equal(t, "t1", r.URL.Query().Get("seed_tracks"), "seeds come from the top tracks")
			fmt.Fprintf(w, `{"tracks":[%s]}`, trackJSON)
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer ts.Close()

	c := New(testConfig("http://unused", ts.URL), cache.New(30*time.Minute))
	c.SetToken("good-token")

	items, err := c.Recommendations(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)

	assert.Equal(t, "Test Track", items[0].Title)
	assert.Equal(t, "Artist One, Artist Two - Test Album • 3:33", items[0].Description)
	assert.Equal(t, "music", items[0].Category)
	assert.Equal(t, "Artist One, Artist Two", items[0].Recommendation.Author)
	assert.Equal(t, 2022, items[0].Recommendation.ReleaseYear)
	assert.InDelta(t, 8.5, items[0].Recommendation.Rating, 0.001, "live tracks carry the default rating")
}

func TestClient_Recommendations_FallbackSeeds(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/me/top/tracks":
			w.WriteHeader(http.StatusServiceUnavailable)
		case "/recommendations":
			assert.Equal(t, "4iV5W9uYEdYUVa79Axb7Rh,1uNFoZAHBGtllmzznpCI3s,0V3wPSX9ygBnCm8psDIegu",
				r.URL.Query().Get("seed_tracks"), "fixed seeds when top tracks are unavailable")
			fmt.Fprintf(w, `{"tracks":[%s]}`, trackJSON)
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer ts.Close()

	c := New(testConfig("http://unused", ts.URL), cache.New(30*time.Minute))
	c.SetToken("good-token")

	items, err := c.Recommendations(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
}

func TestClient_Recommendations_NoToken(t *testing.T) {
	c := New(testConfig("http://unused", "http://unused"), cache.New(30*time.Minute))

	_, err := c.Recommendations(context.Background())
	require.Error(t, err)
	var se *domain.SourceError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, domain.ReasonUnauthenticated, se.Reason)
}

func TestClient_Recommendations_TokenExpired(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer ts.Close()

	c := New(testConfig("http://unused", ts.URL), cache.New(30*time.Minute))
	c.SetToken("stale-token")

	_, err := c.Recommendations(context.Background())
	require.Error(t, err)
	var se *domain.SourceError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, domain.ReasonUnauthenticated, se.Reason)
	assert.False(t, c.Authenticated(), "401 must clear the stored token")
}

func TestClient_Search(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "arijit", r.URL.Query().Get("q"))
		assert.Equal(t, "track", r.URL.Query().Get("type"))
		fmt.Fprintf(w, `{"tracks":{"items":[%s]}}`, trackJSON)
	}))
	defer ts.Close()

	c := New(testConfig("http://unused", ts.URL), cache.New(30*time.Minute))
	c.SetToken("good-token")

	items, err := c.Search(context.Background(), "arijit")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "https://open.spotify.com/track/t1", items[0].URL)
}

func TestClient_NewReleases(t *testing.T) {
	var hits int
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		require.Equal(t, "/browse/new-releases", r.URL.Path)
		require.Equal(t, "Bearer good-token", r.Header.Get("Authorization"))
		fmt.Fprint(w, `{"albums":{"items":[{"id":"a1","name":"Fresh Album",
			"artists":[{"name":"Artist One"}],"release_date":"2024-11-01",
			"images":[{"url":"https://img.example.com/alb.jpg"}],
			"external_urls":{"spotify":"https://open.spotify.com/album/a1"}}]}}`)
	}))
	defer ts.Close()

	c := New(testConfig("http://unused", ts.URL), cache.New(30*time.Minute))
	c.SetToken("good-token")

	items, err := c.NewReleases(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Fresh Album", items[0].Title)
	assert.Equal(t, "New album by Artist One", items[0].Description)
	assert.Equal(t, "New release this week", items[0].Recommendation.Reason)
	assert.Equal(t, 2024, items[0].Recommendation.ReleaseYear)
	assert.InDelta(t, 8.5, items[0].Recommendation.Rating, 0.001)
	assert.Equal(t, "https://open.spotify.com/album/a1", items[0].URL)

	// second call served from cache
	_, err = c.NewReleases(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, hits)
}

func TestClient_NewReleases_NoToken(t *testing.T) {
	c := New(testConfig("http://unused", "http://unused"), cache.New(30*time.Minute))

	_, err := c.NewReleases(context.Background())
	require.Error(t, err)
	var se *domain.SourceError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, domain.ReasonUnauthenticated, se.Reason)
}

func TestClient_AuthURL(t *testing.T) {
	c := New(testConfig("https://accounts.example.com", "http://unused"), cache.New(time.Minute))
	u := c.AuthURL()
	assert.Contains(t, u, "https://accounts.example.com/authorize?")
	assert.Contains(t, u, "client_id=client-id")
	assert.Contains(t, u, "response_type=code")
}
