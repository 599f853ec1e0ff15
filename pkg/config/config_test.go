package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
server:
  listen: ":9090"
  timeout: 15s

feeds:
  technology:
    - https://example.com/tech.rss
  news:
    - https://example.com/news.rss
    - https://example.com/world.rss

tmdb:
  api_key: test-key

cache:
  rss_ttl: 2m
  store_ttl: 10m

search:
  debounce: 150ms
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Listen)
	assert.Equal(t, 15*time.Second, cfg.Server.Timeout)
	assert.Equal(t, []string{"https://example.com/tech.rss"}, cfg.GetFeeds("technology"))
	assert.Len(t, cfg.GetFeeds("news"), 2)
	assert.Equal(t, "test-key", cfg.TMDB.APIKey)
	assert.Equal(t, 2*time.Minute, cfg.Cache.RSSTTL)
	assert.Equal(t, 10*time.Minute, cfg.Cache.StoreTTL)
	assert.Equal(t, 150*time.Millisecond, cfg.Search.Debounce)

	// unset values fall back to defaults
	assert.Equal(t, "https://api.themoviedb.org/3", cfg.TMDB.BaseURL)
	assert.Equal(t, 30*time.Minute, cfg.Cache.APITTL)
	assert.Equal(t, 30*time.Second, cfg.Notify.ContentInterval)
}

func TestLoad_EnvExpansion(t *testing.T) {
	t.Setenv("TEST_TMDB_KEY", "secret-from-env")
	t.Setenv("TEST_SPOTIFY_ID", "client-from-env")

	path := writeConfig(t, `
tmdb:
  api_key: ${TEST_TMDB_KEY}
spotify:
  client_id: ${TEST_SPOTIFY_ID}
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "secret-from-env", cfg.TMDB.APIKey)
	assert.Equal(t, "client-from-env", cfg.Spotify.ClientID)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load("/nonexistent/config.yml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "read config file")
	})

	t.Run("bad yaml", func(t *testing.T) {
		path := writeConfig(t, "server: [not a map")
		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse config")
	})

	t.Run("timeout too small", func(t *testing.T) {
		path := writeConfig(t, "server:\n  timeout: 500ms\n")
		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "server timeout")
	})

	t.Run("empty feed category", func(t *testing.T) {
		path := writeConfig(t, "feeds:\n  technology: []\n")
		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "feeds.technology")
	})

	t.Run("notify interval too small", func(t *testing.T) {
		path := writeConfig(t, "notify:\n  content_interval: 100ms\n")
		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "notify intervals")
	})
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, ":8080", cfg.Server.Listen)
	assert.Equal(t, 30*time.Second, cfg.Server.Timeout)
	assert.Equal(t, "file:pulse.db?cache=shared&mode=rwc&_txlock=immediate", cfg.Database.DSN)
	assert.Equal(t, 10, cfg.Database.MaxOpenConns)
	assert.Equal(t, 5*time.Minute, cfg.Cache.RSSTTL)
	assert.Equal(t, 300*time.Millisecond, cfg.Search.Debounce)
	assert.Equal(t, 100*time.Millisecond, cfg.Social.Delay)
	assert.Equal(t, 60*time.Second, cfg.Notify.UpdateInterval)

	// all five stock categories carry at least one feed
	for _, category := range []string{"news", "technology", "sports", "entertainment", "business"} {
		assert.NotEmpty(t, cfg.GetFeeds(category), category)
	}
	assert.Nil(t, cfg.GetFeeds("gardening"))
	assert.Len(t, cfg.FeedCategories(), 5)
}

func TestGetServerConfig(t *testing.T) {
	cfg := Default()
	cfg.Server.Listen = "127.0.0.1:9999"
	cfg.Server.Timeout = 42 * time.Second

	listen, timeout := cfg.GetServerConfig()
	assert.Equal(t, "127.0.0.1:9999", listen)
	assert.Equal(t, 42*time.Second, timeout)
}
