package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server struct {
		Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
		Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
	} `yaml:"server" json:"server" jsonschema:"description=Server configuration"`

	Database struct {
		DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:pulse.db?cache=shared&mode=rwc,description=Database connection string"`
		MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
		MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
		ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
	} `yaml:"database" json:"database" jsonschema:"description=Database configuration"`

	Feeds map[string][]string `yaml:"feeds" json:"feeds" jsonschema:"description=RSS feed URLs keyed by category"`

	TMDB TMDBConfig `yaml:"tmdb" json:"tmdb" jsonschema:"description=TMDB movie catalog configuration"`

	Spotify SpotifyConfig `yaml:"spotify" json:"spotify" jsonschema:"description=Spotify music integration configuration"`

	Cache CacheConfig `yaml:"cache" json:"cache" jsonschema:"description=Cache TTL configuration"`

	Social struct {
		Delay time.Duration `yaml:"delay" json:"delay" jsonschema:"default=100ms,description=Artificial delay for mock social source"`
	} `yaml:"social" json:"social" jsonschema:"description=Social source configuration"`

	Search struct {
		Debounce time.Duration `yaml:"debounce" json:"debounce" jsonschema:"default=300ms,description=Search debounce interval"`
	} `yaml:"search" json:"search" jsonschema:"description=Search configuration"`

	Notify struct {
		ContentInterval time.Duration `yaml:"content_interval" json:"content_interval" jsonschema:"default=30s,description=Interval between simulated new-content events"`
		UpdateInterval  time.Duration `yaml:"update_interval" json:"update_interval" jsonschema:"default=60s,description=Interval between simulated content-update events"`
	} `yaml:"notify" json:"notify" jsonschema:"description=Real-time notification configuration"`
}

// TMDBConfig holds movie catalog settings
type TMDBConfig struct {
	APIKey       string        `yaml:"api_key" json:"api_key" jsonschema:"description=TMDB API key (can use environment variable)"`
	BaseURL      string        `yaml:"base_url" json:"base_url" jsonschema:"default=https://api.themoviedb.org/3,description=TMDB API base URL"`
	ImageBaseURL string        `yaml:"image_base_url" json:"image_base_url" jsonschema:"default=https://image.tmdb.org/t/p/w500,description=TMDB poster image base URL"`
	Timeout      time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=10s,description=Request timeout"`
}

// SpotifyConfig holds music integration settings
type SpotifyConfig struct {
	ClientID     string        `yaml:"client_id" json:"client_id" jsonschema:"description=Spotify client ID"`
	ClientSecret string        `yaml:"client_secret" json:"client_secret" jsonschema:"description=Spotify client secret"`
	RedirectURI  string        `yaml:"redirect_uri" json:"redirect_uri" jsonschema:"default=http://localhost:3000/callback,description=OAuth redirect URI"`
	AuthURL      string        `yaml:"auth_url" json:"auth_url" jsonschema:"default=https://accounts.spotify.com,description=Spotify accounts base URL"`
	APIURL       string        `yaml:"api_url" json:"api_url" jsonschema:"default=https://api.spotify.com/v1,description=Spotify API base URL"`
	Timeout      time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=10s,description=Request timeout"`
}

// CacheConfig holds TTLs for the caching layers
type CacheConfig struct {
	APITTL      time.Duration `yaml:"api_ttl" json:"api_ttl" jsonschema:"default=30m,description=Adapter-level cache TTL for news and search wrappers"`
	RSSTTL      time.Duration `yaml:"rss_ttl" json:"rss_ttl" jsonschema:"default=5m,description=RSS feed cache TTL"`
	StoreTTL    time.Duration `yaml:"store_ttl" json:"store_ttl" jsonschema:"default=5m,description=Store section cache duration"`
	FeedTimeout time.Duration `yaml:"feed_timeout" json:"feed_timeout" jsonschema:"default=3s,description=Per-feed fetch timeout"`
}

// defaultFeeds mirror the stock per-category feed list
var defaultFeeds = map[string][]string{
	"news": {
		"https://feeds.bbci.co.uk/news/rss.xml",
		"https://feeds.reuters.com/reuters/topNews",
	},
	"technology": {
		"https://feeds.feedburner.com/TechCrunch",
		"https://www.wired.com/feed/rss",
	},
	"sports": {
		"https://feeds.bbci.co.uk/sport/rss.xml",
		"https://www.espn.com/espn/rss/news",
	},
	"entertainment": {
		"https://feeds.feedburner.com/EWcom",
		"https://www.hollywoodreporter.com/feed",
	},
	"business": {
		"https://feeds.reuters.com/reuters/businessNews",
		"https://feeds.bbci.co.uk/news/business/rss.xml",
	},
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.setDefaults()

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

// Default returns a configuration with all defaults applied, used when
// no config file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.setDefaults()
	return cfg
}

func (c *Config) setDefaults() {
	if c.Server.Listen == "" {
		c.Server.Listen = ":8080"
	}
	if c.Server.Timeout == 0 {
		c.Server.Timeout = 30 * time.Second
	}

	if c.Database.DSN == "" {
		c.Database.DSN = "file:pulse.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 10
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 3600
	}

	if len(c.Feeds) == 0 {
		c.Feeds = defaultFeeds
	}

	if c.TMDB.BaseURL == "" {
		c.TMDB.BaseURL = "https://api.themoviedb.org/3"
	}
	if c.TMDB.ImageBaseURL == "" {
		c.TMDB.ImageBaseURL = "https://image.tmdb.org/t/p/w500"
	}
	if c.TMDB.Timeout == 0 {
		c.TMDB.Timeout = 10 * time.Second
	}

	if c.Spotify.RedirectURI == "" {
		c.Spotify.RedirectURI = "http://localhost:3000/callback"
	}
	if c.Spotify.AuthURL == "" {
		c.Spotify.AuthURL = "https://accounts.spotify.com"
	}
	if c.Spotify.APIURL == "" {
		c.Spotify.APIURL = "https://api.spotify.com/v1"
	}
	if c.Spotify.Timeout == 0 {
		c.Spotify.Timeout = 10 * time.Second
	}

	if c.Cache.APITTL == 0 {
		c.Cache.APITTL = 30 * time.Minute
	}
	if c.Cache.RSSTTL == 0 {
		c.Cache.RSSTTL = 5 * time.Minute
	}
	if c.Cache.StoreTTL == 0 {
		c.Cache.StoreTTL = 5 * time.Minute
	}
	if c.Cache.FeedTimeout == 0 {
		c.Cache.FeedTimeout = 3 * time.Second
	}

	if c.Social.Delay == 0 {
		c.Social.Delay = 100 * time.Millisecond
	}
	if c.Search.Debounce == 0 {
		c.Search.Debounce = 300 * time.Millisecond
	}

	if c.Notify.ContentInterval == 0 {
		c.Notify.ContentInterval = 30 * time.Second
	}
	if c.Notify.UpdateInterval == 0 {
		c.Notify.UpdateInterval = 60 * time.Second
	}
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}
	if cfg.Cache.FeedTimeout < 100*time.Millisecond {
		return fmt.Errorf("cache.feed_timeout must be at least 100ms")
	}
	for category, urls := range cfg.Feeds {
		if len(urls) == 0 {
			return fmt.Errorf("feeds.%s has no URLs", category)
		}
	}
	if cfg.Notify.ContentInterval < time.Second || cfg.Notify.UpdateInterval < time.Second {
		return fmt.Errorf("notify intervals must be at least 1 second")
	}
	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// GetFeeds returns the configured feed URLs for a category, nil when the
// category has no feeds.
func (c *Config) GetFeeds(category string) []string {
	return c.Feeds[category]
}

// FeedCategories returns all categories with configured feeds
func (c *Config) FeedCategories() []string {
	res := make([]string, 0, len(c.Feeds))
	for category := range c.Feeds {
		res = append(res, category)
	}
	return res
}
