package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"github.com/umputun/pulse/pkg/aggregator"
	"github.com/umputun/pulse/pkg/cache"
	"github.com/umputun/pulse/pkg/config"
	"github.com/umputun/pulse/pkg/feed"
	"github.com/umputun/pulse/pkg/movies"
	"github.com/umputun/pulse/pkg/music"
	"github.com/umputun/pulse/pkg/notify"
	"github.com/umputun/pulse/pkg/recommend"
	"github.com/umputun/pulse/pkg/social"
	"github.com/umputun/pulse/pkg/store"
	"github.com/umputun/pulse/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"f" long:"config" env:"CONFIG" description:"config file (yaml)"`
	Listen string `short:"l" long:"listen" env:"LISTEN" description:"listen address, overrides config"`

	// Common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	setupLog(opts.Debug, opts.NoColor)

	log.Printf("[INFO] starting pulse version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[INFO] termination signal received")
		cancel()
	}()

	if err := run(ctx, opts); err != nil {
		log.Printf("[ERROR] %v", err)
		cancel()
		os.Exit(1)
	}
	cancel()

	log.Print("[INFO] shutdown complete")
}

// run wires all components together and starts the server
func run(ctx context.Context, opts Opts) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	persister, err := store.NewSQLitePersister(store.DBConfig{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("open persister: %w", err)
	}
	defer func() {
		if err := persister.Close(); err != nil {
			log.Printf("[WARN] persister close failed: %v", err)
		}
	}()

	newsSource := feed.New(cfg.Feeds, cache.New(cfg.Cache.RSSTTL), cfg.Cache.FeedTimeout)
	movieSource := movies.New(cfg.TMDB, cache.New(cfg.Cache.APITTL))
	musicSource := music.New(cfg.Spotify, cache.New(cfg.Cache.APITTL))
	socialSource := social.New(cfg.Social.Delay)

	recommender := recommend.New(movieSource, musicSource)
	agg := aggregator.New(newsSource, movieSource, musicSource, socialSource, recommender)

	st, err := store.New(ctx, agg, persister, cfg.Cache.StoreTTL,
		store.WithDebounce(cfg.Search.Debounce))
	if err != nil {
		return fmt.Errorf("init store: %w", err)
	}

	notifier := notify.New(cfg.Notify.ContentInterval, cfg.Notify.UpdateInterval)
	notifier.Connect()
	defer notifier.Disconnect()

	srv := server.New(cfg, st, socialSource, musicSource, notifier, revision, opts.Debug)
	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// loadConfig reads the config file when given, defaults otherwise. The
// listen flag wins over the config value.
func loadConfig(opts Opts) (*config.Config, error) {
	cfg := config.Default()
	if opts.Config != "" {
		loaded, err := config.Load(opts.Config)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if opts.Listen != "" {
		cfg.Server.Listen = opts.Listen
	}
	return cfg, nil
}

func setupLog(dbg, noColor bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.CallerFile, lgr.CallerFunc, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	if !noColor {
		colorizer := lgr.Mapper{
			ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
			WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
			InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
			DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
			CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
			TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
		}
		logOpts = append(logOpts, lgr.Map(colorizer))
	}

	if len(secs) > 0 {
		logOpts = append(logOpts, lgr.Secret(secs...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
