package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"github.com/brieflyhq/briefly/pkg/config"
	"github.com/brieflyhq/briefly/pkg/db"
	"github.com/brieflyhq/briefly/pkg/digest"
	"github.com/brieflyhq/briefly/pkg/domain"
	"github.com/brieflyhq/briefly/pkg/llm"
	"github.com/brieflyhq/briefly/pkg/news"
	"github.com/brieflyhq/briefly/pkg/responder"
	"github.com/brieflyhq/briefly/pkg/scheduler"
	"github.com/brieflyhq/briefly/pkg/tracker"
	"github.com/brieflyhq/briefly/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"c" long:"config" env:"CONFIG" default:"config.yml" description:"config file path"`

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

	color.NoColor = opts.NoColor
	setupLog(opts.Debug)

	log.Printf("[INFO] starting briefly version %s", revision)

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

func run(ctx context.Context, opts Opts) error {
	cfg, err := config.Load(opts.Config)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	store, err := db.New(db.Config{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Printf("[WARN] failed to close database: %v", err)
		}
	}()

	goalTracker := tracker.New()
	digestComposer := digest.NewComposer(&trackerProvider{tracker: goalTracker})

	var fetcher *news.Fetcher
	if newsCfg := cfg.GetNewsConfig(); len(newsCfg.Feeds) > 0 {
		fetcher = news.NewFetcher(newsCfg)
		log.Printf("[INFO] live news enabled, %d feed categories", len(newsCfg.Feeds))
	}
	newsService := news.NewService(fetcher)

	var assistant server.Assistant
	if llmAssistant := llm.NewAssistant(cfg.GetLLMConfig()); llmAssistant.Enabled() {
		assistant = llmAssistant
		log.Printf("[INFO] llm assistant enabled, model %s", cfg.LLM.Model)
	} else {
		log.Print("[INFO] llm assistant not configured, rule-based responder only")
	}

	_, cleanupInterval := cfg.GetAuthConfig()
	sched := scheduler.NewScheduler(store, cleanupInterval)
	sched.Start(ctx)
	defer sched.Stop()

	srv := server.New(cfg, store, assistant, responder.New(), newsService,
		goalTracker, digestComposer, revision, opts.Debug)

	return srv.Run(ctx)
}

// trackerProvider adapts the in-memory tracker to the digest composer's
// insights interface
type trackerProvider struct {
	tracker *tracker.Tracker
}

func (p *trackerProvider) Insights(userID string, events []domain.CalendarEvent) (domain.Insights, error) {
	return p.tracker.Insights(userID, events), nil
}

func setupLog(dbg bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Out(io.Discard), lgr.Err(io.Discard)}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	colorizer := lgr.Mapper{
		ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
		WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
		InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
		DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
		CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
		TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
	}
	logOpts = append(logOpts, lgr.Map(colorizer))
	if len(secs) > 0 {
		logOpts = append(logOpts, lgr.Secret(secs...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
