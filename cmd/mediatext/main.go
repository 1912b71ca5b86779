package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/mediatext/mediatext/internal/catalog"
	"github.com/mediatext/mediatext/internal/config"
	"github.com/mediatext/mediatext/internal/logger"
	"github.com/mediatext/mediatext/internal/metadata"
)

type options struct {
	configPath  string
	catalogPath string
	language    string
	watch       bool
}

func main() {
	var opts options
	flag.StringVar(&opts.configPath, "config", "", "Path to config file")
	flag.StringVar(&opts.catalogPath, "catalog", "", "Path to catalog file (overrides catalog.path)")
	flag.StringVar(&opts.language, "language", "", "Metadata language (overrides metadata.language)")
	flag.BoolVar(&opts.watch, "watch", false, "Re-emit metadata whenever the config file changes")
	flag.Parse()

	_ = godotenv.Load()

	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "mediatext: %v\n", err)
		os.Exit(1)
	}
}

func run(opts options) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	applyOverrides(cfg, opts)

	log := logger.New(logger.Config{
		Level:      cfg.Logging.Level,
		Format:     cfg.Logging.Format,
		Path:       cfg.Logging.Path,
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
		MaxAgeDays: cfg.Logging.MaxAgeDays,
		Compress:   cfg.Logging.Compress,
	})
	defer log.Close()

	runLog := log.WithField("run_id", uuid.NewString())
	runLog.Info().
		Str("catalog", cfg.Catalog.Path).
		Str("language", cfg.Metadata.Language).
		Msg("starting mediatext")

	settings, unknown := cfg.ResolutionSettings()
	for _, name := range unknown {
		runLog.Warn().Str("provider", name).Msg("ignoring unknown provider name")
	}

	svc := metadata.NewService(settings, runLog)
	e := &emitter{svc: svc, out: os.Stdout}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := e.emit(ctx, cfg); err != nil {
		return err
	}
	if !opts.watch {
		return nil
	}

	runLog.Info().Msg("watching config for changes")
	err = config.Watch(ctx, opts.configPath, func(next *config.Config, err error) {
		if err != nil {
			runLog.Error().Err(err).Msg("failed to reload config")
			return
		}
		applyOverrides(next, opts)

		settings, unknown := next.ResolutionSettings()
		for _, name := range unknown {
			runLog.Warn().Str("provider", name).Msg("ignoring unknown provider name")
		}
		svc.SetSettings(settings)

		if err := e.emit(ctx, next); err != nil {
			runLog.Error().Err(err).Msg("failed to emit metadata")
		}
	})
	if errors.Is(err, config.ErrNoConfigFile) {
		runLog.Warn().Msg("no config file to watch")
		return nil
	}
	if err != nil {
		return err
	}

	runLog.Info().Msg("received shutdown signal")
	return nil
}

func applyOverrides(cfg *config.Config, opts options) {
	if opts.catalogPath != "" {
		cfg.Catalog.Path = opts.catalogPath
	}
	if opts.language != "" {
		cfg.Metadata.Language = opts.language
	}
}

// emitter writes one JSON document per resolution run. Runs triggered by
// config reloads are serialized.
type emitter struct {
	mu  sync.Mutex
	svc *metadata.Service
	out io.Writer
}

func (e *emitter) emit(ctx context.Context, cfg *config.Config) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	cat, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		return err
	}

	lib, err := e.svc.Library(ctx, cat, cfg.Metadata.Language)
	if err != nil {
		return fmt.Errorf("failed to resolve library: %w", err)
	}

	enc := json.NewEncoder(e.out)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(lib)
}
