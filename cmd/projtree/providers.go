package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/hayeah/projtree/internal/config"
	"github.com/hayeah/projtree/internal/logging"
	"github.com/hayeah/projtree/internal/recent"
	"github.com/hayeah/projtree/scanner"
)

// ProvideConfig loads the config file named by --config (or the default
// location) and applies flag overrides. A broken config file falls back to
// the defaults; ProvideLogger reports it.
func ProvideConfig(args Args) (*config.Config, error) {
	cfg := config.LoadOrDefault(args.Config)
	if args.LogLevel != "" {
		if _, err := logging.ParseLevel(args.LogLevel); err != nil {
			return nil, err
		}
		cfg.LogLevel = args.LogLevel
	}
	return cfg, nil
}

// ProvideLogger builds the stderr logger. Every line carries the run id of
// this invocation.
func ProvideLogger(cfg *config.Config) (*slog.Logger, error) {
	logger, err := logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, err
	}
	logger = logger.With("run_id", uuid.NewString())
	if cfg.LoadError != nil {
		logger.Warn("using default configuration", "config", cfg.Path(), "error", cfg.LoadError)
	}
	return logger, nil
}

func ProvideScanner(logger *slog.Logger) *scanner.Scanner {
	return scanner.New(scanner.WithLogger(logger))
}

// ProvideRecentStore opens the recents database. An unusable database is
// logged and yields a nil store, so scanning keeps working without it.
func ProvideRecentStore(cfg *config.Config, logger *slog.Logger) (*recent.Store, func()) {
	db, err := recent.Open(cfg.RecentDB)
	if err != nil {
		logger.Warn("recent roots disabled", "db", cfg.RecentDB, "error", err)
		return nil, func() {}
	}
	return recent.NewStore(db, logger), func() {
		if err := db.Close(); err != nil {
			logger.Warn("failed to close recents database", "error", err)
		}
	}
}

func ProvideOutput() io.Writer {
	return os.Stdout
}
