package cmd

import (
	"context"
	"log/slog"
	"os"

	"github.com/gingerlifts/opldb/internal/config"
	oplerrors "github.com/gingerlifts/opldb/internal/errors"
	"github.com/gingerlifts/opldb/internal/opldb"
	"github.com/gingerlifts/opldb/internal/profiling"
)

// loadConfig loads the layered configuration rooted at the current
// working directory.
func loadConfig() (*config.Config, error) {
	dir, err := os.Getwd()
	if err != nil {
		return nil, oplerrors.Wrap(oplerrors.ErrCodeInternal, err)
	}

	cfg, err := config.Load(dir)
	if err != nil {
		return nil, oplerrors.Wrap(oplerrors.ErrCodeConfigInvalid, err)
	}

	return cfg, nil
}

// loadDatabase opens the three CSV tables named by cfg and builds the
// in-memory Database. The caller owns the returned Database for the
// lifetime of the command invocation; there is nothing to close.
func loadDatabase(ctx context.Context, cfg *config.Config) (*opldb.Database, error) {
	lifters, err := os.Open(cfg.Data.LiftersPath)
	if err != nil {
		return nil, oplerrors.Wrap(oplerrors.ErrCodeFileNotFound, err).
			WithDetail("path", cfg.Data.LiftersPath)
	}
	defer lifters.Close()

	meets, err := os.Open(cfg.Data.MeetsPath)
	if err != nil {
		return nil, oplerrors.Wrap(oplerrors.ErrCodeFileNotFound, err).
			WithDetail("path", cfg.Data.MeetsPath)
	}
	defer meets.Close()

	entries, err := os.Open(cfg.Data.EntriesPath)
	if err != nil {
		return nil, oplerrors.Wrap(oplerrors.ErrCodeFileNotFound, err).
			WithDetail("path", cfg.Data.EntriesPath)
	}
	defer entries.Close()

	db, err := opldb.FromCSV(ctx,
		opldb.Source{Name: cfg.Data.LiftersPath, Reader: lifters},
		opldb.Source{Name: cfg.Data.MeetsPath, Reader: meets},
		opldb.Source{Name: cfg.Data.EntriesPath, Reader: entries},
		opldb.Config{
			CachedYears:    cfg.Cache.CachedYears,
			QueryCacheSize: cfg.Cache.QueryCacheSize,
		},
	)
	if err != nil {
		return nil, oplerrors.Wrap(oplerrors.ErrCodeLoadFailed, err)
	}

	if debugMode {
		slog.Debug("database loaded", slog.String("report", profiling.Snapshot(db).String()))
	}

	return db, nil
}
