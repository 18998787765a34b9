package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"bookshelf/internal/catalog"
	"bookshelf/internal/ingest"
	"bookshelf/internal/platform/coverstore"
	"bookshelf/internal/store"

	"github.com/jackc/pgx/v5/pgxpool"
)

// OpenDB creates a pool and pings it.
func OpenDB(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("create db pool: %w", err)
	}
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database (%s): %w", RedactDSN(dsn), err)
	}
	return pool, nil
}

// CoverLocator builds the configured cover store.
func CoverLocator(ctx context.Context, cfg Config) (ingest.CoverLocator, error) {
	if cfg.Covers == CoversS3 {
		return coverstore.NewBucketFromEnv(ctx, cfg.CoverPrefix)
	}
	return coverstore.NewDir(cfg.DataDir), nil
}

// LoadLibrary reads the catalog from the configured source.
func LoadLibrary(ctx context.Context, cfg Config) (*catalog.Library, ingest.Report, error) {
	covers, err := CoverLocator(ctx, cfg)
	if err != nil {
		return nil, ingest.Report{}, err
	}

	var src ingest.Source
	switch cfg.Source {
	case SourcePostgres:
		pool, err := OpenDB(ctx, cfg.DatabaseDSN)
		if err != nil {
			return nil, ingest.Report{}, err
		}
		// The pool is only needed for the load itself.
		defer pool.Close()
		src = store.NewCatalogPG(pool)
	default:
		src = ingest.NewCSVSource(cfg.CategoriesFile, cfg.BooksFile)
	}

	slog.Debug("loading catalog", "source", cfg.Source, "covers", cfg.Covers)
	return ingest.NewLoader(src, covers).Load(ctx)
}
