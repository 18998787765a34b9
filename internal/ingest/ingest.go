// Package ingest builds a catalog.Library from a record source, attaching
// covers that a CoverLocator can find.
package ingest

//go:generate mockgen -destination=mocks/mock_ingest.go -package=mocks bookshelf/internal/ingest Source,CoverLocator

import (
	"context"
	"time"

	"bookshelf/internal/catalog"
)

// Source yields category and book records in load order.
type Source interface {
	Categories(ctx context.Context) ([]catalog.CategoryRecord, error)
	Books(ctx context.Context) ([]catalog.BookRecord, error)
}

// CoverLocator reports whether a cover file is available. A missing file is
// (false, nil); errors mean the locator itself failed.
type CoverLocator interface {
	Exists(ctx context.Context, name string) (bool, error)
}

// Report summarizes one load.
type Report struct {
	StartedAt         time.Time
	FinishedAt        time.Time
	Categories        int
	Books             int
	Covers            int
	MissingCovers     int
	UnknownCategories int
}

func (r Report) Duration() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}
