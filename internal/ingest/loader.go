package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"bookshelf/internal/catalog"
)

type Loader struct {
	source Source
	covers CoverLocator
	logger *slog.Logger
}

func NewLoader(source Source, covers CoverLocator) *Loader {
	return &Loader{source: source, covers: covers, logger: slog.Default()}
}

// WithLogger replaces the logger used for the load summary.
func (l *Loader) WithLogger(logger *slog.Logger) *Loader {
	l.logger = logger
	return l
}

// Load reads every category, then every book. Covers are attached only when
// the locator finds the file.
func (l *Loader) Load(ctx context.Context) (*catalog.Library, Report, error) {
	report := Report{StartedAt: time.Now()}

	categories, err := l.source.Categories(ctx)
	if err != nil {
		return nil, report, fmt.Errorf("load categories: %w", err)
	}
	lib, err := catalog.NewLibrary(categories)
	if err != nil {
		return nil, report, fmt.Errorf("build library: %w", err)
	}
	report.Categories = len(categories)

	books, err := l.source.Books(ctx)
	if err != nil {
		return nil, report, fmt.Errorf("load books: %w", err)
	}

	for i, rec := range books {
		if err := ctx.Err(); err != nil {
			return nil, report, err
		}
		if strings.TrimSpace(rec.Category) == "" {
			return nil, report, fmt.Errorf("book %d %q: %w", i+1, rec.Title, catalog.ErrInvalidCategoryName)
		}
		cover, err := l.locateCover(ctx, rec)
		if err != nil {
			return nil, report, fmt.Errorf("book %d %q: %w", i+1, rec.Title, err)
		}
		if cover != nil {
			report.Covers++
		} else if rec.CoverFile != "" {
			report.MissingCovers++
		}
		lib.AddBook(rec, cover)
	}

	report.Books = lib.Len()
	report.UnknownCategories = len(lib.UnknownCategoryNames())
	report.FinishedAt = time.Now()

	l.logger.Info("catalog loaded",
		"categories", report.Categories,
		"books", report.Books,
		"covers", report.Covers,
		"missing_covers", report.MissingCovers,
		"unknown_categories", report.UnknownCategories,
		"duration_ms", report.Duration().Milliseconds(),
	)
	if report.UnknownCategories > 0 {
		l.logger.Warn("books reference unknown categories", "names", lib.UnknownCategoryNames())
	}
	return lib, report, nil
}

func (l *Loader) locateCover(ctx context.Context, rec catalog.BookRecord) (*catalog.Image, error) {
	if rec.CoverFile == "" || l.covers == nil {
		return nil, nil
	}
	ok, err := l.covers.Exists(ctx, rec.CoverFile)
	if err != nil {
		return nil, fmt.Errorf("locate cover: %w", err)
	}
	if !ok {
		return nil, nil
	}
	return &catalog.Image{File: rec.CoverFile, Width: rec.CoverWidth, Height: rec.CoverHeight}, nil
}
