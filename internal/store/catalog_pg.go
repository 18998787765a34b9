// Package store keeps the catalog's source records in Postgres.
package store

import (
	"context"
	"fmt"

	"bookshelf/internal/catalog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CatalogPG reads and seeds the catalog_categories and catalog_books tables.
// It satisfies ingest.Source.
type CatalogPG struct {
	db *pgxpool.Pool
}

func NewCatalogPG(db *pgxpool.Pool) *CatalogPG {
	return &CatalogPG{db: db}
}

func (r *CatalogPG) Categories(ctx context.Context) ([]catalog.CategoryRecord, error) {
	const query = `
	SELECT name, is_fiction
	FROM catalog_categories
	ORDER BY position
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query categories: %w", err)
	}
	defer rows.Close()

	var out []catalog.CategoryRecord
	for rows.Next() {
		var c catalog.CategoryRecord
		if err := rows.Scan(&c.Name, &c.Fiction); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *CatalogPG) Books(ctx context.Context) ([]catalog.BookRecord, error) {
	const query = `
	SELECT title, author, rating, category_name, cover_file, cover_width, cover_height
	FROM catalog_books
	ORDER BY position
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query books: %w", err)
	}
	defer rows.Close()

	var out []catalog.BookRecord
	for rows.Next() {
		var b catalog.BookRecord
		if err := rows.Scan(&b.Title, &b.Author, &b.Rating, &b.Category, &b.CoverFile, &b.CoverWidth, &b.CoverHeight); err != nil {
			return nil, fmt.Errorf("scan book: %w", err)
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Replace swaps the stored records for the given ones in a single
// transaction. Positions follow slice order.
func (r *CatalogPG) Replace(ctx context.Context, categories []catalog.CategoryRecord, books []catalog.BookRecord) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `TRUNCATE catalog_books, catalog_categories`); err != nil {
		return fmt.Errorf("truncate: %w", err)
	}

	if _, err := tx.CopyFrom(ctx,
		pgx.Identifier{"catalog_categories"},
		[]string{"position", "name", "is_fiction"},
		pgx.CopyFromSlice(len(categories), func(i int) ([]any, error) {
			c := categories[i]
			return []any{int32(i), c.Name, c.Fiction}, nil
		}),
	); err != nil {
		return fmt.Errorf("copy categories: %w", err)
	}

	if _, err := tx.CopyFrom(ctx,
		pgx.Identifier{"catalog_books"},
		[]string{"position", "title", "author", "rating", "category_name", "cover_file", "cover_width", "cover_height"},
		pgx.CopyFromSlice(len(books), func(i int) ([]any, error) {
			b := books[i]
			return []any{int32(i), b.Title, b.Author, b.Rating, b.Category, b.CoverFile, int32(b.CoverWidth), int32(b.CoverHeight)}, nil
		}),
	); err != nil {
		return fmt.Errorf("copy books: %w", err)
	}

	return tx.Commit(ctx)
}
