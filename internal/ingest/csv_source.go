package ingest

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"bookshelf/internal/catalog"
)

const (
	categoryFields = 2
	bookFields     = 7
)

// CSVSource reads the categories and books files. Both start with a header
// line that is skipped.
type CSVSource struct {
	CategoriesPath string
	BooksPath      string
}

func NewCSVSource(categoriesPath, booksPath string) *CSVSource {
	return &CSVSource{CategoriesPath: categoriesPath, BooksPath: booksPath}
}

func (s *CSVSource) Categories(ctx context.Context) ([]catalog.CategoryRecord, error) {
	f, err := os.Open(s.CategoriesPath)
	if err != nil {
		return nil, fmt.Errorf("open categories: %w", err)
	}
	defer f.Close()
	return ReadCategories(f)
}

func (s *CSVSource) Books(ctx context.Context) ([]catalog.BookRecord, error) {
	f, err := os.Open(s.BooksPath)
	if err != nil {
		return nil, fmt.Errorf("open books: %w", err)
	}
	defer f.Close()
	return ReadBooks(f)
}

// ReadCategories parses "name,isFiction" rows. Only the literal "true" marks
// a fiction category.
func ReadCategories(r io.Reader) ([]catalog.CategoryRecord, error) {
	var out []catalog.CategoryRecord
	err := readRows(r, "categories", categoryFields, func(fields []string) error {
		out = append(out, catalog.CategoryRecord{
			Name:    fields[0],
			Fiction: fields[1] == "true",
		})
		return nil
	})
	return out, err
}

// ReadBooks parses "title,author,rating,categoryName,coverFileName,width,height"
// rows. Width and height may be blank when there is no cover.
func ReadBooks(r io.Reader) ([]catalog.BookRecord, error) {
	var out []catalog.BookRecord
	err := readRows(r, "books", bookFields, func(fields []string) error {
		rating, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return fmt.Errorf("parse rating: %w", err)
		}
		width, err := parseDimension(fields[5])
		if err != nil {
			return fmt.Errorf("parse width: %w", err)
		}
		height, err := parseDimension(fields[6])
		if err != nil {
			return fmt.Errorf("parse height: %w", err)
		}
		out = append(out, catalog.BookRecord{
			Title:       fields[0],
			Author:      fields[1],
			Rating:      rating,
			Category:    fields[3],
			CoverFile:   fields[4],
			CoverWidth:  width,
			CoverHeight: height,
		})
		return nil
	})
	return out, err
}

func readRows(r io.Reader, name string, minFields int, fn func([]string) error) error {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header := true
	for {
		fields, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		line, _ := cr.FieldPos(0)
		if header {
			header = false
			continue
		}
		if len(fields) < minFields {
			return fmt.Errorf("%s line %d: expected %d fields, got %d", name, line, minFields, len(fields))
		}
		for i := range fields {
			fields[i] = strings.TrimSpace(fields[i])
		}
		if err := fn(fields); err != nil {
			return fmt.Errorf("%s line %d: %w", name, line, err)
		}
	}
}

func parseDimension(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.Atoi(s)
}
