package ingest

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"bookshelf/internal/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadCategories(t *testing.T) {
	in := "name,isFiction\nFiction,true\nNonFiction,false\nPoetry,TRUE\n\n"

	got, err := ReadCategories(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []catalog.CategoryRecord{
		{Name: "Fiction", Fiction: true},
		{Name: "NonFiction", Fiction: false},
		{Name: "Poetry", Fiction: false},
	}, got)
}

func TestReadCategories_HeaderOnly(t *testing.T) {
	got, err := ReadCategories(strings.NewReader("name,isFiction\n"))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestReadCategories_ShortRow(t *testing.T) {
	_, err := ReadCategories(strings.NewReader("name,isFiction\nFiction\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "categories line 2")
}

func TestReadBooks(t *testing.T) {
	in := strings.Join([]string{
		"title,author,rating,categoryName,coverFileName,width,height",
		"Twenty Thousand Leagues,Jules Verne,4.5,Fiction,leagues.jpg,300,450",
		"Cosmos, Carl Sagan ,4.8,NonFiction,,,",
	}, "\n")

	got, err := ReadBooks(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, catalog.BookRecord{
		Title: "Twenty Thousand Leagues", Author: "Jules Verne", Rating: 4.5, Category: "Fiction",
		CoverFile: "leagues.jpg", CoverWidth: 300, CoverHeight: 450,
	}, got[0])
	assert.Equal(t, "Carl Sagan", got[1].Author)
	assert.Empty(t, got[1].CoverFile)
	assert.Zero(t, got[1].CoverWidth)
}

func TestReadBooks_ParseErrors(t *testing.T) {
	tests := []struct {
		name string
		row  string
		want string
	}{
		{name: "rating", row: "A,B,great,Fiction,a.jpg,1,1", want: "books line 3: parse rating"},
		{name: "width", row: "A,B,4,Fiction,a.jpg,wide,1", want: "books line 3: parse width"},
		{name: "height", row: "A,B,4,Fiction,a.jpg,1,tall", want: "books line 3: parse height"},
		{name: "fields", row: "A,B,4", want: "books line 3: expected 7 fields"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := "title,author,rating,categoryName,coverFileName,width,height\nOk,Me,1,Fiction,,,\n" + tt.row + "\n"
			_, err := ReadBooks(strings.NewReader(in))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestCSVSource_Files(t *testing.T) {
	dir := t.TempDir()
	cats := filepath.Join(dir, "categories.csv")
	books := filepath.Join(dir, "books.csv")
	require.NoError(t, os.WriteFile(cats, []byte("name,isFiction\nFiction,true\n"), 0o644))
	require.NoError(t, os.WriteFile(books, []byte("title,author,rating,categoryName,coverFileName,width,height\nDune,Frank Herbert,4.6,Fiction,,,\n"), 0o644))

	src := NewCSVSource(cats, books)
	ctx := context.Background()

	gotCats, err := src.Categories(ctx)
	require.NoError(t, err)
	assert.Len(t, gotCats, 1)

	gotBooks, err := src.Books(ctx)
	require.NoError(t, err)
	require.Len(t, gotBooks, 1)
	assert.Equal(t, "Dune", gotBooks[0].Title)
}

func TestCSVSource_MissingFile(t *testing.T) {
	src := NewCSVSource(filepath.Join(t.TempDir(), "nope.csv"), "")
	_, err := src.Categories(context.Background())
	assert.ErrorIs(t, err, os.ErrNotExist)
}
