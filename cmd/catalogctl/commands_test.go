package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"bookshelf/internal/catalog"
	"bookshelf/internal/platform/crypto"
	"bookshelf/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, lib *catalog.Library, args ...string) (string, string, error) {
	t.Helper()
	root := newRootCmd(func(context.Context) (*catalog.Library, error) { return lib, nil })
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestStatsCommand(t *testing.T) {
	out, _, err := run(t, testutil.NewSampleLibrary(t), "stats")
	require.NoError(t, err)

	assert.Contains(t, out, "Books: 5")
	assert.Contains(t, out, "Categories: 4")
	assert.Contains(t, out, "Average rating: 4.36")
	assert.Contains(t, out, "Most books: Fiction (2)")
	assert.Contains(t, out, "Best average: NonFiction (5.00)")
	assert.Contains(t, out, "Without cover: 3")
	assert.Contains(t, out, "Unknown categories: yes")
}

func TestStatsCommand_EmptyCatalog(t *testing.T) {
	lib, err := catalog.NewLibrary(nil)
	require.NoError(t, err)

	out, _, err := run(t, lib, "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "Average rating: n/a")
	assert.NotContains(t, out, "Most books")
}

func TestBooksCommand(t *testing.T) {
	lib := testutil.NewSampleLibrary(t)

	out, _, err := run(t, lib, "books")
	require.NoError(t, err)
	assert.Contains(t, out, "Twenty Thousand Leagues")
	assert.Contains(t, out, "leagues.jpg 100x150")
	assert.Contains(t, out, "Dune")

	out, _, err = run(t, lib, "books", "--category", "Poetry")
	require.NoError(t, err)
	assert.Contains(t, out, "Odes")
	assert.NotContains(t, out, "Cosmos")

	_, _, err = run(t, lib, "books", "-c", "Drama")
	assert.ErrorIs(t, err, catalog.ErrCategoryNotFound)
}

func TestFindCommand(t *testing.T) {
	lib := testutil.NewSampleLibrary(t)

	out, _, err := run(t, lib, "find", "Cosmos")
	require.NoError(t, err)
	assert.Contains(t, out, "Carl Sagan")

	_, _, err = run(t, lib, "find", "cosmos")
	assert.ErrorIs(t, err, catalog.ErrBookNotFound)
}

func TestSearchCommand(t *testing.T) {
	lib := testutil.NewSampleLibrary(t)

	out, _, err := run(t, lib, "search", "VERNE")
	require.NoError(t, err)
	assert.Contains(t, out, "Around the World")

	out, _, err = run(t, lib, "search", "Tolkien")
	require.NoError(t, err)
	assert.Contains(t, out, "no books found")
}

func TestCategoriesOfCommand(t *testing.T) {
	out, _, err := run(t, testutil.NewSampleLibrary(t), "categories-of", "Frank Herbert")
	require.NoError(t, err)
	assert.Contains(t, out, "SciFi")
	assert.NotContains(t, out, "Fiction ")
}

func TestUnknownCommand_AfterRename(t *testing.T) {
	lib := testutil.NewSampleLibrary(t)
	require.NoError(t, lib.RenameCategory("SciFi", "Science Fiction"))

	out, _, err := run(t, lib, "unknown")
	require.NoError(t, err)
	assert.Contains(t, out, "Science Fiction")
	assert.Contains(t, out, "recorded as SciFi")
}

func TestDeleteAuthorsCommand(t *testing.T) {
	lib := testutil.NewSampleLibrary(t)

	out, _, err := run(t, lib, "delete-authors", "Julio Verne, Carl Sagan")
	require.NoError(t, err)
	assert.Contains(t, out, "deleted 3 books, 2 remain")
}

func TestDeleteAuthorsCommand_Mismatch(t *testing.T) {
	lib := testutil.NewSampleLibrary(t)

	_, errOut, err := run(t, lib, "delete-authors", "Carl Sagan,Nobody")
	require.Error(t, err)

	var notFound *catalog.AuthorsNotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, []string{"Nobody"}, notFound.NotFound)
	assert.Contains(t, errOut, "nothing deleted")
	assert.Equal(t, 5, lib.Len())
}

func TestRenameCategoryCommand(t *testing.T) {
	lib := testutil.NewSampleLibrary(t)

	out, _, err := run(t, lib, "rename-category", "Poetry", "Verse")
	require.NoError(t, err)
	assert.Contains(t, out, "renamed Poetry to Verse")

	_, _, err = run(t, lib, "rename-category", "Verse", "Fiction")
	assert.ErrorIs(t, err, catalog.ErrDuplicateCategory)

	_, _, err = run(t, lib, "rename-category", "Drama", "Theatre")
	assert.ErrorIs(t, err, catalog.ErrCategoryNotFound)
}

func TestCommand_LoaderFailure(t *testing.T) {
	boom := errors.New("no such file")
	root := newRootCmd(func(context.Context) (*catalog.Library, error) { return nil, boom })
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"stats"})

	err := root.Execute()
	assert.ErrorIs(t, err, boom)
}

func TestTokenCommand(t *testing.T) {
	t.Setenv("JWT_SECRET", "cli-secret")

	out, _, err := run(t, nil, "token", "--subject", "ops", "--role", "ADMIN")
	require.NoError(t, err)

	claims, err := crypto.ParseToken("cli-secret", string(bytes.TrimSpace([]byte(out))))
	require.NoError(t, err)
	assert.Equal(t, "ops", claims.Sub)
	assert.Equal(t, "ADMIN", claims.Role)
}

func TestTokenCommand_NoSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	_, _, err := run(t, nil, "token")
	assert.ErrorContains(t, err, "JWT_SECRET")
}

func TestUnknownCommand_OneLinePerOccurrence(t *testing.T) {
	lib := testutil.NewSampleLibrary(t)
	lib.AddBook(catalog.BookRecord{Title: "Dune Messiah", Author: "Frank Herbert", Rating: 4.1, Category: "SciFi"}, nil)

	out, _, err := run(t, lib, "unknown")
	require.NoError(t, err)
	assert.Equal(t, []string{"SciFi", "SciFi"}, strings.Fields(out))
}
