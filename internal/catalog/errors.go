package catalog

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNoBooks is returned when an average is requested over zero books.
	ErrNoBooks = errors.New("no books to rate")

	ErrCategoryNotFound    = errors.New("category not found")
	ErrDuplicateCategory   = errors.New("category already exists")
	ErrInvalidCategoryName = errors.New("invalid category name")

	ErrNoAuthors       = errors.New("no authors given")
	ErrAuthorsNotFound = errors.New("authors not found")
)

// AuthorsNotFoundError rejects a bulk deletion in which at least one
// requested author has no books. Nothing is deleted when it is returned.
type AuthorsNotFoundError struct {
	Found    []string
	NotFound []string
}

func (e *AuthorsNotFoundError) Error() string {
	return fmt.Sprintf("authors not found: [%s] (found: [%s])",
		strings.Join(e.NotFound, ", "), strings.Join(e.Found, ", "))
}

func (e *AuthorsNotFoundError) Is(target error) bool {
	return target == ErrAuthorsNotFound
}

// ErrBookNotFound is returned by lookups that expect exactly one book.
var ErrBookNotFound = errors.New("book not found")
