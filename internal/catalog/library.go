package catalog

import (
	"fmt"
	"slices"
	"strings"
)

// CategoryRecord is one row of the categories source.
type CategoryRecord struct {
	Name    string
	Fiction bool
}

// BookRecord is one row of the books source. CoverFile may be empty.
type BookRecord struct {
	Title       string
	Author      string
	Rating      float64
	Category    string
	CoverFile   string
	CoverWidth  int
	CoverHeight int
}

type unknownCategory struct {
	name string
	id   int
}

// Library owns every category and the flat list of books.
//
// Categories live in a slice indexed by their ID and are never removed, so a
// book only keeps the ID of its category. Every book in the flat list is also
// in exactly one category's list, and vice versa.
//
// A Library is not safe for concurrent use; wrap it in a Service for that.
type Library struct {
	categories []*Category
	books      []*Book
	unknown    []unknownCategory
	// sourced is the number of categories given to NewLibrary; any ID at or
	// past it belongs to an auto-created category.
	sourced int
}

// NewLibrary creates a library holding the given categories in order.
// Category names must be unique.
func NewLibrary(categories []CategoryRecord) (*Library, error) {
	l := &Library{categories: make([]*Category, 0, len(categories))}
	for _, rec := range categories {
		if rec.Name == "" {
			return nil, ErrInvalidCategoryName
		}
		if _, ok := l.CategoryByName(rec.Name); ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateCategory, rec.Name)
		}
		l.appendCategory(rec.Name, rec.Fiction)
	}
	l.sourced = len(l.categories)
	return l, nil
}

func (l *Library) appendCategory(name string, fiction bool) *Category {
	c := &Category{id: len(l.categories), name: name, fiction: fiction}
	l.categories = append(l.categories, c)
	return c
}

// AddBook appends a book built from rec. When rec.Category names no existing
// category, a non-fiction one is created. Every book that lands in an
// auto-created category records its name as unknown, so a name missing from
// the category source appears once per book.
func (l *Library) AddBook(rec BookRecord, cover *Image) *Book {
	c, ok := l.CategoryByName(rec.Category)
	if !ok {
		c = l.appendCategory(rec.Category, false)
	}
	if c.id >= l.sourced {
		l.unknown = append(l.unknown, unknownCategory{name: rec.Category, id: c.id})
	}
	b := &Book{
		title:      rec.Title,
		author:     rec.Author,
		rating:     rec.Rating,
		categoryID: c.id,
		cover:      cover,
	}
	l.books = append(l.books, b)
	c.books = append(c.books, b)
	return b
}

// Categories returns the categories in load order. The slice must not be modified.
func (l *Library) Categories() []*Category { return l.categories }

// Books returns the flat catalog in load order. The slice must not be modified.
func (l *Library) Books() []*Book { return l.books }

func (l *Library) Len() int { return len(l.books) }

// CategoryByName returns the category with exactly the given name.
func (l *Library) CategoryByName(name string) (*Category, bool) {
	for _, c := range l.categories {
		if c.name == name {
			return c, true
		}
	}
	return nil, false
}

// CategoryOf resolves the category a book belongs to.
func (l *Library) CategoryOf(b *Book) *Category {
	if b == nil || b.categoryID < 0 || b.categoryID >= len(l.categories) {
		return nil
	}
	return l.categories[b.categoryID]
}

// BooksInCategory returns a copy of the named category's books,
// or an empty slice when there is no such category.
func (l *Library) BooksInCategory(name string) []*Book {
	c, ok := l.CategoryByName(name)
	if !ok {
		return []*Book{}
	}
	return slices.Clone(c.books)
}

// FindBookByTitle returns the first book in catalog order with exactly this title.
func (l *Library) FindBookByTitle(title string) (*Book, bool) {
	for _, b := range l.books {
		if b.title == title {
			return b, true
		}
	}
	return nil, false
}

// FindBooksByAuthor searches every category, in category order, for books
// whose author contains query (case-insensitive).
func (l *Library) FindBooksByAuthor(query string) []*Book {
	var out []*Book
	for _, c := range l.categories {
		out = append(out, c.FindBooksByAuthor(query)...)
	}
	return out
}

// FindCategoriesByAuthor returns the categories holding at least one book
// by exactly this author.
func (l *Library) FindCategoriesByAuthor(author string) []*Category {
	var out []*Category
	for _, c := range l.categories {
		if c.HasBookByAuthor(author) {
			out = append(out, c)
		}
	}
	return out
}

// AverageRating is the mean rating over the whole catalog.
// It returns ErrNoBooks when the catalog is empty.
func (l *Library) AverageRating() (float64, error) {
	return averageRating(l.books)
}

// CategoryWithMostBooks returns the largest category, the earliest one on ties.
// It is nil only when the library has no categories.
func (l *Library) CategoryWithMostBooks() *Category {
	var best *Category
	for _, c := range l.categories {
		if best == nil || c.CountBooks() > best.CountBooks() {
			best = c
		}
	}
	return best
}

// CategoryWithBestAverageRating returns the category with the highest average,
// the earliest one on ties. Empty categories have no average and are skipped,
// so the result is nil when no category holds a book.
func (l *Library) CategoryWithBestAverageRating() *Category {
	var (
		best    *Category
		bestAvg float64
	)
	for _, c := range l.categories {
		avg, err := c.AverageRating()
		if err != nil {
			continue
		}
		if best == nil || avg > bestAvg {
			best, bestAvg = c, avg
		}
	}
	return best
}

func (l *Library) CountBooksWithoutCover() int {
	n := 0
	for _, b := range l.books {
		if !b.HasCover() {
			n++
		}
	}
	return n
}

// HasAuthorInMultipleCategories reports whether some author has books in two
// categories with different names.
func (l *Library) HasAuthorInMultipleCategories() bool {
	seen := make(map[string]map[string]struct{})
	for _, b := range l.books {
		name := l.categories[b.categoryID].name
		names, ok := seen[b.author]
		if !ok {
			seen[b.author] = map[string]struct{}{name: {}}
			continue
		}
		if _, ok := names[name]; !ok {
			return true
		}
	}
	return false
}

// UnknownCategories returns the categories created while loading books, one
// entry per book line that referenced a missing name, in load order.
func (l *Library) UnknownCategories() []*Category {
	out := make([]*Category, 0, len(l.unknown))
	for _, u := range l.unknown {
		out = append(out, l.categories[u.id])
	}
	return out
}

// UnknownCategoryNames returns the missing names as they appeared at load time.
func (l *Library) UnknownCategoryNames() []string {
	out := make([]string, 0, len(l.unknown))
	for _, u := range l.unknown {
		out = append(out, u.name)
	}
	return out
}

func (l *Library) HasUnknownCategories() bool { return len(l.unknown) > 0 }

// DeleteBooksByAuthors removes every book written by one of the comma
// separated authors and returns how many were removed.
//
// Author names match exactly. If any author has no books, nothing is removed
// and an *AuthorsNotFoundError lists the found and missing names.
func (l *Library) DeleteBooksByAuthors(authors string) (int, error) {
	names := splitAuthors(authors)
	if len(names) == 0 {
		return 0, ErrNoAuthors
	}

	doomed := make(map[*Book]struct{})
	var found, notFound []string
	for _, name := range names {
		n := 0
		for _, b := range l.books {
			if b.author == name {
				doomed[b] = struct{}{}
				n++
			}
		}
		if n == 0 {
			notFound = append(notFound, name)
		} else {
			found = append(found, name)
		}
	}
	if len(notFound) > 0 {
		return 0, &AuthorsNotFoundError{Found: found, NotFound: notFound}
	}

	isDoomed := func(b *Book) bool {
		_, ok := doomed[b]
		return ok
	}
	touched := make(map[int]struct{})
	for b := range doomed {
		touched[b.categoryID] = struct{}{}
	}
	for id := range touched {
		c := l.categories[id]
		c.books = slices.DeleteFunc(c.books, isDoomed)
	}
	l.books = slices.DeleteFunc(l.books, isDoomed)
	return len(doomed), nil
}

func splitAuthors(authors string) []string {
	var names []string
	for _, part := range strings.Split(authors, ",") {
		name := strings.TrimSpace(part)
		if name == "" || slices.Contains(names, name) {
			continue
		}
		names = append(names, name)
	}
	return names
}

// RenameCategory gives the category oldName the name newName. It fails with
// ErrDuplicateCategory whenever newName is already taken, including by the
// category being renamed.
func (l *Library) RenameCategory(oldName, newName string) error {
	c, ok := l.CategoryByName(oldName)
	if !ok {
		return fmt.Errorf("%w: %s", ErrCategoryNotFound, oldName)
	}
	if _, taken := l.CategoryByName(newName); taken {
		return fmt.Errorf("%w: %s", ErrDuplicateCategory, newName)
	}
	if strings.TrimSpace(newName) == "" {
		return ErrInvalidCategoryName
	}
	c.rename(newName)
	return nil
}
