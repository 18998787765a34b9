package catalog

import (
	"context"
	"errors"
	"sync"
	"time"
)

// BookView is a detached copy of a book, safe to use after the lock is released.
type BookView struct {
	Title    string  `json:"title"`
	Author   string  `json:"author"`
	Rating   float64 `json:"rating"`
	Category string  `json:"category"`
	Cover    *Image  `json:"cover,omitempty"`
}

// CategoryView is a detached copy of a category. AverageRating is nil for
// an empty category.
type CategoryView struct {
	Name          string   `json:"name"`
	Fiction       bool     `json:"fiction"`
	BookCount     int      `json:"book_count"`
	AverageRating *float64 `json:"average_rating"`
}

// Stats gathers the catalog-wide figures.
type Stats struct {
	Books                      int            `json:"books"`
	Categories                 int            `json:"categories"`
	AverageRating              *float64       `json:"average_rating"`
	MostBooks                  *CategoryView  `json:"most_books"`
	BestAverageRating          *CategoryView  `json:"best_average_rating"`
	WithoutCover               int            `json:"without_cover"`
	AuthorInMultipleCategories bool           `json:"author_in_multiple_categories"`
	UnknownCategories          []CategoryView `json:"unknown_categories"`
}

// Service guards a Library for concurrent callers. Queries share a read
// lock; deletions and renames hold the write lock.
type Service struct {
	mu  sync.RWMutex
	lib *Library
}

func NewService(lib *Library) *Service {
	booksLoaded.Set(float64(lib.Len()))
	return &Service{lib: lib}
}

func (s *Service) Categories(ctx context.Context) []CategoryView {
	defer observe("categories", time.Now())
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.categoryViews(s.lib.Categories())
}

// ListBooks returns a page of the flat catalog and the total number of books.
func (s *Service) ListBooks(ctx context.Context, offset, limit int) ([]BookView, int) {
	defer observe("list_books", time.Now())
	s.mu.RLock()
	defer s.mu.RUnlock()
	books := s.lib.Books()
	total := len(books)
	if offset > total {
		offset = total
	}
	end := total
	if limit > 0 && offset+limit < total {
		end = offset + limit
	}
	return s.bookViews(books[offset:end]), total
}

func (s *Service) BooksInCategory(ctx context.Context, name string) []BookView {
	defer observe("books_in_category", time.Now())
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.bookViews(s.lib.BooksInCategory(name))
}

func (s *Service) FindBookByTitle(ctx context.Context, title string) (BookView, error) {
	defer observe("find_by_title", time.Now())
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.lib.FindBookByTitle(title)
	if !ok {
		return BookView{}, ErrBookNotFound
	}
	return s.bookView(b), nil
}

func (s *Service) SearchByAuthor(ctx context.Context, query string) []BookView {
	defer observe("search_by_author", time.Now())
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.bookViews(s.lib.FindBooksByAuthor(query))
}

func (s *Service) CategoriesByAuthor(ctx context.Context, author string) []CategoryView {
	defer observe("categories_by_author", time.Now())
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.categoryViews(s.lib.FindCategoriesByAuthor(author))
}

func (s *Service) Stats(ctx context.Context) Stats {
	defer observe("stats", time.Now())
	s.mu.RLock()
	defer s.mu.RUnlock()

	st := Stats{
		Books:                      s.lib.Len(),
		Categories:                 len(s.lib.Categories()),
		WithoutCover:               s.lib.CountBooksWithoutCover(),
		AuthorInMultipleCategories: s.lib.HasAuthorInMultipleCategories(),
		UnknownCategories:          s.categoryViews(s.lib.UnknownCategories()),
	}
	if avg, err := s.lib.AverageRating(); err == nil {
		st.AverageRating = &avg
	}
	if c := s.lib.CategoryWithMostBooks(); c != nil {
		v := categoryView(c)
		st.MostBooks = &v
	}
	if c := s.lib.CategoryWithBestAverageRating(); c != nil {
		v := categoryView(c)
		st.BestAverageRating = &v
	}
	return st
}

func (s *Service) DeleteBooksByAuthors(ctx context.Context, authors string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, err := s.lib.DeleteBooksByAuthors(authors)
	mutationTotal.WithLabelValues("delete_books", mutationResult(err)).Inc()
	if err != nil {
		return 0, err
	}
	booksDeleted.Add(float64(n))
	booksLoaded.Set(float64(s.lib.Len()))
	return n, nil
}

func (s *Service) RenameCategory(ctx context.Context, oldName, newName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	err := s.lib.RenameCategory(oldName, newName)
	mutationTotal.WithLabelValues("rename_category", mutationResult(err)).Inc()
	return err
}

func (s *Service) bookView(b *Book) BookView {
	v := BookView{
		Title:  b.Title(),
		Author: b.Author(),
		Rating: b.Rating(),
	}
	if c := s.lib.CategoryOf(b); c != nil {
		v.Category = c.Name()
	}
	if img := b.Cover(); img != nil {
		cp := *img
		v.Cover = &cp
	}
	return v
}

func (s *Service) bookViews(books []*Book) []BookView {
	out := make([]BookView, 0, len(books))
	for _, b := range books {
		out = append(out, s.bookView(b))
	}
	return out
}

func (s *Service) categoryViews(cats []*Category) []CategoryView {
	out := make([]CategoryView, 0, len(cats))
	for _, c := range cats {
		out = append(out, categoryView(c))
	}
	return out
}

func categoryView(c *Category) CategoryView {
	v := CategoryView{
		Name:      c.Name(),
		Fiction:   c.IsFiction(),
		BookCount: c.CountBooks(),
	}
	if avg, err := c.AverageRating(); err == nil {
		v.AverageRating = &avg
	}
	return v
}

func observe(query string, start time.Time) {
	queryDuration.WithLabelValues(query).Observe(time.Since(start).Seconds())
}

func isNotFound(err error) bool {
	return errors.Is(err, ErrCategoryNotFound) || errors.Is(err, ErrAuthorsNotFound) || errors.Is(err, ErrBookNotFound)
}

func isConflict(err error) bool {
	return errors.Is(err, ErrDuplicateCategory)
}
