package catalog

import "strings"

// Category groups books under a name. The fiction flag is fixed at creation.
type Category struct {
	id      int
	name    string
	fiction bool
	books   []*Book
}

func (c *Category) ID() int         { return c.id }
func (c *Category) Name() string    { return c.name }
func (c *Category) IsFiction() bool { return c.fiction }

// Books returns the live slice of books in insertion order.
// It must not be modified; deletions go through Library.DeleteBooksByAuthors.
func (c *Category) Books() []*Book { return c.books }

func (c *Category) CountBooks() int { return len(c.books) }

// AverageRating returns the mean rating of the category's books,
// or ErrNoBooks if the category is empty.
func (c *Category) AverageRating() (float64, error) {
	return averageRating(c.books)
}

// FindBooksByAuthor returns the books whose author contains query,
// ignoring case.
func (c *Category) FindBooksByAuthor(query string) []*Book {
	q := strings.ToLower(query)
	var out []*Book
	for _, b := range c.books {
		if strings.Contains(strings.ToLower(b.author), q) {
			out = append(out, b)
		}
	}
	return out
}

// HasBookByAuthor reports whether some book has exactly the given author.
func (c *Category) HasBookByAuthor(author string) bool {
	for _, b := range c.books {
		if b.author == author {
			return true
		}
	}
	return false
}

// rename does not check uniqueness; Library.RenameCategory does.
func (c *Category) rename(newName string) { c.name = newName }

func averageRating(books []*Book) (float64, error) {
	if len(books) == 0 {
		return 0, ErrNoBooks
	}
	var total float64
	for _, b := range books {
		total += b.rating
	}
	return total / float64(len(books)), nil
}
