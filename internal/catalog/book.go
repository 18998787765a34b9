package catalog

// Image describes a cover file found for a book at load time.
type Image struct {
	File   string `json:"file"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// Book is a single catalog entry. Title, author, rating and category are fixed
// once the book is created; only the cover can change.
type Book struct {
	title      string
	author     string
	rating     float64
	categoryID int
	cover      *Image
}

func (b *Book) Title() string   { return b.title }
func (b *Book) Author() string  { return b.author }
func (b *Book) Rating() float64 { return b.rating }

// CategoryID identifies the owning category inside its Library.
// Use Library.CategoryOf to get the Category itself.
func (b *Book) CategoryID() int { return b.categoryID }

// Cover returns the attached cover, or nil.
func (b *Book) Cover() *Image { return b.cover }

func (b *Book) HasCover() bool { return b.cover != nil }

// SetCover replaces the cover. A nil image removes it.
func (b *Book) SetCover(img *Image) { b.cover = img }
