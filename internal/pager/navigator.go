package pager

import "errors"

var (
	// ErrNoBook is returned by operations that need a loaded book.
	ErrNoBook = errors.New("pager: no book loaded")

	// ErrInvalidPageSize is returned when a page size is outside
	// [MinPageSize, MaxPageSize].
	ErrInvalidPageSize = errors.New("pager: invalid page size")
)

// Move describes the outcome of a navigation step.
type Move int

const (
	NoBook Move = iota
	Advanced
	Retreated
	AtFirstPage
	AtLastPage
)

func (m Move) String() string {
	switch m {
	case Advanced:
		return "advanced"
	case Retreated:
		return "retreated"
	case AtFirstPage:
		return "already at first page"
	case AtLastPage:
		return "already at last page"
	default:
		return "no book loaded"
	}
}

// Moved reports whether the step changed the current page.
func (m Move) Moved() bool {
	return m == Advanced || m == Retreated
}

// Navigator holds the reading state: the loaded book, the current page
// index and the configured page size. The zero value is not usable; create
// one with NewNavigator.
type Navigator struct {
	book     *Book
	index    int
	pageSize int
}

// NewNavigator creates a Navigator with no book loaded. An out of range
// pageSize falls back to DefaultPageSize.
func NewNavigator(pageSize int) *Navigator {
	if !ValidPageSize(pageSize) {
		pageSize = DefaultPageSize
	}
	return &Navigator{pageSize: pageSize}
}

// Load replaces the current book. It returns false, leaving no book loaded,
// when book has no pages.
func (n *Navigator) Load(book *Book) bool {
	n.index = 0
	if book.Empty() {
		n.book = nil
		return false
	}
	n.book = book
	if book.PageSize > 0 {
		n.pageSize = book.PageSize
	}
	return true
}

// Open paginates words with the configured page size and loads the result.
func (n *Navigator) Open(words []string) bool {
	return n.Load(NewBook(words, n.pageSize))
}

// Unload drops the current book.
func (n *Navigator) Unload() {
	n.book = nil
	n.index = 0
}

// Loaded reports whether a book is loaded.
func (n *Navigator) Loaded() bool {
	return n.book != nil
}

// Book returns the loaded book, or nil.
func (n *Navigator) Book() *Book {
	return n.book
}

// PageSize returns the configured words per page.
func (n *Navigator) PageSize() int {
	return n.pageSize
}

// Position returns the zero-based current page index and the page count.
func (n *Navigator) Position() (index, total int) {
	return n.index, n.book.Len()
}

// Current returns the page at the current index.
func (n *Navigator) Current() (Page, bool) {
	if n.book == nil {
		return nil, false
	}
	return n.book.Page(n.index)
}

// Next moves forward one page.
func (n *Navigator) Next() Move {
	if n.book == nil {
		return NoBook
	}
	if n.index >= n.book.Len()-1 {
		return AtLastPage
	}
	n.index++
	return Advanced
}

// Previous moves back one page.
func (n *Navigator) Previous() Move {
	if n.book == nil {
		return NoBook
	}
	if n.index == 0 {
		return AtFirstPage
	}
	n.index--
	return Retreated
}

// Goto jumps to page i. It returns false if i is out of range.
func (n *Navigator) Goto(i int) bool {
	if n.book == nil || i < 0 || i >= n.book.Len() {
		return false
	}
	n.index = i
	return true
}

// First jumps to the first page.
func (n *Navigator) First() bool {
	return n.Goto(0)
}

// Last jumps to the last page.
func (n *Navigator) Last() bool {
	return n.Goto(n.book.Len() - 1)
}

// Repaginate regroups the loaded book's words into pages of pageSize and
// returns to the first page. Only the grouping changes, so repeated calls
// never lose or reorder words.
func (n *Navigator) Repaginate(pageSize int) error {
	if n.book == nil {
		return ErrNoBook
	}
	if !ValidPageSize(pageSize) {
		return ErrInvalidPageSize
	}
	n.book = NewBook(n.book.Words(), pageSize)
	n.pageSize = pageSize
	n.index = 0
	return nil
}
