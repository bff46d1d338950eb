// Package pager splits a word stream into fixed-size pages and tracks the
// reader's position over them.
package pager

import "strings"

// Page size bounds accepted from the user.
const (
	MinPageSize     = 1
	MaxPageSize     = 9999
	DefaultPageSize = 20
)

// Page is a run of consecutive words from the book.
type Page []string

// Text returns the page's words joined by single spaces.
func (p Page) Text() string {
	return strings.Join(p, " ")
}

// Book is a paginated word stream together with the page size that produced it.
type Book struct {
	Pages    []Page
	PageSize int
}

// NewBook paginates words into a Book.
func NewBook(words []string, pageSize int) *Book {
	return &Book{
		Pages:    Paginate(words, pageSize),
		PageSize: pageSize,
	}
}

// Paginate partitions words into consecutive pages of pageSize words.
// The last page holds the remainder. Empty input yields no pages.
// Paginate panics if pageSize is less than 1.
func Paginate(words []string, pageSize int) []Page {
	if pageSize < 1 {
		panic("pager: page size must be positive")
	}
	if len(words) == 0 {
		return nil
	}

	pages := make([]Page, 0, (len(words)+pageSize-1)/pageSize)
	for start := 0; start < len(words); start += pageSize {
		end := start + pageSize
		if end > len(words) {
			end = len(words)
		}
		// Cap the capacity so an append on one page can't spill into the next.
		pages = append(pages, Page(words[start:end:end]))
	}
	return pages
}

// Len returns the number of pages.
func (b *Book) Len() int {
	if b == nil {
		return 0
	}
	return len(b.Pages)
}

// Empty reports whether the book has no pages.
func (b *Book) Empty() bool {
	return b.Len() == 0
}

// WordCount returns the total number of words across all pages.
func (b *Book) WordCount() int {
	if b == nil {
		return 0
	}
	n := 0
	for _, p := range b.Pages {
		n += len(p)
	}
	return n
}

// Words flattens the pages back into the original word stream.
func (b *Book) Words() []string {
	if b.Empty() {
		return nil
	}
	words := make([]string, 0, b.WordCount())
	for _, p := range b.Pages {
		words = append(words, p...)
	}
	return words
}

// Page returns the page at index i.
func (b *Book) Page(i int) (Page, bool) {
	if i < 0 || i >= b.Len() {
		return nil, false
	}
	return b.Pages[i], true
}

// ValidPageSize reports whether n is within [MinPageSize, MaxPageSize].
func ValidPageSize(n int) bool {
	return n >= MinPageSize && n <= MaxPageSize
}

// ClampPageSize forces n into [MinPageSize, MaxPageSize].
func ClampPageSize(n int) int {
	if n < MinPageSize {
		return MinPageSize
	}
	if n > MaxPageSize {
		return MaxPageSize
	}
	return n
}
