// Package session ties the word extractor, the page navigator and a display
// together. Both front ends drive a Session from their event loop.
package session

import (
	"errors"
	"fmt"

	"github.com/metcalfc/pagr/internal/display"
	"github.com/metcalfc/pagr/internal/pager"
	"github.com/metcalfc/pagr/internal/reader"
	"go.uber.org/zap"
)

// Level ranks a Notice for the user.
type Level int

const (
	None Level = iota
	Info
	Warning
	Error
)

// Notice is a message a front end should surface after an action.
type Notice struct {
	Level Level
	Title string
	Text  string
}

// Empty reports whether there is nothing to show.
func (n Notice) Empty() bool { return n.Level == None }

func info(text string) Notice    { return Notice{Level: Info, Title: "Info", Text: text} }
func warning(text string) Notice { return Notice{Level: Warning, Title: "Warning", Text: text} }
func failure(text string) Notice { return Notice{Level: Error, Title: "Error", Text: text} }

// Session is the reader state owned by a front end.
type Session struct {
	nav     *pager.Navigator
	display display.Display
	extract func(string) ([]string, error)
	titleOf func(string) string
	logger  *zap.Logger
	title   string
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(s *Session) { s.logger = l }
}

// WithPageSize sets the words per page used for the next book.
func WithPageSize(n int) Option {
	return func(s *Session) { s.nav = pager.NewNavigator(n) }
}

// WithExtractor replaces reader.ExtractWords.
func WithExtractor(fn func(string) ([]string, error)) Option {
	return func(s *Session) { s.extract = fn }
}

// New creates a Session rendering to d with no book loaded.
func New(d display.Display, opts ...Option) *Session {
	s := &Session{
		nav:     pager.NewNavigator(pager.DefaultPageSize),
		display: d,
		extract: reader.ExtractWords,
		titleOf: reader.ExtractTitle,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Open loads the book at path and renders its first page. A file that
// cannot be read leaves the current book in place; a file without words
// unloads it.
func (s *Session) Open(path string) Notice {
	words, err := s.extract(path)
	switch {
	case errors.Is(err, reader.ErrNoContent):
		s.nav.Unload()
		s.title = ""
		s.logger.Warn("no textual content", zap.String("path", path))
		return warning("No textual content found in this ePub.")
	case err != nil:
		s.logger.Error("failed to open book", zap.String("path", path), zap.Error(err))
		return failure(fmt.Sprintf("Failed to open/parse ePub:\n%v", err))
	}

	if !s.nav.Open(words) {
		s.title = ""
		return warning("No textual content found in this ePub.")
	}
	s.title = s.titleOf(path)

	_, pages := s.nav.Position()
	s.logger.Info("book opened",
		zap.String("path", path),
		zap.String("title", s.title),
		zap.Int("words", len(words)),
		zap.Int("pages", pages),
		zap.Int("words_per_page", s.nav.PageSize()),
	)
	return s.render()
}

// Next advances one page.
func (s *Session) Next() Notice {
	switch s.nav.Next() {
	case pager.Advanced:
		return s.render()
	case pager.AtLastPage:
		return info("You are on the last page.")
	}
	return Notice{}
}

// Previous goes back one page.
func (s *Session) Previous() Notice {
	switch s.nav.Previous() {
	case pager.Retreated:
		return s.render()
	case pager.AtFirstPage:
		return info("You are on the first page.")
	}
	return Notice{}
}

// First jumps to the first page.
func (s *Session) First() Notice {
	if !s.nav.First() {
		return Notice{}
	}
	return s.render()
}

// Last jumps to the last page.
func (s *Session) Last() Notice {
	if !s.nav.Last() {
		return Notice{}
	}
	return s.render()
}

// SetPageSize regroups the loaded book into pages of n words and shows the
// first page.
func (s *Session) SetPageSize(n int) Notice {
	err := s.nav.Repaginate(n)
	switch {
	case errors.Is(err, pager.ErrNoBook):
		return info("Open an ePub first before setting words/page.")
	case errors.Is(err, pager.ErrInvalidPageSize):
		return failure(fmt.Sprintf("Words per page must be between %d and %d.",
			pager.MinPageSize, pager.MaxPageSize))
	case err != nil:
		return failure(err.Error())
	}

	_, pages := s.nav.Position()
	s.logger.Info("repaginated", zap.Int("words_per_page", n), zap.Int("pages", pages))
	return s.render()
}

// Render draws the current page. It does nothing when no book is loaded.
func (s *Session) Render() error {
	page, ok := s.nav.Current()
	if !ok {
		return nil
	}
	s.display.Clear()
	s.display.Draw(page.Text())
	return s.display.Refresh()
}

func (s *Session) render() Notice {
	if err := s.Render(); err != nil {
		s.logger.Error("render failed", zap.Error(err))
		return failure(fmt.Sprintf("Failed to refresh display:\n%v", err))
	}
	idx, _ := s.nav.Position()
	s.logger.Debug("page rendered", zap.Int("page", idx+1))
	return Notice{}
}

// Loaded reports whether a book is open.
func (s *Session) Loaded() bool { return s.nav.Loaded() }

// Title returns the open book's title.
func (s *Session) Title() string { return s.title }

// WindowTitle returns base, followed by the book title while a book is open.
func (s *Session) WindowTitle(base string) string {
	if !s.nav.Loaded() || s.title == "" {
		return base
	}
	return base + " - " + s.title
}

// PageSize returns the words per page.
func (s *Session) PageSize() int { return s.nav.PageSize() }

// Position returns the one-based current page and the page count.
func (s *Session) Position() (current, total int) {
	idx, total := s.nav.Position()
	if total == 0 {
		return 0, 0
	}
	return idx + 1, total
}

// Status summarizes the reading position for a status line.
func (s *Session) Status() string {
	if !s.nav.Loaded() {
		return fmt.Sprintf("No book loaded | %d words/page", s.nav.PageSize())
	}
	current, total := s.Position()
	status := fmt.Sprintf("Page %d/%d | %d words/page", current, total, s.nav.PageSize())
	if s.title != "" {
		status += " | " + s.title
	}
	return status
}

// Pages renders every page in order, starting from the first. It is used for
// non-interactive output.
func (s *Session) Pages() error {
	if !s.nav.First() {
		return pager.ErrNoBook
	}
	for {
		if err := s.Render(); err != nil {
			return err
		}
		if s.nav.Next() != pager.Advanced {
			return nil
		}
	}
}
