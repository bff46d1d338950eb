// Package display provides the sinks a page is rendered to: a simulated
// e-ink screen for the terminal, a desktop panel and a plain writer.
package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Display is an e-ink style output device. Drawn text only becomes visible
// after Refresh.
type Display interface {
	Clear()
	Draw(text string)
	Refresh() error
}

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("#888888")).
			Foreground(lipgloss.Color("#222222")).
			Background(lipgloss.Color("#E8E8E0"))
)

// Screen simulates a small e-ink panel of Columns x Rows terminal cells.
type Screen struct {
	Columns int
	Rows    int

	back      strings.Builder
	front     string
	refreshes int
}

// NewScreen creates a blank Screen.
func NewScreen(columns, rows int) *Screen {
	if columns < 1 {
		columns = 1
	}
	if rows < 1 {
		rows = 1
	}
	return &Screen{Columns: columns, Rows: rows}
}

func (s *Screen) Clear()           { s.back.Reset() }
func (s *Screen) Draw(text string) { s.back.WriteString(text) }

// Refresh commits everything drawn since the last Clear to the panel.
func (s *Screen) Refresh() error {
	s.front = s.back.String()
	s.refreshes++
	return nil
}

// Text returns the committed panel content.
func (s *Screen) Text() string { return s.front }

// Refreshes returns how many times the panel has been committed.
func (s *Screen) Refreshes() int { return s.refreshes }

// View renders the panel, word-wrapped to Columns and cut at Rows lines.
func (s *Screen) View() string {
	wrapped := lipgloss.NewStyle().Width(s.Columns).Render(s.front)
	lines := strings.Split(wrapped, "\n")
	if len(lines) > s.Rows {
		lines = lines[:s.Rows]
	}
	return panelStyle.
		Width(s.Columns).
		Height(s.Rows).
		Render(strings.Join(lines, "\n"))
}

// Writer streams every committed page to an io.Writer, separating pages
// with a form feed.
type Writer struct {
	w     io.Writer
	buf   strings.Builder
	pages int
}

// NewWriter creates a Writer sink on w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

func (d *Writer) Clear()           { d.buf.Reset() }
func (d *Writer) Draw(text string) { d.buf.WriteString(text) }

func (d *Writer) Refresh() error {
	sep := ""
	if d.pages > 0 {
		sep = "\f\n"
	}
	if _, err := fmt.Fprintf(d.w, "%s%s\n", sep, d.buf.String()); err != nil {
		return fmt.Errorf("display: write page: %w", err)
	}
	d.pages++
	return nil
}

// Pages returns the number of pages written.
func (d *Writer) Pages() int { return d.pages }
