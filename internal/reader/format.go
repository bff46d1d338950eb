// Package reader extracts the word stream of a book file.
package reader

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

// ErrNoContent is returned when a file was read successfully but holds no words.
var ErrNoContent = errors.New("no textual content")

// ExtractError reports a file that could not be opened or parsed.
type ExtractError struct {
	Path   string
	Format string
	Err    error
}

func (e *ExtractError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Format, e.Path, e.Err)
}

func (e *ExtractError) Unwrap() error { return e.Err }

// Format defines a file format reader for extracting words.
type Format interface {
	Name() string
	Extensions() []string
	Extract(filename string) ([]string, error)
}

var registry []Format

// Register adds a format reader to the registry.
func Register(f Format) {
	registry = append(registry, f)
}

// Lookup returns the format registered for the file's extension, falling
// back to plain text.
func Lookup(filename string) Format {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, f := range registry {
		for _, e := range f.Extensions() {
			if ext == e {
				return f
			}
		}
	}
	return &TextFormat{}
}

// ExtractWords returns the words of a file in document order.
// Failures are reported as *ExtractError; a readable file without words
// yields ErrNoContent.
func ExtractWords(filename string) ([]string, error) {
	f := Lookup(filename)
	words, err := f.Extract(filename)
	if err != nil {
		return nil, &ExtractError{Path: filename, Format: f.Name(), Err: err}
	}
	if len(words) == 0 {
		return nil, ErrNoContent
	}
	return words, nil
}

// ParseText splits text into words on any run of whitespace.
func ParseText(text string) []string {
	return strings.Fields(text)
}

// SupportedFormats returns registered format names with their extensions.
func SupportedFormats() []string {
	var out []string
	for _, f := range registry {
		out = append(out, f.Name()+" ("+strings.Join(f.Extensions(), ", ")+")")
	}
	sort.Strings(out)
	return out
}

// Extensions returns every registered file extension, sorted.
func Extensions() []string {
	var out []string
	for _, f := range registry {
		out = append(out, f.Extensions()...)
	}
	sort.Strings(out)
	return out
}
