package reader

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestParseText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"simple sentence", "Hello world this is a test", []string{"Hello", "world", "this", "is", "a", "test"}},
		{"multiple spaces", "Hello    world     test", []string{"Hello", "world", "test"}},
		{"newlines and tabs", "Hello\nworld\ttest\r\n", []string{"Hello", "world", "test"}},
		{"empty string", "", []string{}},
		{"punctuation stays attached", "Hello, world! How are you?", []string{"Hello,", "world!", "How", "are", "you?"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ParseText(tt.input)
			if len(result) != len(tt.expected) {
				t.Fatalf("ParseText() = %q, want %q", result, tt.expected)
			}
			for i := range result {
				if result[i] != tt.expected[i] {
					t.Errorf("ParseText()[%d] = %q, want %q", i, result[i], tt.expected[i])
				}
			}
		})
	}
}

func TestExtractWords(t *testing.T) {
	tmpDir := t.TempDir()

	t.Run("plain text", func(t *testing.T) {
		path := filepath.Join(tmpDir, "test.txt")
		os.WriteFile(path, []byte("Hello world\nthis is  a test."), 0644)

		got, err := ExtractWords(path)
		if err != nil {
			t.Fatalf("ExtractWords: %v", err)
		}
		want := []string{"Hello", "world", "this", "is", "a", "test."}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("unknown extension falls back to text", func(t *testing.T) {
		path := filepath.Join(tmpDir, "notes.log")
		os.WriteFile(path, []byte("some log line"), 0644)

		got, err := ExtractWords(path)
		if err != nil {
			t.Fatalf("ExtractWords: %v", err)
		}
		if len(got) != 3 {
			t.Errorf("got %q", got)
		}
	})

	t.Run("whitespace only", func(t *testing.T) {
		path := filepath.Join(tmpDir, "blank.md")
		os.WriteFile(path, []byte(" \n\t \n"), 0644)

		_, err := ExtractWords(path)
		if !errors.Is(err, ErrNoContent) {
			t.Errorf("error = %v, want ErrNoContent", err)
		}
	})

	t.Run("nonexistent file", func(t *testing.T) {
		_, err := ExtractWords(filepath.Join(tmpDir, "nonexistent.txt"))
		var extractErr *ExtractError
		if !errors.As(err, &extractErr) {
			t.Fatalf("error = %v, want *ExtractError", err)
		}
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("error should unwrap to os.ErrNotExist: %v", err)
		}
	})
}

func TestLookup(t *testing.T) {
	tests := []struct {
		file string
		want string
	}{
		{"book.epub", "EPUB"},
		{"BOOK.EPUB", "EPUB"},
		{"readme.md", "Text"},
		{"story.txt", "Text"},
		{"noext", "Text"},
	}
	for _, tt := range tests {
		if got := Lookup(tt.file).Name(); got != tt.want {
			t.Errorf("Lookup(%q) = %s, want %s", tt.file, got, tt.want)
		}
	}
}

func TestSupportedFormats(t *testing.T) {
	formats := SupportedFormats()
	want := []string{"EPUB (.epub)", "Text (.txt, .text, .md, .markdown)"}
	if !reflect.DeepEqual(formats, want) {
		t.Errorf("SupportedFormats() = %v, want %v", formats, want)
	}
}

func TestExtensions(t *testing.T) {
	want := []string{".epub", ".markdown", ".md", ".text", ".txt"}
	if got := Extensions(); !reflect.DeepEqual(got, want) {
		t.Errorf("Extensions() = %v, want %v", got, want)
	}
}
