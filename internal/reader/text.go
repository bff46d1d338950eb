package reader

import "os"

// TextFormat reads plain text and Markdown files verbatim.
type TextFormat struct{}

func init() {
	Register(&TextFormat{})
}

func (f *TextFormat) Name() string { return "Text" }
func (f *TextFormat) Extensions() []string {
	return []string{".txt", ".text", ".md", ".markdown"}
}

func (f *TextFormat) Extract(filename string) ([]string, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return ParseText(string(data)), nil
}
