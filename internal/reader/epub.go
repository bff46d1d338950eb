package reader

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/taylorskalyo/goreader/epub"
	"golang.org/x/net/html"
)

// errNoRootfile is returned for packages whose container lists no OPF.
var errNoRootfile = errors.New("no rootfiles found in epub")

// nonContent lists elements whose text never reaches the page.
const nonContent = "script, style, template, noscript"

// selfClosing matches an empty-element tag such as <title/> or
// <script src="a.js"/>.
var selfClosing = regexp.MustCompile(`<([A-Za-z][\w:.-]*)(\s[^<>]*?)?\s*/>`)

// voidElements never take content, so the HTML parser already treats them
// as closed.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"param": true, "source": true, "track": true, "wbr": true,
}

// EPUBFormat implements Format for EPUB files.
type EPUBFormat struct{}

func init() {
	Register(&EPUBFormat{})
}

func (f *EPUBFormat) Name() string         { return "EPUB" }
func (f *EPUBFormat) Extensions() []string { return []string{".epub"} }

// Extract returns the words of every spine section in reading order.
func (f *EPUBFormat) Extract(filename string) ([]string, error) {
	rc, err := epub.OpenReader(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open epub: %w", err)
	}
	defer rc.Close()

	if len(rc.Rootfiles) == 0 {
		return nil, errNoRootfile
	}

	book := rc.Rootfiles[0]
	var words []string

	for _, ref := range book.Spine.Itemrefs {
		if ref.Item == nil {
			continue
		}
		section, err := readSection(ref.Item)
		if err != nil {
			return nil, fmt.Errorf("section %s: %w", ref.Item.HREF, err)
		}
		words = append(words, section...)
	}

	return words, nil
}

// Title returns the book title from the package metadata.
func (f *EPUBFormat) Title(filename string) (string, error) {
	rc, err := epub.OpenReader(filename)
	if err != nil {
		return "", fmt.Errorf("failed to open epub: %w", err)
	}
	defer rc.Close()

	if len(rc.Rootfiles) == 0 {
		return "", errNoRootfile
	}
	return strings.TrimSpace(rc.Rootfiles[0].Title), nil
}

func readSection(item *epub.Item) ([]string, error) {
	r, err := item.Open()
	if err != nil {
		return nil, err
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	content := string(data)
	if isXHTML(item.MediaType, content) {
		content = expandSelfClosing(content)
	}
	return ParseText(extractTextFromHTML(content)), nil
}

func isXHTML(mediaType, content string) bool {
	return mediaType == "application/xhtml+xml" ||
		strings.HasPrefix(strings.TrimSpace(content), "<?xml")
}

// expandSelfClosing rewrites XML empty-element tags of non-void elements
// as open/close pairs. An HTML parser ignores the trailing slash, so a
// bare <title/> or <script/> would otherwise swallow the rest of the
// document as raw text.
func expandSelfClosing(s string) string {
	return selfClosing.ReplaceAllStringFunc(s, func(tag string) string {
		m := selfClosing.FindStringSubmatch(tag)
		name := strings.ToLower(m[1])
		if i := strings.LastIndexByte(name, ':'); i >= 0 {
			name = name[i+1:]
		}
		if voidElements[name] {
			return tag
		}
		return "<" + m[1] + m[2] + "></" + m[1] + ">"
	})
}

// extractTextFromHTML strips markup, emitting each text node followed by a
// space so that adjacent blocks never run together.
func extractTextFromHTML(s string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return ""
	}
	doc.Find(nonContent).Remove()

	var out strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			if t := strings.TrimSpace(n.Data); t != "" {
				out.WriteString(t)
				out.WriteString(" ")
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range doc.Nodes {
		walk(n)
	}
	return out.String()
}

// ExtractTitle returns a display title for a book file: the EPUB title when
// there is one, otherwise the file name without its extension.
func ExtractTitle(filename string) string {
	if tp, ok := Lookup(filename).(interface {
		Title(string) (string, error)
	}); ok {
		if title, err := tp.Title(filename); err == nil && title != "" {
			return title
		}
	}
	base := filepath.Base(filename)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
