// Package catalog holds the reference notes shown by `patterns list` and
// `patterns describe`. Notes are markdown files with YAML frontmatter,
// embedded at build time and parsed with goldmark.
package catalog

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"
	"unicode/utf8"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"gopkg.in/yaml.v3"
)

//go:embed notes/*.md
var notesFS embed.FS

// ErrNotFound is returned by Lookup for unknown pattern names.
var ErrNotFound = errors.New("no catalog entry")

// ErrMissingTitle is returned when a note has no level-one heading.
var ErrMissingTitle = errors.New("note has no title heading")

// Entry is a parsed note.
type Entry struct {
	Name     string   // lookup key, from frontmatter or the file name
	Category string   // creational, structural or behavioral
	Title    string   // first level-one heading
	Summary  string   // first paragraph after the title
	Sections []string // level-two heading titles in order
	Body     string   // plain text rendering without the title
}

// Catalog is an ordered set of entries.
type Catalog struct {
	entries []Entry
	index   map[string]int
}

type frontmatter struct {
	Name     string `yaml:"name"`
	Category string `yaml:"category"`
}

// Load parses the embedded notes.
func Load() (*Catalog, error) {
	return LoadFS(notesFS, "notes")
}

// LoadFS parses every .md file in dir, in file name order.
func LoadFS(fsys fs.FS, dir string) (*Catalog, error) {
	files, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("read notes: %w", err)
	}

	md := goldmark.New()
	c := &Catalog{index: make(map[string]int)}
	for _, f := range files {
		if f.IsDir() || path.Ext(f.Name()) != ".md" {
			continue
		}
		src, err := fs.ReadFile(fsys, path.Join(dir, f.Name()))
		if err != nil {
			return nil, fmt.Errorf("read note %s: %w", f.Name(), err)
		}
		entry, err := parse(md, strings.TrimSuffix(f.Name(), ".md"), src)
		if err != nil {
			return nil, fmt.Errorf("parse note %s: %w", f.Name(), err)
		}
		if _, dup := c.index[entry.Name]; dup {
			return nil, fmt.Errorf("duplicate note %q", entry.Name)
		}
		c.index[entry.Name] = len(c.entries)
		c.entries = append(c.entries, entry)
	}
	return c, nil
}

// Parse parses a single note. fallbackName is used when the frontmatter
// has no name.
func Parse(fallbackName string, src []byte) (Entry, error) {
	return parse(goldmark.New(), fallbackName, src)
}

// Lookup returns the entry for name, case-insensitively.
func (c *Catalog) Lookup(name string) (Entry, error) {
	i, ok := c.index[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Entry{}, fmt.Errorf("%w for %q", ErrNotFound, name)
	}
	return c.entries[i], nil
}

// All returns a copy of the entries in load order.
func (c *Catalog) All() []Entry {
	return append([]Entry(nil), c.entries...)
}

func parse(md goldmark.Markdown, fallbackName string, src []byte) (Entry, error) {
	body, fm := extractFrontmatter(src)

	var meta frontmatter
	if fm != nil {
		if err := yaml.Unmarshal(fm, &meta); err != nil {
			return Entry{}, fmt.Errorf("frontmatter: %w", err)
		}
	}

	entry := Entry{
		Name:     strings.ToLower(strings.TrimSpace(meta.Name)),
		Category: strings.ToLower(strings.TrimSpace(meta.Category)),
	}
	if entry.Name == "" {
		entry.Name = strings.ToLower(fallbackName)
	}

	doc := md.Parser().Parse(text.NewReader(body))

	var out strings.Builder
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *ast.Heading:
			title := extractText(node, body)
			if node.Level == 1 && entry.Title == "" {
				entry.Title = title
				continue
			}
			if node.Level == 2 {
				entry.Sections = append(entry.Sections, title)
			}
			writeBlock(&out, title+"\n"+strings.Repeat("-", utf8.RuneCountInString(title)))
		case *ast.Paragraph:
			para := extractText(node, body)
			if entry.Title != "" && entry.Summary == "" {
				entry.Summary = para
			}
			writeBlock(&out, para)
		case *ast.List:
			var items []string
			for item := node.FirstChild(); item != nil; item = item.NextSibling() {
				items = append(items, "  - "+extractText(item, body))
			}
			writeBlock(&out, strings.Join(items, "\n"))
		case *ast.FencedCodeBlock, *ast.CodeBlock:
			writeBlock(&out, codeLines(node, body))
		default:
			writeBlock(&out, extractText(node, body))
		}
	}

	if entry.Title == "" {
		return Entry{}, ErrMissingTitle
	}
	entry.Body = out.String()
	return entry, nil
}

func writeBlock(sb *strings.Builder, block string) {
	if block == "" {
		return
	}
	if sb.Len() > 0 {
		sb.WriteString("\n")
	}
	sb.WriteString(block)
	sb.WriteString("\n")
}

// extractText extracts plain text from an AST node, descending into
// inline containers such as emphasis, links and code spans.
func extractText(n ast.Node, source []byte) string {
	var buf bytes.Buffer
	var walk func(ast.Node)
	walk = func(n ast.Node) {
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			switch t := c.(type) {
			case *ast.Text:
				buf.Write(t.Segment.Value(source))
				if t.SoftLineBreak() || t.HardLineBreak() {
					buf.WriteByte(' ')
				}
			case *ast.String:
				buf.Write(t.Value)
			default:
				walk(c)
			}
		}
	}
	walk(n)
	return strings.TrimSpace(buf.String())
}

func codeLines(n ast.Node, source []byte) string {
	var sb strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		sb.WriteString("    ")
		sb.Write(seg.Value(source))
	}
	return strings.TrimRight(sb.String(), "\n")
}

// extractFrontmatter splits leading "---" delimited YAML from content.
// Returns the content without frontmatter and the frontmatter bytes.
func extractFrontmatter(content []byte) ([]byte, []byte) {
	lines := bytes.Split(content, []byte("\n"))
	if len(lines) < 3 || !bytes.Equal(bytes.TrimSpace(lines[0]), []byte("---")) {
		return content, nil
	}

	for i := 1; i < len(lines); i++ {
		if bytes.Equal(bytes.TrimSpace(lines[i]), []byte("---")) {
			return bytes.Join(lines[i+1:], []byte("\n")), bytes.Join(lines[1:i], []byte("\n"))
		}
	}
	return content, nil
}
