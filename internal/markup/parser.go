package markup

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	gohtml "html"
	"strings"
	"unicode/utf8"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
)

// ErrParse indicates the input could not be tokenized.
var ErrParse = errors.New("markup parse failed")

// nestedBullet prefixes items of a list nested inside a list item.
const nestedBullet = "– "

// Parser converts Markdown text into top-level block nodes in document order.
type Parser interface {
	Parse(ctx context.Context, content string) ([]Node, error)
}

// GoldmarkParser parses Markdown using goldmark (pure Go) with GFM tables.
type GoldmarkParser struct {
	md goldmark.Markdown
}

// NewGoldmarkParser creates a GoldmarkParser with table, strikethrough and
// linkify extensions.
func NewGoldmarkParser() *GoldmarkParser {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.Table,
			extension.Strikethrough,
			extension.Linkify,
		),
		goldmark.WithRendererOptions(
			html.WithXHTML(),
			// Raw inline tags such as <b> must survive into Node.Content;
			// the PDF renderer only draws the tags it knows.
			html.WithUnsafe(),
		),
	)
	return &GoldmarkParser{md: md}
}

// Parse converts content into top-level nodes. Cancellation is checked
// between top-level blocks.
func (p *GoldmarkParser) Parse(ctx context.Context, content string) ([]Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !utf8.ValidString(content) {
		return nil, fmt.Errorf("%w: input is not valid UTF-8", ErrParse)
	}

	source := []byte(content)
	doc := p.md.Parser().Parse(text.NewReader(source))
	b := &builder{source: source, r: p.md.Renderer()}

	var nodes []Node
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		node, err := b.block(n)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrParse, err)
		}
		nodes = append(nodes, node)
	}
	return nodes, nil
}

// builder converts goldmark block nodes into Nodes.
type builder struct {
	source []byte
	r      renderer.Renderer
}

func (b *builder) block(n ast.Node) (Node, error) {
	switch v := n.(type) {
	case *ast.Heading:
		content, err := b.inline(v)
		return Node{Kind: headingKind(v.Level), Content: content}, err

	case *ast.Paragraph:
		content, err := b.inline(v)
		return Node{Kind: KindParagraph, Content: content}, err

	case *ast.List:
		kind := KindUnorderedList
		if v.IsOrdered() {
			kind = KindOrderedList
		}
		items, err := b.listItems(v)
		return Node{Kind: kind, Children: items}, err

	case *extast.Table:
		rows, err := b.tableRows(v)
		return Node{Kind: KindTable, Children: rows}, err

	default:
		return Node{Kind: KindOther, Content: strings.TrimSpace(rawText(n, b.source))}, nil
	}
}

func headingKind(level int) Kind {
	switch level {
	case 2:
		return KindHeading2
	case 3:
		return KindHeading3
	case 4:
		return KindHeading4
	default:
		return KindOther
	}
}

// inline renders the inline children of n as an HTML fragment.
func (b *builder) inline(n ast.Node) (string, error) {
	var buf bytes.Buffer
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if err := b.r.Render(&buf, b.source, c); err != nil {
			return "", fmt.Errorf("rendering %s: %w", c.Kind(), err)
		}
	}
	return strings.TrimSpace(buf.String()), nil
}

func (b *builder) listItems(l *ast.List) ([]Node, error) {
	var items []Node
	for c := l.FirstChild(); c != nil; c = c.NextSibling() {
		li, ok := c.(*ast.ListItem)
		if !ok {
			continue
		}
		content, err := b.listItem(li)
		if err != nil {
			return nil, err
		}
		items = append(items, Node{Kind: KindListItem, Content: content})
	}
	return items, nil
}

// listItem flattens an item into one fragment. Loose paragraphs and nested
// lists become separate lines joined with <br/>.
func (b *builder) listItem(li *ast.ListItem) (string, error) {
	var parts []string
	for c := li.FirstChild(); c != nil; c = c.NextSibling() {
		switch v := c.(type) {
		case *ast.TextBlock, *ast.Paragraph:
			s, err := b.inline(v)
			if err != nil {
				return "", err
			}
			parts = append(parts, s)

		case *ast.List:
			nested, err := b.listItems(v)
			if err != nil {
				return "", err
			}
			for i, item := range nested {
				prefix := nestedBullet
				if v.IsOrdered() {
					prefix = fmt.Sprintf("%d. ", i+1)
				}
				parts = append(parts, prefix+item.Content)
			}

		default:
			if s := strings.TrimSpace(rawText(v, b.source)); s != "" {
				parts = append(parts, gohtml.EscapeString(s))
			}
		}
	}
	return strings.Join(parts, "<br/>"), nil
}

func (b *builder) tableRows(t *extast.Table) ([]Node, error) {
	var rows []Node
	for r := t.FirstChild(); r != nil; r = r.NextSibling() {
		switch r.(type) {
		case *extast.TableHeader, *extast.TableRow:
		default:
			continue
		}
		row := Node{Kind: KindTableRow}
		for c := r.FirstChild(); c != nil; c = c.NextSibling() {
			content, err := b.inline(c)
			if err != nil {
				return nil, err
			}
			row.Children = append(row.Children, Node{Kind: KindTableCell, Content: content})
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// rawText joins the source lines of a block node.
func rawText(n ast.Node, source []byte) string {
	var buf bytes.Buffer
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		buf.Write(seg.Value(source))
	}
	return buf.String()
}
