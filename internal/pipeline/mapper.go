package pipeline

import (
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/alnah/go-chat2pdf/internal/flowable"
	"github.com/alnah/go-chat2pdf/internal/markup"
	"github.com/alnah/go-chat2pdf/internal/style"
)

// Spacer heights in points.
var (
	spaceAfterHeading2  = flowable.Inch(0.15)
	spaceBeforeHeading3 = flowable.Inch(0.1)
	spaceAfterHeading3  = flowable.Inch(0.08)
	spaceBeforeHeading4 = flowable.Inch(0.08)
	spaceAfterHeading4  = flowable.Inch(0.06)
	spaceAfterParagraph = flowable.Inch(0.08)
	spaceAfterList      = flowable.Inch(0.1)
	spaceAfterTable     = flowable.Inch(0.2)
)

const bulletPrefix = "• "

// TableColumnWidths are applied to every table regardless of its column
// count: 3in, 1.5in, 1.2in.
var TableColumnWidths = [3]float64{
	flowable.Inch(3),
	flowable.Inch(1.5),
	flowable.Inch(1.2),
}

// StyleResolver resolves a style name to its visual spec.
type StyleResolver interface {
	Resolve(name style.Name) (style.Spec, error)
}

// Compile-time interface check.
var _ StyleResolver = (*style.Registry)(nil)

// Mapper turns block nodes into flowables. It holds no mutable state.
type Mapper struct {
	styles StyleResolver
	log    *zap.Logger
}

// NewMapper creates a Mapper. A nil logger discards output.
func NewMapper(styles StyleResolver, log *zap.Logger) *Mapper {
	if log == nil {
		log = zap.NewNop()
	}
	return &Mapper{styles: styles, log: log}
}

// Map emits the flowables for one top-level node. Unsupported kinds yield
// no flowables and no error.
func (m *Mapper) Map(node markup.Node) ([]flowable.Flowable, error) {
	switch node.Kind {
	case markup.KindHeading2:
		return m.heading(node, style.Heading2, 0, spaceAfterHeading2)
	case markup.KindHeading3:
		return m.heading(node, style.Heading3, spaceBeforeHeading3, spaceAfterHeading3)
	case markup.KindHeading4:
		return m.heading(node, style.Heading4, spaceBeforeHeading4, spaceAfterHeading4)

	case markup.KindParagraph:
		text, err := m.text(Normalize(node.Content), style.BodyText)
		if err != nil {
			return nil, err
		}
		return []flowable.Flowable{text, space(spaceAfterParagraph)}, nil

	case markup.KindUnorderedList, markup.KindOrderedList:
		return m.list(node)

	case markup.KindTable:
		return m.table(node)

	case markup.KindOther, markup.KindListItem, markup.KindTableRow, markup.KindTableCell:
		m.log.Debug("skipping unsupported block", zap.Stringer("kind", node.Kind))
		return nil, nil

	default:
		m.log.Warn("skipping block of unknown kind", zap.Int("kind", int(node.Kind)))
		return nil, nil
	}
}

// MapAll folds Map over nodes in order. The first error aborts the fold and
// no partial sequence is returned. ctx is checked between nodes.
func (m *Mapper) MapAll(ctx context.Context, nodes []markup.Node) ([]flowable.Flowable, error) {
	out := make([]flowable.Flowable, 0, 2*len(nodes))
	for i, node := range nodes {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		fs, err := m.Map(node)
		if err != nil {
			return nil, fmt.Errorf("block %d (%s): %w", i, node.Kind, err)
		}
		out = append(out, fs...)
	}
	return out, nil
}

func (m *Mapper) heading(node markup.Node, name style.Name, before, after float64) ([]flowable.Flowable, error) {
	text, err := m.text(PlainText(node.Content), name)
	if err != nil {
		return nil, err
	}
	out := make([]flowable.Flowable, 0, 3)
	if before > 0 {
		out = append(out, space(before))
	}
	return append(out, text, space(after)), nil
}

func (m *Mapper) list(node markup.Node) ([]flowable.Flowable, error) {
	ordered := node.Kind == markup.KindOrderedList
	out := make([]flowable.Flowable, 0, len(node.Children)+1)
	n := 0
	for _, item := range node.Children {
		if item.Kind != markup.KindListItem {
			continue
		}
		n++
		prefix := bulletPrefix
		if ordered {
			prefix = strconv.Itoa(n) + ". "
		}
		text, err := m.text(prefix+Normalize(item.Content), style.BulletText)
		if err != nil {
			return nil, err
		}
		out = append(out, text)
	}
	return append(out, space(spaceAfterList)), nil
}

func (m *Mapper) table(node markup.Node) ([]flowable.Flowable, error) {
	grid, err := ExtractTable(node)
	if err != nil {
		return nil, err
	}
	tb := flowable.TableBlock{Rows: grid, ColumnWidthsPt: TableColumnWidths}
	m.log.Debug("table extracted", zap.Int("rows", len(grid)), zap.Int("columns", tb.Columns()))
	return []flowable.Flowable{tb, space(spaceAfterTable)}, nil
}

// text builds a StyledText after checking the style is registered.
func (m *Mapper) text(s string, name style.Name) (flowable.Flowable, error) {
	if _, err := m.styles.Resolve(name); err != nil {
		return nil, err
	}
	return flowable.StyledText{Text: s, Style: name}, nil
}

func space(pt float64) flowable.Flowable {
	return flowable.VerticalSpace{HeightPt: pt}
}
