// Package markup turns Markdown text into a flat sequence of typed block
// nodes. It wraps goldmark; nothing outside this package sees the goldmark
// AST.
package markup

// Kind is the closed set of block kinds the rest of the pipeline dispatches on.
type Kind int

// Block kinds. The first group appears at the top level; the second only as
// children of lists and tables.
const (
	KindOther Kind = iota
	KindHeading2
	KindHeading3
	KindHeading4
	KindParagraph
	KindUnorderedList
	KindOrderedList
	KindTable

	KindListItem
	KindTableRow
	KindTableCell
)

var kindNames = [...]string{
	KindOther:         "other",
	KindHeading2:      "heading2",
	KindHeading3:      "heading3",
	KindHeading4:      "heading4",
	KindParagraph:     "paragraph",
	KindUnorderedList: "unordered-list",
	KindOrderedList:   "ordered-list",
	KindTable:         "table",
	KindListItem:      "list-item",
	KindTableRow:      "table-row",
	KindTableCell:     "table-cell",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Node is one parsed block. Content holds the inner inline markup as an
// HTML fragment (<strong>, <em>, <code>, <a>), without the block's own
// wrapper tag. Children hold list items, table rows and table cells.
type Node struct {
	Kind     Kind
	Content  string
	Children []Node
}
