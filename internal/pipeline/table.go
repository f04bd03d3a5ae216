package pipeline

import (
	"errors"
	"strings"

	"github.com/alnah/go-chat2pdf/internal/markup"
)

// ErrEmptyTable indicates a table node with no extractable rows.
var ErrEmptyTable = errors.New("table has no rows")

// ExtractTable returns one row of trimmed plain-text cells per table row
// child. Header and data rows are extracted alike; row 0 is the header.
//
// Rows are passed through with their own cell count. Nothing is padded or
// truncated to match the header.
func ExtractTable(node markup.Node) ([][]string, error) {
	var grid [][]string
	for _, row := range node.Children {
		if row.Kind != markup.KindTableRow {
			continue
		}
		cells := make([]string, 0, len(row.Children))
		for _, cell := range row.Children {
			cells = append(cells, strings.TrimSpace(PlainText(cell.Content)))
		}
		grid = append(grid, cells)
	}
	if len(grid) == 0 {
		return nil, ErrEmptyTable
	}
	return grid, nil
}
