// Package flowable defines the layout primitives handed to the document
// renderer. A document is exactly an ordered slice of Flowable values;
// order is reading order.
package flowable

import (
	"fmt"
	"strings"

	"github.com/alnah/go-chat2pdf/internal/style"
)

// PointsPerInch converts inches to PDF points.
const PointsPerInch = 72.0

// Inch returns v inches in points.
func Inch(v float64) float64 {
	return v * PointsPerInch
}

// Flowable is a sealed variant: StyledText, VerticalSpace or TableBlock.
type Flowable interface {
	flowable()
	fmt.Stringer
}

// StyledText is a block of text with inline <b>/<i> spans, laid out with a
// registered style.
type StyledText struct {
	Text  string
	Style style.Name
}

// VerticalSpace is a fixed-height spacer.
type VerticalSpace struct {
	HeightPt float64
}

// TableBlock is a grid of plain-text cells. Row 0 is the header.
type TableBlock struct {
	Rows           [][]string
	ColumnWidthsPt [3]float64
}

func (StyledText) flowable()    {}
func (VerticalSpace) flowable() {}
func (TableBlock) flowable()    {}

func (f StyledText) String() string {
	return fmt.Sprintf("StyledText(%q, %s)", f.Text, f.Style)
}

func (f VerticalSpace) String() string {
	return fmt.Sprintf("VerticalSpace(%.2fpt)", f.HeightPt)
}

func (f TableBlock) String() string {
	cols := 0
	if len(f.Rows) > 0 {
		cols = len(f.Rows[0])
	}
	return fmt.Sprintf("TableBlock(%dx%d)", len(f.Rows), cols)
}

// Columns returns the column count inferred from the header row.
func (f TableBlock) Columns() int {
	if len(f.Rows) == 0 {
		return 0
	}
	return len(f.Rows[0])
}

// Dump renders a flowable sequence one per line, for logs and test failures.
func Dump(fs []Flowable) string {
	var b strings.Builder
	for i, f := range fs {
		fmt.Fprintf(&b, "%3d %s\n", i, f)
	}
	return b.String()
}
