package render

import (
	"math"

	"github.com/alnah/go-chat2pdf/internal/flowable"
	"github.com/alnah/go-chat2pdf/internal/style"
)

const (
	// minExtraColumnPt floors the width of columns past the fixed three.
	minExtraColumnPt = 24.0
	// cellLineFactor scales font size to line height inside table cells.
	cellLineFactor = 1.2
)

// columnWidths returns one width per column. The first three come from the
// flowable; any further columns split what is left of the content width.
// When the result is wider than the content area every column shrinks by
// the same factor.
func columnWidths(fixed [3]float64, cols int, contentWidth float64) []float64 {
	widths := make([]float64, cols)
	used := 0.0
	for i := 0; i < cols && i < len(fixed); i++ {
		widths[i] = fixed[i]
		used += fixed[i]
	}
	if extra := cols - len(fixed); extra > 0 {
		share := (contentWidth - used) / float64(extra)
		if share < minExtraColumnPt {
			share = minExtraColumnPt
		}
		for i := len(fixed); i < cols; i++ {
			widths[i] = share
			used += share
		}
	}
	if used > contentWidth {
		scale := contentWidth / used
		for i := range widths {
			widths[i] *= scale
		}
	}
	return widths
}

// maxColumns is the widest row, so ragged rows still get a width per cell.
func maxColumns(rows [][]string) int {
	n := 0
	for _, r := range rows {
		if len(r) > n {
			n = len(r)
		}
	}
	return n
}

// cellStyle is the resolved look of one table row.
type cellStyle struct {
	font      string
	fontStyle string
	sizePt    float64
	text      style.RGB
	fill      style.RGB
	paddingY  float64
}

func headerStyle(t style.TableSpec) cellStyle {
	return cellStyle{
		font:      t.HeaderFont,
		fontStyle: t.HeaderFontStyle,
		sizePt:    t.HeaderSizePt,
		text:      t.HeaderText,
		fill:      t.HeaderFill,
		paddingY:  t.HeaderPaddingPt,
	}
}

// bodyStyle bands data rows by parity; bodyIdx 0 is the first row after
// the header.
func bodyStyle(t style.TableSpec, bodyIdx int) cellStyle {
	return cellStyle{
		font:     t.BodyFont,
		sizePt:   t.BodySizePt,
		text:     t.BodyText,
		fill:     t.RowFills[bodyIdx%2],
		paddingY: t.BodyPaddingPt,
	}
}

// tableLayout is the state shared by the rows of one table.
type tableLayout struct {
	ts     style.TableSpec
	widths []float64
	total  float64
	x      float64
	bottom float64
	top    float64 // y where the table starts on the current page

	header [][]string
	hs     cellStyle
	repeat bool // draw the header again after a page break
}

// table draws row 0 as the header and the rest as banded data rows. Rows
// taller than the space left are split line by line across pages; after each
// break the box is closed and the header drawn again.
func (p *page) table(tb flowable.TableBlock) error {
	if len(tb.Rows) == 0 {
		return nil
	}
	ts := p.styles.Table()
	widths := columnWidths(tb.ColumnWidthsPt, maxColumns(tb.Rows), p.geo.ContentWidth())
	tl := &tableLayout{
		ts:     ts,
		widths: widths,
		x:      p.geo.Margins.Left,
		bottom: p.geo.HeightPt - p.geo.Margins.Bottom,
		hs:     headerStyle(ts),
	}
	for _, w := range widths {
		tl.total += w
	}
	tl.header = p.wrap(tb.Rows[0], widths, tl.hs, ts)

	headerH := rowHeight(len(longest(tl.header)), tl.hs)
	if !p.atTop() && p.pdf.GetY()+headerH+bodyLineHeight(ts) > tl.bottom {
		p.pdf.AddPage()
	}
	tl.top = p.pdf.GetY()
	p.splitRow(tl, tl.header, tl.hs)
	// A header taller than half a page would leave little room for data.
	tl.repeat = headerH <= p.geo.ContentHeight()/2

	for i, cells := range tb.Rows[1:] {
		bs := bodyStyle(ts, i)
		p.splitRow(tl, p.wrap(cells, widths, bs, ts), bs)
	}
	p.box(tl.x, tl.top, tl.total, p.pdf.GetY()-tl.top, ts)

	p.pdf.SetX(p.geo.Margins.Left)
	return nil
}

// splitRow draws one row of wrapped cells. A row that fits on a fresh page
// moves there whole; a taller row is cut into as many lines as each page holds.
func (p *page) splitRow(tl *tableLayout, lines [][]string, cs cellStyle) {
	n := len(longest(lines))
	lineH := cs.sizePt * cellLineFactor
	fullH := rowHeight(n, cs)

	if !p.atTop() && p.pdf.GetY()+fullH > tl.bottom && fullH <= p.geo.ContentHeight() {
		p.breakTable(tl)
	}

	fresh := p.atTop()
	for from := 0; from < n; {
		fit := int(math.Floor((tl.bottom-p.pdf.GetY()-2*cs.paddingY)/lineH + 1e-9))
		if fit < 1 && !fresh {
			p.breakTable(tl)
			fresh = true
			continue
		}
		to := min(from+max(fit, 1), n)
		p.row(lines, from, to, tl, cs)
		from = to
		if from < n {
			p.breakTable(tl)
			fresh = true
		}
	}
}

// breakTable closes the box on this page, starts a new page and repeats the
// header there.
func (p *page) breakTable(tl *tableLayout) {
	p.box(tl.x, tl.top, tl.total, p.pdf.GetY()-tl.top, tl.ts)
	p.pdf.AddPage()
	tl.top = p.pdf.GetY()
	if tl.repeat {
		p.row(tl.header, 0, len(longest(tl.header)), tl, tl.hs)
	}
}

// wrap splits each cell's text to its inner width.
func (p *page) wrap(cells []string, widths []float64, cs cellStyle, ts style.TableSpec) [][]string {
	p.pdf.SetFont(cs.font, cs.fontStyle, cs.sizePt)
	out := make([][]string, len(cells))
	for i, c := range cells {
		out[i] = p.lines(c, widths[i], ts)
	}
	return out
}

// lines wraps one cell's text to its inner width.
func (p *page) lines(text string, width float64, ts style.TableSpec) []string {
	inner := width - 2*ts.CellPaddingXPt
	if inner < 1 {
		inner = 1
	}
	raw := p.pdf.SplitLines([]byte(p.tr(text)), inner)
	out := make([]string, 0, len(raw))
	for _, l := range raw {
		out = append(out, string(l))
	}
	if len(out) == 0 {
		out = append(out, "")
	}
	return out
}

// longest returns the cell with the most lines; an empty row counts as one
// blank line.
func longest(cells [][]string) []string {
	best := []string{""}
	for _, c := range cells {
		if len(c) > len(best) {
			best = c
		}
	}
	return best
}

func rowHeight(lines int, cs cellStyle) float64 {
	return float64(lines)*cs.sizePt*cellLineFactor + 2*cs.paddingY
}

func bodyLineHeight(ts style.TableSpec) float64 {
	return rowHeight(1, bodyStyle(ts, 0))
}

// row draws lines [from, to) of every cell the row has; missing trailing
// cells are left blank.
func (p *page) row(lines [][]string, from, to int, tl *tableLayout, cs cellStyle) {
	ts := tl.ts
	h := rowHeight(to-from, cs)
	y := p.pdf.GetY()
	lineH := cs.sizePt * cellLineFactor

	p.pdf.SetFont(cs.font, cs.fontStyle, cs.sizePt)
	p.pdf.SetFillColor(int(cs.fill.R), int(cs.fill.G), int(cs.fill.B))
	p.pdf.SetTextColor(int(cs.text.R), int(cs.text.G), int(cs.text.B))
	p.pdf.SetDrawColor(int(ts.GridColor.R), int(ts.GridColor.G), int(ts.GridColor.B))
	p.pdf.SetLineWidth(ts.GridWidthPt)

	cx := tl.x
	for i, cell := range lines {
		w := tl.widths[i]
		p.pdf.Rect(cx, y, w, h, "FD")
		for j := from; j < to && j < len(cell); j++ {
			p.pdf.SetXY(cx+ts.CellPaddingXPt, y+cs.paddingY+float64(j-from)*lineH)
			p.pdf.CellFormat(w-2*ts.CellPaddingXPt, lineH, cell[j], "", 0, "L", false, 0, "")
		}
		cx += w
	}
	p.pdf.SetXY(tl.x, y+h)
}

func (p *page) box(x, y, w, h float64, ts style.TableSpec) {
	if h <= 0 {
		return
	}
	p.pdf.SetDrawColor(int(ts.BoxColor.R), int(ts.BoxColor.G), int(ts.BoxColor.B))
	p.pdf.SetLineWidth(ts.BoxWidthPt)
	p.pdf.Rect(x, y, w, h, "D")
}
