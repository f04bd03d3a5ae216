package render

import "fmt"

// Margins are page margins in points.
type Margins struct {
	Top, Right, Bottom, Left float64
}

// Geometry is the fixed page layout handed to a Renderer.
type Geometry struct {
	PageSize string
	WidthPt  float64
	HeightPt float64
	Margins  Margins
}

// Letter returns 8.5x11in pages with 0.75in margins on all sides.
func Letter() Geometry {
	return Geometry{
		PageSize: "Letter",
		WidthPt:  612,
		HeightPt: 792,
		Margins:  Margins{Top: 54, Right: 54, Bottom: 54, Left: 54},
	}
}

// ContentWidth is the horizontal space between the left and right margins.
func (g Geometry) ContentWidth() float64 {
	return g.WidthPt - g.Margins.Left - g.Margins.Right
}

// ContentHeight is the vertical space between the top and bottom margins.
func (g Geometry) ContentHeight() float64 {
	return g.HeightPt - g.Margins.Top - g.Margins.Bottom
}

// Validate reports geometry that leaves no room to draw.
func (g Geometry) Validate() error {
	m := g.Margins
	switch {
	case g.WidthPt <= 0 || g.HeightPt <= 0:
		return fmt.Errorf("%w: page size %.2fx%.2fpt", ErrInvalidGeometry, g.WidthPt, g.HeightPt)
	case m.Top < 0 || m.Right < 0 || m.Bottom < 0 || m.Left < 0:
		return fmt.Errorf("%w: negative margin %+v", ErrInvalidGeometry, m)
	case g.ContentWidth() <= 0 || g.ContentHeight() <= 0:
		return fmt.Errorf("%w: margins %+v leave no content area", ErrInvalidGeometry, m)
	}
	return nil
}
