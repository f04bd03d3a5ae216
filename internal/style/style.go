// Package style defines the fixed set of named visual styles used to lay out
// a converted document: heading levels, body text, bullet text and the table
// banding palette.
//
// A Registry is immutable once built. Build it once at startup with Default
// or LoadTheme and share the pointer; every lookup returns a copy.
package style

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Sentinel errors for style lookups and theme loading.
var (
	ErrUnknownStyle = errors.New("unknown style")
	ErrInvalidColor = errors.New("invalid color")
	ErrInvalidTheme = errors.New("invalid theme")
)

// Name is a symbolic key into the Registry.
type Name string

// Registered style names.
const (
	Heading2   Name = "heading2"
	Heading3   Name = "heading3"
	Heading4   Name = "heading4"
	BodyText   Name = "bodyText"
	BulletText Name = "bulletText"
)

// names is the closed set of registered styles, in declaration order.
var names = []Name{Heading2, Heading3, Heading4, BodyText, BulletText}

// Names returns the fixed set of registered style names.
func Names() []Name {
	return slices.Clone(names)
}

// IsKnown reports whether n is one of the registered style names.
func IsKnown(n Name) bool {
	return slices.Contains(names, n)
}

// Alignment is the horizontal alignment of a text block.
type Alignment int

// Supported alignments.
const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
	AlignJustify
)

// PDF returns the single-letter alignment code used by the PDF backend.
func (a Alignment) PDF() string {
	switch a {
	case AlignCenter:
		return "C"
	case AlignRight:
		return "R"
	case AlignJustify:
		return "J"
	default:
		return "L"
	}
}

// String returns the lowercase alignment name.
func (a Alignment) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	case AlignJustify:
		return "justify"
	default:
		return "left"
	}
}

// ParseAlignment converts a name ("left", "center", "right", "justify") to an
// Alignment. Matching is case-insensitive.
func ParseAlignment(s string) (Alignment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left", "":
		return AlignLeft, nil
	case "center":
		return AlignCenter, nil
	case "right":
		return AlignRight, nil
	case "justify":
		return AlignJustify, nil
	}
	return AlignLeft, fmt.Errorf("%w: alignment %q", ErrInvalidTheme, s)
}

// RGB is an 8-bit per channel color.
type RGB struct {
	R, G, B uint8
}

// Hex returns the color as "#rrggbb".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseHex parses "#rrggbb" or "rrggbb".
func ParseHex(s string) (RGB, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 {
		return RGB{}, fmt.Errorf("%w: %q (want #rrggbb)", ErrInvalidColor, s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// mustHex is for package-level palette constants only.
func mustHex(s string) RGB {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Spec is the resolved visual record for one style name.
// Sizes and spacings are in points.
type Spec struct {
	FontFamily    string // core font family: Helvetica, Times, Courier
	FontStyle     string // "", "B", "I", "BI"
	FontSizePt    float64
	LeadingPt     float64
	TextColor     RGB
	SpaceBeforePt float64
	SpaceAfterPt  float64
	LeftIndentPt  float64
	Alignment     Alignment
}

// TableSpec holds the table banding palette. Row 0 is the header.
type TableSpec struct {
	HeaderFill      RGB
	HeaderText      RGB
	HeaderFont      string
	HeaderFontStyle string
	HeaderSizePt    float64
	HeaderPaddingPt float64 // top and bottom

	BodyText      RGB
	BodyFont      string
	BodySizePt    float64
	BodyPaddingPt float64 // top and bottom

	CellPaddingXPt float64 // left and right, all rows

	// RowFills alternate across data rows: data row i uses RowFills[i%2].
	RowFills [2]RGB

	GridWidthPt float64
	GridColor   RGB
	BoxWidthPt  float64
	BoxColor    RGB
}

// Registry maps style names to immutable specs.
type Registry struct {
	specs map[Name]Spec
	table TableSpec
}

// New builds a Registry from a complete set of specs.
// Every registered name must be present and no other name is accepted.
func New(specs map[Name]Spec, table TableSpec) (*Registry, error) {
	r := &Registry{specs: make(map[Name]Spec, len(names)), table: table}
	for n, s := range specs {
		if !IsKnown(n) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownStyle, n)
		}
		if err := validateSpec(n, s); err != nil {
			return nil, err
		}
		r.specs[n] = s
	}
	for _, n := range names {
		if _, ok := r.specs[n]; !ok {
			return nil, fmt.Errorf("%w: missing style %q", ErrInvalidTheme, n)
		}
	}
	if err := validateTable(table); err != nil {
		return nil, err
	}
	return r, nil
}

// Resolve returns the spec registered under name.
func (r *Registry) Resolve(name Name) (Spec, error) {
	s, ok := r.specs[name]
	if !ok {
		return Spec{}, fmt.Errorf("%w: %q", ErrUnknownStyle, name)
	}
	return s, nil
}

// Table returns the table banding palette.
func (r *Registry) Table() TableSpec {
	return r.table
}

func validateSpec(n Name, s Spec) error {
	if s.FontFamily == "" {
		return fmt.Errorf("%w: %s.fontFamily is empty", ErrInvalidTheme, n)
	}
	switch s.FontStyle {
	case "", "B", "I", "BI":
	default:
		return fmt.Errorf("%w: %s.fontStyle %q (must be \"\", B, I or BI)", ErrInvalidTheme, n, s.FontStyle)
	}
	if s.FontSizePt <= 0 {
		return fmt.Errorf("%w: %s.fontSize must be positive, got %.2f", ErrInvalidTheme, n, s.FontSizePt)
	}
	if s.LeadingPt < s.FontSizePt {
		return fmt.Errorf("%w: %s.leading %.2f is smaller than font size %.2f", ErrInvalidTheme, n, s.LeadingPt, s.FontSizePt)
	}
	if s.SpaceBeforePt < 0 || s.SpaceAfterPt < 0 || s.LeftIndentPt < 0 {
		return fmt.Errorf("%w: %s spacing must not be negative", ErrInvalidTheme, n)
	}
	return nil
}

func validateTable(t TableSpec) error {
	if t.HeaderFont == "" || t.BodyFont == "" {
		return fmt.Errorf("%w: table fonts must be set", ErrInvalidTheme)
	}
	if t.HeaderSizePt <= 0 || t.BodySizePt <= 0 {
		return fmt.Errorf("%w: table font sizes must be positive", ErrInvalidTheme)
	}
	if t.GridWidthPt < 0 || t.BoxWidthPt < 0 {
		return fmt.Errorf("%w: table line widths must not be negative", ErrInvalidTheme)
	}
	return nil
}
