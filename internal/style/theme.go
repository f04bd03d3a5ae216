package style

import (
	"fmt"

	"github.com/alnah/go-chat2pdf/internal/yamlutil"
)

// Theme is the YAML form of a palette override. Absent fields keep the
// built-in value.
//
//	styles:
//	  heading2:
//	    color: "#003366"
//	    fontSize: 22
//	table:
//	  headerFill: "#003366"
type Theme struct {
	Styles map[Name]SpecOverride `yaml:"styles"`
	Table  TableOverride         `yaml:"table"`
}

// SpecOverride overrides individual fields of a Spec.
type SpecOverride struct {
	FontFamily  *string  `yaml:"fontFamily"`
	FontStyle   *string  `yaml:"fontStyle"`
	FontSize    *float64 `yaml:"fontSize"`
	Leading     *float64 `yaml:"leading"`
	Color       *string  `yaml:"color"`
	SpaceBefore *float64 `yaml:"spaceBefore"`
	SpaceAfter  *float64 `yaml:"spaceAfter"`
	LeftIndent  *float64 `yaml:"leftIndent"`
	Alignment   *string  `yaml:"alignment"`
}

// TableOverride overrides individual fields of the table palette.
type TableOverride struct {
	HeaderFill *string  `yaml:"headerFill"`
	HeaderText *string  `yaml:"headerText"`
	BodyText   *string  `yaml:"bodyText"`
	RowFills   []string `yaml:"rowFills"`
	GridColor  *string  `yaml:"gridColor"`
	GridWidth  *float64 `yaml:"gridWidth"`
	BoxColor   *string  `yaml:"boxColor"`
	BoxWidth   *float64 `yaml:"boxWidth"`
	HeaderSize *float64 `yaml:"headerSize"`
	BodySize   *float64 `yaml:"bodySize"`
}

// LoadTheme reads a YAML theme file and applies it over the built-in palette.
func LoadTheme(path string) (*Registry, error) {
	var th Theme
	if err := yamlutil.UnmarshalFile(path, &th); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTheme, err)
	}
	return th.Apply()
}

// ParseTheme decodes YAML theme data and applies it over the built-in palette.
func ParseTheme(data []byte) (*Registry, error) {
	var th Theme
	if err := yamlutil.UnmarshalStrict(data, &th); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTheme, err)
	}
	return th.Apply()
}

// Apply returns a new Registry with the theme applied over the defaults.
func (th Theme) Apply() (*Registry, error) {
	specs := defaultSpecs()
	for n, o := range th.Styles {
		s, ok := specs[n]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownStyle, n)
		}
		s, err := o.apply(s)
		if err != nil {
			return nil, fmt.Errorf("styles.%s: %w", n, err)
		}
		specs[n] = s
	}

	table, err := th.Table.apply(defaultTable())
	if err != nil {
		return nil, fmt.Errorf("table: %w", err)
	}
	return New(specs, table)
}

func (o SpecOverride) apply(s Spec) (Spec, error) {
	if o.FontFamily != nil {
		s.FontFamily = *o.FontFamily
	}
	if o.FontStyle != nil {
		s.FontStyle = *o.FontStyle
	}
	if o.FontSize != nil {
		s.FontSizePt = *o.FontSize
	}
	if o.Leading != nil {
		s.LeadingPt = *o.Leading
	}
	if o.Color != nil {
		c, err := ParseHex(*o.Color)
		if err != nil {
			return s, err
		}
		s.TextColor = c
	}
	if o.SpaceBefore != nil {
		s.SpaceBeforePt = *o.SpaceBefore
	}
	if o.SpaceAfter != nil {
		s.SpaceAfterPt = *o.SpaceAfter
	}
	if o.LeftIndent != nil {
		s.LeftIndentPt = *o.LeftIndent
	}
	if o.Alignment != nil {
		a, err := ParseAlignment(*o.Alignment)
		if err != nil {
			return s, err
		}
		s.Alignment = a
	}
	return s, nil
}

func (o TableOverride) apply(t TableSpec) (TableSpec, error) {
	colors := []struct {
		src *string
		dst *RGB
	}{
		{o.HeaderFill, &t.HeaderFill},
		{o.HeaderText, &t.HeaderText},
		{o.BodyText, &t.BodyText},
		{o.GridColor, &t.GridColor},
		{o.BoxColor, &t.BoxColor},
	}
	for _, c := range colors {
		if c.src == nil {
			continue
		}
		v, err := ParseHex(*c.src)
		if err != nil {
			return t, err
		}
		*c.dst = v
	}

	switch len(o.RowFills) {
	case 0:
	case 2:
		for i, hex := range o.RowFills {
			v, err := ParseHex(hex)
			if err != nil {
				return t, err
			}
			t.RowFills[i] = v
		}
	default:
		return t, fmt.Errorf("%w: rowFills needs exactly 2 colors, got %d", ErrInvalidTheme, len(o.RowFills))
	}

	if o.GridWidth != nil {
		t.GridWidthPt = *o.GridWidth
	}
	if o.BoxWidth != nil {
		t.BoxWidthPt = *o.BoxWidth
	}
	if o.HeaderSize != nil {
		t.HeaderSizePt = *o.HeaderSize
	}
	if o.BodySize != nil {
		t.BodySizePt = *o.BodySize
	}
	return t, nil
}
