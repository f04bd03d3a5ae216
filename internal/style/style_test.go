package style

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func mustResolve(t *testing.T, r *Registry, n Name) Spec {
	t.Helper()

	s, err := r.Resolve(n)
	if err != nil {
		t.Fatalf("Resolve(%q) error: %v", n, err)
	}
	return s
}

func TestDefault_ResolvesEveryName(t *testing.T) {
	t.Parallel()

	r := Default()
	for _, n := range Names() {
		if _, err := r.Resolve(n); err != nil {
			t.Errorf("Resolve(%q) error: %v", n, err)
		}
	}
}

func TestDefault_Palette(t *testing.T) {
	t.Parallel()

	r := Default()

	tests := []struct {
		name  Name
		size  float64
		color string
		bold  bool
	}{
		{Heading2, 20, "#1a472a", true},
		{Heading3, 14, "#2c5f2d", true},
		{Heading4, 12, "#2c5f2d", true},
		{BodyText, 11, "#333333", false},
		{BulletText, 11, "#444444", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.name), func(t *testing.T) {
			t.Parallel()

			s := mustResolve(t, r, tt.name)
			if s.FontSizePt != tt.size {
				t.Errorf("FontSizePt = %v, want %v", s.FontSizePt, tt.size)
			}
			if got := s.TextColor.Hex(); got != tt.color {
				t.Errorf("TextColor = %s, want %s", got, tt.color)
			}
			if (s.FontStyle == "B") != tt.bold {
				t.Errorf("FontStyle = %q, bold want %v", s.FontStyle, tt.bold)
			}
		})
	}
}

func TestDefault_HeadingsOutrankBody(t *testing.T) {
	t.Parallel()

	r := Default()
	body := mustResolve(t, r, BodyText)
	for _, h := range []Name{Heading2, Heading3, Heading4} {
		if s := mustResolve(t, r, h); s.FontSizePt <= body.FontSizePt {
			t.Errorf("%s size %v not larger than body %v", h, s.FontSizePt, body.FontSizePt)
		}
	}
}

func TestDefault_TableBanding(t *testing.T) {
	t.Parallel()

	tb := Default().Table()
	if tb.HeaderFill.Hex() != "#2c5f2d" {
		t.Errorf("HeaderFill = %s, want #2c5f2d", tb.HeaderFill.Hex())
	}
	if tb.HeaderFontStyle != "B" {
		t.Errorf("HeaderFontStyle = %q, want B", tb.HeaderFontStyle)
	}
	if tb.RowFills[0] == tb.RowFills[1] {
		t.Error("RowFills must alternate between two shades")
	}
	if tb.BoxWidthPt <= tb.GridWidthPt {
		t.Errorf("box %.2f should be heavier than grid %.2f", tb.BoxWidthPt, tb.GridWidthPt)
	}
}

func TestResolve_UnknownStyle(t *testing.T) {
	t.Parallel()

	_, err := Default().Resolve("caption")
	if !errors.Is(err, ErrUnknownStyle) {
		t.Fatalf("errors.Is(err, ErrUnknownStyle) = false, got: %v", err)
	}
}

func TestNames_ReturnsCopy(t *testing.T) {
	t.Parallel()

	n := Names()
	n[0] = "mutated"
	if Names()[0] != Heading2 {
		t.Error("Names() exposed the internal slice")
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("missing style", func(t *testing.T) {
		t.Parallel()

		specs := defaultSpecs()
		delete(specs, BulletText)
		_, err := New(specs, defaultTable())
		if !errors.Is(err, ErrInvalidTheme) {
			t.Errorf("errors.Is(err, ErrInvalidTheme) = false, got: %v", err)
		}
	})

	t.Run("extra style", func(t *testing.T) {
		t.Parallel()

		specs := defaultSpecs()
		specs["caption"] = specs[BodyText]
		_, err := New(specs, defaultTable())
		if !errors.Is(err, ErrUnknownStyle) {
			t.Errorf("errors.Is(err, ErrUnknownStyle) = false, got: %v", err)
		}
	})

	t.Run("leading below font size", func(t *testing.T) {
		t.Parallel()

		specs := defaultSpecs()
		s := specs[BodyText]
		s.LeadingPt = 5
		specs[BodyText] = s
		_, err := New(specs, defaultTable())
		if !errors.Is(err, ErrInvalidTheme) {
			t.Errorf("errors.Is(err, ErrInvalidTheme) = false, got: %v", err)
		}
	})

	t.Run("registry does not alias input map", func(t *testing.T) {
		t.Parallel()

		specs := defaultSpecs()
		r, err := New(specs, defaultTable())
		if err != nil {
			t.Fatal(err)
		}
		s := specs[BodyText]
		s.FontSizePt = 99
		specs[BodyText] = s
		if mustResolve(t, r, BodyText).FontSizePt == 99 {
			t.Error("registry changed after caller mutated its map")
		}
	})
}

func TestParseHex(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    RGB
		wantErr bool
	}{
		{in: "#1a472a", want: RGB{0x1a, 0x47, 0x2a}},
		{in: "FFFFFF", want: RGB{255, 255, 255}},
		{in: "#fff", wantErr: true},
		{in: "#gggggg", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			got, err := ParseHex(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidColor) {
					t.Errorf("errors.Is(err, ErrInvalidColor) = false, got: %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseHex(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestAlignment(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"left", "center", "right", "justify"} {
		a, err := ParseAlignment(name)
		if err != nil {
			t.Fatalf("ParseAlignment(%q): %v", name, err)
		}
		if a.String() != name {
			t.Errorf("round trip %q -> %q", name, a.String())
		}
	}
	if AlignJustify.PDF() != "J" || AlignLeft.PDF() != "L" {
		t.Error("unexpected PDF alignment codes")
	}
	if _, err := ParseAlignment("diagonal"); !errors.Is(err, ErrInvalidTheme) {
		t.Errorf("errors.Is(err, ErrInvalidTheme) = false, got: %v", err)
	}
}

func TestParseTheme(t *testing.T) {
	t.Parallel()

	t.Run("overrides selected fields", func(t *testing.T) {
		t.Parallel()

		r, err := ParseTheme([]byte(`
styles:
  heading2:
    color: "#003366"
    fontSize: 22
    leading: 26
  bodyText:
    alignment: justify
table:
  headerFill: "#003366"
  rowFills: ["#ffffff", "#eeeeee"]
`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		h2 := mustResolve(t, r, Heading2)
		if h2.TextColor.Hex() != "#003366" || h2.FontSizePt != 22 {
			t.Errorf("heading2 = %+v, want color #003366 size 22", h2)
		}
		if h2.SpaceAfterPt != 20 {
			t.Errorf("unset field changed: SpaceAfterPt = %v, want 20", h2.SpaceAfterPt)
		}
		if mustResolve(t, r, BodyText).Alignment != AlignJustify {
			t.Error("bodyText alignment not applied")
		}
		if r.Table().RowFills[1].Hex() != "#eeeeee" {
			t.Errorf("RowFills[1] = %s, want #eeeeee", r.Table().RowFills[1].Hex())
		}
	})

	t.Run("unknown style name", func(t *testing.T) {
		t.Parallel()

		_, err := ParseTheme([]byte("styles:\n  caption:\n    fontSize: 9\n"))
		if !errors.Is(err, ErrUnknownStyle) {
			t.Errorf("errors.Is(err, ErrUnknownStyle) = false, got: %v", err)
		}
	})

	t.Run("bad color", func(t *testing.T) {
		t.Parallel()

		_, err := ParseTheme([]byte("table:\n  gridColor: grey\n"))
		if !errors.Is(err, ErrInvalidColor) {
			t.Errorf("errors.Is(err, ErrInvalidColor) = false, got: %v", err)
		}
	})

	t.Run("wrong number of row fills", func(t *testing.T) {
		t.Parallel()

		_, err := ParseTheme([]byte("table:\n  rowFills: [\"#ffffff\"]\n"))
		if !errors.Is(err, ErrInvalidTheme) {
			t.Errorf("errors.Is(err, ErrInvalidTheme) = false, got: %v", err)
		}
	})
}

func TestLoadTheme(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "theme.yaml")
	if err := os.WriteFile(path, []byte("styles:\n  heading4:\n    fontStyle: BI\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	r, err := LoadTheme(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := mustResolve(t, r, Heading4).FontStyle; got != "BI" {
		t.Errorf("FontStyle = %q, want BI", got)
	}

	if _, err := LoadTheme(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, ErrInvalidTheme) {
		t.Errorf("errors.Is(err, ErrInvalidTheme) = false, got: %v", err)
	}
}
