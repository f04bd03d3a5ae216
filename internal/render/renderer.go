// Package render lays out flowables on paginated PDF pages with gofpdf.
//
// Text uses the PDF core fonts, so input is translated to cp1252 and
// characters outside that code page are lost. Fonts are never embedded.
package render

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
	"go.uber.org/zap"

	"github.com/alnah/go-chat2pdf/internal/flowable"
	"github.com/alnah/go-chat2pdf/internal/style"
)

// Sentinel errors for rendering.
var (
	ErrRender          = errors.New("PDF rendering failed")
	ErrInvalidGeometry = errors.New("invalid page geometry")
)

// DefaultCreator is written to the PDF Creator field when Info leaves it empty.
const DefaultCreator = "go-chat2pdf"

// epoch pins the creation date when Info.CreatedAt is zero so output is
// reproducible.
var epoch = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

// Info is written to the PDF document information dictionary.
type Info struct {
	Title     string
	Author    string
	Subject   string
	Creator   string
	CreatedAt time.Time
}

// Document is everything a Renderer needs for one output file.
type Document struct {
	Flowables []flowable.Flowable
	Geometry  Geometry
	Info      Info
}

// Renderer turns an ordered flowable sequence into document bytes.
type Renderer interface {
	Render(ctx context.Context, doc Document) ([]byte, error)
}

// Compile-time interface check.
var _ Renderer = (*PDFRenderer)(nil)

// PDFRenderer renders with gofpdf core fonts. It is safe for concurrent use;
// each call builds its own gofpdf document.
type PDFRenderer struct {
	styles       *style.Registry
	log          *zap.Logger
	uncompressed bool // leave page streams readable, for tests
}

// NewPDFRenderer creates a PDFRenderer. A nil logger discards output.
func NewPDFRenderer(styles *style.Registry, log *zap.Logger) *PDFRenderer {
	if log == nil {
		log = zap.NewNop()
	}
	return &PDFRenderer{styles: styles, log: log}
}

// Render lays out doc and returns the PDF bytes. On any error no bytes are
// returned. ctx is checked between flowables.
func (r *PDFRenderer) Render(ctx context.Context, doc Document) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := doc.Geometry.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRender, err)
	}

	pdf := newDocument(doc.Geometry, doc.Info)
	if r.uncompressed {
		pdf.SetCompression(false)
	}
	p := &page{
		pdf:    pdf,
		tr:     pdf.UnicodeTranslatorFromDescriptor(""),
		styles: r.styles,
		geo:    doc.Geometry,
	}

	for i, f := range doc.Flowables {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := p.draw(f); err != nil {
			return nil, fmt.Errorf("%w: flowable %d %s: %w", ErrRender, i, f, err)
		}
		if pdf.Err() {
			return nil, fmt.Errorf("%w: flowable %d %s: %v", ErrRender, i, f, pdf.Error())
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRender, err)
	}

	r.log.Debug("pdf rendered",
		zap.Int("flowables", len(doc.Flowables)),
		zap.Int("pages", pdf.PageNo()),
		zap.Int("bytes", buf.Len()))
	return buf.Bytes(), nil
}

func newDocument(g Geometry, info Info) *gofpdf.Fpdf {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: g.WidthPt, Ht: g.HeightPt},
	})
	pdf.SetMargins(g.Margins.Left, g.Margins.Top, g.Margins.Right)
	pdf.SetAutoPageBreak(true, g.Margins.Bottom)
	pdf.SetCatalogSort(true)

	created := info.CreatedAt
	if created.IsZero() {
		created = epoch
	}
	pdf.SetCreationDate(created)

	creator := info.Creator
	if creator == "" {
		creator = DefaultCreator
	}
	pdf.SetCreator(creator, true)
	if info.Title != "" {
		pdf.SetTitle(info.Title, true)
	}
	if info.Author != "" {
		pdf.SetAuthor(info.Author, true)
	}
	if info.Subject != "" {
		pdf.SetSubject(info.Subject, true)
	}

	pdf.AddPage()
	return pdf
}

// page draws flowables onto one gofpdf document.
type page struct {
	pdf    *gofpdf.Fpdf
	tr     func(string) string
	styles *style.Registry
	geo    Geometry
}

func (p *page) draw(f flowable.Flowable) error {
	switch v := f.(type) {
	case flowable.StyledText:
		return p.text(v)
	case flowable.VerticalSpace:
		p.space(v.HeightPt)
		return nil
	case flowable.TableBlock:
		return p.table(v)
	default:
		return fmt.Errorf("unsupported flowable %T", f)
	}
}

// atTop reports whether the cursor sits at the top margin of a page.
func (p *page) atTop() bool {
	return p.pdf.GetY() <= p.geo.Margins.Top+0.01
}

// space advances the cursor. Spacers at the top of a page are dropped.
func (p *page) space(h float64) {
	if h <= 0 || p.atTop() {
		return
	}
	p.pdf.Ln(h)
}

func (p *page) text(f flowable.StyledText) error {
	spec, err := p.styles.Resolve(f.Style)
	if err != nil {
		return err
	}

	p.space(spec.SpaceBeforePt)

	c := spec.TextColor
	p.pdf.SetTextColor(int(c.R), int(c.G), int(c.B))

	left := p.geo.Margins.Left + spec.LeftIndentPt
	p.pdf.SetLeftMargin(left)
	p.pdf.SetX(left)

	spans := parseSpans(f.Text)
	if text, ok := plainSpans(spans); ok {
		p.pdf.SetFont(spec.FontFamily, spec.FontStyle, spec.FontSizePt)
		p.pdf.MultiCell(0, spec.LeadingPt, p.tr(text), "", spec.Alignment.PDF(), false)
	} else {
		// Mixed fonts flow left-aligned; gofpdf cannot justify across Write calls.
		for _, s := range spans {
			if s.br {
				p.pdf.Ln(spec.LeadingPt)
				continue
			}
			family := spec.FontFamily
			if s.code {
				family = codeFont
			}
			p.pdf.SetFont(family, fontStyle(spec.FontStyle, s), spec.FontSizePt)
			if s.href != "" {
				p.pdf.WriteLinkString(spec.LeadingPt, p.tr(s.text), s.href)
			} else {
				p.pdf.Write(spec.LeadingPt, p.tr(s.text))
			}
		}
		p.pdf.Ln(spec.LeadingPt)
	}

	p.pdf.SetLeftMargin(p.geo.Margins.Left)
	p.pdf.SetX(p.geo.Margins.Left)
	p.space(spec.SpaceAfterPt)
	return nil
}

// codeFont is used for <code> spans.
const codeFont = "Courier"
