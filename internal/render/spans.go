package render

import (
	"strings"

	"golang.org/x/net/html"
)

// softBreaks turns source line breaks into spaces; only <br> breaks a line.
var softBreaks = strings.NewReplacer("\r\n", " ", "\n", " ")

// span is a run of text sharing one inline style.
type span struct {
	text   string
	bold   bool
	italic bool
	code   bool
	href   string
	br     bool
}

// parseSpans splits an inline fragment into styled runs. It understands
// b/strong, i/em, code, a and br; any other tag is dropped and its text kept.
func parseSpans(fragment string) []span {
	z := html.NewTokenizer(strings.NewReader(fragment))
	var (
		spans              []span
		bold, italic, code int
		hrefs              []string
	)
	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			return spans

		case html.TextToken:
			s := span{
				text:   softBreaks.Replace(string(z.Text())),
				bold:   bold > 0,
				italic: italic > 0,
				code:   code > 0,
			}
			if len(hrefs) > 0 {
				s.href = hrefs[len(hrefs)-1]
			}
			spans = append(spans, s)

		case html.StartTagToken, html.SelfClosingTagToken, html.EndTagToken:
			name, hasAttr := z.TagName()
			delta := 1
			if tt == html.EndTagToken {
				delta = -1
			}
			switch string(name) {
			case "br":
				spans = append(spans, span{br: true})
			case "b", "strong":
				bold = clampAdd(bold, delta, tt)
			case "i", "em":
				italic = clampAdd(italic, delta, tt)
			case "code":
				code = clampAdd(code, delta, tt)
			case "a":
				switch {
				case tt == html.EndTagToken && len(hrefs) > 0:
					hrefs = hrefs[:len(hrefs)-1]
				case tt == html.StartTagToken:
					hrefs = append(hrefs, linkTarget(z, hasAttr))
				}
			}
		}
	}
}

// clampAdd applies an open or close to a nesting counter. Self-closing
// tags and unmatched closes leave it unchanged.
func clampAdd(n, delta int, tt html.TokenType) int {
	if tt == html.SelfClosingTagToken {
		return n
	}
	if n+delta < 0 {
		return 0
	}
	return n + delta
}

func linkTarget(z *html.Tokenizer, hasAttr bool) string {
	for hasAttr {
		var key, val []byte
		key, val, hasAttr = z.TagAttr()
		if string(key) == "href" {
			return string(val)
		}
	}
	return ""
}

// plainSpans joins spans that carry no inline styling. ok is false when any
// span needs a font or link change.
func plainSpans(spans []span) (text string, ok bool) {
	var b strings.Builder
	for _, s := range spans {
		switch {
		case s.br:
			b.WriteByte('\n')
		case s.bold || s.italic || s.code || s.href != "":
			return "", false
		default:
			b.WriteString(s.text)
		}
	}
	return b.String(), true
}

// fontStyle merges a base gofpdf style string ("", "B", "I", "BI") with a
// span's emphasis.
func fontStyle(base string, s span) string {
	bold := strings.Contains(base, "B") || s.bold
	italic := strings.Contains(base, "I") || s.italic
	var out string
	if bold {
		out += "B"
	}
	if italic {
		out += "I"
	}
	if strings.Contains(base, "U") {
		out += "U"
	}
	return out
}
