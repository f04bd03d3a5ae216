package pipeline

import (
	"strings"

	"golang.org/x/net/html"
)

// emphasisReplacer rewrites structural emphasis tags to the renderer's
// primitives. Tags are matched exactly; attributes or odd casing pass through.
var emphasisReplacer = strings.NewReplacer(
	"<strong>", "<b>",
	"</strong>", "</b>",
	"<em>", "<i>",
	"</em>", "</i>",
)

// Normalize replaces <strong>/<em> with <b>/<i>, open and close tags
// independently. Everything else, including malformed nesting, is left as is.
func Normalize(fragment string) string {
	return emphasisReplacer.Replace(fragment)
}

// PlainText strips every tag from an HTML fragment, unescapes entities and
// collapses runs of whitespace to single spaces. <br> counts as whitespace.
func PlainText(fragment string) string {
	z := html.NewTokenizer(strings.NewReader(fragment))
	var b strings.Builder
	for {
		switch z.Next() {
		case html.ErrorToken:
			return strings.Join(strings.Fields(b.String()), " ")
		case html.TextToken:
			b.Write(z.Text())
		case html.StartTagToken, html.SelfClosingTagToken:
			if name, _ := z.TagName(); string(name) == "br" {
				b.WriteByte(' ')
			}
		}
	}
}
