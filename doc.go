// Package chat2pdf converts chatbot Markdown answers into styled,
// paginated PDF documents. It is pure Go: no browser, no external tools.
//
// # Quick Start
//
//	conv, err := chat2pdf.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := conv.Convert(ctx, chat2pdf.Input{
//	    Markdown: "## Hello\n\nSome **bold** text.",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile(result.Filename, result.PDF, 0644)
//
// # Pipeline
//
// Each conversion runs five stages in order: validate, preprocess, parse,
// map and render. Parsing yields top-level blocks (headings 2 to 4,
// paragraphs, bulleted and numbered lists, pipe tables). Mapping turns each
// block into styled text, vertical spacers or a table. Other blocks such as
// code fences, quotes and level-1 headings are skipped. The renderer lays the
// result out on US Letter pages with 0.75in margins.
//
// Any failure aborts the whole conversion and returns a *ConversionError
// naming the stage; no partial PDF is ever returned. Use errors.Is with
// ErrParse, ErrUnknownStyle, ErrEmptyTable or ErrRender to find the cause.
//
// # Concurrency
//
// A Converter holds no mutable state after construction and may be shared
// across goroutines. ConverterPool bounds how many conversions run at once.
//
// # Styling
//
// The default palette uses green headings and banded tables. WithTheme
// selects a built-in theme by name ("ocean", "slate") or loads a YAML file
// overriding any style field:
//
//	styles:
//	  heading2:
//	    color: "#003366"
//	table:
//	  headerFill: "#003366"
//
// WithThemeDir adds a directory of named themes that shadow the built-in ones.
//
// # Logging
//
// Pass a *zap.Logger with WithLogger to see stage progress. The default
// logger discards everything.
package chat2pdf
