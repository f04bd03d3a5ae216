// Package pipeline maps parsed Markdown blocks to layout flowables.
//
// It holds the design-bearing middle of the conversion:
//   - inline emphasis normalization to the <b>/<i> primitives the renderer draws
//   - table grid extraction with plain-text cells
//   - the block mapper, which dispatches on markup.Kind and emits styled text,
//     spacers and tables in reading order
//
// Parsing lives in internal/markup and PDF output in internal/render. Every
// function here is pure over its inputs, so a Mapper may be shared across
// goroutines.
package pipeline
