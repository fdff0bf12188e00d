// Package tokencss compiles a design-token graph into a responsive
// custom-property stylesheet.
//
// The input is a snapshot of typed variables grouped into collections,
// each with per-breakpoint or per-theme values, some values referencing
// other variables. Generation resolves those references, derives fluid
// scaling formulas for numeric breakpoint tokens, and emits an ordered,
// deduplicated stylesheet with theme selectors.
//
//	graph := &tokencss.Graph{Collections: collections}
//	result, err := tokencss.Generate(graph, tokencss.Config{
//		OutputMode: tokencss.OutputFluid,
//		Direction:  tokencss.DirectionMobileFirst,
//	})
//
// The result carries the stylesheet text, processing counts, non-fatal
// diagnostics, and three advisory candidate lists (viewport-relative,
// grid proportion, non-linear) for a caller's review surface.
//
// # CLI Tool
//
// tokencss also provides a CLI tool. Install with:
//
//	go install github.com/yacobolo/tokencss/cmd/tokencss@latest
package tokencss

// Public API:
// - Generate(graph *Graph, config Config) (*Result, error)
// - WriteReport(w io.Writer, result *Result, useColors bool)
// - WriteJSON(w io.Writer, result *Result) error
