package tokencss

import (
	"fmt"
	"strings"
	"time"
)

// Generate is the main entry point: it builds and resolves the token
// graph from one input snapshot and emits the stylesheet plus the
// structured report. The only error is an invalid configuration;
// everything past that boundary degrades to diagnostics on the result.
func Generate(graph *Graph, config Config) (*Result, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	config = config.withDefaults()

	// 1. Build the graph: classify collections, derive identifiers,
	// convert literals.
	g := buildGraph(graph, config)

	// 2. Resolve alias references to emitted names (or flatten them).
	g.resolveAliases(config.AliasMode)

	// 3. Detect special-treatment candidates on breakpoint collections.
	candidates := collectCandidates(g, config)

	// 4. Emit the ordered stylesheet.
	em := &emitter{config: config, graph: g}
	css, declarations := em.emit(graph.TextStyles)

	result := &Result{
		CSS:                  header(config) + css,
		Collections:          len(g.Collections),
		Declarations:         declarations,
		Diagnostics:          g.Diagnostics,
		ViewportCandidates:   candidates.Viewport,
		ProportionCandidates: candidates.Proportion,
		NonLinearCandidates:  candidates.NonLinear,
	}
	for _, col := range g.Collections {
		result.Variables += len(col.Tokens)
	}
	return result, nil
}

// header renders the generated-file banner.
func header(config Config) string {
	var b strings.Builder
	b.WriteString("/* Generated by tokencss. Do not edit directly. */\n")
	if config.IncludeTimestamp {
		fmt.Fprintf(&b, "/* Generated at %s */\n", time.Now().Format(time.RFC3339))
	}
	b.WriteString("\n")
	return b.String()
}
