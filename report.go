package tokencss

import (
	"fmt"
	"io"
)

// WriteReport writes the human-readable generation summary: counts,
// diagnostics, and the three candidate tables.
func WriteReport(w io.Writer, result *Result, useColors bool) {
	fmt.Fprintln(w, renderStyle(StyleCyan, "Generation summary", useColors))
	fmt.Fprintf(w, "  Collections: %d\n", result.Collections)
	fmt.Fprintf(w, "  Variables:   %d\n", result.Variables)
	fmt.Fprintf(w, "  Declarations: %d\n", result.Declarations)

	if len(result.Diagnostics) > 0 {
		fmt.Fprintln(w, "")
		fmt.Fprintln(w, renderStyle(StyleYellow, pluralizeCount(len(result.Diagnostics), "diagnostic", "diagnostics"), useColors))
		for _, d := range result.Diagnostics {
			fmt.Fprintf(w, "  - %s\n", d)
		}
	}

	writeCandidates(w, "Viewport-relative candidates", result.ViewportCandidates, useColors,
		func(c Candidate) string { return c.Reason })
	writeCandidates(w, "Grid proportion tokens", result.ProportionCandidates, useColors,
		func(c Candidate) string { return fmt.Sprintf("%d columns", c.Columns) })
	writeCandidates(w, "Non-linear candidates", result.NonLinearCandidates, useColors,
		func(c Candidate) string { return fmt.Sprintf("deviation %.1f%%", c.Deviation*100) })

	if len(result.ViewportCandidates)+len(result.NonLinearCandidates) > 0 {
		fmt.Fprintln(w, "")
		fmt.Fprintln(w, renderStyle(StyleGray,
			"Hint: opt candidates in via viewport-relative / piecewise config lists", useColors))
	}
}

// writeCandidates prints one candidate table, skipping empty lists.
func writeCandidates(w io.Writer, title string, list []Candidate, useColors bool, detail func(Candidate) string) {
	if len(list) == 0 {
		return
	}
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, renderStyle(StyleGreen, title, useColors))
	for _, c := range list {
		fmt.Fprintf(w, "  --%s  %s\n", c.Name, renderStyle(StyleGray, detail(c), useColors))
	}
}

// pluralizeCount returns a formatted string with count and singular/plural form
func pluralizeCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}
