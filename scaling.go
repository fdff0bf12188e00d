package tokencss

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// roundTo rounds v to the given number of decimal places.
func roundTo(v float64, places int) float64 {
	factor := math.Pow(10, float64(places))
	return math.Round(v*factor) / factor
}

// formatNumber renders a float without trailing zeros (25.60 -> "25.6").
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// formatLength renders a rounded number with its unit ("" for unitless).
func formatLength(v float64, unit string) string {
	return formatNumber(roundTo(v, 2)) + unit
}

// modeValue pairs a breakpoint width with the variable's numeric value
// at that breakpoint.
type modeValue struct {
	Px  int
	Val float64
}

// linearClamp derives the fluid interpolation between the two extreme
// breakpoints: slope = (maxVal-minVal)/(maxPx-minPx), intercept =
// minVal - slope*minPx, rendered as
// clamp(min, calc(intercept +/- slope*100vw), max). The unit is omitted
// for unitless variables.
func linearClamp(min, max modeValue, unit string) string {
	slope := (max.Val - min.Val) / float64(max.Px-min.Px)
	intercept := min.Val - slope*float64(min.Px)

	lo := math.Min(min.Val, max.Val)
	hi := math.Max(min.Val, max.Val)

	vw := roundTo(slope*100, 4)
	sign := "+"
	if vw < 0 {
		sign = "-"
		vw = -vw
	}

	return fmt.Sprintf("clamp(%s, calc(%s %s %svw), %s)",
		formatLength(lo, unit),
		formatLength(intercept, unit),
		sign,
		strconv.FormatFloat(vw, 'f', -1, 64),
		formatLength(hi, unit))
}

// clampSegment is one piece of a piecewise clamp: the interpolation
// between two adjacent breakpoints plus the lower breakpoint width the
// segment activates at.
type clampSegment struct {
	FromPx int
	ToPx   int
	Value  string
}

// piecewiseClamp derives one linear clamp per adjacent breakpoint pair.
// Modes must be sorted by ascending width; four modes yield three
// segments. The first segment belongs in the default block, the rest in
// direction-aware media queries keyed to the intervening breakpoints.
func piecewiseClamp(modes []modeValue, unit string) []clampSegment {
	if len(modes) < 2 {
		return nil
	}
	segments := make([]clampSegment, 0, len(modes)-1)
	for i := 0; i < len(modes)-1; i++ {
		segments = append(segments, clampSegment{
			FromPx: modes[i].Px,
			ToPx:   modes[i+1].Px,
			Value:  linearClamp(modes[i], modes[i+1], unit),
		})
	}
	return segments
}

// viewportRelative caps a value at its maximum while tracking the full
// viewport width below it.
func viewportRelative(maxVal float64, unit string) string {
	return fmt.Sprintf("min(100vw, %s)", formatLength(maxVal, unit))
}

// nonLinearDeviation measures how far the two interior modes of a
// four-mode variable stray from the straight line through the extremes.
// Modes must be sorted by ascending width. The result is the worst
// interior deviation normalized by the value range; 0 means perfectly
// linear.
func nonLinearDeviation(modes []modeValue) float64 {
	if len(modes) != 4 {
		return 0
	}
	min, max := modes[0], modes[3]
	if max.Val == min.Val {
		return 0
	}
	slope := (max.Val - min.Val) / float64(max.Px-min.Px)
	intercept := min.Val - slope*float64(min.Px)

	var worst float64
	for _, m := range modes[1:3] {
		expected := intercept + slope*float64(m.Px)
		dev := math.Abs(m.Val-expected) / math.Abs(max.Val-min.Val)
		if dev > worst {
			worst = dev
		}
	}
	return worst
}

// nonLinearThreshold is the minimum normalized deviation before a
// variable is flagged as a piecewise candidate.
const nonLinearThreshold = 0.05

// proportionTable maps grid fraction names to column counts on a
// 12-column grid. Ordered longest pattern first so "three-quarters"
// wins over "quarter" and "two-thirds" over "third".
var proportionTable = []struct {
	Pattern string
	Columns int
}{
	{"three-quarters", 9},
	{"two-thirds", 8},
	{"quarter", 3},
	{"whole", 12},
	{"third", 4},
	{"half", 6},
}

// proportionColumns matches a slugged name against the grid proportion
// vocabulary. Returns 0 when the name holds no proportion.
func proportionColumns(name string) int {
	lower := strings.ToLower(name)
	for _, p := range proportionTable {
		if strings.Contains(lower, p.Pattern) {
			return p.Columns
		}
	}
	return 0
}

// isProportion reports whether a token takes the grid proportion form:
// a float, alias-free token whose name matches the proportion table.
func isProportion(tok *token, modes []tokenMode) bool {
	return tok.Type == TypeFloat && !holdsAlias(tok, modes) && proportionColumns(tok.CSSName) > 0
}

// hasModeVariance reports whether the token's rendered output differs
// across the given modes. Comparison is on formatted output, so two
// raw values that round to the same string count as equal.
func hasModeVariance(tok *token, modes []tokenMode) bool {
	var first string
	var haveFirst bool
	for _, m := range modes {
		v, ok := tok.Values[m.ID]
		if !ok {
			continue
		}
		rendered := tok.formatValue(v)
		if !haveFirst {
			first, haveFirst = rendered, true
			continue
		}
		if rendered != first {
			return true
		}
	}
	return false
}

// holdsAlias reports whether any mode's processed value is still an
// alias reference after resolution.
func holdsAlias(tok *token, modes []tokenMode) bool {
	for _, m := range modes {
		if v, ok := tok.Values[m.ID]; ok && v.IsAlias() {
			return true
		}
	}
	return false
}

// needsMediaQueries decides whether a varying token must be driven by
// media queries instead of a clamp: non-float types and alias-bearing
// tokens cannot interpolate.
func needsMediaQueries(tok *token, modes []tokenMode) bool {
	if !hasModeVariance(tok, modes) {
		return false
	}
	if tok.Type != TypeFloat {
		return true
	}
	if holdsAlias(tok, modes) {
		return true
	}
	return false
}

// numericModeValues pairs each breakpoint mode with the token's numeric
// value there, in the given mode order. Modes without a numeric value
// are dropped.
func numericModeValues(tok *token, modes []tokenMode) []modeValue {
	out := make([]modeValue, 0, len(modes))
	for _, m := range modes {
		v, ok := tok.Values[m.ID]
		if !ok || !v.HasNum {
			continue
		}
		out = append(out, modeValue{Px: m.Width, Val: v.Num})
	}
	return out
}

// candidateSet collects the advisory annotations discovered while
// classifying breakpoint collections.
type candidateSet struct {
	Viewport   []Candidate
	Proportion []Candidate
	NonLinear  []Candidate
}

// collectCandidates scans every breakpoint collection for special
// treatment opportunities. Proportion and viewport-relative detection
// take precedence: a token matching either is excluded from non-linear
// candidacy. Each list is sorted by identifier so reports are stable.
func collectCandidates(g *tokenGraph, config Config) candidateSet {
	var set candidateSet

	for _, col := range g.Collections {
		if col.ModeType != ModeBreakpoint {
			continue
		}
		modes := col.modesByWidth()
		for _, tok := range col.Tokens {
			if tok.Type != TypeFloat || holdsAlias(tok, modes) {
				continue
			}

			if cols := proportionColumns(tok.CSSName); cols > 0 {
				set.Proportion = append(set.Proportion, Candidate{
					Name:    tok.CSSName,
					Reason:  "grid proportion name",
					Columns: cols,
				})
				continue
			}

			vals := numericModeValues(tok, modes)
			if len(vals) == 0 {
				continue
			}

			if isViewportCandidate(tok, vals, config.Breakpoints) {
				set.Viewport = append(set.Viewport, Candidate{
					Name:   tok.CSSName,
					Reason: "width token spanning viewport scale",
				})
				continue
			}

			if dev := nonLinearDeviation(vals); dev > nonLinearThreshold {
				set.NonLinear = append(set.NonLinear, Candidate{
					Name:      tok.CSSName,
					Reason:    "interior breakpoints deviate from linear interpolation",
					Deviation: roundTo(dev, 3),
				})
			}
		}
	}

	sortCandidates(set.Viewport)
	sortCandidates(set.Proportion)
	sortCandidates(set.NonLinear)
	return set
}

// isViewportCandidate flags width-named tokens whose largest value
// reaches viewport scale, i.e. at least the narrowest breakpoint.
func isViewportCandidate(tok *token, vals []modeValue, bp Breakpoints) bool {
	if !matchesSegment(strings.ToLower(tok.Name), "width") {
		return false
	}
	maxVal := vals[0].Val
	for _, v := range vals[1:] {
		if v.Val > maxVal {
			maxVal = v.Val
		}
	}
	return maxVal >= float64(bp.Mobile)
}

func sortCandidates(list []Candidate) {
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
}
