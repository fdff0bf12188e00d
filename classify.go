package tokencss

import (
	"regexp"
	"strings"
)

// collectionNameRe splits "Color - Primitives" into a domain token and
// a layer remainder.
var collectionNameRe = regexp.MustCompile(`^(\w+)\s*-\s*(.+)$`)

// parseCollectionName derives the lowercase domain and the layer label
// from a collection display name. Names without a separator use the
// whole name as domain and layer.
func parseCollectionName(name string) (domain, layer string) {
	if m := collectionNameRe.FindStringSubmatch(name); m != nil {
		return strings.ToLower(m[1]), m[2]
	}
	return strings.ToLower(name), name
}

// layerTypeOf keyword-matches a collection name to its layer type.
// "extended"/"2.1" is checked before "alias" so extended alias
// collections are not swallowed by the plain alias match.
func layerTypeOf(name string) LayerType {
	lower := strings.ToLower(name)
	switch {
	case strings.Contains(lower, "foundation"):
		return LayerFoundations
	case strings.Contains(lower, "extended"), strings.Contains(lower, "2.1"):
		return LayerAliasesExtended
	case strings.Contains(lower, "alias"):
		return LayerAliases
	case strings.Contains(lower, "mapping"):
		return LayerMappings
	default:
		return LayerOther
	}
}

// layerRank orders layers for emission: foundations first, mappings
// late, unclassified last.
func layerRank(layer LayerType) int {
	switch layer {
	case LayerFoundations:
		return 0
	case LayerAliases:
		return 1
	case LayerAliasesExtended:
		return 2
	case LayerMappings:
		return 3
	default:
		return 4
	}
}

// breakpointKeywords orders the named breakpoints from widest to
// narrowest for substring matching against mode names.
var breakpointKeywords = []string{"desktop", "laptop", "tablet", "mobile"}

// breakpointWidth resolves a mode name to a pixel width by substring
// match against the breakpoint keyword table. Returns 0 when the name
// matches no known breakpoint.
func breakpointWidth(modeName string, bp Breakpoints) int {
	lower := strings.ToLower(modeName)
	for _, kw := range breakpointKeywords {
		if !strings.Contains(lower, kw) {
			continue
		}
		switch kw {
		case "desktop":
			return bp.Desktop
		case "laptop":
			return bp.Laptop
		case "tablet":
			return bp.Tablet
		case "mobile":
			return bp.Mobile
		}
	}
	return 0
}

// themeKeywords mark a mode name as a theme variant.
var themeKeywords = []string{"light", "dark"}

// isThemeMode reports whether a mode name names a theme.
func isThemeMode(modeName string) bool {
	lower := strings.ToLower(modeName)
	for _, kw := range themeKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// modeTypeOf classifies a collection's mode axis: single for exactly
// one mode, breakpoint when every mode resolves to a known width,
// theme when any mode names a theme, otherwise single. A mode name
// that matches no breakpoint keyword demotes the collection rather
// than raising an error.
func modeTypeOf(modes []Mode, bp Breakpoints) ModeType {
	if len(modes) <= 1 {
		return ModeSingle
	}
	allBreakpoints := true
	anyTheme := false
	for _, m := range modes {
		if breakpointWidth(m.Name, bp) == 0 {
			allBreakpoints = false
		}
		if isThemeMode(m.Name) {
			anyTheme = true
		}
	}
	if allBreakpoints {
		return ModeBreakpoint
	}
	if anyTheme {
		return ModeTheme
	}
	return ModeSingle
}
