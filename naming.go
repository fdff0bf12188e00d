package tokencss

import "strings"

// slugName turns a token path name into an output identifier: lowercase,
// non [a-z0-9-] characters become hyphens, runs of 3+ hyphens collapse
// to exactly 2 (so an intentional double hyphen like "stroke--width"
// survives but accidental triple separators merge), edges trimmed.
func slugName(name string) string {
	var b strings.Builder
	for _, ch := range strings.ToLower(name) {
		switch {
		case ch >= 'a' && ch <= 'z', ch >= '0' && ch <= '9', ch == '-':
			b.WriteRune(ch)
		default:
			b.WriteRune('-')
		}
	}
	slug := b.String()
	for strings.Contains(slug, "---") {
		slug = strings.ReplaceAll(slug, "---", "--")
	}
	return strings.Trim(slug, "-")
}

// knownDomains is the vocabulary checked when deciding whether an
// "other"-layer name already starts with a domain word.
var knownDomains = map[string]bool{
	"color":      true,
	"space":      true,
	"size":       true,
	"font":       true,
	"type":       true,
	"typography": true,
	"radius":     true,
	"border":     true,
	"stroke":     true,
	"shadow":     true,
	"elevation":  true,
	"opacity":    true,
	"grid":       true,
	"breakpoint": true,
	"motion":     true,
}

// cssName derives the output identifier for a variable. It is a pure
// function of (raw name, domain, layer type); recomputing it always
// yields the same identifier.
//
// Prefix policy: the mappings layer never gets a domain prefix (its
// names are the stable component-facing API); foundations and alias
// layers get the domain prefix unless the name already starts with it;
// the "other" layer gets the prefix only when the name does not already
// start with a known domain word.
func cssName(rawName, domain string, layer LayerType) string {
	slug := slugName(rawName)
	domain = slugName(domain)

	switch layer {
	case LayerMappings:
		return slug
	case LayerFoundations, LayerAliases, LayerAliasesExtended:
		if domain == "" || hasPrefixSegment(slug, domain) {
			return slug
		}
		return domain + "-" + slug
	default: // LayerOther
		if domain == "" || knownDomains[firstSegment(slug)] {
			return slug
		}
		return domain + "-" + slug
	}
}

// hasPrefixSegment reports whether slug equals prefix or begins with
// prefix followed by a separator.
func hasPrefixSegment(slug, prefix string) bool {
	return slug == prefix || strings.HasPrefix(slug, prefix+"-")
}

// firstSegment returns the part of a slug before the first hyphen.
func firstSegment(slug string) string {
	if i := strings.IndexByte(slug, '-'); i >= 0 {
		return slug[:i]
	}
	return slug
}

// unitlessKeywords name variables whose numeric values carry no px
// unit in output.
var unitlessKeywords = []string{
	"weight",
	"opacity",
	"z-index",
	"order",
	"flex-grow",
	"flex-shrink",
	"ratio",
	"count",
	"columns",
	"rows",
}

// isUnitless reports whether a variable name (raw or slugged) matches
// one of the unitless keywords on segment boundaries.
func isUnitless(name string) bool {
	lower := strings.ToLower(name)
	for _, kw := range unitlessKeywords {
		if matchesSegment(lower, kw) {
			return true
		}
	}
	return false
}

// matchesSegment reports whether keyword occurs in name bounded on both
// sides by a separator ('-', '/', '.', space) or the string edge. This
// keeps "order" from matching inside "border".
func matchesSegment(name, keyword string) bool {
	for start := 0; ; {
		i := strings.Index(name[start:], keyword)
		if i < 0 {
			return false
		}
		i += start
		end := i + len(keyword)
		if boundaryAt(name, i-1) && boundaryAt(name, end) {
			return true
		}
		start = i + 1
	}
}

// boundaryAt reports whether position i is a segment boundary: outside
// the string or one of the separator characters.
func boundaryAt(name string, i int) bool {
	if i < 0 || i >= len(name) {
		return true
	}
	switch name[i] {
	case '-', '/', '.', ' ':
		return true
	}
	return false
}
