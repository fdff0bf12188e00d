package tokencss

import (
	"fmt"
	"strings"
)

// textStyleNamespaces are path prefixes stripped from text style names
// before slugging.
var textStyleNamespaces = []string{
	"text styles",
	"text-styles",
	"text style",
	"typography",
	"type",
}

// textStyleName normalizes a composite token's display name: drop a
// known namespace segment, then slug the rest.
func textStyleName(name string) string {
	if i := strings.Index(name, "/"); i > 0 {
		head := strings.ToLower(strings.TrimSpace(name[:i]))
		for _, ns := range textStyleNamespaces {
			if head == ns {
				name = name[i+1:]
				break
			}
		}
	}
	return slugName(name)
}

// fontWeights maps weight keywords to their numeric values.
var fontWeights = map[string]int{
	"thin":        100,
	"hairline":    100,
	"extra-light": 200,
	"ultra-light": 200,
	"light":       300,
	"normal":      400,
	"regular":     400,
	"book":        400,
	"medium":      500,
	"semi-bold":   600,
	"demi-bold":   600,
	"bold":        700,
	"extra-bold":  800,
	"ultra-bold":  800,
	"black":       900,
	"heavy":       900,
}

// fontWeightValue maps a weight keyword to its numeric value, checking
// compound names ("Extra Bold") before simple ones so "extra-bold"
// does not collapse to 700. Unknown keywords default to 400.
func fontWeightValue(keyword string) int {
	slug := slugName(keyword)
	if w, ok := fontWeights[slug]; ok {
		return w
	}
	// "SemiBold" and friends slug without a separator.
	for kw, w := range fontWeights {
		if strings.ReplaceAll(kw, "-", "") == slug {
			return w
		}
	}
	return 400
}

// textStyleProps orders the six composite properties and names their
// CSS counterparts.
var textStyleProps = []struct {
	Key string
	CSS string
}{
	{PropFamily, "font-family"},
	{PropSize, "font-size"},
	{PropWeight, "font-weight"},
	{PropStyle, "font-style"},
	{PropLineHeight, "line-height"},
	{PropLetterSpacing, "letter-spacing"},
}

// emitTextStyles renders every composite text token in the configured
// shape: an @mixin rule block, a class selector, or a flat set of
// custom properties.
func (e *emitter) emitTextStyles(b *strings.Builder, styles []TextStyle, state emitState) emitState {
	if e.config.TextStyles == TextStylesProperties {
		b.WriteString("/* Text styles */\n:root {\n")
		for _, ts := range styles {
			name := textStyleName(ts.Name)
			for _, p := range textStyleProps {
				prop, ok := ts.Properties[p.Key]
				if !ok {
					continue
				}
				value := e.textStyleValue(p.Key, prop)
				if value == "" {
					continue
				}
				fmt.Fprintf(b, "  --%s-%s: %s;\n", name, p.Key, value)
				state = state.count()
			}
		}
		b.WriteString("}\n\n")
		return state
	}

	for _, ts := range styles {
		name := textStyleName(ts.Name)
		if e.config.TextStyles == TextStylesClass {
			fmt.Fprintf(b, ".%s {\n", name)
		} else {
			fmt.Fprintf(b, "@mixin %s {\n", name)
		}
		for _, p := range textStyleProps {
			prop, ok := ts.Properties[p.Key]
			if !ok {
				continue
			}
			value := e.textStyleValue(p.Key, prop)
			if value == "" {
				continue
			}
			fmt.Fprintf(b, "  %s: %s;\n", p.CSS, value)
			state = state.count()
		}
		b.WriteString("}\n\n")
	}
	return state
}

// textStyleValue renders one property: a var() reference with no
// static fallback when the property is bound to a graph variable
// (responsive bound values would make any fallback wrong), otherwise a
// computed literal.
func (e *emitter) textStyleValue(key string, prop TextStyleProperty) string {
	if prop.Variable != "" {
		target, ok := e.graph.byID[prop.Variable]
		if !ok {
			e.graph.Diagnostics = append(e.graph.Diagnostics,
				fmt.Sprintf("text style property %s references missing variable %s", key, prop.Variable))
			return ""
		}
		return "var(--" + target.CSSName + ")"
	}

	switch key {
	case PropWeight:
		if prop.HasNum {
			return formatNumber(roundTo(prop.Num, 0))
		}
		return fmt.Sprintf("%d", fontWeightValue(prop.Str))
	case PropLineHeight:
		if !prop.HasNum {
			return prop.Str
		}
		switch prop.Unit {
		case "ratio":
			return formatNumber(roundTo(prop.Num, 3))
		case "percent":
			return formatNumber(roundTo(prop.Num/100, 3))
		default:
			return formatLength(prop.Num, "px")
		}
	case PropLetterSpacing:
		if !prop.HasNum {
			return prop.Str
		}
		switch prop.Unit {
		case "percent":
			return formatNumber(roundTo(prop.Num/100, 3)) + "em"
		case "ratio":
			return formatNumber(roundTo(prop.Num, 3)) + "em"
		default:
			return formatLength(prop.Num, "px")
		}
	case PropSize:
		if prop.HasNum {
			return formatLength(prop.Num, "px")
		}
		return prop.Str
	case PropFamily:
		if prop.Str != "" && strings.ContainsRune(prop.Str, ' ') {
			return fmt.Sprintf("%q", prop.Str)
		}
		return prop.Str
	default: // PropStyle
		return prop.Str
	}
}
