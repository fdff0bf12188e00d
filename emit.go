package tokencss

import (
	"fmt"
	"sort"
	"strings"
)

// emitState is the dedup accumulator threaded through the emission
// fold: each step receives the state so far and returns the updated
// state instead of sharing a mutable set.
type emitState struct {
	emitted      map[string]bool
	declarations int
}

func newEmitState() emitState {
	return emitState{emitted: make(map[string]bool)}
}

// mark records an identifier as emitted and counts its declaration.
func (s emitState) mark(name string) emitState {
	s.emitted[name] = true
	s.declarations++
	return s
}

// count records a companion declaration that introduces no new
// identifier of its own (fr companions, theme re-declarations).
func (s emitState) count() emitState {
	s.declarations++
	return s
}

// emitter renders the resolved graph as stylesheet text.
type emitter struct {
	config Config
	graph  *tokenGraph
}

// emit runs the full emission pass: collections sorted by domain then
// layer rank, each rendered by the strategy its mode type selects,
// followed by text styles.
func (e *emitter) emit(textStyles []TextStyle) (string, int) {
	cols := make([]*tokenCollection, len(e.graph.Collections))
	copy(cols, e.graph.Collections)
	sort.SliceStable(cols, func(i, j int) bool {
		if cols[i].Domain != cols[j].Domain {
			return cols[i].Domain < cols[j].Domain
		}
		return layerRank(cols[i].LayerType) < layerRank(cols[j].LayerType)
	})

	var b strings.Builder
	state := newEmitState()

	for _, col := range cols {
		switch {
		case col.ModeType == ModeBreakpoint && e.config.OutputMode == OutputFluid:
			state = e.emitBreakpointFluid(&b, col, state)
		case col.ModeType == ModeBreakpoint:
			state = e.emitBreakpointFixed(&b, col, state)
		case col.ModeType == ModeTheme:
			state = e.emitTheme(&b, col, state)
		default:
			state = e.emitSingle(&b, col, state)
		}
	}

	if e.config.TextStyles != TextStylesOff && len(textStyles) > 0 {
		state = e.emitTextStyles(&b, textStyles, state)
	}

	return b.String(), state.declarations
}

// skipToken applies the dedup/circular gate: self-referencing aliases
// never emit, and an identifier already emitted by an earlier
// collection is skipped unless the token sits in the foundations
// layer, which always takes emission priority.
func (e *emitter) skipToken(tok *token, state emitState) bool {
	for _, v := range tok.Values {
		if v.IsAlias() && v.Ref == tok.CSSName {
			return true
		}
	}
	if state.emitted[tok.CSSName] && tok.Layer != LayerFoundations {
		return true
	}
	return false
}

// writeDecl writes one custom-property declaration, optionally suffixed
// with the variable id for traceability.
func (e *emitter) writeDecl(b *strings.Builder, name, value, id string) {
	if e.config.IncludeIDs && id != "" {
		fmt.Fprintf(b, "  --%s: %s; /* %s */\n", name, value, id)
		return
	}
	fmt.Fprintf(b, "  --%s: %s;\n", name, value)
}

// orderedModes returns the collection's breakpoint modes in emission
// order: ascending width for mobile-first, descending for
// desktop-first. The first mode is the default block's mode.
func (e *emitter) orderedModes(col *tokenCollection) []tokenMode {
	modes := col.modesByWidth()
	if e.config.Direction == DirectionDesktopFirst {
		for i, j := 0, len(modes)-1; i < j; i, j = i+1, j-1 {
			modes[i], modes[j] = modes[j], modes[i]
		}
	}
	return modes
}

// mediaQuery renders the conditional block header for one breakpoint
// transition: min-width at the mode's own width when ascending,
// max-width at the previous (wider) mode's width - 1 when descending.
func (e *emitter) mediaQuery(prev, mode tokenMode) string {
	if e.config.Direction == DirectionDesktopFirst {
		return fmt.Sprintf("@media (max-width: %dpx)", prev.Width-1)
	}
	return fmt.Sprintf("@media (min-width: %dpx)", mode.Width)
}

// fluidValue renders a clampable token's default-block value, picking
// the treatment in precedence order: grid proportion (always on),
// viewport-relative (opt-in), piecewise first segment (opt-in), plain
// linear clamp.
func (e *emitter) fluidValue(tok *token, vals []modeValue) string {
	if e.isPiecewise(tok, vals) {
		segs := piecewiseClamp(vals, tok.unit())
		if e.config.Direction == DirectionDesktopFirst {
			return segs[len(segs)-1].Value
		}
		return segs[0].Value
	}
	if e.optedIn(e.config.ViewportRelative, tok.CSSName) {
		maxVal := vals[0].Val
		for _, v := range vals[1:] {
			if v.Val > maxVal {
				maxVal = v.Val
			}
		}
		return viewportRelative(maxVal, tok.unit())
	}
	return linearClamp(vals[0], vals[len(vals)-1], tok.unit())
}

// isPiecewise reports whether a token is opted into the three-segment
// clamp and has the four breakpoint modes the derivation needs.
func (e *emitter) isPiecewise(tok *token, vals []modeValue) bool {
	return len(vals) == 4 && e.optedIn(e.config.Piecewise, tok.CSSName)
}

func (e *emitter) optedIn(list []string, name string) bool {
	for _, entry := range list {
		if entry == name {
			return true
		}
	}
	return false
}

// emitBreakpointFluid renders a breakpoint collection in fluid mode:
// clampable tokens (numeric, alias-free) interpolate via clamp/min()
// forms in the default block; alias and non-numeric tokens are driven
// by per-breakpoint media queries as the primary mechanism.
func (e *emitter) emitBreakpointFluid(b *strings.Builder, col *tokenCollection, state emitState) emitState {
	modes := e.orderedModes(col)
	if len(modes) == 0 {
		return e.emitSingle(b, col, state)
	}
	defaultMode := modes[0]

	var static, clampable, mediaDriven []*token
	for _, tok := range col.Tokens {
		if e.skipToken(tok, state) {
			continue
		}
		switch {
		case isProportion(tok, modes):
			// Proportions apply whenever the name matches, variance or
			// not: a column count is the same at every breakpoint.
			clampable = append(clampable, tok)
		case !hasModeVariance(tok, modes):
			static = append(static, tok)
		case needsMediaQueries(tok, modes):
			mediaDriven = append(mediaDriven, tok)
		default:
			clampable = append(clampable, tok)
		}
	}
	if len(static)+len(clampable)+len(mediaDriven) == 0 {
		return state
	}

	fmt.Fprintf(b, "/* %s */\n:root {\n", col.Name)
	for _, tok := range static {
		state = e.emitStatic(b, tok, defaultMode, state)
	}
	for _, tok := range clampable {
		vals := numericModeValues(tok, modes)
		sort.Slice(vals, func(i, j int) bool { return vals[i].Px < vals[j].Px })

		if cols := proportionColumns(tok.CSSName); cols > 0 {
			e.writeDecl(b, tok.CSSName, formatNumber(float64(cols)), tok.ID)
			state = state.mark(tok.CSSName)
			e.writeDecl(b, tok.CSSName+"--fr", fmt.Sprintf("%dfr", cols), "")
			state = state.count()
			continue
		}
		if len(vals) < 2 {
			state = e.emitStatic(b, tok, defaultMode, state)
			continue
		}
		e.writeDecl(b, tok.CSSName, e.fluidValue(tok, vals), tok.ID)
		state = state.mark(tok.CSSName)
	}
	for _, tok := range mediaDriven {
		if v, ok := tok.Values[defaultMode.ID]; ok {
			if rendered := tok.formatValue(v); rendered != "" {
				e.writeDecl(b, tok.CSSName, rendered, tok.ID)
				state = state.mark(tok.CSSName)
			}
		}
	}
	b.WriteString("}\n\n")

	// One conditional block per breakpoint transition, carrying the
	// media-driven tokens and any piecewise segments for that interval.
	for i := 1; i < len(modes); i++ {
		var block strings.Builder
		for _, tok := range mediaDriven {
			v, ok := tok.Values[modes[i].ID]
			if !ok {
				continue
			}
			if rendered := tok.formatValue(v); rendered != "" {
				e.writeDecl(&block, tok.CSSName, rendered, tok.ID)
				state = state.count()
			}
		}
		for _, tok := range clampable {
			if proportionColumns(tok.CSSName) > 0 {
				continue
			}
			vals := numericModeValues(tok, modes)
			sort.Slice(vals, func(a, c int) bool { return vals[a].Px < vals[c].Px })
			if !e.isPiecewise(tok, vals) {
				continue
			}
			// The default block already carries the segment adjacent to
			// the default mode; the two remaining segments land in the
			// blocks keyed to the intervening breakpoints.
			segs := piecewiseClamp(vals, tok.unit())
			segIdx := -1
			if e.config.Direction == DirectionDesktopFirst {
				if i >= 2 {
					segIdx = len(segs) - i
				}
			} else if i <= len(segs)-1 {
				segIdx = i
			}
			if segIdx < 0 {
				continue
			}
			e.writeDecl(&block, tok.CSSName, segs[segIdx].Value, tok.ID)
			state = state.count()
		}
		if block.Len() == 0 {
			continue
		}
		fmt.Fprintf(b, "%s {\n  :root {\n", e.mediaQuery(modes[i-1], modes[i]))
		indentInto(b, block.String())
		b.WriteString("  }\n}\n\n")
	}

	if e.config.LegacyFallbacks {
		state = e.emitLegacyFallback(b, col, modes, clampable, state)
	}

	return state
}

// emitLegacyFallback re-emits literal per-mode values for the
// clampable set inside a guarded block for consumers without clamp()
// support.
func (e *emitter) emitLegacyFallback(b *strings.Builder, col *tokenCollection, modes []tokenMode, clampable []*token, state emitState) emitState {
	plain := make([]*token, 0, len(clampable))
	for _, tok := range clampable {
		if proportionColumns(tok.CSSName) == 0 {
			plain = append(plain, tok)
		}
	}
	if len(plain) == 0 {
		return state
	}

	b.WriteString("@supports not (width: clamp(1px, 2vw, 3px)) {\n")
	fmt.Fprintf(b, "  /* %s: static fallback */\n  :root {\n", col.Name)
	for _, tok := range plain {
		if v, ok := tok.Values[modes[0].ID]; ok {
			if rendered := tok.formatValue(v); rendered != "" {
				fmt.Fprintf(b, "    --%s: %s;\n", tok.CSSName, rendered)
				state = state.count()
			}
		}
	}
	b.WriteString("  }\n")
	for i := 1; i < len(modes); i++ {
		fmt.Fprintf(b, "  %s {\n    :root {\n", e.mediaQuery(modes[i-1], modes[i]))
		for _, tok := range plain {
			if v, ok := tok.Values[modes[i].ID]; ok {
				if rendered := tok.formatValue(v); rendered != "" {
					fmt.Fprintf(b, "      --%s: %s;\n", tok.CSSName, rendered)
					state = state.count()
				}
			}
		}
		b.WriteString("    }\n  }\n")
	}
	b.WriteString("}\n\n")
	return state
}

// emitBreakpointFixed renders a breakpoint collection with literal
// per-mode values and no interpolation. Grid proportions keep their
// always-on form.
func (e *emitter) emitBreakpointFixed(b *strings.Builder, col *tokenCollection, state emitState) emitState {
	modes := e.orderedModes(col)
	if len(modes) == 0 {
		return e.emitSingle(b, col, state)
	}
	defaultMode := modes[0]

	var kept []*token
	for _, tok := range col.Tokens {
		if !e.skipToken(tok, state) {
			kept = append(kept, tok)
		}
	}
	if len(kept) == 0 {
		return state
	}

	fmt.Fprintf(b, "/* %s */\n:root {\n", col.Name)
	for _, tok := range kept {
		if isProportion(tok, modes) {
			cols := proportionColumns(tok.CSSName)
			e.writeDecl(b, tok.CSSName, formatNumber(float64(cols)), tok.ID)
			state = state.mark(tok.CSSName)
			e.writeDecl(b, tok.CSSName+"--fr", fmt.Sprintf("%dfr", cols), "")
			state = state.count()
			continue
		}
		if v, ok := tok.Values[defaultMode.ID]; ok {
			if rendered := tok.formatValue(v); rendered != "" {
				e.writeDecl(b, tok.CSSName, rendered, tok.ID)
				state = state.mark(tok.CSSName)
			}
		}
	}
	b.WriteString("}\n\n")

	for i := 1; i < len(modes); i++ {
		var block strings.Builder
		for _, tok := range kept {
			if isProportion(tok, modes) {
				continue
			}
			if !hasModeVariance(tok, modes) {
				continue
			}
			v, ok := tok.Values[modes[i].ID]
			if !ok {
				continue
			}
			if rendered := tok.formatValue(v); rendered != "" {
				e.writeDecl(&block, tok.CSSName, rendered, tok.ID)
				state = state.count()
			}
		}
		if block.Len() == 0 {
			continue
		}
		fmt.Fprintf(b, "%s {\n  :root {\n", e.mediaQuery(modes[i-1], modes[i]))
		indentInto(b, block.String())
		b.WriteString("  }\n}\n\n")
	}

	return state
}

// emitTheme renders a theme collection: a default block from the light
// mode, then (per configuration) prefers-color-scheme and/or
// attribute-selector blocks. Every token is re-declared in every theme
// block, even when light and dark agree, so reference chains stay
// resolvable whichever selector wins the cascade.
func (e *emitter) emitTheme(b *strings.Builder, col *tokenCollection, state emitState) emitState {
	var light, dark *tokenMode
	for i := range col.Modes {
		m := &col.Modes[i]
		lower := strings.ToLower(m.Name)
		if light == nil && strings.Contains(lower, "light") {
			light = m
		}
		if dark == nil && strings.Contains(lower, "dark") {
			dark = m
		}
	}
	if light == nil && len(col.Modes) > 0 {
		light = &col.Modes[0]
	}
	if light == nil {
		return state
	}

	var kept []*token
	for _, tok := range col.Tokens {
		if !e.skipToken(tok, state) {
			kept = append(kept, tok)
		}
	}
	if len(kept) == 0 {
		return state
	}

	fmt.Fprintf(b, "/* %s */\n:root {\n", col.Name)
	for _, tok := range kept {
		if v, ok := tok.Values[light.ID]; ok {
			if rendered := tok.formatValue(v); rendered != "" {
				e.writeDecl(b, tok.CSSName, rendered, tok.ID)
				state = state.mark(tok.CSSName)
			}
		}
	}
	b.WriteString("}\n\n")

	if dark == nil {
		return state
	}

	themeBlock := func(header string, mode *tokenMode, indent string) {
		fmt.Fprintf(b, "%s\n", header)
		for _, tok := range kept {
			if v, ok := tok.Values[mode.ID]; ok {
				if rendered := tok.formatValue(v); rendered != "" {
					fmt.Fprintf(b, "%s--%s: %s;\n", indent, tok.CSSName, rendered)
					state = state.count()
				}
			}
		}
	}

	if e.config.DarkMode == DarkModePrefers || e.config.DarkMode == DarkModeBoth {
		themeBlock("@media (prefers-color-scheme: light) {\n  :root {", light, "    ")
		b.WriteString("  }\n}\n\n")
		themeBlock("@media (prefers-color-scheme: dark) {\n  :root {", dark, "    ")
		b.WriteString("  }\n}\n\n")
	}
	if e.config.DarkMode == DarkModeClass || e.config.DarkMode == DarkModeBoth {
		themeBlock(`[data-theme="light"] {`, light, "  ")
		b.WriteString("}\n\n")
		themeBlock(`[data-theme="dark"] {`, dark, "  ")
		b.WriteString("}\n\n")
	}

	return state
}

// emitSingle renders a single-mode collection as one flat block.
func (e *emitter) emitSingle(b *strings.Builder, col *tokenCollection, state emitState) emitState {
	if len(col.Modes) == 0 {
		return state
	}
	mode := col.Modes[0]

	var block strings.Builder
	for _, tok := range col.Tokens {
		if e.skipToken(tok, state) {
			continue
		}
		v, ok := tok.Values[mode.ID]
		if !ok {
			continue
		}
		if rendered := tok.formatValue(v); rendered != "" {
			e.writeDecl(&block, tok.CSSName, rendered, tok.ID)
			state = state.mark(tok.CSSName)
		}
	}
	if block.Len() == 0 {
		return state
	}

	fmt.Fprintf(b, "/* %s */\n:root {\n", col.Name)
	b.WriteString(block.String())
	b.WriteString("}\n\n")
	return state
}

// emitStatic writes a non-varying token's value, falling back to the
// first populated mode when the default mode holds nothing.
func (e *emitter) emitStatic(b *strings.Builder, tok *token, mode tokenMode, state emitState) emitState {
	v, ok := tok.Values[mode.ID]
	if !ok {
		for _, id := range tok.ModeOrder {
			if vv, exists := tok.Values[id]; exists {
				v, ok = vv, true
				break
			}
		}
	}
	if !ok {
		return state
	}
	rendered := tok.formatValue(v)
	if rendered == "" {
		return state
	}
	e.writeDecl(b, tok.CSSName, rendered, tok.ID)
	return state.mark(tok.CSSName)
}

// indentInto writes block into b with two extra spaces per line.
func indentInto(b *strings.Builder, block string) {
	for _, line := range strings.Split(strings.TrimRight(block, "\n"), "\n") {
		b.WriteString("  ")
		b.WriteString(line)
		b.WriteString("\n")
	}
}
