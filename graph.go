package tokencss

import (
	"fmt"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// ProcessedValue is the per-mode value after pass 1: either an alias
// reference (AliasTarget set, Ref filled in by resolution) or a literal
// (Literal for color/string/bool, Num for float). Exactly one side is
// populated.
type ProcessedValue struct {
	AliasTarget string // referenced variable id
	Ref         string // referenced variable's output identifier
	Literal     string
	Num         float64
	HasNum      bool
}

// IsAlias reports whether the value references another variable.
func (v ProcessedValue) IsAlias() bool { return v.AliasTarget != "" }

// token is one variable with its derived identity and processed values.
type token struct {
	ID          string
	Name        string
	Description string
	Type        VarType
	Domain      string
	Layer       LayerType
	CSSName     string
	Unitless    bool
	IsAlias     bool                      // any mode held an alias in the raw input
	ModeOrder   []string                  // owning collection's mode ids, in order
	Values      map[string]ProcessedValue // mode id -> processed value
}

// unit returns the length unit appended to the token's numeric output.
func (t *token) unit() string {
	if t.Unitless {
		return ""
	}
	return "px"
}

// formatValue renders one processed value for output. Returns "" for
// suppressed values (unresolved aliases, missing modes).
func (t *token) formatValue(v ProcessedValue) string {
	if v.IsAlias() {
		if v.Ref == "" {
			return ""
		}
		return "var(--" + v.Ref + ")"
	}
	if v.HasNum {
		return formatLength(v.Num, t.unit())
	}
	return v.Literal
}

// tokenMode is a collection mode with its resolved breakpoint width
// (0 when the name matches no breakpoint keyword).
type tokenMode struct {
	ID    string
	Name  string
	Width int
}

// tokenCollection groups tokens sharing a classified mode set.
type tokenCollection struct {
	ID        string
	Name      string
	Domain    string
	Layer     string
	LayerType LayerType
	ModeType  ModeType
	Modes     []tokenMode
	Tokens    []*token
}

// modesByWidth returns the collection's breakpoint modes sorted by
// ascending width, dropping modes with no resolved width. Two modes
// resolving to the same width (say "Mobile" and "Mobile Landscape")
// would make interpolation divide by zero, so only the first mode per
// width is kept.
func (c *tokenCollection) modesByWidth() []tokenMode {
	modes := make([]tokenMode, 0, len(c.Modes))
	seen := make(map[int]bool, len(c.Modes))
	for _, m := range c.Modes {
		if m.Width > 0 && !seen[m.Width] {
			seen[m.Width] = true
			modes = append(modes, m)
		}
	}
	sort.Slice(modes, func(i, j int) bool { return modes[i].Width < modes[j].Width })
	return modes
}

// tokenGraph is the fully built and resolved graph for one pass.
type tokenGraph struct {
	Collections []*tokenCollection
	byID        map[string]*token
	Diagnostics []string
}

// buildGraph runs pass 1 over the input snapshot: classify every
// collection, derive every token's identity, and convert every raw
// value into a ProcessedValue. Alias targets stay unresolved until
// resolveAliases runs.
func buildGraph(g *Graph, config Config) *tokenGraph {
	graph := &tokenGraph{byID: make(map[string]*token)}

	for _, col := range g.Collections {
		if excludeCollection(col.Name, config.ExcludeCollections) {
			continue
		}

		domain, layer := parseCollectionName(col.Name)
		layerType := layerTypeOf(col.Name)

		tc := &tokenCollection{
			ID:        col.ID,
			Name:      col.Name,
			Domain:    domain,
			Layer:     layer,
			LayerType: layerType,
			ModeType:  modeTypeOf(col.Modes, config.Breakpoints),
		}
		modeOrder := make([]string, 0, len(col.Modes))
		for _, m := range col.Modes {
			tc.Modes = append(tc.Modes, tokenMode{
				ID:    m.ID,
				Name:  m.Name,
				Width: breakpointWidth(m.Name, config.Breakpoints),
			})
			modeOrder = append(modeOrder, m.ID)
		}

		for _, v := range col.Variables {
			tok := &token{
				ID:          v.ID,
				Name:        v.Name,
				Description: v.Description,
				Type:        v.Type,
				Domain:      domain,
				Layer:       layerType,
				CSSName:     cssName(v.Name, domain, layerType),
				Unitless:    isUnitless(v.Name),
				ModeOrder:   modeOrder,
				Values:      make(map[string]ProcessedValue, len(v.Values)),
			}
			for modeID, raw := range v.Values {
				pv, ok := processRawValue(raw, config)
				if !ok {
					continue // malformed value: skip this mode only
				}
				if pv.IsAlias() {
					tok.IsAlias = true
				}
				tok.Values[modeID] = pv
			}
			tc.Tokens = append(tc.Tokens, tok)
			graph.byID[tok.ID] = tok
		}

		graph.Collections = append(graph.Collections, tc)
	}

	return graph
}

// excludeCollection matches a collection display name against the
// configured doublestar patterns.
func excludeCollection(name string, patterns []string) bool {
	for _, pattern := range patterns {
		if ok, err := doublestar.Match(pattern, name); err == nil && ok {
			return true
		}
	}
	return false
}

// processRawValue converts one raw value into a ProcessedValue.
// The second return is false for malformed values.
func processRawValue(raw RawValue, config Config) (ProcessedValue, bool) {
	switch raw.Kind {
	case KindAlias:
		if raw.Alias == "" {
			return ProcessedValue{}, false
		}
		return ProcessedValue{AliasTarget: raw.Alias}, true
	case KindColor:
		return ProcessedValue{Literal: formatColor(raw.Color, config.ColorFormat)}, true
	case KindFloat:
		return ProcessedValue{Num: raw.Float, HasNum: true}, true
	case KindString:
		return ProcessedValue{Literal: raw.Str}, true
	case KindBool:
		if raw.Bool {
			return ProcessedValue{Literal: "1"}, true
		}
		return ProcessedValue{Literal: "0"}, true
	default:
		return ProcessedValue{}, false
	}
}

// resolveAliases runs pass 2. With aliasMode=preserved every alias is
// resolved one hop to its target's output identifier (the reference
// chain survives in the stylesheet). With aliasMode=resolved each
// chain is flattened to its terminal literal; a revisited token breaks
// the walk with a circular-alias diagnostic and the value is
// suppressed. A missing target yields a broken-alias diagnostic either
// way; generation continues.
func (g *tokenGraph) resolveAliases(aliasMode string) {
	for _, col := range g.Collections {
		for _, tok := range col.Tokens {
			for modeID, pv := range tok.Values {
				if !pv.IsAlias() {
					continue
				}
				target, ok := g.byID[pv.AliasTarget]
				if !ok {
					g.Diagnostics = append(g.Diagnostics,
						fmt.Sprintf("broken alias: %q references missing variable %s", tok.Name, pv.AliasTarget))
					continue
				}
				if aliasMode == AliasResolved {
					lit, ok := g.flatten(target, modeID, map[string]bool{tok.ID: true})
					if !ok {
						g.Diagnostics = append(g.Diagnostics,
							fmt.Sprintf("circular alias: %q never reaches a literal", tok.Name))
						continue
					}
					tok.Values[modeID] = lit
					continue
				}
				pv.Ref = target.CSSName
				tok.Values[modeID] = pv
			}
		}
	}
}

// flatten follows an alias chain to its terminal literal. The visited
// set breaks cycles; the boolean return is false when the chain loops
// or dead-ends.
func (g *tokenGraph) flatten(target *token, modeID string, visited map[string]bool) (ProcessedValue, bool) {
	if visited[target.ID] {
		return ProcessedValue{}, false
	}
	visited[target.ID] = true

	pv, ok := target.Values[modeID]
	if !ok {
		// The target lives in a collection with a different mode set;
		// fall back to its first mode.
		for _, id := range target.ModeOrder {
			if v, exists := target.Values[id]; exists {
				pv, ok = v, true
				break
			}
		}
	}
	if !ok {
		return ProcessedValue{}, false
	}
	if pv.IsAlias() {
		next, exists := g.byID[pv.AliasTarget]
		if !exists {
			return ProcessedValue{}, false
		}
		return g.flatten(next, modeID, visited)
	}
	return pv, true
}
