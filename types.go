package tokencss

import "fmt"

// ValueKind discriminates the closed set of raw value shapes a variable
// mode can hold. Every consumption site switches exhaustively on it.
type ValueKind int

// Raw value kinds
const (
	KindAlias ValueKind = iota
	KindColor
	KindFloat
	KindString
	KindBool
)

// RGBA is a color with float channels in the 0..1 range, matching the
// upstream editor's export format.
type RGBA struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
	A float64 `json:"a"`
}

// RawValue is the tagged union of per-mode values. Exactly one payload
// field is meaningful, selected by Kind.
type RawValue struct {
	Kind  ValueKind
	Alias string // target variable id when Kind == KindAlias
	Color RGBA
	Float float64
	Str   string
	Bool  bool
}

// VarType is a variable's resolved type as declared upstream.
type VarType string

// Variable types
const (
	TypeColor   VarType = "color"
	TypeFloat   VarType = "float"
	TypeString  VarType = "string"
	TypeBoolean VarType = "boolean"
)

// Mode is one named variant on a collection (a breakpoint or a theme).
type Mode struct {
	ID   string
	Name string
}

// Variable is one token as supplied by the upstream collaborator.
type Variable struct {
	ID          string
	Name        string // path name, e.g. "space/fixed/1"
	Description string
	Type        VarType
	Values      map[string]RawValue // mode id -> raw value
}

// Collection is a named group of variables sharing a mode set.
type Collection struct {
	ID        string
	Name      string
	Modes     []Mode
	Variables []Variable
}

// TextStyleProperty is one bound or literal property of a composite
// text token. Variable holds a variable id when bound; otherwise the
// literal payload applies (Str for keywords, Num+Unit for numerics).
type TextStyleProperty struct {
	Variable string
	Str      string
	Num      float64
	HasNum   bool
	Unit     string // "", "px", "percent", "ratio"
}

// Text style property keys, in emission order.
const (
	PropFamily        = "family"
	PropSize          = "size"
	PropWeight        = "weight"
	PropStyle         = "style"
	PropLineHeight    = "line-height"
	PropLetterSpacing = "letter-spacing"
)

// TextStyle is a composite text token with up to six bound properties.
type TextStyle struct {
	Name       string
	Properties map[string]TextStyleProperty
}

// Graph is the full input snapshot for one generation pass.
type Graph struct {
	Collections []Collection
	TextStyles  []TextStyle
}

// LayerType is a collection's position in the token reference hierarchy.
type LayerType string

// Layer types, ordered from raw values to component-facing names.
const (
	LayerFoundations     LayerType = "foundations"
	LayerAliases         LayerType = "aliases"
	LayerAliasesExtended LayerType = "aliases-extended"
	LayerMappings        LayerType = "mappings"
	LayerOther           LayerType = "other"
)

// ModeType classifies a collection's mode axis.
type ModeType string

// Mode types
const (
	ModeBreakpoint ModeType = "breakpoint"
	ModeTheme      ModeType = "theme"
	ModeSingle     ModeType = "single"
)

// Breakpoints maps the four named breakpoints to pixel widths. The zero
// value is replaced by defaults; the table is never mutated after that.
type Breakpoints struct {
	Desktop int
	Laptop  int
	Tablet  int
	Mobile  int
}

// DefaultBreakpoints returns the built-in breakpoint widths.
func DefaultBreakpoints() Breakpoints {
	return Breakpoints{Desktop: 1680, Laptop: 1200, Tablet: 768, Mobile: 480}
}

// withDefaults fills zero entries from the defaults.
func (b Breakpoints) withDefaults() Breakpoints {
	def := DefaultBreakpoints()
	if b.Desktop == 0 {
		b.Desktop = def.Desktop
	}
	if b.Laptop == 0 {
		b.Laptop = def.Laptop
	}
	if b.Tablet == 0 {
		b.Tablet = def.Tablet
	}
	if b.Mobile == 0 {
		b.Mobile = def.Mobile
	}
	return b
}

// Config holds the immutable options bundle for one generation pass.
type Config struct {
	OutputMode       string // "fluid" | "fixed"
	Direction        string // "mobile-first" | "desktop-first"
	AliasMode        string // "preserved" | "resolved"
	DarkMode         string // "prefers-color-scheme" | "class" | "both"
	ColorFormat      string // "hex" | "oklch"
	LegacyFallbacks  bool
	IncludeIDs       bool
	IncludeTimestamp bool

	// ExcludeCollections holds doublestar patterns matched against
	// collection display names; matching collections are skipped.
	ExcludeCollections []string

	// ViewportRelative and Piecewise list output identifiers that have
	// been opted into their respective treatments.
	ViewportRelative []string
	Piecewise        []string

	TextStyles string // "off" | "mixin" | "class" | "properties"

	Breakpoints Breakpoints
}

// Config option values
const (
	OutputFluid = "fluid"
	OutputFixed = "fixed"

	DirectionMobileFirst  = "mobile-first"
	DirectionDesktopFirst = "desktop-first"

	AliasPreserved = "preserved"
	AliasResolved  = "resolved"

	DarkModePrefers = "prefers-color-scheme"
	DarkModeClass   = "class"
	DarkModeBoth    = "both"

	ColorHex   = "hex"
	ColorOKLCH = "oklch"

	TextStylesOff        = "off"
	TextStylesMixin      = "mixin"
	TextStylesClass      = "class"
	TextStylesProperties = "properties"
)

// withDefaults fills empty enum fields and the breakpoint table.
func (c Config) withDefaults() Config {
	if c.OutputMode == "" {
		c.OutputMode = OutputFluid
	}
	if c.Direction == "" {
		c.Direction = DirectionMobileFirst
	}
	if c.AliasMode == "" {
		c.AliasMode = AliasPreserved
	}
	if c.DarkMode == "" {
		c.DarkMode = DarkModeBoth
	}
	if c.ColorFormat == "" {
		c.ColorFormat = ColorHex
	}
	if c.TextStyles == "" {
		c.TextStyles = TextStylesMixin
	}
	c.Breakpoints = c.Breakpoints.withDefaults()
	return c
}

// Validate rejects options outside their enumerated sets. This is the
// only hard-fail path; everything past the boundary degrades to
// diagnostics instead.
func (c Config) Validate() error {
	checks := []struct {
		field string
		value string
		valid []string
	}{
		{"output-mode", c.OutputMode, []string{OutputFluid, OutputFixed}},
		{"direction", c.Direction, []string{DirectionMobileFirst, DirectionDesktopFirst}},
		{"alias-mode", c.AliasMode, []string{AliasPreserved, AliasResolved}},
		{"dark-mode", c.DarkMode, []string{DarkModePrefers, DarkModeClass, DarkModeBoth}},
		{"color-format", c.ColorFormat, []string{ColorHex, ColorOKLCH}},
		{"text-styles", c.TextStyles, []string{TextStylesOff, TextStylesMixin, TextStylesClass, TextStylesProperties}},
	}
	for _, check := range checks {
		if check.value == "" {
			continue // filled by withDefaults
		}
		ok := false
		for _, v := range check.valid {
			if check.value == v {
				ok = true
				break
			}
		}
		if !ok {
			return fmt.Errorf("invalid %s %q (valid: %v)", check.field, check.value, check.valid)
		}
	}
	return nil
}

// Candidate is an advisory annotation naming a variable that qualifies
// for a special treatment, with enough detail for a review surface.
type Candidate struct {
	Name      string  `json:"name"`                // output identifier
	Reason    string  `json:"reason"`              // human-readable detection reason
	Columns   int     `json:"columns,omitempty"`   // proportion candidates
	Deviation float64 `json:"deviation,omitempty"` // non-linear candidates
}

// Result is the outcome of one generation pass: the stylesheet text
// plus the structured report.
type Result struct {
	CSS string

	Collections  int
	Variables    int
	Declarations int

	Diagnostics []string

	ViewportCandidates   []Candidate
	ProportionCandidates []Candidate
	NonLinearCandidates  []Candidate
}
