package tokencss

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCollectionName(t *testing.T) {
	tests := []struct {
		name           string
		input          string
		expectedDomain string
		expectedLayer  string
	}{
		{"standard separator", "Color - Primitives", "color", "Primitives"},
		{"multi word layer", "Space - Semantic Aliases", "space", "Semantic Aliases"},
		{"no separator", "Breakpoints", "breakpoints", "Breakpoints"},
		{"tight separator", "Size-Foundations", "size", "Foundations"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			domain, layer := parseCollectionName(tt.input)
			assert.Equal(t, tt.expectedDomain, domain)
			assert.Equal(t, tt.expectedLayer, layer)
		})
	}
}

func TestLayerTypeOf(t *testing.T) {
	tests := []struct {
		input    string
		expected LayerType
	}{
		{"Color - Foundations", LayerFoundations},
		{"Color - Aliases", LayerAliases},
		{"Color - Extended Aliases", LayerAliasesExtended},
		{"Color - Aliases 2.1", LayerAliasesExtended},
		{"Color - Mappings", LayerMappings},
		{"Breakpoints", LayerOther},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, layerTypeOf(tt.input))
		})
	}
}

func TestLayerRank_Ordering(t *testing.T) {
	assert.Less(t, layerRank(LayerFoundations), layerRank(LayerAliases))
	assert.Less(t, layerRank(LayerAliases), layerRank(LayerAliasesExtended))
	assert.Less(t, layerRank(LayerAliasesExtended), layerRank(LayerMappings))
	assert.Less(t, layerRank(LayerMappings), layerRank(LayerOther))
}

func TestBreakpointWidth(t *testing.T) {
	bp := DefaultBreakpoints()

	tests := []struct {
		modeName string
		expected int
	}{
		{"Desktop", 1680},
		{"desktop (min)", 1680},
		{"Laptop", 1200},
		{"Tablet portrait", 768},
		{"Mobile", 480},
		{"Default", 0},
		{"Light", 0},
	}

	for _, tt := range tests {
		t.Run(tt.modeName, func(t *testing.T) {
			assert.Equal(t, tt.expected, breakpointWidth(tt.modeName, bp))
		})
	}
}

func TestModeTypeOf(t *testing.T) {
	bp := DefaultBreakpoints()

	tests := []struct {
		name     string
		modes    []Mode
		expected ModeType
	}{
		{
			name:     "single mode",
			modes:    []Mode{{ID: "1", Name: "Value"}},
			expected: ModeSingle,
		},
		{
			name: "all breakpoints",
			modes: []Mode{
				{ID: "1", Name: "Desktop"}, {ID: "2", Name: "Laptop"},
				{ID: "3", Name: "Tablet"}, {ID: "4", Name: "Mobile"},
			},
			expected: ModeBreakpoint,
		},
		{
			name:     "theme modes",
			modes:    []Mode{{ID: "1", Name: "Light"}, {ID: "2", Name: "Dark"}},
			expected: ModeTheme,
		},
		{
			name:     "misnamed breakpoint demotes to single",
			modes:    []Mode{{ID: "1", Name: "Desktop"}, {ID: "2", Name: "Huge"}},
			expected: ModeSingle,
		},
		{
			name:     "mixed theme and breakpoint is theme",
			modes:    []Mode{{ID: "1", Name: "Desktop"}, {ID: "2", Name: "Dark"}},
			expected: ModeTheme,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, modeTypeOf(tt.modes, bp))
		})
	}
}

func TestBreakpoints_WithDefaults(t *testing.T) {
	// Caller-supplied widths survive; zero entries fall back.
	bp := Breakpoints{Desktop: 1920}.withDefaults()
	assert.Equal(t, 1920, bp.Desktop)
	assert.Equal(t, 1200, bp.Laptop)
	assert.Equal(t, 768, bp.Tablet)
	assert.Equal(t, 480, bp.Mobile)
}
