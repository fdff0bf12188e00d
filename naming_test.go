package tokencss

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"path separators", "space/fixed/1", "space-fixed-1"},
		{"dots and commas", "size.heading,large", "size-heading-large"},
		{"whitespace", "Font Size / Body", "font-size-body"},
		{"uppercase", "Color/Brand/Primary", "color-brand-primary"},
		{"intentional double hyphen survives", "stroke--width", "stroke--width"},
		{"triple hyphen collapses to two", "stroke---width", "stroke--width"},
		{"separator pileup collapses", "space / fixed", "space--fixed"},
		{"long run collapses", "a-----b", "a--b"},
		{"edges trimmed", "/space/1/", "space-1"},
		{"unicode replaced", "größe/1", "gr--e-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, slugName(tt.input))
		})
	}
}

func TestCSSName_PrefixPolicy(t *testing.T) {
	tests := []struct {
		name     string
		rawName  string
		domain   string
		layer    LayerType
		expected string
	}{
		{"mappings never prefixed", "button/background", "color", LayerMappings, "button-background"},
		{"foundations prefixed", "fixed/1", "space", LayerFoundations, "space-fixed-1"},
		{"foundations prefix already present", "space/fixed/1", "space", LayerFoundations, "space-fixed-1"},
		{"aliases prefixed", "surface/raised", "color", LayerAliases, "color-surface-raised"},
		{"extended aliases prefixed", "surface/sunken", "color", LayerAliasesExtended, "color-surface-sunken"},
		{"prefix must be whole segment", "spacer/1", "space", LayerFoundations, "space-spacer-1"},
		{"other layer with known domain word", "font/family/primary", "brand", LayerOther, "font-family-primary"},
		{"other layer without domain word", "primary/background", "brand", LayerOther, "brand-primary-background"},
		{"empty domain", "fixed/1", "", LayerFoundations, "fixed-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, cssName(tt.rawName, tt.domain, tt.layer))
		})
	}
}

func TestCSSName_Idempotent(t *testing.T) {
	// Recomputing the identifier from the same inputs never drifts.
	first := cssName("space/fixed/1", "space", LayerFoundations)
	second := cssName("space/fixed/1", "space", LayerFoundations)
	assert.Equal(t, first, second)
}

func TestIsUnitless(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"weight", "font/weight/bold", true},
		{"opacity", "opacity/disabled", true},
		{"z-index", "z-index/modal", true},
		{"order segment", "flex/order/first", true},
		{"order inside border does not match", "border/width/1", false},
		{"flex-grow", "flex-grow/main", true},
		{"ratio", "aspect/ratio/wide", true},
		{"count", "columns/count", true},
		{"columns", "grid/columns", true},
		{"rows", "grid/rows", true},
		{"plain size not unitless", "size/heading/1", false},
		{"weighted is not weight", "shadow/weighted", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, isUnitless(tt.input))
		})
	}
}

func TestMatchesSegment(t *testing.T) {
	assert.True(t, matchesSegment("grid/order", "order"))
	assert.True(t, matchesSegment("order", "order"))
	assert.True(t, matchesSegment("a.order.b", "order"))
	assert.True(t, matchesSegment("a order b", "order"))
	assert.False(t, matchesSegment("border", "order"))
	assert.False(t, matchesSegment("reorder", "order"))
	assert.False(t, matchesSegment("orders", "order"))
	// A failed first occurrence does not mask a later bounded one.
	assert.True(t, matchesSegment("border/order", "order"))
}
