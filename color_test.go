package tokencss

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHexColor(t *testing.T) {
	tests := []struct {
		name     string
		color    RGBA
		expected string
	}{
		{"white", RGBA{R: 1, G: 1, B: 1, A: 1}, "#ffffff"},
		{"black", RGBA{R: 0, G: 0, B: 0, A: 1}, "#000000"},
		{"red", RGBA{R: 1, G: 0, B: 0, A: 1}, "#ff0000"},
		{"half alpha appends byte", RGBA{R: 1, G: 0, B: 0, A: 0.5}, "#ff000080"},
		{"out of range channels clamp", RGBA{R: 1.2, G: -0.1, B: 0, A: 1}, "#ff0000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, hexColor(tt.color))
		})
	}
}

func TestOKLCHColor(t *testing.T) {
	tests := []struct {
		name     string
		color    RGBA
		expected string
	}{
		{"white has full lightness and no chroma", RGBA{R: 1, G: 1, B: 1, A: 1}, "oklch(1 0 0)"},
		{"black", RGBA{R: 0, G: 0, B: 0, A: 1}, "oklch(0 0 0)"},
		{"red", RGBA{R: 1, G: 0, B: 0, A: 1}, "oklch(0.63 0.258 29)"},
		{"alpha as percentage", RGBA{R: 1, G: 1, B: 1, A: 0.85}, "oklch(1 0 0 / 85%)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, oklchColor(tt.color))
		})
	}
}

func TestFormatColor_Dispatch(t *testing.T) {
	white := RGBA{R: 1, G: 1, B: 1, A: 1}
	assert.Equal(t, "#ffffff", formatColor(white, ColorHex))
	assert.Equal(t, "oklch(1 0 0)", formatColor(white, ColorOKLCH))
}
