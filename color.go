package tokencss

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// hexColor formats an RGBA color as a hex string, with an alpha byte
// only when the color is not fully opaque.
func hexColor(c RGBA) string {
	col := colorful.Color{R: clamp01(c.R), G: clamp01(c.G), B: clamp01(c.B)}
	if c.A < 1 {
		return col.Hex() + fmt.Sprintf("%02x", int(math.Round(clamp01(c.A)*255)))
	}
	return col.Hex()
}

// oklchColor formats an RGBA color as an oklch() function value:
// sRGB channels are linearized, converted to CIE XYZ, folded into a
// cube-root LMS space and read out as polar lightness/chroma/hue.
// Lightness is rounded to 2 decimals, chroma to 3, hue to whole
// degrees; a non-opaque alpha is appended as a percentage.
func oklchColor(c RGBA) string {
	col := colorful.Color{R: clamp01(c.R), G: clamp01(c.G), B: clamp01(c.B)}
	x, y, z := col.Xyz()

	l := math.Cbrt(0.8189330101*x + 0.3618667424*y - 0.1288597137*z)
	m := math.Cbrt(0.0329845436*x + 0.9293118715*y + 0.0361456387*z)
	s := math.Cbrt(0.0482003018*x + 0.2643662691*y + 0.6338517070*z)

	lab := 0.2104542553*l + 0.7936177850*m - 0.0040720468*s
	a := 1.9779984951*l - 2.4285922050*m + 0.4505937099*s
	b := 0.0259040371*l + 0.7827717662*m - 0.8086757660*s

	chroma := math.Sqrt(a*a + b*b)
	hue := math.Atan2(b, a) * 180 / math.Pi
	if hue < 0 {
		hue += 360
	}
	// Hue is meaningless at zero chroma; pin it so grays are stable.
	if roundTo(chroma, 3) == 0 {
		hue = 0
	}

	out := fmt.Sprintf("oklch(%s %s %s)",
		formatNumber(roundTo(lab, 2)),
		formatNumber(roundTo(chroma, 3)),
		formatNumber(math.Round(hue)))
	if c.A < 1 {
		out = fmt.Sprintf("oklch(%s %s %s / %s%%)",
			formatNumber(roundTo(lab, 2)),
			formatNumber(roundTo(chroma, 3)),
			formatNumber(math.Round(hue)),
			formatNumber(roundTo(clamp01(c.A)*100, 0)))
	}
	return out
}

// formatColor dispatches on the configured color format.
func formatColor(c RGBA, format string) string {
	if format == ColorOKLCH {
		return oklchColor(c)
	}
	return hexColor(c)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
