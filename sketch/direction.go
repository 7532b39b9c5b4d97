package sketch

import "math"

// ArrowGlyph quantizes a direction vector into one of four line glyphs.
// Screen coordinates: y grows downwards, so (1,1) points down-right and draws
// as a backslash. A direction and its reverse share a glyph.
func ArrowGlyph(dx, dy float64) rune {
	angle := math.Atan2(dy, dx) * 180 / math.Pi

	switch {
	case angle >= -22.5 && angle < 22.5:
		return '-'
	case angle >= 22.5 && angle < 67.5:
		return '\\'
	case angle >= 67.5 && angle < 112.5:
		return '|'
	case angle >= 112.5 && angle < 157.5:
		return '/'
	case angle >= 157.5 || angle < -157.5:
		return '-'
	case angle >= -157.5 && angle < -112.5:
		return '\\'
	case angle >= -112.5 && angle < -67.5:
		return '|'
	case angle >= -67.5 && angle < -22.5:
		return '/'
	}
	return '-'
}
