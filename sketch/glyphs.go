package sketch

import (
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

const (
	// FallbackGlyph is drawn for a structural shape whose kind has no glyph.
	FallbackGlyph = '#'
	// UnmappedColorGlyph is drawn for a structural shape whose color has no glyph.
	UnmappedColorGlyph = '?'
)

// KindGlyphs assigns the border glyph per shape kind in diagram mode.
type KindGlyphs map[Kind]rune

func DefaultKindGlyphs() KindGlyphs {
	return KindGlyphs{
		Rectangle: '#',
		Circle:    'o',
		Diamond:   '*',
	}
}

func (g KindGlyphs) Glyph(k Kind) rune {
	if r, ok := g[k]; ok {
		return r
	}
	return FallbackGlyph
}

// ColorGlyphs assigns the border glyph per stroke color in mockup mode.
// Keys are canonical colors, see CanonicalColor.
type ColorGlyphs map[string]rune

func DefaultColorGlyphs() ColorGlyphs {
	return NewColorGlyphs(map[string]rune{
		"black":  '#',
		"red":    '*',
		"blue":   '=',
		"green":  '+',
		"orange": '%',
		"purple": '@',
	})
}

// NewColorGlyphs builds a table from user supplied color names or hex codes.
func NewColorGlyphs(m map[string]rune) ColorGlyphs {
	g := make(ColorGlyphs, len(m))
	for color, r := range m {
		g[CanonicalColor(color)] = r
	}
	return g
}

func (g ColorGlyphs) Glyph(color string) rune {
	if r, ok := g[CanonicalColor(color)]; ok {
		return r
	}
	return UnmappedColorGlyph
}

var namedColors = map[string]string{
	"black":  "#000000",
	"white":  "#ffffff",
	"red":    "#ff0000",
	"green":  "#008000",
	"blue":   "#0000ff",
	"orange": "#ffa500",
	"purple": "#800080",
	"yellow": "#ffff00",
	"gray":   "#808080",
	"grey":   "#808080",
}

// CanonicalColor normalises a color name or #rgb/#rrggbb code to lower-case
// #rrggbb. Anything unparseable is returned trimmed and lower-cased.
func CanonicalColor(color string) string {
	c := strings.ToLower(strings.TrimSpace(color))
	if hex, ok := namedColors[c]; ok {
		c = hex
	}
	if !strings.HasPrefix(c, "#") {
		return c
	}
	parsed, err := colorful.Hex(c)
	if err != nil {
		return c
	}
	return parsed.Hex()
}
