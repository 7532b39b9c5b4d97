package sketch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArrowGlyph(t *testing.T) {
	tests := []struct {
		dx, dy float64
		want   rune
	}{
		{10, 0, '-'},
		{0, 10, '|'},
		{10, 10, '\\'},
		{10, -10, '/'},
		{-10, 0, '-'},
		{0, -10, '|'},
		{-10, -10, '\\'},
		{-10, 10, '/'},
		{10, 3, '-'},
		{3, 10, '|'},
		{0, 0, '-'},
	}

	for _, tt := range tests {
		assert.Equal(t, string(tt.want), string(ArrowGlyph(tt.dx, tt.dy)), "ArrowGlyph(%g, %g)", tt.dx, tt.dy)
	}
}

func TestNewShapeNormalises(t *testing.T) {
	rect := NewShape(Rectangle, 52, 38, 9, 11, 10)
	assert.Equal(t, Shape{Kind: Rectangle, X: 10, Y: 10, Width: 40, Height: 30}, rect)

	arrow := NewShape(Arrow, 52, 38, 9, 11, 10)
	assert.Equal(t, Shape{Kind: Arrow, X: 50, Y: 40, Width: -40, Height: -30}, arrow)
}

func TestSnap(t *testing.T) {
	assert.Equal(t, 10, Snap(14, 10))
	assert.Equal(t, 20, Snap(15, 10))
	assert.Equal(t, -10, Snap(-14, 10))
	assert.Equal(t, 7, Snap(7, 0))
}

func TestMeetsMinimum(t *testing.T) {
	assert.True(t, Shape{Kind: Rectangle, Width: 10, Height: 10}.MeetsMinimum(10))
	assert.False(t, Shape{Kind: Rectangle, Width: 10, Height: 0}.MeetsMinimum(10))
	assert.True(t, Shape{Kind: Arrow, Width: 0, Height: -20}.MeetsMinimum(10))
	assert.False(t, Shape{Kind: Arrow}.MeetsMinimum(10))
}

func TestParseKindAndRole(t *testing.T) {
	for _, k := range []Kind{Rectangle, Circle, Diamond, Arrow} {
		got, err := ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}
	_, err := ParseKind("hexagon")
	assert.Error(t, err)

	role, err := ParseRole("")
	require.NoError(t, err)
	assert.Equal(t, RoleStructural, role)
	role, err = ParseRole("Content")
	require.NoError(t, err)
	assert.Equal(t, RoleContent, role)
	_, err = ParseRole("decorative")
	assert.Error(t, err)
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("mockup")
	require.NoError(t, err)
	assert.Equal(t, ModeMockup, m)

	m, err = ParseMode("")
	require.NoError(t, err)
	assert.Equal(t, ModeDiagram, m)

	_, err = ParseMode("gantt")
	assert.Error(t, err)
}

func TestCanonicalColor(t *testing.T) {
	assert.Equal(t, "#ff0000", CanonicalColor("#F00"))
	assert.Equal(t, "#ff0000", CanonicalColor(" Red "))
	assert.Equal(t, "#0000ff", CanonicalColor("#0000FF"))
	assert.Equal(t, "chartreuse", CanonicalColor("Chartreuse"))

	glyphs := NewColorGlyphs(map[string]rune{"#00F": '='})
	assert.Equal(t, '=', glyphs.Glyph("blue"))
	assert.Equal(t, '?', glyphs.Glyph("red"))
	assert.Equal(t, rune(FallbackGlyph), KindGlyphs{}.Glyph(Circle))
}
