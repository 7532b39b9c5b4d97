package sketch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOnPerimeterRectangle(t *testing.T) {
	rect := Shape{Kind: Rectangle, X: 20, Y: 20, Width: 60, Height: 40}

	tests := []struct {
		name   string
		gx, gy int
		want   bool
	}{
		{"top-left corner", 2, 2, true},
		{"top-right corner", 7, 2, true},
		{"bottom-left corner", 2, 5, true},
		{"bottom-right corner", 7, 5, true},
		{"top edge", 4, 2, true},
		{"left edge", 2, 4, true},
		{"interior", 4, 4, false},
		{"one past right edge", 8, 3, false},
		{"one past bottom edge", 3, 6, false},
		{"outside", 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, OnPerimeter(tt.gx, tt.gy, rect, 10))
		})
	}
}

func TestOnPerimeterExtremes(t *testing.T) {
	// Axis extremes of the bounding box must always be on the band for
	// ellipses and diamonds.
	for _, kind := range []Kind{Circle, Diamond} {
		s := Shape{Kind: kind, X: 0, Y: 0, Width: 100, Height: 60}
		t.Run(kind.String(), func(t *testing.T) {
			assert.True(t, OnPerimeter(0, 3, s, 10), "left")
			assert.True(t, OnPerimeter(10, 3, s, 10), "right")
			assert.True(t, OnPerimeter(5, 0, s, 10), "top")
			assert.True(t, OnPerimeter(5, 6, s, 10), "bottom")
			assert.False(t, OnPerimeter(5, 3, s, 10), "center")
		})
	}
}

func TestOnPerimeterArrow(t *testing.T) {
	arrow := Shape{Kind: Arrow, X: 0, Y: 0, Width: 50, Height: 0}

	for gx := 0; gx <= 5; gx++ {
		assert.True(t, OnPerimeter(gx, 0, arrow, 10), "cell %d on the shaft", gx)
	}
	assert.False(t, OnPerimeter(6, 0, arrow, 10), "past the end")
	assert.False(t, OnPerimeter(2, 1, arrow, 10), "one row below")

	diagonal := Shape{Kind: Arrow, X: 0, Y: 0, Width: 40, Height: 40}
	assert.True(t, OnPerimeter(2, 2, diagonal, 10))
	assert.False(t, OnPerimeter(3, 1, diagonal, 10))
}

func TestDegenerateShapes(t *testing.T) {
	shapes := []Shape{
		{Kind: Arrow, X: 30, Y: 30},
		{Kind: Circle, X: 30, Y: 30, Width: 0, Height: 40},
		{Kind: Diamond, X: 30, Y: 30, Width: 40, Height: 0},
		{Kind: Rectangle, X: 30, Y: 30, Width: 0, Height: 40},
	}

	for _, s := range shapes {
		t.Run(s.String(), func(t *testing.T) {
			for gy := 0; gy < 10; gy++ {
				for gx := 0; gx < 10; gx++ {
					assert.False(t, OnPerimeter(gx, gy, s, 10), "cell (%d,%d)", gx, gy)
				}
			}
			assert.False(t, IsInside(30, 30, s))
		})
	}
}

func TestIsInside(t *testing.T) {
	tests := []struct {
		name   string
		shape  Shape
		px, py int
		want   bool
	}{
		{"rect interior", Shape{Kind: Rectangle, X: 0, Y: 0, Width: 100, Height: 50}, 50, 25, true},
		{"rect border", Shape{Kind: Rectangle, X: 0, Y: 0, Width: 100, Height: 50}, 100, 50, true},
		{"rect outside", Shape{Kind: Rectangle, X: 0, Y: 0, Width: 100, Height: 50}, 101, 25, false},
		{"circle center", Shape{Kind: Circle, X: 0, Y: 0, Width: 100, Height: 100}, 50, 50, true},
		{"circle bbox corner", Shape{Kind: Circle, X: 0, Y: 0, Width: 100, Height: 100}, 5, 5, false},
		{"diamond vertex", Shape{Kind: Diamond, X: 0, Y: 0, Width: 100, Height: 100}, 50, 0, true},
		{"diamond bbox corner", Shape{Kind: Diamond, X: 0, Y: 0, Width: 100, Height: 100}, 20, 20, false},
		{"arrow never hit", Shape{Kind: Arrow, X: 0, Y: 0, Width: 100, Height: 0}, 50, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsInside(tt.px, tt.py, tt.shape))
		})
	}
}

func TestIsNear(t *testing.T) {
	rect := Shape{Kind: Rectangle, X: 0, Y: 0, Width: 300, Height: 300}
	circle := Shape{Kind: Circle, X: 0, Y: 0, Width: 100, Height: 100}

	tests := []struct {
		name   string
		shape  Shape
		px, py int
		want   bool
	}{
		{"on rect edge", rect, 300, 150, true},
		{"just outside rect edge", rect, 310, 150, true},
		{"too far outside rect", rect, 320, 150, false},
		{"just inside rect edge", rect, 10, 150, true},
		{"deep inside rect", rect, 150, 150, false},
		{"beyond rect corner", rect, 320, 320, false},
		{"circle center", circle, 50, 50, true},
		{"just outside circle", circle, 110, 50, true},
		{"far from circle", circle, 130, 50, false},
		{"arrow is never a target", Shape{Kind: Arrow, Width: 100}, 50, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsNear(tt.px, tt.py, tt.shape, 15))
		})
	}
}
