// Package sketch turns an ordered list of hand-drawn shapes into a text diagram:
// perimeter rasterization on a snapped grid, stable label numbering and
// arrow-to-shape connection inference.
package sketch

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
)

type Kind int

const (
	Rectangle Kind = iota
	Circle
	Diamond
	Arrow
)

var kindNames = []string{"rectangle", "circle", "diamond", "arrow"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// ParseKind accepts the lower-case kind names used in sketch files.
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range kindNames {
		if n == name {
			return Kind(i), nil
		}
	}
	return 0, errors.Newf("unknown shape kind %q", s)
}

// Role separates shapes that describe a content area from purely structural ones.
// Only content shapes are numbered in mockup mode.
type Role int

const (
	RoleStructural Role = iota
	RoleContent
)

func (r Role) String() string {
	if r == RoleContent {
		return "content"
	}
	return "structural"
}

func ParseRole(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "structural":
		return RoleStructural, nil
	case "content":
		return RoleContent, nil
	default:
		return 0, errors.Newf("unknown shape role %q", s)
	}
}

// Shape is a single sketched element in canvas pixel space.
// For arrows X,Y is the start point and Width,Height the (signed) vector to the
// end point; every other kind has a top-left origin and non-negative extents.
type Shape struct {
	Kind   Kind
	X      int
	Y      int
	Width  int
	Height int
	Text   string
	Role   Role
	Color  string
}

// NewShape builds a shape from a completed drag between two canvas points.
// Both points are snapped to the grid first.
func NewShape(kind Kind, x0, y0, x1, y1, snap int) Shape {
	x0, y0 = Snap(x0, snap), Snap(y0, snap)
	x1, y1 = Snap(x1, snap), Snap(y1, snap)

	if kind == Arrow {
		return Shape{Kind: kind, X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
	}
	return Shape{
		Kind:   kind,
		X:      min(x0, x1),
		Y:      min(y0, y1),
		Width:  abs(x1 - x0),
		Height: abs(y1 - y0),
	}
}

// Snap rounds v to the nearest multiple of snap.
func Snap(v, snap int) int {
	if snap <= 0 {
		return v
	}
	if v < 0 {
		return -Snap(-v, snap)
	}
	return (v + snap/2) / snap * snap
}

// MeetsMinimum reports whether the shape is large enough to be kept after a drag.
// Arrows only need one non-trivial extent.
func (s Shape) MeetsMinimum(minSize int) bool {
	if s.Kind == Arrow {
		return abs(s.Width) >= minSize || abs(s.Height) >= minSize
	}
	return s.Width >= minSize && s.Height >= minSize
}

// Endpoints returns the start and end point of an arrow.
func (s Shape) Endpoints() (x0, y0, x1, y1 int) {
	return s.X, s.Y, s.X + s.Width, s.Y + s.Height
}

// HasText reports whether the shape carries user text.
func (s Shape) HasText() bool {
	return strings.TrimSpace(s.Text) != ""
}

func (s Shape) String() string {
	return fmt.Sprintf("%s(%d,%d %dx%d)", s.Kind, s.X, s.Y, s.Width, s.Height)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
