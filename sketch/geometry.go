package sketch

import "math"

// OnPerimeter reports whether grid cell (gx, gy) lies on the boundary band of s.
// The band is one grid cell wide, so all tolerances are derived from snap.
func OnPerimeter(gx, gy int, s Shape, snap int) bool {
	if snap <= 0 {
		return false
	}
	px, py := gx*snap, gy*snap

	switch s.Kind {
	case Rectangle:
		return onRectPerimeter(px, py, s, snap)
	case Circle:
		dx, dy, rx, ry, ok := normalize(px, py, s)
		if !ok {
			return false
		}
		tolerance := float64(snap) / math.Max(rx, ry)
		return math.Abs(math.Sqrt(dx*dx+dy*dy)-1) <= tolerance
	case Diamond:
		dx, dy, rx, ry, ok := normalize(px, py, s)
		if !ok {
			return false
		}
		tolerance := float64(snap) / math.Max(rx, ry)
		return math.Abs(math.Abs(dx)+math.Abs(dy)-1) <= tolerance
	case Arrow:
		dist, ok := segmentDistance(float64(px), float64(py), s)
		return ok && dist <= float64(snap)/2
	}
	return false
}

func onRectPerimeter(px, py int, s Shape, snap int) bool {
	if s.Width <= 0 || s.Height <= 0 {
		return false
	}
	left, right := s.X, s.X+s.Width-snap
	top, bottom := s.Y, s.Y+s.Height-snap

	inX := px >= left && px <= right
	inY := py >= top && py <= bottom

	return ((px == left || px == right) && inY) ||
		((py == top || py == bottom) && inX)
}

// IsInside is the filled containment test used for picking a shape under the
// pointer. Arrows are never hit.
func IsInside(px, py int, s Shape) bool {
	switch s.Kind {
	case Rectangle:
		if s.Width <= 0 || s.Height <= 0 {
			return false
		}
		return px >= s.X && px <= s.X+s.Width && py >= s.Y && py <= s.Y+s.Height
	case Circle:
		dx, dy, _, _, ok := normalize(px, py, s)
		return ok && dx*dx+dy*dy <= 1
	case Diamond:
		dx, dy, _, _, ok := normalize(px, py, s)
		return ok && math.Abs(dx)+math.Abs(dy) <= 1
	}
	return false
}

// IsNear reports whether a point is close enough to s for an arrow endpoint to
// attach to it. Rectangles use an annulus around their border so an endpoint deep
// inside a large rectangle does not claim it over a smaller overlapping shape.
func IsNear(px, py int, s Shape, tolerance float64) bool {
	x, y := float64(px), float64(py)

	switch s.Kind {
	case Rectangle:
		if s.Width <= 0 || s.Height <= 0 {
			return false
		}
		left, top := float64(s.X), float64(s.Y)
		right, bottom := left+float64(s.Width), top+float64(s.Height)

		if x < left-tolerance || x > right+tolerance || y < top-tolerance || y > bottom+tolerance {
			return false
		}
		edge := math.Min(
			math.Min(math.Abs(x-left), math.Abs(x-right)),
			math.Min(math.Abs(y-top), math.Abs(y-bottom)),
		)
		return edge <= tolerance
	case Circle, Diamond:
		if s.Width <= 0 || s.Height <= 0 {
			return false
		}
		rx := float64(s.Width)/2 + tolerance
		ry := float64(s.Height)/2 + tolerance
		if rx <= 0 || ry <= 0 {
			return false
		}
		dx := (x - (float64(s.X) + float64(s.Width)/2)) / rx
		dy := (y - (float64(s.Y) + float64(s.Height)/2)) / ry
		if s.Kind == Circle {
			return dx*dx+dy*dy <= 1
		}
		return math.Abs(dx)+math.Abs(dy) <= 1
	}
	return false
}

// normalize maps a point into the unit space of the shape's bounding ellipse.
// ok is false for a zero radius.
func normalize(px, py int, s Shape) (dx, dy, rx, ry float64, ok bool) {
	rx = float64(s.Width) / 2
	ry = float64(s.Height) / 2
	if rx <= 0 || ry <= 0 {
		return 0, 0, rx, ry, false
	}
	cx := float64(s.X) + rx
	cy := float64(s.Y) + ry
	return (float64(px) - cx) / rx, (float64(py) - cy) / ry, rx, ry, true
}

// segmentDistance returns the distance from a point to an arrow's segment.
// ok is false for a zero-length arrow.
func segmentDistance(px, py float64, s Shape) (float64, bool) {
	ax, ay := float64(s.X), float64(s.Y)
	vx, vy := float64(s.Width), float64(s.Height)

	length := math.Hypot(vx, vy)
	if length == 0 {
		return 0, false
	}
	ux, uy := vx/length, vy/length

	t := (px-ax)*ux + (py-ay)*uy
	t = math.Max(0, math.Min(length, t))

	return math.Hypot(px-(ax+ux*t), py-(ay+uy*t)), true
}
