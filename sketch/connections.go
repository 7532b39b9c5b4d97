package sketch

import "fmt"

// Connection is a directed relationship inferred from an arrow whose two
// endpoints both landed near a shape.
type Connection struct {
	Arrow     int
	From      int
	To        int
	FromLabel string
	ToLabel   string
}

func (c Connection) String() string {
	return fmt.Sprintf("%s → %s", c.FromLabel, c.ToLabel)
}

// ResolveConnections links every arrow to the shapes nearest its endpoints.
// Arrows with an unattached endpoint are dropped.
func ResolveConnections(shapes []Shape, labels Labels, tolerance float64) []Connection {
	var conns []Connection
	for i, s := range shapes {
		if s.Kind != Arrow || (s.Width == 0 && s.Height == 0) {
			continue
		}
		x0, y0, x1, y1 := s.Endpoints()

		from := attachTarget(shapes, i, x0, y0, tolerance)
		if from < 0 {
			continue
		}
		to := attachTarget(shapes, i, x1, y1, tolerance)
		if to < 0 {
			continue
		}

		conns = append(conns, Connection{
			Arrow:     i,
			From:      from,
			To:        to,
			FromLabel: labels.Name(from, shapes),
			ToLabel:   labels.Name(to, shapes),
		})
	}
	return conns
}

// attachTarget scans newest to oldest so a shape drawn on top of another is
// preferred. The arrow itself is skipped.
func attachTarget(shapes []Shape, arrow, px, py int, tolerance float64) int {
	for j := len(shapes) - 1; j >= 0; j-- {
		if j == arrow {
			continue
		}
		if IsNear(px, py, shapes[j], tolerance) {
			return j
		}
	}
	return -1
}
