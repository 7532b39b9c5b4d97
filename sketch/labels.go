package sketch

import "fmt"

// Labels maps shape indices to the sequential numbers shown in the legend.
// It is the only numbering the rasterizer, the connection resolver and the
// prompt use, so the grid and the connection list always agree.
type Labels struct {
	numbers []int // 0 means unnumbered
	count   int
}

// AssignLabels numbers every content shape from 1, in slice order.
func AssignLabels(shapes []Shape, mode Mode) Labels {
	l := Labels{numbers: make([]int, len(shapes))}
	for i, s := range shapes {
		if !HasContent(s, mode) {
			continue
		}
		l.count++
		l.numbers[i] = l.count
	}
	return l
}

// HasContent is the numbering predicate: the explicit content role in mockup
// mode, non-empty text in diagram mode. Arrows never carry content.
func HasContent(s Shape, mode Mode) bool {
	if s.Kind == Arrow {
		return false
	}
	if mode == ModeMockup {
		return s.Role == RoleContent
	}
	return s.HasText()
}

// Number returns the label number of shape i.
func (l Labels) Number(i int) (int, bool) {
	if i < 0 || i >= len(l.numbers) || l.numbers[i] == 0 {
		return 0, false
	}
	return l.numbers[i], true
}

// Len returns how many shapes were numbered.
func (l Labels) Len() int {
	return l.count
}

// Indices returns the numbered shape indices in label order.
func (l Labels) Indices() []int {
	out := make([]int, 0, l.count)
	for i, n := range l.numbers {
		if n != 0 {
			out = append(out, i)
		}
	}
	return out
}

// Map returns shape index -> label number for numbered shapes.
func (l Labels) Map() map[int]int {
	m := make(map[int]int, l.count)
	for i, n := range l.numbers {
		if n != 0 {
			m[i] = n
		}
	}
	return m
}

// Name is the human readable name of shape i: its text, else its label
// number, else its kind and position.
func (l Labels) Name(i int, shapes []Shape) string {
	if i < 0 || i >= len(shapes) {
		return ""
	}
	s := shapes[i]
	if s.HasText() {
		return s.Text
	}
	if n, ok := l.Number(i); ok {
		return fmt.Sprintf("#%d", n)
	}
	return fmt.Sprintf("%s at (%d,%d)", s.Kind, s.X, s.Y)
}
