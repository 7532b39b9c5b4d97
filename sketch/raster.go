package sketch

import (
	"strconv"
	"strings"
)

// Grid is the rasterized text diagram. Every cell holds the text emitted for
// it: a single glyph, or a label number which may be wider than one column
// once a sketch has ten or more content shapes.
type Grid struct {
	cells  [][]string
	width  int
	height int
}

// Rasterize walks the grid derived from opts and, for every cell, takes the
// first shape in slice order whose perimeter covers it. The order of shapes is
// the priority order: earlier shapes win shared cells.
func Rasterize(shapes []Shape, labels Labels, opts Options) Grid {
	if opts.SnapSize <= 0 {
		return Grid{}
	}
	width := max(opts.CanvasWidth/opts.SnapSize, 0)
	height := max(opts.CanvasHeight/opts.SnapSize, 0)

	kinds := opts.KindGlyphs
	if kinds == nil {
		kinds = DefaultKindGlyphs()
	}
	colors := opts.ColorGlyphs
	if colors == nil {
		colors = DefaultColorGlyphs()
	}

	cells := make([][]string, height)
	for gy := 0; gy < height; gy++ {
		row := make([]string, width)
		for gx := 0; gx < width; gx++ {
			row[gx] = " "
			for i := 0; i < len(shapes); i++ {
				if !OnPerimeter(gx, gy, shapes[i], opts.SnapSize) {
					continue
				}
				row[gx] = cellText(i, shapes[i], labels, opts.Mode, kinds, colors)
				break
			}
		}
		cells[gy] = row
	}

	return Grid{cells: cells, width: width, height: height}
}

func cellText(i int, s Shape, labels Labels, mode Mode, kinds KindGlyphs, colors ColorGlyphs) string {
	if n, ok := labels.Number(i); ok {
		return strconv.Itoa(n)
	}
	if mode == ModeMockup {
		return string(colors.Glyph(s.Color))
	}
	if s.Kind == Arrow {
		return string(ArrowGlyph(float64(s.Width), float64(s.Height)))
	}
	return string(kinds.Glyph(s.Kind))
}

// Size returns the grid dimensions in cells.
func (g Grid) Size() (width, height int) {
	return g.width, g.height
}

// At returns the text of one cell, or a space outside the grid.
func (g Grid) At(gx, gy int) string {
	if gx < 0 || gx >= g.width || gy < 0 || gy >= g.height {
		return " "
	}
	return g.cells[gy][gx]
}

// Rows returns each grid row as a string.
func (g Grid) Rows() []string {
	rows := make([]string, g.height)
	for y, row := range g.cells {
		rows[y] = strings.Join(row, "")
	}
	return rows
}

// String joins the rows with newlines. There is no trailing newline.
func (g Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.height * (g.width + 1))
	for y, row := range g.cells {
		for _, cell := range row {
			sb.WriteString(cell)
		}
		if y < g.height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
