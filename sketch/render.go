package sketch

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// Mode selects how shapes are interpreted.
type Mode int

const (
	// ModeDiagram numbers shapes with text and resolves arrows into connections.
	ModeDiagram Mode = iota
	// ModeMockup numbers content-role shapes and draws the rest by stroke color.
	ModeMockup
)

func (m Mode) String() string {
	if m == ModeMockup {
		return "mockup"
	}
	return "diagram"
}

func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "diagram":
		return ModeDiagram, nil
	case "mockup", "ui":
		return ModeMockup, nil
	default:
		return 0, errors.Newf("unknown mode %q", s)
	}
}

const (
	DefaultSnapSize     = 10
	DefaultCanvasWidth  = 800
	DefaultCanvasHeight = 600
	// DefaultTolerance is the arrow attachment distance in pixels.
	DefaultTolerance = 15.0
)

var ErrInvalidOptions = errors.New("invalid render options")

// Options carries the grid parameters and glyph tables for one render.
type Options struct {
	SnapSize     int
	CanvasWidth  int
	CanvasHeight int
	Mode         Mode
	Tolerance    float64
	KindGlyphs   KindGlyphs
	ColorGlyphs  ColorGlyphs
}

func DefaultOptions() Options {
	return Options{
		SnapSize:     DefaultSnapSize,
		CanvasWidth:  DefaultCanvasWidth,
		CanvasHeight: DefaultCanvasHeight,
		Mode:         ModeDiagram,
		Tolerance:    DefaultTolerance,
		KindGlyphs:   DefaultKindGlyphs(),
		ColorGlyphs:  DefaultColorGlyphs(),
	}
}

func (o Options) Validate() error {
	if o.SnapSize <= 0 {
		return errors.Wrapf(ErrInvalidOptions, "snap size must be positive, got %d", o.SnapSize)
	}
	if o.CanvasWidth <= 0 || o.CanvasHeight <= 0 {
		return errors.Wrapf(ErrInvalidOptions, "canvas must be positive, got %dx%d", o.CanvasWidth, o.CanvasHeight)
	}
	if o.Tolerance < 0 {
		return errors.Wrapf(ErrInvalidOptions, "tolerance must not be negative, got %g", o.Tolerance)
	}
	return nil
}

// LegendEntry is one numbered shape.
type LegendEntry struct {
	Number int
	Index  int
	Text   string
}

// Result is everything derived from one shape list.
type Result struct {
	Grid        Grid
	Labels      Labels
	Legend      []LegendEntry
	Connections []Connection
}

// Render runs the whole pipeline: label assignment, rasterization and, in
// diagram mode, connection resolution. It holds no state between calls.
func Render(shapes []Shape, opts Options) (Result, error) {
	if err := opts.Validate(); err != nil {
		return Result{}, err
	}

	labels := AssignLabels(shapes, opts.Mode)
	res := Result{
		Grid:   Rasterize(shapes, labels, opts),
		Labels: labels,
	}
	for _, i := range labels.Indices() {
		n, _ := labels.Number(i)
		res.Legend = append(res.Legend, LegendEntry{
			Number: n,
			Index:  i,
			Text:   strings.TrimSpace(shapes[i].Text),
		})
	}
	if opts.Mode == ModeDiagram {
		res.Connections = ResolveConnections(shapes, labels, opts.Tolerance)
	}
	return res, nil
}
