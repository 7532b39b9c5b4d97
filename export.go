package main

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"

	"napkinwire/prompt"
	"napkinwire/sketch"
)

var errNothingToExport = errors.New("nothing to export")

// exportTXT writes the rasterized grid.
func exportTXT(filename string, shapes []sketch.Shape, opts sketch.Options) error {
	res, err := sketch.Render(shapes, opts)
	if err != nil {
		return err
	}
	file, err := os.Create(filename)
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", filename)
	}
	defer file.Close()

	if _, err := fmt.Fprintln(file, res.Grid.String()); err != nil {
		return errors.Wrapf(err, "failed to write %s", filename)
	}
	return nil
}

// copyPrompt assembles the prompt for shapes and puts it on the clipboard.
func copyPrompt(shapes []sketch.Shape, opts sketch.Options, note string) (string, error) {
	res, err := sketch.Render(shapes, opts)
	if err != nil {
		return "", err
	}
	text := prompt.Assemble(res, shapes, opts, note)
	if err := writeClipboardText(text); err != nil {
		return "", errors.WithHint(errors.Wrap(err, "failed to copy prompt"),
			"a clipboard utility such as xclip, xsel or wl-copy is required on Linux")
	}
	return text, nil
}

const (
	pngPadding   = 10.0
	pngFontSize  = 12.0
	pngArrowSize = 8.0
)

// exportPNG draws the shapes as vectors at canvas scale. Labelled shapes carry
// their legend number in the top-left corner and their text centred inside.
func exportPNG(filename string, shapes []sketch.Shape, opts sketch.Options) error {
	if len(shapes) == 0 {
		return errNothingToExport
	}
	res, err := sketch.Render(shapes, opts)
	if err != nil {
		return err
	}

	imageWidth := int(float64(opts.CanvasWidth) + 2*pngPadding)
	imageHeight := int(float64(opts.CanvasHeight) + 2*pngPadding)

	dc := gg.NewContext(imageWidth, imageHeight)
	dc.SetColor(color.White)
	dc.Clear()

	ttfFont, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return errors.Wrap(err, "failed to parse font")
	}
	dc.SetFontFace(truetype.NewFace(ttfFont, &truetype.Options{
		Size:    pngFontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	}))
	dc.Translate(pngPadding, pngPadding)

	for i, s := range shapes {
		dc.SetColor(strokeColor(s.Color))
		dc.SetLineWidth(1.5)
		if s.Role == sketch.RoleContent && opts.Mode == sketch.ModeMockup {
			dc.SetDash(4, 3)
		} else {
			dc.SetDash()
		}

		switch s.Kind {
		case sketch.Rectangle:
			dc.DrawRectangle(float64(s.X), float64(s.Y), float64(s.Width), float64(s.Height))
			dc.Stroke()
		case sketch.Circle:
			rx, ry := float64(s.Width)/2, float64(s.Height)/2
			dc.DrawEllipse(float64(s.X)+rx, float64(s.Y)+ry, rx, ry)
			dc.Stroke()
		case sketch.Diamond:
			drawDiamondPNG(dc, s)
		case sketch.Arrow:
			drawArrowPNG(dc, s)
		}

		if n, ok := res.Labels.Number(i); ok {
			drawLabelPNG(dc, s, n)
		}
	}

	if err := dc.SavePNG(filename); err != nil {
		return errors.Wrapf(err, "failed to write %s", filename)
	}
	return nil
}

func strokeColor(c string) color.Color {
	if c == "" {
		return color.Black
	}
	parsed, err := colorful.Hex(sketch.CanonicalColor(c))
	if err != nil {
		return color.Black
	}
	return parsed
}

func drawDiamondPNG(dc *gg.Context, s sketch.Shape) {
	cx := float64(s.X) + float64(s.Width)/2
	cy := float64(s.Y) + float64(s.Height)/2
	dc.MoveTo(cx, float64(s.Y))
	dc.LineTo(float64(s.X+s.Width), cy)
	dc.LineTo(cx, float64(s.Y+s.Height))
	dc.LineTo(float64(s.X), cy)
	dc.ClosePath()
	dc.Stroke()
}

func drawArrowPNG(dc *gg.Context, s sketch.Shape) {
	x0, y0, x1, y1 := s.Endpoints()
	fx, fy, tx, ty := float64(x0), float64(y0), float64(x1), float64(y1)
	dc.DrawLine(fx, fy, tx, ty)
	dc.Stroke()

	dx := tx - fx
	dy := ty - fy
	length := math.Sqrt(dx*dx + dy*dy)
	if length < 0.1 {
		return
	}
	dx /= length
	dy /= length

	arrowAngle := 0.5
	dc.SetDash()
	dc.MoveTo(tx, ty)
	dc.LineTo(tx-pngArrowSize*dx+pngArrowSize*dy*arrowAngle, ty-pngArrowSize*dy-pngArrowSize*dx*arrowAngle)
	dc.LineTo(tx-pngArrowSize*dx-pngArrowSize*dy*arrowAngle, ty-pngArrowSize*dy+pngArrowSize*dx*arrowAngle)
	dc.ClosePath()
	dc.Fill()
}

func drawLabelPNG(dc *gg.Context, s sketch.Shape, n int) {
	dc.SetColor(color.Black)
	dc.DrawStringAnchored(fmt.Sprint(n), float64(s.X)+3, float64(s.Y)+3, 0, 1)

	text := strings.TrimSpace(s.Text)
	if text == "" {
		return
	}
	cx := float64(s.X) + float64(s.Width)/2
	cy := float64(s.Y) + float64(s.Height)/2
	lines := strings.Split(text, "\n")
	lineHeight := dc.FontHeight() * 1.2
	top := cy - lineHeight*float64(len(lines)-1)/2
	for i, line := range lines {
		dc.DrawStringAnchored(line, cx, top+float64(i)*lineHeight, 0.5, 0.5)
	}
}
