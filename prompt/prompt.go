// Package prompt turns a rendered sketch into the text handed to a language
// model: the ASCII block, its legend and the inferred connections.
package prompt

import (
	"fmt"
	"strings"

	"napkinwire/sketch"
)

const (
	diagramIntro = "Here is a diagram I sketched. Numbers on a shape's border refer to the legend below; arrows are drawn with - | / \\."
	mockupIntro  = "Here is a UI mockup I sketched. Numbered borders mark content areas described below; other borders are layout structure."
	noteHeader   = "Notes:"
	missingText  = "(no description)"
)

// Assemble builds the prompt for one render result. shapes must be the list
// the result was rendered from.
func Assemble(res sketch.Result, shapes []sketch.Shape, opts sketch.Options, note string) string {
	var b strings.Builder

	if opts.Mode == sketch.ModeMockup {
		b.WriteString(mockupIntro)
	} else {
		b.WriteString(diagramIntro)
	}
	b.WriteString("\n\n```\n")
	b.WriteString(res.Grid.String())
	b.WriteString("\n```\n")

	if len(res.Legend) > 0 {
		if opts.Mode == sketch.ModeMockup {
			b.WriteString("\nContent areas:\n")
		} else {
			b.WriteString("\nLegend:\n")
		}
		for _, e := range res.Legend {
			text := e.Text
			if text == "" {
				text = missingText
			}
			fmt.Fprintf(&b, "%d: %s\n", e.Number, text)
		}
	}

	if opts.Mode == sketch.ModeMockup {
		if key := glyphKey(shapes, res.Labels, opts); len(key) > 0 {
			b.WriteString("\nKey:\n")
			for _, line := range key {
				b.WriteString(line)
				b.WriteByte('\n')
			}
		}
	} else if len(res.Connections) > 0 {
		b.WriteString("\nConnections:\n")
		for _, c := range res.Connections {
			fmt.Fprintf(&b, "- %s\n", c)
		}
	}

	if note = strings.TrimSpace(note); note != "" {
		b.WriteString("\n")
		b.WriteString(noteHeader)
		b.WriteString("\n")
		b.WriteString(note)
		b.WriteString("\n")
	}

	return b.String()
}

// glyphKey lists the structural glyphs in first-use order.
func glyphKey(shapes []sketch.Shape, labels sketch.Labels, opts sketch.Options) []string {
	colors := opts.ColorGlyphs
	if colors == nil {
		colors = sketch.DefaultColorGlyphs()
	}

	seen := make(map[rune]bool)
	var lines []string
	for i, s := range shapes {
		if _, ok := labels.Number(i); ok {
			continue
		}
		g := colors.Glyph(s.Color)
		if seen[g] {
			continue
		}
		seen[g] = true

		color := sketch.CanonicalColor(s.Color)
		if color == "" {
			color = "no color"
		}
		lines = append(lines, fmt.Sprintf("%c = %s structure", g, color))
	}
	return lines
}
