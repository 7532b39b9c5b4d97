package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"napkinwire/sketch"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	numberStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	paneStyle    = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1)
)

// legendLines formats the legend and connections of a render result, each
// line at most width cells wide. width <= 0 disables truncation.
func legendLines(res sketch.Result, mode sketch.Mode, width int) []string {
	var lines []string

	heading := "Legend"
	if mode == sketch.ModeMockup {
		heading = "Content areas"
	}
	lines = append(lines, headingStyle.Render(heading))
	if len(res.Legend) == 0 {
		lines = append(lines, mutedStyle.Render("(none)"))
	}

	numWidth := len(fmt.Sprint(len(res.Legend)))
	for _, e := range res.Legend {
		num := runewidth.FillLeft(fmt.Sprint(e.Number), numWidth)
		text := strings.ReplaceAll(e.Text, "\n", " ")
		if text == "" {
			text = "(no description)"
		}
		if width > 0 {
			text = runewidth.Truncate(text, width-numWidth-2, "…")
		}
		lines = append(lines, numberStyle.Render(num)+"  "+text)
	}

	if mode == sketch.ModeDiagram && len(res.Connections) > 0 {
		lines = append(lines, "", headingStyle.Render("Connections"))
		for _, c := range res.Connections {
			line := strings.ReplaceAll(c.String(), "\n", " ")
			if width > 0 {
				line = runewidth.Truncate(line, width, "…")
			}
			lines = append(lines, line)
		}
	}
	return lines
}

// renderPane boxes the legend for the side of the sketch pad.
func renderPane(res sketch.Result, mode sketch.Mode, height int) string {
	inner := helpPaneWidth - 4
	lines := legendLines(res, mode, inner)
	if height > 2 && len(lines) > height-2 {
		lines = lines[:height-2]
	}
	return paneStyle.Width(helpPaneWidth - 2).Render(strings.Join(lines, "\n"))
}
