package app

import (
	"strings"

	"github.com/bvisness/flowstyle/app/color"
	"github.com/bvisness/flowstyle/app/gradient"
	"github.com/charmbracelet/lipgloss"
)

var (
	LabelStyle = lipgloss.NewStyle().Bold(true).Width(16)
	ValueStyle = lipgloss.NewStyle()
	DimStyle   = lipgloss.NewStyle().Faint(true)
)

// Swatch renders the colour ramp of d as a row of width terminal cells.
func Swatch(d gradient.Descriptor, width int) string {
	if width <= 0 {
		return ""
	}

	sorted := d.Sorted()
	var b strings.Builder
	for i := range width {
		offset := 0.0
		if width > 1 {
			offset = float64(i) / float64(width-1) * 100
		}
		b.WriteString(Chip(gradient.ColorAtOffset(offset, sorted), " "))
	}
	return b.String()
}

// Chip renders text on a background of the given colour.
func Chip(hex, text string) string {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(color.Normalize(hex))).
		Render(text)
}

func field(label, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, LabelStyle.Render(label), ValueStyle.Render(value)) + "\n"
}
