package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/iroha-labs/palette-server/internal/color"
	"github.com/iroha-labs/palette-server/internal/service"
)

var (
	labelStyle = lipgloss.NewStyle().Width(18)
	hexStyle   = lipgloss.NewStyle().Bold(true)
	titleStyle = lipgloss.NewStyle().Bold(true).MarginBottom(1)
)

// swatchLine renders a colour block followed by its label and hex.
func swatchLine(c color.Color, label string) string {
	hex := c.Hex()
	swatch := lipgloss.NewStyle().
		Background(lipgloss.Color(hex)).
		Foreground(contrastText(c)).
		Padding(0, 1).
		Render("      ")

	return lipgloss.JoinHorizontal(lipgloss.Top,
		swatch, " ",
		labelStyle.Render(label),
		hexStyle.Render(hex),
	)
}

// contrastText picks black or white text for legibility on c.
func contrastText(c color.Color) lipgloss.Color {
	if c.HSL().L > 0.55 {
		return lipgloss.Color("#000000")
	}
	return lipgloss.Color("#FFFFFF")
}

func renderPalette(w io.Writer, result *service.PaletteResult) {
	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("Palette for %s", result.Base.Hex())))

	labels := paletteLabels(result.Kinds, result.Angle)
	for i, c := range result.Palette {
		label := ""
		if i < len(labels) {
			label = labels[i]
		}
		fmt.Fprintln(w, swatchLine(c, label))
	}
}
