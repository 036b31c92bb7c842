package controller

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	m "github.com/mouse-blink/bodyscan/internal/model"
)

// bodyArt is the anatomy diagram, head at the top. Rows map linearly onto the
// sweep range and onto part positions (percent of body height).
var bodyArt = []string{
	"        .---.        ",
	"       ( o o )       ",
	"        \\ - /        ",
	"         | |         ",
	"     .--'   '--.     ",
	"    /|         |\\    ",
	"   / |         | \\   ",
	"  /  |         |  \\  ",
	" (   |         |   ) ",
	" |   |         |   | ",
	" w   |_________|   w ",
	"     |    |    |     ",
	"     |    |    |     ",
	"     |    |    |     ",
	"     (    |    )     ",
	"     |    |    |     ",
	"     |    |    |     ",
	"    _|    |    |_    ",
	"   (__)       (__)   ",
}

var (
	outlineStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	glowStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	glowDimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
	scanLineStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("6")).Bold(true)
	narrowRowStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("12")).Bold(true)
	markerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
)

// rowFor maps a fraction in [0, 1] to a diagram row.
func rowFor(fraction float64) int {
	if fraction < 0 {
		fraction = 0
	}

	if fraction > 1 {
		fraction = 1
	}

	return int(math.Round(fraction * float64(len(bodyArt)-1)))
}

// highlightedRow returns the row to emphasise for state, or -1.
func highlightedRow(state m.RenderState) int {
	switch state.Effect {
	case m.EffectSweeping:
		return rowFor(state.Progress)
	case m.EffectNarrowScan:
		return rowFor(state.PartPosition / 100)
	case m.EffectIdle, m.EffectOutlineGlow:
	}

	return -1
}

// renderDiagram draws the body for state. pulse alternates the glow colour.
func renderDiagram(state m.RenderState, pulse bool) string {
	target := highlightedRow(state)
	lines := make([]string, 0, len(bodyArt))

	for i, row := range bodyArt {
		var line string

		switch {
		case i == target && state.Effect == m.EffectSweeping:
			line = scanLineStyle.Render(strings.ReplaceAll(row, " ", "─"))
		case i == target && state.Effect == m.EffectNarrowScan:
			line = narrowRowStyle.Render(row) + markerStyle.Render(" ◀ "+state.PartLabel)
		case state.Effect == m.EffectOutlineGlow && pulse:
			line = glowStyle.Render(row)
		case state.Effect == m.EffectOutlineGlow:
			line = glowDimStyle.Render(row)
		default:
			line = outlineStyle.Render(row)
		}

		lines = append(lines, line)
	}

	return strings.Join(lines, "\n")
}

// renderPartsList formats the catalog for a terminal.
func renderPartsList(parts []m.BodyPart) string {
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true).Width(12)
	idStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Width(10)
	keywordStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("252"))

	var b strings.Builder

	for _, part := range parts {
		fmt.Fprintf(&b, "%s%s%s\n",
			labelStyle.Render(part.Label),
			idStyle.Render(part.ID),
			keywordStyle.Render(strings.Join(part.Keywords, ", ")))
	}

	return b.String()
}
