package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/unicordoba/hanoi"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	moveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("226"))
)

// discStyles maps disc size to its render style. The palette follows the
// classic presentation: red, blue, green, yellow, purple, orange.
var discStyles = map[int]lipgloss.Style{
	1: lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	2: lipgloss.NewStyle().Foreground(lipgloss.Color("27")),
	3: lipgloss.NewStyle().Foreground(lipgloss.Color("40")),
	4: lipgloss.NewStyle().Foreground(lipgloss.Color("226")),
	5: lipgloss.NewStyle().Foreground(lipgloss.Color("129")),
	6: lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
}

// renderDisc draws one disc as a bar proportional to its size, centered in
// a column sized for the largest disc.
func renderDisc(size, maxSize int) string {
	width := 2*size + 1
	column := 2*maxSize + 1
	pad := (column - width) / 2

	bar := strings.Repeat("█", width)
	if style, ok := discStyles[size]; ok {
		bar = style.Render(bar)
	}
	return strings.Repeat(" ", pad) + bar + strings.Repeat(" ", column-width-pad)
}

// renderPegs draws the three pegs side by side, discs bottom-aligned, with
// the peg labels underneath. selected marks a peg label, or "" for none.
func renderPegs(g *hanoi.Game, selected hanoi.PegID) string {
	maxSize := g.DiscCount()
	column := 2*maxSize + 1
	pole := strings.Repeat(" ", maxSize) + "│" + strings.Repeat(" ", maxSize)

	var b strings.Builder
	for level := maxSize - 1; level >= 0; level-- {
		for i, p := range g.Pegs() {
			if i > 0 {
				b.WriteString("   ")
			}
			discs := p.Discs()
			if level < len(discs) {
				b.WriteString(renderDisc(discs[level].Size(), maxSize))
			} else {
				b.WriteString(pole)
			}
		}
		b.WriteString("\n")
	}

	for i := 0; i < 3; i++ {
		if i > 0 {
			b.WriteString("   ")
		}
		b.WriteString(strings.Repeat("─", column))
	}
	b.WriteString("\n")

	for i, p := range g.Pegs() {
		if i > 0 {
			b.WriteString("   ")
		}
		label := string(p.ID())
		if p.ID() == selected {
			label = selectedStyle.Render("[" + label + "]")
			pad := (column - 3) / 2
			b.WriteString(strings.Repeat(" ", pad) + label + strings.Repeat(" ", column-3-pad))
		} else {
			pad := (column - 1) / 2
			b.WriteString(strings.Repeat(" ", pad) + label + strings.Repeat(" ", column-1-pad))
		}
	}
	b.WriteString("\n")

	return b.String()
}

// renderHistoryTail shows the most recent moves as notation, oldest first.
func renderHistoryTail(moves []hanoi.Move, max int) string {
	if len(moves) == 0 {
		return ""
	}
	start := 0
	prefix := ""
	if len(moves) > max {
		start = len(moves) - max
		prefix = "... "
	}
	parts := make([]string, 0, len(moves)-start)
	for _, m := range moves[start:] {
		parts = append(parts, m.Notation())
	}
	return prefix + moveStyle.Render(strings.Join(parts, " "))
}

// formatProgress renders the progress fraction as a percentage.
func formatProgress(p float64) string {
	return fmt.Sprintf("%.0f%%", p*100)
}
