package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/brewlog/internal/brewtable"
)

const columnGap = 3

var separator = separatorStyle.Render(" │ ")

// layout holds the measured column widths and the x offset each column
// starts at.
type layout struct {
	widths []int
	starts []int
}

func headerText(h brewtable.Header) string {
	return h.Label + " " + h.Indicator()
}

func cellWidth(c brewtable.Cell) int {
	w := lipgloss.Width(c.Text)
	if c.Background != "" {
		w += 2
	}
	return w
}

func measure(g brewtable.Grid) layout {
	l := layout{widths: make([]int, len(g.Headers)), starts: make([]int, len(g.Headers))}
	for i, h := range g.Headers {
		l.widths[i] = lipgloss.Width(headerText(h))
	}
	for _, row := range g.Rows {
		for i, c := range row {
			if i < len(l.widths) {
				l.widths[i] = max(l.widths[i], cellWidth(c))
			}
		}
	}
	x := 0
	for i, w := range l.widths {
		l.starts[i] = x
		x += w + columnGap
	}
	return l
}

// columnAt returns the column under x, or -1 when x falls on a gap.
func (l layout) columnAt(x int) int {
	for i, start := range l.starts {
		if x >= start && x < start+l.widths[i] {
			return i
		}
	}
	return -1
}

func position(a brewtable.Align) lipgloss.Position {
	switch a {
	case brewtable.AlignRight:
		return lipgloss.Right
	case brewtable.AlignCenter:
		return lipgloss.Center
	}
	return lipgloss.Left
}

func renderCell(c brewtable.Cell, width int) string {
	var text string
	switch {
	case c.Background != "":
		text = lipgloss.NewStyle().
			Background(lipgloss.Color(c.Background)).
			Foreground(lipgloss.Color(c.Foreground)).
			Padding(0, 1).
			Render(c.Text)
	case c.Placeholder:
		text = placeholderStyle.Render(c.Text)
	case c.Bold:
		text = cellStyle.Bold(true).Render(c.Text)
	default:
		text = cellStyle.Render(c.Text)
	}
	return lipgloss.PlaceHorizontal(width, position(c.Align), text)
}

func renderHeader(g brewtable.Grid, l layout, focus int) string {
	parts := make([]string, len(g.Headers))
	for i, h := range g.Headers {
		style := headerStyle
		if h.Direction != brewtable.None {
			style = sortedHeadStyle
		}
		if i == focus {
			style = focusHeadStyle
		}
		parts[i] = style.Width(l.widths[i]).Render(headerText(h))
	}
	return strings.Join(parts, separator)
}

func renderRule(l layout) string {
	parts := make([]string, len(l.widths))
	for i, w := range l.widths {
		parts[i] = strings.Repeat("─", w)
	}
	return separatorStyle.Render(strings.Join(parts, "─┼─"))
}

func renderRow(row []brewtable.Cell, l layout) string {
	parts := make([]string, len(row))
	for i, c := range row {
		parts[i] = renderCell(c, l.widths[i])
	}
	return strings.Join(parts, separator)
}

func clip(line string, width int) string {
	if width <= 0 || ansi.StringWidth(line) <= width {
		return line
	}
	return ansi.Truncate(line, width, "…")
}

// RenderTable renders the whole grid: header, rule and every row. focus is
// the highlighted header, -1 for none; width clips lines, 0 for unlimited.
func RenderTable(g brewtable.Grid, focus, width int) string {
	l := measure(g)
	lines := make([]string, 0, len(g.Rows)+2)
	lines = append(lines, clip(renderHeader(g, l, focus), width), clip(renderRule(l), width))
	for _, row := range g.Rows {
		lines = append(lines, clip(renderRow(row, l), width))
	}
	return strings.Join(lines, "\n")
}
