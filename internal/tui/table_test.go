package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"

	"github.com/jask/brewlog/internal/brew"
	"github.com/jask/brewlog/internal/brewtable"
)

func sampleGrid(state brewtable.SortState) brewtable.Grid {
	return brewtable.Build(brew.SampleLog(), brewtable.Columns(), state, brewtable.DefaultOptions())
}

func TestRenderTableLinesAreAligned(t *testing.T) {
	g := sampleGrid(brewtable.SortState{})
	out := ansi.Strip(RenderTable(g, -1, 0))
	lines := strings.Split(out, "\n")
	require.Len(t, lines, len(g.Rows)+2)

	want := ansi.StringWidth(lines[0])
	for i, line := range lines {
		require.Equal(t, want, ansi.StringWidth(line), "line %d: %q", i, line)
	}
	require.True(t, strings.HasPrefix(lines[0], "#"))
	require.Contains(t, lines[0], "Name")
	require.Contains(t, lines[0], "Bottle Date")
	require.Contains(t, lines[2], "Citra Pale Ale")
	require.Contains(t, lines[2], "13-1-2024")
	require.Contains(t, lines[2], "1.052")
}

func TestRenderTableShowsPlaceholderAndIndicator(t *testing.T) {
	cols := brewtable.Columns()
	og, err := brewtable.Lookup(cols, "og")
	require.NoError(t, err)

	g := sampleGrid(brewtable.SortState{Column: og, Direction: brewtable.Descending})
	lines := strings.Split(ansi.Strip(RenderTable(g, -1, 0)), "\n")
	require.Contains(t, lines[0], "OG ▼")
	require.Contains(t, lines[0], "FG ↕")
	require.Contains(t, lines[0], "Name ↕")

	// Winter Warmer has the highest OG and no FG, bottle date or clarity yet.
	top := lines[2]
	require.Contains(t, top, "Winter Warmer")
	require.Contains(t, top, "1.078")
	require.Contains(t, top, " - ")
}

func TestRenderTableClipsToWidth(t *testing.T) {
	out := ansi.Strip(RenderTable(sampleGrid(brewtable.SortState{}), -1, 40))
	for _, line := range strings.Split(out, "\n") {
		require.LessOrEqual(t, ansi.StringWidth(line), 40)
	}
}

func TestLayoutColumnAt(t *testing.T) {
	g := sampleGrid(brewtable.SortState{})
	l := measure(g)
	require.Len(t, l.widths, len(g.Headers))

	for i := range l.widths {
		require.Equal(t, i, l.columnAt(l.starts[i]))
		require.Equal(t, i, l.columnAt(l.starts[i]+l.widths[i]-1))
	}
	require.Equal(t, -1, l.columnAt(l.starts[0]+l.widths[0]+1))
	require.Equal(t, -1, l.columnAt(-1))
	last := len(l.widths) - 1
	require.Equal(t, -1, l.columnAt(l.starts[last]+l.widths[last]))
}

func TestSRMSwatchHasPadding(t *testing.T) {
	c := brewtable.Cell{Text: "10", Background: "#F2A60D", Foreground: brew.DarkText, Align: brewtable.AlignCenter}
	require.Equal(t, 4, cellWidth(c))
	out := ansi.Strip(renderCell(c, 6))
	require.Equal(t, 6, ansi.StringWidth(out))
	require.Contains(t, out, " 10 ")
}
