package brewtable

import "github.com/jask/brewlog/internal/brew"

// Header is one rendered column header.
type Header struct {
	Label     string
	Direction Direction
}

// Indicator is the sort glyph shown next to the label. Unsorted columns get
// a neutral glyph so every header reads as sortable.
func (h Header) Indicator() string {
	switch h.Direction {
	case Ascending:
		return "▲"
	case Descending:
		return "▼"
	}
	return "↕"
}

// Grid is a fully formatted table: headers plus a row of cells per visible
// record.
type Grid struct {
	Headers []Header
	Rows    [][]Cell
	Numbers []int
}

// Build formats the visible rows for the current sort state.
func Build(records []brew.Record, cols []Column, state SortState, opts Options) Grid {
	g := Grid{Headers: make([]Header, len(cols))}
	for i, c := range cols {
		g.Headers[i] = Header{Label: c.Label, Direction: state.DirectionFor(i)}
	}
	visible := Visible(records, cols, state)
	g.Rows = make([][]Cell, 0, len(visible))
	g.Numbers = make([]int, 0, len(visible))
	for _, r := range visible {
		row := make([]Cell, len(cols))
		for i, c := range cols {
			row[i] = Format(c.Rule, c.Value(r), opts)
		}
		g.Rows = append(g.Rows, row)
		g.Numbers = append(g.Numbers, r.Number)
	}
	return g
}
