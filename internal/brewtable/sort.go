package brewtable

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/jask/brewlog/internal/brew"
)

// Direction of the active sort.
type Direction int

const (
	None Direction = iota
	Ascending
	Descending
)

func (d Direction) String() string {
	switch d {
	case Ascending:
		return "ascending"
	case Descending:
		return "descending"
	default:
		return "none"
	}
}

// CyclePolicy decides what clicking an already sorted column does.
type CyclePolicy int

const (
	// CycleTriState goes none -> ascending -> descending -> none.
	CycleTriState CyclePolicy = iota
	// CycleToggle goes none -> ascending, then flips between ascending and descending.
	CycleToggle
)

func (p CyclePolicy) String() string {
	if p == CycleToggle {
		return "toggle"
	}
	return "tristate"
}

// ParseCyclePolicy accepts "tristate" (or empty) and "toggle".
func ParseCyclePolicy(s string) (CyclePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "tristate":
		return CycleTriState, nil
	case "toggle":
		return CycleToggle, nil
	}
	return CycleTriState, fmt.Errorf("unknown sort cycle %q (want tristate or toggle)", s)
}

// SortState is the single active sort. The zero value is unsorted.
type SortState struct {
	Column    int
	Direction Direction
}

// Active reports whether any column is sorted.
func (s SortState) Active() bool { return s.Direction != None }

// DirectionFor returns the sort direction shown on column col.
func (s SortState) DirectionFor(col int) Direction {
	if s.Active() && s.Column == col {
		return s.Direction
	}
	return None
}

// Click returns the state after the header of column col is clicked.
// Selecting a different column starts it ascending and clears the rest.
func (s SortState) Click(col int, policy CyclePolicy) SortState {
	switch s.DirectionFor(col) {
	case None:
		return SortState{Column: col, Direction: Ascending}
	case Ascending:
		return SortState{Column: col, Direction: Descending}
	}
	if policy == CycleToggle {
		return SortState{Column: col, Direction: Ascending}
	}
	return SortState{}
}

// Compare orders two present values of the same kind: numerically,
// byte-wise for text, chronologically for dates. Absent values order after
// present ones.
func Compare(a, b Value) int {
	aa, ba := a.Absent(), b.Absent()
	switch {
	case aa && ba:
		return 0
	case aa:
		return 1
	case ba:
		return -1
	}
	if a.kind != b.kind {
		return cmp.Compare(a.kind, b.kind)
	}
	switch a.kind {
	case KindNumber:
		return cmp.Compare(a.num, b.num)
	case KindDate:
		at, _ := a.Time()
		bt, _ := b.Time()
		return at.Compare(bt)
	}
	return strings.Compare(a.text, b.text)
}

// compareIn is Compare with the direction applied to present values only,
// so absent values stay last either way.
func compareIn(dir Direction, a, b Value) int {
	if a.Absent() || b.Absent() || dir != Descending {
		return Compare(a, b)
	}
	return -Compare(a, b)
}

// Visible returns the records in display order for the given sort. The
// input is not modified; ties keep their log order.
func Visible(records []brew.Record, cols []Column, state SortState) []brew.Record {
	out := slices.Clone(records)
	if !state.Active() || state.Column < 0 || state.Column >= len(cols) {
		return out
	}
	value := cols[state.Column].Value
	slices.SortStableFunc(out, func(a, b brew.Record) int {
		return compareIn(state.Direction, value(a), value(b))
	})
	return out
}
