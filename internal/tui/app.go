package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jask/brewlog/internal/brew"
	"github.com/jask/brewlog/internal/brewtable"
)

// headerRow is the screen line the column headers are drawn on: title, blank, header.
const headerRow = 2

// Options configure the interactive table.
type Options struct {
	Policy brewtable.CyclePolicy
	Format brewtable.Options
	Sort   brewtable.SortState
	Logger *zap.Logger
}

// App is the bubbletea model for the brew log table.
type App struct {
	records []brew.Record
	cols    []brewtable.Column
	policy  brewtable.CyclePolicy
	format  brewtable.Options
	sort    brewtable.SortState
	grid    brewtable.Grid
	layout  layout
	focus   int
	offset  int
	width   int
	height  int
	keys    keyMap
	help    help.Model
	logger  *zap.Logger
}

// New builds the table model over records, starting at opts.Sort.
func New(records []brew.Record, opts Options) *App {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	a := &App{
		records: records,
		cols:    brewtable.Columns(),
		policy:  opts.Policy,
		format:  opts.Format,
		sort:    opts.Sort,
		keys:    defaultKeyMap(),
		help:    help.New(),
		logger:  logger,
	}
	if a.sort.Active() {
		a.focus = a.sort.Column
	}
	a.rebuild()
	return a
}

// SortState reports the active sort.
func (a *App) SortState() brewtable.SortState { return a.sort }

// Grid is the currently displayed table.
func (a *App) Grid() brewtable.Grid { return a.grid }

func (a *App) rebuild() {
	a.grid = brewtable.Build(a.records, a.cols, a.sort, a.format)
	a.layout = measure(a.grid)
	a.clampOffset()
}

// Init has no startup work; the log is already in memory.
func (a *App) Init() tea.Cmd {
	return nil
}

// Update applies a key, mouse or resize event.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
		a.help.Width = m.Width
		a.clampOffset()
		a.logger.Debug("window resized", zap.Int("width", m.Width), zap.Int("height", m.Height))
	case tea.KeyMsg:
		return a.handleKey(m)
	case tea.MouseMsg:
		a.handleMouse(m)
	}
	return a, nil
}

func (a *App) handleKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(m, a.keys.Quit):
		return a, tea.Quit
	case key.Matches(m, a.keys.Left):
		if a.focus > 0 {
			a.focus--
		}
	case key.Matches(m, a.keys.Right):
		if a.focus < len(a.cols)-1 {
			a.focus++
		}
	case key.Matches(m, a.keys.Sort):
		a.click(a.focus)
	case key.Matches(m, a.keys.Jump):
		if idx := jumpIndex(m.String()); idx >= 0 && idx < len(a.cols) {
			a.focus = idx
			a.click(idx)
		}
	case key.Matches(m, a.keys.Reset):
		a.setSort(brewtable.SortState{})
	case key.Matches(m, a.keys.Up):
		a.scroll(-1)
	case key.Matches(m, a.keys.Down):
		a.scroll(1)
	case key.Matches(m, a.keys.Help):
		a.help.ShowAll = !a.help.ShowAll
		a.clampOffset()
	}
	return a, nil
}

func (a *App) handleMouse(m tea.MouseMsg) {
	switch {
	case m.Button == tea.MouseButtonWheelUp:
		a.scroll(-1)
	case m.Button == tea.MouseButtonWheelDown:
		a.scroll(1)
	case m.Button == tea.MouseButtonLeft && m.Action == tea.MouseActionPress && m.Y == headerRow:
		if col := a.layout.columnAt(m.X); col >= 0 {
			a.focus = col
			a.click(col)
		}
	}
}

// click advances the sort cycle for col and recomputes the visible rows.
func (a *App) click(col int) {
	a.setSort(a.sort.Click(col, a.policy))
}

func (a *App) setSort(s brewtable.SortState) {
	a.sort = s
	a.offset = 0
	a.rebuild()
	if !s.Active() {
		a.logger.Debug("sort cleared")
		return
	}
	a.logger.Debug("sort changed",
		zap.String("column", string(a.cols[s.Column].Field)),
		zap.Stringer("direction", s.Direction),
	)
}

func (a *App) bodyHeight() int {
	if a.height <= 0 {
		return len(a.grid.Rows)
	}
	// title, blank, header, rule, blank, status, then help.
	chrome := 6 + strings.Count(a.help.View(a.keys), "\n") + 1
	return max(1, a.height-chrome)
}

func (a *App) scroll(delta int) {
	a.offset += delta
	a.clampOffset()
}

func (a *App) clampOffset() {
	maxOffset := max(0, len(a.grid.Rows)-a.bodyHeight())
	a.offset = min(max(a.offset, 0), maxOffset)
}

func (a *App) status() string {
	if !a.sort.Active() {
		return fmt.Sprintf("%d brews, log order", len(a.grid.Rows))
	}
	return fmt.Sprintf("%d brews, sorted by %s %s", len(a.grid.Rows), a.cols[a.sort.Column].Label, a.sort.Direction)
}

// View renders the title, table, status line and key help.
func (a *App) View() string {
	l := a.layout
	end := min(len(a.grid.Rows), a.offset+a.bodyHeight())

	lines := []string{
		clip(titleStyle.Render("Brew Log"), a.width),
		"",
		clip(renderHeader(a.grid, l, a.focus), a.width),
		clip(renderRule(l), a.width),
	}
	for _, row := range a.grid.Rows[a.offset:end] {
		lines = append(lines, clip(renderRow(row, l), a.width))
	}
	lines = append(lines, "", clip(statusStyle.Render(a.status()), a.width), a.help.View(a.keys))
	return strings.Join(lines, "\n")
}
