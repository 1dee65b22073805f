package brewtable

import (
	"strconv"

	"github.com/jask/brewlog/internal/brew"
)

// DefaultPlaceholder is shown for absent values.
const DefaultPlaceholder = "-"

// Align is a cell's horizontal alignment.
type Align int

const (
	AlignLeft Align = iota
	AlignRight
	AlignCenter
)

// Cell is a formatted value plus the presentation hints a renderer applies.
// Background and Foreground are #RRGGBB colors, empty when unset.
type Cell struct {
	Text        string
	Placeholder bool
	Bold        bool
	Align       Align
	Background  string
	Foreground  string
}

// Options control formatting that is not fixed per column.
type Options struct {
	Placeholder string
	DateLayout  string
}

// DefaultOptions returns the Dutch (nl-NL) date layout and "-" placeholder.
func DefaultOptions() Options {
	return Options{Placeholder: DefaultPlaceholder, DateLayout: LayoutForLocale("nl-NL")}
}

func (o Options) placeholder() Cell {
	p := o.Placeholder
	if p == "" {
		p = DefaultPlaceholder
	}
	return Cell{Text: p, Placeholder: true, Align: AlignCenter}
}

// Format renders one value under a display rule. It never fails: anything
// that cannot be shown degrades to the placeholder.
func Format(rule Rule, v Value, opts Options) Cell {
	if v.Absent() {
		return opts.placeholder()
	}
	switch rule {
	case RuleEmphasis:
		return Cell{Text: v.String(), Bold: true}
	case RuleGravity:
		if v.kind != KindNumber {
			return opts.placeholder()
		}
		return Cell{Text: strconv.FormatFloat(v.num, 'f', 3, 64), Align: AlignRight}
	case RuleDate:
		t, ok := v.Time()
		if !ok {
			return opts.placeholder()
		}
		layout := opts.DateLayout
		if layout == "" {
			layout = LayoutForLocale("")
		}
		return Cell{Text: t.Format(layout)}
	case RuleSRM:
		return formatSRM(v, opts)
	}
	if v.kind == KindNumber {
		return Cell{Text: v.String(), Align: AlignRight}
	}
	return Cell{Text: v.String()}
}

func formatSRM(v Value, opts Options) Cell {
	if v.kind != KindNumber || v.num != float64(int(v.num)) {
		return opts.placeholder()
	}
	srm := int(v.num)
	bg, ok := brew.SRMColor(srm)
	if !ok {
		return opts.placeholder()
	}
	return Cell{
		Text:       strconv.Itoa(srm),
		Align:      AlignCenter,
		Background: bg,
		Foreground: brew.ContrastText(bg),
	}
}
