package brewtable

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/jask/brewlog/internal/brew"
)

// ErrUnknownColumn is returned by Lookup when no column matches a name.
var ErrUnknownColumn = errors.New("unknown column")

// Field identifies a record field.
type Field string

const (
	FieldNumber     Field = "number"
	FieldName       Field = "name"
	FieldStyle      Field = "style"
	FieldVolume     Field = "volume"
	FieldOG         Field = "og"
	FieldFG         Field = "fg"
	FieldABV        Field = "abv"
	FieldIBU        Field = "ibu"
	FieldSRM        Field = "srm"
	FieldClarity    Field = "clarity"
	FieldBrewDate   Field = "brew_date"
	FieldBottleDate Field = "bottle_date"
)

// Rule is a cell display rule.
type Rule int

const (
	RuleText Rule = iota
	RuleEmphasis
	RuleGravity
	RuleDate
	RuleSRM
)

func (r Rule) String() string {
	switch r {
	case RuleEmphasis:
		return "emphasis"
	case RuleGravity:
		return "gravity"
	case RuleDate:
		return "date"
	case RuleSRM:
		return "srm"
	default:
		return "text"
	}
}

// Column binds a record field to a header label and a display rule.
type Column struct {
	Field Field
	Label string
	Rule  Rule
	Value func(brew.Record) Value
}

var columns = []Column{
	{Field: FieldNumber, Label: "#", Value: func(r brew.Record) Value { return Number(float64(r.Number)) }},
	{Field: FieldName, Label: "Name", Rule: RuleEmphasis, Value: func(r brew.Record) Value { return Text(r.Name) }},
	{Field: FieldStyle, Label: "Style", Value: func(r brew.Record) Value { return Text(r.Style) }},
	{Field: FieldVolume, Label: "Volume (L)", Value: func(r brew.Record) Value { return optional(r.VolumeL) }},
	{Field: FieldOG, Label: "OG", Rule: RuleGravity, Value: func(r brew.Record) Value { return optional(r.OG) }},
	{Field: FieldFG, Label: "FG", Rule: RuleGravity, Value: func(r brew.Record) Value { return optional(r.FG) }},
	{Field: FieldABV, Label: "ABV (%)", Value: func(r brew.Record) Value { return optional(r.ABV) }},
	{Field: FieldIBU, Label: "IBU", Value: func(r brew.Record) Value { return optional(r.IBU) }},
	{Field: FieldSRM, Label: "SRM", Rule: RuleSRM, Value: func(r brew.Record) Value { return optional(r.SRM) }},
	{Field: FieldClarity, Label: "Clarity", Value: func(r brew.Record) Value { return Text(r.Clarity) }},
	{Field: FieldBrewDate, Label: "Brew Date", Rule: RuleDate, Value: func(r brew.Record) Value { return DateLiteral(r.BrewDate) }},
	{Field: FieldBottleDate, Label: "Bottle Date", Rule: RuleDate, Value: func(r brew.Record) Value { return DateLiteral(r.BottleDate) }},
}

// Columns returns the brew log columns in display order.
func Columns() []Column {
	return slices.Clone(columns)
}

// Lookup finds a column index by field identifier or header label,
// ignoring case. Unknown names wrap ErrUnknownColumn with the closest match.
func Lookup(cols []Column, name string) (int, error) {
	want := normalizeName(name)
	for i, c := range cols {
		if normalizeName(string(c.Field)) == want || normalizeName(c.Label) == want {
			return i, nil
		}
	}
	best, bestDist := "", -1
	for _, c := range cols {
		for _, cand := range []string{string(c.Field), c.Label} {
			d := levenshtein.ComputeDistance(want, normalizeName(cand))
			if bestDist < 0 || d < bestDist {
				best, bestDist = string(c.Field), d
			}
		}
	}
	if best == "" || bestDist > max(2, len(want)/2) {
		return -1, fmt.Errorf("%w %q", ErrUnknownColumn, name)
	}
	return -1, fmt.Errorf("%w %q (did you mean %q?)", ErrUnknownColumn, name, best)
}

func normalizeName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer(" ", "_", "-", "_").Replace(s)
}
