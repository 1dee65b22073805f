package brewtable

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/brewlog/internal/brew"
)

var allRules = []Rule{RuleText, RuleEmphasis, RuleGravity, RuleDate, RuleSRM}

func TestAbsentValuesRenderPlaceholderForEveryRule(t *testing.T) {
	opts := DefaultOptions()
	for _, rule := range allRules {
		for _, v := range []Value{Null(), Text(""), Text("   "), DateLiteral("")} {
			c := Format(rule, v, opts)
			require.True(t, c.Placeholder, "rule %s value %#v", rule, v)
			require.Equal(t, "-", c.Text)
		}
	}
}

func TestPlaceholderIsConfigurable(t *testing.T) {
	c := Format(RuleText, Null(), Options{Placeholder: "n/a"})
	require.Equal(t, "n/a", c.Text)

	c = Format(RuleText, Null(), Options{})
	require.Equal(t, DefaultPlaceholder, c.Text)
}

func TestEveryColumnRendersPlaceholderForEmptyRecord(t *testing.T) {
	opts := DefaultOptions()
	empty := brew.Record{}
	for _, c := range Columns() {
		if c.Field == FieldNumber {
			continue
		}
		cell := Format(c.Rule, c.Value(empty), opts)
		require.True(t, cell.Placeholder, "column %s", c.Field)
	}
}

func TestMalformedDatesDegradeToPlaceholder(t *testing.T) {
	opts := DefaultOptions()
	for _, raw := range []string{"not a date", "2024-13-01", "2024-02-30", "14/03/2024", "yesterday", "0000", "2024-01-01T25:00:00Z"} {
		var c Cell
		require.NotPanics(t, func() { c = Format(RuleDate, DateLiteral(raw), opts) }, raw)
		require.True(t, c.Placeholder, raw)
		require.Equal(t, "-", c.Text, raw)
	}
}

func TestDateFormatting(t *testing.T) {
	v := DateLiteral("2024-03-09")
	require.Equal(t, "03/09/2024", Format(RuleDate, v, Options{DateLayout: LayoutForLocale("en-US")}).Text)
	require.Equal(t, "09/03/2024", Format(RuleDate, v, Options{DateLayout: LayoutForLocale("en-GB")}).Text)
	require.Equal(t, "09.03.2024", Format(RuleDate, v, Options{DateLayout: LayoutForLocale("de-DE")}).Text)
	require.Equal(t, "9-3-2024", Format(RuleDate, v, Options{DateLayout: LayoutForLocale("nl-NL")}).Text)
	require.Equal(t, "9-3-2024", Format(RuleDate, v, DefaultOptions()).Text)
	require.Equal(t, "2024-03-09", Format(RuleDate, v, Options{}).Text)
	require.Equal(t, "2024-03-09", Format(RuleDate, DateLiteral("2024-03-09T18:30:00Z"), Options{DateLayout: isoLayout}).Text)
}

func TestLayoutForLocaleFallsBackToISO(t *testing.T) {
	require.Equal(t, isoLayout, LayoutForLocale(""))
	require.Equal(t, isoLayout, LayoutForLocale("!!"))
	require.Equal(t, "01/02/2006", LayoutForLocale("en-US"))
	require.Equal(t, "02/01/2006", LayoutForLocale("en-AU"))
	require.Equal(t, "2-1-2006", LayoutForLocale("nl-NL"))
	require.Equal(t, "2-1-2006", LayoutForLocale("nl"))
}

func TestNameIsEmphasized(t *testing.T) {
	c := Format(RuleEmphasis, Text("Citra Pale Ale"), DefaultOptions())
	require.True(t, c.Bold)
	require.Equal(t, "Citra Pale Ale", c.Text)
	require.False(t, c.Placeholder)
}

func TestGravityHasThreeDecimals(t *testing.T) {
	opts := DefaultOptions()
	require.Equal(t, "1.050", Format(RuleGravity, Number(1.05), opts).Text)
	require.Equal(t, "1.012", Format(RuleGravity, Number(1.0124), opts).Text)
	require.Equal(t, "0.000", Format(RuleGravity, Number(0), opts).Text)
	require.Equal(t, AlignRight, Format(RuleGravity, Number(1.05), opts).Align)
	require.True(t, Format(RuleGravity, Text("1.05"), opts).Placeholder)
}

func TestZeroIsDisplayable(t *testing.T) {
	c := Format(RuleText, Number(0), DefaultOptions())
	require.False(t, c.Placeholder)
	require.Equal(t, "0", c.Text)
}

func TestDefaultRuleStringifies(t *testing.T) {
	opts := DefaultOptions()
	require.Equal(t, "5.4", Format(RuleText, Number(5.4), opts).Text)
	require.Equal(t, "20", Format(RuleText, Number(20), opts).Text)
	require.Equal(t, "Hazy", Format(RuleText, Text("Hazy"), opts).Text)
}

func TestSRMSwatch(t *testing.T) {
	opts := DefaultOptions()
	c := Format(RuleSRM, Number(10), opts)
	require.Equal(t, "10", c.Text)
	require.Equal(t, "#F2A60D", c.Background)
	require.Equal(t, brew.DarkText, c.Foreground)

	c = Format(RuleSRM, Number(38), opts)
	require.Equal(t, brew.LightText, c.Foreground)

	require.True(t, Format(RuleSRM, Number(41), opts).Placeholder)
	require.True(t, Format(RuleSRM, Number(0), opts).Placeholder)
	require.True(t, Format(RuleSRM, Number(10.5), opts).Placeholder)
	require.True(t, Format(RuleSRM, Null(), opts).Placeholder)
}

func TestSampleLogFormatsWithoutPlaceholdersInRequiredColumns(t *testing.T) {
	g := Build(brew.SampleLog(), Columns(), SortState{}, DefaultOptions())
	for i, row := range g.Rows {
		for col, c := range Columns() {
			switch c.Field {
			case FieldNumber, FieldName, FieldStyle, FieldOG, FieldSRM, FieldBrewDate:
				require.False(t, row[col].Placeholder, "row %d column %s", i, c.Field)
			}
		}
	}
}
