package brewtable

import "golang.org/x/text/language"

const isoLayout = "2006-01-02"

var (
	localeTags = []language.Tag{
		language.Und,
		language.AmericanEnglish,
		language.BritishEnglish,
		language.MustParse("en-AU"),
		language.German,
		language.French,
		language.Japanese,
		language.Chinese,
		language.Dutch,
	}
	localeLayouts = []string{
		isoLayout,
		"01/02/2006",
		"02/01/2006",
		"02/01/2006",
		"02.01.2006",
		"02/01/2006",
		"2006/01/02",
		"2006/01/02",
		"2-1-2006",
	}
	localeMatcher = language.NewMatcher(localeTags)
)

// LayoutForLocale returns the calendar date layout for a BCP 47 tag.
// Unknown or malformed tags fall back to ISO 8601.
func LayoutForLocale(tag string) string {
	if tag == "" {
		return isoLayout
	}
	t, err := language.Parse(tag)
	if err != nil {
		return isoLayout
	}
	_, idx, conf := localeMatcher.Match(t)
	if conf == language.No {
		return isoLayout
	}
	return localeLayouts[idx]
}
