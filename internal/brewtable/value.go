package brewtable

import (
	"strconv"
	"strings"
	"time"

	"github.com/jask/brewlog/internal/brew"
)

// Kind is the underlying type a column compares and formats by.
type Kind int

const (
	KindNull Kind = iota
	KindNumber
	KindText
	KindDate
)

// Value is a single cell's underlying datum.
type Value struct {
	kind Kind
	num  float64
	text string
}

func Null() Value                { return Value{} }
func Number(f float64) Value     { return Value{kind: KindNumber, num: f} }
func Text(s string) Value        { return Value{kind: KindText, text: s} }
func DateLiteral(s string) Value { return Value{kind: KindDate, text: s} }

func optional[T int | float64](o brew.Optional[T]) Value {
	v, ok := o.Get()
	if !ok {
		return Null()
	}
	return Number(float64(v))
}

// Kind reports the value's kind.
func (v Value) Kind() Kind { return v.kind }

// Absent reports whether the value has nothing to display. Blank text and
// date literals that do not parse are absent; zero is not.
func (v Value) Absent() bool {
	switch v.kind {
	case KindNull:
		return true
	case KindText:
		return strings.TrimSpace(v.text) == ""
	case KindDate:
		_, ok := v.Time()
		return !ok
	}
	return false
}

// Time parses a date literal.
func (v Value) Time() (time.Time, bool) {
	if v.kind != KindDate {
		return time.Time{}, false
	}
	return parseDate(v.text)
}

// String is the default rendering: shortest exact decimal for numbers,
// the text as-is otherwise.
func (v Value) String() string {
	switch v.kind {
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case KindText, KindDate:
		return v.text
	}
	return ""
}

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006/01/02",
}

func parseDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
