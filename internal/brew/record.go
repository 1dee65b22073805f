package brew

// Optional is a reading that may not have been taken. The zero value is absent.
type Optional[T int | float64] struct {
	val T
	set bool
}

// Some returns a present reading.
func Some[T int | float64](v T) Optional[T] {
	return Optional[T]{val: v, set: true}
}

// Get returns the reading and whether it was recorded.
func (o Optional[T]) Get() (T, bool) {
	return o.val, o.set
}

// Record is one batch in the brew log. Dates are kept as written in the log
// (ISO 8601) and parsed when displayed.
type Record struct {
	Number     int
	Name       string
	Style      string
	VolumeL    Optional[float64]
	OG         Optional[float64]
	FG         Optional[float64]
	ABV        Optional[float64]
	IBU        Optional[float64]
	SRM        Optional[int]
	Clarity    string
	BrewDate   string
	BottleDate string
}
