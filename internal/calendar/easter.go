package calendar

import (
	"github.com/rickar/cal/v2/se"

	"github.com/username/time-tally/pkg/dateutil"
)

// EasterSunday returns the Gregorian Easter Sunday of year.
// The Easter-relative holidays are offsets from this day.
func EasterSunday(year int) dateutil.Date {
	actual, _ := actualOnly(se.Paskdagen).Calc(year)
	return dateutil.FromTime(actual)
}
