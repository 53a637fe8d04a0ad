package dateutil

import (
	"errors"
	"fmt"
	"iter"
	"strconv"
	"strings"
	"time"

	"cloudeng.io/datetime"
)

const (
	// MinYear is the first year of the Gregorian Easter computus
	MinYear = 1583
	// MaxYear is the last year representable in four digits
	MaxYear = 9999

	// LayoutDMY is the query format used by the HTTP API (DD-MM-YYYY)
	LayoutDMY = "02-01-2006"
	// LayoutISO is the output format (YYYY-MM-DD)
	LayoutISO = "2006-01-02"
)

var (
	// ErrInvalidDate reports a value that is not a real calendar day
	ErrInvalidDate = errors.New("invalid calendar date")
	// ErrMalformedDate reports text that is not in a supported date format
	ErrMalformedDate = errors.New("malformed date")
)

// Date is a calendar date without a time component
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// New returns the date for year, month and day, or ErrInvalidDate
// if they do not name a real day in MinYear..MaxYear
func New(year int, month time.Month, day int) (Date, error) {
	d := Date{Year: year, Month: month, Day: day}
	if !d.Valid() {
		return Date{}, fmt.Errorf("%w: %04d-%02d-%02d", ErrInvalidDate, year, int(month), day)
	}
	return d, nil
}

// FromTime returns the calendar date of t in its own location
func FromTime(t time.Time) Date {
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// Valid reports whether d is a real day in MinYear..MaxYear
func (d Date) Valid() bool {
	if d.Year < MinYear || d.Year > MaxYear {
		return false
	}
	if d.Month < time.January || d.Month > time.December {
		return false
	}
	return d.Day >= 1 && d.Day <= DaysInMonth(d.Year, d.Month)
}

// ParseDate parses DD-MM-YYYY or YYYY-MM-DD.
// Text of the wrong shape yields ErrMalformedDate, a well-formed
// value that is not a real day yields ErrInvalidDate.
func ParseDate(s string) (Date, error) {
	parts := strings.Split(strings.TrimSpace(s), "-")
	if len(parts) != 3 {
		return Date{}, fmt.Errorf("%w: %q", ErrMalformedDate, s)
	}

	var yearPart, monthPart, dayPart string
	switch {
	case len(parts[0]) == 2 && len(parts[1]) == 2 && len(parts[2]) == 4:
		dayPart, monthPart, yearPart = parts[0], parts[1], parts[2]
	case len(parts[0]) == 4 && len(parts[1]) == 2 && len(parts[2]) == 2:
		yearPart, monthPart, dayPart = parts[0], parts[1], parts[2]
	default:
		return Date{}, fmt.Errorf("%w: %q", ErrMalformedDate, s)
	}

	nums := make([]int, 0, 3)
	for _, p := range []string{yearPart, monthPart, dayPart} {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 || strings.ContainsAny(p, "+-") {
			return Date{}, fmt.Errorf("%w: %q", ErrMalformedDate, s)
		}
		nums = append(nums, n)
	}

	return New(nums[0], time.Month(nums[1]), nums[2])
}

// MustParse is ParseDate that panics on error. Intended for tests and constants.
func MustParse(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// DaysInMonth returns the number of days in the given month
func DaysInMonth(year int, month time.Month) int {
	return int(datetime.DaysInMonth(year, datetime.Month(month)))
}

// FromCalendarDate converts a datetime.CalendarDate
func FromCalendarDate(cd datetime.CalendarDate) Date {
	return Date{Year: cd.Year(), Month: time.Month(cd.Month()), Day: cd.Day()}
}

// CalendarDate returns d as a datetime.CalendarDate
func (d Date) CalendarDate() datetime.CalendarDate {
	return datetime.NewCalendarDateFromTime(d.Time())
}

// Next returns the day after d
func (d Date) Next() Date {
	return FromCalendarDate(d.CalendarDate().Tomorrow())
}

// Range yields every date from start to end inclusive, in order.
// It yields nothing when end is before start.
func Range(start, end Date) iter.Seq[Date] {
	return func(yield func(Date) bool) {
		if end.Before(start) {
			return
		}
		dates := datetime.NewCalendarDateRange(start.CalendarDate(), end.CalendarDate())
		for cd := range dates.Dates() {
			if !yield(FromCalendarDate(cd)) {
				return
			}
		}
	}
}

// Time returns midnight UTC of d
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// AddDays returns d shifted by n days (n may be negative)
func (d Date) AddDays(n int) Date {
	return FromTime(d.Time().AddDate(0, 0, n))
}

// DaysUntil returns the number of days from d to other (negative if other is earlier)
func (d Date) DaysUntil(other Date) int {
	return int(other.Time().Sub(d.Time()).Hours() / 24)
}

// Compare returns -1, 0 or +1 depending on whether d is before, equal to or after other
func (d Date) Compare(other Date) int {
	switch {
	case d.Year != other.Year:
		return sign(d.Year - other.Year)
	case d.Month != other.Month:
		return sign(int(d.Month) - int(other.Month))
	default:
		return sign(d.Day - other.Day)
	}
}

// Before reports whether d is strictly earlier than other
func (d Date) Before(other Date) bool {
	return d.Compare(other) < 0
}

// After reports whether d is strictly later than other
func (d Date) After(other Date) bool {
	return d.Compare(other) > 0
}

// Weekday returns the day of the week of d
func (d Date) Weekday() time.Weekday {
	return d.Time().Weekday()
}

// IsWeekday returns true if the date is Monday-Friday
func (d Date) IsWeekday() bool {
	weekday := d.Weekday()
	return weekday >= time.Monday && weekday <= time.Friday
}

// IsWeekend returns true if the date is Saturday or Sunday
func (d Date) IsWeekend() bool {
	return !d.IsWeekday()
}

// ISOWeek returns the ISO 8601 year and week number of d
func (d Date) ISOWeek() (year, week int) {
	return d.Time().ISOWeek()
}

// FirstOfMonth returns the first day of d's month
func (d Date) FirstOfMonth() Date {
	return Date{Year: d.Year, Month: d.Month, Day: 1}
}

// LastOfMonth returns the last day of d's month
func (d Date) LastOfMonth() Date {
	return Date{Year: d.Year, Month: d.Month, Day: DaysInMonth(d.Year, d.Month)}
}

// SameMonth reports whether d and other fall in the same month of the same year
func (d Date) SameMonth(other Date) bool {
	return d.Year == other.Year && d.Month == other.Month
}

// Format formats d with a time layout
func (d Date) Format(layout string) string {
	return d.Time().Format(layout)
}

// String returns d as YYYY-MM-DD
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// MarshalText encodes d as YYYY-MM-DD
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText accepts any format understood by ParseDate
func (d *Date) UnmarshalText(text []byte) error {
	parsed, err := ParseDate(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Min returns the earlier of a and b
func Min(a, b Date) Date {
	if b.Before(a) {
		return b
	}
	return a
}

// Max returns the later of a and b
func Max(a, b Date) Date {
	if b.After(a) {
		return b
	}
	return a
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}
