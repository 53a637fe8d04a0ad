// Package period splits date ranges into reporting periods that follow
// weeks but never cross a month boundary, the way the finance system
// (Unit4 Business World) periodizes time reports.
package period

import (
	"errors"
	"fmt"
	"time"

	"github.com/username/time-tally/pkg/dateutil"
)

const (
	// WindowLength is the nominal period length in days
	WindowLength = 7
	// MinLength is the shortest period produced by a split
	MinLength = 3
	// MaxLength is the longest period the finance system accepts
	MaxLength = 11
)

// ErrInvalidRange is returned when the start date is after the end date
var ErrInvalidRange = errors.New("start date must not be after end date")

// Span is an inclusive run of days [Start, End]
type Span struct {
	Start dateutil.Date
	End   dateutil.Date
}

// Len returns the number of days in the span
func (s Span) Len() int {
	return s.Start.DaysUntil(s.End) + 1
}

// Days returns every date of the span in order
func (s Span) Days() []dateutil.Date {
	days := make([]dateutil.Date, 0, s.Len())
	for d := range dateutil.Range(s.Start, s.End) {
		days = append(days, d)
	}
	return days
}

// Week returns the ISO week the period is reported under: the week of
// its start date when it starts on a Monday and covers a whole week,
// otherwise the week of its end date.
func (s Span) Week() int {
	if s.Start.Weekday() == time.Monday && s.Len() >= WindowLength {
		_, week := s.Start.ISOWeek()
		return week
	}
	_, week := s.End.ISOWeek()
	return week
}

// Label returns the display name of the period, e.g. "week: 23"
func (s Span) Label() string {
	return fmt.Sprintf("week: %d", s.Week())
}

// Partition splits [start, end] into contiguous periods.
//
// Windows of seven days are laid out from start. A window that would
// run into the next month is cut at the last day of its month. When the
// days left in the month after a window are fewer than MinLength they are
// absorbed into that window, so a split never yields a period shorter
// than MinLength and no period exceeds WindowLength+MinLength-1 days.
// Periods never cross a month boundary: the part of the range that falls
// in a single month is emitted whole when it is itself shorter than
// MinLength.
func Partition(start, end dateutil.Date) ([]Span, error) {
	if end.Before(start) {
		return nil, fmt.Errorf("%w: %s is after %s", ErrInvalidRange, start, end)
	}

	spans := make([]Span, 0, start.DaysUntil(end)/WindowLength+2)
	cursor := start
	for !cursor.After(end) {
		sliceEnd := dateutil.Min(cursor.LastOfMonth(), end)
		periodEnd := dateutil.Min(cursor.AddDays(WindowLength-1), sliceEnd)

		if rest := periodEnd.DaysUntil(sliceEnd); rest > 0 && rest < MinLength {
			periodEnd = sliceEnd
		}

		spans = append(spans, Span{Start: cursor, End: periodEnd})
		cursor = periodEnd.Next()
	}

	return spans, nil
}
