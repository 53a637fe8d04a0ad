package calendar

import "github.com/username/time-tally/pkg/dateutil"

// Evaluator classifies days as workdays or non-workdays.
// A workday is Monday-Friday and not a holiday.
type Evaluator struct {
	holidays HolidaySource
}

// NewEvaluator creates an Evaluator backed by a holiday source
func NewEvaluator(holidays HolidaySource) *Evaluator {
	return &Evaluator{holidays: holidays}
}

// IsWorkday checks if the given date is a working day
func (e *Evaluator) IsWorkday(date dateutil.Date) bool {
	return date.IsWeekday() && !e.holidays.ForYear(date.Year).Contains(date)
}

// GetDayInfo returns the classification and billable hours of a day
func (e *Evaluator) GetDayInfo(date dateutil.Date) DayInfo {
	info := DayInfo{Date: date}

	holiday, isHoliday := e.holidays.ForYear(date.Year).Name(date)
	switch {
	case isHoliday:
		info.Type = DayTypeHoliday
		info.Holiday = holiday
	case date.IsWeekend():
		info.Type = DayTypeWeekend
	default:
		info.Type = DayTypeWorkday
		info.IsWorkday = true
		info.WorkingHours = StandardHours
	}

	return info
}
