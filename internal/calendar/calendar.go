package calendar

import "github.com/username/time-tally/pkg/dateutil"

// StandardHours is the number of billable hours of a workday
const StandardHours = 8

// DayType represents the type of day
type DayType int

const (
	DayTypeWorkday DayType = iota + 1
	DayTypeWeekend
	DayTypeHoliday
)

// String returns the lowercase name of the day type
func (t DayType) String() string {
	switch t {
	case DayTypeWorkday:
		return "workday"
	case DayTypeWeekend:
		return "weekend"
	case DayTypeHoliday:
		return "holiday"
	default:
		return "unknown"
	}
}

// MarshalText encodes the day type by name
func (t DayType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// Holiday is a public holiday
type Holiday struct {
	Date dateutil.Date `json:"date"`
	Name string        `json:"name"`
}

// DayInfo represents information about a specific day
type DayInfo struct {
	Date         dateutil.Date `json:"date"`
	Type         DayType       `json:"type"`
	WorkingHours int           `json:"hours"`
	IsWorkday    bool          `json:"workday"`
	Holiday      string        `json:"holiday,omitempty"`
}

// HolidaySource provides the holiday set of a year
type HolidaySource interface {
	ForYear(year int) *HolidaySet
}
