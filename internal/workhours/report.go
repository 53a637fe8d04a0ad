package workhours

import (
	"time"

	"github.com/username/time-tally/internal/calendar"
	"github.com/username/time-tally/pkg/dateutil"
)

// WorkPeriod is one reporting period with its evaluated days
type WorkPeriod struct {
	Start    dateutil.Date      `json:"start"`
	End      dateutil.Date      `json:"end"`
	Length   int                `json:"days"`
	Week     int                `json:"week"`
	Label    string             `json:"label"`
	Workdays int                `json:"workdays"`
	Hours    int                `json:"hours"`
	Days     []calendar.DayInfo `json:"-"`
}

// MonthTotal is the rollup of the periods of one month
type MonthTotal struct {
	Month   time.Month   `json:"month"`
	Name    string       `json:"name"`
	Total   int          `json:"total"`
	Periods []WorkPeriod `json:"periods"`
}

// YearTotal is the rollup of the months of one year
type YearTotal struct {
	Year   int          `json:"year"`
	Total  int          `json:"total"`
	Months []MonthTotal `json:"months"`
}

// Report is the result of a work hours calculation
type Report struct {
	Start    dateutil.Date `json:"start"`
	End      dateutil.Date `json:"end"`
	Total    int           `json:"total"`
	Workdays int           `json:"workdays"`
	Years    []YearTotal   `json:"years"`
	Periods  []WorkPeriod  `json:"periods"`
}

// Aggregate rolls ordered, contiguous periods up into months, years and
// a grand total. Every period lies within a single month, so it is
// attributed to the month of its start date.
func Aggregate(periods []WorkPeriod) *Report {
	report := &Report{
		Years:   []YearTotal{},
		Periods: periods,
	}
	if len(periods) == 0 {
		return report
	}

	report.Start = periods[0].Start
	report.End = periods[len(periods)-1].End

	for _, p := range periods {
		if n := len(report.Years); n == 0 || report.Years[n-1].Year != p.Start.Year {
			report.Years = append(report.Years, YearTotal{Year: p.Start.Year})
		}
		year := &report.Years[len(report.Years)-1]

		if n := len(year.Months); n == 0 || year.Months[n-1].Month != p.Start.Month {
			year.Months = append(year.Months, MonthTotal{
				Month: p.Start.Month,
				Name:  p.Start.Month.String(),
			})
		}
		month := &year.Months[len(year.Months)-1]

		month.Periods = append(month.Periods, p)
		month.Total += p.Hours
		year.Total += p.Hours
		report.Total += p.Hours
		report.Workdays += p.Workdays
	}

	return report
}
