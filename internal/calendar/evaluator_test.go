package calendar

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/username/time-tally/pkg/dateutil"
)

func TestEvaluator_GetDayInfo(t *testing.T) {
	eval := NewEvaluator(NewHolidayCache())

	tests := []struct {
		name        string
		date        string
		wantType    DayType
		wantHours   int
		wantHoliday string
	}{
		{"regular Tuesday", "2024-03-05", DayTypeWorkday, 8, ""},
		{"Saturday", "2024-03-09", DayTypeWeekend, 0, ""},
		{"Sunday", "2024-03-10", DayTypeWeekend, 0, ""},
		{"Good Friday", "2024-03-29", DayTypeHoliday, 0, "Långfredagen"},
		{"Easter Monday", "2024-04-01", DayTypeHoliday, 0, "Annandag påsk"},
		{"holiday on a Sunday", "2024-03-31", DayTypeHoliday, 0, "Påskdagen"},
		{"Midsummer Eve", "2024-06-21", DayTypeHoliday, 0, "Midsommarafton"},
		{"day after Christmas week", "2024-12-27", DayTypeWorkday, 8, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			date := dateutil.MustParse(tt.date)
			info := eval.GetDayInfo(date)

			assert.Equal(t, date, info.Date)
			assert.Equal(t, tt.wantType, info.Type)
			assert.Equal(t, tt.wantHours, info.WorkingHours)
			assert.Equal(t, tt.wantHoliday, info.Holiday)
			assert.Equal(t, tt.wantType == DayTypeWorkday, info.IsWorkday)
			assert.Equal(t, info.IsWorkday, eval.IsWorkday(date))
		})
	}
}

func TestEvaluator_UsesInjectedSource(t *testing.T) {
	empty := NewHolidayCacheWith(func(year int) *HolidaySet {
		return &HolidaySet{year: year, byDate: map[dateutil.Date]string{}}
	})
	eval := NewEvaluator(empty)

	assert.True(t, eval.IsWorkday(dateutil.MustParse("2024-01-01")))
	assert.False(t, eval.IsWorkday(dateutil.MustParse("2024-01-06")))
}

func TestDayType_String(t *testing.T) {
	assert.Equal(t, "workday", DayTypeWorkday.String())
	assert.Equal(t, "weekend", DayTypeWeekend.String())
	assert.Equal(t, "holiday", DayTypeHoliday.String())
	assert.Equal(t, "unknown", DayType(0).String())
}
