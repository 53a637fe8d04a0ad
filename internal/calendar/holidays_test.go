package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/username/time-tally/pkg/dateutil"
)

func TestEasterSunday(t *testing.T) {
	tests := []struct {
		year int
		want string
	}{
		{1583, "1583-04-10"},
		{1818, "1818-03-22"},
		{2000, "2000-04-23"},
		{2008, "2008-03-23"},
		{2019, "2019-04-21"},
		{2024, "2024-03-31"},
		{2025, "2025-04-20"},
		{2038, "2038-04-25"},
		{2285, "2285-03-22"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, dateutil.MustParse(tt.want), EasterSunday(tt.year))
		})
	}
}

func TestSwedishHolidays_2024(t *testing.T) {
	set := SwedishHolidays(2024)

	want := map[string]string{
		"2024-01-01": "Nyårsdagen",
		"2024-01-06": "Trettondedag jul",
		"2024-03-29": "Långfredagen",
		"2024-03-31": "Påskdagen",
		"2024-04-01": "Annandag påsk",
		"2024-05-01": "Första maj",
		"2024-05-09": "Kristi himmelsfärdsdag",
		"2024-05-19": "Pingstdagen",
		"2024-06-06": "Sveriges nationaldag",
		"2024-06-21": "Midsommarafton",
		"2024-12-24": "Julafton",
		"2024-12-25": "Juldagen",
		"2024-12-26": "Annandag jul",
		"2024-12-31": "Nyårsafton",
	}

	assert.Equal(t, 2024, set.Year())
	assert.Equal(t, len(want), set.Len())
	for date, name := range want {
		got, ok := set.Name(dateutil.MustParse(date))
		require.True(t, ok, "expected %s to be a holiday", date)
		assert.Equal(t, name, got)
	}

	for _, date := range []string{"2024-01-02", "2024-03-28", "2024-04-02", "2024-05-10", "2024-06-20", "2024-06-22"} {
		assert.False(t, set.Contains(dateutil.MustParse(date)), "%s should not be a holiday", date)
	}
}

func TestSwedishHolidays_SortedAndCopied(t *testing.T) {
	set := SwedishHolidays(2025)
	holidays := set.Holidays()

	require.Len(t, holidays, set.Len())
	for i := 1; i < len(holidays); i++ {
		assert.True(t, holidays[i-1].Date.Before(holidays[i].Date))
	}

	holidays[0].Name = "changed"
	assert.Equal(t, "Nyårsdagen", set.Holidays()[0].Name)
}

func TestSwedishHolidays_NoSubstituteDays(t *testing.T) {
	// National Day 2026 is a Saturday
	set := SwedishHolidays(2026)

	assert.True(t, set.Contains(dateutil.MustParse("2026-06-06")))
	assert.False(t, set.Contains(dateutil.MustParse("2026-06-05")))
	assert.False(t, set.Contains(dateutil.MustParse("2026-06-08")))
}

func TestSwedishHolidays_AscensionOnMayDay(t *testing.T) {
	set := SwedishHolidays(2008)

	name, ok := set.Name(dateutil.MustParse("2008-05-01"))
	require.True(t, ok)
	assert.Equal(t, "Första maj / Kristi himmelsfärdsdag", name)
	assert.Equal(t, 13, set.Len())
}

func TestMidsummerEve(t *testing.T) {
	tests := []struct {
		year int
		want string
	}{
		{2021, "2021-06-25"},
		{2022, "2022-06-24"},
		{2023, "2023-06-23"},
		{2024, "2024-06-21"},
		{2025, "2025-06-20"},
		{2026, "2026-06-19"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			name, ok := SwedishHolidays(tt.year).Name(dateutil.MustParse(tt.want))
			require.True(t, ok)
			assert.Equal(t, "Midsommarafton", name)
		})
	}

	for year := 1600; year <= 2400; year++ {
		var found bool
		for _, h := range SwedishHolidays(year).Holidays() {
			if h.Date.Month != time.June || h.Date.Day < 19 || h.Date.Day > 25 {
				continue
			}
			require.Equal(t, time.Friday, h.Date.Weekday(), "year %d", year)
			found = true
		}
		require.True(t, found, "no midsummer eve in %d", year)
	}
}

// gregorianEaster is the anonymous Gregorian computus (Meeus/Jones/Butcher)
func gregorianEaster(year int) dateutil.Date {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := (h+l-7*m+114)%31 + 1

	return dateutil.Date{Year: year, Month: time.Month(month), Day: day}
}

func TestEasterSunday_MatchesComputus(t *testing.T) {
	for year := dateutil.MinYear; year <= dateutil.MaxYear; year++ {
		easter := gregorianEaster(year)
		require.Equal(t, easter, EasterSunday(year), "year %d", year)
		require.Equal(t, time.Sunday, easter.Weekday(), "year %d", year)
	}
}

func TestSwedishHolidays_EasterOffsets(t *testing.T) {
	offsets := map[string]int{
		"Långfredagen":           -2,
		"Påskdagen":              0,
		"Annandag påsk":          1,
		"Kristi himmelsfärdsdag": 39,
		"Pingstdagen":            49,
	}

	for year := dateutil.MinYear; year <= dateutil.MaxYear; year += 7 {
		set := SwedishHolidays(year)
		require.GreaterOrEqual(t, set.Len(), 13, "year %d", year)

		easter := gregorianEaster(year)
		for name, offset := range offsets {
			got, ok := set.Name(easter.AddDays(offset))
			require.True(t, ok, "%s %d", name, year)
			require.Contains(t, got, name, "year %d", year)
		}
	}
}

func TestSwedishHolidays_FixedDatesInEveryYear(t *testing.T) {
	// National Day before 2005 and far-future years still count
	for _, year := range []int{1583, 1900, 2004, 9999} {
		set := SwedishHolidays(year)
		for _, md := range [][2]int{{1, 1}, {1, 6}, {5, 1}, {6, 6}, {12, 24}, {12, 25}, {12, 26}, {12, 31}} {
			date := dateutil.Date{Year: year, Month: time.Month(md[0]), Day: md[1]}
			assert.True(t, set.Contains(date), "%s", date)
		}
	}
}
