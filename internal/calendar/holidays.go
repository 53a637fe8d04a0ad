package calendar

import (
	"sort"

	"github.com/rickar/cal/v2"
	"github.com/rickar/cal/v2/se"

	"github.com/username/time-tally/pkg/dateutil"
)

type holidayRule struct {
	name    string
	holiday *cal.Holiday
}

// Holidays in Sweden.
// Holidays on a weekend are not moved to a substitute day.
var swedishRules = []holidayRule{
	{"Nyårsdagen", actualOnly(se.Nyarsdagen)},
	{"Trettondedag jul", actualOnly(se.TrettondedagJul)},
	{"Långfredagen", actualOnly(se.Langfredagen)},
	{"Påskdagen", actualOnly(se.Paskdagen)},
	{"Annandag påsk", actualOnly(se.AnnandagPask)},
	{"Första maj", actualOnly(se.ForstaMaj)},
	{"Kristi himmelsfärdsdag", actualOnly(se.KristiHimmelfardsdag)},
	{"Pingstdagen", actualOnly(se.Pingstdagen)},
	{"Sveriges nationaldag", actualOnly(se.Nationaldagen)},
	{"Midsommarafton", actualOnly(se.Midsommarafton)},
	{"Julafton", actualOnly(se.Julafton)},
	{"Juldagen", actualOnly(se.Juldagen)},
	{"Annandag jul", actualOnly(se.AnnandagJul)},
	{"Nyårsafton", actualOnly(se.Nyarsafton)},
}

// actualOnly copies h without year bounds or observance shifts,
// so the rule yields its calendar date in every supported year.
func actualOnly(h *cal.Holiday) *cal.Holiday {
	c := *h
	c.StartYear = 0
	c.EndYear = 0
	c.Observed = nil
	return &c
}

// date returns the day the rule falls on in year
func (r holidayRule) date(year int) dateutil.Date {
	actual, _ := r.holiday.Calc(year)
	return dateutil.FromTime(actual)
}

// HolidaySet is the immutable set of holidays of one year
type HolidaySet struct {
	year   int
	byDate map[dateutil.Date]string
	sorted []Holiday
}

// SwedishHolidays computes the Swedish public holidays of year
func SwedishHolidays(year int) *HolidaySet {
	set := &HolidaySet{
		year:   year,
		byDate: make(map[dateutil.Date]string, len(swedishRules)),
	}

	for _, rule := range swedishRules {
		date := rule.date(year)
		if name, ok := set.byDate[date]; ok {
			// Ascension can fall on May 1st
			set.byDate[date] = name + " / " + rule.name
			continue
		}
		set.byDate[date] = rule.name
	}

	set.sorted = make([]Holiday, 0, len(set.byDate))
	for date, name := range set.byDate {
		set.sorted = append(set.sorted, Holiday{Date: date, Name: name})
	}
	sort.Slice(set.sorted, func(i, j int) bool {
		return set.sorted[i].Date.Before(set.sorted[j].Date)
	})

	return set
}

// Year returns the year the set was built for
func (s *HolidaySet) Year() int {
	return s.year
}

// Contains reports whether date is a holiday
func (s *HolidaySet) Contains(date dateutil.Date) bool {
	_, ok := s.byDate[date]
	return ok
}

// Name returns the holiday name of date
func (s *HolidaySet) Name(date dateutil.Date) (string, bool) {
	name, ok := s.byDate[date]
	return name, ok
}

// Len returns the number of distinct holiday dates
func (s *HolidaySet) Len() int {
	return len(s.sorted)
}

// Holidays returns the holidays sorted by date
func (s *HolidaySet) Holidays() []Holiday {
	out := make([]Holiday, len(s.sorted))
	copy(out, s.sorted)
	return out
}
