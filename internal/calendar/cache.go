package calendar

import (
	"strconv"
	"sync"

	"golang.org/x/sync/singleflight"
)

// HolidayCache memoizes holiday sets per year.
// Concurrent first requests for a year share a single build;
// a built set is never rebuilt or mutated.
type HolidayCache struct {
	build   func(year int) *HolidaySet
	cache   map[int]*HolidaySet
	cacheMu sync.RWMutex
	group   singleflight.Group
}

// NewHolidayCache creates a cache of Swedish holiday sets
func NewHolidayCache() *HolidayCache {
	return NewHolidayCacheWith(SwedishHolidays)
}

// NewHolidayCacheWith creates a cache around a custom builder
func NewHolidayCacheWith(build func(year int) *HolidaySet) *HolidayCache {
	return &HolidayCache{
		build: build,
		cache: make(map[int]*HolidaySet),
	}
}

// ForYear returns the holiday set of year, building it on first use
func (hc *HolidayCache) ForYear(year int) *HolidaySet {
	if set, ok := hc.lookup(year); ok {
		return set
	}

	v, _, _ := hc.group.Do(strconv.Itoa(year), func() (interface{}, error) {
		// A caller that lost the race to the previous flight finds it here
		if set, ok := hc.lookup(year); ok {
			return set, nil
		}

		set := hc.build(year)

		hc.cacheMu.Lock()
		hc.cache[year] = set
		hc.cacheMu.Unlock()

		return set, nil
	})

	return v.(*HolidaySet)
}

// Len returns the number of cached years
func (hc *HolidayCache) Len() int {
	hc.cacheMu.RLock()
	defer hc.cacheMu.RUnlock()

	return len(hc.cache)
}

func (hc *HolidayCache) lookup(year int) (*HolidaySet, bool) {
	hc.cacheMu.RLock()
	defer hc.cacheMu.RUnlock()

	set, ok := hc.cache[year]
	return set, ok
}
