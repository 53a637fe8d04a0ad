// Package workhours calculates billable work hours for a date range,
// broken down into finance periods, months and years.
package workhours

import (
	"fmt"

	"github.com/username/time-tally/internal/calendar"
	"github.com/username/time-tally/internal/period"
	"github.com/username/time-tally/pkg/dateutil"
)

var (
	// ErrInvalidRange is returned when start is after end
	ErrInvalidRange = period.ErrInvalidRange
	// ErrInvalidDate is returned for a date that is not a real calendar day
	ErrInvalidDate = dateutil.ErrInvalidDate
)

// DayEvaluator classifies single days
type DayEvaluator interface {
	GetDayInfo(date dateutil.Date) calendar.DayInfo
}

// Engine computes work hour reports. It holds no per-request state and
// is safe for concurrent use as long as its evaluator is.
type Engine struct {
	evaluator DayEvaluator
}

// NewEngine creates an Engine
func NewEngine(evaluator DayEvaluator) *Engine {
	return &Engine{evaluator: evaluator}
}

// NewSwedishEngine creates an Engine that classifies days against the
// holiday sets of holidays
func NewSwedishEngine(holidays *calendar.HolidayCache) *Engine {
	return NewEngine(calendar.NewEvaluator(holidays))
}

// Compute returns the work hours between start and end, both inclusive.
// Either the full report or an error is returned, never both.
func (e *Engine) Compute(start, end dateutil.Date) (*Report, error) {
	if !start.Valid() {
		return nil, fmt.Errorf("%w: start %s", ErrInvalidDate, start)
	}
	if !end.Valid() {
		return nil, fmt.Errorf("%w: end %s", ErrInvalidDate, end)
	}

	spans, err := period.Partition(start, end)
	if err != nil {
		return nil, err
	}

	periods := make([]WorkPeriod, 0, len(spans))
	for _, span := range spans {
		periods = append(periods, e.evaluate(span))
	}

	return Aggregate(periods), nil
}

func (e *Engine) evaluate(span period.Span) WorkPeriod {
	wp := WorkPeriod{
		Start:  span.Start,
		End:    span.End,
		Length: span.Len(),
		Week:   span.Week(),
		Label:  span.Label(),
		Days:   make([]calendar.DayInfo, 0, span.Len()),
	}

	for _, date := range span.Days() {
		day := e.evaluator.GetDayInfo(date)
		if day.IsWorkday {
			wp.Workdays++
			wp.Hours += day.WorkingHours
		}
		wp.Days = append(wp.Days, day)
	}

	return wp
}
