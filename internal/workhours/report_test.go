package workhours

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregate(t *testing.T) {
	periods := []WorkPeriod{
		{Start: d("2024-12-23"), End: d("2024-12-31"), Length: 9, Workdays: 2, Hours: 16},
		{Start: d("2025-01-01"), End: d("2025-01-07"), Length: 7, Workdays: 3, Hours: 24},
		{Start: d("2025-01-08"), End: d("2025-01-14"), Length: 7, Workdays: 5, Hours: 40},
		{Start: d("2025-02-01"), End: d("2025-02-03"), Length: 3, Workdays: 1, Hours: 8},
	}

	report := Aggregate(periods)

	assert.Equal(t, d("2024-12-23"), report.Start)
	assert.Equal(t, d("2025-02-03"), report.End)
	assert.Equal(t, 88, report.Total)
	assert.Equal(t, 11, report.Workdays)
	assert.Equal(t, periods, report.Periods)

	require.Len(t, report.Years, 2)
	assert.Equal(t, 2024, report.Years[0].Year)
	assert.Equal(t, 16, report.Years[0].Total)
	require.Len(t, report.Years[0].Months, 1)
	assert.Equal(t, "December", report.Years[0].Months[0].Name)

	assert.Equal(t, 2025, report.Years[1].Year)
	assert.Equal(t, 72, report.Years[1].Total)
	require.Len(t, report.Years[1].Months, 2)
	assert.Equal(t, 64, report.Years[1].Months[0].Total)
	assert.Len(t, report.Years[1].Months[0].Periods, 2)
	assert.Equal(t, 8, report.Years[1].Months[1].Total)
}

func TestAggregate_Empty(t *testing.T) {
	report := Aggregate(nil)

	assert.Equal(t, 0, report.Total)
	assert.Empty(t, report.Years)
}

func TestReport_JSON(t *testing.T) {
	report, err := newEngine().Compute(d("2024-05-29"), d("2024-06-02"))
	require.NoError(t, err)

	out, err := json.Marshal(report)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"start": "2024-05-29",
		"end": "2024-06-02",
		"total": 24,
		"workdays": 3,
		"years": [{
			"year": 2024,
			"total": 24,
			"months": [
				{"month": 5, "name": "May", "total": 24, "periods": [
					{"start": "2024-05-29", "end": "2024-05-31", "days": 3, "week": 22, "label": "week: 22", "workdays": 3, "hours": 24}
				]},
				{"month": 6, "name": "June", "total": 0, "periods": [
					{"start": "2024-06-01", "end": "2024-06-02", "days": 2, "week": 22, "label": "week: 22", "workdays": 0, "hours": 0}
				]}
			]
		}],
		"periods": [
			{"start": "2024-05-29", "end": "2024-05-31", "days": 3, "week": 22, "label": "week: 22", "workdays": 3, "hours": 24},
			{"start": "2024-06-01", "end": "2024-06-02", "days": 2, "week": 22, "label": "week: 22", "workdays": 0, "hours": 0}
		]
	}`, string(out))
}
