package metrics

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveCompute(t *testing.T) {
	before := testutil.ToFloat64(ComputedDays)

	ObserveCompute(2*time.Millisecond, 31)

	assert.Equal(t, before+31, testutil.ToFloat64(ComputedDays))
}

func TestHandler_ExposesCollectors(t *testing.T) {
	Requests.WithLabelValues("/api/v1/workhours", "200").Inc()
	RequestErrors.WithLabelValues(KindInvalidRange).Inc()
	HolidayYearsCached.Set(3)

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)

	assert.Contains(t, string(body), `timetally_requests_total{code="200",route="/api/v1/workhours"}`)
	assert.Contains(t, string(body), `timetally_request_errors_total{kind="invalid_range"}`)
	assert.Contains(t, string(body), "timetally_holiday_years_cached 3")
	assert.Contains(t, string(body), "timetally_compute_seconds_bucket")
}
