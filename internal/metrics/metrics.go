package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Requests counts handled API requests by route pattern and status code
	Requests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "timetally", Name: "requests_total", Help: "Handled API requests",
	}, []string{"route", "code"})
	// RequestErrors counts rejected API requests by error kind
	RequestErrors = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "timetally", Name: "request_errors_total", Help: "Rejected API requests by kind",
	}, []string{"kind"})
	// ComputeDuration observes the latency of work hours calculations
	ComputeDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "timetally", Name: "compute_seconds", Help: "Work hours calculation latency",
		Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10),
	})
	// ComputedDays counts the days evaluated by work hours calculations
	ComputedDays = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "timetally", Name: "computed_days_total", Help: "Days evaluated by work hours calculations",
	})
	// HolidayYearsCached reports how many years have a cached holiday set
	HolidayYearsCached = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "timetally", Name: "holiday_years_cached", Help: "Years with a cached holiday set",
	})
)

// Error kinds used as the RequestErrors label
const (
	KindInvalidRange = "invalid_range"
	KindInvalidDate  = "invalid_date"
	KindBadRequest   = "bad_request"
)

func init() {
	prometheus.MustRegister(Requests, RequestErrors, ComputeDuration, ComputedDays, HolidayYearsCached)
}

// Handler returns the Prometheus scrape handler
func Handler() http.Handler { return promhttp.Handler() }

// ObserveCompute records one calculation covering days days
func ObserveCompute(d time.Duration, days int) {
	ComputeDuration.Observe(d.Seconds())
	ComputedDays.Add(float64(days))
}
