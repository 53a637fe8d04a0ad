package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/username/time-tally/internal/calendar"
	"github.com/username/time-tally/internal/metrics"
	"github.com/username/time-tally/internal/workhours"
	"github.com/username/time-tally/pkg/dateutil"
)

// MaxRangeDays is the longest range, in days, a single request may cover
const MaxRangeDays = 10 * 366

// Computer calculates work hour reports
type Computer interface {
	Compute(start, end dateutil.Date) (*workhours.Report, error)
}

type handler struct {
	engine   Computer
	holidays calendar.HolidaySource
	logger   *zap.Logger
}

// apiError is a rejected request
type apiError struct {
	status int
	kind   string
	err    error
}

func (e *apiError) Error() string { return e.err.Error() }

// NewRouter creates the API router
func NewRouter(engine Computer, holidays calendar.HolidaySource, logger *zap.Logger) http.Handler {
	h := &handler{
		engine:   engine,
		holidays: holidays,
		logger:   logger,
	}

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(loggingMiddleware(logger))
	router.Use(middleware.Recoverer)

	router.Get("/health", handleHealth)

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/workhours", h.getWorkhours)
		r.Get("/holidays/{year}", h.getHolidays)
	})

	return router
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// getWorkhours handles GET /api/v1/workhours?start=DD-MM-YYYY&end=DD-MM-YYYY
func (h *handler) getWorkhours(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	start, err := dateParam(query, "start")
	if err != nil {
		h.reject(w, r, err)
		return
	}
	end, err := dateParam(query, "end")
	if err != nil {
		h.reject(w, r, err)
		return
	}

	if days := start.DaysUntil(end) + 1; days > MaxRangeDays {
		h.reject(w, r, &apiError{
			status: http.StatusBadRequest,
			kind:   metrics.KindBadRequest,
			err:    fmt.Errorf("range of %d days exceeds the maximum of %d days", days, MaxRangeDays),
		})
		return
	}

	began := time.Now()
	report, err := h.engine.Compute(start, end)
	if err != nil {
		switch {
		case errors.Is(err, workhours.ErrInvalidRange):
			h.reject(w, r, &apiError{status: http.StatusBadRequest, kind: metrics.KindInvalidRange, err: err})
		case errors.Is(err, workhours.ErrInvalidDate):
			h.reject(w, r, &apiError{status: http.StatusBadRequest, kind: metrics.KindInvalidDate, err: err})
		default:
			h.logger.Error("Work hours calculation failed", zap.Error(err))
			writeJSON(w, http.StatusInternalServerError, errorBody("internal server error"))
		}
		return
	}

	metrics.ObserveCompute(time.Since(began), start.DaysUntil(end)+1)
	h.observeCache()

	h.logger.Debug("Work hours calculated",
		zap.Stringer("start", start),
		zap.Stringer("end", end),
		zap.Int("periods", len(report.Periods)),
		zap.Int("total", report.Total))

	writeJSON(w, http.StatusOK, report)
}

type holidaysResponse struct {
	Year     int                `json:"year"`
	Holidays []calendar.Holiday `json:"holidays"`
}

// getHolidays handles GET /api/v1/holidays/{year}
func (h *handler) getHolidays(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "year")
	year, err := strconv.Atoi(raw)
	if err != nil || year < dateutil.MinYear || year > dateutil.MaxYear {
		h.reject(w, r, &apiError{
			status: http.StatusBadRequest,
			kind:   metrics.KindBadRequest,
			err:    fmt.Errorf("year must be between %d and %d, got %q", dateutil.MinYear, dateutil.MaxYear, raw),
		})
		return
	}

	set := h.holidays.ForYear(year)
	h.observeCache()

	writeJSON(w, http.StatusOK, holidaysResponse{Year: year, Holidays: set.Holidays()})
}

func dateParam(query url.Values, name string) (dateutil.Date, error) {
	raw := query.Get(name)
	if raw == "" {
		return dateutil.Date{}, &apiError{
			status: http.StatusBadRequest,
			kind:   metrics.KindBadRequest,
			err:    fmt.Errorf("missing query parameter %q (format DD-MM-YYYY)", name),
		}
	}

	date, err := dateutil.ParseDate(raw)
	if err != nil {
		kind := metrics.KindBadRequest
		if errors.Is(err, dateutil.ErrInvalidDate) {
			kind = metrics.KindInvalidDate
		}
		return dateutil.Date{}, &apiError{
			status: http.StatusBadRequest,
			kind:   kind,
			err:    fmt.Errorf("invalid %s date: %w", name, err),
		}
	}

	return date, nil
}

func (h *handler) reject(w http.ResponseWriter, r *http.Request, err error) {
	var apiErr *apiError
	if !errors.As(err, &apiErr) {
		apiErr = &apiError{status: http.StatusBadRequest, kind: metrics.KindBadRequest, err: err}
	}

	metrics.RequestErrors.WithLabelValues(apiErr.kind).Inc()
	h.logger.Warn("Request rejected",
		zap.String("path", r.URL.Path),
		zap.String("kind", apiErr.kind),
		zap.Error(apiErr.err))

	writeJSON(w, apiErr.status, errorBody(apiErr.Error()))
}

func (h *handler) observeCache() {
	if sized, ok := h.holidays.(interface{ Len() int }); ok {
		metrics.HolidayYearsCached.Set(float64(sized.Len()))
	}
}

func errorBody(msg string) map[string]string {
	return map[string]string{"error": msg}
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
