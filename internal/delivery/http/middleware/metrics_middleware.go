package middleware

import (
	"net/http"
	"strconv"
	"time"

	domainerrors "catlog/internal/domain/errors"
	"catlog/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// MetricsMiddleware records request counts and latencies.
type MetricsMiddleware struct {
	metrics *metrics.Metrics
}

// NewMetricsMiddleware creates a new metrics middleware
func NewMetricsMiddleware(m *metrics.Metrics) *MetricsMiddleware {
	return &MetricsMiddleware{metrics: m}
}

// Handle observes every request, labeled with the route template rather
// than the raw path so the label cardinality stays bounded.
func (m *MetricsMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)

		route := c.Path()
		if route == "" {
			route = "unmatched"
		}

		status := strconv.Itoa(responseStatus(c, err))
		m.metrics.RecordHTTPRequest(route, c.Request().Method, status, time.Since(start).Seconds())

		return err
	}
}

// responseStatus resolves the status the request will be answered with.
// Errors returned by handlers are rendered by the central error handler
// after this middleware unwinds, so the response status is not final yet
// and has to be derived from the error itself.
func responseStatus(c echo.Context, err error) int {
	if err == nil || c.Response().Committed {
		return c.Response().Status
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPCode()
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}

	return http.StatusInternalServerError
}
