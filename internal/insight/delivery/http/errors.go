package http

import (
	"errors"

	"taskpulse/internal/insight"
	"taskpulse/pkg/daterange"
	pkgErrors "taskpulse/pkg/errors"
)

var errBadPickerDate = errors.New("dates must be in YYYY-MM-DD format")

// mapError translates domain/use-case errors into HTTP errors from
// pkg/errors. MissingCustomBounds stays actionable: the client re-opens
// the range picker rather than showing a generic failure.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, daterange.ErrMissingCustomBounds):
		return pkgErrors.NewHTTPError(400, "custom range requires both start_date and end_date")
	case errors.Is(err, daterange.ErrUnknownRangeToken):
		return pkgErrors.NewHTTPError(400, "unknown range token")
	case errors.Is(err, insight.ErrEmptyToken):
		return pkgErrors.NewHTTPError(400, "range token is required")
	case errors.Is(err, insight.ErrUpstreamUnavailable):
		return pkgErrors.NewHTTPError(502, "task source unavailable, try again shortly")
	default:
		return pkgErrors.NewHTTPError(500, "internal error")
	}
}
