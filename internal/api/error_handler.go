package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/recordhub/records-api/internal/api/handler"
	"github.com/recordhub/records-api/internal/api/metrics"
	"github.com/recordhub/records-api/internal/core/domain"
)

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps record errors to 404, 400 and 409 with resource-specific wording.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Always answers in plain text; there is no JSON error envelope.
func NewHTTPErrorHandler(log zerolog.Logger, m *metrics.Metrics) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, m, c)
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.String(code, msg)
	}
}

func resolveError(err error, log zerolog.Logger, m *metrics.Metrics, c echo.Context) (int, string) {
	var re *domain.RecordError
	if errors.As(err, &re) {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			m.RecordFailure(re.Resource, "not_found")
			return http.StatusNotFound, handler.NotFoundMessage(re.Resource)
		case errors.Is(err, domain.ErrMalformedInput):
			m.RecordFailure(re.Resource, "malformed_input")
			return http.StatusBadRequest, handler.MsgMalformedInput + re.Detail
		case errors.Is(err, domain.ErrDuplicateKey):
			m.RecordFailure(re.Resource, "duplicate_key")
			return http.StatusConflict, handler.ConflictMessage(re.Resource, re.ID)
		}
	}

	// Echo's own errors (unknown route, method not allowed, recovered panics).
	var he *echo.HTTPError
	if errors.As(err, &he) && he.Code < http.StatusInternalServerError {
		m.RecordFailure("", "http")
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	var resource domain.Resource
	if re != nil {
		resource = re.Resource
	}
	m.RecordFailure(resource, "store_failure")
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Str("resource", string(resource)).
		Msg("unhandled error")

	return http.StatusInternalServerError, handler.MsgInternal
}
