package http

import (
	"errors"
	"log/slog"
	"net/http"

	"configurator/internal/core/domain/model/customer"
	"configurator/internal/core/domain/services"
	"configurator/internal/generated/servers"
	"configurator/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusFor maps an error returned by a use case to the response status.
func statusFor(err error) int {
	var httpErr *echo.HTTPError
	switch {
	case errors.As(err, &httpErr):
		return httpErr.Code
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, services.ErrNoCompleteFigures):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes err as a servers.Error. Server errors are logged and
// their detail is not sent to the client.
func respondError(ctx echo.Context, logger *slog.Logger, err error) error {
	status := statusFor(err)
	body := servers.Error{Code: status, Message: err.Error()}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		if msg, ok := httpErr.Message.(string); ok {
			body.Message = msg
		} else {
			body.Message = http.StatusText(status)
		}
	}

	var verr *customer.ValidationError
	if errors.As(err, &verr) && len(verr.Fields) > 0 {
		fields := verr.Fields
		body.Fields = &fields
	}

	if status >= http.StatusInternalServerError {
		logger.ErrorContext(ctx.Request().Context(), "Request failed",
			"method", ctx.Request().Method, "path", ctx.Path(), "error", err)
		body.Message = "Internal server error"
	}

	return ctx.JSON(status, body)
}

// NewHTTPErrorHandler renders errors that escape handlers and middleware in
// the same shape as handler errors.
func NewHTTPErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		if ctx.Response().Committed {
			return
		}
		if werr := respondError(ctx, logger, err); werr != nil {
			logger.Error("Failed to write error response", "error", werr)
		}
	}
}
