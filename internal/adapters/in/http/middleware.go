package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers/gorillamux"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type contextKey string

const echoContextKey contextKey = "echo_context"

// RequestValidator checks API requests against the OpenAPI document before
// they reach a handler. Requests to routes the document does not describe
// pass through untouched.
func RequestValidator(spec *openapi3.T, auth openapi3filter.AuthenticationFunc) (echo.MiddlewareFunc, error) {
	router, err := gorillamux.NewRouter(spec)
	if err != nil {
		return nil, fmt.Errorf("build openapi router: %w", err)
	}

	options := &openapi3filter.Options{AuthenticationFunc: auth}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			route, pathParams, err := router.FindRoute(req)
			if err != nil {
				return next(c)
			}

			ctx := context.WithValue(req.Context(), echoContextKey, c)
			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			}
			if err = openapi3filter.ValidateRequest(ctx, input); err != nil {
				return validationError(err)
			}

			return next(c)
		}
	}, nil
}

func validationError(err error) *echo.HTTPError {
	var secErr *openapi3filter.SecurityRequirementsError
	if errors.As(err, &secErr) {
		return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized").SetInternal(err)
	}

	var reqErr *openapi3filter.RequestError
	if errors.As(err, &reqErr) {
		return echo.NewHTTPError(http.StatusBadRequest, reqErr.Error()).SetInternal(err)
	}

	return echo.NewHTTPError(http.StatusBadRequest, err.Error()).SetInternal(err)
}

// RequestLogger writes one structured line per request.
func RequestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	logger = logger.With("component", "http")

	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
			}
			if v.Error != nil {
				logger.WarnContext(c.Request().Context(), "Request failed", append(attrs, "error", v.Error)...)
				return nil
			}
			logger.InfoContext(c.Request().Context(), "Request handled", attrs...)
			return nil
		},
	})
}
