package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"configurator/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

const BaseURL = "/api/v1"

// NewRouter wires the API server, request validation, admin authentication,
// logging and the documentation UI into an echo instance.
func NewRouter(server *Server, auth *AdminAuthenticator, logger *slog.Logger) (*echo.Echo, error) {
	spec, err := servers.GetSwagger()
	if err != nil {
		return nil, fmt.Errorf("load openapi spec: %w", err)
	}

	validator, err := RequestValidator(spec, auth.AuthenticationFunc())
	if err != nil {
		return nil, err
	}
	if err = registerDoc(spec); err != nil {
		return nil, fmt.Errorf("register openapi doc: %w", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(logger)

	e.Use(middleware.Recover())
	e.Use(RequestLogger(logger))
	e.Use(validator)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	servers.RegisterHandlersWithBaseURL(e, server, BaseURL)

	return e, nil
}
