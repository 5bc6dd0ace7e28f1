package servers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// Start a configuration
	// (POST /drafts)
	CreateDraft(ctx echo.Context) error
	// Current state of a configuration
	// (GET /drafts/{draftId})
	GetDraft(ctx echo.Context, draftId DraftId) error
	// Apply one user action to a configuration
	// (POST /drafts/{draftId}/actions)
	ApplyDraftAction(ctx echo.Context, draftId DraftId) error
	// Turn a finished configuration into an order
	// (POST /drafts/{draftId}/confirm)
	ConfirmDraft(ctx echo.Context, draftId DraftId) error
	// All orders, newest first
	// (GET /orders)
	ListOrders(ctx echo.Context) error
	// Place an order configured on the client
	// (POST /orders)
	CreateOrder(ctx echo.Context, params CreateOrderParams) error
	// Dashboard figures
	// (GET /orders/stats)
	GetOrderStats(ctx echo.Context) error
	// One order with its figures
	// (GET /orders/{orderId})
	GetOrder(ctx echo.Context, orderId OrderId) error
	// Move an order along its lifecycle
	// (PATCH /orders/{orderId}/status)
	UpdateOrderStatus(ctx echo.Context, orderId OrderId) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// CreateDraft converts echo context to params.
func (w *ServerInterfaceWrapper) CreateDraft(ctx echo.Context) error {
	return w.Handler.CreateDraft(ctx)
}

// GetDraft converts echo context to params.
func (w *ServerInterfaceWrapper) GetDraft(ctx echo.Context) error {
	draftId, err := bindDraftId(ctx)
	if err != nil {
		return err
	}
	return w.Handler.GetDraft(ctx, draftId)
}

// ApplyDraftAction converts echo context to params.
func (w *ServerInterfaceWrapper) ApplyDraftAction(ctx echo.Context) error {
	draftId, err := bindDraftId(ctx)
	if err != nil {
		return err
	}
	return w.Handler.ApplyDraftAction(ctx, draftId)
}

// ConfirmDraft converts echo context to params.
func (w *ServerInterfaceWrapper) ConfirmDraft(ctx echo.Context) error {
	draftId, err := bindDraftId(ctx)
	if err != nil {
		return err
	}
	return w.Handler.ConfirmDraft(ctx, draftId)
}

// ListOrders converts echo context to params.
func (w *ServerInterfaceWrapper) ListOrders(ctx echo.Context) error {
	ctx.Set(AdminAuthScopes, []string{})
	return w.Handler.ListOrders(ctx)
}

// CreateOrder converts echo context to params.
func (w *ServerInterfaceWrapper) CreateOrder(ctx echo.Context) error {
	var params CreateOrderParams

	headers := ctx.Request().Header
	if valueList, found := headers[http.CanonicalHeaderKey("Idempotency-Key")]; found {
		var IdempotencyKey openapi_types.UUID
		n := len(valueList)
		if n != 1 {
			return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Expected one value for Idempotency-Key, got %d", n))
		}

		err := runtime.BindStyledParameterWithOptions("simple", "Idempotency-Key", valueList[0], &IdempotencyKey,
			runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationHeader, Explode: false, Required: false})
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter Idempotency-Key: %s", err))
		}

		params.IdempotencyKey = &IdempotencyKey
	}

	return w.Handler.CreateOrder(ctx, params)
}

// GetOrderStats converts echo context to params.
func (w *ServerInterfaceWrapper) GetOrderStats(ctx echo.Context) error {
	ctx.Set(AdminAuthScopes, []string{})
	return w.Handler.GetOrderStats(ctx)
}

// GetOrder converts echo context to params.
func (w *ServerInterfaceWrapper) GetOrder(ctx echo.Context) error {
	orderId, err := bindOrderId(ctx)
	if err != nil {
		return err
	}
	ctx.Set(AdminAuthScopes, []string{})
	return w.Handler.GetOrder(ctx, orderId)
}

// UpdateOrderStatus converts echo context to params.
func (w *ServerInterfaceWrapper) UpdateOrderStatus(ctx echo.Context) error {
	orderId, err := bindOrderId(ctx)
	if err != nil {
		return err
	}
	ctx.Set(AdminAuthScopes, []string{})
	return w.Handler.UpdateOrderStatus(ctx, orderId)
}

func bindDraftId(ctx echo.Context) (DraftId, error) {
	var draftId DraftId
	err := runtime.BindStyledParameterWithOptions("simple", "draftId", ctx.Param("draftId"), &draftId,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return draftId, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter draftId: %s", err))
	}
	return draftId, nil
}

func bindOrderId(ctx echo.Context) (OrderId, error) {
	var orderId OrderId
	err := runtime.BindStyledParameterWithOptions("simple", "orderId", ctx.Param("orderId"), &orderId,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return orderId, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter orderId: %s", err))
	}
	return orderId, nil
}

// EchoRouter is the subset of echo routing used to register handlers.
// Both *echo.Echo and *echo.Group implement it.
type EchoRouter interface {
	CONNECT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	HEAD(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	OPTIONS(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	TRACE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers handlers, and prepends BaseURL to the paths,
// so that the paths can be served under a prefix.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.POST(baseURL+"/drafts", wrapper.CreateDraft)
	router.GET(baseURL+"/drafts/:draftId", wrapper.GetDraft)
	router.POST(baseURL+"/drafts/:draftId/actions", wrapper.ApplyDraftAction)
	router.POST(baseURL+"/drafts/:draftId/confirm", wrapper.ConfirmDraft)
	router.GET(baseURL+"/orders", wrapper.ListOrders)
	router.POST(baseURL+"/orders", wrapper.CreateOrder)
	router.GET(baseURL+"/orders/stats", wrapper.GetOrderStats)
	router.GET(baseURL+"/orders/:orderId", wrapper.GetOrder)
	router.PATCH(baseURL+"/orders/:orderId/status", wrapper.UpdateOrderStatus)
}
