package http

import (
	"log/slog"
	"net/http"
	"time"

	"configurator/internal/core/application/usecases/commands"
	"configurator/internal/core/application/usecases/queries"
	"configurator/internal/core/domain/model/kernel"
	"configurator/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	startDraftHandler        commands.StartDraftCommandHandler
	applyDraftActionHandler  commands.ApplyDraftActionCommandHandler
	confirmDraftHandler      commands.ConfirmDraftCommandHandler
	createOrderHandler       commands.CreateOrderCommandHandler
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler

	// Query handlers
	getDraftHandler      queries.GetDraftQueryHandler
	getOrderHandler      queries.GetOrderQueryHandler
	listOrdersHandler    queries.ListOrdersQueryHandler
	getOrderStatsHandler queries.GetOrderStatsQueryHandler

	logger *slog.Logger
	now    func() time.Time
}

type Handlers struct {
	StartDraft        commands.StartDraftCommandHandler
	ApplyDraftAction  commands.ApplyDraftActionCommandHandler
	ConfirmDraft      commands.ConfirmDraftCommandHandler
	CreateOrder       commands.CreateOrderCommandHandler
	UpdateOrderStatus commands.UpdateOrderStatusCommandHandler

	GetDraft      queries.GetDraftQueryHandler
	GetOrder      queries.GetOrderQueryHandler
	ListOrders    queries.ListOrdersQueryHandler
	GetOrderStats queries.GetOrderStatsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(h Handlers, logger *slog.Logger) *Server {
	return &Server{
		startDraftHandler:        h.StartDraft,
		applyDraftActionHandler:  h.ApplyDraftAction,
		confirmDraftHandler:      h.ConfirmDraft,
		createOrderHandler:       h.CreateOrder,
		updateOrderStatusHandler: h.UpdateOrderStatus,
		getDraftHandler:          h.GetDraft,
		getOrderHandler:          h.GetOrder,
		listOrdersHandler:        h.ListOrders,
		getOrderStatsHandler:     h.GetOrderStats,
		logger:                   logger.With("component", "http_server"),
		now:                      time.Now,
	}
}

// CreateDraft handles POST /api/v1/drafts - starts a configuration.
func (s *Server) CreateDraft(ctx echo.Context) error {
	cmd, err := commands.NewStartDraftCommand(kernel.NewUUID())
	if err != nil {
		return s.respondError(ctx, err)
	}

	draft, err := s.startDraftHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toAPIDraft(draft))
}

// GetDraft handles GET /api/v1/drafts/{draftId}.
func (s *Server) GetDraft(ctx echo.Context, draftId servers.DraftId) error {
	id, err := kernel.UUIDFromBytes(draftId[:])
	if err != nil {
		return s.respondError(ctx, err)
	}
	query, err := queries.NewGetDraftQuery(id)
	if err != nil {
		return s.respondError(ctx, err)
	}

	draft, err := s.getDraftHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toAPIDraft(draft))
}

// ApplyDraftAction handles POST /api/v1/drafts/{draftId}/actions.
func (s *Server) ApplyDraftAction(ctx echo.Context, draftId servers.DraftId) error {
	var body servers.DraftAction
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	id, err := kernel.UUIDFromBytes(draftId[:])
	if err != nil {
		return s.respondError(ctx, err)
	}
	action, err := toWizardAction(body)
	if err != nil {
		return s.respondError(ctx, err)
	}
	cmd, err := commands.NewApplyDraftActionCommand(id, action)
	if err != nil {
		return s.respondError(ctx, err)
	}

	draft, err := s.applyDraftActionHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toAPIDraft(draft))
}

// ConfirmDraft handles POST /api/v1/drafts/{draftId}/confirm.
// Confirming an already confirmed draft returns the same order again.
func (s *Server) ConfirmDraft(ctx echo.Context, draftId servers.DraftId) error {
	id, err := kernel.UUIDFromBytes(draftId[:])
	if err != nil {
		return s.respondError(ctx, err)
	}
	cmd, err := commands.NewConfirmDraftCommand(id)
	if err != nil {
		return s.respondError(ctx, err)
	}

	result, err := s.confirmDraftHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.ConfirmedDraft{
		Draft: toAPIDraft(result.Draft),
		Order: toAPIOrder(queries.NewOrderView(result.Order)),
	})
}

// CreateOrder handles POST /api/v1/orders - places an order configured on the client.
// Retrying with the same Idempotency-Key returns the order created the first time.
func (s *Server) CreateOrder(ctx echo.Context, params servers.CreateOrderParams) error {
	var newOrder servers.NewOrder
	if err := ctx.Bind(&newOrder); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	key := kernel.NewUUID()
	if params.IdempotencyKey != nil {
		var err error
		if key, err = kernel.UUIDFromBytes(params.IdempotencyKey[:]); err != nil {
			return s.respondError(ctx, err)
		}
	}

	cmd, err := toCreateOrderCommand(key, newOrder)
	if err != nil {
		return s.respondError(ctx, err)
	}

	o, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.OrderCreated{
		Success: true,
		Id:      o.ID(),
		Order:   toAPIOrder(queries.NewOrderView(o)),
	})
}

// ListOrders handles GET /api/v1/orders.
func (s *Server) ListOrders(ctx echo.Context) error {
	views, err := s.listOrdersHandler.Handle(ctx.Request().Context(), queries.NewListOrdersQuery())
	if err != nil {
		return s.respondError(ctx, err)
	}

	response := make([]servers.Order, len(views))
	for i, v := range views {
		response[i] = toAPIOrder(v)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/{orderId}.
func (s *Server) GetOrder(ctx echo.Context, orderId servers.OrderId) error {
	query, err := queries.NewGetOrderQuery(orderId)
	if err != nil {
		return s.respondError(ctx, err)
	}

	view, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toAPIOrder(view))
}

// UpdateOrderStatus handles PATCH /api/v1/orders/{orderId}/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context, orderId servers.OrderId) error {
	var body servers.OrderStatusUpdate
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderId, string(body.Status))
	if err != nil {
		return s.respondError(ctx, err)
	}

	o, err := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	s.logger.InfoContext(ctx.Request().Context(), "Order status updated",
		"order_id", o.ID(), "status", o.Status().String(), "admin", adminSubject(ctx))

	return ctx.JSON(http.StatusOK, toAPIOrder(queries.NewOrderView(o)))
}

// GetOrderStats handles GET /api/v1/orders/stats.
func (s *Server) GetOrderStats(ctx echo.Context) error {
	query, err := queries.NewGetOrderStatsQuery(s.now())
	if err != nil {
		return s.respondError(ctx, err)
	}

	stats, err := s.getOrderStatsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toAPIStats(stats))
}

func (s *Server) respondError(ctx echo.Context, err error) error {
	return respondError(ctx, s.logger, err)
}
