// Package http exposes the order lifecycle over a REST API built on Echo.
// Validation and transition failures map to 422 with a list of rule
// violations, missing orders to 404, everything else to 500.
package http

import (
	"errors"
	"net/http"
	"strings"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"
	"orders/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createOrderHandler  commands.CreateOrderCommandHandler
	advanceOrderHandler commands.AdvanceOrderCommandHandler
	updateOrderHandler  commands.UpdateOrderCommandHandler
	deleteOrderHandler  commands.DeleteOrderCommandHandler

	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler
	getOrderHandler        queries.GetOrderQueryHandler
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	advanceOrderHandler commands.AdvanceOrderCommandHandler,
	updateOrderHandler commands.UpdateOrderCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:     createOrderHandler,
		advanceOrderHandler:    advanceOrderHandler,
		updateOrderHandler:     updateOrderHandler,
		deleteOrderHandler:     deleteOrderHandler,
		getActiveOrdersHandler: getActiveOrdersHandler,
		getOrderHandler:        getOrderHandler,
	}
}

// RegisterRoutes mounts all order endpoints under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetOrders)
	api.GET("/orders/:id", s.GetOrder)
	api.PATCH("/orders/:id", s.UpdateOrder)
	api.DELETE("/orders/:id", s.DeleteOrder)
	api.POST("/orders/:id/process", s.advanceRoute(order.EventProcess))
	api.POST("/orders/:id/complete", s.advanceRoute(order.EventComplete))
	api.POST("/orders/:id/cancel", s.advanceRoute(order.EventCancel))
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body NewOrder
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	items, err := toItemArgs(body.Items)
	if err != nil {
		return validationError(ctx, err)
	}

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), body.CustomerEmail, items)
	if err != nil {
		return validationError(ctx, err)
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.mapError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, ports.NewOrderSnapshot(created))
}

// GetOrders handles GET /api/v1/orders.
func (s *Server) GetOrders(ctx echo.Context) error {
	query := queries.NewGetActiveOrdersQuery()

	orders, err := s.getActiveOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.mapError(ctx, err)
	}

	response := make([]ports.OrderSnapshot, 0, len(orders))
	for _, o := range orders {
		response = append(response, snapshotFromQuery(o))
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	id, err := orderIDParam(ctx)
	if err != nil {
		return notFound(ctx)
	}

	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return s.mapError(ctx, err)
	}

	result, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, snapshotFromQuery(result))
}

// UpdateOrder handles PATCH /api/v1/orders/:id.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	id, err := orderIDParam(ctx)
	if err != nil {
		return notFound(ctx)
	}

	var body OrderPatch
	if err = ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	items, err := toItemArgs(body.Items)
	if err != nil {
		return validationError(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderCommand(id, body.CustomerEmail, items)
	if err != nil {
		return validationError(ctx, err)
	}

	updated, err := s.updateOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ports.NewOrderSnapshot(updated))
}

// DeleteOrder handles DELETE /api/v1/orders/:id.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	id, err := orderIDParam(ctx)
	if err != nil {
		return notFound(ctx)
	}

	cmd, err := commands.NewDeleteOrderCommand(id)
	if err != nil {
		return s.mapError(ctx, err)
	}

	if err = s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.mapError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// advanceRoute builds the handler for one lifecycle transition endpoint.
func (s *Server) advanceRoute(event order.Event) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		id, err := orderIDParam(ctx)
		if err != nil {
			return notFound(ctx)
		}

		cmd, err := commands.NewAdvanceOrderCommand(id, event)
		if err != nil {
			return s.mapError(ctx, err)
		}

		updated, err := s.advanceOrderHandler.Handle(ctx.Request().Context(), cmd)
		if err != nil {
			return s.mapError(ctx, err)
		}

		return ctx.JSON(http.StatusOK, ports.NewOrderSnapshot(updated))
	}
}

func orderIDParam(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param("id"))
}

func notFound(ctx echo.Context) error {
	return ctx.JSON(http.StatusNotFound, Error{
		Code:    http.StatusNotFound,
		Message: "Order not found",
	})
}

func validationError(ctx echo.Context, err error) error {
	return ctx.JSON(http.StatusUnprocessableEntity, ValidationErrors{
		Errors: strings.Split(err.Error(), "\n"),
	})
}

// mapError translates application errors into HTTP responses.
func (s *Server) mapError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return notFound(ctx)
	case errors.Is(err, order.ErrInvalidTransition),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return validationError(ctx, err)
	default:
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}
