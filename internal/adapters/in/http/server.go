package http

import (
	"context"
	"log/slog"
	"net/http"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/core/ports"

	"github.com/labstack/echo/v4"
)

// Use case handlers the server dispatches to.
type (
	PriceCartHandler interface {
		Handle(ctx context.Context, query queries.PriceCartQuery) (services.Quote, error)
	}

	ListOrdersHandler interface {
		Handle(ctx context.Context, query queries.ListOrdersQuery) ([]ports.OrderView, error)
	}

	RegisterOrderHandler interface {
		Handle(ctx context.Context, cmd commands.RegisterOrderCommand) error
	}

	ChangeDeliveryStatusHandler interface {
		Handle(ctx context.Context, cmd commands.ChangeDeliveryStatusCommand) error
	}
)

// Server implements ServerInterface. It translates requests into commands and
// queries and maps their errors to statuses.
type Server struct {
	// Command handlers
	registerOrderHandler        RegisterOrderHandler
	changeDeliveryStatusHandler ChangeDeliveryStatusHandler

	// Query handlers
	priceCartHandler  PriceCartHandler
	listOrdersHandler ListOrdersHandler

	logger *slog.Logger
}

var _ ServerInterface = (*Server)(nil)

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	registerOrderHandler RegisterOrderHandler,
	changeDeliveryStatusHandler ChangeDeliveryStatusHandler,
	priceCartHandler PriceCartHandler,
	listOrdersHandler ListOrdersHandler,
	logger *slog.Logger,
) *Server {
	return &Server{
		registerOrderHandler:        registerOrderHandler,
		changeDeliveryStatusHandler: changeDeliveryStatusHandler,
		priceCartHandler:            priceCartHandler,
		listOrdersHandler:           listOrdersHandler,
		logger:                      logger.With("component", "http"),
	}
}

// PriceCart handles POST /api/v1/cart/quote. Unknown restaurants or products are a 400.
func (s *Server) PriceCart(ctx echo.Context) error {
	var request QuoteRequest
	if err := ctx.Bind(&request); err != nil {
		return respondBadRequest(ctx, bindError(err))
	}
	if err := ctx.Validate(&request); err != nil {
		return respondBadRequest(ctx, err)
	}

	query, err := queries.NewPriceCartQuery(request.toCartLines())
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	quote, err := s.priceCartHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, s.logger, err, http.StatusBadRequest)
	}

	return ctx.JSON(http.StatusOK, quoteFromDomain(quote))
}

// RegisterOrder handles POST /api/v1/orders. Every business failure is a 400.
func (s *Server) RegisterOrder(ctx echo.Context) error {
	var request NewOrder
	if err := ctx.Bind(&request); err != nil {
		return respondBadRequest(ctx, bindError(err))
	}
	if err := ctx.Validate(&request); err != nil {
		return respondBadRequest(ctx, err)
	}

	cmd, err := commands.NewRegisterOrderCommand(ConsumerID(ctx), request.toSubmission())
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	if err := s.registerOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, s.logger, err, http.StatusBadRequest)
	}

	return ctx.NoContent(http.StatusOK)
}

// ListOrders handles GET /api/v1/orders. No matching orders is a 404.
func (s *Server) ListOrders(ctx echo.Context, params ListOrdersParams) error {
	delivered := params.Delivered != nil && *params.Delivered

	query, err := queries.NewListOrdersQuery(ConsumerID(ctx), delivered)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	views, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, s.logger, err, http.StatusNotFound)
	}

	return ctx.JSON(http.StatusOK, ordersFromViews(views))
}

// MarkDelivered handles POST /api/v1/orders/{id}/deliver.
func (s *Server) MarkDelivered(ctx echo.Context, id int64) error {
	cmd, err := commands.NewMarkDeliveredCommand(id, ConsumerID(ctx))
	return s.changeDeliveryStatus(ctx, cmd, err)
}

// MarkUndelivered handles POST /api/v1/orders/{id}/undeliver.
func (s *Server) MarkUndelivered(ctx echo.Context, id int64) error {
	cmd, err := commands.NewMarkUndeliveredCommand(id, ConsumerID(ctx))
	return s.changeDeliveryStatus(ctx, cmd, err)
}

func (s *Server) changeDeliveryStatus(ctx echo.Context, cmd commands.ChangeDeliveryStatusCommand, err error) error {
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	if err := s.changeDeliveryStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, s.logger, err, http.StatusNotFound)
	}

	return ctx.NoContent(http.StatusOK)
}
