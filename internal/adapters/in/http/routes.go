package http

import (
	"fmt"

	"fooddelivery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// ServerInterface lists the operations of openapi.yaml.
type ServerInterface interface {
	// (POST /cart/quote)
	PriceCart(ctx echo.Context) error
	// (GET /orders)
	ListOrders(ctx echo.Context, params ListOrdersParams) error
	// (POST /orders)
	RegisterOrder(ctx echo.Context) error
	// (POST /orders/{id}/deliver)
	MarkDelivered(ctx echo.Context, id int64) error
	// (POST /orders/{id}/undeliver)
	MarkUndelivered(ctx echo.Context, id int64) error
}

// ServerInterfaceWrapper converts path and query parameters before calling the handler.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func (w *ServerInterfaceWrapper) PriceCart(ctx echo.Context) error {
	return w.Handler.PriceCart(ctx)
}

func (w *ServerInterfaceWrapper) ListOrders(ctx echo.Context) error {
	var params ListOrdersParams

	err := runtime.BindQueryParameter("form", true, false, "delivered", ctx.QueryParams(), &params.Delivered)
	if err != nil {
		return respondBadRequest(ctx, errs.NewValueIsInvalidErrorWithCause("delivered",
			fmt.Errorf("invalid format for parameter delivered: %w", err)))
	}

	return w.Handler.ListOrders(ctx, params)
}

func (w *ServerInterfaceWrapper) RegisterOrder(ctx echo.Context) error {
	return w.Handler.RegisterOrder(ctx)
}

func (w *ServerInterfaceWrapper) MarkDelivered(ctx echo.Context) error {
	id, err := bindOrderID(ctx)
	if err != nil {
		return respondBadRequest(ctx, err)
	}
	return w.Handler.MarkDelivered(ctx, id)
}

func (w *ServerInterfaceWrapper) MarkUndelivered(ctx echo.Context) error {
	id, err := bindOrderID(ctx)
	if err != nil {
		return respondBadRequest(ctx, err)
	}
	return w.Handler.MarkUndelivered(ctx, id)
}

func bindOrderID(ctx echo.Context) (int64, error) {
	var id int64
	err := runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("invalid format for parameter id: %w", err))
	}
	return id, nil
}

// EchoRouter is satisfied by *echo.Echo and *echo.Group.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers mounts every operation on router under baseURL.
func RegisterHandlers(router EchoRouter, si ServerInterface, baseURL string, m ...echo.MiddlewareFunc) {
	wrapper := ServerInterfaceWrapper{Handler: si}

	router.POST(baseURL+"/cart/quote", wrapper.PriceCart, m...)
	router.GET(baseURL+"/orders", wrapper.ListOrders, m...)
	router.POST(baseURL+"/orders", wrapper.RegisterOrder, m...)
	router.POST(baseURL+"/orders/:id/deliver", wrapper.MarkDelivered, m...)
	router.POST(baseURL+"/orders/:id/undeliver", wrapper.MarkUndelivered, m...)
}
