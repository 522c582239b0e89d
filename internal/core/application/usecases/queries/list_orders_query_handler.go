package queries

import (
	"context"

	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"
)

// ListOrdersQueryHandler assembles order views: one query for the headers and one
// batched query for the items of all of them.
type ListOrdersQueryHandler struct {
	readModel ports.OrderReadModel
}

func NewListOrdersQueryHandler(readModel ports.OrderReadModel) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{readModel: readModel}
}

// Handle returns orders most recent first. An empty result is reported as an
// errs.ObjectNotFoundError: callers treat it as "no data", not as a failure.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]ports.OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.readModel.ListOrderSummaries(ctx, query.ConsumerID(), query.Delivered())
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, errs.NewObjectNotFoundError("orders", "no orders found")
	}

	ids := make([]int64, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.OrderID)
	}

	items, err := h.readModel.ListOrderItems(ctx, ids)
	if err != nil {
		return nil, err
	}

	for i := range orders {
		orders[i].Items = items[orders[i].OrderID]
		if orders[i].Items == nil {
			orders[i].Items = []ports.OrderItemView{}
		}
	}

	return orders, nil
}
