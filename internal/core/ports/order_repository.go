package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for the Order aggregate.
type OrderRepository interface {
	// Add persists the order header and all of its line items. On success the
	// aggregate receives its identifier through MarkPersisted. Callers run Add
	// inside a unit of work so that a failure leaves no rows behind.
	Add(ctx context.Context, aggregate *order.Order) error

	// GetForConsumer loads an order header owned by consumerID.
	// Returns an errs.ObjectNotFoundError when no such order exists for that consumer.
	GetForConsumer(ctx context.Context, orderID, consumerID int64) (*order.Order, error)

	// UpdateDeliveryStatus writes the delivered flag of an existing order.
	// Returns an errs.WriteFailedError when no row was affected.
	UpdateDeliveryStatus(ctx context.Context, aggregate *order.Order) error
}
