package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/order"
)

// EventPublisher delivers order events to other services once a transaction committed.
type EventPublisher interface {
	Publish(ctx context.Context, events ...order.Event) error
}
