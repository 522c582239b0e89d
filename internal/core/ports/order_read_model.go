package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
)

// OrderItemView is a line item joined with its product display fields.
type OrderItemView struct {
	ProductName  string
	ProductImage string
	Quantity     int
	Subtotal     kernel.Money
}

// OrderView is an order header joined with restaurant and category display fields.
type OrderView struct {
	OrderID         int64
	RestaurantName  string
	RestaurantImage string
	CategoryImage   string
	Subtotal        kernel.Money
	DeliveryFee     kernel.Money
	Total           kernel.Money
	OutForDelivery  bool
	Delivered       bool
	Items           []OrderItemView
}

// TotalsMismatch describes an order whose stored totals no longer reconcile.
type TotalsMismatch struct {
	OrderID       int64
	Subtotal      kernel.Money
	DeliveryFee   kernel.Money
	Total         kernel.Money
	ItemsSubtotal kernel.Money
}

// OrderReadModel serves the query side of orders.
type OrderReadModel interface {
	// ListOrderSummaries returns the consumer's orders with the given delivered
	// flag, most recent first, without items.
	ListOrderSummaries(ctx context.Context, consumerID int64, delivered bool) ([]OrderView, error)

	// ListOrderItems returns the items of all given orders keyed by order id.
	ListOrderItems(ctx context.Context, orderIDs []int64) (map[int64][]OrderItemView, error)

	// FindTotalsMismatches returns every order whose subtotal differs from the sum
	// of its items or whose total differs from subtotal plus delivery fee.
	FindTotalsMismatches(ctx context.Context) ([]TotalsMismatch, error)
}
