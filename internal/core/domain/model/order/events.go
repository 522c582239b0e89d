package order

import "fooddelivery/internal/core/domain/model/kernel"

const (
	EventRegistered            = "order.registered"
	EventDeliveryStatusChanged = "order.delivery_changed"
)

// Event is a fact raised by the Order aggregate and published after commit.
type Event interface {
	Name() string
	OrderID() int64
}

// Registered is raised once the order header received its identifier.
type Registered struct {
	ID           int64        `json:"order_id"`
	ConsumerID   int64        `json:"consumer_id"`
	RestaurantID int64        `json:"restaurant_id"`
	Total        kernel.Money `json:"total"`
	ItemCount    int          `json:"item_count"`
}

func (e Registered) Name() string   { return EventRegistered }
func (e Registered) OrderID() int64 { return e.ID }

// DeliveryStatusChanged is raised whenever the delivered flag is set, even to its current value.
type DeliveryStatusChanged struct {
	ID         int64 `json:"order_id"`
	ConsumerID int64 `json:"consumer_id"`
	Delivered  bool  `json:"delivered"`
}

func (e DeliveryStatusChanged) Name() string   { return EventDeliveryStatusChanged }
func (e DeliveryStatusChanged) OrderID() int64 { return e.ID }
