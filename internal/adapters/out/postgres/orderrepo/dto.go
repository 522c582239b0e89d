// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// An order is stored as one row in orders plus one row per line item in order_items.
package orderrepo

import (
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
)

// OrderDTO represents the order header. Amounts are stored in cents.
type OrderDTO struct {
	ID             int64 `gorm:"primaryKey;autoIncrement"`
	ConsumerID     int64 `gorm:"not null;index:idx_orders_consumer_delivered,priority:1"`
	RestaurantID   int64 `gorm:"not null;index"`
	Subtotal       int64 `gorm:"not null"`
	DeliveryFee    int64 `gorm:"not null"`
	Total          int64 `gorm:"not null"`
	OutForDelivery bool  `gorm:"not null;default:false"`
	Delivered      bool  `gorm:"not null;default:false;index:idx_orders_consumer_delivered,priority:2"`
	CreatedAt      time.Time

	Items []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO is a line item with the quantity and prices the client submitted.
type OrderItemDTO struct {
	ID        int64 `gorm:"primaryKey;autoIncrement"`
	OrderID   int64 `gorm:"not null;index"`
	ProductID int64 `gorm:"not null;index"`
	Quantity  int   `gorm:"not null"`
	UnitPrice int64 `gorm:"not null"`
	Subtotal  int64 `gorm:"not null"`
}

func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts the order header. Items are mapped separately once the
// header has its identifier.
func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:             aggregate.ID(),
		ConsumerID:     aggregate.ConsumerID(),
		RestaurantID:   aggregate.RestaurantID(),
		Subtotal:       aggregate.Subtotal().Cents(),
		DeliveryFee:    aggregate.DeliveryFee().Cents(),
		Total:          aggregate.Total().Cents(),
		OutForDelivery: aggregate.OutForDelivery(),
		Delivered:      aggregate.Delivered(),
	}
}

func itemsFromDomain(orderID int64, items []order.LineItem) []OrderItemDTO {
	dtos := make([]OrderItemDTO, 0, len(items))
	for _, item := range items {
		dtos = append(dtos, OrderItemDTO{
			OrderID:   orderID,
			ProductID: item.ProductID(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice().Cents(),
			Subtotal:  item.Subtotal().Cents(),
		})
	}
	return dtos
}

// toDomain rebuilds an order from its header and whatever items were loaded.
func toDomain(dto OrderDTO) (*order.Order, error) {
	items := make([]order.LineItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, err := order.NewLineItem(
			itemDTO.ProductID,
			itemDTO.Quantity,
			kernel.Money(itemDTO.UnitPrice),
			kernel.Money(itemDTO.Subtotal),
		)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		dto.ID,
		dto.ConsumerID,
		dto.RestaurantID,
		kernel.Money(dto.Subtotal),
		kernel.Money(dto.DeliveryFee),
		kernel.Money(dto.Total),
		dto.OutForDelivery,
		dto.Delivered,
		items,
	)
}
