// Package readmodel serves order listings and reconciliation reports with raw SQL
// over the tables written by orderrepo and catalogrepo.
package readmodel

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/ports"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

const (
	listOrderSummariesSQL = `
		SELECT
			o.id               AS order_id,
			r.name             AS restaurant_name,
			r.image            AS restaurant_image,
			c.image            AS category_image,
			o.subtotal         AS subtotal,
			o.delivery_fee     AS delivery_fee,
			o.total            AS total,
			o.out_for_delivery AS out_for_delivery,
			o.delivered        AS delivered
		FROM orders o
		JOIN restaurants r ON r.id = o.restaurant_id
		LEFT JOIN categories c ON c.id = r.category_id
		WHERE o.consumer_id = ? AND o.delivered = ?
		ORDER BY o.id DESC`

	listOrderItemsSQL = `
		SELECT
			oi.order_id AS order_id,
			p.name      AS product_name,
			p.image     AS product_image,
			oi.quantity AS quantity,
			oi.subtotal AS subtotal
		FROM order_items oi
		JOIN products p ON p.id = oi.product_id
		WHERE oi.order_id = ANY(?)
		ORDER BY oi.order_id, oi.id`

	findTotalsMismatchesSQL = `
		SELECT
			o.id           AS order_id,
			o.subtotal     AS subtotal,
			o.delivery_fee AS delivery_fee,
			o.total        AS total,
			COALESCE(SUM(oi.subtotal), 0)::bigint AS items_subtotal
		FROM orders o
		LEFT JOIN order_items oi ON oi.order_id = o.id
		GROUP BY o.id
		HAVING o.subtotal <> COALESCE(SUM(oi.subtotal), 0)::bigint
			OR o.total <> o.subtotal + o.delivery_fee
		ORDER BY o.id`
)

type orderSummaryRow struct {
	OrderID         int64
	RestaurantName  string
	RestaurantImage string
	CategoryImage   *string
	Subtotal        int64
	DeliveryFee     int64
	Total           int64
	OutForDelivery  bool
	Delivered       bool
}

type orderItemRow struct {
	OrderID      int64
	ProductName  string
	ProductImage string
	Quantity     int
	Subtotal     int64
}

type mismatchRow struct {
	OrderID       int64
	Subtotal      int64
	DeliveryFee   int64
	Total         int64
	ItemsSubtotal int64
}

// GormOrderReadModel implements ports.OrderReadModel.
type GormOrderReadModel struct {
	db *gorm.DB
}

func NewGormOrderReadModel(db *gorm.DB) *GormOrderReadModel {
	return &GormOrderReadModel{db: db}
}

func (m *GormOrderReadModel) ListOrderSummaries(
	ctx context.Context,
	consumerID int64,
	delivered bool,
) ([]ports.OrderView, error) {
	var rows []orderSummaryRow
	if err := m.db.WithContext(ctx).Raw(listOrderSummariesSQL, consumerID, delivered).Scan(&rows).Error; err != nil {
		return nil, err
	}

	views := make([]ports.OrderView, 0, len(rows))
	for _, row := range rows {
		view := ports.OrderView{
			OrderID:         row.OrderID,
			RestaurantName:  row.RestaurantName,
			RestaurantImage: row.RestaurantImage,
			Subtotal:        kernel.Money(row.Subtotal),
			DeliveryFee:     kernel.Money(row.DeliveryFee),
			Total:           kernel.Money(row.Total),
			OutForDelivery:  row.OutForDelivery,
			Delivered:       row.Delivered,
		}
		if row.CategoryImage != nil {
			view.CategoryImage = *row.CategoryImage
		}
		views = append(views, view)
	}
	return views, nil
}

// ListOrderItems loads the items of all orderIDs in one statement.
func (m *GormOrderReadModel) ListOrderItems(
	ctx context.Context,
	orderIDs []int64,
) (map[int64][]ports.OrderItemView, error) {
	items := make(map[int64][]ports.OrderItemView, len(orderIDs))
	if len(orderIDs) == 0 {
		return items, nil
	}

	var rows []orderItemRow
	if err := m.db.WithContext(ctx).Raw(listOrderItemsSQL, pq.Int64Array(orderIDs)).Scan(&rows).Error; err != nil {
		return nil, err
	}

	for _, row := range rows {
		items[row.OrderID] = append(items[row.OrderID], ports.OrderItemView{
			ProductName:  row.ProductName,
			ProductImage: row.ProductImage,
			Quantity:     row.Quantity,
			Subtotal:     kernel.Money(row.Subtotal),
		})
	}
	return items, nil
}

func (m *GormOrderReadModel) FindTotalsMismatches(ctx context.Context) ([]ports.TotalsMismatch, error) {
	var rows []mismatchRow
	if err := m.db.WithContext(ctx).Raw(findTotalsMismatchesSQL).Scan(&rows).Error; err != nil {
		return nil, err
	}

	mismatches := make([]ports.TotalsMismatch, 0, len(rows))
	for _, row := range rows {
		mismatches = append(mismatches, ports.TotalsMismatch{
			OrderID:       row.OrderID,
			Subtotal:      kernel.Money(row.Subtotal),
			DeliveryFee:   kernel.Money(row.DeliveryFee),
			Total:         kernel.Money(row.Total),
			ItemsSubtotal: kernel.Money(row.ItemsSubtotal),
		})
	}
	return mismatches, nil
}
