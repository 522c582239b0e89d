// Package order provides the Order aggregate of the food-delivery service.
//
// The package includes:
//   - Order: header with ownership, totals and the delivered flag
//   - LineItem: one product frozen at order time (quantity, unit price, subtotal)
//   - Registered and DeliveryStatusChanged: domain events raised by the aggregate
//
// Key business rules:
//   - An order belongs to exactly one consumer and references one restaurant
//   - An order has at least one line item
//   - Every line item has quantity > 0 and subtotal == quantity * unit price
//   - subtotal == sum of line item subtotals and total == subtotal + delivery fee
//   - After creation only the delivered flag changes
package order
