package services

import (
	"errors"
	"fmt"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"
)

// SubmittedProduct is a product line as the client sends it when placing an order.
type SubmittedProduct struct {
	ProductID int64
	Quantity  int
	Price     kernel.Money
	Subtotal  kernel.Money
}

// OrderSubmission is the client's proposed order, usually built from a Quote.
type OrderSubmission struct {
	RestaurantID int64
	Subtotal     kernel.Money
	DeliveryFee  kernel.Money
	Total        kernel.Money
	Products     []SubmittedProduct
}

// ProductIDs lists the submitted product ids in submission order.
func (s OrderSubmission) ProductIDs() []int64 {
	ids := make([]int64, 0, len(s.Products))
	for _, p := range s.Products {
		ids = append(ids, p.ProductID)
	}
	return ids
}

// OrderValidator checks a submission for structural and arithmetic consistency.
// It is a pure function of its input and never touches the store.
type OrderValidator struct{}

func NewOrderValidator() OrderValidator {
	return OrderValidator{}
}

// Validate returns nil for a consistent submission, otherwise every violation
// joined into one error. Each violation unwraps to a validation sentinel of errs.
func (OrderValidator) Validate(s OrderSubmission) error {
	var violations []error

	if s.RestaurantID <= 0 {
		violations = append(violations, errs.NewValueIsRequiredError("restaurant id"))
	}
	if len(s.Products) == 0 {
		violations = append(violations, errs.NewValueIsRequiredError("products"))
	}

	subtotals := make([]kernel.Money, 0, len(s.Products))
	for i, p := range s.Products {
		if _, err := order.NewLineItem(p.ProductID, p.Quantity, p.Price, p.Subtotal); err != nil {
			violations = append(violations, fmt.Errorf("products[%d]: %w", i, err))
		}
		subtotals = append(subtotals, p.Subtotal)
	}

	violations = append(violations, order.ReconcileTotals(s.Subtotal, s.DeliveryFee, s.Total, subtotals))

	return errors.Join(violations...)
}

// LineItems converts a submission that passed Validate into order line items.
func (s OrderSubmission) LineItems() ([]order.LineItem, error) {
	items := make([]order.LineItem, 0, len(s.Products))
	for _, p := range s.Products {
		item, err := order.NewLineItem(p.ProductID, p.Quantity, p.Price, p.Subtotal)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
