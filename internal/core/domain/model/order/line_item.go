package order

import (
	"errors"
	"fmt"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
)

// MaxQuantity bounds the quantity of a single line.
const MaxQuantity = 10_000

// LineItem is one product of an order with the price charged at order time.
type LineItem struct {
	productID int64
	quantity  int
	unitPrice kernel.Money
	subtotal  kernel.Money
}

// NewLineItem validates and builds a line item. All violations are reported together.
func NewLineItem(productID int64, quantity int, unitPrice, subtotal kernel.Money) (LineItem, error) {
	var violations []error

	if productID <= 0 {
		violations = append(violations, errs.NewValueIsRequiredError("product id"))
	}
	if quantity <= 0 || quantity > MaxQuantity {
		violations = append(violations, errs.NewValueIsOutOfRangeError("quantity", quantity, 1, MaxQuantity))
	}
	if err := unitPrice.Validate(); err != nil {
		violations = append(violations, errs.NewValueIsInvalidErrorWithCause("price", err))
	}
	if err := subtotal.Validate(); err != nil {
		violations = append(violations, errs.NewValueIsInvalidErrorWithCause("subtotal", err))
	}
	if len(violations) == 0 {
		expected, err := unitPrice.Times(quantity)
		switch {
		case err != nil:
			violations = append(violations, errs.NewValueIsInvalidErrorWithCause("subtotal", err))
		case expected != subtotal:
			violations = append(violations, errs.NewValueIsInvalidErrorWithCause("subtotal",
				fmt.Errorf("%s is not %d x %s", subtotal, quantity, unitPrice)))
		}
	}

	if err := errors.Join(violations...); err != nil {
		return LineItem{}, err
	}

	return LineItem{
		productID: productID,
		quantity:  quantity,
		unitPrice: unitPrice,
		subtotal:  subtotal,
	}, nil
}

func (li LineItem) ProductID() int64 {
	return li.productID
}

func (li LineItem) Quantity() int {
	return li.quantity
}

func (li LineItem) UnitPrice() kernel.Money {
	return li.unitPrice
}

func (li LineItem) Subtotal() kernel.Money {
	return li.subtotal
}
