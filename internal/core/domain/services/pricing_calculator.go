package services

import (
	"errors"

	"fooddelivery/internal/core/domain/model/catalog"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"
)

// CartLine is one entry of a client cart before pricing.
type CartLine struct {
	RestaurantID int64
	ProductID    int64
	Quantity     int
}

// QuoteLine is a cart line priced with the product's current price.
type QuoteLine struct {
	Product  catalog.Product
	Quantity int
	Subtotal kernel.Money
}

// Quote is the priced cart returned to the client, which echoes it back when ordering.
type Quote struct {
	Restaurant catalog.Restaurant
	Lines      []QuoteLine
	Subtotal   kernel.Money
	Total      kernel.Money
}

// PricingCalculator turns a cart into a Quote. It does not look at the product
// active flag: that check belongs to order registration.
type PricingCalculator struct{}

func NewPricingCalculator() PricingCalculator {
	return PricingCalculator{}
}

// Price computes line subtotals, the cart subtotal and the total including the
// restaurant delivery fee. Every product of the cart must be present in products,
// otherwise no quote is produced.
func (PricingCalculator) Price(
	restaurant catalog.Restaurant,
	products map[int64]catalog.Product,
	lines []CartLine,
) (Quote, error) {
	if len(lines) == 0 {
		return Quote{}, errs.NewValueIsRequiredError("cart")
	}

	quote := Quote{
		Restaurant: restaurant,
		Lines:      make([]QuoteLine, 0, len(lines)),
	}
	for _, line := range lines {
		product, ok := products[line.ProductID]
		if !ok {
			return Quote{}, errs.NewObjectNotFoundError("product", line.ProductID)
		}

		subtotal, err := product.Price.Times(line.Quantity)
		if err != nil {
			return Quote{}, errs.NewValueIsInvalidErrorWithCause("quantity", err)
		}
		quote.Lines = append(quote.Lines, QuoteLine{
			Product:  product,
			Quantity: line.Quantity,
			Subtotal: subtotal,
		})
		if quote.Subtotal, err = quote.Subtotal.Add(subtotal); err != nil {
			return Quote{}, errs.NewValueIsInvalidErrorWithCause("subtotal", err)
		}
	}

	total, err := quote.Subtotal.Add(restaurant.DeliveryFee)
	if err != nil {
		return Quote{}, errs.NewValueIsInvalidErrorWithCause("total", err)
	}
	quote.Total = total

	return quote, nil
}

// ValidateCart checks the cart shape before any lookup: at least one line, a
// restaurant on the first line, positive product ids and quantities within
// order.MaxQuantity.
func ValidateCart(lines []CartLine) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("cart")
	}

	var violations []error
	if lines[0].RestaurantID <= 0 {
		violations = append(violations, errs.NewValueIsRequiredError("restaurant id"))
	}
	for _, line := range lines {
		if line.ProductID <= 0 {
			violations = append(violations, errs.NewValueIsRequiredError("product id"))
		}
		if line.Quantity <= 0 || line.Quantity > order.MaxQuantity {
			violations = append(violations, errs.NewValueIsOutOfRangeError("quantity", line.Quantity, 1, order.MaxQuantity))
		}
	}
	return errors.Join(violations...)
}
