// Package queries contains read-only operations: cart pricing, order listing and
// totals reconciliation. Handlers depend on ports only.
package queries

import (
	"errors"

	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/pkg/guard"
)

var ErrPriceCartQueryIsNotConstructed = errors.New(
	"PriceCartQuery must be created via NewPriceCartQuery constructor",
)

// PriceCartQuery prices a cart. All lines belong to the restaurant of the first line.
//
// Example:
//
//	query, err := NewPriceCartQuery([]services.CartLine{
//	    {RestaurantID: 3, ProductID: 1, Quantity: 2},
//	})
//	quote, err := handler.Handle(ctx, query)
//	fmt.Println(quote.Subtotal, quote.Total)
type PriceCartQuery struct {
	lines []services.CartLine

	guard guard.ConstructorGuard
}

// NewPriceCartQuery rejects empty carts and non-positive ids or quantities.
func NewPriceCartQuery(lines []services.CartLine) (PriceCartQuery, error) {
	if err := services.ValidateCart(lines); err != nil {
		return PriceCartQuery{}, err
	}

	return PriceCartQuery{
		lines: append([]services.CartLine(nil), lines...),
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (q PriceCartQuery) Validate() error {
	return q.guard.Validate(ErrPriceCartQueryIsNotConstructed)
}

func (q PriceCartQuery) Lines() []services.CartLine {
	return append([]services.CartLine(nil), q.lines...)
}

// RestaurantID is the restaurant of the first line.
func (q PriceCartQuery) RestaurantID() int64 {
	if len(q.lines) == 0 {
		return 0
	}
	return q.lines[0].RestaurantID
}

// ProductIDs returns the distinct product ids in cart order.
func (q PriceCartQuery) ProductIDs() []int64 {
	seen := make(map[int64]struct{}, len(q.lines))
	ids := make([]int64, 0, len(q.lines))
	for _, line := range q.lines {
		if _, ok := seen[line.ProductID]; ok {
			continue
		}
		seen[line.ProductID] = struct{}{}
		ids = append(ids, line.ProductID)
	}
	return ids
}
