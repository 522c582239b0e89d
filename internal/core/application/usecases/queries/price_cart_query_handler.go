package queries

import (
	"context"

	"fooddelivery/internal/core/domain/model/catalog"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/core/ports"
)

// PriceCartQueryHandler resolves the restaurant and products of a cart and prices it.
// It has no side effects.
type PriceCartQueryHandler struct {
	catalog    ports.CatalogReader
	calculator services.PricingCalculator
}

func NewPriceCartQueryHandler(catalog ports.CatalogReader) PriceCartQueryHandler {
	return PriceCartQueryHandler{
		catalog:    catalog,
		calculator: services.NewPricingCalculator(),
	}
}

// Handle returns a not-found error when the restaurant or any product is missing.
func (h PriceCartQueryHandler) Handle(ctx context.Context, query PriceCartQuery) (services.Quote, error) {
	if err := query.Validate(); err != nil {
		return services.Quote{}, err
	}

	restaurant, err := h.catalog.GetRestaurant(ctx, query.RestaurantID())
	if err != nil {
		return services.Quote{}, err
	}

	products, err := h.catalog.GetProducts(ctx, query.ProductIDs())
	if err != nil {
		return services.Quote{}, err
	}

	return h.calculator.Price(restaurant, catalog.ProductsByID(products), query.Lines())
}
