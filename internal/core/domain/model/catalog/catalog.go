package catalog

import "fooddelivery/internal/core/domain/model/kernel"

// Category groups restaurants (pizza, sushi, ...).
type Category struct {
	ID    int64
	Name  string
	Image string
}

// Restaurant is a seller with a flat delivery fee.
type Restaurant struct {
	ID          int64
	CategoryID  int64
	Name        string
	Image       string
	DeliveryFee kernel.Money
}

// Product is a menu entry. Inactive products stay readable but cannot be ordered.
type Product struct {
	ID           int64
	RestaurantID int64
	Name         string
	Description  string
	Image        string
	Price        kernel.Money
	Active       bool
}

// ProductsByID indexes products by their identifier.
func ProductsByID(products []Product) map[int64]Product {
	index := make(map[int64]Product, len(products))
	for _, p := range products {
		index[p.ID] = p
	}
	return index
}
