package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/catalog"
)

// RestaurantReader loads restaurants by id.
type RestaurantReader interface {
	// GetRestaurant returns an errs.ObjectNotFoundError when the restaurant does not exist.
	GetRestaurant(ctx context.Context, id int64) (catalog.Restaurant, error)
}

// CatalogReader is the read side used when pricing carts.
type CatalogReader interface {
	RestaurantReader

	// GetProducts loads every distinct product of ids in one call. Missing ids
	// are simply absent from the result.
	GetProducts(ctx context.Context, ids []int64) ([]catalog.Product, error)
}

// CatalogRepository is the catalog view available inside a unit of work.
type CatalogRepository interface {
	CatalogReader

	// LockProducts loads products like GetProducts and holds a shared row lock on
	// them until the surrounding transaction ends, so they cannot be deactivated
	// while an order referencing them is being written.
	LockProducts(ctx context.Context, ids []int64) ([]catalog.Product, error)
}
