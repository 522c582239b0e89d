package catalogrepo

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/catalog"
	"fooddelivery/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCatalogRepository implements ports.CatalogRepository using GORM.
// Bound to a transaction it can also lock products; bound to the plain
// connection it serves cart pricing.
type GormCatalogRepository struct {
	db *gorm.DB
}

func NewGormCatalogRepository(db *gorm.DB) *GormCatalogRepository {
	return &GormCatalogRepository{db: db}
}

// GetRestaurant retrieves a restaurant by ID.
func (r *GormCatalogRepository) GetRestaurant(ctx context.Context, id int64) (catalog.Restaurant, error) {
	var dto RestaurantDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return catalog.Restaurant{}, errs.NewObjectNotFoundError("restaurant", id)
		}
		return catalog.Restaurant{}, err
	}

	return restaurantToDomain(dto), nil
}

// GetProducts retrieves every product of ids in a single statement.
func (r *GormCatalogRepository) GetProducts(ctx context.Context, ids []int64) ([]catalog.Product, error) {
	return r.findProducts(r.db.WithContext(ctx), ids)
}

// LockProducts is GetProducts with SELECT ... FOR SHARE. The lock lasts until the
// surrounding transaction ends; outside a transaction it is released immediately.
func (r *GormCatalogRepository) LockProducts(ctx context.Context, ids []int64) ([]catalog.Product, error) {
	return r.findProducts(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "SHARE"}), ids)
}

func (r *GormCatalogRepository) findProducts(db *gorm.DB, ids []int64) ([]catalog.Product, error) {
	if len(ids) == 0 {
		return []catalog.Product{}, nil
	}

	var dtos []ProductDTO
	if err := db.Where("id IN ?", ids).Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	products := make([]catalog.Product, 0, len(dtos))
	for _, dto := range dtos {
		products = append(products, productToDomain(dto))
	}
	return products, nil
}
