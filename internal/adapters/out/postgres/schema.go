package postgres

import (
	"fmt"

	"fooddelivery/internal/adapters/out/postgres/catalogrepo"
	"fooddelivery/internal/adapters/out/postgres/consumerrepo"
	"fooddelivery/internal/adapters/out/postgres/orderrepo"

	"gorm.io/gorm"
)

// foreignKeys are added after AutoMigrate because the referenced tables live in
// other repository packages.
var foreignKeys = []struct {
	table, name, column, references string
}{
	{"restaurants", "fk_restaurants_category", "category_id", "categories(id)"},
	{"products", "fk_products_restaurant", "restaurant_id", "restaurants(id)"},
	{"orders", orderrepo.FKOrdersRestaurant, "restaurant_id", "restaurants(id)"},
	{"order_items", orderrepo.FKOrderItemsProduct, "product_id", "products(id)"},
}

// Migrate creates or updates every table used by the service.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&catalogrepo.CategoryDTO{},
		&catalogrepo.RestaurantDTO{},
		&catalogrepo.ProductDTO{},
		&consumerrepo.ConsumerAddressDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
	)
	if err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	for _, fk := range foreignKeys {
		stmt := fmt.Sprintf(`DO $$ BEGIN
			ALTER TABLE %s ADD CONSTRAINT %s FOREIGN KEY (%s) REFERENCES %s;
		EXCEPTION WHEN duplicate_object THEN NULL;
		END $$`, fk.table, fk.name, fk.column, fk.references)
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("add constraint %s: %w", fk.name, err)
		}
	}
	return nil
}
