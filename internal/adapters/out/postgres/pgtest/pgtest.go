// Package pgtest starts a throwaway PostgreSQL container for integration suites
// and seeds a small catalog.
package pgtest

import (
	"context"
	"time"

	postgres_adapter "fooddelivery/internal/adapters/out/postgres"
	"fooddelivery/internal/adapters/out/postgres/catalogrepo"
	"fooddelivery/internal/adapters/out/postgres/consumerrepo"
	"fooddelivery/internal/core/domain/model/catalog"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Start runs postgres:15-alpine and returns a migrated connection.
func Start(ctx context.Context) (*postgres.PostgresContainer, *gorm.DB, error) {
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, nil, err
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return container, nil, err
	}

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return container, nil, err
	}

	if err := postgres_adapter.Migrate(db); err != nil {
		return container, nil, err
	}
	return container, db, nil
}

// Truncate empties every table and resets identities.
func Truncate(db *gorm.DB) error {
	return db.Exec(`TRUNCATE TABLE order_items, orders, consumer_addresses, products, restaurants, categories
		RESTART IDENTITY CASCADE`).Error
}

// Catalog is the fixed data set created by Seed.
type Catalog struct {
	CategoryID       int64
	RestaurantID     int64
	PizzaID          int64 // 1000 cents, active
	ColaID           int64 // 500 cents, active
	RetiredID        int64 // 700 cents, inactive
	ConsumerID       int64 // has an address
	HomelessConsumer int64 // has none
	DeliveryFeeCents int64
}

// Seed creates one category, one restaurant with a 500 cents fee, three products
// and an address for consumer 1.
func Seed(db *gorm.DB) (Catalog, error) {
	category := catalogrepo.CategoryDTO{Name: "Pizza", Image: "pizza.png"}
	if err := db.Create(&category).Error; err != nil {
		return Catalog{}, err
	}

	restaurant := catalogrepo.RestaurantFromDomain(catalog.Restaurant{
		CategoryID:  category.ID,
		Name:        "Pizzeria",
		Image:       "pizzeria.png",
		DeliveryFee: 500,
	})
	if err := db.Create(&restaurant).Error; err != nil {
		return Catalog{}, err
	}

	products := []catalogrepo.ProductDTO{
		catalogrepo.ProductFromDomain(catalog.Product{
			RestaurantID: restaurant.ID, Name: "Margherita", Image: "margherita.png", Price: 1000, Active: true,
		}),
		catalogrepo.ProductFromDomain(catalog.Product{
			RestaurantID: restaurant.ID, Name: "Cola", Image: "cola.png", Price: 500, Active: true,
		}),
		catalogrepo.ProductFromDomain(catalog.Product{
			RestaurantID: restaurant.ID, Name: "Calzone", Image: "calzone.png", Price: 700, Active: true,
		}),
	}
	if err := db.Create(&products).Error; err != nil {
		return Catalog{}, err
	}
	// default:true would override a false value on insert
	if err := db.Model(&catalogrepo.ProductDTO{}).Where("id = ?", products[2].ID).
		Update("active", false).Error; err != nil {
		return Catalog{}, err
	}

	address := consumerrepo.ConsumerAddressDTO{ConsumerID: 1, Street: "Main st", Number: "10", City: "Springfield"}
	if err := db.Create(&address).Error; err != nil {
		return Catalog{}, err
	}

	return Catalog{
		CategoryID:       category.ID,
		RestaurantID:     restaurant.ID,
		PizzaID:          products[0].ID,
		ColaID:           products[1].ID,
		RetiredID:        products[2].ID,
		ConsumerID:       1,
		HomelessConsumer: 2,
		DeliveryFeeCents: restaurant.DeliveryFee,
	}, nil
}
