// Package catalogrepo maps categories, restaurants and products to their tables.
// The catalog is maintained by other tooling; this service only reads it.
package catalogrepo

import (
	"fooddelivery/internal/core/domain/model/catalog"
	"fooddelivery/internal/core/domain/model/kernel"
)

type CategoryDTO struct {
	ID    int64  `gorm:"primaryKey;autoIncrement"`
	Name  string `gorm:"size:100;not null"`
	Image string `gorm:"type:text"`
}

func (CategoryDTO) TableName() string {
	return "categories"
}

type RestaurantDTO struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	CategoryID  int64  `gorm:"not null;index"`
	Name        string `gorm:"size:100;not null"`
	Image       string `gorm:"type:text"`
	DeliveryFee int64  `gorm:"not null;default:0"`
}

func (RestaurantDTO) TableName() string {
	return "restaurants"
}

type ProductDTO struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	RestaurantID int64  `gorm:"not null;index"`
	Name         string `gorm:"size:100;not null"`
	Description  string `gorm:"type:text"`
	Image        string `gorm:"type:text"`
	Price        int64  `gorm:"not null"`
	Active       bool   `gorm:"not null;default:true"`
}

func (ProductDTO) TableName() string {
	return "products"
}

func restaurantToDomain(dto RestaurantDTO) catalog.Restaurant {
	return catalog.Restaurant{
		ID:          dto.ID,
		CategoryID:  dto.CategoryID,
		Name:        dto.Name,
		Image:       dto.Image,
		DeliveryFee: kernel.Money(dto.DeliveryFee),
	}
}

func productToDomain(dto ProductDTO) catalog.Product {
	return catalog.Product{
		ID:           dto.ID,
		RestaurantID: dto.RestaurantID,
		Name:         dto.Name,
		Description:  dto.Description,
		Image:        dto.Image,
		Price:        kernel.Money(dto.Price),
		Active:       dto.Active,
	}
}

// RestaurantFromDomain is used by seeding code and tests.
func RestaurantFromDomain(r catalog.Restaurant) RestaurantDTO {
	return RestaurantDTO{
		ID:          r.ID,
		CategoryID:  r.CategoryID,
		Name:        r.Name,
		Image:       r.Image,
		DeliveryFee: r.DeliveryFee.Cents(),
	}
}

// ProductFromDomain is used by seeding code and tests.
func ProductFromDomain(p catalog.Product) ProductDTO {
	return ProductDTO{
		ID:           p.ID,
		RestaurantID: p.RestaurantID,
		Name:         p.Name,
		Description:  p.Description,
		Image:        p.Image,
		Price:        p.Price.Cents(),
		Active:       p.Active,
	}
}
