// Package productrepo persists products with GORM.
package productrepo

import (
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/product"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductDTO is the row of the products table. RestaurantID is indexed for
// menu listings.
type ProductDTO struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	RestaurantID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name         string          `gorm:"type:varchar(100);not null"`
	Description  string          `gorm:"type:varchar(500);not null"`
	Price        decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Category     string          `gorm:"type:varchar(100);not null;index"`
	ImageURL     string          `gorm:"type:text;not null"`
	Available    bool            `gorm:"not null"`
}

func (ProductDTO) TableName() string {
	return "products"
}

func fromDomain(p *product.Product) ProductDTO {
	return ProductDTO{
		ID:           p.ID().Bytes(),
		RestaurantID: p.RestaurantID().Bytes(),
		Name:         p.Name(),
		Description:  p.Description(),
		Price:        p.Price().Decimal(),
		Category:     p.Category(),
		ImageURL:     p.ImageURL(),
		Available:    p.IsAvailable(),
	}
}

func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}
	price, err := kernel.MoneyFromDecimal(dto.Price)
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(id, restaurantID, product.Details{
		Name:        dto.Name,
		Description: dto.Description,
		Price:       price,
		Category:    dto.Category,
		ImageURL:    dto.ImageURL,
	}, dto.Available)
}
