// Package restaurantrepo persists restaurants with GORM.
package restaurantrepo

import (
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/restaurant"

	"github.com/google/uuid"
)

type RestaurantDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"type:varchar(100);not null"`
	Category     string    `gorm:"type:varchar(100);not null;index"`
	Address      string    `gorm:"type:text;not null"`
	Phone        string    `gorm:"type:varchar(30);not null"`
	OpeningHours string    `gorm:"type:text;not null"`
	Rating       *float64  `gorm:"type:double precision"`
	Active       bool      `gorm:"not null"`
}

func (RestaurantDTO) TableName() string {
	return "restaurants"
}

func fromDomain(r *restaurant.Restaurant) RestaurantDTO {
	dto := RestaurantDTO{
		ID:           r.ID().Bytes(),
		Name:         r.Name(),
		Category:     r.Category(),
		Address:      r.Address(),
		Phone:        r.Phone(),
		OpeningHours: r.OpeningHours(),
		Active:       r.IsActive(),
	}
	if rating, ok := r.Rating(); ok {
		dto.Rating = &rating
	}
	return dto
}

func toDomain(dto RestaurantDTO) (*restaurant.Restaurant, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	rating := kernel.None[float64]()
	if dto.Rating != nil {
		rating = kernel.Some(*dto.Rating)
	}

	return restaurant.RestoreRestaurant(id, restaurant.Details{
		Name:         dto.Name,
		Category:     dto.Category,
		Address:      dto.Address,
		Phone:        dto.Phone,
		OpeningHours: dto.OpeningHours,
		Rating:       rating,
	}, dto.Active)
}
