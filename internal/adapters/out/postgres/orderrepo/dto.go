// Package orderrepo persists the order aggregate with GORM.
package orderrepo

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO is the row of the orders table. Customers and restaurants are
// referenced by id only; there are no foreign keys.
type OrderDTO struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CustomerID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	RestaurantID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	Total           decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	DeliveryAddress string          `gorm:"type:varchar(255);not null"`
	Notes           string          `gorm:"type:text;not null"`
	Status          string          `gorm:"type:varchar(20);not null;index"`
	CreatedAt       time.Time       `gorm:"not null;index;autoCreateTime:false"`
	DeliveredAt     *time.Time
}

func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(o *order.Order) OrderDTO {
	dto := OrderDTO{
		ID:              o.ID().Bytes(),
		CustomerID:      o.CustomerID().Bytes(),
		RestaurantID:    o.RestaurantID().Bytes(),
		Total:           o.Total().Decimal(),
		DeliveryAddress: o.DeliveryAddress(),
		Notes:           o.Notes(),
		Status:          o.Status().String(),
		CreatedAt:       o.CreatedAt().UTC(),
	}
	if at := o.DeliveredAt(); at != nil {
		utc := at.UTC()
		dto.DeliveredAt = &utc
	}
	return dto
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}
	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}
	total, err := kernel.MoneyFromDecimal(dto.Total)
	if err != nil {
		return nil, err
	}
	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	var deliveredAt *time.Time
	if dto.DeliveredAt != nil {
		utc := dto.DeliveredAt.UTC()
		deliveredAt = &utc
	}

	return order.RestoreOrder(id, customerID, restaurantID, total,
		dto.DeliveryAddress, dto.Notes, status, dto.CreatedAt.UTC(), deliveredAt)
}
