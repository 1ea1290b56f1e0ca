// Package customerrepo persists customers with GORM.
package customerrepo

import (
	"time"

	"marketplace/internal/core/domain/model/customer"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CustomerDTO is the row of the customers table. Emails are stored
// normalized, so the unique index enforces case-insensitive uniqueness.
type CustomerDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"type:varchar(100);not null"`
	Email        string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Phone        string    `gorm:"type:varchar(30);not null"`
	Address      string    `gorm:"type:text;not null"`
	Active       bool      `gorm:"not null"`
	RegisteredAt time.Time `gorm:"not null"`
}

func (CustomerDTO) TableName() string {
	return "customers"
}

func fromDomain(c *customer.Customer) CustomerDTO {
	return CustomerDTO{
		ID:           c.ID().Bytes(),
		Name:         c.Name(),
		Email:        c.Email(),
		Phone:        c.Phone(),
		Address:      c.Address(),
		Active:       c.IsActive(),
		RegisteredAt: c.RegisteredAt().UTC(),
	}
}

func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return customer.RestoreCustomer(id, dto.Name, dto.Email, dto.Phone, dto.Address, dto.Active, dto.RegisteredAt.UTC())
}
