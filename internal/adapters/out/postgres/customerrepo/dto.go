// Package customerrepo persists customer entities, keyed internally by UUID
// and externally by phone number.
package customerrepo

import (
	"mezzo/internal/core/domain/model/customer"
	"mezzo/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CustomerDTO represents the database structure for persisting customers.
type CustomerDTO struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name   string
	Phone  string `gorm:"uniqueIndex"`
	Street string
	Area   string
	City   string
}

// TableName specifies the database table name for customer entities.
func (CustomerDTO) TableName() string {
	return "customers"
}

func fromDomain(aggregate *customer.Customer) CustomerDTO {
	return CustomerDTO{
		ID:     aggregate.ID().Bytes(),
		Name:   aggregate.Name(),
		Phone:  aggregate.Phone(),
		Street: aggregate.Street(),
		Area:   aggregate.Area(),
		City:   aggregate.City(),
	}
}

func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return customer.RestoreCustomer(id, dto.Name, dto.Phone, dto.Street, dto.Area, dto.City)
}
