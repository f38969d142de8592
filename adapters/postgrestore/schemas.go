package postgrestore

import (
	"github.com/SeaCloudHub/customers/domain/customer"
)

// CustomerSchema flattens the address into the customers row. HasAddress
// tells an unset address apart from one with empty fields.
type CustomerSchema struct {
	ID           string `gorm:"column:id;primaryKey"`
	Name         string `gorm:"column:name"`
	Active       bool   `gorm:"column:active"`
	RewardPoints int    `gorm:"column:reward_points"`
	HasAddress   bool   `gorm:"column:has_address"`
	Street       string `gorm:"column:street"`
	Number       int    `gorm:"column:number"`
	Zipcode      string `gorm:"column:zipcode"`
	City         string `gorm:"column:city"`
}

func (CustomerSchema) TableName() string {
	return "customers"
}

func NewCustomerSchema(c *customer.Customer) CustomerSchema {
	s := CustomerSchema{
		ID:           c.ID(),
		Name:         c.Name(),
		Active:       c.IsActive(),
		RewardPoints: c.RewardPoints(),
	}

	if address, ok := c.Address(); ok {
		s.HasAddress = true
		s.Street = address.Street()
		s.Number = address.Number()
		s.Zipcode = address.Zip()
		s.City = address.City()
	}

	return s
}

func (s *CustomerSchema) ToDomainCustomer() (*customer.Customer, error) {
	snapshot := customer.Snapshot{
		ID:           s.ID,
		Name:         s.Name,
		Active:       s.Active,
		RewardPoints: s.RewardPoints,
	}

	if s.HasAddress {
		address := customer.NewAddress(s.Street, s.Number, s.Zipcode, s.City)
		snapshot.Address = &address
	}

	return customer.Restore(snapshot)
}
