package postgrestore

import (
	"context"
	"errors"
	"fmt"

	"github.com/SeaCloudHub/customers/domain/customer"
	"gorm.io/gorm"
)

type CustomerStore struct {
	db *gorm.DB
}

func NewCustomerStore(db *gorm.DB) *CustomerStore {
	return &CustomerStore{db: db}
}

func (s *CustomerStore) Create(ctx context.Context, c *customer.Customer) error {
	customerSchema := NewCustomerSchema(c)

	if err := s.db.WithContext(ctx).Create(&customerSchema).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%w: %s", customer.ErrCustomerAlreadyExists, customerSchema.ID)
		}

		return fmt.Errorf("cannot create customer: %w", err)
	}

	return nil
}

func (s *CustomerStore) Update(ctx context.Context, c *customer.Customer) error {
	customerSchema := NewCustomerSchema(c)

	result := s.db.WithContext(ctx).Model(&CustomerSchema{}).
		Where("id = ?", customerSchema.ID).
		Select("*").
		Updates(&customerSchema)
	if result.Error != nil {
		return fmt.Errorf("cannot update customer: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return customer.ErrCustomerNotFound
	}

	return nil
}

func (s *CustomerStore) Find(ctx context.Context, id string) (*customer.Customer, error) {
	var customerSchema CustomerSchema
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&customerSchema).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, customer.ErrCustomerNotFound
		}

		return nil, fmt.Errorf("unexpected error: %w", err)
	}

	return customerSchema.ToDomainCustomer()
}

func (s *CustomerStore) FindAll(ctx context.Context) ([]*customer.Customer, error) {
	var customerSchemas []CustomerSchema
	if err := s.db.WithContext(ctx).Order("id").Find(&customerSchemas).Error; err != nil {
		return nil, fmt.Errorf("unexpected error: %w", err)
	}

	customers := make([]*customer.Customer, 0, len(customerSchemas))
	for _, customerSchema := range customerSchemas {
		c, err := customerSchema.ToDomainCustomer()
		if err != nil {
			return nil, fmt.Errorf("cannot restore customer %s: %w", customerSchema.ID, err)
		}

		customers = append(customers, c)
	}

	return customers, nil
}
