package customer

import (
	"context"
	"errors"
)

var (
	ErrValidation            = errors.New("validation error")
	ErrInvariantViolation    = errors.New("invariant violation")
	ErrCustomerNotFound      = errors.New("Customer not found")
	ErrCustomerAlreadyExists = errors.New("customer already exists")
)

type Store interface {
	Create(ctx context.Context, customer *Customer) error
	Update(ctx context.Context, customer *Customer) error
	Find(ctx context.Context, id string) (*Customer, error)
	FindAll(ctx context.Context) ([]*Customer, error)
}

// Summary is the reporting view over all stored customers.
type Summary struct {
	Total        int64 `json:"total" db:"total"`
	Active       int64 `json:"active" db:"active"`
	RewardPoints int64 `json:"reward_points" db:"reward_points"`
}

type SummaryStore interface {
	Summary(ctx context.Context) (Summary, error)
}
