package model

import (
	"context"

	"github.com/SeaCloudHub/customers/domain/customer"
	"github.com/SeaCloudHub/customers/pkg/validation"
)

type AddressRequest struct {
	Street string `json:"street" mod:"trim" validate:"required"`
	Number int    `json:"number" validate:"required,gt=0"`
	Zip    string `json:"zip" mod:"trim" validate:"required"`
	City   string `json:"city" mod:"trim" validate:"required"`
} // @name model.AddressRequest

func (r AddressRequest) ToDomain() customer.Address {
	return customer.NewAddress(r.Street, r.Number, r.Zip, r.City)
}

type CreateCustomerRequest struct {
	ID      string          `json:"id" mod:"trim"`
	Name    string          `json:"name" mod:"trim" validate:"required"`
	Address *AddressRequest `json:"address"`
} // @name model.CreateCustomerRequest

func (r *CreateCustomerRequest) Validate(ctx context.Context) error {
	return validation.Struct(ctx, r)
}

type RenameCustomerRequest struct {
	ID   string `param:"id" validate:"required"`
	Name string `json:"name" mod:"trim" validate:"required"`
} // @name model.RenameCustomerRequest

func (r *RenameCustomerRequest) Validate(ctx context.Context) error {
	return validation.Struct(ctx, r)
}

type ChangeAddressRequest struct {
	ID             string `param:"id" validate:"required"`
	AddressRequest `json:",inline"`
} // @name model.ChangeAddressRequest

func (r *ChangeAddressRequest) Validate(ctx context.Context) error {
	return validation.Struct(ctx, r)
}

type AddRewardPointsRequest struct {
	ID     string `param:"id" validate:"required"`
	Points int    `json:"points"`
} // @name model.AddRewardPointsRequest

func (r *AddRewardPointsRequest) Validate(ctx context.Context) error {
	return validation.Struct(ctx, r)
}

type ListCustomersResponse struct {
	Customers []customer.Snapshot `json:"customers"`
} // @name model.ListCustomersResponse
