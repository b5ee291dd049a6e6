package usecase

import (
	"context"
	"time"

	"github.com/aetherlabs-ai/aether-crm/internal/entity"
)

type CustomerUseCase struct {
	Customers CustomerRepositoryInterface
}

func NewCustomerUseCase(customers CustomerRepositoryInterface) *CustomerUseCase {
	return &CustomerUseCase{Customers: customers}
}

func (uc *CustomerUseCase) Create(ctx context.Context, input CreateCustomerInput) (*entity.Customer, error) {
	if errs := ValidateCreateCustomerInput(input); len(errs) > 0 {
		return nil, errs
	}

	satisfaction := 5
	if input.Satisfaction != nil {
		satisfaction = *input.Satisfaction
	}

	customer := entity.NewCustomer(input.Name, input.Email, input.Phone, input.Company,
		input.Notes, input.LifetimeValue, satisfaction)

	if err := uc.Customers.Create(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (uc *CustomerUseCase) Update(ctx context.Context, id string, input UpdateCustomerInput) (*entity.Customer, error) {
	if errs := ValidateUpdateCustomerInput(input); len(errs) > 0 {
		return nil, errs
	}

	customer, err := uc.Customers.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		customer.Name = *input.Name
	}
	if input.Email != nil {
		customer.Email = *input.Email
	}
	if input.Phone != nil {
		customer.Phone = *input.Phone
	}
	if input.Company != nil {
		customer.Company = *input.Company
	}
	if input.LifetimeValue != nil {
		customer.LifetimeValue = *input.LifetimeValue
	}
	if input.Satisfaction != nil {
		customer.Satisfaction = entity.ClampSatisfaction(*input.Satisfaction)
	}
	if input.Status != nil {
		customer.Status = *input.Status
	}
	if input.Notes != nil {
		customer.Notes = *input.Notes
	}

	customer.UpdatedAt = time.Now()
	if err := uc.Customers.Update(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}
