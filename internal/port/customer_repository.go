package port

import (
	"context"

	"github.com/pizzapos/backend/internal/core/domain"
)

// CustomerLookup is the read-only view the pricing engine needs.
type CustomerLookup interface {
	// GetCustomer returns a customer, or nil if it does not exist
	GetCustomer(ctx context.Context, customerID string) (*domain.Customer, error)
}

type CustomerRepository interface {
	CustomerLookup

	ListCustomers(ctx context.Context) ([]domain.Customer, error)
	CreateCustomer(ctx context.Context, customer *domain.Customer) error
	UpdateCustomer(ctx context.Context, customer *domain.Customer) error
	DeleteCustomer(ctx context.Context, customerID string) error
}
