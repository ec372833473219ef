package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pizzapos/backend/internal/core/domain"
	"github.com/pizzapos/backend/internal/port"
)

type CustomerService struct {
	customers port.CustomerRepository
	invoices  port.InvoiceRepository
}

func NewCustomerService(customers port.CustomerRepository, invoices port.InvoiceRepository) *CustomerService {
	return &CustomerService{customers: customers, invoices: invoices}
}

func (s *CustomerService) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	return s.customers.ListCustomers(ctx)
}

func (s *CustomerService) GetCustomer(ctx context.Context, customerID string) (*domain.Customer, error) {
	customer, err := s.customers.GetCustomer(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("get customer: %w", err)
	}
	if customer == nil {
		return nil, fmt.Errorf("%w: customer %s", ErrNotFound, customerID)
	}
	return customer, nil
}

func (s *CustomerService) CreateCustomer(ctx context.Context, customer *domain.Customer) error {
	if err := customer.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}
	customer.ID = uuid.New().String()
	now := time.Now()
	customer.CreatedAt = now
	customer.UpdatedAt = now
	return s.customers.CreateCustomer(ctx, customer)
}

func (s *CustomerService) UpdateCustomer(ctx context.Context, customer *domain.Customer) error {
	if err := customer.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}
	existing, err := s.customers.GetCustomer(ctx, customer.ID)
	if err != nil {
		return fmt.Errorf("get customer: %w", err)
	}
	if existing == nil {
		return fmt.Errorf("%w: customer %s", ErrNotFound, customer.ID)
	}
	customer.UpdatedAt = time.Now()
	return s.customers.UpdateCustomer(ctx, customer)
}

func (s *CustomerService) DeleteCustomer(ctx context.Context, customerID string) error {
	hasInvoices, err := s.invoices.CustomerHasInvoices(ctx, customerID)
	if err != nil {
		return fmt.Errorf("check customer invoices: %w", err)
	}
	if hasInvoices {
		return fmt.Errorf("%w: customer %s has invoices", ErrInUse, customerID)
	}
	return s.customers.DeleteCustomer(ctx, customerID)
}
