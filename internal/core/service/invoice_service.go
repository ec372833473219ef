package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/pizzapos/backend/internal/core/domain"
	"github.com/pizzapos/backend/internal/port"
)

var (
	ErrEmptyInvoice    = errors.New("invoice has no lines")
	ErrInvalidCustomer = errors.New("unknown customer")
	ErrInvalidTaxRate  = errors.New("tax rate cannot be negative")
	ErrInvalidQuantity = errors.New("quantity must be positive")
	ErrUnknownItem     = errors.New("unknown catalog item")
	ErrNotFound        = errors.New("not found")
	ErrPersistence     = errors.New("persistence failure")
)

type InvoiceService struct {
	catalog   port.CatalogLookup
	customers port.CustomerLookup
	invoices  port.InvoiceRepository
}

func NewInvoiceService(catalog port.CatalogLookup, customers port.CustomerLookup, invoices port.InvoiceRepository) *InvoiceService {
	return &InvoiceService{
		catalog:   catalog,
		customers: customers,
		invoices:  invoices,
	}
}

// CreateInvoice validates the draft, prices every line from current catalog
// data, and stores the result atomically. All validation completes before
// anything is written, so a failed request never consumes an invoice number
// and never leaves partial rows behind.
func (s *InvoiceService) CreateInvoice(ctx context.Context, customerID string, taxRate decimal.Decimal, requests []domain.LineRequest) (*domain.Invoice, error) {
	if len(requests) == 0 {
		return nil, ErrEmptyInvoice
	}
	if taxRate.IsNegative() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidTaxRate, taxRate)
	}

	customer, err := s.customers.GetCustomer(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("resolve customer: %w", err)
	}
	if customer == nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidCustomer, customerID)
	}

	lines := make([]domain.InvoiceLine, 0, len(requests))
	for i, req := range requests {
		if req.Quantity <= 0 {
			return nil, fmt.Errorf("line %d: %w", i, ErrInvalidQuantity)
		}
		item, err := s.catalog.GetItem(ctx, req.ItemID)
		if err != nil {
			return nil, fmt.Errorf("resolve item %s: %w", req.ItemID, err)
		}
		if item == nil {
			return nil, fmt.Errorf("%w: %s", ErrUnknownItem, req.ItemID)
		}
		lines = append(lines, domain.NewInvoiceLine(*item, req.Quantity))
	}

	invoice, err := domain.NewInvoice(*customer, taxRate, lines)
	if err != nil {
		return nil, err
	}

	stored, err := s.invoices.Store(ctx, invoice)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	return stored, nil
}

func (s *InvoiceService) GetInvoice(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	invoice, err := s.invoices.GetByID(ctx, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	if invoice == nil {
		return nil, fmt.Errorf("%w: invoice %s", ErrNotFound, invoiceID)
	}
	return invoice, nil
}

func (s *InvoiceService) ListInvoices(ctx context.Context) ([]domain.InvoiceSummary, error) {
	summaries, err := s.invoices.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	return summaries, nil
}
