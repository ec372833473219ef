package port

import (
	"context"

	"github.com/pizzapos/backend/internal/core/domain"
)

type InvoiceRepository interface {
	// Store assigns the invoice number and persists the header together with
	// all lines as a single atomic unit, returning the stored invoice
	Store(ctx context.Context, invoice *domain.Invoice) (*domain.Invoice, error)

	// GetByID returns the stored invoice with its lines, or nil if absent
	GetByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)

	// ListAll returns invoice summaries in creation order, oldest first
	ListAll(ctx context.Context) ([]domain.InvoiceSummary, error)

	// ItemReferenced reports whether any stored invoice line references the item
	ItemReferenced(ctx context.Context, itemID string) (bool, error)

	// CustomerHasInvoices reports whether the customer has any invoices
	CustomerHasInvoices(ctx context.Context, customerID string) (bool, error)
}

// NumberSequence hands out invoice sequence values. Next must be atomic:
// concurrent callers never see the same value, and values strictly increase.
type NumberSequence interface {
	Next(ctx context.Context) (int64, error)
}
