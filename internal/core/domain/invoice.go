package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// LineRequest is a single entry of a draft invoice: which item, how many.
type LineRequest struct {
	ItemID   string
	Quantity int
}

// InvoiceLine is a priced line with the item data snapshotted at invoice
// time. Later catalog edits never touch it.
type InvoiceLine struct {
	ItemID          string
	ItemName        string
	ItemDescription string
	Quantity        int
	UnitPrice       decimal.Decimal
	LineTotal       decimal.Decimal
}

// NewInvoiceLine snapshots the item and prices the line.
// Quantity validation happens upstream, where the line index is known.
func NewInvoiceLine(item Item, quantity int) InvoiceLine {
	return InvoiceLine{
		ItemID:          item.ID,
		ItemName:        item.Name,
		ItemDescription: item.Description,
		Quantity:        quantity,
		UnitPrice:       item.UnitPrice,
		LineTotal:       Round2(item.UnitPrice.Mul(decimal.NewFromInt(int64(quantity)))),
	}
}

// Invoice is immutable once created. The totals are derived from the lines
// and tax rate at construction and never mutated afterwards.
type Invoice struct {
	ID     string
	Number string

	CustomerID      string
	CustomerName    string
	CustomerPhone   string
	CustomerEmail   string
	CustomerAddress string

	Date        time.Time
	TaxRate     decimal.Decimal
	Lines       []InvoiceLine
	SubTotal    decimal.Decimal
	TaxAmount   decimal.Decimal
	TotalAmount decimal.Decimal
}

// InvoiceSummary carries the fields a listing view needs, without lines.
type InvoiceSummary struct {
	ID           string
	Number       string
	CustomerName string
	Date         time.Time
	TotalAmount  decimal.Decimal
}

// NewInvoice assembles a fully priced invoice from snapshot lines.
// Rounding happens at every monetary boundary: each line total is already
// rounded, the subtotal is the rounded sum, tax and grand total are rounded
// again. The invoice number is assigned later, at store time.
func NewInvoice(customer Customer, taxRate decimal.Decimal, lines []InvoiceLine) (*Invoice, error) {
	if len(lines) == 0 {
		return nil, errors.New("invoice requires at least one line")
	}
	if taxRate.IsNegative() {
		return nil, errors.New("tax rate cannot be negative")
	}

	subTotal := decimal.Zero
	for _, l := range lines {
		subTotal = subTotal.Add(l.LineTotal)
	}
	subTotal = Round2(subTotal)
	taxAmount := Round2(subTotal.Mul(taxRate).Div(hundred))
	totalAmount := Round2(subTotal.Add(taxAmount))

	return &Invoice{
		ID:              uuid.New().String(),
		CustomerID:      customer.ID,
		CustomerName:    customer.Name,
		CustomerPhone:   customer.Phone,
		CustomerEmail:   customer.Email,
		CustomerAddress: customer.Address,
		Date:            time.Now(),
		TaxRate:         taxRate,
		Lines:           lines,
		SubTotal:        subTotal,
		TaxAmount:       taxAmount,
		TotalAmount:     totalAmount,
	}, nil
}
