package pdf

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/pizzapos/backend/internal/core/domain"
)

func TestRender(t *testing.T) {
	lines := []domain.InvoiceLine{
		domain.NewInvoiceLine(domain.Item{
			ID:          "item-a",
			Name:        "Margherita",
			Description: "Tomato, mozzarella, basil",
			UnitPrice:   decimal.RequireFromString("850.00"),
		}, 2),
	}
	invoice, err := domain.NewInvoice(domain.Customer{
		ID:    "cust-1",
		Name:  "Nimal Perera",
		Phone: "0771234567",
	}, decimal.NewFromInt(10), lines)
	if err != nil {
		t.Fatalf("build invoice: %v", err)
	}
	invoice.Number = "INV-000042"

	out, err := NewRenderer("Pizza Shop", "LKR").Render(invoice)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if len(out) == 0 {
		t.Fatal("expected non-empty PDF output")
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Error("expected output to start with %PDF header")
	}
}

func TestRender_SkipsEmptyContactFields(t *testing.T) {
	lines := []domain.InvoiceLine{
		domain.NewInvoiceLine(domain.Item{
			ID:        "item-a",
			Name:      "Margherita",
			UnitPrice: decimal.RequireFromString("850.00"),
		}, 1),
	}
	invoice, err := domain.NewInvoice(domain.Customer{ID: "cust-1", Name: "Walk-in Customer"},
		decimal.Zero, lines)
	if err != nil {
		t.Fatalf("build invoice: %v", err)
	}
	invoice.Number = "INV-000043"

	if _, err := NewRenderer("Pizza Shop", "LKR").Render(invoice); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
}
