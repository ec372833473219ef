// Package pdf renders stored invoices into printable PDF documents.
// It is a pure read-side transform: the invoice is already priced and
// validated by the time it gets here.
package pdf

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/jung-kurt/gofpdf"

	"github.com/pizzapos/backend/internal/core/domain"
)

type Renderer struct {
	shopName string
	currency string
}

func NewRenderer(shopName, currency string) *Renderer {
	return &Renderer{shopName: shopName, currency: currency}
}

func (r *Renderer) Render(invoice *domain.Invoice) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	// Header
	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(0, 10, r.shopName)
	pdf.Ln(12)
	pdf.SetFont("Arial", "", 11)
	pdf.Cell(0, 6, "Invoice "+invoice.Number)
	pdf.Ln(6)
	pdf.Cell(0, 6, "Date: "+invoice.Date.Format("2006-01-02 15:04"))
	pdf.Ln(10)

	// Bill-to block; optional fields are skipped when empty.
	pdf.SetFont("Arial", "B", 11)
	pdf.Cell(0, 6, "Bill To")
	pdf.Ln(6)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 5, invoice.CustomerName)
	pdf.Ln(5)
	for _, field := range []string{invoice.CustomerPhone, invoice.CustomerEmail, invoice.CustomerAddress} {
		if field == "" {
			continue
		}
		pdf.Cell(0, 5, field)
		pdf.Ln(5)
	}
	pdf.Ln(5)

	// Line table
	const (
		nameW  = 50.0
		descW  = 55.0
		qtyW   = 15.0
		priceW = 35.0
		totalW = 35.0
	)
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(nameW, 7, "Item", "1", 0, "L", true, 0, "")
	pdf.CellFormat(descW, 7, "Description", "1", 0, "L", true, 0, "")
	pdf.CellFormat(qtyW, 7, "Qty", "1", 0, "R", true, 0, "")
	pdf.CellFormat(priceW, 7, "Unit Price", "1", 0, "R", true, 0, "")
	pdf.CellFormat(totalW, 7, "Total", "1", 1, "R", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	for _, line := range invoice.Lines {
		pdf.CellFormat(nameW, 7, line.ItemName, "1", 0, "L", false, 0, "")
		pdf.CellFormat(descW, 7, line.ItemDescription, "1", 0, "L", false, 0, "")
		pdf.CellFormat(qtyW, 7, strconv.Itoa(line.Quantity), "1", 0, "R", false, 0, "")
		pdf.CellFormat(priceW, 7, r.money(line.UnitPrice.StringFixed(2)), "1", 0, "R", false, 0, "")
		pdf.CellFormat(totalW, 7, r.money(line.LineTotal.StringFixed(2)), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(4)

	// Totals block
	labelW := nameW + descW + qtyW + priceW
	pdf.CellFormat(labelW, 6, "Subtotal", "", 0, "R", false, 0, "")
	pdf.CellFormat(totalW, 6, r.money(invoice.SubTotal.StringFixed(2)), "", 1, "R", false, 0, "")
	pdf.CellFormat(labelW, 6, fmt.Sprintf("Tax (%s%%)", invoice.TaxRate.String()), "", 0, "R", false, 0, "")
	pdf.CellFormat(totalW, 6, r.money(invoice.TaxAmount.StringFixed(2)), "", 1, "R", false, 0, "")
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(labelW, 7, "Total", "", 0, "R", false, 0, "")
	pdf.CellFormat(totalW, 7, r.money(invoice.TotalAmount.StringFixed(2)), "", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render invoice pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *Renderer) money(amount string) string {
	return r.currency + " " + amount
}
