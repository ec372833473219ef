package handler

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/pizzapos/backend/internal/core/domain"
)

type categoryRequest struct {
	Name        string `json:"category_name" binding:"required,max=100"`
	Description string `json:"description" binding:"max=500"`
}

type categoryResponse struct {
	CategoryID   string `json:"category_id"`
	CategoryName string `json:"category_name"`
	Description  string `json:"description"`
}

type itemRequest struct {
	Name        string          `json:"item_name" binding:"required,max=100"`
	CategoryID  string          `json:"category_id" binding:"required"`
	UnitPrice   decimal.Decimal `json:"unit_price" binding:"required"`
	Description string          `json:"description" binding:"max=500"`
}

type itemResponse struct {
	ItemID       string `json:"item_id"`
	ItemName     string `json:"item_name"`
	CategoryID   string `json:"category_id"`
	CategoryName string `json:"category_name,omitempty"`
	UnitPrice    string `json:"unit_price"`
	Description  string `json:"description"`
}

type customerRequest struct {
	Name    string `json:"customer_name" binding:"required,max=100"`
	Phone   string `json:"phone" binding:"omitempty,len=10,numeric"`
	Email   string `json:"email" binding:"omitempty,email"`
	Address string `json:"address" binding:"max=500"`
}

type customerResponse struct {
	CustomerID   string `json:"customer_id"`
	CustomerName string `json:"customer_name"`
	Phone        string `json:"phone,omitempty"`
	Email        string `json:"email,omitempty"`
	Address      string `json:"address,omitempty"`
}

type createInvoiceRequest struct {
	CustomerID string               `json:"customer_id" binding:"required"`
	TaxRate    decimal.Decimal      `json:"tax_rate"`
	Items      []invoiceLineRequest `json:"items"`
}

type invoiceLineRequest struct {
	ItemID   string `json:"item_id" binding:"required"`
	Quantity int    `json:"quantity" binding:"required"`
}

type invoiceLineResponse struct {
	ItemID          string `json:"item_id"`
	ItemName        string `json:"item_name"`
	ItemDescription string `json:"item_description,omitempty"`
	Quantity        int    `json:"quantity"`
	UnitPrice       string `json:"unit_price"`
	LineTotal       string `json:"line_total"`
}

type invoiceResponse struct {
	InvoiceID     string                `json:"invoice_id"`
	InvoiceNumber string                `json:"invoice_number"`
	CustomerID    string                `json:"customer_id"`
	Customer      customerResponse      `json:"customer"`
	InvoiceDate   time.Time             `json:"invoice_date"`
	TaxRate       string                `json:"tax_rate"`
	SubTotal      string                `json:"sub_total"`
	TaxAmount     string                `json:"tax_amount"`
	TotalAmount   string                `json:"total_amount"`
	Items         []invoiceLineResponse `json:"items"`
}

type invoiceSummaryResponse struct {
	InvoiceID     string    `json:"invoice_id"`
	InvoiceNumber string    `json:"invoice_number"`
	CustomerName  string    `json:"customer_name"`
	InvoiceDate   time.Time `json:"invoice_date"`
	TotalAmount   string    `json:"total_amount"`
}

func toCategoryResponse(c domain.Category) categoryResponse {
	return categoryResponse{
		CategoryID:   c.ID,
		CategoryName: c.Name,
		Description:  c.Description,
	}
}

func toItemResponse(i domain.Item) itemResponse {
	return itemResponse{
		ItemID:       i.ID,
		ItemName:     i.Name,
		CategoryID:   i.CategoryID,
		CategoryName: i.CategoryName,
		UnitPrice:    domain.FormatMoney(i.UnitPrice),
		Description:  i.Description,
	}
}

func toCustomerResponse(c domain.Customer) customerResponse {
	return customerResponse{
		CustomerID:   c.ID,
		CustomerName: c.Name,
		Phone:        c.Phone,
		Email:        c.Email,
		Address:      c.Address,
	}
}

func toInvoiceResponse(inv *domain.Invoice) invoiceResponse {
	items := make([]invoiceLineResponse, 0, len(inv.Lines))
	for _, line := range inv.Lines {
		items = append(items, invoiceLineResponse{
			ItemID:          line.ItemID,
			ItemName:        line.ItemName,
			ItemDescription: line.ItemDescription,
			Quantity:        line.Quantity,
			UnitPrice:       domain.FormatMoney(line.UnitPrice),
			LineTotal:       domain.FormatMoney(line.LineTotal),
		})
	}
	return invoiceResponse{
		InvoiceID:     inv.ID,
		InvoiceNumber: inv.Number,
		CustomerID:    inv.CustomerID,
		Customer: customerResponse{
			CustomerID:   inv.CustomerID,
			CustomerName: inv.CustomerName,
			Phone:        inv.CustomerPhone,
			Email:        inv.CustomerEmail,
			Address:      inv.CustomerAddress,
		},
		InvoiceDate: inv.Date,
		TaxRate:     inv.TaxRate.String(),
		SubTotal:    domain.FormatMoney(inv.SubTotal),
		TaxAmount:   domain.FormatMoney(inv.TaxAmount),
		TotalAmount: domain.FormatMoney(inv.TotalAmount),
		Items:       items,
	}
}

func toInvoiceSummaryResponse(s domain.InvoiceSummary) invoiceSummaryResponse {
	return invoiceSummaryResponse{
		InvoiceID:     s.ID,
		InvoiceNumber: s.Number,
		CustomerName:  s.CustomerName,
		InvoiceDate:   s.Date,
		TotalAmount:   domain.FormatMoney(s.TotalAmount),
	}
}
