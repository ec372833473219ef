package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pizzapos/backend/internal/core/domain"
	"github.com/pizzapos/backend/internal/core/service"
)

// PDFRenderer renders a stored invoice for printing.
type PDFRenderer interface {
	Render(invoice *domain.Invoice) ([]byte, error)
}

type InvoiceHandler struct {
	invoices *service.InvoiceService
	pdf      PDFRenderer
}

func NewInvoiceHandler(invoices *service.InvoiceService, pdf PDFRenderer) *InvoiceHandler {
	return &InvoiceHandler{invoices: invoices, pdf: pdf}
}

func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	var req createInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	requests := make([]domain.LineRequest, 0, len(req.Items))
	for _, item := range req.Items {
		requests = append(requests, domain.LineRequest{ItemID: item.ItemID, Quantity: item.Quantity})
	}

	invoice, err := h.invoices.CreateInvoice(c.Request.Context(), req.CustomerID, req.TaxRate, requests)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": toInvoiceResponse(invoice)})
}

func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	invoice, err := h.invoices.GetInvoice(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": toInvoiceResponse(invoice)})
}

func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	summaries, err := h.invoices.ListInvoices(c.Request.Context())
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	out := make([]invoiceSummaryResponse, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, toInvoiceSummaryResponse(s))
	}
	c.JSON(http.StatusOK, gin.H{"data": out})
}

func (h *InvoiceHandler) GetInvoicePDF(c *gin.Context) {
	invoice, err := h.invoices.GetInvoice(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	pdfBytes, err := h.pdf.Render(invoice)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Header("Content-Disposition", "attachment; filename="+invoice.Number+".pdf")
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}

// statusFor maps service errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrInUse):
		return http.StatusConflict
	case errors.Is(err, service.ErrEmptyInvoice),
		errors.Is(err, service.ErrInvalidCustomer),
		errors.Is(err, service.ErrInvalidTaxRate),
		errors.Is(err, service.ErrInvalidQuantity),
		errors.Is(err, service.ErrUnknownItem),
		errors.Is(err, service.ErrInvalidRecord):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
