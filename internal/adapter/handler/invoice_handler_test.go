package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/pizzapos/backend/internal/adapter/pdf"
	"github.com/pizzapos/backend/internal/core/domain"
	"github.com/pizzapos/backend/internal/core/service"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// In-memory fakes backing the HTTP tests.

type fakeCatalog struct {
	categories map[string]domain.Category
	items      map[string]domain.Item
}

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{
		categories: make(map[string]domain.Category),
		items:      make(map[string]domain.Item),
	}
}

func (f *fakeCatalog) GetItem(ctx context.Context, itemID string) (*domain.Item, error) {
	item, ok := f.items[itemID]
	if !ok {
		return nil, nil
	}
	return &item, nil
}

func (f *fakeCatalog) GetCategory(ctx context.Context, categoryID string) (*domain.Category, error) {
	category, ok := f.categories[categoryID]
	if !ok {
		return nil, nil
	}
	return &category, nil
}

func (f *fakeCatalog) ListItems(ctx context.Context) ([]domain.Item, error) {
	items := make([]domain.Item, 0, len(f.items))
	for _, item := range f.items {
		items = append(items, item)
	}
	return items, nil
}

func (f *fakeCatalog) CreateItem(ctx context.Context, item *domain.Item) error {
	f.items[item.ID] = *item
	return nil
}

func (f *fakeCatalog) UpdateItem(ctx context.Context, item *domain.Item) error {
	f.items[item.ID] = *item
	return nil
}

func (f *fakeCatalog) DeleteItem(ctx context.Context, itemID string) error {
	delete(f.items, itemID)
	return nil
}

func (f *fakeCatalog) ListCategories(ctx context.Context) ([]domain.Category, error) {
	categories := make([]domain.Category, 0, len(f.categories))
	for _, category := range f.categories {
		categories = append(categories, category)
	}
	return categories, nil
}

func (f *fakeCatalog) CreateCategory(ctx context.Context, category *domain.Category) error {
	f.categories[category.ID] = *category
	return nil
}

func (f *fakeCatalog) UpdateCategory(ctx context.Context, category *domain.Category) error {
	f.categories[category.ID] = *category
	return nil
}

func (f *fakeCatalog) DeleteCategory(ctx context.Context, categoryID string) error {
	delete(f.categories, categoryID)
	return nil
}

func (f *fakeCatalog) CategoryHasItems(ctx context.Context, categoryID string) (bool, error) {
	for _, item := range f.items {
		if item.CategoryID == categoryID {
			return true, nil
		}
	}
	return false, nil
}

type fakeCustomers struct {
	customers map[string]domain.Customer
}

func newFakeCustomers() *fakeCustomers {
	return &fakeCustomers{customers: make(map[string]domain.Customer)}
}

func (f *fakeCustomers) GetCustomer(ctx context.Context, customerID string) (*domain.Customer, error) {
	customer, ok := f.customers[customerID]
	if !ok {
		return nil, nil
	}
	return &customer, nil
}

func (f *fakeCustomers) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	customers := make([]domain.Customer, 0, len(f.customers))
	for _, customer := range f.customers {
		customers = append(customers, customer)
	}
	return customers, nil
}

func (f *fakeCustomers) CreateCustomer(ctx context.Context, customer *domain.Customer) error {
	f.customers[customer.ID] = *customer
	return nil
}

func (f *fakeCustomers) UpdateCustomer(ctx context.Context, customer *domain.Customer) error {
	f.customers[customer.ID] = *customer
	return nil
}

func (f *fakeCustomers) DeleteCustomer(ctx context.Context, customerID string) error {
	delete(f.customers, customerID)
	return nil
}

type fakeInvoices struct {
	mu      sync.Mutex
	counter int64
	stored  []*domain.Invoice
}

func (f *fakeInvoices) Store(ctx context.Context, invoice *domain.Invoice) (*domain.Invoice, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.counter++
	copied := *invoice
	copied.Number = fmt.Sprintf("INV-%06d", f.counter)
	f.stored = append(f.stored, &copied)
	return &copied, nil
}

func (f *fakeInvoices) GetByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, invoice := range f.stored {
		if invoice.ID == invoiceID {
			return invoice, nil
		}
	}
	return nil, nil
}

func (f *fakeInvoices) ListAll(ctx context.Context) ([]domain.InvoiceSummary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	summaries := make([]domain.InvoiceSummary, 0, len(f.stored))
	for _, invoice := range f.stored {
		summaries = append(summaries, domain.InvoiceSummary{
			ID:           invoice.ID,
			Number:       invoice.Number,
			CustomerName: invoice.CustomerName,
			Date:         invoice.Date,
			TotalAmount:  invoice.TotalAmount,
		})
	}
	return summaries, nil
}

func (f *fakeInvoices) ItemReferenced(ctx context.Context, itemID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, invoice := range f.stored {
		for _, line := range invoice.Lines {
			if line.ItemID == itemID {
				return true, nil
			}
		}
	}
	return false, nil
}

func (f *fakeInvoices) CustomerHasInvoices(ctx context.Context, customerID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, invoice := range f.stored {
		if invoice.CustomerID == customerID {
			return true, nil
		}
	}
	return false, nil
}

func newTestRouter() *gin.Engine {
	catalog := newFakeCatalog()
	catalog.categories["cat-1"] = domain.Category{ID: "cat-1", Name: "Pizza"}
	catalog.items["item-pizza"] = domain.Item{
		ID:         "item-pizza",
		CategoryID: "cat-1",
		Name:       "Margherita",
		UnitPrice:  decimal.RequireFromString("850.00"),
	}
	catalog.items["item-cola"] = domain.Item{
		ID:         "item-cola",
		CategoryID: "cat-1",
		Name:       "Cola 1.5L",
		UnitPrice:  decimal.RequireFromString("450.50"),
	}

	customers := newFakeCustomers()
	customers.customers["cust-1"] = domain.Customer{
		ID:    "cust-1",
		Name:  "Nimal Perera",
		Phone: "0771234567",
	}

	invoices := &fakeInvoices{}

	invoiceHandler := NewInvoiceHandler(
		service.NewInvoiceService(catalog, customers, invoices),
		pdf.NewRenderer("Pizza Shop", "LKR"),
	)
	catalogHandler := NewCatalogHandler(service.NewCatalogService(catalog, invoices))
	customerHandler := NewCustomerHandler(service.NewCustomerService(customers, invoices))

	return NewRouter(invoiceHandler, catalogHandler, customerHandler, "", zap.NewNop())
}

func doJSON(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateInvoiceEndpoint(t *testing.T) {
	router := newTestRouter()

	w := doJSON(router, http.MethodPost, "/api/v1/invoices", `{
		"customer_id": "cust-1",
		"tax_rate": 10,
		"items": [
			{"item_id": "item-pizza", "quantity": 2},
			{"item_id": "item-cola", "quantity": 3}
		]
	}`)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Data invoiceResponse `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Data.InvoiceNumber != "INV-000001" {
		t.Errorf("expected INV-000001, got %s", resp.Data.InvoiceNumber)
	}
	if resp.Data.SubTotal != "3051.50" {
		t.Errorf("expected sub total 3051.50, got %s", resp.Data.SubTotal)
	}
	if resp.Data.TaxAmount != "305.15" {
		t.Errorf("expected tax 305.15, got %s", resp.Data.TaxAmount)
	}
	if resp.Data.TotalAmount != "3356.65" {
		t.Errorf("expected total 3356.65, got %s", resp.Data.TotalAmount)
	}
	if len(resp.Data.Items) != 2 {
		t.Errorf("expected 2 lines, got %d", len(resp.Data.Items))
	}
}

func TestCreateInvoiceEndpoint_EmptyItems(t *testing.T) {
	router := newTestRouter()

	w := doJSON(router, http.MethodPost, "/api/v1/invoices",
		`{"customer_id": "cust-1", "tax_rate": 10, "items": []}`)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestCreateInvoiceEndpoint_UnknownItem(t *testing.T) {
	router := newTestRouter()

	w := doJSON(router, http.MethodPost, "/api/v1/invoices", `{
		"customer_id": "cust-1",
		"tax_rate": 10,
		"items": [{"item_id": "ITEM-999", "quantity": 1}]
	}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "ITEM-999") {
		t.Errorf("expected error to name the offending item, got: %s", w.Body.String())
	}
}

func TestGetInvoiceEndpoint_NotFound(t *testing.T) {
	router := newTestRouter()

	w := doJSON(router, http.MethodGet, "/api/v1/invoices/inv-999", "")
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d: %s", w.Code, w.Body.String())
	}
}

func TestInvoicePDFEndpoint(t *testing.T) {
	router := newTestRouter()

	w := doJSON(router, http.MethodPost, "/api/v1/invoices", `{
		"customer_id": "cust-1",
		"tax_rate": 10,
		"items": [{"item_id": "item-pizza", "quantity": 1}]
	}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	var resp struct {
		Data invoiceResponse `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	pdfResp := doJSON(router, http.MethodGet, "/api/v1/invoices/"+resp.Data.InvoiceID+"/pdf", "")
	if pdfResp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", pdfResp.Code, pdfResp.Body.String())
	}
	if ct := pdfResp.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("expected application/pdf, got %s", ct)
	}
	if !bytes.HasPrefix(pdfResp.Body.Bytes(), []byte("%PDF")) {
		t.Error("expected body to start with %PDF header")
	}
}

func TestCreateCustomerEndpoint_InvalidEmail(t *testing.T) {
	router := newTestRouter()

	w := doJSON(router, http.MethodPost, "/api/v1/customers",
		`{"customer_name": "Nimal", "email": "not-an-email"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestDeleteItemEndpoint_Conflict(t *testing.T) {
	router := newTestRouter()

	w := doJSON(router, http.MethodPost, "/api/v1/invoices", `{
		"customer_id": "cust-1",
		"tax_rate": 10,
		"items": [{"item_id": "item-pizza", "quantity": 1}]
	}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	del := doJSON(router, http.MethodDelete, "/api/v1/items/item-pizza", "")
	if del.Code != http.StatusConflict {
		t.Errorf("expected 409, got %d: %s", del.Code, del.Body.String())
	}
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter()

	w := doJSON(router, http.MethodGet, "/health", "")
	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}
