package service

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/pizzapos/backend/internal/core/domain"
)

// Mock CatalogRepository
type mockCatalogRepo struct {
	categories map[string]domain.Category
	items      map[string]domain.Item
}

func newMockCatalogRepo() *mockCatalogRepo {
	return &mockCatalogRepo{
		categories: make(map[string]domain.Category),
		items:      make(map[string]domain.Item),
	}
}

func (m *mockCatalogRepo) GetItem(ctx context.Context, itemID string) (*domain.Item, error) {
	item, ok := m.items[itemID]
	if !ok {
		return nil, nil
	}
	return &item, nil
}

func (m *mockCatalogRepo) GetCategory(ctx context.Context, categoryID string) (*domain.Category, error) {
	category, ok := m.categories[categoryID]
	if !ok {
		return nil, nil
	}
	return &category, nil
}

func (m *mockCatalogRepo) ListItems(ctx context.Context) ([]domain.Item, error) {
	items := make([]domain.Item, 0, len(m.items))
	for _, item := range m.items {
		items = append(items, item)
	}
	return items, nil
}

func (m *mockCatalogRepo) CreateItem(ctx context.Context, item *domain.Item) error {
	m.items[item.ID] = *item
	return nil
}

func (m *mockCatalogRepo) UpdateItem(ctx context.Context, item *domain.Item) error {
	m.items[item.ID] = *item
	return nil
}

func (m *mockCatalogRepo) DeleteItem(ctx context.Context, itemID string) error {
	delete(m.items, itemID)
	return nil
}

func (m *mockCatalogRepo) ListCategories(ctx context.Context) ([]domain.Category, error) {
	categories := make([]domain.Category, 0, len(m.categories))
	for _, category := range m.categories {
		categories = append(categories, category)
	}
	return categories, nil
}

func (m *mockCatalogRepo) CreateCategory(ctx context.Context, category *domain.Category) error {
	m.categories[category.ID] = *category
	return nil
}

func (m *mockCatalogRepo) UpdateCategory(ctx context.Context, category *domain.Category) error {
	m.categories[category.ID] = *category
	return nil
}

func (m *mockCatalogRepo) DeleteCategory(ctx context.Context, categoryID string) error {
	delete(m.categories, categoryID)
	return nil
}

func (m *mockCatalogRepo) CategoryHasItems(ctx context.Context, categoryID string) (bool, error) {
	for _, item := range m.items {
		if item.CategoryID == categoryID {
			return true, nil
		}
	}
	return false, nil
}

func newTestCatalogService() (*CatalogService, *mockCatalogRepo, *mockInvoiceRepo) {
	repo := newMockCatalogRepo()
	repo.categories["cat-1"] = domain.Category{ID: "cat-1", Name: "Pizza"}
	invoices := &mockInvoiceRepo{}
	return NewCatalogService(repo, invoices), repo, invoices
}

func TestCreateItem_Success(t *testing.T) {
	svc, repo, _ := newTestCatalogService()

	item := &domain.Item{
		CategoryID: "cat-1",
		Name:       "Margherita",
		UnitPrice:  decimal.RequireFromString("850.00"),
	}
	if err := svc.CreateItem(context.Background(), item); err != nil {
		t.Fatalf("CreateItem failed: %v", err)
	}
	if item.ID == "" {
		t.Error("expected generated item ID")
	}
	if _, ok := repo.items[item.ID]; !ok {
		t.Error("item not stored")
	}
}

func TestCreateItem_UnknownCategory(t *testing.T) {
	svc, _, _ := newTestCatalogService()

	item := &domain.Item{
		CategoryID: "cat-999",
		Name:       "Margherita",
		UnitPrice:  decimal.RequireFromString("850.00"),
	}
	err := svc.CreateItem(context.Background(), item)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got: %v", err)
	}
}

func TestCreateItem_InvalidPrice(t *testing.T) {
	svc, _, _ := newTestCatalogService()

	item := &domain.Item{CategoryID: "cat-1", Name: "Margherita", UnitPrice: decimal.Zero}
	err := svc.CreateItem(context.Background(), item)
	if !errors.Is(err, ErrInvalidRecord) {
		t.Errorf("expected ErrInvalidRecord, got: %v", err)
	}
}

func TestDeleteItem_BlockedWhenInvoiced(t *testing.T) {
	svc, repo, invoices := newTestCatalogService()
	repo.items["item-1"] = domain.Item{ID: "item-1", CategoryID: "cat-1", Name: "Margherita",
		UnitPrice: decimal.RequireFromString("850.00")}
	invoices.stored = append(invoices.stored, &domain.Invoice{
		ID:    "inv-1",
		Lines: []domain.InvoiceLine{{ItemID: "item-1"}},
	})

	err := svc.DeleteItem(context.Background(), "item-1")
	if !errors.Is(err, ErrInUse) {
		t.Errorf("expected ErrInUse, got: %v", err)
	}
	if _, ok := repo.items["item-1"]; !ok {
		t.Error("item must not be deleted while referenced")
	}
}

func TestDeleteItem_Unreferenced(t *testing.T) {
	svc, repo, _ := newTestCatalogService()
	repo.items["item-1"] = domain.Item{ID: "item-1", CategoryID: "cat-1", Name: "Margherita",
		UnitPrice: decimal.RequireFromString("850.00")}

	if err := svc.DeleteItem(context.Background(), "item-1"); err != nil {
		t.Fatalf("DeleteItem failed: %v", err)
	}
	if _, ok := repo.items["item-1"]; ok {
		t.Error("expected item to be deleted")
	}
}

func TestDeleteCategory_BlockedWhenHasItems(t *testing.T) {
	svc, repo, _ := newTestCatalogService()
	repo.items["item-1"] = domain.Item{ID: "item-1", CategoryID: "cat-1", Name: "Margherita",
		UnitPrice: decimal.RequireFromString("850.00")}

	err := svc.DeleteCategory(context.Background(), "cat-1")
	if !errors.Is(err, ErrInUse) {
		t.Errorf("expected ErrInUse, got: %v", err)
	}
}

func TestUpdateCategory_NotFound(t *testing.T) {
	svc, _, _ := newTestCatalogService()

	err := svc.UpdateCategory(context.Background(), &domain.Category{ID: "cat-999", Name: "Drinks"})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got: %v", err)
	}
}
