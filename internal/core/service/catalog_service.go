package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pizzapos/backend/internal/core/domain"
	"github.com/pizzapos/backend/internal/port"
)

var (
	ErrInvalidRecord = errors.New("invalid record")
	ErrInUse         = errors.New("record is still referenced")
)

type CatalogService struct {
	catalog  port.CatalogRepository
	invoices port.InvoiceRepository
}

func NewCatalogService(catalog port.CatalogRepository, invoices port.InvoiceRepository) *CatalogService {
	return &CatalogService{catalog: catalog, invoices: invoices}
}

func (s *CatalogService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.catalog.ListCategories(ctx)
}

func (s *CatalogService) GetCategory(ctx context.Context, categoryID string) (*domain.Category, error) {
	category, err := s.catalog.GetCategory(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}
	if category == nil {
		return nil, fmt.Errorf("%w: category %s", ErrNotFound, categoryID)
	}
	return category, nil
}

func (s *CatalogService) CreateCategory(ctx context.Context, category *domain.Category) error {
	if err := category.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}
	category.ID = uuid.New().String()
	now := time.Now()
	category.CreatedAt = now
	category.UpdatedAt = now
	return s.catalog.CreateCategory(ctx, category)
}

func (s *CatalogService) UpdateCategory(ctx context.Context, category *domain.Category) error {
	if err := category.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}
	existing, err := s.catalog.GetCategory(ctx, category.ID)
	if err != nil {
		return fmt.Errorf("get category: %w", err)
	}
	if existing == nil {
		return fmt.Errorf("%w: category %s", ErrNotFound, category.ID)
	}
	category.UpdatedAt = time.Now()
	return s.catalog.UpdateCategory(ctx, category)
}

func (s *CatalogService) DeleteCategory(ctx context.Context, categoryID string) error {
	hasItems, err := s.catalog.CategoryHasItems(ctx, categoryID)
	if err != nil {
		return fmt.Errorf("check category items: %w", err)
	}
	if hasItems {
		return fmt.Errorf("%w: category %s has active items", ErrInUse, categoryID)
	}
	return s.catalog.DeleteCategory(ctx, categoryID)
}

func (s *CatalogService) ListItems(ctx context.Context) ([]domain.Item, error) {
	return s.catalog.ListItems(ctx)
}

func (s *CatalogService) GetItem(ctx context.Context, itemID string) (*domain.Item, error) {
	item, err := s.catalog.GetItem(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}
	if item == nil {
		return nil, fmt.Errorf("%w: item %s", ErrNotFound, itemID)
	}
	return item, nil
}

func (s *CatalogService) CreateItem(ctx context.Context, item *domain.Item) error {
	if err := item.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}
	category, err := s.catalog.GetCategory(ctx, item.CategoryID)
	if err != nil {
		return fmt.Errorf("get category: %w", err)
	}
	if category == nil {
		return fmt.Errorf("%w: category %s", ErrNotFound, item.CategoryID)
	}
	item.ID = uuid.New().String()
	now := time.Now()
	item.CreatedAt = now
	item.UpdatedAt = now
	return s.catalog.CreateItem(ctx, item)
}

func (s *CatalogService) UpdateItem(ctx context.Context, item *domain.Item) error {
	if err := item.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}
	existing, err := s.catalog.GetItem(ctx, item.ID)
	if err != nil {
		return fmt.Errorf("get item: %w", err)
	}
	if existing == nil {
		return fmt.Errorf("%w: item %s", ErrNotFound, item.ID)
	}
	category, err := s.catalog.GetCategory(ctx, item.CategoryID)
	if err != nil {
		return fmt.Errorf("get category: %w", err)
	}
	if category == nil {
		return fmt.Errorf("%w: category %s", ErrNotFound, item.CategoryID)
	}
	item.UpdatedAt = time.Now()
	return s.catalog.UpdateItem(ctx, item)
}

// DeleteItem refuses to remove items that appear on stored invoices. Invoice
// lines carry their own snapshot, but the catalog row is kept so the item can
// be restocked without renumbering.
func (s *CatalogService) DeleteItem(ctx context.Context, itemID string) error {
	referenced, err := s.invoices.ItemReferenced(ctx, itemID)
	if err != nil {
		return fmt.Errorf("check item references: %w", err)
	}
	if referenced {
		return fmt.Errorf("%w: item %s appears on invoices", ErrInUse, itemID)
	}
	return s.catalog.DeleteItem(ctx, itemID)
}
