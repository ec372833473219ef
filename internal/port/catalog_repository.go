package port

import (
	"context"

	"github.com/pizzapos/backend/internal/core/domain"
)

// CatalogLookup is the read-only view the pricing engine needs.
type CatalogLookup interface {
	// GetItem returns the current catalog item, or nil if it does not exist
	GetItem(ctx context.Context, itemID string) (*domain.Item, error)

	// GetCategory returns a category, or nil if it does not exist
	GetCategory(ctx context.Context, categoryID string) (*domain.Category, error)
}

type CatalogRepository interface {
	CatalogLookup

	ListItems(ctx context.Context) ([]domain.Item, error)
	CreateItem(ctx context.Context, item *domain.Item) error
	UpdateItem(ctx context.Context, item *domain.Item) error
	DeleteItem(ctx context.Context, itemID string) error

	ListCategories(ctx context.Context) ([]domain.Category, error)
	CreateCategory(ctx context.Context, category *domain.Category) error
	UpdateCategory(ctx context.Context, category *domain.Category) error
	DeleteCategory(ctx context.Context, categoryID string) error

	// CategoryHasItems reports whether any item still references the category
	CategoryHasItems(ctx context.Context, categoryID string) (bool, error)
}
