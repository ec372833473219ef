package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/pizzapos/backend/internal/core/domain"
)

type MySQLCatalog struct {
	db *sql.DB
}

func NewMySQLCatalog(db *sql.DB) *MySQLCatalog {
	return &MySQLCatalog{db: db}
}

func (m *MySQLCatalog) GetItem(ctx context.Context, itemID string) (*domain.Item, error) {
	var item domain.Item
	err := m.db.QueryRowContext(ctx, `
		SELECT id, category_id, name, description, unit_price, created_at, updated_at
		FROM items WHERE id = ?`, itemID,
	).Scan(&item.ID, &item.CategoryID, &item.Name, &item.Description, &item.UnitPrice,
		&item.CreatedAt, &item.UpdatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query item: %w", err)
	}
	return &item, nil
}

func (m *MySQLCatalog) GetCategory(ctx context.Context, categoryID string) (*domain.Category, error) {
	var category domain.Category
	err := m.db.QueryRowContext(ctx, `
		SELECT id, name, description, created_at, updated_at
		FROM categories WHERE id = ?`, categoryID,
	).Scan(&category.ID, &category.Name, &category.Description,
		&category.CreatedAt, &category.UpdatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query category: %w", err)
	}
	return &category, nil
}

func (m *MySQLCatalog) ListItems(ctx context.Context) ([]domain.Item, error) {
	rows, err := m.db.QueryContext(ctx, `
		SELECT i.id, i.category_id, i.name, i.description, i.unit_price,
		       i.created_at, i.updated_at, c.name
		FROM items i
		LEFT JOIN categories c ON i.category_id = c.id
		ORDER BY i.name`)
	if err != nil {
		return nil, fmt.Errorf("query items: %w", err)
	}
	defer rows.Close()

	var items []domain.Item
	for rows.Next() {
		var item domain.Item
		var categoryName sql.NullString
		if err := rows.Scan(&item.ID, &item.CategoryID, &item.Name, &item.Description,
			&item.UnitPrice, &item.CreatedAt, &item.UpdatedAt, &categoryName); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		item.CategoryName = categoryName.String
		items = append(items, item)
	}
	return items, rows.Err()
}

func (m *MySQLCatalog) CreateItem(ctx context.Context, item *domain.Item) error {
	_, err := m.db.ExecContext(ctx, `
		INSERT INTO items (id, category_id, name, description, unit_price, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		item.ID, item.CategoryID, item.Name, item.Description, item.UnitPrice,
		item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

func (m *MySQLCatalog) UpdateItem(ctx context.Context, item *domain.Item) error {
	_, err := m.db.ExecContext(ctx, `
		UPDATE items
		SET category_id = ?, name = ?, description = ?, unit_price = ?, updated_at = ?
		WHERE id = ?`,
		item.CategoryID, item.Name, item.Description, item.UnitPrice,
		item.UpdatedAt, item.ID,
	)
	if err != nil {
		return fmt.Errorf("update item: %w", err)
	}
	return nil
}

func (m *MySQLCatalog) DeleteItem(ctx context.Context, itemID string) error {
	_, err := m.db.ExecContext(ctx, `DELETE FROM items WHERE id = ?`, itemID)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	return nil
}

func (m *MySQLCatalog) ListCategories(ctx context.Context) ([]domain.Category, error) {
	rows, err := m.db.QueryContext(ctx, `
		SELECT id, name, description, created_at, updated_at
		FROM categories ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("query categories: %w", err)
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		var category domain.Category
		if err := rows.Scan(&category.ID, &category.Name, &category.Description,
			&category.CreatedAt, &category.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, category)
	}
	return categories, rows.Err()
}

func (m *MySQLCatalog) CreateCategory(ctx context.Context, category *domain.Category) error {
	_, err := m.db.ExecContext(ctx, `
		INSERT INTO categories (id, name, description, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)`,
		category.ID, category.Name, category.Description,
		category.CreatedAt, category.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

func (m *MySQLCatalog) UpdateCategory(ctx context.Context, category *domain.Category) error {
	_, err := m.db.ExecContext(ctx, `
		UPDATE categories SET name = ?, description = ?, updated_at = ? WHERE id = ?`,
		category.Name, category.Description, category.UpdatedAt, category.ID,
	)
	if err != nil {
		return fmt.Errorf("update category: %w", err)
	}
	return nil
}

func (m *MySQLCatalog) DeleteCategory(ctx context.Context, categoryID string) error {
	_, err := m.db.ExecContext(ctx, `DELETE FROM categories WHERE id = ?`, categoryID)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}

func (m *MySQLCatalog) CategoryHasItems(ctx context.Context, categoryID string) (bool, error) {
	var count int
	err := m.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM items WHERE category_id = ?`, categoryID,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("count category items: %w", err)
	}
	return count > 0, nil
}
