package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/pizzapos/backend/internal/core/domain"
)

type MySQLCustomers struct {
	db *sql.DB
}

func NewMySQLCustomers(db *sql.DB) *MySQLCustomers {
	return &MySQLCustomers{db: db}
}

func (m *MySQLCustomers) GetCustomer(ctx context.Context, customerID string) (*domain.Customer, error) {
	var customer domain.Customer
	var phone, email, address sql.NullString
	err := m.db.QueryRowContext(ctx, `
		SELECT id, name, phone, email, address, created_at, updated_at
		FROM customers WHERE id = ?`, customerID,
	).Scan(&customer.ID, &customer.Name, &phone, &email, &address,
		&customer.CreatedAt, &customer.UpdatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query customer: %w", err)
	}

	customer.Phone = phone.String
	customer.Email = email.String
	customer.Address = address.String
	return &customer, nil
}

func (m *MySQLCustomers) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	rows, err := m.db.QueryContext(ctx, `
		SELECT id, name, phone, email, address, created_at, updated_at
		FROM customers ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("query customers: %w", err)
	}
	defer rows.Close()

	var customers []domain.Customer
	for rows.Next() {
		var customer domain.Customer
		var phone, email, address sql.NullString
		if err := rows.Scan(&customer.ID, &customer.Name, &phone, &email, &address,
			&customer.CreatedAt, &customer.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		customer.Phone = phone.String
		customer.Email = email.String
		customer.Address = address.String
		customers = append(customers, customer)
	}
	return customers, rows.Err()
}

func (m *MySQLCustomers) CreateCustomer(ctx context.Context, customer *domain.Customer) error {
	_, err := m.db.ExecContext(ctx, `
		INSERT INTO customers (id, name, phone, email, address, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		customer.ID, customer.Name, customer.Phone, customer.Email, customer.Address,
		customer.CreatedAt, customer.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

func (m *MySQLCustomers) UpdateCustomer(ctx context.Context, customer *domain.Customer) error {
	_, err := m.db.ExecContext(ctx, `
		UPDATE customers
		SET name = ?, phone = ?, email = ?, address = ?, updated_at = ?
		WHERE id = ?`,
		customer.Name, customer.Phone, customer.Email, customer.Address,
		customer.UpdatedAt, customer.ID,
	)
	if err != nil {
		return fmt.Errorf("update customer: %w", err)
	}
	return nil
}

func (m *MySQLCustomers) DeleteCustomer(ctx context.Context, customerID string) error {
	_, err := m.db.ExecContext(ctx, `DELETE FROM customers WHERE id = ?`, customerID)
	if err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	return nil
}
