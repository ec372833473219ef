package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/pizzapos/backend/internal/core/domain"
	"github.com/pizzapos/backend/internal/port"
)

type MySQLInvoices struct {
	db  *sql.DB
	seq port.NumberSequence
}

func NewMySQLInvoices(db *sql.DB, seq port.NumberSequence) *MySQLInvoices {
	return &MySQLInvoices{db: db, seq: seq}
}

// Store assigns the next invoice number and writes the header plus all lines
// in one transaction. A failed commit leaves a gap in the sequence; numbers
// are never reused.
func (m *MySQLInvoices) Store(ctx context.Context, invoice *domain.Invoice) (*domain.Invoice, error) {
	n, err := m.seq.Next(ctx)
	if err != nil {
		return nil, fmt.Errorf("next invoice number: %w", err)
	}
	number := fmt.Sprintf("INV-%06d", n)

	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO invoices (id, invoice_number, customer_id, customer_name,
			customer_phone, customer_email, customer_address, invoice_date,
			tax_rate, sub_total, tax_amount, total_amount)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		invoice.ID, number, invoice.CustomerID, invoice.CustomerName,
		invoice.CustomerPhone, invoice.CustomerEmail, invoice.CustomerAddress,
		invoice.Date, invoice.TaxRate, invoice.SubTotal, invoice.TaxAmount,
		invoice.TotalAmount,
	)
	if err != nil {
		return nil, fmt.Errorf("insert invoice: %w", err)
	}

	for i, line := range invoice.Lines {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO invoice_lines (invoice_id, position, item_id, item_name,
				item_description, quantity, unit_price, line_total)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			invoice.ID, i, line.ItemID, line.ItemName, line.ItemDescription,
			line.Quantity, line.UnitPrice, line.LineTotal,
		)
		if err != nil {
			return nil, fmt.Errorf("insert invoice line %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit invoice: %w", err)
	}

	stored := *invoice
	stored.Number = number
	return &stored, nil
}

func (m *MySQLInvoices) GetByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	var invoice domain.Invoice
	var phone, email, address sql.NullString
	err := m.db.QueryRowContext(ctx, `
		SELECT id, invoice_number, customer_id, customer_name, customer_phone,
		       customer_email, customer_address, invoice_date, tax_rate,
		       sub_total, tax_amount, total_amount
		FROM invoices WHERE id = ?`, invoiceID,
	).Scan(&invoice.ID, &invoice.Number, &invoice.CustomerID, &invoice.CustomerName,
		&phone, &email, &address, &invoice.Date, &invoice.TaxRate,
		&invoice.SubTotal, &invoice.TaxAmount, &invoice.TotalAmount)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query invoice: %w", err)
	}
	invoice.CustomerPhone = phone.String
	invoice.CustomerEmail = email.String
	invoice.CustomerAddress = address.String

	rows, err := m.db.QueryContext(ctx, `
		SELECT item_id, item_name, item_description, quantity, unit_price, line_total
		FROM invoice_lines WHERE invoice_id = ? ORDER BY position`, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("query invoice lines: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var line domain.InvoiceLine
		if err := rows.Scan(&line.ItemID, &line.ItemName, &line.ItemDescription,
			&line.Quantity, &line.UnitPrice, &line.LineTotal); err != nil {
			return nil, fmt.Errorf("scan invoice line: %w", err)
		}
		invoice.Lines = append(invoice.Lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read invoice lines: %w", err)
	}
	return &invoice, nil
}

// ListAll returns summaries oldest first. Numbers are assigned monotonically
// at store time, so number order is creation order.
func (m *MySQLInvoices) ListAll(ctx context.Context) ([]domain.InvoiceSummary, error) {
	rows, err := m.db.QueryContext(ctx, `
		SELECT id, invoice_number, customer_name, invoice_date, total_amount
		FROM invoices ORDER BY invoice_number`)
	if err != nil {
		return nil, fmt.Errorf("query invoices: %w", err)
	}
	defer rows.Close()

	var summaries []domain.InvoiceSummary
	for rows.Next() {
		var s domain.InvoiceSummary
		if err := rows.Scan(&s.ID, &s.Number, &s.CustomerName, &s.Date, &s.TotalAmount); err != nil {
			return nil, fmt.Errorf("scan invoice summary: %w", err)
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}

func (m *MySQLInvoices) ItemReferenced(ctx context.Context, itemID string) (bool, error) {
	var count int
	err := m.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM invoice_lines WHERE item_id = ?`, itemID,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("count invoice lines: %w", err)
	}
	return count > 0, nil
}

func (m *MySQLInvoices) CustomerHasInvoices(ctx context.Context, customerID string) (bool, error) {
	var count int
	err := m.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM invoices WHERE customer_id = ?`, customerID,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("count invoices: %w", err)
	}
	return count > 0, nil
}
