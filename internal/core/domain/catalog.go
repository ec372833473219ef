package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

const (
	maxNameLength        = 100
	maxDescriptionLength = 500
)

type Category struct {
	ID          string
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (c Category) Validate() error {
	if c.Name == "" {
		return errors.New("category name cannot be empty")
	}
	if len(c.Name) > maxNameLength {
		return fmt.Errorf("category name exceeds %d characters", maxNameLength)
	}
	if len(c.Description) > maxDescriptionLength {
		return fmt.Errorf("category description exceeds %d characters", maxDescriptionLength)
	}
	return nil
}

type Item struct {
	ID          string
	CategoryID  string
	Name        string
	Description string
	UnitPrice   decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// CategoryName is joined from the category for listing views.
	CategoryName string
}

func (i Item) Validate() error {
	if i.Name == "" {
		return errors.New("item name cannot be empty")
	}
	if len(i.Name) > maxNameLength {
		return fmt.Errorf("item name exceeds %d characters", maxNameLength)
	}
	if len(i.Description) > maxDescriptionLength {
		return fmt.Errorf("item description exceeds %d characters", maxDescriptionLength)
	}
	if i.CategoryID == "" {
		return errors.New("item category cannot be empty")
	}
	if !i.UnitPrice.IsPositive() {
		return errors.New("unit price must be positive")
	}
	if i.UnitPrice.Exponent() < -2 {
		return errors.New("unit price cannot have more than 2 decimal places")
	}
	return nil
}
