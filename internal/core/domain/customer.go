package domain

import (
	"errors"
	"fmt"
	"net/mail"
	"time"
)

type Customer struct {
	ID        string
	Name      string
	Phone     string
	Email     string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (c Customer) Validate() error {
	if c.Name == "" {
		return errors.New("customer name cannot be empty")
	}
	if len(c.Name) > maxNameLength {
		return fmt.Errorf("customer name exceeds %d characters", maxNameLength)
	}
	if c.Phone != "" && !isTenDigits(c.Phone) {
		return errors.New("phone must be exactly 10 digits")
	}
	if c.Email != "" {
		if _, err := mail.ParseAddress(c.Email); err != nil {
			return fmt.Errorf("invalid email address: %w", err)
		}
	}
	if len(c.Address) > maxDescriptionLength {
		return fmt.Errorf("address exceeds %d characters", maxDescriptionLength)
	}
	return nil
}

func isTenDigits(s string) bool {
	if len(s) != 10 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
