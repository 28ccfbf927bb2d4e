package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Item is a catalog entry. Quantity is the stock level, not a cart amount.
type Item struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Description *string         `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
	CreatedAt   time.Time       `json:"created_at"`
}

func (i *Item) Prepare() {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	i.Name = strings.TrimSpace(i.Name)
}

func (i *Item) Validate() error {
	if i.Name == "" {
		return errors.New("name is required")
	}
	if i.Price.IsNegative() {
		return errors.New("price cannot be negative")
	}
	if i.Quantity < 0 {
		return errors.New("quantity cannot be negative")
	}
	return nil
}
