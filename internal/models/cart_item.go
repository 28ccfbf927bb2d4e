package models

import (
	"errors"

	"github.com/google/uuid"
)

// CartItem is one row of a user's cart. The (user_id, item_id) pair is the
// primary key, so a given item appears at most once per cart.
type CartItem struct {
	UserID   uuid.UUID `json:"user_id"`
	ItemID   uuid.UUID `json:"item_id"`
	Quantity int       `json:"quantity"`
}

func (c *CartItem) Validate() error {
	if c.Quantity <= 0 {
		return errors.New("quantity must be positive")
	}
	return nil
}
