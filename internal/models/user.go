package models

import (
	"html"
	"strings"
	"time"

	"github.com/google/uuid"
)

// User matches the users table created by the schema migrations.
type User struct {
	ID              uuid.UUID `json:"id"`
	Email           string    `json:"email"`
	FirstName       string    `json:"first_name"`
	LastName        string    `json:"last_name"`
	HashedPassword  string    `json:"-"`
	ShippingAddress *string   `json:"shipping_address,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

func (u *User) Prepare() {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	u.Email = html.EscapeString(strings.TrimSpace(u.Email))
	u.FirstName = strings.TrimSpace(u.FirstName)
	u.LastName = strings.TrimSpace(u.LastName)
}
