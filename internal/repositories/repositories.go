package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"storefront/internal/models"
)

// ErrDuplicate is returned when an insert violates a uniqueness rule
// (user email, item name, or a cart row that already exists).
var ErrDuplicate = errors.New("record already exists")

// UserRepository persists users and their cart rows. Lookups return
// (nil, nil) when no row matches.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	CartItems(ctx context.Context, userID uuid.UUID) ([]models.CartItem, error)
	AddCartItem(ctx context.Context, item *models.CartItem) error
}

// ItemRepository persists catalog items. Lookups return (nil, nil) when no
// row matches.
type ItemRepository interface {
	Create(ctx context.Context, item *models.Item) error
	FindByName(ctx context.Context, name string) (*models.Item, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Item, error)
	All(ctx context.Context) ([]models.Item, error)
}
