package repositories

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"storefront/internal/models"
)

// In-memory implementations of the repository interfaces. They back the unit
// tests and let the service run without a database.

type MemoryUserRepository struct {
	mu    sync.RWMutex
	users map[uuid.UUID]models.User
	carts map[uuid.UUID][]models.CartItem
}

func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{
		users: make(map[uuid.UUID]models.User),
		carts: make(map[uuid.UUID][]models.CartItem),
	}
}

func (r *MemoryUserRepository) Create(_ context.Context, user *models.User) error {
	user.Prepare()

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.Email == user.Email {
			return ErrDuplicate
		}
	}
	r.users[user.ID] = *user
	return nil
}

func (r *MemoryUserRepository) FindByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, nil
}

func (r *MemoryUserRepository) FindByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	u := user
	return &u, nil
}

func (r *MemoryUserRepository) CartItems(_ context.Context, userID uuid.UUID) ([]models.CartItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]models.CartItem, len(r.carts[userID]))
	copy(items, r.carts[userID])
	return items, nil
}

func (r *MemoryUserRepository) AddCartItem(_ context.Context, item *models.CartItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.carts[item.UserID] {
		if existing.ItemID == item.ItemID {
			return ErrDuplicate
		}
	}
	r.carts[item.UserID] = append(r.carts[item.UserID], *item)
	return nil
}

type MemoryItemRepository struct {
	mu    sync.RWMutex
	items map[uuid.UUID]models.Item
	order []uuid.UUID
}

func NewMemoryItemRepository() *MemoryItemRepository {
	return &MemoryItemRepository{items: make(map[uuid.UUID]models.Item)}
}

func (r *MemoryItemRepository) Create(_ context.Context, item *models.Item) error {
	item.Prepare()

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.items {
		if existing.Name == item.Name {
			return ErrDuplicate
		}
	}
	r.items[item.ID] = *item
	r.order = append(r.order, item.ID)
	return nil
}

func (r *MemoryItemRepository) FindByName(_ context.Context, name string) (*models.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.items {
		if item.Name == name {
			i := item
			return &i, nil
		}
	}
	return nil, nil
}

func (r *MemoryItemRepository) FindByID(_ context.Context, id uuid.UUID) (*models.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	i := item
	return &i, nil
}

func (r *MemoryItemRepository) All(_ context.Context) ([]models.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]models.Item, 0, len(r.order))
	for _, id := range r.order {
		items = append(items, r.items[id])
	}
	return items, nil
}
