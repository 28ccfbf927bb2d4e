package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"storefront/internal/models"
	"storefront/internal/repositories"
	"storefront/internal/utils"
)

type CreateUserRequest struct {
	FirstName       string  `json:"first_name" binding:"required"`
	LastName        string  `json:"last_name" binding:"required"`
	Email           string  `json:"email" binding:"required,email"`
	Password        string  `json:"password" binding:"required"`
	ShippingAddress *string `json:"shipping_address"`
}

type AddToCartRequest struct {
	ItemID   uuid.UUID `json:"item_id" binding:"required"`
	Quantity int       `json:"quantity" binding:"required,gt=0"`
}

type UserService struct {
	userRepo repositories.UserRepository
	catalog  ItemCatalog
}

func NewUserService(userRepo repositories.UserRepository, catalog ItemCatalog) *UserService {
	return &UserService{
		userRepo: userRepo,
		catalog:  catalog,
	}
}

func (s *UserService) CreateUser(ctx context.Context, req CreateUserRequest) (*models.User, error) {
	existing, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUserExists
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:              uuid.New(),
		Email:           req.Email,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		HashedPassword:  hashed,
		ShippingAddress: req.ShippingAddress,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		// The unique constraint is the backstop for concurrent registrations.
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, ErrUserExists
		}
		return nil, err
	}

	return user, nil
}

// AddItemToCart validates the user, the item, its stock, and that the item is
// not yet in the cart, then returns the full cart contents. Stock is checked
// but not reserved.
func (s *UserService) AddItemToCart(ctx context.Context, userID uuid.UUID, req AddToCartRequest) ([]models.CartItem, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	item, err := s.catalog.GetItem(ctx, req.ItemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrItemNotFound
	}

	inStock, err := s.catalog.CheckStock(ctx, req.ItemID, req.Quantity)
	if err != nil {
		return nil, err
	}
	if !inStock {
		return nil, ErrNotEnoughStock
	}

	cartItems, err := s.userRepo.CartItems(ctx, userID)
	if err != nil {
		return nil, err
	}
	for _, ci := range cartItems {
		if ci.ItemID == req.ItemID {
			return nil, ErrItemAlreadyInCart
		}
	}

	cartItem := &models.CartItem{
		UserID:   userID,
		ItemID:   req.ItemID,
		Quantity: req.Quantity,
	}
	if err := s.userRepo.AddCartItem(ctx, cartItem); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, ErrItemAlreadyInCart
		}
		return nil, err
	}

	return s.userRepo.CartItems(ctx, userID)
}

// ListCartItems returns the cart contents. An unknown user simply has an
// empty cart.
func (s *UserService) ListCartItems(ctx context.Context, userID uuid.UUID) ([]models.CartItem, error) {
	return s.userRepo.CartItems(ctx, userID)
}
