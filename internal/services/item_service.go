package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"storefront/internal/models"
	"storefront/internal/repositories"
)

type CreateItemRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description *string         `json:"description"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	Quantity    int             `json:"quantity"`
}

// ItemCatalog is the view of the catalog the cart flow needs. ItemService
// implements it; tests substitute their own.
type ItemCatalog interface {
	GetItem(ctx context.Context, itemID uuid.UUID) (*models.Item, error)
	CheckStock(ctx context.Context, itemID uuid.UUID, quantity int) (bool, error)
}

type ItemService struct {
	itemRepo repositories.ItemRepository
}

func NewItemService(itemRepo repositories.ItemRepository) *ItemService {
	return &ItemService{itemRepo: itemRepo}
}

func (s *ItemService) CreateItem(ctx context.Context, req CreateItemRequest) (*models.Item, error) {
	item := &models.Item{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Quantity:    req.Quantity,
	}
	item.Prepare()

	if err := item.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidation, err)
	}

	existing, err := s.itemRepo.FindByName(ctx, item.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrItemExists
	}

	if err := s.itemRepo.Create(ctx, item); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, ErrItemExists
		}
		return nil, err
	}

	return item, nil
}

func (s *ItemService) ListItems(ctx context.Context) ([]models.Item, error) {
	return s.itemRepo.All(ctx)
}

func (s *ItemService) GetItem(ctx context.Context, itemID uuid.UUID) (*models.Item, error) {
	return s.itemRepo.FindByID(ctx, itemID)
}

// CheckStock reports whether the item exists and has at least quantity units
// in stock.
func (s *ItemService) CheckStock(ctx context.Context, itemID uuid.UUID, quantity int) (bool, error) {
	item, err := s.itemRepo.FindByID(ctx, itemID)
	if err != nil {
		return false, err
	}
	return item != nil && item.Quantity >= quantity, nil
}
