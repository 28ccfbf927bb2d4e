package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/models"
	"storefront/internal/repositories"
)

func newUserServiceFixture(t *testing.T) (*UserService, *ItemService) {
	t.Helper()
	itemService := NewItemService(repositories.NewMemoryItemRepository())
	userService := NewUserService(repositories.NewMemoryUserRepository(), itemService)
	return userService, itemService
}

func createUserRequest() CreateUserRequest {
	return CreateUserRequest{
		FirstName: "John",
		LastName:  "Doe",
		Email:     "john.doe@example.com",
		Password:  "password",
	}
}

func seedItem(t *testing.T, itemService *ItemService, quantity int) *models.Item {
	t.Helper()
	item, err := itemService.CreateItem(context.Background(), CreateItemRequest{
		Name:     "Widget",
		Price:    decimal.NewFromFloat(9.99),
		Quantity: quantity,
	})
	require.NoError(t, err)
	return item
}

func TestCreateUser(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		userService, _ := newUserServiceFixture(t)

		user, err := userService.CreateUser(ctx, createUserRequest())
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, user.ID)
		assert.Equal(t, "john.doe@example.com", user.Email)
		assert.Equal(t, "John", user.FirstName)
		assert.NotEmpty(t, user.HashedPassword)
		assert.NotEqual(t, "password", user.HashedPassword)
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		userService, _ := newUserServiceFixture(t)

		_, err := userService.CreateUser(ctx, createUserRequest())
		require.NoError(t, err)

		_, err = userService.CreateUser(ctx, createUserRequest())
		assert.ErrorIs(t, err, ErrUserExists)
	})
}

func TestAddItemToCart(t *testing.T) {
	ctx := context.Background()

	t.Run("success returns full cart", func(t *testing.T) {
		userService, itemService := newUserServiceFixture(t)
		user, err := userService.CreateUser(ctx, createUserRequest())
		require.NoError(t, err)
		item := seedItem(t, itemService, 5)

		cart, err := userService.AddItemToCart(ctx, user.ID, AddToCartRequest{
			ItemID:   item.ID,
			Quantity: 2,
		})
		require.NoError(t, err)

		require.Len(t, cart, 1)
		assert.Equal(t, item.ID, cart[0].ItemID)
		assert.Equal(t, 2, cart[0].Quantity)
	})

	t.Run("unknown user conflicts", func(t *testing.T) {
		userService, itemService := newUserServiceFixture(t)
		item := seedItem(t, itemService, 5)

		_, err := userService.AddItemToCart(ctx, uuid.New(), AddToCartRequest{
			ItemID:   item.ID,
			Quantity: 1,
		})
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("unknown item conflicts", func(t *testing.T) {
		userService, _ := newUserServiceFixture(t)
		user, err := userService.CreateUser(ctx, createUserRequest())
		require.NoError(t, err)

		_, err = userService.AddItemToCart(ctx, user.ID, AddToCartRequest{
			ItemID:   uuid.New(),
			Quantity: 1,
		})
		assert.ErrorIs(t, err, ErrItemNotFound)
	})

	t.Run("insufficient stock conflicts", func(t *testing.T) {
		userService, itemService := newUserServiceFixture(t)
		user, err := userService.CreateUser(ctx, createUserRequest())
		require.NoError(t, err)
		item := seedItem(t, itemService, 1)

		_, err = userService.AddItemToCart(ctx, user.ID, AddToCartRequest{
			ItemID:   item.ID,
			Quantity: 2,
		})
		assert.ErrorIs(t, err, ErrNotEnoughStock)
	})

	t.Run("item already in cart conflicts", func(t *testing.T) {
		userService, itemService := newUserServiceFixture(t)
		user, err := userService.CreateUser(ctx, createUserRequest())
		require.NoError(t, err)
		item := seedItem(t, itemService, 5)

		_, err = userService.AddItemToCart(ctx, user.ID, AddToCartRequest{
			ItemID:   item.ID,
			Quantity: 1,
		})
		require.NoError(t, err)

		_, err = userService.AddItemToCart(ctx, user.ID, AddToCartRequest{
			ItemID:   item.ID,
			Quantity: 1,
		})
		assert.ErrorIs(t, err, ErrItemAlreadyInCart)
	})
}

func TestListCartItems(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown user has empty cart", func(t *testing.T) {
		userService, _ := newUserServiceFixture(t)

		cart, err := userService.ListCartItems(ctx, uuid.New())
		require.NoError(t, err)
		assert.Empty(t, cart)
	})

	t.Run("returns cart contents", func(t *testing.T) {
		userService, itemService := newUserServiceFixture(t)
		user, err := userService.CreateUser(ctx, createUserRequest())
		require.NoError(t, err)
		item := seedItem(t, itemService, 5)

		_, err = userService.AddItemToCart(ctx, user.ID, AddToCartRequest{
			ItemID:   item.ID,
			Quantity: 3,
		})
		require.NoError(t, err)

		cart, err := userService.ListCartItems(ctx, user.ID)
		require.NoError(t, err)
		require.Len(t, cart, 1)
		assert.Equal(t, 3, cart[0].Quantity)
	})
}
