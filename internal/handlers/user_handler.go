package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"storefront/internal/responses"
	"storefront/internal/services"
)

type UserHandler struct {
	userService *services.UserService
}

func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// CreateUser handles POST /users
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req services.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, services.ErrUserExists) {
			responses.Fail(c, http.StatusConflict, err, "User already exists")
			return
		}
		responses.Fail(c, http.StatusInternalServerError, err, "Failed to create user")
		return
	}

	responses.Success(c, http.StatusCreated, user, "User created successfully")
}

// AddToCart handles POST /users/:user_id/cart
func (h *UserHandler) AddToCart(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, nil, "Invalid user ID format")
		return
	}

	var req services.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	cartItems, err := h.userService.AddItemToCart(c.Request.Context(), userID, req)
	if err != nil {
		// Every cart rule violation is a conflict, unknown user and item
		// included.
		if errors.Is(err, services.ErrUserNotFound) ||
			errors.Is(err, services.ErrItemNotFound) ||
			errors.Is(err, services.ErrNotEnoughStock) ||
			errors.Is(err, services.ErrItemAlreadyInCart) {
			responses.Fail(c, http.StatusConflict, err, "Could not add item to cart")
			return
		}
		responses.Fail(c, http.StatusInternalServerError, err, "Failed to add item to cart")
		return
	}

	responses.Success(c, http.StatusCreated, gin.H{"items": cartItems}, "Item added to cart")
}

// GetCart handles GET /users/:user_id/cart
func (h *UserHandler) GetCart(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, nil, "Invalid user ID format")
		return
	}

	cartItems, err := h.userService.ListCartItems(c.Request.Context(), userID)
	if err != nil {
		responses.Fail(c, http.StatusInternalServerError, err, "Failed to retrieve cart")
		return
	}

	responses.Success(c, http.StatusOK, gin.H{"items": cartItems}, "Cart retrieved successfully")
}
