package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/internal/responses"
	"storefront/internal/services"
)

type ItemHandler struct {
	itemService *services.ItemService
}

func NewItemHandler(itemService *services.ItemService) *ItemHandler {
	return &ItemHandler{itemService: itemService}
}

// CreateItem handles POST /items
func (h *ItemHandler) CreateItem(c *gin.Context) {
	var req services.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	item, err := h.itemService.CreateItem(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			responses.Fail(c, http.StatusBadRequest, err, "Invalid item")
			return
		}
		if errors.Is(err, services.ErrItemExists) {
			responses.Fail(c, http.StatusConflict, err, "Item already exists")
			return
		}
		responses.Fail(c, http.StatusInternalServerError, err, "Failed to create item")
		return
	}

	responses.Success(c, http.StatusCreated, item, "Item created successfully")
}

// ListItems handles GET /items
func (h *ItemHandler) ListItems(c *gin.Context) {
	items, err := h.itemService.ListItems(c.Request.Context())
	if err != nil {
		responses.Fail(c, http.StatusInternalServerError, err, "Failed to retrieve items")
		return
	}

	responses.Success(c, http.StatusOK, gin.H{"items": items}, "Items retrieved successfully")
}
