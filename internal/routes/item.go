package routes

import (
	"github.com/gin-gonic/gin"

	"storefront/internal/handlers"
)

type ItemRoutes struct {
	itemHandler *handlers.ItemHandler
}

func NewItemRoutes(itemHandler *handlers.ItemHandler) *ItemRoutes {
	return &ItemRoutes{itemHandler: itemHandler}
}

func (r *ItemRoutes) RegisterRoutes(router *gin.Engine) {
	items := router.Group("/items")
	{
		items.POST("", r.itemHandler.CreateItem)
		items.GET("", r.itemHandler.ListItems)
	}
}
