package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/internal/handlers"
)

func RegisterRoutes(router *gin.Engine, userHandler *handlers.UserHandler, itemHandler *handlers.ItemHandler) {
	userRoutes := NewUserRoutes(userHandler)
	userRoutes.RegisterRoutes(router)

	itemRoutes := NewItemRoutes(itemHandler)
	itemRoutes.RegisterRoutes(router)

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})
}
