package routes

import (
	"github.com/gin-gonic/gin"

	"storefront/internal/handlers"
)

type UserRoutes struct {
	userHandler *handlers.UserHandler
}

func NewUserRoutes(userHandler *handlers.UserHandler) *UserRoutes {
	return &UserRoutes{userHandler: userHandler}
}

func (r *UserRoutes) RegisterRoutes(router *gin.Engine) {
	users := router.Group("/users")
	{
		users.POST("", r.userHandler.CreateUser)
		users.POST("/:user_id/cart", r.userHandler.AddToCart)
		users.GET("/:user_id/cart", r.userHandler.GetCart)
	}
}
