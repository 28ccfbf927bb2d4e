package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"storefront/internal/config"
	"storefront/internal/database"
	"storefront/internal/handlers"
	"storefront/internal/repositories"
	"storefront/internal/routes"
	"storefront/internal/services"
)

// New connects to the database, wires the dependency graph, and returns the
// configured HTTP server together with the pool so the caller can close it
// after shutdown.
func New(ctx context.Context, cfg *config.Config) (*http.Server, *pgxpool.Pool, error) {
	pool, err := database.Connect(ctx, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	router := NewRouter(pool)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	return srv, pool, nil
}

// NewRouter builds the gin engine with all handlers wired onto the given
// pool. Split out from New so tests can exercise the full router.
func NewRouter(pool *pgxpool.Pool) *gin.Engine {
	userRepo := repositories.NewPostgresUserRepository(pool)
	itemRepo := repositories.NewPostgresItemRepository(pool)

	return buildRouter(userRepo, itemRepo)
}

// NewMemoryRouter wires the same handler graph on the in-memory
// repositories. Used by handler tests and for database-free local runs.
func NewMemoryRouter() *gin.Engine {
	return buildRouter(repositories.NewMemoryUserRepository(), repositories.NewMemoryItemRepository())
}

func buildRouter(userRepo repositories.UserRepository, itemRepo repositories.ItemRepository) *gin.Engine {
	itemService := services.NewItemService(itemRepo)
	userService := services.NewUserService(userRepo, itemService)

	userHandler := handlers.NewUserHandler(userService)
	itemHandler := handlers.NewItemHandler(itemService)

	router := gin.Default()
	router.Use(cors.Default())

	routes.RegisterRoutes(router, userHandler, itemHandler)

	return router
}
