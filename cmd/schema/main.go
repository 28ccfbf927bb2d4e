// Command schema bootstraps the application database: it creates the
// database if missing and applies all schema migrations.
package main

import (
	"context"
	"log"

	"storefront/internal/config"
	"storefront/internal/database"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	ctx := context.Background()

	if err := database.EnsureDatabaseExists(ctx, cfg); err != nil {
		log.Fatalf("failed to ensure database exists: %v", err)
	}

	pool, err := database.Connect(ctx, cfg)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer pool.Close()

	if err := database.RunMigrations(ctx, pool); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}
}
