package database

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"time"

	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"storefront/internal/config"
)

// EnsureDatabaseExists connects to the postgres maintenance database with
// admin credentials and creates the application database if it is missing.
func EnsureDatabaseExists(ctx context.Context, cfg *config.Config) error {
	adminUser := cfg.DBAdminUser
	adminPassword := cfg.DBAdminPassword
	if adminUser == "" {
		adminUser = cfg.DBUser
		adminPassword = cfg.DBPassword
	}

	userInfo := url.UserPassword(adminUser, adminPassword)
	dsn := fmt.Sprintf(
		"postgres://%s@%s:%s/postgres?sslmode=disable",
		userInfo.String(),
		cfg.DBHost,
		cfg.DBPort,
	)

	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return fmt.Errorf("failed to parse connection string: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	defer pool.Close()

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var exists bool
	query := "SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)"
	if err := pool.QueryRow(ctx, query, cfg.DBName).Scan(&exists); err != nil {
		return fmt.Errorf("failed to check if database exists: %w", err)
	}

	if exists {
		log.Printf("Database '%s' already exists", cfg.DBName)
		return nil
	}

	log.Printf("Database '%s' does not exist. Creating it...", cfg.DBName)

	// CREATE DATABASE cannot run inside a transaction, so Exec directly.
	quoted := pgx.Identifier{cfg.DBName}.Sanitize()
	if _, err := pool.Exec(ctx, fmt.Sprintf("CREATE DATABASE %s", quoted)); err != nil {
		return fmt.Errorf("failed to create database: %w", err)
	}
	log.Printf("Database '%s' created successfully", cfg.DBName)
	return nil
}

// Connect builds the application connection pool. Prices are stored as
// NUMERIC, so the shopspring decimal codec is registered on every connection.
func Connect(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	userInfo := url.UserPassword(cfg.DBUser, cfg.DBPassword)
	dsn := fmt.Sprintf(
		"postgres://%s@%s:%s/%s?sslmode=disable",
		userInfo.String(),
		cfg.DBHost,
		cfg.DBPort,
		url.PathEscape(cfg.DBName),
	)

	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection string (check your .env file): %w", err)
	}

	poolConfig.MaxConns = 25
	poolConfig.MinConns = 5
	poolConfig.MaxConnLifetime = 5 * time.Minute
	poolConfig.MaxConnIdleTime = 1 * time.Minute
	poolConfig.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		pgxdecimal.Register(conn.TypeMap())
		return nil
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Println("Database connection pool established successfully")
	return pool, nil
}
