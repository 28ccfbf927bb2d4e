package config

import (
	"fmt"
	"os"
	"strconv"

	_ "github.com/joho/godotenv/autoload"
)

// Config carries everything the process reads from the environment. A local
// .env file is picked up automatically via godotenv.
type Config struct {
	Port int

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	// Admin credentials are only needed by the schema command, which may have
	// to create the database itself.
	DBAdminUser     string
	DBAdminPassword string
}

func Load() (*Config, error) {
	cfg := &Config{
		DBHost:          os.Getenv("DB_HOST"),
		DBPort:          os.Getenv("DB_PORT"),
		DBUser:          os.Getenv("DB_USERNAME"),
		DBPassword:      os.Getenv("DB_PASSWORD"),
		DBName:          os.Getenv("DB_DATABASE"),
		DBAdminUser:     os.Getenv("DB_ADMIN_USER"),
		DBAdminPassword: os.Getenv("DB_ADMIN_PASSWORD"),
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	p, err := strconv.Atoi(port)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT %q: %w", port, err)
	}
	cfg.Port = p

	for name, value := range map[string]string{
		"DB_HOST":     cfg.DBHost,
		"DB_PORT":     cfg.DBPort,
		"DB_USERNAME": cfg.DBUser,
		"DB_PASSWORD": cfg.DBPassword,
		"DB_DATABASE": cfg.DBName,
	} {
		if value == "" {
			return nil, fmt.Errorf("%s environment variable is required", name)
		}
	}

	return cfg, nil
}
