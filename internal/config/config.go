package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)

type Config struct {
	HTTPAddr        string
	StoreDriver     string
	LogLevel        string
	ShutdownTimeout time.Duration
	Postgres        Postgres
}

type Postgres struct {
	DB       string
	User     string
	Password string
	Host     string
	Port     string
}

// ConnString builds the lib/pq connection URL.
func (p Postgres) ConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", p.User, p.Password, p.Host, p.Port, p.DB)
}

// Load reads a .env file when one exists and then the process environment.
// It reports whether a .env file was loaded.
func Load() (Config, bool, error) {
	loaded := godotenv.Load() == nil

	cfg := Config{
		HTTPAddr:    getenv("HTTP_ADDR", "0.0.0.0:8080"),
		StoreDriver: getenv("STORE_DRIVER", StoreDriverPostgres),
		LogLevel:    getenv("LOG_LEVEL", "info"),
		Postgres: Postgres{
			DB:       os.Getenv("POSTGRES_DB"),
			User:     os.Getenv("POSTGRES_USER"),
			Password: os.Getenv("POSTGRES_PASSWORD"),
			Host:     getenv("POSTGRES_HOST", "localhost"),
			Port:     getenv("POSTGRES_PORT", "5432"),
		},
	}

	timeout, err := time.ParseDuration(getenv("SHUTDOWN_TIMEOUT", "30s"))
	if err != nil {
		return Config{}, loaded, fmt.Errorf("invalid SHUTDOWN_TIMEOUT: %w", err)
	}
	cfg.ShutdownTimeout = timeout

	switch cfg.StoreDriver {
	case StoreDriverPostgres, StoreDriverMemory:
	default:
		return Config{}, loaded, fmt.Errorf("invalid STORE_DRIVER %q", cfg.StoreDriver)
	}

	return cfg, loaded, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
