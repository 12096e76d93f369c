package config

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/openshowcase/showcase/pkg/showcase"
	"github.com/openshowcase/showcase/pkg/showcase/repo/memory"
	repopg "github.com/openshowcase/showcase/pkg/showcase/repo/postgres"
)

// Database type constants.
const (
	DatabaseMemory   = "memory"
	DatabasePostgres = "postgres"
)

// ServerConfig represents server configuration for the showcase service.
//
// DATABASE_URL selects the repository: empty or "memory" uses the in-memory
// repository; a postgres:// / postgresql:// URL uses PostgreSQL.
type ServerConfig struct {
	Port        string `env:"PORT" env-default:"8080"`
	Environment string `env:"ENVIRONMENT" env-default:"development"`

	DatabaseURL string `env:"DATABASE_URL" env-default:""`

	PageSize  int    `env:"PAGE_SIZE" env-default:"12"`
	JWTSecret string `env:"JWT_SECRET" env-default:""`
}

// Load reads configuration from the environment on top of library defaults.
func Load() (*ServerConfig, error) {
	var cfg ServerConfig
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// DatabaseType returns the repository kind selected by DatabaseURL.
func (c *ServerConfig) DatabaseType() string {
	if c.DatabaseURL == "" || c.DatabaseURL == DatabaseMemory {
		return DatabaseMemory
	}
	return DatabasePostgres
}

// Validate validates the server configuration
func (c *ServerConfig) Validate() error {
	if c.Port == "" {
		return errors.New("port is required")
	}
	if c.PageSize < 1 {
		return errors.New("page_size must be 1 or greater")
	}
	if c.DatabaseType() == DatabasePostgres &&
		!strings.HasPrefix(c.DatabaseURL, "postgres://") &&
		!strings.HasPrefix(c.DatabaseURL, "postgresql://") {
		return fmt.Errorf("unsupported DATABASE_URL format: %s (use 'memory' or 'postgresql://...')", c.DatabaseURL)
	}
	return nil
}

// BuildService creates a Service instance from the server configuration
func (c *ServerConfig) BuildService(ctx context.Context) (showcase.Service, error) {
	repo, err := c.buildRepository(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to build repository: %w", err)
	}

	return showcase.New(
		showcase.WithRepository(repo),
		showcase.WithPageSize(c.PageSize),
	)
}

// buildRepository creates a Repository based on the configuration
func (c *ServerConfig) buildRepository(ctx context.Context) (showcase.Repository, error) {
	switch c.DatabaseType() {
	case DatabaseMemory:
		return memory.New(), nil
	case DatabasePostgres:
		pool, err := pgxpool.New(ctx, c.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to create pgx pool: %w", err)
		}
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := pool.Ping(pingCtx); err != nil {
			pool.Close()
			return nil, fmt.Errorf("database ping failed: %w", err)
		}
		return repopg.NewWithPool(pool), nil
	default:
		return nil, fmt.Errorf("unsupported database type: %s", c.DatabaseType())
	}
}
