package category

import (
	"context"
	"fmt"

	"category-service/internal/db"
	"category-service/internal/domain"
	"category-service/internal/logger"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

const (
	DriverPgx  = "pgx"
	DriverGorm = "gorm"
)

// Repository is the store contract consumed by the category service.
// UpdateBySlug and DeleteBySlug return domain.ErrNotFound when no row matched.
type Repository interface {
	List(ctx context.Context, limit, offset int) ([]domain.Category, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Category, error)
	Create(ctx context.Context, c domain.Category) (*domain.Category, error)
	UpdateBySlug(ctx context.Context, slug string, c domain.Category) (*domain.Category, error)
	DeleteBySlug(ctx context.Context, slug string) error
}

// Open builds the Repository for the configured driver on top of pool.
// An empty driver selects DriverPgx.
func Open(driver string, pool *pgxpool.Pool, log *zerolog.Logger) (Repository, error) {
	switch driver {
	case DriverPgx, "":
		return NewPostgres(pool, log), nil
	case DriverGorm:
		gdb, err := db.OpenGorm(pool, logger.OrNop(log))
		if err != nil {
			return nil, fmt.Errorf("open gorm: %w", err)
		}
		return NewGorm(gdb, log), nil
	default:
		return nil, fmt.Errorf("unknown db driver %q", driver)
	}
}
