package category

import (
	"context"
	"errors"

	"category-service/internal/domain"
	"category-service/internal/logger"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

const uniqueViolation = "23505"

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

func NewPostgres(pool *pgxpool.Pool, log *zerolog.Logger) Repository {
	l := logger.OrNop(log).With().Str("component", "category_repo").Logger()
	return &postgresRepo{pool: pool, logger: l}
}

func (r *postgresRepo) List(ctx context.Context, limit, offset int) ([]domain.Category, error) {
	const q = `
SELECT id, slug, title
FROM categories
ORDER BY id ASC
LIMIT $1 OFFSET $2
`
	rows, err := r.pool.Query(ctx, q, limit, offset)
	if err != nil {
		r.logger.Error().Err(err).Int("limit", limit).Int("offset", offset).Msg("list")
		return nil, err
	}
	defer rows.Close()

	result := make([]domain.Category, 0, limit)
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Slug, &c.Title); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("list rows")
		return nil, err
	}
	r.logger.Debug().Int("count", len(result)).Msg("list")
	return result, nil
}

func (r *postgresRepo) GetBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	const q = `
SELECT id, slug, title
FROM categories
WHERE slug = $1
`
	var c domain.Category
	err := r.pool.QueryRow(ctx, q, slug).Scan(&c.ID, &c.Slug, &c.Title)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Error().Err(err).Str("slug", slug).Msg("get")
		return nil, err
	}
	return &c, nil
}

func (r *postgresRepo) Create(ctx context.Context, c domain.Category) (*domain.Category, error) {
	const q = `
INSERT INTO categories (slug, title)
VALUES ($1, $2)
RETURNING id
`
	out := domain.Category{Slug: c.Slug, Title: c.Title}
	if err := r.pool.QueryRow(ctx, q, c.Slug, c.Title).Scan(&out.ID); err != nil {
		return nil, r.writeErr(err, "create", c.Slug)
	}
	r.logger.Debug().Int64("id", out.ID).Str("slug", out.Slug).Msg("create")
	return &out, nil
}

func (r *postgresRepo) UpdateBySlug(ctx context.Context, slug string, c domain.Category) (*domain.Category, error) {
	const q = `
UPDATE categories
SET slug = $2, title = $3
WHERE slug = $1
RETURNING id, slug, title
`
	var out domain.Category
	err := r.pool.QueryRow(ctx, q, slug, c.Slug, c.Title).Scan(&out.ID, &out.Slug, &out.Title)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, r.writeErr(err, "update", slug)
	}
	return &out, nil
}

func (r *postgresRepo) DeleteBySlug(ctx context.Context, slug string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM categories WHERE slug = $1`, slug)
	if err != nil {
		return r.writeErr(err, "delete", slug)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) writeErr(err error, op, slug string) error {
	r.logger.Error().Err(err).Str("op", op).Str("slug", slug).Msg("write failed")
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return errors.Join(domain.ErrAlreadyExists, err)
	}
	return err
}
