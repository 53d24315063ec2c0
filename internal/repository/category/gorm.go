package category

import (
	"context"
	"errors"

	"category-service/internal/domain"
	"category-service/internal/logger"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type gormRepo struct {
	db     *gorm.DB
	logger zerolog.Logger
}

// NewGorm returns a Repository backed by gorm. The session should be opened
// with TranslateError so duplicate keys surface as gorm.ErrDuplicatedKey.
func NewGorm(db *gorm.DB, log *zerolog.Logger) Repository {
	l := logger.OrNop(log).With().Str("component", "category_repo_gorm").Logger()
	return &gormRepo{db: db, logger: l}
}

func (r *gormRepo) List(ctx context.Context, limit, offset int) ([]domain.Category, error) {
	result := make([]domain.Category, 0, limit)
	err := r.db.WithContext(ctx).
		Order("id ASC").
		Limit(limit).
		Offset(offset).
		Find(&result).Error
	if err != nil {
		r.logger.Error().Err(err).Msg("list")
		return nil, err
	}
	return result, nil
}

func (r *gormRepo) GetBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	var c domain.Category
	err := r.db.WithContext(ctx).Where("slug = ?", slug).Take(&c).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		r.logger.Error().Err(err).Str("slug", slug).Msg("get")
		return nil, err
	}
	return &c, nil
}

func (r *gormRepo) Create(ctx context.Context, c domain.Category) (*domain.Category, error) {
	out := domain.Category{Slug: c.Slug, Title: c.Title}
	if err := r.db.WithContext(ctx).Create(&out).Error; err != nil {
		return nil, r.writeErr(err, "create", c.Slug)
	}
	return &out, nil
}

func (r *gormRepo) UpdateBySlug(ctx context.Context, slug string, c domain.Category) (*domain.Category, error) {
	var out domain.Category
	res := r.db.WithContext(ctx).
		Model(&out).
		Clauses(clause.Returning{}).
		Where("slug = ?", slug).
		Updates(map[string]any{"slug": c.Slug, "title": c.Title})
	if res.Error != nil {
		return nil, r.writeErr(res.Error, "update", slug)
	}
	if res.RowsAffected == 0 {
		return nil, domain.ErrNotFound
	}
	return &out, nil
}

func (r *gormRepo) DeleteBySlug(ctx context.Context, slug string) error {
	res := r.db.WithContext(ctx).Where("slug = ?", slug).Delete(&domain.Category{})
	if res.Error != nil {
		return r.writeErr(res.Error, "delete", slug)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *gormRepo) writeErr(err error, op, slug string) error {
	r.logger.Error().Err(err).Str("op", op).Str("slug", slug).Msg("write failed")
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errors.Join(domain.ErrAlreadyExists, err)
	}
	return err
}
