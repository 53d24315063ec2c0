package category

import (
	"context"
	"fmt"

	"category-service/internal/domain"
	"category-service/internal/repository/category"
)

const (
	DefaultLimit = 10
	MaxLimit     = 100
)

type Service struct {
	repo category.Repository
}

func New(repo category.Repository) *Service {
	return &Service{repo: repo}
}

// List returns categories ordered by ascending id. Non-positive limits and
// negative offsets fall back to the defaults.
func (s *Service) List(ctx context.Context, limit, offset int) ([]domain.Category, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	if offset < 0 {
		offset = 0
	}
	out, err := s.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return out, nil
}

// Get returns domain.ErrNotFound when no category has the slug.
func (s *Service) Get(ctx context.Context, slug string) (*domain.Category, error) {
	return s.repo.GetBySlug(ctx, slug)
}

func (s *Service) Validate(payload any) (domain.CategoryInput, *Violations) {
	return Validate(payload)
}

// Create stores the escaped title. The slug is derived from the title as
// submitted, so it carries no HTML entities.
func (s *Service) Create(ctx context.Context, in domain.CategoryInput) (*domain.Category, error) {
	created, err := s.repo.Create(ctx, domain.Category{
		Slug:  Slugify(in.Title),
		Title: Sanitize(in.Title),
	})
	if err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	return created, nil
}

// Update rewrites title and slug of the category currently stored under slug.
// Callers are expected to check existence first; a row that vanished in
// between yields domain.ErrNotFound.
func (s *Service) Update(ctx context.Context, in domain.CategoryInput, slug string) (*domain.Category, error) {
	updated, err := s.repo.UpdateBySlug(ctx, slug, domain.Category{
		Slug:  Slugify(in.Title),
		Title: Sanitize(in.Title),
	})
	if err != nil {
		return nil, fmt.Errorf("update category %q: %w", slug, err)
	}
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, slug string) error {
	if err := s.repo.DeleteBySlug(ctx, slug); err != nil {
		return fmt.Errorf("delete category %q: %w", slug, err)
	}
	return nil
}
