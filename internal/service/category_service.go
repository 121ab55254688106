package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"

	"github.com/BuildForSDG/Team-083-Backend/internal/domain"
	"github.com/BuildForSDG/Team-083-Backend/internal/repository"
	apperrors "github.com/BuildForSDG/Team-083-Backend/pkg/util"
)

const (
	categoryListKey  = "categories:all"
	categoryCacheTTL = 5 * time.Minute
)

// CategoryService manages the admin-curated business categories. Reads go
// through a Redis cache which is invalidated on every write.
type CategoryService struct {
	categories repository.CategoryRepository
	cache      *redis.Client
}

// NewCategoryService builds the service. cache may be nil, which disables caching.
func NewCategoryService(categories repository.CategoryRepository, cache *redis.Client) *CategoryService {
	return &CategoryService{categories: categories, cache: cache}
}

// Create adds a new category with a unique lowercase name.
func (s *CategoryService) Create(ctx context.Context, name, description string) (*domain.Category, error) {
	if _, err := s.categories.GetByName(ctx, name); err == nil {
		return nil, apperrors.NewConflict("Category already exists")
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.MapError(err)
	}

	category := &domain.Category{
		ID:          uuid.NewString(),
		Name:        name,
		Description: description,
	}
	if err := s.categories.Create(ctx, category); err != nil {
		if apperrors.IsUniqueViolation(err) {
			return nil, apperrors.NewConflict("Category already exists")
		}
		return nil, apperrors.MapError(err)
	}

	s.invalidate(ctx)
	return category, nil
}

// Edit updates a category's description.
func (s *CategoryService) Edit(ctx context.Context, name, description string) (*domain.Category, error) {
	category, err := s.categories.UpdateDescription(ctx, name, description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("Category does not exist")
		}
		return nil, apperrors.MapError(err)
	}

	s.invalidate(ctx)
	return category, nil
}

// Get returns a single category by name.
func (s *CategoryService) Get(ctx context.Context, name string) (*domain.Category, error) {
	category, err := s.categories.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("That category does not exist")
		}
		return nil, apperrors.MapError(err)
	}
	return category, nil
}

// List returns every category, served from the cache when warm.
func (s *CategoryService) List(ctx context.Context) ([]domain.Category, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, categoryListKey).Bytes(); err == nil {
			var categories []domain.Category
			if json.Unmarshal(cached, &categories) == nil {
				return categories, nil
			}
		}
	}

	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	if s.cache != nil {
		if encoded, err := json.Marshal(categories); err == nil {
			s.cache.Set(ctx, categoryListKey, encoded, categoryCacheTTL)
		}
	}
	return categories, nil
}

// Delete removes a category by name.
func (s *CategoryService) Delete(ctx context.Context, name string) error {
	if err := s.categories.DeleteByName(ctx, name); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("That category does not exist")
		}
		return apperrors.MapError(err)
	}

	s.invalidate(ctx)
	return nil
}

func (s *CategoryService) invalidate(ctx context.Context) {
	if s.cache != nil {
		s.cache.Del(ctx, categoryListKey)
	}
}
