package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"trivia-api/internal/cache"
	"trivia-api/internal/domain"
	"trivia-api/internal/dto"
	"trivia-api/internal/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

var categoryListKey = cache.GenerateCacheKey("category", "list", "all")

// categoryLoadTimeout bounds a shared category load, which outlives any single caller.
const categoryLoadTimeout = 5 * time.Second

// CategoryService defines the interface for category-related operations
type CategoryService interface {
	GetAllCategories(ctx context.Context) (*dto.CategoryListResponse, error)
	// Categories returns the raw category list for other services.
	Categories(ctx context.Context) ([]*domain.Category, error)
}

type categoryService struct {
	repo  domain.CategoryRepository
	cache domain.Cache
	ttl   time.Duration
	group singleflight.Group
}

// NewCategoryService creates a category service. A nil cache reads storage on every call.
func NewCategoryService(repo domain.CategoryRepository, c domain.Cache, ttl time.Duration) CategoryService {
	return &categoryService{repo: repo, cache: c, ttl: ttl}
}

func (s *categoryService) GetAllCategories(ctx context.Context) (*dto.CategoryListResponse, error) {
	categories, err := s.Categories(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.CategoryListResponse{
		Success:    true,
		Categories: dto.NewCategoryResponses(categories),
	}, nil
}

func (s *categoryService) Categories(ctx context.Context) ([]*domain.Category, error) {
	if cached, ok := s.fromCache(ctx); ok {
		return cached, nil
	}

	v, err, shared := s.group.Do(categoryListKey, func() (interface{}, error) {
		loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), categoryLoadTimeout)
		defer cancel()

		categories, err := s.repo.GetAllCategories(loadCtx)
		if err != nil {
			return nil, err
		}
		s.toCache(loadCtx, categories)
		return categories, nil
	})
	if err != nil {
		logger.Get().Error("CategoryService: failed to load categories", zap.Error(err))
		return nil, domain.NewInternalError("failed to list categories", err)
	}
	if shared {
		logger.Get().Debug("CategoryService: shared category load")
	}
	return v.([]*domain.Category), nil
}

func (s *categoryService) fromCache(ctx context.Context) ([]*domain.Category, bool) {
	if s.cache == nil {
		return nil, false
	}

	raw, err := s.cache.Get(ctx, categoryListKey)
	if err != nil {
		if !errors.Is(err, domain.ErrCacheMiss) {
			logger.Get().Warn("CategoryService: cache read failed", zap.Error(err), zap.String("key", categoryListKey))
		}
		return nil, false
	}

	var categories []*domain.Category
	if err := json.Unmarshal([]byte(raw), &categories); err != nil {
		logger.Get().Warn("CategoryService: discarding corrupt cache entry", zap.Error(err), zap.String("key", categoryListKey))
		_ = s.cache.Delete(ctx, categoryListKey)
		return nil, false
	}
	return categories, true
}

func (s *categoryService) toCache(ctx context.Context, categories []*domain.Category) {
	if s.cache == nil {
		return
	}
	data, err := json.Marshal(categories)
	if err != nil {
		logger.Get().Warn("CategoryService: failed to encode categories", zap.Error(err))
		return
	}
	if err := s.cache.Set(ctx, categoryListKey, string(data), s.ttl); err != nil {
		logger.Get().Warn("CategoryService: cache write failed", zap.Error(err), zap.String("key", categoryListKey))
	}
}
