package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"catalog/internal/cache"
	apperrors "catalog/internal/errors"
	"catalog/internal/model"
	"catalog/internal/repository"
)

const productCacheTTL = 5 * time.Minute

// ProductInput carries the writable fields of a product.
type ProductInput struct {
	Name       string
	StartDate  time.Time
	Duration   int
	Price      decimal.Decimal
	CategoryID uint
}

// ProductService exposes product operations. Mutations are attributed to the
// resolved user performing them.
type ProductService interface {
	Create(ctx context.Context, input *ProductInput, createdBy uuid.UUID) (*model.Product, error)
	Update(ctx context.Context, id uint, input *ProductInput, updatedBy uuid.UUID) (*model.Product, error)
	Get(ctx context.Context, id uint) (*model.Product, error)
	List(ctx context.Context) ([]model.Product, error)
	ListActive(ctx context.Context, now time.Time) ([]model.Product, error)
	Delete(ctx context.Context, id uint) error
}

type productService struct {
	repo  repository.ProductRepository
	cache *cache.Client
	log   *zap.Logger
}

// NewProductService builds a ProductService with repository and cache.
func NewProductService(repo repository.ProductRepository, cache *cache.Client, log *zap.Logger) ProductService {
	return &productService{repo: repo, cache: cache, log: log}
}

func productCacheKey(id uint) string {
	return fmt.Sprintf("product:%d", id)
}

func (s *productService) Create(ctx context.Context, input *ProductInput, createdBy uuid.UUID) (*model.Product, error) {
	s.log.Info("creating product",
		zap.String("user_id", createdBy.String()),
		zap.String("name", input.Name))

	product := &model.Product{
		Name:            input.Name,
		CreationDate:    time.Now().UTC(),
		CreatedByUserID: createdBy,
		StartDate:       input.StartDate,
		Duration:        input.Duration,
		Price:           input.Price,
		CategoryID:      input.CategoryID,
	}

	if err := s.repo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}

	s.log.Info("product created",
		zap.String("user_id", createdBy.String()),
		zap.Uint("product_id", product.ID))
	return product, nil
}

func (s *productService) Update(ctx context.Context, id uint, input *ProductInput, updatedBy uuid.UUID) (*model.Product, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.log.Warn("update of missing product",
				zap.String("user_id", updatedBy.String()), zap.Uint("product_id", id))
			return nil, apperrors.ErrProductNotFound
		}
		return nil, fmt.Errorf("load product: %w", err)
	}

	product.Name = input.Name
	product.StartDate = input.StartDate
	product.Duration = input.Duration
	product.Price = input.Price
	product.CategoryID = input.CategoryID

	if err := s.repo.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}
	s.cache.Delete(ctx, productCacheKey(id))

	s.log.Info("product updated",
		zap.String("user_id", updatedBy.String()), zap.Uint("product_id", id))
	return product, nil
}

func (s *productService) Get(ctx context.Context, id uint) (*model.Product, error) {
	if data := s.cache.Get(ctx, productCacheKey(id)); data != nil {
		var cached model.Product
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProductNotFound
		}
		return nil, fmt.Errorf("load product: %w", err)
	}

	if payload, err := json.Marshal(product); err == nil {
		s.cache.Set(ctx, productCacheKey(id), payload, productCacheTTL)
	}
	return product, nil
}

func (s *productService) List(ctx context.Context) ([]model.Product, error) {
	return s.repo.List(ctx)
}

func (s *productService) ListActive(ctx context.Context, now time.Time) ([]model.Product, error) {
	products, err := s.repo.ListActive(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("list active products: %w", err)
	}
	s.log.Info("active products listed",
		zap.Time("at", now), zap.Int("count", len(products)))
	return products, nil
}

func (s *productService) Delete(ctx context.Context, id uint) error {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrProductNotFound
		}
		return fmt.Errorf("load product: %w", err)
	}

	if err := s.repo.Delete(ctx, product); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	s.cache.Delete(ctx, productCacheKey(id))

	s.log.Info("product deleted", zap.Uint("product_id", id))
	return nil
}
