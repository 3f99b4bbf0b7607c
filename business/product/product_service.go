package product

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"yabaMarket/domain"
	"yabaMarket/pkg/logger"

	"github.com/google/uuid"
)

// ProductRepository contract interface
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	FindByID(ctx context.Context, id string) (domain.Product, error)
	FindAll(ctx context.Context) ([]domain.Product, error)
	Update(ctx context.Context, product *domain.Product) error
	Delete(ctx context.Context, id string) error
}

// CatalogInvalidator drops the cached catalog snapshot after a write.
type CatalogInvalidator interface {
	Invalidate(ctx context.Context) error
}

type productService struct {
	productRepo ProductRepository
	cache       CatalogInvalidator
}

// NewProductService builds the admin product service. cache may be nil.
func NewProductService(productRepo ProductRepository, cache CatalogInvalidator) *productService {
	return &productService{
		productRepo: productRepo,
		cache:       cache,
	}
}

func invalid(msg string) error {
	return fmt.Errorf("%w: %s", domain.ErrInvalidProduct, msg)
}

func validateProduct(product *domain.Product) error {
	if strings.TrimSpace(product.Name) == "" && strings.TrimSpace(product.Title) == "" {
		return invalid("name or title is required")
	}

	if product.Price <= 0 {
		return invalid("price must be greater than 0")
	}

	if product.Stock < 0 {
		return invalid("stock cannot be negative")
	}

	if product.PromoPrice != nil && *product.PromoPrice < 0 {
		return invalid("promo price cannot be negative")
	}

	return nil
}

func (s *productService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		logger.Error("Failed to invalidate catalog snapshot", err)
	}
}

func (s *productService) GetAllProducts(ctx context.Context) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when get all product")
		return nil, fmt.Errorf("context error: %w", err)
	}

	products, err := s.productRepo.FindAll(ctx)
	if err != nil {
		logger.Error("Failed to find all product", err)
		return nil, err
	}

	return products, nil
}

func (s *productService) GetProductByID(ctx context.Context, id string) (*domain.Product, error) {
	if strings.TrimSpace(id) == "" {
		logger.Error("invalid product id")
		return nil, invalid("product id is required")
	}

	if err := ctx.Err(); err != nil {
		logger.Error("context error when get product")
		return nil, fmt.Errorf("context error: %w", err)
	}

	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("failed to find product by id", err)
		return nil, err
	}

	return &product, nil
}

func (s *productService) CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when create product")
		return nil, fmt.Errorf("context error: %w", err)
	}

	if err := validateProduct(product); err != nil {
		logger.Error("Invalid product data", err)
		return nil, err
	}

	if product.ID == "" {
		product.ID = uuid.NewString()
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		logger.Error("failed to create new product", err)
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	s.invalidate(ctx)

	logger.Info("product created successfully", "product_id", product.ID)

	return product, nil
}

func (s *productService) UpdateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when updating product")
		return nil, fmt.Errorf("context error: %w", err)
	}

	if product.ID == "" {
		logger.Error("Invalid product data: ID is required")
		return nil, invalid("product id is required")
	}

	if err := validateProduct(product); err != nil {
		logger.Error("Invalid product data", err)
		return nil, err
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		logger.Error("failed to update product", err)
		if errors.Is(err, domain.ErrProductNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	s.invalidate(ctx)

	updatedProduct, err := s.productRepo.FindByID(ctx, product.ID)
	if err != nil {
		logger.Error("failed to fetch updated product", err)
		return nil, fmt.Errorf("failed to fetch updated product: %w", err)
	}

	logger.Info("product updated success", "product_id", product.ID)

	return &updatedProduct, nil
}

func (s *productService) DeleteProduct(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		logger.Error("Invalid product id when deleting product")
		return invalid("product id is required")
	}

	if err := ctx.Err(); err != nil {
		logger.Error("context error when deleting product")
		return fmt.Errorf("context error: %w", err)
	}

	if err := s.productRepo.Delete(ctx, id); err != nil {
		logger.Error("failed to delete product", err)
		if errors.Is(err, domain.ErrProductNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete product: %w", err)
	}

	s.invalidate(ctx)

	logger.Info("product deleted success", "product_id", id)

	return nil
}
