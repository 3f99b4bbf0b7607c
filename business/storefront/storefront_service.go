package storefront

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"yabaMarket/business/distribution"
	"yabaMarket/domain"
	"yabaMarket/pkg/logger"
	"yabaMarket/pkg/metrics"
)

type ProductRepository interface {
	FindAll(ctx context.Context) ([]domain.Product, error)
}

type CategoryRepository interface {
	FindActive(ctx context.Context) ([]domain.Category, error)
}

// CatalogCache stores catalog snapshots. Implementations report a miss with
// ok == false and a nil error. Set must only store the snapshot while the
// catalog version still equals the one read before loading it.
type CatalogCache interface {
	Get(ctx context.Context) ([]domain.Product, bool, error)
	Version(ctx context.Context) (int64, error)
	Set(ctx context.Context, version int64, products []domain.Product) (bool, error)
}

type Service struct {
	productRepo  ProductRepository
	categoryRepo CategoryRepository
	cache        CatalogCache
	engine       *distribution.Engine
}

// NewService wires the storefront. cache may be nil.
func NewService(
	productRepo ProductRepository,
	categoryRepo CategoryRepository,
	cache CatalogCache,
	engine *distribution.Engine,
) *Service {
	return &Service{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		cache:        cache,
		engine:       engine,
	}
}

// loadCatalog reads the snapshot from the cache, falling back to postgres.
// Cache failures never fail the request.
func (s *Service) loadCatalog(ctx context.Context) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	fill := false
	var version int64
	if s.cache != nil {
		products, ok, err := s.cache.Get(ctx)
		switch {
		case err != nil:
			metrics.CatalogCache.WithLabelValues("error").Inc()
			logger.Error("Failed to read catalog snapshot", err)
		case ok:
			metrics.CatalogCache.WithLabelValues("hit").Inc()
			return products, nil
		default:
			metrics.CatalogCache.WithLabelValues("miss").Inc()
		}

		// version must be read before FindAll so a write racing the load
		// makes Set drop the snapshot
		version, err = s.cache.Version(ctx)
		if err != nil {
			logger.Error("Failed to read catalog version", err)
		} else {
			fill = true
		}
	}

	products, err := s.productRepo.FindAll(ctx)
	if err != nil {
		logger.Error("Failed to load catalog", err)
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	if fill {
		stored, err := s.cache.Set(ctx, version, products)
		switch {
		case err != nil:
			logger.Error("Failed to store catalog snapshot", err)
		case !stored:
			logger.Debug("Skipped stale catalog snapshot", "version", version)
		}
	}

	return products, nil
}

// Distribute lays out the storefront for the active category ("" for all).
func (s *Service) Distribute(ctx context.Context, category string) (domain.DistributionResult, error) {
	start := time.Now()

	catalog, err := s.loadCatalog(ctx)
	if err != nil {
		return domain.DistributionResult{}, err
	}

	result := s.engine.Distribute(catalog, category)

	filtered := !distribution.IsAllCategories(category)
	metrics.DistributionLatency.Observe(time.Since(start).Seconds())
	metrics.DistributionRequests.WithLabelValues(strconv.FormatBool(filtered)).Inc()
	metrics.FeaturedSize.Observe(float64(len(result.Featured)))

	logger.Debug("storefront_distribution",
		"category", category,
		"catalog_size", len(catalog),
		"featured", len(result.Featured),
		"general", len(result.General),
	)

	return result, nil
}

// MatchCategory shows which products the category filter keeps and why.
func (s *Service) MatchCategory(ctx context.Context, category string) ([]domain.CategoryMatch, error) {
	catalog, err := s.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}

	matches := distribution.MatchCategoryDetailed(catalog, category)

	logger.Debug("storefront_category_match",
		"category", category,
		"catalog_size", len(catalog),
		"matches", len(matches),
	)

	return matches, nil
}

// Banners builds the category banner sections from the active categories.
func (s *Service) Banners(ctx context.Context, perSection int) ([]domain.CategoryBanner, error) {
	catalog, err := s.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}

	categories, err := s.categoryRepo.FindActive(ctx)
	if err != nil {
		logger.Error("Failed to load banner categories", err)
		return nil, fmt.Errorf("load categories: %w", err)
	}

	return s.engine.Banners(catalog, categories, perSection), nil
}
