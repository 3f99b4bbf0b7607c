// Package distribution ranks a product catalog and lays it out into the
// storefront sections: the YaBaBoss featured row, the category banners and the
// general listing. Everything here is an in-memory function of the catalog
// snapshot and the active category filter.
package distribution

import (
	"math/rand"
	"sort"

	"yabaMarket/domain"
)

// Shuffler permutes n elements through swap. *rand.Rand satisfies it.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// globalShuffler uses the auto-seeded, goroutine-safe top-level source.
type globalShuffler struct{}

func (globalShuffler) Shuffle(n int, swap func(i, j int)) {
	rand.Shuffle(n, swap)
}

// Engine lays out catalogs with a fixed Config. It holds no per-call state.
type Engine struct {
	cfg Config
	rng Shuffler
}

// NewEngine builds an engine. A nil rng uses the process-wide random source;
// pass a seeded *rand.Rand (not shared across goroutines) to get repeatable
// orderings.
func NewEngine(cfg Config, rng Shuffler) *Engine {
	if rng == nil {
		rng = globalShuffler{}
	}
	return &Engine{
		cfg: cfg.withDefaults(),
		rng: rng,
	}
}

// Config returns the effective configuration, defaults applied.
func (e *Engine) Config() Config {
	return e.cfg
}

func (e *Engine) shuffle(products []domain.Product) {
	e.rng.Shuffle(len(products), func(i, j int) {
		products[i], products[j] = products[j], products[i]
	})
}

// Featured returns the top limit YaBaBoss products by premium score.
func Featured(catalog []domain.Product, limit int) []domain.Product {
	out := make([]domain.Product, 0)
	if limit <= 0 {
		return out
	}
	seen := make(map[string]struct{})
	for _, sp := range rankBy(catalog, PremiumScore) {
		if sp.score <= 0 {
			break
		}
		if _, dup := seen[sp.product.ID]; dup {
			continue
		}
		seen[sp.product.ID] = struct{}{}
		out = append(out, sp.product)
		if len(out) == limit {
			break
		}
	}
	return out
}

// Distribute lays out the catalog for the given category filter. The featured
// list is deterministic; the general list is shuffled on every call.
func (e *Engine) Distribute(catalog []domain.Product, activeCategory string) domain.DistributionResult {
	filtered := !IsAllCategories(activeCategory)

	working := catalog
	featuredLimit := e.cfg.FeaturedLimit
	if filtered {
		working = MatchCategory(catalog, activeCategory)
		featuredLimit = e.cfg.FeaturedLimitFiltered
	}

	featured := Featured(working, featuredLimit)

	consumed := make(map[string]struct{}, len(featured))
	for _, p := range featured {
		consumed[p.ID] = struct{}{}
	}
	remaining := make([]domain.Product, 0, len(working))
	for _, p := range working {
		if _, ok := consumed[p.ID]; ok {
			continue
		}
		// consumed also dedups repeated ids in the pool
		consumed[p.ID] = struct{}{}
		remaining = append(remaining, p)
	}

	var general []domain.Product
	if filtered {
		ranked := rankBy(remaining, GeneralScore)
		if len(ranked) > e.cfg.FilteredGeneralCap {
			ranked = ranked[:e.cfg.FilteredGeneralCap]
		}
		general = make([]domain.Product, 0, len(ranked))
		for _, sp := range ranked {
			general = append(general, sp.product)
		}
		e.shuffle(general)
	} else {
		general = e.BalanceByCategory(remaining, e.cfg.BalancedTarget)
	}

	result := domain.DistributionResult{
		Featured:   featured,
		General:    general,
		TotalCount: len(featured) + len(general),
	}
	if filtered {
		result.Category = activeCategory
	}
	return result
}

// Banners builds one banner per category, in the order given, holding the
// best matching products by general score. Categories without a match are
// left out. perSection <= 0 uses the configured banner size.
func (e *Engine) Banners(catalog []domain.Product, categories []domain.Category, perSection int) []domain.CategoryBanner {
	if perSection <= 0 {
		perSection = e.cfg.BannerSize
	}

	sorted := make([]domain.Category, len(categories))
	copy(sorted, categories)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Position < sorted[j].Position
	})

	out := make([]domain.CategoryBanner, 0, len(sorted))
	for _, c := range sorted {
		if IsAllCategories(c.Name) {
			continue
		}
		ranked := rankBy(MatchCategory(catalog, c.Name), GeneralScore)
		if len(ranked) == 0 {
			continue
		}
		if len(ranked) > perSection {
			ranked = ranked[:perSection]
		}
		products := make([]domain.Product, 0, len(ranked))
		for _, sp := range ranked {
			products = append(products, sp.product)
		}
		out = append(out, domain.CategoryBanner{Category: c, Products: products})
	}
	return out
}
