package distribution

import (
	"sort"
	"strings"

	"yabaMarket/domain"
)

const otherCategory = "Autres"

type scoredProduct struct {
	product domain.Product
	score   float64
}

// rankBy scores products and sorts them by descending score. Ties keep the
// input order.
func rankBy(products []domain.Product, score func(domain.Product) float64) []scoredProduct {
	out := make([]scoredProduct, 0, len(products))
	for _, p := range products {
		out = append(out, scoredProduct{product: p, score: score(p)})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].score > out[j].score
	})
	return out
}

func bucketOf(p domain.Product) string {
	if c := strings.TrimSpace(p.Category); c != "" {
		return c
	}
	return otherCategory
}

// BalanceByCategory picks up to target products from pool, spreading picks
// across categories round-robin with the best general scores first in each
// category, then backfilling from the best remaining products overall. The
// result is shuffled.
func (e *Engine) BalanceByCategory(pool []domain.Product, target int) []domain.Product {
	if target <= 0 || len(pool) == 0 {
		return []domain.Product{}
	}

	var order []string
	groups := make(map[string][]scoredProduct)
	seenIDs := make(map[string]struct{}, len(pool))
	unique := make([]domain.Product, 0, len(pool))
	for _, p := range pool {
		if _, dup := seenIDs[p.ID]; dup {
			continue
		}
		seenIDs[p.ID] = struct{}{}
		unique = append(unique, p)

		b := bucketOf(p)
		if _, ok := groups[b]; !ok {
			order = append(order, b)
		}
		groups[b] = append(groups[b], scoredProduct{product: p})
	}

	for _, b := range order {
		g := groups[b]
		for i := range g {
			g[i].score = GeneralScore(g[i].product)
		}
		sort.SliceStable(g, func(i, j int) bool {
			return g[i].score > g[j].score
		})
	}

	numCategories := len(order)
	maxPerCategory := target / numCategories
	if maxPerCategory < e.cfg.MinPerCategory {
		maxPerCategory = e.cfg.MinPerCategory
	}
	maxPasses := numCategories * e.cfg.PassesPerCategory

	selected := make([]domain.Product, 0, min(target, len(unique)))
	picked := make(map[string]struct{}, target)
	next := make(map[string]int, numCategories)

	for pass := 0; pass < maxPasses && len(selected) < target; pass++ {
		progressed := false
		for _, b := range order {
			if len(selected) >= target {
				break
			}
			if next[b] >= maxPerCategory || next[b] >= len(groups[b]) {
				continue
			}
			p := groups[b][next[b]].product
			next[b]++
			picked[p.ID] = struct{}{}
			selected = append(selected, p)
			progressed = true
		}
		if !progressed {
			break
		}
	}

	if len(selected) < target {
		for _, sp := range rankBy(unique, GeneralScore) {
			if len(selected) >= target {
				break
			}
			if _, ok := picked[sp.product.ID]; ok {
				continue
			}
			picked[sp.product.ID] = struct{}{}
			selected = append(selected, sp.product)
		}
	}

	e.shuffle(selected)
	return selected
}
