package distribution

import (
	"strings"

	"yabaMarket/domain"
)

// categoryQuery is a category filter prepared once per call.
type categoryQuery struct {
	normalized string
	keywords   []string
	synonyms   []string
	beauty     bool
	health     bool
}

func newCategoryQuery(category string) categoryQuery {
	n := Normalize(category)
	_, beauty := beautyQueries[n]
	_, health := healthQueries[n]
	return categoryQuery{
		normalized: n,
		keywords:   keywords(n),
		synonyms:   Synonyms(n),
		beauty:     beauty,
		health:     health,
	}
}

// productText holds the normalized fields the strategies look at.
type productText struct {
	category    string
	subcategory string
	text        string // name + description
}

func newProductText(p domain.Product) productText {
	return productText{
		category:    Normalize(p.Category),
		subcategory: Normalize(p.Subcategory),
		text:        Normalize(p.DisplayName() + " " + p.Description),
	}
}

// match returns the first strategy that accepts the product, or "".
func (q categoryQuery) match(pt productText) string {
	switch {
	case q.exact(pt):
		return domain.MatchExact
	case q.partial(pt):
		return domain.MatchPartial
	case q.synonym(pt):
		return domain.MatchSynonym
	case q.freeText(pt):
		return domain.MatchFreeText
	case q.beauty && anyKeyword(pt.text+" "+pt.category, beautyKeywords):
		return domain.MatchBeauty
	case q.health && anyKeyword(pt.text+" "+pt.category, healthKeywords):
		return domain.MatchHealth
	}
	return ""
}

func (q categoryQuery) exact(pt productText) bool {
	return pt.category != "" && pt.category == q.normalized
}

func (q categoryQuery) partial(pt productText) bool {
	for _, field := range []string{pt.category, pt.subcategory} {
		if field == "" {
			continue
		}
		if containsTerm(field, q.normalized) || containsTerm(q.normalized, field) {
			return true
		}
		for _, kw := range q.keywords {
			if strings.Contains(field, kw) {
				return true
			}
		}
	}
	return false
}

func (q categoryQuery) synonym(pt productText) bool {
	for _, syn := range q.synonyms {
		if containsWord(pt.category, syn) || containsWord(pt.subcategory, syn) {
			return true
		}
	}
	// the other direction: the query is a synonym of the product's own category
	for _, field := range []string{pt.category, pt.subcategory} {
		if field == "" {
			continue
		}
		for _, syn := range Synonyms(field) {
			if containsWord(q.normalized, syn) {
				return true
			}
		}
	}
	return false
}

func (q categoryQuery) freeText(pt productText) bool {
	if containsTerm(pt.text, q.normalized) {
		return true
	}
	for _, kw := range q.keywords {
		if strings.Contains(pt.text, kw) {
			return true
		}
	}
	return false
}

func anyKeyword(text string, list []string) bool {
	for _, kw := range list {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// MatchCategoryDetailed returns every product accepted by at least one
// strategy, in catalog order, tagged with the first strategy that matched.
// Products repeating an id already seen are skipped. An "all" query accepts
// the whole catalog under the exact strategy.
func MatchCategoryDetailed(catalog []domain.Product, category string) []domain.CategoryMatch {
	out := make([]domain.CategoryMatch, 0)
	seen := make(map[string]struct{}, len(catalog))

	all := IsAllCategories(category)
	q := newCategoryQuery(category)

	for _, p := range catalog {
		if _, dup := seen[p.ID]; dup {
			continue
		}

		strategy := domain.MatchExact
		if !all {
			strategy = q.match(newProductText(p))
			if strategy == "" {
				continue
			}
		}

		seen[p.ID] = struct{}{}
		out = append(out, domain.CategoryMatch{Product: p, Strategy: strategy})
	}

	return out
}

// MatchCategory filters catalog down to the products matching category.
// An empty or "all" category returns catalog unchanged.
func MatchCategory(catalog []domain.Product, category string) []domain.Product {
	if IsAllCategories(category) {
		return catalog
	}

	matches := MatchCategoryDetailed(catalog, category)
	out := make([]domain.Product, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.Product)
	}
	return out
}
