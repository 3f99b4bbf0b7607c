package distribution

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yabaMarket/domain"
)

func seededEngine(seed int64) *Engine {
	return NewEngine(DefaultConfig(), rand.New(rand.NewSource(seed)))
}

// categoryPool builds n products in category whose general score increases with i.
func categoryPool(category string, n int) []domain.Product {
	out := make([]domain.Product, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, newProduct(
			fmt.Sprintf("%s-%02d", category, i),
			withCategory(category),
			withPrice(100000),
			withPromo(100000-int64(i)*1000),
		))
	}
	return out
}

func countByCategory(products []domain.Product) map[string]int {
	out := make(map[string]int)
	for _, p := range products {
		out[bucketOf(p)]++
	}
	return out
}

func TestBalanceByCategorySizeBound(t *testing.T) {
	e := seededEngine(1)
	pool := append(categoryPool("Mode", 6), categoryPool("Maison", 4)...)

	assert.Len(t, e.BalanceByCategory(pool, 5), 5)
	assert.Len(t, e.BalanceByCategory(pool, 50), 10)
	assert.Empty(t, e.BalanceByCategory(pool, 0))
	assert.Empty(t, e.BalanceByCategory(nil, 10))
}

func TestBalanceByCategoryNoDuplicates(t *testing.T) {
	e := seededEngine(2)
	pool := append(categoryPool("Mode", 8), categoryPool("Maison", 8)...)
	pool = append(pool, pool[0], pool[9])

	got := e.BalanceByCategory(pool, 100)

	dup, ok := assertUniqueIDs(got)
	assert.True(t, ok, "duplicate id %s", dup)
	assert.Len(t, got, 16)
}

func TestBalanceByCategoryRepresentsEveryCategory(t *testing.T) {
	e := seededEngine(3)
	var pool []domain.Product
	for _, c := range []string{"Mode", "Maison", "Sport"} {
		pool = append(pool, categoryPool(c, 10)...)
	}

	got := e.BalanceByCategory(pool, 6)

	assert.Equal(t, map[string]int{"Mode": 2, "Maison": 2, "Sport": 2}, countByCategory(got))
}

func TestBalanceByCategoryPrefersBestInCategory(t *testing.T) {
	e := seededEngine(4)
	pool := categoryPool("Mode", 10)

	got := e.BalanceByCategory(pool, 4)

	assert.ElementsMatch(t, []string{"Mode-09", "Mode-08", "Mode-07", "Mode-06"}, ids(got))
}

func TestBalanceByCategoryBackfillsPastTheQuota(t *testing.T) {
	e := seededEngine(5)
	pool := append(categoryPool("Mode", 10), newProduct("lonely", withCategory("Jouets")))

	// quota is max(4, 10/2) = 5 for Mode; backfill takes the next best Mode products
	got := e.BalanceByCategory(pool, 10)

	require.Len(t, got, 10)
	assert.Contains(t, ids(got), "lonely")
	assert.NotContains(t, ids(got), "Mode-00")
}

func TestBalanceByCategoryGroupsMissingCategory(t *testing.T) {
	e := seededEngine(6)
	pool := []domain.Product{
		newProduct("a"),
		newProduct("b", withCategory("  ")),
		newProduct("c", withCategory("Mode")),
	}

	got := e.BalanceByCategory(pool, 3)

	assert.Equal(t, map[string]int{otherCategory: 2, "Mode": 1}, countByCategory(got))
}

func TestBalanceByCategorySeededShuffleIsRepeatable(t *testing.T) {
	var pool []domain.Product
	for _, c := range []string{"Mode", "Maison", "Sport", "Beauté"} {
		pool = append(pool, categoryPool(c, 12)...)
	}

	first := ids(seededEngine(42).BalanceByCategory(pool, 30))
	second := ids(seededEngine(42).BalanceByCategory(pool, 30))

	assert.Equal(t, first, second)
}
