package distribution

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yabaMarket/domain"
)

func tenProductCatalog() []domain.Product {
	return []domain.Product{
		newProduct("boss-low", yaBaBoss(), withCategory("Mode")),
		newProduct("boss-high", yaBaBoss(), withCategory("Maison"), withPrice(50000), withStock(150), withImages(6), withVideo()),
		newProduct("boss-mid", yaBaBoss(), withCategory("Mode"), withStock(30), withImages(2)),
		newProduct("g1", withCategory("Mode")),
		newProduct("g2", withCategory("Mode"), withStock(5)),
		newProduct("g3", withCategory("Maison")),
		newProduct("g4", withCategory("Beauté")),
		newProduct("g5", withCategory("Beauté"), withImages(3)),
		newProduct("g6"),
		newProduct("g7", withCategory("Sport")),
	}
}

func TestDistributeAllCategories(t *testing.T) {
	e := seededEngine(11)
	catalog := tenProductCatalog()

	got := e.Distribute(catalog, "")

	assert.Equal(t, []string{"boss-high", "boss-mid", "boss-low"}, ids(got.Featured))
	assert.ElementsMatch(t, []string{"g1", "g2", "g3", "g4", "g5", "g6", "g7"}, ids(got.General))
	assert.Equal(t, 10, got.TotalCount)
	assert.Empty(t, got.Category)
}

func TestDistributeFeaturedAndGeneralAreDisjoint(t *testing.T) {
	e := seededEngine(12)
	var catalog []domain.Product
	for i := 0; i < 60; i++ {
		opts := []productOpt{withCategory([]string{"Mode", "Maison", "Beauté"}[i%3]), withStock(int64(i))}
		if i%2 == 0 {
			opts = append(opts, yaBaBoss())
		}
		catalog = append(catalog, newProduct(fmt.Sprintf("p%02d", i), opts...))
	}

	for _, category := range []string{"", "Mode", "beauty"} {
		got := e.Distribute(catalog, category)

		featured := make(map[string]struct{})
		for _, p := range got.Featured {
			featured[p.ID] = struct{}{}
		}
		for _, p := range got.General {
			_, clash := featured[p.ID]
			assert.False(t, clash, "%s is both featured and general for %q", p.ID, category)
		}

		dup, ok := assertUniqueIDs(append(append([]domain.Product{}, got.Featured...), got.General...))
		assert.True(t, ok, "duplicate %s", dup)
		assert.Equal(t, len(got.Featured)+len(got.General), got.TotalCount)
	}
}

func TestDistributeFeaturedLimits(t *testing.T) {
	e := seededEngine(13)
	var catalog []domain.Product
	for i := 0; i < 40; i++ {
		catalog = append(catalog, newProduct(fmt.Sprintf("b%02d", i), yaBaBoss(), withCategory("Mode")))
	}
	catalog = append(catalog, newProduct("plain", withCategory("Mode")))

	all := e.Distribute(catalog, "")
	filtered := e.Distribute(catalog, "mode")

	assert.Len(t, all.Featured, 30)
	assert.Len(t, all.General, 11)
	assert.Len(t, filtered.Featured, 25)
	assert.Len(t, filtered.General, 16)
	assert.Equal(t, "mode", filtered.Category)
}

func TestDistributeFilteredCapsGeneral(t *testing.T) {
	e := seededEngine(14)
	var catalog []domain.Product
	for i := 0; i < 250; i++ {
		catalog = append(catalog, newProduct(
			fmt.Sprintf("p%03d", i),
			withCategory("Électronique"),
			withPrice(100000),
			withPromo(100000-int64(i)*100),
		))
	}
	catalog = append(catalog, newProduct("off-topic", withCategory("Mode")))

	got := e.Distribute(catalog, "electronique")

	require.Len(t, got.General, 200)
	assert.Empty(t, got.Featured)
	want := make([]string, 0, 200)
	for i := 50; i < 250; i++ {
		want = append(want, fmt.Sprintf("p%03d", i))
	}
	assert.ElementsMatch(t, want, ids(got.General))
}

func TestDistributeFilterOnlyUsesMatches(t *testing.T) {
	e := seededEngine(15)
	catalog := []domain.Product{
		newProduct("fr", withCategory("Beauté"), yaBaBoss()),
		newProduct("en", withCategory("beauty")),
		newProduct("mode", withCategory("Mode"), yaBaBoss()),
	}

	got := e.Distribute(catalog, "Beaute")

	assert.Equal(t, []string{"fr"}, ids(got.Featured))
	assert.Equal(t, []string{"en"}, ids(got.General))
}

func TestDistributeEmptyCatalog(t *testing.T) {
	e := seededEngine(16)

	for _, category := range []string{"", "mode"} {
		got := e.Distribute(nil, category)
		assert.NotNil(t, got.Featured)
		assert.NotNil(t, got.General)
		assert.Empty(t, got.Featured)
		assert.Empty(t, got.General)
		assert.Zero(t, got.TotalCount)
	}
}

func TestDistributeUnknownCategoryIsEmpty(t *testing.T) {
	got := seededEngine(17).Distribute(tenProductCatalog(), "qqqzzz")

	assert.Empty(t, got.Featured)
	assert.Empty(t, got.General)
}

func TestNewEngineDefaults(t *testing.T) {
	e := NewEngine(Config{BalancedTarget: 10}, nil)

	assert.Equal(t, 10, e.Config().BalancedTarget)
	assert.Equal(t, defaultFeaturedLimit, e.Config().FeaturedLimit)
	assert.NotPanics(t, func() { e.Distribute(tenProductCatalog(), "") })
}

func TestBanners(t *testing.T) {
	e := seededEngine(18)
	catalog := tenProductCatalog()
	categories := []domain.Category{
		{CategoryID: 1, Name: "Mode", Position: 2},
		{CategoryID: 2, Name: "Beauté", Position: 1},
		{CategoryID: 3, Name: "Inexistante", Position: 3},
		{CategoryID: 4, Name: "Tous", Position: 0},
	}

	got := e.Banners(catalog, categories, 2)

	require.Len(t, got, 2)
	assert.Equal(t, "Beauté", got[0].Category.Name)
	assert.Equal(t, []string{"g5", "g4"}, ids(got[0].Products))
	assert.Equal(t, "Mode", got[1].Category.Name)
	assert.Equal(t, []string{"boss-mid", "boss-low"}, ids(got[1].Products))
}
