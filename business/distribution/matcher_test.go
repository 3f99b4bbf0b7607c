package distribution

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yabaMarket/domain"
)

func strategies(matches []domain.CategoryMatch) map[string]string {
	out := make(map[string]string, len(matches))
	for _, m := range matches {
		out[m.Product.ID] = m.Strategy
	}
	return out
}

func TestMatchCategoryAccentAndLanguageVariants(t *testing.T) {
	catalog := []domain.Product{
		newProduct("fr", withCategory("Beauté")),
		newProduct("en", withCategory("beauty")),
		newProduct("health", withCategory("Santé"), withName("Vitamine C 1000mg")),
	}

	got := strategies(MatchCategoryDetailed(catalog, "Beaute"))

	assert.Equal(t, map[string]string{
		"fr": domain.MatchExact,
		"en": domain.MatchSynonym,
	}, got)
}

func TestMatchCategoryAllShortcut(t *testing.T) {
	catalog := []domain.Product{
		newProduct("a", withCategory("Mode")),
		newProduct("b"),
	}

	assert.Equal(t, catalog, MatchCategory(catalog, ""))
	assert.Equal(t, catalog, MatchCategory(catalog, "Tous"))
	assert.Equal(t, catalog, MatchCategory(catalog, " all "))
}

func TestMatchCategoryStrategies(t *testing.T) {
	catalog := []domain.Product{
		newProduct("partial", withCategory("Mode Femme")),
		newProduct("sub", withCategory("Mode"), withSubcategory("Chaussures homme")),
		newProduct("text", withCategory("Divers"), withName("Montre connectée")),
		newProduct("lipstick", withCategory("Divers"), withName("Rouge à lèvres mat")),
		newProduct("yoga", withCategory("Sport"), withName("Tapis de yoga")),
		newProduct("none", withCategory("Alimentation"), withName("Riz brisé 5kg")),
	}

	tests := []struct {
		query string
		id    string
		want  string
	}{
		{"mode", "partial", domain.MatchPartial},
		{"chaussures", "sub", domain.MatchPartial},
		{"montre", "text", domain.MatchFreeText},
		{"Beauté", "lipstick", domain.MatchBeauty},
		{"Santé & Bien-être", "yoga", domain.MatchHealth},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got := strategies(MatchCategoryDetailed(catalog, tt.query))
			assert.Equal(t, tt.want, got[tt.id])
			assert.NotContains(t, got, "none")
		})
	}
}

func TestMatchCategoryKeepsBeautyAndHealthApart(t *testing.T) {
	catalog := []domain.Product{
		newProduct("vitamins", withCategory("Santé"), withName("Vitamine C 1000mg")),
		newProduct("massage", withCategory("Bien-être"), withName("Huile de massage")),
		newProduct("mascara", withCategory("Beauté"), withName("Mascara waterproof")),
	}

	beauty := ids(MatchCategory(catalog, "beaute"))
	health := ids(MatchCategory(catalog, "sante"))

	assert.Equal(t, []string{"mascara"}, beauty)
	assert.NotContains(t, health, "mascara")
	assert.Contains(t, health, "vitamins")
}

func TestMatchCategoryIncludesExactMatches(t *testing.T) {
	catalog := []domain.Product{
		newProduct("1", withCategory("Électronique")),
		newProduct("2", withCategory("electronique")),
		newProduct("3", withCategory("Electronics")),
		newProduct("4", withCategory("Maison")),
	}

	for _, query := range []string{"Electronique", "maison", "electronics"} {
		got := map[string]bool{}
		for _, p := range MatchCategory(catalog, query) {
			got[p.ID] = true
		}
		nq := Normalize(query)
		for _, p := range catalog {
			if Normalize(p.Category) == nq {
				assert.True(t, got[p.ID], "exact match %s missing for %q", p.ID, query)
			}
		}
	}
}

func TestMatchCategoryUnknownIsEmpty(t *testing.T) {
	catalog := []domain.Product{newProduct("a", withCategory("Mode"))}

	got := MatchCategory(catalog, "zzzqqq")

	require.NotNil(t, got)
	assert.Empty(t, got)
	assert.Empty(t, MatchCategory(nil, "mode"))
}

func TestMatchCategoryDedupsByID(t *testing.T) {
	catalog := []domain.Product{
		newProduct("dup", withCategory("Mode")),
		newProduct("dup", withCategory("Mode"), withName("Autre")),
		newProduct("other", withCategory("Mode")),
	}

	got := MatchCategory(catalog, "mode")

	assert.Equal(t, []string{"dup", "other"}, ids(got))
	assert.Equal(t, "Produit dup", got[0].Name)
}

func TestMatchCategorySynonymsMatchWholeWords(t *testing.T) {
	catalog := []domain.Product{
		newProduct("car", withCategory("Automobile"), withName("Housse de siège")),
		newProduct("phone", withCategory("Mobile"), withName("Coque souple")),
		newProduct("case", withCategory("Accessoires"), withSubcategory("Accessoires mobile"), withName("Support voiture")),
	}

	got := strategies(MatchCategoryDetailed(catalog, "Téléphones"))

	assert.Equal(t, map[string]string{
		"phone": domain.MatchSynonym,
		"case":  domain.MatchSynonym,
	}, got)
}
