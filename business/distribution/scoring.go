package distribution

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"yabaMarket/domain"
)

// Premium (YaBaBoss) score weights.
const (
	premiumBase              = 100.0
	premiumDiscountFactor    = 3.0
	premiumBigDiscountBonus  = 20.0
	premiumBigDiscountAbove  = 30.0
	premiumVideoBonus        = 40.0
	premiumKeywordBonus      = 18.0
	premiumKeywordCombo2     = 15.0
	premiumKeywordCombo3     = 25.0
	premiumKeywordCombo4     = 40.0
	premiumDescription300    = 25.0
	premiumDescription200    = 15.0
	premiumDescription100    = 10.0
	premiumPriceCoreBonus    = 30.0
	premiumPriceCoreMin      = 20000
	premiumPriceCoreMax      = 150000
	premiumPriceWideBonus    = 20.0
	premiumPriceWideMin      = 10000
	premiumPriceWideMax      = 200000
	premiumPriceOuterBonus   = 10.0
	premiumPriceOuterMin     = 5000
	premiumPriceOuterMax     = 300000
	premiumImages5Bonus      = 50.0
	premiumImages3Bonus      = 35.0
	premiumImages1Bonus      = 20.0
	premiumStockOver100Bonus = 60.0
	premiumStockOver50Bonus  = 45.0
	premiumStockOver20Bonus  = 25.0
	premiumStockOver10Bonus  = 15.0
	premiumStockInBonus      = 5.0
)

// General product score weights.
const (
	generalBase           = 15.0
	generalDiscountFactor = 2.5
	generalVideoBonus     = 15.0
	generalYaBaBossBonus  = 25.0
	generalPriceBonus     = 15.0
	generalPriceMin       = 3000
	generalPriceMax       = 500000
	generalDescription150 = 10.0
	generalDescription100 = 5.0
	generalImages3Bonus   = 20.0
	generalImages1Bonus   = 12.0
	generalStockOver100   = 35.0
	generalStockOver50    = 25.0
	generalStockOver20    = 18.0
	generalStockInBonus   = 8.0
)

// trendingKeywords boost premium products whose copy uses them. Matched as
// substrings of the lowercased, NFC-composed name and description.
var trendingKeywords = []string{
	"nouveau", "nouveauté", "promo", "exclusif", "premium",
	"original", "qualité", "luxe", "tendance", "best-seller",
	"meilleur", "offre spéciale", "édition limitée", "authentique", "garantie",
	"livraison gratuite", "bio", "naturel", "artisanal", "fait main",
	"importé", "officiel", "professionnel", "smart", "haut de gamme",
}

// PremiumScore ranks YaBaBoss products for the featured section. Products
// outside the tier always score 0. The score is deterministic.
func PremiumScore(p domain.Product) float64 {
	if !p.IsYaBaBoss {
		return 0
	}

	score := premiumBase

	if discount := p.DiscountPercent(); discount > 0 {
		score += discount * premiumDiscountFactor
		if discount > premiumBigDiscountAbove {
			score += premiumBigDiscountBonus
		}
	}

	switch {
	case p.Stock > 100:
		score += premiumStockOver100Bonus
	case p.Stock > 50:
		score += premiumStockOver50Bonus
	case p.Stock > 20:
		score += premiumStockOver20Bonus
	case p.Stock > 10:
		score += premiumStockOver10Bonus
	case p.Stock > 0:
		score += premiumStockInBonus
	}

	switch n := len(p.Images); {
	case n > 5:
		score += premiumImages5Bonus
	case n > 3:
		score += premiumImages3Bonus
	case n > 1:
		score += premiumImages1Bonus
	}

	if p.HasVideo() {
		score += premiumVideoBonus
	}

	switch {
	case p.Price >= premiumPriceCoreMin && p.Price <= premiumPriceCoreMax:
		score += premiumPriceCoreBonus
	case p.Price >= premiumPriceWideMin && p.Price <= premiumPriceWideMax:
		score += premiumPriceWideBonus
	case p.Price >= premiumPriceOuterMin && p.Price <= premiumPriceOuterMax:
		score += premiumPriceOuterBonus
	}

	// keywords are composed (NFC); decomposed seller copy must be too
	text := norm.NFC.String(strings.ToLower(p.DisplayName() + " " + p.Description))
	matches := 0
	for _, kw := range trendingKeywords {
		if strings.Contains(text, kw) {
			matches++
		}
	}
	score += float64(matches) * premiumKeywordBonus
	switch {
	case matches >= 4:
		score += premiumKeywordCombo4
	case matches >= 3:
		score += premiumKeywordCombo3
	case matches >= 2:
		score += premiumKeywordCombo2
	}

	switch n := utf8.RuneCountInString(p.Description); {
	case n > 300:
		score += premiumDescription300
	case n > 200:
		score += premiumDescription200
	case n > 100:
		score += premiumDescription100
	}

	return score
}

// GeneralScore ranks every product, tier or not, for the general sections.
func GeneralScore(p domain.Product) float64 {
	score := generalBase

	score += p.DiscountPercent() * generalDiscountFactor

	switch {
	case p.Stock > 100:
		score += generalStockOver100
	case p.Stock > 50:
		score += generalStockOver50
	case p.Stock > 20:
		score += generalStockOver20
	case p.Stock > 0:
		score += generalStockInBonus
	}

	switch n := len(p.Images); {
	case n > 3:
		score += generalImages3Bonus
	case n > 1:
		score += generalImages1Bonus
	}

	if p.HasVideo() {
		score += generalVideoBonus
	}

	if p.IsYaBaBoss {
		score += generalYaBaBossBonus
	}

	if p.Price >= generalPriceMin && p.Price <= generalPriceMax {
		score += generalPriceBonus
	}

	switch n := utf8.RuneCountInString(p.Description); {
	case n > 150:
		score += generalDescription150
	case n > 100:
		score += generalDescription100
	}

	return score
}
