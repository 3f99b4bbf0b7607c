package domain

// DistributionResult is the storefront layout for one catalog snapshot.
// Featured and General never share a product id.
type DistributionResult struct {
	Category   string    `json:"category,omitempty"`
	Featured   []Product `json:"featured"`
	General    []Product `json:"general"`
	TotalCount int       `json:"total_count"`
}

// Match strategies, in precedence order.
const (
	MatchExact    = "exact"
	MatchPartial  = "partial"
	MatchSynonym  = "synonym"
	MatchFreeText = "free_text"
	MatchBeauty   = "beauty"
	MatchHealth   = "health_wellness"
)

// CategoryMatch records which strategy first matched a product.
type CategoryMatch struct {
	Product  Product `json:"product"`
	Strategy string  `json:"strategy"`
}

type CategoryBanner struct {
	Category Category  `json:"category"`
	Products []Product `json:"products"`
}
