package distribution

// Config sizes the storefront sections. Score weights are not configurable.
type Config struct {
	// featured (YaBaBoss) section size, without and with an active category
	FeaturedLimit         int
	FeaturedLimitFiltered int

	// general section size with an active category
	FilteredGeneralCap int

	// general section size in the balanced "all products" view
	BalancedTarget int

	// lower bound of the per-category quota in the balanced view
	MinPerCategory int

	// round-robin passes allowed per category before backfilling
	PassesPerCategory int

	// products per category banner
	BannerSize int
}

const (
	defaultFeaturedLimit         = 30
	defaultFeaturedLimitFiltered = 25
	defaultFilteredGeneralCap    = 200
	defaultBalancedTarget        = 120
	defaultMinPerCategory        = 4
	defaultPassesPerCategory     = 25
	defaultBannerSize            = 8
)

func DefaultConfig() Config {
	return Config{
		FeaturedLimit:         defaultFeaturedLimit,
		FeaturedLimitFiltered: defaultFeaturedLimitFiltered,
		FilteredGeneralCap:    defaultFilteredGeneralCap,
		BalancedTarget:        defaultBalancedTarget,
		MinPerCategory:        defaultMinPerCategory,
		PassesPerCategory:     defaultPassesPerCategory,
		BannerSize:            defaultBannerSize,
	}
}

// withDefaults replaces non-positive fields with their defaults.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.FeaturedLimit <= 0 {
		c.FeaturedLimit = d.FeaturedLimit
	}
	if c.FeaturedLimitFiltered <= 0 {
		c.FeaturedLimitFiltered = d.FeaturedLimitFiltered
	}
	if c.FilteredGeneralCap <= 0 {
		c.FilteredGeneralCap = d.FilteredGeneralCap
	}
	if c.BalancedTarget <= 0 {
		c.BalancedTarget = d.BalancedTarget
	}
	if c.MinPerCategory <= 0 {
		c.MinPerCategory = d.MinPerCategory
	}
	if c.PassesPerCategory <= 0 {
		c.PassesPerCategory = d.PassesPerCategory
	}
	if c.BannerSize <= 0 {
		c.BannerSize = d.BannerSize
	}
	return c
}
