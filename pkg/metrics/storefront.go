package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Latency of a full storefront distribution, catalog load included
	DistributionLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "storefront_distribution_latency_seconds",
		Help:    "Latency of storefront distribution requests",
		Buckets: prometheus.DefBuckets,
	})

	// Distributions served, split by whether a category filter was active
	DistributionRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_distribution_requests_total",
		Help: "Total number of storefront distributions served",
	}, []string{"filtered"})

	FeaturedSize = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "storefront_featured_size",
		Help:    "Number of YaBaBoss products in the featured section",
		Buckets: []float64{0, 1, 5, 10, 15, 20, 25, 30},
	})

	// Catalog snapshot lookups by result: hit, miss, error
	CatalogCache = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_catalog_cache_total",
		Help: "Catalog snapshot cache lookups by result",
	}, []string{"result"})
)

func Init() {
	prometheus.MustRegister(
		DistributionLatency,
		DistributionRequests,
		FeaturedSize,
		CatalogCache,
	)
}
