package insighting

import (
	"context"

	"github.com/vfg2006/sales-insights-api/internal/domain"
)

// RevenueViewer provides the revenue aggregates the synthesizer combines.
type RevenueViewer interface {
	RevenueByCategory() (domain.AggregateView, error)
	TotalRevenue() (float64, error)
}

// SentimentDistributor provides the per-category sentiment distribution and
// its coverage.
type SentimentDistributor interface {
	DistributionByCategory(ctx context.Context) (domain.SentimentDistribution, domain.SentimentCoverage, error)
}

// Insighter generates the synthesized report.
type Insighter interface {
	GenerateInsight(ctx context.Context) (domain.Insight, error)
}
