// Package insighting combines revenue aggregates and the sentiment
// distribution into a short structured report. Output is deterministic:
// the recommendation is templated from the derived fields, never generated.
package insighting

import (
	"context"
	"fmt"

	"github.com/samber/lo"

	"github.com/vfg2006/sales-insights-api/internal/domain"
	"github.com/vfg2006/sales-insights-api/pkg/utils"
)

const (
	recommendationTemplate       = "Focus on improving product quality and delivery service in the %s category. %s continues to drive major revenue."
	recommendationNoComplaints   = "Customer feedback shows no concentrated complaints. Keep investing in the %s category, which drives the most revenue."
	recommendationEmptyDataset   = "No sales data available yet. Load a dataset to generate insights."
	recommendationOnlyComplaints = "Customer complaints concentrate in the %s category. Prioritize quality and delivery improvements there."
)

type Service struct {
	revenue    RevenueViewer
	sentiments SentimentDistributor
}

func NewService(revenue RevenueViewer, sentiments SentimentDistributor) *Service {
	return &Service{
		revenue:    revenue,
		sentiments: sentiments,
	}
}

// GenerateInsight fetches the current aggregates and synthesizes the report.
func (s *Service) GenerateInsight(ctx context.Context) (domain.Insight, error) {
	revenueView, err := s.revenue.RevenueByCategory()
	if err != nil {
		return domain.Insight{}, fmt.Errorf("failed to compute revenue view: %w", err)
	}

	distribution, coverage, err := s.sentiments.DistributionByCategory(ctx)
	if err != nil {
		return domain.Insight{}, fmt.Errorf("failed to compute sentiment distribution: %w", err)
	}

	return Synthesize(revenueView, distribution, coverage), nil
}

// Synthesize derives the insight from a revenue view and a sentiment
// distribution. Pure: same inputs always produce the same report.
func Synthesize(
	revenueView domain.AggregateView,
	distribution domain.SentimentDistribution,
	coverage domain.SentimentCoverage,
) domain.Insight {
	insight := domain.Insight{
		TotalRevenue:           utils.RoundWithTwoDecimalPlace(revenueView.TotalValue()),
		WorstSentimentCategory: worstSentimentCategory(distribution),
		Coverage:               coverage,
	}

	if top, ok := revenueView.Top(); ok {
		insight.BestRevenueCategory = top.Category
	}

	insight.Recommendation = recommendation(insight)

	return insight
}

// worstSentimentCategory returns the category with the most NEGATIVE-labeled
// records, ties broken by category name ascending. With no NEGATIVE records
// anywhere it returns the explicit "none" sentinel instead of an arbitrary
// category.
func worstSentimentCategory(distribution domain.SentimentDistribution) string {
	categories := lo.Keys(distribution)

	worst := domain.NoWorstSentimentCategory
	worstNegatives := 0

	for _, category := range categories {
		negatives := distribution.Negatives(category)
		if negatives == 0 {
			continue
		}

		if negatives > worstNegatives ||
			(negatives == worstNegatives && category < worst) {
			worst = category
			worstNegatives = negatives
		}
	}

	return worst
}

func recommendation(insight domain.Insight) string {
	hasComplaints := insight.WorstSentimentCategory != domain.NoWorstSentimentCategory

	switch {
	case insight.BestRevenueCategory == "" && !hasComplaints:
		return recommendationEmptyDataset
	case insight.BestRevenueCategory == "":
		return fmt.Sprintf(recommendationOnlyComplaints, insight.WorstSentimentCategory)
	case !hasComplaints:
		return fmt.Sprintf(recommendationNoComplaints, insight.BestRevenueCategory)
	default:
		return fmt.Sprintf(recommendationTemplate, insight.WorstSentimentCategory, insight.BestRevenueCategory)
	}
}
