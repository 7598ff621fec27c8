package insighting

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/sales-insights-api/internal/domain"
)

func revenueViewFixture(rows ...domain.AggregateRow) domain.AggregateView {
	return domain.AggregateView{
		Name:    "revenue_by_category",
		Measure: domain.MeasureRevenue,
		Rows:    rows,
	}
}

func TestSynthesize(t *testing.T) {
	tests := []struct {
		name         string
		view         domain.AggregateView
		distribution domain.SentimentDistribution
		validate     func(t *testing.T, insight domain.Insight)
	}{
		{
			name: "complaints concentrate in one category",
			view: revenueViewFixture(
				domain.AggregateRow{Category: "Electronics", Value: 5000},
				domain.AggregateRow{Category: "Fashion", Value: 1200},
			),
			distribution: domain.SentimentDistribution{
				"Electronics": {domain.SentimentPositive: 4},
				"Fashion":     {domain.SentimentNegative: 3, domain.SentimentPositive: 1},
			},
			validate: func(t *testing.T, insight domain.Insight) {
				assert.Equal(t, "Electronics", insight.BestRevenueCategory)
				assert.Equal(t, "Fashion", insight.WorstSentimentCategory)
				assert.Equal(t, 6200.0, insight.TotalRevenue)
				assert.Equal(t,
					"Focus on improving product quality and delivery service in the Fashion category. Electronics continues to drive major revenue.",
					insight.Recommendation,
				)
			},
		},
		{
			name: "no negative feedback anywhere",
			view: revenueViewFixture(
				domain.AggregateRow{Category: "Electronics", Value: 5000},
			),
			distribution: domain.SentimentDistribution{
				"Electronics": {domain.SentimentPositive: 2, domain.SentimentNeutral: 1},
			},
			validate: func(t *testing.T, insight domain.Insight) {
				assert.Equal(t, domain.NoWorstSentimentCategory, insight.WorstSentimentCategory)
				assert.Equal(t,
					"Customer feedback shows no concentrated complaints. Keep investing in the Electronics category, which drives the most revenue.",
					insight.Recommendation,
				)
			},
		},
		{
			name:         "empty dataset",
			view:         revenueViewFixture(),
			distribution: domain.SentimentDistribution{},
			validate: func(t *testing.T, insight domain.Insight) {
				assert.Zero(t, insight.TotalRevenue)
				assert.Empty(t, insight.BestRevenueCategory)
				assert.Equal(t, domain.NoWorstSentimentCategory, insight.WorstSentimentCategory)
				assert.Equal(t, "No sales data available yet. Load a dataset to generate insights.", insight.Recommendation)
			},
		},
		{
			name: "negative tie broken by category name",
			view: revenueViewFixture(
				domain.AggregateRow{Category: "Electronics", Value: 100},
			),
			distribution: domain.SentimentDistribution{
				"Zebra": {domain.SentimentNegative: 2},
				"Apple": {domain.SentimentNegative: 2},
			},
			validate: func(t *testing.T, insight domain.Insight) {
				assert.Equal(t, "Apple", insight.WorstSentimentCategory)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			insight := Synthesize(tt.view, tt.distribution, domain.SentimentCoverage{})
			tt.validate(t, insight)
		})
	}
}

// Synthesis is pure: repeated runs over the same inputs give identical
// reports.
func TestSynthesize_Deterministic(t *testing.T) {
	view := revenueViewFixture(
		domain.AggregateRow{Category: "Electronics", Value: 5000},
		domain.AggregateRow{Category: "Fashion", Value: 1200},
	)
	distribution := domain.SentimentDistribution{
		"Electronics": {domain.SentimentNegative: 1},
		"Fashion":     {domain.SentimentNegative: 1},
	}

	first := Synthesize(view, distribution, domain.SentimentCoverage{})
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Synthesize(view, distribution, domain.SentimentCoverage{}))
	}
}

type stubRevenue struct {
	view domain.AggregateView
}

func (s *stubRevenue) RevenueByCategory() (domain.AggregateView, error) { return s.view, nil }
func (s *stubRevenue) TotalRevenue() (float64, error)                   { return s.view.TotalValue(), nil }

type stubDistributor struct {
	distribution domain.SentimentDistribution
	coverage     domain.SentimentCoverage
}

func (s *stubDistributor) DistributionByCategory(context.Context) (domain.SentimentDistribution, domain.SentimentCoverage, error) {
	return s.distribution, s.coverage, nil
}

func TestService_GenerateInsight(t *testing.T) {
	revenue := &stubRevenue{view: revenueViewFixture(
		domain.AggregateRow{Category: "Electronics", Value: 5000},
	)}
	sentiments := &stubDistributor{
		distribution: domain.SentimentDistribution{
			"Electronics": {domain.SentimentNegative: 1},
		},
		coverage: domain.SentimentCoverage{TotalRecords: 1, ClassifiedRecords: 1},
	}

	service := NewService(revenue, sentiments)

	insight, err := service.GenerateInsight(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Electronics", insight.BestRevenueCategory)
	assert.Equal(t, "Electronics", insight.WorstSentimentCategory)
	assert.Equal(t, 5000.0, insight.TotalRevenue)
	assert.Equal(t, sentiments.coverage, insight.Coverage)
}
