package querying

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/sales-insights-api/internal/domain"
	"github.com/vfg2006/sales-insights-api/internal/usecases/aggregating"
)

func saleFixture(orderID int64, category string, quantity int, unitPrice float64) domain.SaleRecord {
	return domain.SaleRecord{
		OrderID:         orderID,
		ProductCategory: category,
		Quantity:        quantity,
		UnitPrice:       unitPrice,
		PurchaseDate:    time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC),
	}
}

// Electronics leads on revenue, Fashion leads on order count. The two intents
// must route to different views and give different winners.
func newTestRouter(t *testing.T) *Router {
	t.Helper()

	service := aggregating.NewService(aggregating.NewMemoryStore([]domain.SaleRecord{
		saleFixture(1, "Electronics", 1, 1000),
		saleFixture(2, "Fashion", 1, 100),
		saleFixture(3, "Fashion", 1, 100),
		saleFixture(4, "Fashion", 1, 100),
	}))

	router, err := NewRouter(service)
	require.NoError(t, err)
	return router
}

func TestRouter_Answer(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name     string
		question string
		validate func(t *testing.T, resp domain.QueryResponse)
	}{
		{
			name:     "revenue question routes to the revenue view",
			question: "Which category has the highest total sales revenue?",
			validate: func(t *testing.T, resp domain.QueryResponse) {
				assert.Equal(t, domain.IntentRevenueByCategory, resp.Intent)
				assert.Equal(t, "Electronics", resp.Category)
				assert.Equal(t, 1000.0, resp.Value)
				assert.Equal(t, "The Electronics category generates the highest revenue of 1000.00.", resp.Answer)
				assert.NotEmpty(t, resp.Suggestion)
				assert.False(t, resp.NoData)
			},
		},
		{
			name:     "orders question routes to the order count view",
			question: "Which category sells the maximum number of orders?",
			validate: func(t *testing.T, resp domain.QueryResponse) {
				assert.Equal(t, domain.IntentOrdersByCategory, resp.Intent)
				assert.Equal(t, "Fashion", resp.Category)
				assert.Equal(t, 3.0, resp.Value)
				assert.Equal(t, "The Fashion category has the highest number of orders: 3.", resp.Answer)
			},
		},
		{
			name:     "sales keyword counts as an orders question",
			question: "Where do most sales happen?",
			validate: func(t *testing.T, resp domain.QueryResponse) {
				assert.Equal(t, domain.IntentOrdersByCategory, resp.Intent)
				assert.Equal(t, "Fashion", resp.Category)
			},
		},
		{
			name:     "revenue wins when a question matches both intents",
			question: "Compare revenue against orders across categories",
			validate: func(t *testing.T, resp domain.QueryResponse) {
				assert.Equal(t, domain.IntentRevenueByCategory, resp.Intent)
				assert.Equal(t, "Electronics", resp.Category)
			},
		},
		{
			name:     "keyword matching is case-insensitive",
			question: "TOTAL REVENUE by category please",
			validate: func(t *testing.T, resp domain.QueryResponse) {
				assert.Equal(t, domain.IntentRevenueByCategory, resp.Intent)
			},
		},
		{
			name:     "unmatched question gets the disclaimer",
			question: "What is the weather like today?",
			validate: func(t *testing.T, resp domain.QueryResponse) {
				assert.Equal(t, domain.IntentUnknown, resp.Intent)
				assert.Equal(t, "I can currently answer questions about revenue and orders only.", resp.Answer)
				assert.Empty(t, resp.Category)
				assert.False(t, resp.NoData)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := router.Answer(tt.question)
			require.NoError(t, err)
			assert.NotEmpty(t, resp.ID)
			assert.Equal(t, tt.question, resp.Question)
			tt.validate(t, resp)
		})
	}
}

func TestRouter_Answer_EmptyDataset(t *testing.T) {
	service := aggregating.NewService(aggregating.NewMemoryStore(nil))
	router, err := NewRouter(service)
	require.NoError(t, err)

	resp, err := router.Answer("Which category has the highest revenue?")
	require.NoError(t, err)

	assert.Equal(t, domain.IntentRevenueByCategory, resp.Intent)
	assert.True(t, resp.NoData)
	assert.Equal(t, "No sales data available to answer this question yet.", resp.Answer)
	assert.Empty(t, resp.Category)
}

// The same question over the same snapshot must always produce the same
// routing and the same answer text.
func TestRouter_Answer_Deterministic(t *testing.T) {
	router := newTestRouter(t)

	first, err := router.Answer("Which category drives the most revenue?")
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		resp, err := router.Answer("Which category drives the most revenue?")
		require.NoError(t, err)
		assert.Equal(t, first.Intent, resp.Intent)
		assert.Equal(t, first.Category, resp.Category)
		assert.Equal(t, first.Value, resp.Value)
		assert.Equal(t, first.Answer, resp.Answer)
	}
}

func TestRouter_CustomIntentPriority(t *testing.T) {
	service := aggregating.NewService(aggregating.NewMemoryStore([]domain.SaleRecord{
		saleFixture(1, "Electronics", 1, 10),
	}))

	// Intents are registered data: priority decides the winner no matter the
	// registration order.
	intents := []IntentSpec{
		{
			Intent:   domain.IntentOrdersByCategory,
			Priority: 2,
			Keywords: []string{"best"},
			View:     aggregating.ViewSpec{Name: aggregating.ViewOrdersByCategory, Measure: domain.MeasureOrderCount},
			Template: func(top domain.AggregateRow) (string, string) {
				return "orders answer", ""
			},
		},
		{
			Intent:   domain.IntentRevenueByCategory,
			Priority: 1,
			Keywords: []string{"best"},
			View:     aggregating.ViewSpec{Name: aggregating.ViewRevenueByCategory, Measure: domain.MeasureRevenue},
			Template: func(top domain.AggregateRow) (string, string) {
				return "revenue answer", ""
			},
		},
	}

	router, err := NewRouter(service, intents...)
	require.NoError(t, err)

	resp, err := router.Answer("which category is best?")
	require.NoError(t, err)
	assert.Equal(t, domain.IntentRevenueByCategory, resp.Intent)
	assert.Equal(t, "revenue answer", resp.Answer)
}
