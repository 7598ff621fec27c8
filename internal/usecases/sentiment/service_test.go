package sentiment

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/sales-insights-api/infrastructure/repository/mocks"
	"github.com/vfg2006/sales-insights-api/internal/domain"
)

// stubClassifier labels texts by keyword so batch tests can assert exact
// positions. Texts containing "fail" simulate an unreachable classifier.
type stubClassifier struct{}

func (s *stubClassifier) ModelVersion() string { return "stub-v1" }

func (s *stubClassifier) Classify(_ context.Context, text string) (domain.Classification, error) {
	switch {
	case strings.Contains(text, "fail"):
		return domain.Classification{}, domain.ErrClassifierUnavailable
	case strings.Contains(text, "good"):
		return domain.Classification{Label: domain.SentimentPositive, Confidence: 0.9}, nil
	case strings.Contains(text, "bad"):
		return domain.Classification{Label: domain.SentimentNegative, Confidence: 0.9}, nil
	default:
		return domain.Classification{Label: domain.SentimentNeutral, Confidence: 0.5}, nil
	}
}

type stubSales struct {
	records []domain.SaleRecord
}

func (s *stubSales) ListSales() ([]domain.SaleRecord, error) {
	return s.records, nil
}

func feedbackFixture(orderID int64, category, feedback string) domain.SaleRecord {
	return domain.SaleRecord{
		OrderID:         orderID,
		ProductCategory: category,
		Quantity:        1,
		UnitPrice:       10,
		PurchaseDate:    time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC),
		FeedbackText:    feedback,
	}
}

func TestService_Classify_EmptyTextIsNeutral(t *testing.T) {
	service := NewService(&stubClassifier{}, nil, nil, 1)

	for _, text := range []string{"", "   ", "\t\n"} {
		result, err := service.Classify(context.Background(), text)
		require.NoError(t, err)
		assert.Equal(t, domain.SentimentNeutral, result.Label)
		assert.Equal(t, 1.0, result.Confidence)
	}
}

func TestService_ClassifyAll_PreservesInputOrder(t *testing.T) {
	service := NewService(&stubClassifier{}, nil, nil, 4)

	texts := []string{"good product", "bad delivery", "", "okay I guess", "good value", "bad quality"}

	results, err := service.ClassifyAll(context.Background(), texts)
	require.NoError(t, err)
	require.Len(t, results, len(texts))

	expected := []domain.SentimentLabel{
		domain.SentimentPositive,
		domain.SentimentNegative,
		domain.SentimentNeutral,
		domain.SentimentNeutral,
		domain.SentimentPositive,
		domain.SentimentNegative,
	}
	for i, label := range expected {
		assert.Equal(t, label, results[i].Label, "position %d", i)
	}
}

func TestService_ClassifyAll_EmptyBatch(t *testing.T) {
	service := NewService(&stubClassifier{}, nil, nil, 4)

	results, err := service.ClassifyAll(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestService_ClassifyAll_DegradesToUnknown(t *testing.T) {
	service := NewService(&stubClassifier{}, nil, nil, 2)

	texts := []string{"good product", "this will fail", "bad delivery"}

	results, err := service.ClassifyAll(context.Background(), texts)
	assert.ErrorIs(t, err, domain.ErrClassifierUnavailable)
	require.Len(t, results, len(texts))

	assert.Equal(t, domain.SentimentPositive, results[0].Label)
	assert.Equal(t, domain.SentimentUnknown, results[1].Label)
	assert.Equal(t, domain.SentimentNegative, results[2].Label)
}

func TestService_RefreshCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCache := mocks.NewMockSentimentRepository(ctrl)
	service := NewService(&stubClassifier{}, nil, mockCache, 2)

	pending := []domain.SaleRecord{
		feedbackFixture(1, "Electronics", "good product"),
		feedbackFixture(2, "Fashion", "bad quality"),
	}

	mockCache.EXPECT().ListPendingFeedback("stub-v1").Return(pending, nil)
	mockCache.EXPECT().SaveOrUpdate(domain.SentimentAnnotation{
		OrderID:      1,
		Label:        domain.SentimentPositive,
		Confidence:   0.9,
		ModelVersion: "stub-v1",
	}).Return(nil)
	mockCache.EXPECT().SaveOrUpdate(domain.SentimentAnnotation{
		OrderID:      2,
		Label:        domain.SentimentNegative,
		Confidence:   0.9,
		ModelVersion: "stub-v1",
	}).Return(nil)

	written, err := service.RefreshCache(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, written)
}

// Unavailable classifications must not be cached: they would otherwise stick
// until the model version changes.
func TestService_RefreshCache_SkipsUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCache := mocks.NewMockSentimentRepository(ctrl)
	service := NewService(&stubClassifier{}, nil, mockCache, 1)

	pending := []domain.SaleRecord{
		feedbackFixture(1, "Electronics", "good product"),
		feedbackFixture(2, "Fashion", "this will fail"),
	}

	mockCache.EXPECT().ListPendingFeedback("stub-v1").Return(pending, nil)
	mockCache.EXPECT().SaveOrUpdate(gomock.Any()).Return(nil).Times(1)

	written, err := service.RefreshCache(context.Background())
	assert.ErrorIs(t, err, domain.ErrClassifierUnavailable)
	assert.Equal(t, 1, written)
}

func TestService_RefreshCache_NothingPending(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCache := mocks.NewMockSentimentRepository(ctrl)
	service := NewService(&stubClassifier{}, nil, mockCache, 1)

	mockCache.EXPECT().ListPendingFeedback("stub-v1").Return(nil, nil)

	written, err := service.RefreshCache(context.Background())
	require.NoError(t, err)
	assert.Zero(t, written)
}

func TestService_DistributionByCategory_OnDemand(t *testing.T) {
	sales := &stubSales{records: []domain.SaleRecord{
		feedbackFixture(1, "Electronics", "good product"),
		feedbackFixture(2, "Electronics", "bad battery"),
		feedbackFixture(3, "Fashion", "good fit"),
		feedbackFixture(4, "Home Appliances", ""), // no feedback, excluded
	}}

	service := NewService(&stubClassifier{}, sales, nil, 2)

	distribution, coverage, err := service.DistributionByCategory(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, distribution["Electronics"][domain.SentimentPositive])
	assert.Equal(t, 1, distribution["Electronics"][domain.SentimentNegative])
	assert.Equal(t, 1, distribution["Fashion"][domain.SentimentPositive])
	assert.NotContains(t, distribution, "Home Appliances")

	assert.Equal(t, 3, coverage.TotalRecords)
	assert.Equal(t, 3, coverage.ClassifiedRecords)
	assert.False(t, coverage.Partial)
}

func TestService_DistributionByCategory_PartialCoverage(t *testing.T) {
	sales := &stubSales{records: []domain.SaleRecord{
		feedbackFixture(1, "Electronics", "good product"),
		feedbackFixture(2, "Fashion", "this will fail"),
	}}

	service := NewService(&stubClassifier{}, sales, nil, 1)

	distribution, coverage, err := service.DistributionByCategory(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, distribution["Electronics"][domain.SentimentPositive])
	assert.Equal(t, 1, distribution["Fashion"][domain.SentimentUnknown])

	assert.Equal(t, 2, coverage.TotalRecords)
	assert.Equal(t, 1, coverage.ClassifiedRecords)
	assert.True(t, coverage.Partial)
}

func TestService_DistributionByCategory_PrefersCachedAnnotations(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sales := &stubSales{records: []domain.SaleRecord{
		feedbackFixture(1, "Electronics", "whatever text"),
		feedbackFixture(2, "Fashion", "whatever text"),
	}}

	mockCache := mocks.NewMockSentimentRepository(ctrl)
	mockCache.EXPECT().ListByModelVersion("stub-v1").Return([]domain.SentimentAnnotation{
		{OrderID: 1, Label: domain.SentimentNegative, ModelVersion: "stub-v1"},
	}, nil)

	service := NewService(&stubClassifier{}, sales, mockCache, 1)

	distribution, coverage, err := service.DistributionByCategory(context.Background())
	require.NoError(t, err)

	// Order 1 comes from the cache; order 2 has no annotation yet and stays
	// UNKNOWN until the next refresh.
	assert.Equal(t, 1, distribution["Electronics"][domain.SentimentNegative])
	assert.Equal(t, 1, distribution["Fashion"][domain.SentimentUnknown])
	assert.True(t, coverage.Partial)
}
