package sentiment

import (
	"context"

	"github.com/vfg2006/sales-insights-api/internal/domain"
)

// TextClassifier is the injected classification capability. Implementations
// must be deterministic for a fixed model version and input, and must signal
// unavailability through domain.ErrClassifierUnavailable rather than a
// low-confidence result.
type TextClassifier interface {
	Classify(ctx context.Context, text string) (domain.Classification, error)
	ModelVersion() string
}

// SaleLister provides the current dataset snapshot.
type SaleLister interface {
	ListSales() ([]domain.SaleRecord, error)
}

// AnnotationCache persists one annotation per (order, model version) so
// feedback is classified once and reclassified only on model changes.
// Satisfied by repository.SentimentRepository.
type AnnotationCache interface {
	ListByModelVersion(modelVersion string) ([]domain.SentimentAnnotation, error)
	ListPendingFeedback(modelVersion string) ([]domain.SaleRecord, error)
	SaveOrUpdate(annotation domain.SentimentAnnotation) error
}
