// Package sentiment wraps the text-classification capability behind a narrow
// adapter: deterministic labels, ordered batch classification, per-record
// caching and graceful degradation when the classifier is unreachable.
package sentiment

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/vfg2006/sales-insights-api/internal/domain"
	"github.com/vfg2006/sales-insights-api/pkg/log"
)

type Service struct {
	classifier     TextClassifier
	sales          SaleLister
	cache          AnnotationCache
	maxConcurrency int
}

// NewService builds the adapter. cache may be nil: without it the service
// classifies feedback on demand instead of reading cached annotations.
func NewService(classifier TextClassifier, sales SaleLister, cache AnnotationCache, maxConcurrency int) *Service {
	if maxConcurrency <= 0 {
		maxConcurrency = 1
	}

	return &Service{
		classifier:     classifier,
		sales:          sales,
		cache:          cache,
		maxConcurrency: maxConcurrency,
	}
}

func (s *Service) ModelVersion() string {
	return s.classifier.ModelVersion()
}

// Classify labels a single feedback text. Empty or missing text is NEUTRAL
// by definition and never reaches the classifier.
func (s *Service) Classify(ctx context.Context, text string) (domain.Classification, error) {
	if strings.TrimSpace(text) == "" {
		return domain.Classification{Label: domain.SentimentNeutral, Confidence: 1}, nil
	}

	return s.classifier.Classify(ctx, text)
}

// ClassifyAll labels a batch of texts. Classification of one text never
// depends on another, so the batch fans out over a bounded worker pool;
// results come back in input order regardless of completion order, and the
// output always has the input's length. Failed items degrade to UNKNOWN and
// the batch reports domain.ErrClassifierUnavailable so callers can flag
// partial coverage.
func (s *Service) ClassifyAll(ctx context.Context, texts []string) ([]domain.Classification, error) {
	results := make([]domain.Classification, len(texts))
	if len(texts) == 0 {
		return results, nil
	}

	workers := s.maxConcurrency
	if workers > len(texts) {
		workers = len(texts)
	}

	jobs := make(chan int)
	var unavailable atomic.Bool
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				result, err := s.Classify(ctx, texts[i])
				if err != nil {
					unavailable.Store(true)
					result = domain.Classification{Label: domain.SentimentUnknown}
				}
				results[i] = result
			}
		}()
	}

	for i := range texts {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	if unavailable.Load() {
		return results, domain.ErrClassifierUnavailable
	}

	return results, nil
}

// RefreshCache classifies feedback that has no cached annotation for the
// current model version and stores the results. Returns the number of
// annotations written. Unavailable classifications are not cached, so they
// are retried on the next refresh.
func (s *Service) RefreshCache(ctx context.Context) (int, error) {
	if s.cache == nil {
		return 0, nil
	}

	modelVersion := s.classifier.ModelVersion()

	pending, err := s.cache.ListPendingFeedback(modelVersion)
	if err != nil {
		return 0, err
	}

	if len(pending) == 0 {
		return 0, nil
	}

	texts := make([]string, len(pending))
	for i, record := range pending {
		texts[i] = record.FeedbackText
	}

	results, classifyErr := s.ClassifyAll(ctx, texts)

	written := 0
	for i, result := range results {
		if result.Label == domain.SentimentUnknown {
			continue
		}

		annotation := domain.SentimentAnnotation{
			OrderID:      pending[i].OrderID,
			Label:        result.Label,
			Confidence:   result.Confidence,
			ModelVersion: modelVersion,
		}

		if err := s.cache.SaveOrUpdate(annotation); err != nil {
			return written, err
		}
		written++
	}

	if classifyErr != nil {
		log.L.WithField("written", written).Warn("sentiment: cache refresh finished with partial coverage")
		return written, classifyErr
	}

	return written, nil
}

// DistributionByCategory computes the per-category label counts for all
// records carrying feedback, along with how complete the coverage is.
// Classifier failures leave records UNKNOWN and mark the coverage partial;
// they never abort the report.
func (s *Service) DistributionByCategory(ctx context.Context) (domain.SentimentDistribution, domain.SentimentCoverage, error) {
	records, err := s.sales.ListSales()
	if err != nil {
		return nil, domain.SentimentCoverage{}, err
	}

	withFeedback := make([]domain.SaleRecord, 0, len(records))
	for _, record := range records {
		if strings.TrimSpace(record.FeedbackText) != "" {
			withFeedback = append(withFeedback, record)
		}
	}

	distribution := make(domain.SentimentDistribution)
	coverage := domain.SentimentCoverage{TotalRecords: len(withFeedback)}

	if len(withFeedback) == 0 {
		return distribution, coverage, nil
	}

	labels, err := s.labelRecords(ctx, withFeedback)
	if err != nil && !errors.Is(err, domain.ErrClassifierUnavailable) {
		return nil, domain.SentimentCoverage{}, err
	}

	for i, record := range withFeedback {
		distribution.Add(record.ProductCategory, labels[i])
		if labels[i] != domain.SentimentUnknown {
			coverage.ClassifiedRecords++
		}
	}

	coverage.Partial = coverage.ClassifiedRecords < coverage.TotalRecords

	return distribution, coverage, nil
}

// labelRecords resolves one label per record, preferring cached annotations
// and falling back to on-demand classification.
func (s *Service) labelRecords(ctx context.Context, records []domain.SaleRecord) ([]domain.SentimentLabel, error) {
	labels := make([]domain.SentimentLabel, len(records))

	if s.cache != nil {
		annotations, err := s.cache.ListByModelVersion(s.classifier.ModelVersion())
		if err != nil {
			return nil, err
		}

		cached := make(map[int64]domain.SentimentLabel, len(annotations))
		for _, annotation := range annotations {
			cached[annotation.OrderID] = annotation.Label
		}

		for i, record := range records {
			if label, ok := cached[record.OrderID]; ok {
				labels[i] = label
			} else {
				labels[i] = domain.SentimentUnknown
			}
		}

		return labels, nil
	}

	texts := make([]string, len(records))
	for i, record := range records {
		texts[i] = record.FeedbackText
	}

	results, err := s.ClassifyAll(ctx, texts)
	for i, result := range results {
		labels[i] = result.Label
	}

	return labels, err
}
