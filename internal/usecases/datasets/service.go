// Package datasets manages dataset snapshots: validated replacement and
// read access for the reporting layer.
package datasets

import (
	"context"

	"github.com/vfg2006/sales-insights-api/infrastructure/repository"
	"github.com/vfg2006/sales-insights-api/internal/domain"
	"github.com/vfg2006/sales-insights-api/pkg/log"
)

type DatasetService interface {
	Replace(ctx context.Context, records []domain.SaleRecord) error
	List() ([]domain.SaleRecord, error)
}

type Service struct {
	sales      repository.SaleRepository
	sentiments repository.SentimentRepository
}

func NewService(sales repository.SaleRepository, sentiments repository.SentimentRepository) DatasetService {
	return &Service{
		sales:      sales,
		sentiments: sentiments,
	}
}

// Replace validates and swaps the stored snapshot. Cached sentiment
// annotations are dropped with it: they were computed from the previous
// snapshot's feedback texts.
func (s *Service) Replace(ctx context.Context, records []domain.SaleRecord) error {
	if err := domain.ValidateDataset(records); err != nil {
		return err
	}

	if err := s.sales.ReplaceDataset(ctx, records); err != nil {
		return err
	}

	if err := s.sentiments.DeleteAll(); err != nil {
		return err
	}

	log.L.WithField("dataset_size", len(records)).Info("dataset replaced")
	return nil
}

func (s *Service) List() ([]domain.SaleRecord, error) {
	return s.sales.ListSales()
}
