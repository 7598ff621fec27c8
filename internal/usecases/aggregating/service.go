package aggregating

import (
	"errors"
	"fmt"

	"github.com/vfg2006/sales-insights-api/internal/domain"
)

// ErrViewNotFound is returned when a view name has no registered spec.
var ErrViewNotFound = errors.New("unknown aggregate view")

// Store is the relational store collaborator: it accepts a declarative
// aggregation request and returns (category, value) rows. Both the Postgres
// repository and MemoryStore satisfy it.
type Store interface {
	Aggregate(req domain.AggregateRequest) ([]domain.AggregateRow, error)
	TotalRevenue() (float64, error)
}

// Aggregator exposes the canonical aggregate views. All views are pure reads
// over the current snapshot; an empty dataset yields empty views and a zero
// total, never an error.
type Aggregator interface {
	Evaluate(spec ViewSpec) (domain.AggregateView, error)
	EvaluateByName(name string) (domain.AggregateView, error)
	RevenueByCategory() (domain.AggregateView, error)
	OrderCountByCategory() (domain.AggregateView, error)
	AveragePriceByCategory() (domain.AggregateView, error)
	TotalRevenue() (float64, error)
}

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{
		store: store,
	}
}

// Evaluate executes a view specification against the store.
func (s *Service) Evaluate(spec ViewSpec) (domain.AggregateView, error) {
	rows, err := s.store.Aggregate(domain.AggregateRequest{Measure: spec.Measure})
	if err != nil {
		return domain.AggregateView{}, fmt.Errorf("failed to evaluate view %s: %w", spec.Name, err)
	}

	return domain.AggregateView{
		Name:    spec.Name,
		Measure: spec.Measure,
		Rows:    rows,
	}, nil
}

// EvaluateByName resolves a registered view and evaluates it.
func (s *Service) EvaluateByName(name string) (domain.AggregateView, error) {
	spec, ok := ViewByName(name)
	if !ok {
		return domain.AggregateView{}, fmt.Errorf("%w: %s", ErrViewNotFound, name)
	}
	return s.Evaluate(spec)
}

func (s *Service) RevenueByCategory() (domain.AggregateView, error) {
	return s.EvaluateByName(ViewRevenueByCategory)
}

func (s *Service) OrderCountByCategory() (domain.AggregateView, error) {
	return s.EvaluateByName(ViewOrdersByCategory)
}

func (s *Service) AveragePriceByCategory() (domain.AggregateView, error) {
	return s.EvaluateByName(ViewAvgPriceByCategory)
}

func (s *Service) TotalRevenue() (float64, error) {
	return s.store.TotalRevenue()
}
