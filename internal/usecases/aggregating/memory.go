package aggregating

import (
	"sort"

	"github.com/vfg2006/sales-insights-api/internal/domain"
)

// MemoryStore evaluates aggregate requests directly over an in-memory
// snapshot. It makes the relational store optional: correctness never
// depends on the database being present.
type MemoryStore struct {
	records []domain.SaleRecord
}

func NewMemoryStore(records []domain.SaleRecord) *MemoryStore {
	snapshot := make([]domain.SaleRecord, len(records))
	copy(snapshot, records)
	return &MemoryStore{records: snapshot}
}

// Aggregate groups the snapshot by category and computes the requested
// measure, sorted descending with the category name breaking ties.
func (m *MemoryStore) Aggregate(req domain.AggregateRequest) ([]domain.AggregateRow, error) {
	type accumulator struct {
		revenue  float64
		orders   int
		priceSum float64
	}

	byCategory := make(map[string]*accumulator)
	for _, record := range m.records {
		acc, ok := byCategory[record.ProductCategory]
		if !ok {
			acc = &accumulator{}
			byCategory[record.ProductCategory] = acc
		}
		acc.revenue += record.LineRevenue()
		acc.orders++
		acc.priceSum += record.UnitPrice
	}

	rows := make([]domain.AggregateRow, 0, len(byCategory))
	for category, acc := range byCategory {
		var value float64
		switch req.Measure {
		case domain.MeasureRevenue:
			value = acc.revenue
		case domain.MeasureOrderCount:
			value = float64(acc.orders)
		case domain.MeasureAvgPrice:
			value = acc.priceSum / float64(acc.orders)
		}
		rows = append(rows, domain.AggregateRow{Category: category, Value: value})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Value != rows[j].Value {
			return rows[i].Value > rows[j].Value
		}
		return rows[i].Category < rows[j].Category
	})

	return rows, nil
}

func (m *MemoryStore) TotalRevenue() (float64, error) {
	var total float64
	for _, record := range m.records {
		total += record.LineRevenue()
	}
	return total, nil
}
