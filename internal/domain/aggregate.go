package domain

// Measure identifies the numeric measure an aggregate view computes per
// product category.
type Measure string

const (
	MeasureRevenue    Measure = "revenue"
	MeasureOrderCount Measure = "order_count"
	MeasureAvgPrice   Measure = "avg_price"
)

// AggregateRequest is the declarative aggregation request handed to the
// relational store collaborator: group sales by category, compute one
// measure, sort by it descending with category name as the tie-break. The
// core never depends on a query dialect, only on this shape.
type AggregateRequest struct {
	Measure Measure
}

// AggregateRow is one (category, value) pair of an aggregate view.
type AggregateRow struct {
	Category string  `json:"category"`
	Value    float64 `json:"value"`
}

// AggregateView is the evaluated result of a view specification. Rows are
// ordered by value descending, ties broken by category name ascending, so the
// same snapshot always produces the same view.
type AggregateView struct {
	Name    string         `json:"name"`
	Measure Measure        `json:"measure"`
	Rows    []AggregateRow `json:"rows"`
}

// Top returns the first row of the view and whether one exists. Callers must
// check the boolean: an empty dataset yields an empty view, not an error.
func (v AggregateView) Top() (AggregateRow, bool) {
	if len(v.Rows) == 0 {
		return AggregateRow{}, false
	}
	return v.Rows[0], true
}

// TotalValue sums the view's values. For the revenue view this equals the
// dataset's total revenue.
func (v AggregateView) TotalValue() float64 {
	var total float64
	for _, row := range v.Rows {
		total += row.Value
	}
	return total
}
