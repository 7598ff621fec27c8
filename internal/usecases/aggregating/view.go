// Package aggregating maintains the derivable aggregate views over the sales
// dataset. Views are declarative specifications: the same spec can be pushed
// down to the relational store or evaluated over an in-memory snapshot.
package aggregating

import (
	"github.com/vfg2006/sales-insights-api/internal/domain"
)

// View names exposed over the API and referenced by the intent router.
const (
	ViewRevenueByCategory  = "revenue_by_category"
	ViewOrdersByCategory   = "orders_by_category"
	ViewAvgPriceByCategory = "avg_price_by_category"
)

// ViewSpec is a named, parameterless aggregation over the sales snapshot:
// group by category, compute one measure, order by it descending with the
// category name breaking ties.
type ViewSpec struct {
	Name    string
	Measure domain.Measure
}

var viewSpecs = []ViewSpec{
	{Name: ViewRevenueByCategory, Measure: domain.MeasureRevenue},
	{Name: ViewOrdersByCategory, Measure: domain.MeasureOrderCount},
	{Name: ViewAvgPriceByCategory, Measure: domain.MeasureAvgPrice},
}

// Views returns the registered view specifications.
func Views() []ViewSpec {
	specs := make([]ViewSpec, len(viewSpecs))
	copy(specs, viewSpecs)
	return specs
}

// ViewByName resolves a registered view specification.
func ViewByName(name string) (ViewSpec, bool) {
	for _, spec := range viewSpecs {
		if spec.Name == name {
			return spec, true
		}
	}
	return ViewSpec{}, false
}
