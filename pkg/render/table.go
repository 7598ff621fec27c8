// Package render turns aggregate views, insights and query responses into
// display artifacts for terminals and text reports. It is the concrete form
// of the renderer collaborator; nothing in the core depends on it.
package render

import (
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"

	"github.com/vfg2006/sales-insights-api/internal/domain"
	"github.com/vfg2006/sales-insights-api/pkg/utils"
)

// measureHeaders maps a measure to its table column header.
var measureHeaders = map[domain.Measure]string{
	domain.MeasureRevenue:    "Revenue",
	domain.MeasureOrderCount: "Orders",
	domain.MeasureAvgPrice:   "Avg Price",
}

// Table renders an aggregate view as an aligned text table.
func Table(view domain.AggregateView) string {
	var sb strings.Builder

	header, ok := measureHeaders[view.Measure]
	if !ok {
		header = "Value"
	}

	table := tablewriter.NewWriter(&sb)
	table.SetHeader([]string{"Category", header})
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})

	for _, row := range view.Rows {
		table.Append([]string{row.Category, formatValue(view.Measure, row.Value)})
	}

	if len(view.Rows) == 0 {
		table.SetFooter([]string{"", "no data"})
	}

	table.Render()
	return sb.String()
}

// BarChart renders the view as a horizontal ASCII bar chart, the text
// counterpart of the category bar plots in the reporting UI.
func BarChart(view domain.AggregateView, width int) string {
	if width <= 0 {
		width = 40
	}

	if len(view.Rows) == 0 {
		return "no data available\n"
	}

	labelWidth := lo.Max(lo.Map(view.Rows, func(r domain.AggregateRow, _ int) int {
		return len(r.Category)
	}))

	max := view.Rows[0].Value
	for _, row := range view.Rows {
		if row.Value > max {
			max = row.Value
		}
	}

	var sb strings.Builder
	for _, row := range view.Rows {
		bar := 0
		if max > 0 {
			bar = int(row.Value / max * float64(width))
		}
		sb.WriteString(fmt.Sprintf("%-*s | %s %s\n",
			labelWidth,
			row.Category,
			strings.Repeat("█", bar),
			formatValue(view.Measure, row.Value),
		))
	}

	return sb.String()
}

func formatValue(measure domain.Measure, value float64) string {
	if measure == domain.MeasureOrderCount {
		return fmt.Sprintf("%d", int64(value))
	}
	return fmt.Sprintf("%.2f", utils.RoundWithTwoDecimalPlace(value))
}
