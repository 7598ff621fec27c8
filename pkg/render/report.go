package render

import (
	"fmt"
	"strings"

	"github.com/gookit/color"

	"github.com/vfg2006/sales-insights-api/internal/domain"
)

// InsightReport renders the synthesized insight as a short terminal report.
// The wording is fixed; only the derived fields vary.
func InsightReport(insight domain.Insight) string {
	var sb strings.Builder

	sb.WriteString(color.Bold.Sprint("Sales Insights Report"))
	sb.WriteString("\n\n")
	sb.WriteString(fmt.Sprintf("• Total revenue: %.2f\n", insight.TotalRevenue))

	if insight.BestRevenueCategory != "" {
		sb.WriteString(fmt.Sprintf("• Best revenue category: %s\n", color.Green.Sprint(insight.BestRevenueCategory)))
	} else {
		sb.WriteString("• Best revenue category: no data\n")
	}

	if insight.WorstSentimentCategory == domain.NoWorstSentimentCategory {
		sb.WriteString("• Most customer complaints: none\n")
	} else {
		sb.WriteString(fmt.Sprintf("• Most customer complaints: %s\n", color.Red.Sprint(insight.WorstSentimentCategory)))
	}

	sb.WriteString("\n")
	sb.WriteString(insight.Recommendation)
	sb.WriteString("\n")

	if insight.Coverage.Partial {
		sb.WriteString("\n")
		sb.WriteString(color.Yellow.Sprintf(
			"Note: partial sentiment coverage (%d of %d records classified)",
			insight.Coverage.ClassifiedRecords,
			insight.Coverage.TotalRecords,
		))
		sb.WriteString("\n")
	}

	return sb.String()
}

// QueryAnswer renders a structured query response as display text.
func QueryAnswer(resp domain.QueryResponse) string {
	var sb strings.Builder

	sb.WriteString(resp.Answer)
	sb.WriteString("\n")

	if resp.Suggestion != "" {
		sb.WriteString("\n")
		sb.WriteString(color.Cyan.Sprint("Suggestion: "))
		sb.WriteString(resp.Suggestion)
		sb.WriteString("\n")
	}

	return sb.String()
}
