package domain

import (
	"errors"
	"strings"
)

// ErrClassifierUnavailable signals that the text classification capability
// could not be reached. It is distinct from a low-confidence result: callers
// degrade to UNKNOWN labels and keep reporting instead of aborting.
var ErrClassifierUnavailable = errors.New("sentiment classifier unavailable")

// SentimentLabel is the categorical result of classifying a feedback text.
type SentimentLabel string

const (
	SentimentPositive SentimentLabel = "POSITIVE"
	SentimentNegative SentimentLabel = "NEGATIVE"
	SentimentNeutral  SentimentLabel = "NEUTRAL"

	// SentimentUnknown marks records whose feedback could not be classified,
	// typically because the classifier was unavailable. Reports carry on and
	// flag the partial coverage instead of failing.
	SentimentUnknown SentimentLabel = "UNKNOWN"
)

// ParseSentimentLabel normalizes whatever finite label set the underlying
// classifier emits onto the domain labels. Unrecognized labels map to UNKNOWN
// so a model swap can never leak new labels into reports.
func ParseSentimentLabel(raw string) SentimentLabel {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "POSITIVE", "POS", "LABEL_2":
		return SentimentPositive
	case "NEGATIVE", "NEG", "LABEL_0":
		return SentimentNegative
	case "NEUTRAL", "LABEL_1":
		return SentimentNeutral
	default:
		return SentimentUnknown
	}
}

// Classification is a single classifier verdict.
type Classification struct {
	Label      SentimentLabel `json:"label"`
	Confidence float64        `json:"confidence"`
}

// SentimentAnnotation is the cached classification of a single record's
// feedback text. It is recomputed only when the feedback text or the model
// version changes.
type SentimentAnnotation struct {
	OrderID      int64          `json:"order_id"`
	Label        SentimentLabel `json:"label"`
	Confidence   float64        `json:"confidence"`
	ModelVersion string         `json:"model_version"`
}

// SentimentCounts holds per-label record counts.
type SentimentCounts map[SentimentLabel]int

// SentimentDistribution maps a product category to its label counts.
type SentimentDistribution map[string]SentimentCounts

// Add registers one labeled record under a category.
func (d SentimentDistribution) Add(category string, label SentimentLabel) {
	counts, ok := d[category]
	if !ok {
		counts = make(SentimentCounts)
		d[category] = counts
	}
	counts[label]++
}

// Negatives returns the NEGATIVE count for a category.
func (d SentimentDistribution) Negatives(category string) int {
	return d[category][SentimentNegative]
}

// Totals collapses the distribution into overall per-label counts.
func (d SentimentDistribution) Totals() SentimentCounts {
	totals := make(SentimentCounts)
	for _, counts := range d {
		for label, n := range counts {
			totals[label] += n
		}
	}
	return totals
}
