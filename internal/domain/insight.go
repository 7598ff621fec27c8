package domain

// NoWorstSentimentCategory is the sentinel used when no NEGATIVE-labeled
// feedback exists anywhere in the dataset. An arbitrary category pick would
// be misleading, so the field is explicit about the absence.
const NoWorstSentimentCategory = "none"

// SentimentCoverage describes how much of the dataset carries a usable
// sentiment label. Partial coverage happens when the classifier was
// unavailable for some records; reports continue but surface the gap.
type SentimentCoverage struct {
	TotalRecords      int  `json:"total_records"`
	ClassifiedRecords int  `json:"classified_records"`
	Partial           bool `json:"partial"`
}

// Insight is the synthesized summary combining revenue and sentiment
// aggregates. It is derived on demand and never persisted.
type Insight struct {
	TotalRevenue           float64           `json:"total_revenue"`
	BestRevenueCategory    string            `json:"best_revenue_category"`
	WorstSentimentCategory string            `json:"worst_sentiment_category"`
	Recommendation         string            `json:"recommendation"`
	Coverage               SentimentCoverage `json:"sentiment_coverage"`
}
