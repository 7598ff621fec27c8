package domain

// Intent is the inferred purpose of a free-text question, mapped to exactly
// one canonical aggregate view. The set is closed at any point in time but
// intents are registered as data, so extending it does not touch dispatch.
type Intent string

const (
	IntentRevenueByCategory Intent = "REVENUE_BY_CATEGORY"
	IntentOrdersByCategory  Intent = "ORDERS_BY_CATEGORY"
	IntentUnknown           Intent = "UNKNOWN"
)

// QueryResponse is the structured answer to a natural-language question.
// Answer and Suggestion are rendered from fixed templates; the presentation
// layer decides how to display them.
type QueryResponse struct {
	ID         string  `json:"id"`
	Question   string  `json:"question"`
	Intent     Intent  `json:"intent"`
	Category   string  `json:"category,omitempty"`
	Value      float64 `json:"value,omitempty"`
	Answer     string  `json:"answer"`
	Suggestion string  `json:"suggestion,omitempty"`
	NoData     bool    `json:"no_data,omitempty"`
}
