// Package querying routes free-text questions to the canonical aggregate
// views. Intents are registered as data (priority, keywords, view, template),
// so adding one never touches the dispatch logic.
package querying

import (
	"fmt"
	"sort"
	"strings"

	goahocorasick "github.com/anknown/ahocorasick"
	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/vfg2006/sales-insights-api/internal/domain"
	"github.com/vfg2006/sales-insights-api/internal/usecases/aggregating"
	"github.com/vfg2006/sales-insights-api/pkg/log"
)

const (
	disclaimerAnswer = "I can currently answer questions about revenue and orders only."
	noDataAnswer     = "No sales data available to answer this question yet."

	responseIDLength = 10
)

// ViewEvaluator executes a view specification. Satisfied by the aggregating
// service.
type ViewEvaluator interface {
	Evaluate(spec aggregating.ViewSpec) (domain.AggregateView, error)
}

// ResponseTemplate renders the fixed answer and suggestion for a matched
// intent from the view's top row.
type ResponseTemplate func(top domain.AggregateRow) (answer string, suggestion string)

// IntentSpec registers one intent: which keywords trigger it, which view it
// executes and how the response is templated. Lower priority wins when a
// question matches several intents, keeping routing deterministic.
type IntentSpec struct {
	Intent   domain.Intent
	Priority int
	Keywords []string
	View     aggregating.ViewSpec
	Template ResponseTemplate
}

// DefaultIntents returns the built-in intent table.
func DefaultIntents() []IntentSpec {
	return []IntentSpec{
		{
			Intent:   domain.IntentRevenueByCategory,
			Priority: 1,
			Keywords: []string{"revenue"},
			View:     aggregating.ViewSpec{Name: aggregating.ViewRevenueByCategory, Measure: domain.MeasureRevenue},
			Template: func(top domain.AggregateRow) (string, string) {
				return fmt.Sprintf("The %s category generates the highest revenue of %.2f.", top.Category, top.Value),
					"Increase marketing focus and add more premium products in this category to maximize revenue opportunities."
			},
		},
		{
			Intent:   domain.IntentOrdersByCategory,
			Priority: 2,
			Keywords: []string{"orders", "sales"},
			View:     aggregating.ViewSpec{Name: aggregating.ViewOrdersByCategory, Measure: domain.MeasureOrderCount},
			Template: func(top domain.AggregateRow) (string, string) {
				return fmt.Sprintf("The %s category has the highest number of orders: %d.", top.Category, int64(top.Value)),
					fmt.Sprintf("Focus retention and loyalty programs on %s buyers.", top.Category)
			},
		},
	}
}

type registeredIntent struct {
	spec    IntentSpec
	matcher *goahocorasick.Machine
}

// Router matches questions against registered intents in priority order and
// executes the winning intent's view.
type Router struct {
	views   ViewEvaluator
	intents []registeredIntent
}

// NewRouter builds a router over the given intents, or the default table
// when none are provided. Keyword matching uses one Aho-Corasick automaton
// per intent over the normalized question text.
func NewRouter(views ViewEvaluator, intents ...IntentSpec) (*Router, error) {
	if len(intents) == 0 {
		intents = DefaultIntents()
	}

	sort.SliceStable(intents, func(i, j int) bool {
		return intents[i].Priority < intents[j].Priority
	})

	registered := make([]registeredIntent, 0, len(intents))
	for _, spec := range intents {
		patterns := make([][]rune, len(spec.Keywords))
		for i, keyword := range spec.Keywords {
			patterns[i] = []rune(strings.ToLower(keyword))
		}

		matcher := new(goahocorasick.Machine)
		if err := matcher.Build(patterns); err != nil {
			return nil, fmt.Errorf("failed to build matcher for intent %s: %w", spec.Intent, err)
		}

		registered = append(registered, registeredIntent{spec: spec, matcher: matcher})
	}

	return &Router{
		views:   views,
		intents: registered,
	}, nil
}

// Answer routes a question to an intent and renders the structured response.
// It never fails on well-formed input: unmatched questions get the
// disclaimer and an empty view gets the no-data response.
func (r *Router) Answer(question string) (domain.QueryResponse, error) {
	response := domain.QueryResponse{
		ID:       newResponseID(),
		Question: question,
		Intent:   domain.IntentUnknown,
	}

	normalized := []rune(strings.ToLower(question))

	for _, intent := range r.intents {
		if len(intent.matcher.MultiPatternSearch(normalized, true)) == 0 {
			continue
		}

		response.Intent = intent.spec.Intent

		view, err := r.views.Evaluate(intent.spec.View)
		if err != nil {
			return domain.QueryResponse{}, fmt.Errorf("failed to execute view for intent %s: %w", intent.spec.Intent, err)
		}

		top, ok := view.Top()
		if !ok {
			response.Answer = noDataAnswer
			response.NoData = true
			return response, nil
		}

		response.Category = top.Category
		response.Value = top.Value
		response.Answer, response.Suggestion = intent.spec.Template(top)

		return response, nil
	}

	response.Answer = disclaimerAnswer
	return response, nil
}

func newResponseID() string {
	id, err := gonanoid.New(responseIDLength)
	if err != nil {
		// nanoid only fails when the entropy source does; fall back to a
		// constant rather than failing the query.
		log.L.WithError(err).Warn("query: failed to generate response ID")
		return "unknown"
	}
	return id
}
