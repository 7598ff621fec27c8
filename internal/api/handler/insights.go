package handler

import (
	"net/http"

	"github.com/pkg/errors"

	"github.com/vfg2006/sales-insights-api/internal/domain"
	"github.com/vfg2006/sales-insights-api/internal/usecases/insighting"
	"github.com/vfg2006/sales-insights-api/pkg/apiErrors"
	"github.com/vfg2006/sales-insights-api/pkg/log"
	"github.com/vfg2006/sales-insights-api/pkg/render"
)

type sentimentDistributionResponse struct {
	Distribution domain.SentimentDistribution `json:"distribution"`
	Totals       domain.SentimentCounts       `json:"totals"`
	Coverage     domain.SentimentCoverage     `json:"coverage"`
}

// GetInsightReport generates the synthesized insight on demand. With
// format=text the response is the rendered terminal report instead of JSON.
func GetInsightReport(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		insight, err := service.GenerateInsight(r.Context())
		if err != nil {
			if errors.Is(err, domain.ErrClassifierUnavailable) {
				apiErrors.WriteError(w, apiErrors.ErrClassifierUnavailable, "sentiment classifier unavailable", nil)
				return
			}

			logger.WithField("error", err.Error()).Error("insights: failed to generate insight")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "failed to generate insight", nil)
			return
		}

		if r.URL.Query().Get("format") == "text" {
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			_, _ = w.Write([]byte(render.InsightReport(insight)))
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(insight); err != nil {
			logger.WithField("error", err.Error()).Error("insights: failed to encode response")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "failed to encode response", nil)
		}
	})
}

// GetSentimentDistribution returns the per-category sentiment counts together
// with overall totals and coverage.
func GetSentimentDistribution(service insighting.SentimentDistributor) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		distribution, coverage, err := service.DistributionByCategory(r.Context())
		if err != nil {
			if errors.Is(err, domain.ErrClassifierUnavailable) {
				apiErrors.WriteError(w, apiErrors.ErrClassifierUnavailable, "sentiment classifier unavailable", nil)
				return
			}

			logger.WithField("error", err.Error()).Error("insights: failed to compute sentiment distribution")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "failed to compute sentiment distribution", nil)
			return
		}

		response := sentimentDistributionResponse{
			Distribution: distribution,
			Totals:       distribution.Totals(),
			Coverage:     coverage,
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithField("error", err.Error()).Error("insights: failed to encode response")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "failed to encode response", nil)
		}
	})
}
