package handler

import (
	"net/http"

	"github.com/vfg2006/sales-insights-api/internal/domain"
	"github.com/vfg2006/sales-insights-api/pkg/apiErrors"
	"github.com/vfg2006/sales-insights-api/pkg/log"
	"github.com/vfg2006/sales-insights-api/pkg/render"
)

// QueryAnswerer routes a free-text question to an answer. Satisfied by the
// querying router.
type QueryAnswerer interface {
	Answer(question string) (domain.QueryResponse, error)
}

type queryRequest struct {
	Question string `json:"question"`
}

// AskQuestion answers a natural-language question about the dataset.
func AskQuestion(answerer QueryAnswerer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req queryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid query payload", nil)
			return
		}

		if req.Question == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "question is required", nil)
			return
		}

		response, err := answerer.Answer(req.Question)
		if err != nil {
			logger.WithField("error", err.Error()).Error("query: failed to answer question")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "failed to answer question", nil)
			return
		}

		logger.WithFields(log.Fields{
			"query_id":     response.ID,
			"query_intent": response.Intent,
		}).Info("query: question answered")

		if r.URL.Query().Get("format") == "text" {
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			_, _ = w.Write([]byte(render.QueryAnswer(response)))
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithField("error", err.Error()).Error("query: failed to encode response")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "failed to encode response", nil)
		}
	})
}
