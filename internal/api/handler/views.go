package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"

	"github.com/vfg2006/sales-insights-api/internal/usecases/aggregating"
	"github.com/vfg2006/sales-insights-api/pkg/apiErrors"
	"github.com/vfg2006/sales-insights-api/pkg/log"
	"github.com/vfg2006/sales-insights-api/pkg/render"
)

type viewDescriptor struct {
	Name    string `json:"name"`
	Measure string `json:"measure"`
}

// ListViews returns the registered aggregate view names.
func ListViews() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		specs := aggregating.Views()
		descriptors := make([]viewDescriptor, 0, len(specs))
		for _, spec := range specs {
			descriptors = append(descriptors, viewDescriptor{
				Name:    spec.Name,
				Measure: string(spec.Measure),
			})
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(descriptors); err != nil {
			logger.WithField("error", err.Error()).Error("views: failed to encode response")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "failed to encode response", nil)
		}
	})
}

// GetAggregateView evaluates one view over the current snapshot. The optional
// format query parameter switches the response from JSON to a rendered text
// table or bar chart.
func GetAggregateView(service aggregating.Aggregator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		params := httprouter.ParamsFromContext(r.Context())
		name := params.ByName("name")

		view, err := service.EvaluateByName(name)
		if err != nil {
			if errors.Is(err, aggregating.ErrViewNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrViewNotFound, err.Error(), nil)
				return
			}

			logger.WithFields(log.Fields{
				"view_name": name,
				"error":     err.Error(),
			}).Error("views: failed to evaluate view")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "failed to evaluate view", nil)
			return
		}

		switch r.URL.Query().Get("format") {
		case "table":
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			_, _ = w.Write([]byte(render.Table(view)))
		case "chart":
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			_, _ = w.Write([]byte(render.BarChart(view, 0)))
		default:
			w.Header().Set("Content-Type", "application/json")
			if err := json.NewEncoder(w).Encode(view); err != nil {
				logger.WithField("error", err.Error()).Error("views: failed to encode response")
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "failed to encode response", nil)
			}
		}
	})
}
