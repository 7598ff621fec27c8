package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/vfg2006/sales-insights-api/internal/scheduler"
	"github.com/vfg2006/sales-insights-api/pkg/apiErrors"
	"github.com/vfg2006/sales-insights-api/pkg/log"
)

// CronJobServices bundles the background jobs exposed through the cron
// endpoints.
type CronJobServices struct {
	SentimentSync *scheduler.SentimentSyncService
}

type cronStatusResponse struct {
	SentimentSync scheduler.SyncStatus `json:"sentiment_sync"`
}

// RunCronJob triggers one job run by type. The run happens inline so the
// response carries its outcome.
func RunCronJob(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		params := httprouter.ParamsFromContext(r.Context())
		jobType := params.ByName("type")

		switch jobType {
		case "sentiment":
			if err := services.SentimentSync.RunSync(r.Context()); err != nil {
				logger.WithField("error", err.Error()).Warn("cron: sentiment sync finished with errors")
				apiErrors.WriteError(w, apiErrors.ErrClassifierUnavailable, "sentiment sync finished with errors", services.SentimentSync.Status())
				return
			}
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "unknown cron job type: "+jobType, nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(services.SentimentSync.Status()); err != nil {
			logger.WithField("error", err.Error()).Error("cron: failed to encode response")
		}
	})
}

// GetCronStatus reports the state of the background jobs.
func GetCronStatus(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		response := cronStatusResponse{
			SentimentSync: services.SentimentSync.Status(),
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithField("error", err.Error()).Error("cron: failed to encode response")
		}
	})
}
