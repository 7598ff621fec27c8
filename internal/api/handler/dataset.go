package handler

import (
	"net/http"

	"github.com/pkg/errors"

	"github.com/vfg2006/sales-insights-api/infrastructure/dataset"
	"github.com/vfg2006/sales-insights-api/internal/domain"
	"github.com/vfg2006/sales-insights-api/internal/usecases/datasets"
	"github.com/vfg2006/sales-insights-api/pkg/apiErrors"
	"github.com/vfg2006/sales-insights-api/pkg/log"
)

type replaceDatasetResponse struct {
	Records int `json:"records"`
}

// ReplaceDataset swaps the sales snapshot with the CSV payload of the
// request body. The dataset is validated as a whole before anything is
// written, so a single bad row rejects the upload.
func ReplaceDataset(service datasets.DatasetService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		defer r.Body.Close()

		records, err := dataset.Load(r.Body)
		if err != nil {
			var integrityErr *domain.IntegrityError
			if errors.As(err, &integrityErr) {
				apiErrors.WriteError(w, apiErrors.ErrDatasetIntegrity, integrityErr.Error(), nil)
				return
			}

			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		if err := service.Replace(r.Context(), records); err != nil {
			var integrityErr *domain.IntegrityError
			if errors.As(err, &integrityErr) {
				apiErrors.WriteError(w, apiErrors.ErrDatasetIntegrity, integrityErr.Error(), nil)
				return
			}

			logger.WithField("error", err.Error()).Error("datasets: failed to replace dataset")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "failed to replace dataset", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(replaceDatasetResponse{Records: len(records)}); err != nil {
			logger.WithField("error", err.Error()).Error("datasets: failed to encode response")
		}
	})
}

// ListDataset returns the current snapshot's records.
func ListDataset(service datasets.DatasetService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		records, err := service.List()
		if err != nil {
			logger.WithField("error", err.Error()).Error("datasets: failed to list records")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "failed to list records", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(records); err != nil {
			logger.WithField("error", err.Error()).Error("datasets: failed to encode response")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "failed to encode response", nil)
		}
	})
}
