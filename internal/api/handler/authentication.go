package handler

import (
	"net/http"

	"github.com/vfg2006/sales-insights-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-insights-api/pkg/apiErrors"
	"github.com/vfg2006/sales-insights-api/pkg/log"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

func Login(service authenticating.Authenticator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid login payload", nil)
			return
		}

		if req.Username == "" || req.Password == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "username and password are required", nil)
			return
		}

		token, err := service.Login(req.Username, req.Password)
		if err != nil {
			logger.WithField("error", err.Error()).Warn("auth: login failed")
			apiErrors.WriteError(w, apiErrors.ErrInvalidCredentials, "invalid credentials", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(loginResponse{Token: token}); err != nil {
			logger.WithField("error", err.Error()).Error("auth: failed to encode response")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "failed to encode response", nil)
		}
	})
}
