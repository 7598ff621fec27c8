package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/vfg2006/sales-insights-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-insights-api/pkg/apiErrors"
)

type contextKey string

const (
	ContextKeyOperator contextKey = "operator"
)

// openPaths are reachable without a token.
var openPaths = map[string]struct{}{
	"/v1/login":    {},
	"/healthcheck": {},
}

func AuthMiddleware(authService authenticating.Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, open := openPaths[r.URL.Path]; open {
				next.ServeHTTP(w, r)
				return
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Authorization header is required", nil)
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Bearer token is required", nil)
				return
			}

			claims, err := authService.ValidateToken(tokenString)
			if err != nil {
				apiErr := apiErrors.FromError(err, apiErrors.ErrInvalidToken)
				apiErrors.WriteError(w, apiErr.Code, apiErr.Message, nil)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyOperator, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
