package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Error codes returned to API clients
const (
	// Authentication errors (1000-1999)
	ErrInvalidCredentials = "AUTH_001" // Invalid credentials
	ErrInvalidToken       = "AUTH_002" // Invalid token
	ErrExpiredToken       = "AUTH_003" // Expired token

	// Validation errors (2000-2999)
	ErrInvalidRequest      = "VAL_001" // Malformed request
	ErrMissingRequiredData = "VAL_002" // Required data missing
	ErrInvalidFormat       = "VAL_003" // Invalid data format

	// Dataset errors (3000-3999)
	ErrDatasetIntegrity = "DATA_001" // Dataset rejected by integrity validation
	ErrViewNotFound     = "DATA_002" // Unknown aggregate view

	// Server errors (5000-5999)
	ErrInternalServer        = "SRV_001" // Internal server error
	ErrDatabaseOperation     = "SRV_002" // Database operation failed
	ErrClassifierUnavailable = "SRV_003" // Sentiment classifier unavailable
)

// Error code to HTTP status mapping
var httpStatusMap = map[string]int{
	ErrInvalidCredentials:    http.StatusUnauthorized,
	ErrInvalidToken:          http.StatusUnauthorized,
	ErrExpiredToken:          http.StatusUnauthorized,
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrMissingRequiredData:   http.StatusBadRequest,
	ErrInvalidFormat:         http.StatusBadRequest,
	ErrDatasetIntegrity:      http.StatusUnprocessableEntity,
	ErrViewNotFound:          http.StatusNotFound,
	ErrInternalServer:        http.StatusInternalServerError,
	ErrDatabaseOperation:     http.StatusInternalServerError,
	ErrClassifierUnavailable: http.StatusBadGateway,
}

// APIError is the standardized API error payload
type APIError struct {
	Code    string `json:"code"`              // Error code for the client
	Message string `json:"message,omitempty"` // Descriptive message (optional)
	Details any    `json:"details,omitempty"` // Additional details (optional)
}

// WriteError writes the standardized error to the HTTP response
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}

// FromError builds an API error from a Go error
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "unknown error",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
