package apiErrors

import (
	"encoding/json"
	"net/http"
)

const (
	// Validation errors
	ErrInvalidRequest      = "VAL_001" // Malformed request or parameter
	ErrMissingRequiredData = "VAL_002" // Required parameter absent

	// Resource errors
	ErrNotFound = "RES_001" // No matching record

	// Server errors
	ErrInternalServer     = "SRV_001" // Unexpected internal failure
	ErrDatabaseOperation  = "SRV_002" // Database query or write failed
	ErrExternalService    = "SRV_003" // Upstream government API failed
	ErrServiceUnavailable = "SRV_004" // Infrastructure dependency down
)

var httpStatusMap = map[string]int{
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrNotFound:            http.StatusNotFound,
	ErrInternalServer:      http.StatusInternalServerError,
	ErrDatabaseOperation:   http.StatusInternalServerError,
	ErrExternalService:     http.StatusBadGateway,
	ErrServiceUnavailable:  http.StatusServiceUnavailable,
}

// APIError is the JSON body returned for every failed request.
// Success is always false so clients can branch on a single flag.
type APIError struct {
	Success bool   `json:"success"`
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

// WriteError writes the standardized error response
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Success: false,
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}

// FromError builds an APIError from a Go error
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Success: false,
			Code:    ErrInternalServer,
			Message: "unknown error",
		}
	}

	return APIError{
		Success: false,
		Code:    code,
		Message: err.Error(),
	}
}
