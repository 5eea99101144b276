package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/riskworks/erm-engine/pkg/validation"
)

// ErrorResponse writes a JSON error body of the form {"message": ...} and
// returns any encoding error.
func ErrorResponse(w http.ResponseWriter, statusCode int, message string) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	return json.NewEncoder(w).Encode(map[string]string{
		"message": message,
	})
}

// ValidationErrorResponse writes a 400 with the itemized field issues:
// {"message": "Validation error", "errors": [{"field": ..., "message": ...}]}.
func ValidationErrorResponse(w http.ResponseWriter, verr *validation.Error) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	return json.NewEncoder(w).Encode(map[string]any{
		"message": "Validation error",
		"errors":  verr.Issues,
	})
}

// WriteJSON writes a JSON response and returns any encoding error.
func WriteJSON(w http.ResponseWriter, statusCode int, data interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	if statusCode != http.StatusOK {
		w.WriteHeader(statusCode)
	}
	return json.NewEncoder(w).Encode(data)
}
