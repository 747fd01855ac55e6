// Package web holds the JSON response helpers shared by every handler.
package web

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/InkwellLabs/inkwell-backend/internal/validate"
)

// JSON writes v as the response body with the given status code. The status
// is committed before encoding, so an encode failure can only be logged.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("respond: failed to encode response: %v", err)
	}
}

// Error writes a single-message error body: {"message": "..."}.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]string{"message": message})
}

// ValidationErrors writes the field-level violation list with status 400:
// {"errors": [{"field": ..., "message": ...}, ...]}.
func ValidationErrors(w http.ResponseWriter, errs []validate.FieldError) {
	JSON(w, http.StatusBadRequest, map[string]interface{}{"errors": errs})
}
