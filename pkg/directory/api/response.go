package api

import (
	"encoding/json"
	stderrors "errors"
	"net/http"

	"github.com/tendant/simple-org/pkg/errors"
)

// writeJSON writes a JSON response with the given status code
func writeJSON(w http.ResponseWriter, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(data)
}

// writeError writes an error response
func writeError(w http.ResponseWriter, code int, message string) {
	writeJSON(w, code, map[string]string{"error": message})
}

// writeServiceError maps a structured service error to its HTTP status
func writeServiceError(w http.ResponseWriter, err error) {
	var svcErr *errors.Error
	if stderrors.As(err, &svcErr) {
		writeError(w, svcErr.HTTPStatusCode(), svcErr.Message)
		return
	}
	writeError(w, http.StatusInternalServerError, "internal error")
}
