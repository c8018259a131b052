package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON marshals payload and sends it as the HTTP response body.
//
// The "Content-Type: application/json" header and the status code are
// written first, then the encoded payload. Marshaling is done before any
// header is written, so a marshal failure still produces a clean
// 500 Internal Server Error response.
//
// Parameters:
//
//	w          - the HTTP response writer to write the response to
//	payload    - any JSON-encodable value (struct, map, slice, nil, etc.)
//	statusCode - HTTP status code to set in the response (e.g. http.StatusOK)
//
// Returns:
//
//	int   - number of bytes written to the response body
//	error - non-nil if JSON marshaling fails
//
// Example usage:
//
//	WriteJSON(w, models.HealthResponse{Status: "healthy"}, http.StatusOK)
//	WriteJSON(w, models.ErrorResponse{Error: "user was not found"}, http.StatusNotFound)
func WriteJSON(w http.ResponseWriter, payload any, statusCode int) (int, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(body)
}
