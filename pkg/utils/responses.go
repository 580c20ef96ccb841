package utils

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the stable error pair every tool endpoint returns on failure.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// ResponseJSON writes any payload with a custom status code
func ResponseJSON(w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(data)
}

// ------------- Success responses -------------

// returns 200 OK with the tool's raw output contract
func ResponseSuccess(w http.ResponseWriter, data any) {
	ResponseJSON(w, http.StatusOK, data)
}

// ------------- Error responses -------------

// returns 400 Bad Request
func ResponseBadRequest(w http.ResponseWriter, errCode, message string, details any) {
	ResponseJSON(w, http.StatusBadRequest, ErrorResponse{
		Error:   errCode,
		Message: message,
		Details: details,
	})
}

// returns 500 Internal Server Error
func ResponseInternalError(w http.ResponseWriter, errCode, message string) {
	ResponseJSON(w, http.StatusInternalServerError, ErrorResponse{
		Error:   errCode,
		Message: message,
	})
}
