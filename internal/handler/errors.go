package handler

import (
	"encoding/json"
	"net/http"
)

// ErrorDetail is the machine-readable error payload for catalog routes.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps ErrorDetail: {"error":{"code":...,"message":...}}.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// writeJSON encodes v as the response body with the given status code.
// Encoding failures after the header is written can only be logged by the
// request-logging middleware, so they are ignored here.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError emits the structured {"error":{code,message}} body used by the
// catalog routes.
func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, ErrorResponse{Error: ErrorDetail{Code: code, Message: message}})
}

// writeFlatError emits the flat {"error": string} body that the chatbot and
// recommendation routes expose. The chat widget predates the structured error
// shape and parses this contract directly.
func writeFlatError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
