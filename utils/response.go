package utils

import (
	"encoding/json"
	"net/http"
)

// M is shorthand for ad-hoc JSON payloads.
type M map[string]interface{}

// RespondWithJSON sends a JSON response with the given status code.
func RespondWithJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

func RespondWithError(w http.ResponseWriter, code int, msg string) {
	RespondWithJSON(w, code, map[string]string{"success": "false", "message": msg})
}

// SendResponse wraps data in the standard success/message envelope.
func SendResponse(w http.ResponseWriter, status int, data any, message string, err error) {
	resp := map[string]any{
		"success": err == nil && status < 400,
		"message": message,
		"data":    data,
	}
	if err != nil {
		resp["error"] = err.Error()
	}
	RespondWithJSON(w, status, resp)
}
