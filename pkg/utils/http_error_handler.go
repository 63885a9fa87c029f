package utils

import "net/http"

type errorResponse struct {
	Status  string            `json:"status"`
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}

func WriteError(w http.ResponseWriter, message string, statusCode int) {
	WriteFieldErrors(w, message, nil, statusCode)
}

// WriteFieldErrors is WriteError with per-field reasons attached.
func WriteFieldErrors(w http.ResponseWriter, message string, fields map[string]string, statusCode int) {
	WriteJSONStatus(w, statusCode, errorResponse{
		Status:  "error",
		Message: message,
		Errors:  fields,
	})
}
