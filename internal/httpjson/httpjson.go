// Package httpjson writes the fixed JSON bodies used across the API.
package httpjson

import (
	"encoding/json"
	"net/http"
)

// Write encodes body as JSON with the given status code.
func Write(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// Error writes the canonical error body for status, eg.
// {"error": "Unauthorized"} for 401.
func Error(w http.ResponseWriter, status int) {
	Write(w, status, map[string]string{"error": statusMessage(status)})
}

func statusMessage(status int) string {
	// 404 deviates from net/http capitalization on purpose, clients
	// expect the lowercase f.
	if status == http.StatusNotFound {
		return "Not found"
	}
	return http.StatusText(status)
}
