package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// TraceIDHeader carries the request trace identifier between the client
// and the sync server.
const TraceIDHeader = "X-Trace-ID"

// WriteJSON marshals data and writes it with the given status code and an
// application/json content type. On marshal failure it answers 500 and
// returns the error.
//
//	utils.WriteJSON(w, models.BlobListResponse{...}, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}
