// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON serializes data to JSON and writes it with the given status code
// and a "Content-Type: application/json" header.
//
// If marshaling fails, it responds with 500 Internal Server Error and returns
// a wrapped error. On success it returns the number of body bytes written.
//
// Parameters:
//
//	w          - the response writer; headers must not have been sent yet
//	data       - any value encoding/json can marshal
//	statusCode - HTTP status written before the body
//
// Returns:
//
//	int   - number of body bytes written
//	error - marshal or write error
//
// Example usage:
//
//	if _, err := utils.WriteJSON(w, records, http.StatusOK); err != nil {
//		log.Err(err).Msg("error writing response")
//	}
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
