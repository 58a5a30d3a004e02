package utils

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"RENTEASE_BACK-END/internal/dto"
)

// WriteJSONResponse writes a JSON response to the HTTP response writer
func WriteJSONResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// WriteErrorResponse writes a failure response in the API's standard
// {success:false, message} shape
func WriteErrorResponse(w http.ResponseWriter, status int, message string) {
	WriteJSONResponse(w, status, dto.ErrorResponse{
		Success: false,
		Message: message,
	})
}

// WriteInternalErrorResponse logs the underlying error server-side and
// returns a generic message so internals never leak to the caller
func WriteInternalErrorResponse(w http.ResponseWriter, operation string, err error) {
	log.Printf("internal error in %s: %v", operation, err)
	WriteErrorResponse(w, http.StatusInternalServerError, "Internal server error")
}

// DecodeJSONRequest decodes the request body into dst, rejecting unknown
// fields. On failure it writes a 400 response and returns the error, so
// callers can simply return.
func DecodeJSONRequest(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		WriteErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return err
	}

	// Reject trailing garbage after the JSON document
	if err := decoder.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		WriteErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return errors.New("unexpected data after JSON body")
	}

	return nil
}
