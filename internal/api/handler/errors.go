package handler

import (
	"encoding/json"
	"net/http"

	"github.com/mcoot/guavagrams/internal/api/apierr"
)

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	apierr.WriteError(w, err)
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return apierr.NewInvalidRequestError(message)
}

// decode reads a JSON request body into v
func decode(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return NewInvalidRequestError("Invalid request body")
	}
	return nil
}
