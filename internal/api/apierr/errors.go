package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mcoot/guavagrams/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	// Word names the rejected word for INVALID_WORD
	Word string `json:"word,omitempty"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest      = "INVALID_REQUEST"
	CodeInvalidLetter       = "INVALID_LETTER"
	CodeOutOfBounds         = "OUT_OF_BOUNDS"
	CodeCellOccupied        = "CELL_OCCUPIED"
	CodeWordsNotConnected   = "WORDS_NOT_CONNECTED"
	CodeInvalidWord         = "INVALID_WORD"
	CodeNoMoreTiles         = "NO_MORE_TILES"
	CodeDictionaryNotFound  = "DICTIONARY_NOT_FOUND"
	CodeUnknownDistribution = "UNKNOWN_DISTRIBUTION"
	CodeScoreTableNotFound  = "SCORE_TABLE_NOT_FOUND"
	CodeInternalError       = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	// Check for specific error types
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	var invalid *model.InvalidWordError
	if errors.As(err, &invalid) {
		return &httpError{http.StatusUnprocessableEntity, APIError{
			Code:    CodeInvalidWord,
			Message: model.Message(err),
			Word:    invalid.Word,
		}}
	}

	// Map model errors
	switch {
	case errors.Is(err, model.ErrWordsNotConnected):
		return &httpError{http.StatusUnprocessableEntity, APIError{Code: CodeWordsNotConnected, Message: model.Message(err)}}
	case errors.Is(err, model.ErrNoMoreTiles):
		return &httpError{http.StatusConflict, APIError{Code: CodeNoMoreTiles, Message: model.Message(err)}}
	case errors.Is(err, model.ErrInvalidLetter):
		return &httpError{http.StatusBadRequest, APIError{Code: CodeInvalidLetter, Message: "Tiles must be a single printable character"}}
	case errors.Is(err, model.ErrOutOfBounds):
		return &httpError{http.StatusBadRequest, APIError{Code: CodeOutOfBounds, Message: "Coordinates must lie within -128..127"}}
	case errors.Is(err, model.ErrCellOccupied):
		return &httpError{http.StatusBadRequest, APIError{Code: CodeCellOccupied, Message: "Two tiles share a cell"}}
	case errors.Is(err, model.ErrDictionaryNotLoaded), errors.Is(err, model.ErrDictionaryNotFound):
		return &httpError{http.StatusNotFound, APIError{Code: CodeDictionaryNotFound, Message: "Dictionary not found"}}
	case errors.Is(err, model.ErrUnknownDistribution):
		return &httpError{http.StatusBadRequest, APIError{Code: CodeUnknownDistribution, Message: "Distribution must be 'bananagrams' or 'dictionary'"}}
	case errors.Is(err, model.ErrScoreTableNotFound):
		return &httpError{http.StatusNotFound, APIError{Code: CodeScoreTableNotFound, Message: "Score table not found"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{Code: CodeInternalError, Message: "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{Code: CodeInvalidRequest, Message: message}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{Code: CodeInternalError, Message: "Internal server error"}}
}
