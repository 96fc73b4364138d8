// Package error contains the API error body and helpers for writing it.
package error

import (
	"net/http"

	"github.com/goccy/go-json"
)

// Error is the body returned by every failing endpoint.
type Error struct {
	Status  int       `json:"status"`
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	ErrorID string    `json:"error_id"`
	Field   string    `json:"field,omitempty"`
	Reason  string    `json:"reason,omitempty"`
} //	@name	Error

func (e *Error) Error() string {
	return e.Message
}

func New(code ErrorCode, message, errorID string) *Error {
	return &Error{
		Status:  code.StatusCode(),
		Code:    code,
		Message: message,
		ErrorID: errorID,
	}
}

// Encode writes e as JSON using its Status.
func Encode(w http.ResponseWriter, e *Error) error {
	status := e.Status
	if status == 0 {
		status = http.StatusInternalServerError
		e.Status = status
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(e)
}

func EncodeError(w http.ResponseWriter, code ErrorCode, message, errorID string) error {
	return Encode(w, New(code, message, errorID))
}

// EncodeFieldError writes an error tied to a request field, optionally
// carrying a machine readable reason.
func EncodeFieldError(w http.ResponseWriter, code ErrorCode, message, field, reason, errorID string) error {
	e := New(code, message, errorID)
	e.Field = field
	e.Reason = reason
	return Encode(w, e)
}

func EncodeInternalError(w http.ResponseWriter, errorID string) error {
	return EncodeError(w, InternalServerError, "internal server error", errorID)
}
