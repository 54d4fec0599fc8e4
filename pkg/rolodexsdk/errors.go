package rolodexsdk

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/lanternworks/rolodex/pkg/httpx"
)

const (
	ErrorCodeInvalidRequest = "invalid_request"
	ErrorCodeInvalidGrant   = "invalid_grant"
	ErrorCodeEmailTaken     = "email_taken"
	ErrorCodeInvalidToken   = "invalid_token"
	ErrorCodeNotFound       = "not_found"
	ErrorCodeServerError    = "server_error"
)

// APIError is the wire shape of every error response. It implements the
// error interface so the SDK client can surface server errors as typed
// values, and the server handlers use the same type to write them.
type APIError struct {
	// StatusCode is the HTTP status code for this error
	StatusCode int `json:"-"`

	// Code is the machine-readable error code (e.g. "invalid_request")
	Code string `json:"error"`

	// Description is a human-readable description of the error
	Description string `json:"error_description"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

// WriteError writes this APIError to an HTTP response writer.
func (e *APIError) WriteError(w http.ResponseWriter) {
	httpx.NoCache(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.StatusCode)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"error":             e.Code,
		"error_description": e.Description,
	})
}

var (
	// ErrInvalidRequest is returned when the request body is malformed or
	// missing required fields.
	ErrInvalidRequest = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeInvalidRequest,
		Description: "the request is malformed or missing required parameters",
	}

	// ErrInvalidGrant is returned on failed login. It deliberately covers
	// both unknown email and wrong password.
	ErrInvalidGrant = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeInvalidGrant,
		Description: "invalid email or password",
	}

	// ErrEmailTaken is returned when registering an email that already has
	// an account.
	ErrEmailTaken = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeEmailTaken,
		Description: "email is already registered",
	}

	// ErrInvalidToken is returned when a protected endpoint is called with
	// a missing, malformed, expired, or otherwise unusable access token.
	ErrInvalidToken = &APIError{
		StatusCode:  http.StatusUnauthorized,
		Code:        ErrorCodeInvalidToken,
		Description: "invalid or missing access token",
	}

	// ErrNotFound is returned when the requested resource does not exist
	// or is not visible to the caller.
	ErrNotFound = &APIError{
		StatusCode:  http.StatusNotFound,
		Code:        ErrorCodeNotFound,
		Description: "resource not found",
	}

	// ErrServerError is a catch-all for unexpected failures.
	ErrServerError = &APIError{
		StatusCode:  http.StatusInternalServerError,
		Code:        ErrorCodeServerError,
		Description: "internal server error",
	}
)
