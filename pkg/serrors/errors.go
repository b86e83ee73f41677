package serrors

import (
	"fmt"
	"sort"
	"strings"
)

// Error is a coded error value. Codes are stable identifiers meant for
// programmatic handling; messages are what the user sees.
type Error struct {
	Code    string
	Message string
	Hint    string
}

func NewError(code, message, hint string) *Error {
	return &Error{Code: code, Message: message, Hint: hint}
}

func (e *Error) Error() string {
	if e.Hint != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Hint)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

var (
	ErrNoToken       = NewError("AUTH_NO_TOKEN", "no bearer token in session", "log in before calling the API")
	ErrStaleLoad     = NewError("LIST_STALE_LOAD", "load superseded by a newer request", "")
	ErrSaveInFlight  = NewError("LIST_SAVE_IN_FLIGHT", "a save is already in progress", "")
	ErrNoSelection   = NewError("LIST_NO_SELECTION", "no records selected", "")
	ErrNotConfirmed  = NewError("LIST_DELETE_NOT_CONFIRMED", "delete was not confirmed", "")
	ErrReadonlyField = NewError("FORM_READONLY_FIELD", "field is not editable", "")
	ErrUnknownField  = NewError("FORM_UNKNOWN_FIELD", "field is not part of the schema", "")
)

// ValidationError carries the per-field messages for a draft that failed its
// schema. It never reaches the network.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return fmt.Sprintf("validation failed: %s", strings.Join(keys, ", "))
}

// AuthError reports a missing, expired or rejected token.
type AuthError struct {
	Reason string
}

func (e *AuthError) Error() string {
	if e.Reason == "" {
		return "unauthorized"
	}
	return "unauthorized: " + e.Reason
}

// HTTPError reports a non-2xx response from the backend. Code and Message
// come from the server's error envelope when one was present.
type HTTPError struct {
	Status  int
	Code    string
	Message string
}

func (e *HTTPError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("http %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("http %d", e.Status)
}

// PartialBatchError reports a bulk operation where some ids failed. The
// failed rows are kept in the list so the user can retry.
type PartialBatchError struct {
	Op        string
	Total     int
	FailedIDs []int
	Errs      []error
}

func (e *PartialBatchError) Error() string {
	return fmt.Sprintf("%s: %d of %d failed", e.Op, len(e.FailedIDs), e.Total)
}

// UploadError is isolated to a single file-valued field; the rest of the
// draft stays valid and editable.
type UploadError struct {
	Field string
	Err   error
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("upload failed for %q: %v", e.Field, e.Err)
}

func (e *UploadError) Unwrap() error { return e.Err }
