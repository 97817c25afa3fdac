package newsbytes

import (
	"errors"
	"fmt"
)

// Application error codes.
//
// These are meant to be generic and map well to transport-level concerns
// (retry decisions, user messages). Any non-application error is treated
// as an internal error by the helpers below.
const (
	EBLOCKED     = "blocked"     // access denied by bot mitigation (401/403/429)
	EINTERNAL    = "internal"    // internal error
	EINVALID     = "invalid"     // validation failed
	ENOTFOUND    = "not_found"   // entity or content does not exist
	EUNAVAILABLE = "unavailable" // transient failure (timeouts, 5xx, resets)
)

// Error represents an application-specific error. Application errors carry
// a machine-readable code and a human-readable message.
type Error struct {
	// Code is the machine-readable error code.
	Code string

	// Message is the human-readable message.
	Message string
}

// Error implements the error interface. Not used by the application
// otherwise, so the format is chosen for log readability.
func (e *Error) Error() string {
	return fmt.Sprintf("newsbytes error: code=%s message=%s", e.Code, e.Message)
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors always return "Internal error".
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error"
}

// Errorf is a helper function to return an Error with a given code and
// formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}
