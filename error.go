package worddef

import (
	"errors"
	"fmt"
)

// Application error codes.
const (
	ECONNECTION = "connection"      // dial, DNS, timeout, or broken socket
	EHANDSHAKE  = "handshake"       // unexpected server greeting
	EINTERNAL   = "internal"        // unexpected internal failure
	EINVALID    = "invalid"         // invalid user input
	EMALFORMED  = "malformed_reply" // reply stream violates protocol framing
	EPARSE      = "parse"           // definition payload fails to parse
	ESERVER     = "server"          // error status reported by the server
)

// Error represents an application-specific error. Application errors carry
// a machine-readable code and a human-readable message.
type Error struct {
	// Machine-readable error code.
	Code string

	// Human-readable error message.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("worddef error: code=%s message=%s", e.Code, e.Message)
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
// Non-application errors always return "Internal error.".
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

// Errorf is a helper function to return an Error with a given code and
// formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}
