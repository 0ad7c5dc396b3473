package errors

import "fmt"

// ErrorType classifies the failures produced while fetching and parsing
// profile pages and media.
type ErrorType string

const (
	ErrorTypeNetwork     ErrorType = "network"
	ErrorTypeRateLimit   ErrorType = "rate_limit"
	ErrorTypeNotFound    ErrorType = "not_found"
	ErrorTypeServerError ErrorType = "server_error"
	ErrorTypeParsing     ErrorType = "parsing"
	ErrorTypeIO          ErrorType = "io"
	ErrorTypeAuth        ErrorType = "auth"
	ErrorTypeUnknown     ErrorType = "unknown"
)

// Error is a typed error carrying the failure class and, for HTTP
// failures, the status code that caused it.
type Error struct {
	Type    ErrorType
	Message string
	Code    int
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s error (code %d): %s", e.Type, e.Code, e.Message)
}

// New constructs a typed error.
func New(t ErrorType, code int, format string, args ...interface{}) *Error {
	return &Error{
		Type:    t,
		Message: fmt.Sprintf(format, args...),
		Code:    code,
	}
}

// IsRetryable reports whether an error of the given type is worth
// retrying. Not-found and parsing failures never change on retry.
func IsRetryable(errorType ErrorType) bool {
	switch errorType {
	case ErrorTypeNetwork, ErrorTypeRateLimit, ErrorTypeServerError:
		return true
	default:
		return false
	}
}

// IsRetryableStatusCode reports whether an HTTP status code indicates a
// transient condition.
func IsRetryableStatusCode(statusCode int) bool {
	switch statusCode {
	case 0: // transport failure, no response
		return true
	case 429:
		return true
	case 401, 403, 404:
		return false
	default:
		return statusCode >= 500
	}
}

// TypeForStatusCode maps an HTTP status code onto the error taxonomy.
func TypeForStatusCode(statusCode int) ErrorType {
	switch {
	case statusCode == 429:
		return ErrorTypeRateLimit
	case statusCode == 404:
		return ErrorTypeNotFound
	case statusCode >= 500:
		return ErrorTypeServerError
	case statusCode == 0:
		return ErrorTypeNetwork
	default:
		return ErrorTypeUnknown
	}
}
