package reasoning

import "fmt"

// Stable error codes surfaced in dispatch results
const (
	CodeInvalidQuery        = "INVALID_QUERY"
	CodeQueryTooShort       = "QUERY_TOO_SHORT"
	CodeQueryTooLong        = "QUERY_TOO_LONG"
	CodeOrchestratorFailed  = "ORCHESTRATOR_FAILED"
	CodeExecutionTimeout    = "EXECUTION_TIMEOUT"
	CodeEmptyResponse       = "EMPTY_RESPONSE"
	CodeRetryExhausted      = "RETRY_EXHAUSTED"
	CodeNoMethodAvailable   = "NO_METHOD_AVAILABLE"
	CodeAgentCreationFailed = "AGENT_CREATION_FAILED"
	CodeUnexpectedError     = "UNEXPECTED_ERROR"
)

// Error is a dispatch-level failure with a stable code
type Error struct {
	Code    string
	Message string
	Err     error
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap exposes the underlying cause to errors.Is/As
func (e *Error) Unwrap() error {
	return e.Err
}

// NewError creates an Error with the given code and message
func NewError(code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// WrapError creates an Error wrapping an underlying cause
func WrapError(code, message string, err error) *Error {
	return &Error{Code: code, Message: message, Err: err}
}
