package errors

import (
	stderrors "errors"
	"fmt"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/status"
)

// Error is the domain error type with structured metadata.
type Error struct {
	Code     Code              // Machine-readable error code
	Message  string            // Message shown to the operator
	Metadata map[string]string // Additional context for diagnostics
	Cause    error             // Wrapped underlying error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause for error chain traversal.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error by code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

// New creates a domain error with a code and message.
func New(code Code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Newf creates a domain error with a code and formatted message.
func Newf(code Code, format string, args ...any) *Error {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap creates a domain error that wraps an underlying cause.
func Wrap(code Code, message string, cause error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// FromRPC wraps an error returned by the remote collaborator. The message
// carries the gRPC status code and server message; errdetails reasons are
// preserved as metadata when the server attached them.
func FromRPC(op string, cause error) *Error {
	metadata := map[string]string{"operation": op}
	message := fmt.Sprintf("%s: %v", op, cause)

	if st, ok := status.FromError(cause); ok {
		metadata["grpc_code"] = st.Code().String()
		message = fmt.Sprintf("%s: %s: %s", op, st.Code(), st.Message())
		for _, detail := range st.Details() {
			if info, ok := detail.(*errdetails.ErrorInfo); ok {
				metadata["reason"] = info.GetReason()
				if info.GetDomain() != "" {
					metadata["domain"] = info.GetDomain()
				}
			}
		}
	}

	return &Error{
		Code:     CodeRemoteCallFailed,
		Message:  message,
		Metadata: metadata,
		Cause:    cause,
	}
}

// IsUsage reports whether err is a command-line usage failure.
func IsUsage(err error) bool {
	var e *Error
	return stderrors.As(err, &e) && e.Code.IsUsage()
}

// ExitCode returns the process exit code for err: 0 for nil, 2 for usage
// errors, 1 for everything else.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	if IsUsage(err) {
		return 2
	}
	return 1
}
