// Package errors provides structured error handling for CLI failures.
package errors

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Usage errors: the command line could not be interpreted. No remote
	// call is attempted once one of these is raised.
	CodeUsageMissingCommand  Code = "USAGE_MISSING_COMMAND"
	CodeUsageUnknownCommand  Code = "USAGE_UNKNOWN_COMMAND"
	CodeUsageMissingArgument Code = "USAGE_MISSING_ARGUMENT"
	CodeUsageExtraArgument   Code = "USAGE_EXTRA_ARGUMENT"
	CodeUsageInvalidArgument Code = "USAGE_INVALID_ARGUMENT"

	// Config errors: the process environment is incomplete.
	CodeConfigProjectMissing Code = "CONFIG_PROJECT_MISSING"
	CodeConfigRegionMissing  Code = "CONFIG_REGION_MISSING"

	// Remote errors: the product search service rejected or failed a call.
	CodeRemoteCallFailed Code = "REMOTE_CALL_FAILED"
)

// IsUsage reports whether the code identifies a command-line usage failure.
func (c Code) IsUsage() bool {
	switch c {
	case CodeUsageMissingCommand, CodeUsageUnknownCommand, CodeUsageMissingArgument,
		CodeUsageExtraArgument, CodeUsageInvalidArgument:
		return true
	default:
		return false
	}
}
