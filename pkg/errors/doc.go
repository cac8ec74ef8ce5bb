// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeSyscallFailed,
//	    "failed to enumerate network interfaces",
//	    errno,
//	    map[string]interface{}{
//	        "family": family,
//	    },
//	)
package errors
