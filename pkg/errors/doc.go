// Package errors provides structured error types for better observability
// and programmatic error handling across the recipe tool.
//
// Two codes are part of the recipe contract: ErrCodeInvalidConfiguration
// for compiler/standard combinations that cannot build the package, and
// ErrCodePatchFailed for patches that do not apply cleanly.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodePatchFailed,
//	    "failed to apply patch",
//	    cause,
//	    map[string]any{
//	        "patch": "conan/1.83_compat.patch",
//	        "file":  "include/boost/scope/detail/config.hpp",
//	    },
//	)
//
//	if errors.HasCode(err, errors.ErrCodePatchFailed) {
//	    // ...
//	}
package errors
