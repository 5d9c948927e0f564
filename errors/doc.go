// Package errors provides structured error types for the spirv-tools library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). Codec errors carry the word offset at which the failure was
// detected, to support diagnostics on damaged binaries.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseDecode, errors.KindTruncatedStream).
//		Offset(17).
//		Detail("instruction overruns buffer").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.TruncatedStream(17, 4, 2)
//	err := errors.BlockTerminated(labelID)
//
// All errors implement the standard error interface and support errors.Is/As.
// Two *Error values match under errors.Is when their Phase and Kind agree,
// so callers can test for a category without constructing the exact message:
//
//	if errors.Is(err, &errors.Error{Phase: errors.PhaseDecode, Kind: errors.KindTruncatedStream}) {
//		// handle truncation
//	}
package errors
