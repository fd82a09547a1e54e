// Package errors provides structured error types for the value runtime.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type includes context: operation name, supplied and expected type
// names, the offending value, and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseCall, errors.KindTypeMismatch).
//		Op("STR_CAT").
//		Got("integer").
//		Want("string").
//		Detail("argument 2").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.MemoryExhausted(errors.PhaseBuffer, 4096)
//	err := errors.Range(errors.PhaseBuffer, "mult", -1, "negative factor")
//
// The two kinds the lifecycle core raises are KindMemoryExhausted and
// KindRange. Match them regardless of phase with the sentinels:
//
//	if errors.Is(err, errors.ErrMemoryExhausted) { ... }
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
