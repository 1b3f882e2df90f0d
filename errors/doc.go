// Package errors provides structured error types for the dpi-runtime library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). The Error type includes the logical width involved in the
// failure plus a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseDecode, errors.KindWidthMismatch).
//		Width(40).
//		Detail("buffer holds %d word pairs, need %d", got, want).
//		Build()
//
// Or use the convenience constructor for the common pattern:
//
//	err := errors.WidthMismatch(errors.PhaseOperate, "operand widths differ: %d vs %d", a, b)
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
