// Package errors provides structured error types for the move-binary-format
// library.
//
// Errors are categorized by Phase (which pipeline stage raised the error)
// and Kind (error category). The Error type carries domain context: the
// index pool involved, the offending index, a module id, and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseVerify, errors.KindArityMismatch).
//		Pool("struct_handles").
//		Detail("expected 2 type arguments, got 3").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.OutOfBounds(errors.PhaseVerify, "signatures", 10, 5)
//	err := errors.ArityMismatch(errors.PhaseVerify, 2, 3)
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
