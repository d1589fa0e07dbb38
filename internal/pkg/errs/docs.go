// Package errs provides standardized error types used across the application.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping.
//
// Each error type follows the same shape:
//   - A sentinel error variable (e.g. ErrValueIsRequired)
//   - A struct type carrying the error details
//   - Constructor functions with and without an underlying cause
//   - Error() for formatting and Unwrap() for errors.Is classification
//
// Domain-specific errors (invalid status transitions, cancellation rules)
// live next to the code that owns them; errs covers the generic categories:
// missing values, invalid values, out-of-range values, missing objects, and
// stale versions.
package errs
