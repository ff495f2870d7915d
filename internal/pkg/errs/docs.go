// Package errs provides standardized error types for the ordering application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ObjectNotFoundError: For when an object cannot be found
//   - ObjectUnavailableError: For when an object exists but cannot be used
//   - ForbiddenError: For when the actor lacks rights for a mutation
//   - IllegalTransitionError: For status changes outside the transition table
//   - InvalidStateError: For operations not permitted in the current state
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so callers can classify errors with errors.Is
//
// The taxonomy is deliberately stable: HTTP adapters map each sentinel to a
// distinct status code, and clients rely on the distinction to render a
// specific message.
package errs
