// Package errs provides the error types shared by the ordering packages.
//
// Every type follows the same pattern:
//   - a sentinel error variable (e.g. ErrValueIsInvalid)
//   - a struct carrying the parameter name and an optional cause
//   - constructors with and without cause
//   - Error() for formatting and Unwrap() so errors.Is matches both the
//     sentinel and the cause
//
// ValidationError aggregates one or more per-parameter violations into the
// single error returned by domain validation.
package errs
