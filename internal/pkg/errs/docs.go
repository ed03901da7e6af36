// Package errs holds the typed validation and lookup errors shared by the
// catering core and its adapters.
//
// Every error type unwraps to a sentinel:
//   - ErrValueIsRequired for a missing value
//   - ErrValueIsInvalid for a value that breaks a domain rule
//   - ErrValueIsOutOfRange for a number outside its bounds
//   - ErrObjectNotFound for a lookup that matched nothing
//
// Callers classify failures with errors.Is against the sentinel and read the
// details (parameter name, offending value, cause) from the concrete type with
// errors.As. The HTTP adapter maps the sentinels to status codes.
package errs
