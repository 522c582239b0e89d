// Package errs provides the error taxonomy of the order service.
//
// Every error type follows the same pattern:
//   - a sentinel error variable (e.g. ErrObjectNotFound) used with errors.Is
//   - a struct carrying details about the failure
//   - constructors with and without a cause
//   - Error() for formatting and Unwrap() returning the sentinel
//
// Kind collapses the sentinels into the categories the transport layer maps to
// status codes: Validation, PreconditionFailed, Conflict, NotFound, WriteFailed
// and Internal for everything unclassified.
package errs
