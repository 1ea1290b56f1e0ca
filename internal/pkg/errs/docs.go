// Package errs provides the error taxonomy shared by the marketplace service.
//
// Errors fall into three kinds that the HTTP boundary maps to distinct
// response classes:
//   - NotFound: ObjectNotFoundError, for ids that do not resolve
//   - InvalidState: InvalidStateError, for operations that would break a
//     state invariant (cancelling a delivered order, a duplicate email)
//   - ValidationFailure: ValueIsRequiredError, ValueIsInvalidError and
//     ValueIsOutOfRangeError, for malformed input
//
// Each error type follows the same pattern:
//   - a sentinel error variable (e.g. ErrObjectNotFound)
//   - a struct type carrying the details
//   - constructor functions with and without cause
//   - an Error() method and an Unwrap() method returning the sentinel
//
// Callers classify errors with errors.Is against the sentinels or with the
// IsNotFound, IsInvalidState and IsValidationFailure helpers.
package errs
