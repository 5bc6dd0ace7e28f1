// Package errs holds the error kinds shared by every layer of the configurator.
//
// Each kind pairs a sentinel with a detailed struct type:
//
//	ErrValueIsRequired    *ValueIsRequiredError
//	ErrValueIsInvalid     *ValueIsInvalidError
//	ErrValueIsOutOfRange  *ValueIsOutOfRangeError
//	ErrObjectNotFound     *ObjectNotFoundError
//	ErrConflict           *ConflictError
//
// The struct types unwrap to their sentinel, so callers classify with
// errors.Is and read details with errors.As. The HTTP adapter maps the
// sentinels to status codes.
//
// Values echoed into messages are flattened to one line.
package errs
