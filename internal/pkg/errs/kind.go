package errs

import "errors"

// Kind classifies an error for transport mapping.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindPreconditionFailed
	KindConflict
	KindNotFound
	KindWriteFailed
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation_failed"
	case KindPreconditionFailed:
		return "precondition_failed"
	case KindConflict:
		return "conflict"
	case KindNotFound:
		return "not_found"
	case KindWriteFailed:
		return "write_failed"
	case KindInternal:
		return "internal"
	}
	return "internal"
}

// KindOf walks the error chain (including joined errors) and returns the first
// matching kind. Validation wins over other kinds so that an aggregate of
// violations stays a validation failure.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindInternal
	case errors.Is(err, ErrValueIsInvalid),
		errors.Is(err, ErrValueIsRequired),
		errors.Is(err, ErrValueIsOutOfRange):
		return KindValidation
	case errors.Is(err, ErrPreconditionFailed):
		return KindPreconditionFailed
	case errors.Is(err, ErrConflict):
		return KindConflict
	case errors.Is(err, ErrObjectNotFound):
		return KindNotFound
	case errors.Is(err, ErrWriteFailed):
		return KindWriteFailed
	default:
		return KindInternal
	}
}
