package errs

import cr "github.com/cockroachdb/errors"

// Kind classifies a failure for the transport layer.
type Kind string

const (
	KindInvalidArgument Kind = "INVALID_ARGUMENT"
	KindUnauthenticated Kind = "UNAUTHENTICATED"
	KindForbidden       Kind = "FORBIDDEN"
	KindNotFound        Kind = "NOT_FOUND"
	KindConflict        Kind = "CONFLICT"
	KindInternal        Kind = "INTERNAL"
)

// Kind markers. Use-case sentinels are marked with exactly one of these.
var (
	ErrInvalidArgument = cr.New("invalid argument")
	ErrUnauthenticated = cr.New("unauthenticated")
	ErrForbidden       = cr.New("forbidden")
	ErrNotFound        = cr.New("not found")
	ErrConflict        = cr.New("conflict")
	ErrInternal        = cr.New("internal error")
)

// NewKind creates a sentinel error with msg that reports kind through KindOf.
func NewKind(kind Kind, msg string) error {
	return Mark(cr.New(msg), markerFor(kind))
}

func KindOf(err error) Kind {
	switch {
	case err == nil:
		return ""
	case cr.Is(err, ErrInvalidArgument):
		return KindInvalidArgument
	case cr.Is(err, ErrUnauthenticated):
		return KindUnauthenticated
	case cr.Is(err, ErrForbidden):
		return KindForbidden
	case cr.Is(err, ErrNotFound):
		return KindNotFound
	case cr.Is(err, ErrConflict):
		return KindConflict
	default:
		return KindInternal
	}
}

func markerFor(kind Kind) error {
	switch kind {
	case KindInvalidArgument:
		return ErrInvalidArgument
	case KindUnauthenticated:
		return ErrUnauthenticated
	case KindForbidden:
		return ErrForbidden
	case KindNotFound:
		return ErrNotFound
	case KindConflict:
		return ErrConflict
	default:
		return ErrInternal
	}
}
