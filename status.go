package codec

import (
	"errors"
	"strconv"
)

// Status is the outcome of a codec call.
type Status uint8

const (
	// Success means the call completed and dst holds the
	// output.
	Success Status = iota
	// SizeOnly means the call was a size-only query. Nothing
	// was written; the returned count is what a real call
	// would write.
	SizeOnly
	// InvalidArgument means a precondition failed, usually a
	// destination buffer that is too small.
	InvalidArgument
	// MalformedInput means the input is not valid for the
	// encoding.
	MalformedInput
)

func (s Status) String() string {
	switch s {
	case Success:
		return "success"
	case SizeOnly:
		return "size only"
	case InvalidArgument:
		return "invalid argument"
	case MalformedInput:
		return "malformed input"
	default:
		return "Status(" + strconv.Itoa(int(s)) + ")"
	}
}

var (
	// ErrInvalidArgument matches every *Error with the
	// InvalidArgument status.
	ErrInvalidArgument = errors.New("codec: invalid argument")

	// ErrMalformedInput matches every *Error with the
	// MalformedInput status.
	ErrMalformedInput = errors.New("codec: malformed input")

	// ErrSizeOnly is returned by encoders when dst is nil.
	//
	// It is not a failure. Like io.EOF, it signals an expected
	// condition: the returned count is the number of bytes the
	// same call would write into a large enough buffer.
	ErrSizeOnly = errors.New("codec: size-only query")
)

// Error describes a failed codec call.
type Error struct {
	// Op is the failing operation, e.g. "base64: decode".
	Op string
	// Status is InvalidArgument or MalformedInput.
	Status Status
	// Offset is the input offset where the problem was found,
	// or -1 if it does not apply.
	Offset int
	// Msg describes the problem.
	Msg string
}

var _ error = (*Error)(nil)

func (e *Error) Error() string {
	s := e.Op + ": " + e.Msg
	if e.Offset >= 0 {
		s += " at input byte " + strconv.Itoa(e.Offset)
	}
	return s
}

// Is reports whether target is the sentinel for e's status.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrInvalidArgument:
		return e.Status == InvalidArgument
	case ErrMalformedInput:
		return e.Status == MalformedInput
	}
	return false
}

// StatusOf maps an error returned by a codec call to its Status.
//
// Errors that did not come from this module are reported as
// InvalidArgument.
func StatusOf(err error) Status {
	switch {
	case err == nil:
		return Success
	case errors.Is(err, ErrSizeOnly):
		return SizeOnly
	case errors.Is(err, ErrMalformedInput):
		return MalformedInput
	default:
		return InvalidArgument
	}
}
