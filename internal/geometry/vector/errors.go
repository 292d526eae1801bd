package vector

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned when a vector cannot be built from the given input.
	ErrInvalidArgument = errors.New("invalid vector argument")

	// ErrDegenerateOperation is returned when an operation is undefined for its input,
	// such as projecting onto a zero vector.
	ErrDegenerateOperation = errors.New("degenerate vector operation")

	// ErrOrdinalOutOfRange is returned for an ordinal index other than 0, 1 or 2.
	ErrOrdinalOutOfRange = errors.New("ordinal out of range")
)

// ArgumentError reports malformed input to a vector factory.
//
// It matches ErrInvalidArgument with errors.Is. The underlying parse error
// (if any) can be accessed via errors.Unwrap.
type ArgumentError struct {
	Len   int
	cause error
}

func (e *ArgumentError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%v: %v", ErrInvalidArgument, e.cause)
	}
	return fmt.Sprintf("%v: must have 2 or 3 components, got %d", ErrInvalidArgument, e.Len)
}

func (e *ArgumentError) Is(target error) bool { return target == ErrInvalidArgument }

func (e *ArgumentError) Unwrap() error { return e.cause }

// DegenerateError reports an operation whose definition breaks down for its input.
type DegenerateError struct {
	Op string
}

func (e *DegenerateError) Error() string {
	return fmt.Sprintf("%v: %s on zero-length vector", ErrDegenerateOperation, e.Op)
}

func (e *DegenerateError) Is(target error) bool { return target == ErrDegenerateOperation }

// OrdinalError reports an out of range ordinal index.
type OrdinalError struct {
	Index int
}

func (e *OrdinalError) Error() string {
	return fmt.Sprintf("%v: %d", ErrOrdinalOutOfRange, e.Index)
}

func (e *OrdinalError) Is(target error) bool { return target == ErrOrdinalOutOfRange }
