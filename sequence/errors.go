package sequence

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptySequence is returned when an operation needs at least one element,
	// such as MinMax, and the input is empty.
	ErrEmptySequence = errors.New("sequence is empty")

	// ErrSourceOutOfRange indicates that a Source returned a value outside the
	// requested range [0, n). This is a broken Source, treated like any other
	// generator failure.
	ErrSourceOutOfRange = errors.New("random source returned a value out of range")
)

// InvalidArgumentError is returned when an input violates the operation's
// constraints, for instance a negative sample count. Operations returning it
// do not consume randomness and do not mutate their input.
type InvalidArgumentError struct {
	error
}

func NewInvalidArgumentErrorf(msg string, args ...interface{}) error {
	return InvalidArgumentError{
		error: fmt.Errorf(msg, args...),
	}
}

func (e InvalidArgumentError) Unwrap() error {
	return e.error
}

// IsInvalidArgumentError returns whether the given error is an InvalidArgumentError
func IsInvalidArgumentError(err error) bool {
	var e InvalidArgumentError
	return errors.As(err, &e)
}
