package random

import (
	"errors"
	"fmt"
)

// InvalidInputsError is returned when a generator is built or used with
// inputs it cannot accept, such as a seed of the wrong size.
type InvalidInputsError struct {
	error
}

func NewInvalidInputsErrorf(msg string, args ...interface{}) error {
	return InvalidInputsError{
		error: fmt.Errorf(msg, args...),
	}
}

func (e InvalidInputsError) Unwrap() error {
	return e.error
}

// IsInvalidInputsError returns whether the given error is an InvalidInputsError
func IsInvalidInputsError(err error) bool {
	var e InvalidInputsError
	return errors.As(err, &e)
}
