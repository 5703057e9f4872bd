package errors

import (
	"errors"
	"fmt"
)

// Errors raised outside the mapping rule itself, by the code that feeds it input
// or interprets its result.
var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrMissingField  = errors.New("missing field")
	ErrRejected      = errors.New("credentials rejected by mapping rule")
	ErrWriteResult   = errors.New("failed to write result")
	ErrLoggingConfig = errors.New("invalid logging configuration")
)

// Wrapf wraps an error with context using fmt.Errorf
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}

// Is reports whether any error in err's chain matches target
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
