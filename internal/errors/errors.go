package errors

import (
	"errors"
	"fmt"
	"log/slog"
)

// ErrType is returned when an argument's runtime type does not match the
// declared contract (e.g. a non-integer id decoded from configuration)
var ErrType = errors.New("type error")

// ErrValue is returned when an argument has the right type but violates a domain rule
var ErrValue = errors.New("value error")

// LogErrorAndReturn logs an error with structured context and returns it
func LogErrorAndReturn(logger *slog.Logger, err error, message string, args ...any) error {
	// Don't modify nil errors
	if err == nil {
		return nil
	}

	logger.Error(message, append([]any{"error", err}, args...)...)
	return err
}

// WrapErrorf wraps an error with additional context using fmt.Errorf
func WrapErrorf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}

// IsType returns true if the error is or wraps ErrType
func IsType(err error) bool {
	return errors.Is(err, ErrType)
}

// IsValue returns true if the error is or wraps ErrValue
func IsValue(err error) bool {
	return errors.Is(err, ErrValue)
}

// Typef returns a formatted ErrType error
func Typef(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, ErrType)...)
}

// Valuef returns a formatted ErrValue error
func Valuef(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, ErrValue)...)
}
