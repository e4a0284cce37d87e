package errors

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/KantaKan/terminal-calorie-tracker/internal/logger"
)

// Sentinel errors for the recoverable conditions surfaced to the menu layer.
var (
	// ErrDuplicateName signals a food name uniqueness violation, either from
	// the in-memory duplicate check or from the store's unique index.
	ErrDuplicateName = stderrors.New("a food with that name already exists")

	// ErrEntryNotFound signals that a referenced log entry no longer exists
	// on the given day (stale selection or wrong date).
	ErrEntryNotFound = stderrors.New("log entry not found")

	// ErrDayNotFound signals that no log exists for the requested date.
	ErrDayNotFound = stderrors.New("no log for that day")

	// ErrStoreUnavailable signals a lost persistence connection. Fatal at
	// startup, retryable mid-session for reads.
	ErrStoreUnavailable = stderrors.New("storage is unavailable")
)

// ValidationError is bad user input, rejected before any persistence call.
// The caller re-prompts instead of aborting.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// Validationf builds a ValidationError from a format string.
func Validationf(format string, args ...interface{}) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return stderrors.As(err, &ve)
}

// Format formats an error message with a consistent "Error: " prefix
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Fatal logs an error and exits the program with exit code 1
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		os.Exit(1)
	}
}
