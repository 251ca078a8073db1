package errors

import (
	"errors"
	"fmt"
	"os"

	"github.com/julianstephens/praxis/internal/logger"
	"github.com/julianstephens/praxis/internal/transfer"
	"github.com/julianstephens/praxis/internal/validation"
)

// Format renders err for the terminal with an "Error: " prefix. Validation
// and import errors already carry a user-facing sentence, so any wrapping
// context is dropped for them.
func Format(err error) string {
	if err == nil {
		return ""
	}

	var vErr *validation.ValidationError
	if errors.As(err, &vErr) {
		return "Error: " + vErr.Message
	}
	var iErr *transfer.ImportError
	if errors.As(err, &iErr) {
		return "Error: " + iErr.Error()
	}
	return fmt.Sprintf("Error: %v", err)
}

// Fatal logs err and exits with status 1. A nil error is a no-op.
func Fatal(err error) {
	if err == nil {
		return
	}
	logger.Error("Command execution failed", "error", err)
	fmt.Fprintln(os.Stderr, Format(err))
	os.Exit(1)
}

// Fatalf is Fatal with a message built by fmt.Errorf, so %w keeps the
// cause visible to Format.
func Fatalf(format string, args ...any) {
	Fatal(fmt.Errorf(format, args...))
}
