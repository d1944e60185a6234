package main

import (
	"errors"
	"os"

	"github.com/alnah/go-crawlclean/internal/config"
)

// Exit codes for the crawlclean CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
// The cleanup path itself always exits 0; underlying failures there are
// suppressed.
const (
	ExitSuccess = 0 // Completed normally
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, arguments, or config
	ExitIO      = 3 // File not found, permission denied
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrNoLogFiles) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrInvalidDelay) ||
		errors.Is(err, config.ErrInvalidSamples) ||
		errors.Is(err, config.ErrEmptyGroupName) ||
		errors.Is(err, config.ErrEmptyGroupHosts) ||
		errors.Is(err, ErrTooManyArgs) {
		return ExitUsage
	}

	return ExitGeneral
}
