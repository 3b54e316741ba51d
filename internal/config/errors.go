package config

import "github.com/ayoisaiah/studytimer/internal/apperr"

var (
	// ErrInvalidConfiguration is returned when a configuration is rejected.
	// Nothing is persisted when it occurs.
	ErrInvalidConfiguration = &apperr.Error{
		Message: "invalid configuration",
	}

	// ErrPersistence is returned when the settings file cannot be written.
	ErrPersistence = &apperr.Error{
		Message: "saving settings failed",
	}

	errNotPositive = &apperr.Error{
		Message: "%s must be a positive whole number, got %v",
	}

	errOutOfRange = &apperr.Error{
		Message: "%s must be between 1 and %d, got %d",
	}

	errNotANumber = &apperr.Error{
		Message: "%s must be a whole number, got %q",
	}

	errUnknownKey = &apperr.Error{
		Message: "unknown setting: %s",
	}
)
