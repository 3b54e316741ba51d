package sessionlog

import "github.com/ayoisaiah/studytimer/internal/apperr"

var (
	// ErrPersistence is returned when the session log cannot be written.
	// The in-memory log is left unchanged.
	ErrPersistence = &apperr.Error{
		Message: "writing session log failed",
	}

	errUnknownKind = &apperr.Error{
		Message: "unknown session type %q",
	}
)
