package store

import "github.com/ayoisaiah/studytimer/internal/apperr"

var (
	ErrAlreadyRunning = &apperr.Error{
		Message: "is studytimer already running? Only one instance can be active at a time",
	}

	ErrNoSavedTimer = &apperr.Error{
		Message: "no saved timer found: please start a new session",
	}

	errCorruptSnapshot = &apperr.Error{
		Message: "saved timer could not be read",
	}
)
