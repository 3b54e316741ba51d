package timer

import "github.com/ayoisaiah/studytimer/internal/apperr"

var (
	errUnknownPhase = &apperr.Error{
		Message: "unknown phase: %d",
	}

	errUnknownPhaseTag = &apperr.Error{
		Message: "unknown phase %q",
	}
)
