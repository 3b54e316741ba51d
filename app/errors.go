package app

import "github.com/ayoisaiah/studytimer/internal/apperr"

var errSetUsage = &apperr.Error{
	Message: "expected a setting and a value, e.g. 'settings set work_duration 30'",
}
