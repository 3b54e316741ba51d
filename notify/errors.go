package notify

import "github.com/ayoisaiah/studytimer/internal/apperr"

var (
	errInvalidSoundFormat = &apperr.Error{
		Message: "sound file must be in mp3, ogg, flac, or wav format",
	}

	errSoundUnavailable = &apperr.Error{
		Message: "sound %s could not be loaded",
	}

	errInvalidSessionCmd = &apperr.Error{
		Message: "unable to parse session command",
	}
)
