package store

import "github.com/ayoisaiah/studytimer/timer"

// DB is the timer snapshot storage interface.
type DB interface {
	// SaveTimer stores the state of an interrupted timer, replacing any
	// previous snapshot
	SaveTimer(state timer.State) error
	// LoadTimer returns the saved snapshot or ErrNoSavedTimer
	LoadTimer() (*Snapshot, error)
	// DeleteTimer removes the saved snapshot if there is one
	DeleteTimer() error
	// Close releases the database lock
	Close() error
}
