// Package store keeps the snapshot of an interrupted timer in a BoltDB
// database. Holding the database open also prevents a second instance from
// writing to the same files.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/ayoisaiah/studytimer/internal/osutil"
	"github.com/ayoisaiah/studytimer/timer"
)

const (
	timerBucket = "timer"
	snapshotKey = "current"
)

const lockTimeout = 1 * time.Second

// Snapshot is a saved timer.
type Snapshot struct {
	SavedAt time.Time   `json:"saved_at"`
	State   timer.State `json:"state"`
}

// Client is a BoltDB database client.
type Client struct {
	*bolt.DB
	now func() time.Time
}

// SaveTimer stores state as the current snapshot.
func (c *Client) SaveTimer(state timer.State) error {
	value, err := json.Marshal(Snapshot{
		SavedAt: c.now(),
		State:   state,
	})
	if err != nil {
		return err
	}

	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(timerBucket)).Put([]byte(snapshotKey), value)
	})
}

// LoadTimer returns the current snapshot.
func (c *Client) LoadTimer() (*Snapshot, error) {
	var snap *Snapshot

	err := c.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(timerBucket)).Get([]byte(snapshotKey))
		if len(v) == 0 {
			return ErrNoSavedTimer
		}

		var s Snapshot
		if err := json.Unmarshal(v, &s); err != nil {
			return errCorruptSnapshot.Wrap(err)
		}

		snap = &s

		return nil
	})

	return snap, err
}

// DeleteTimer removes the current snapshot.
func (c *Client) DeleteTimer() error {
	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(timerBucket)).Delete([]byte(snapshotKey))
	})
}

// openDB creates or opens a database and locks it.
func openDB(pathToDB string) (*bolt.DB, error) {
	var fileMode fs.FileMode = 0o600

	if err := os.MkdirAll(filepath.Dir(pathToDB), osutil.DirPermission); err != nil {
		return nil, err
	}

	db, err := bolt.Open(
		pathToDB,
		fileMode,
		&bolt.Options{Timeout: lockTimeout},
	)
	if err != nil {
		if errors.Is(err, bolt.ErrDatabaseOpen) ||
			errors.Is(err, bolt.ErrTimeout) {
			return nil, ErrAlreadyRunning
		}

		return nil, err
	}

	return db, nil
}

// NewClient opens the database at dbPath, creating it and its bucket when
// needed.
func NewClient(dbPath string) (*Client, error) {
	db, err := openDB(dbPath)
	if err != nil {
		return nil, err
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(timerBucket))
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initialising %s: %w", dbPath, err)
	}

	slog.Debug("snapshot database opened", slog.String("path", dbPath))

	return &Client{
		DB:  db,
		now: time.Now,
	}, nil
}
