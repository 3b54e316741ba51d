// Package sessionlog keeps the append-only log of finished sessions and
// derives statistics from it
package sessionlog

import (
	"encoding/json"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/ayoisaiah/studytimer/internal/osutil"
	"github.com/ayoisaiah/studytimer/internal/session"
	"github.com/ayoisaiah/studytimer/internal/timeutil"
)

const corruptSuffix = ".corrupt"

// Log is the in-memory view of the session log file. Every append rewrites
// the whole file.
type Log struct {
	now  func() time.Time
	path string
	file session.File
}

// Option configures a Log.
type Option func(*Log)

// WithClock replaces the clock used to stamp records and compute stats.
func WithClock(now func() time.Time) Option {
	return func(l *Log) {
		l.now = now
	}
}

// Open loads the log at path. A missing file gives an empty log. A file that
// cannot be parsed is moved aside with a .corrupt suffix and the log starts
// empty.
func Open(path string, opts ...Option) *Log {
	l := &Log{
		path: path,
		now:  time.Now,
	}

	for _, opt := range opts {
		opt(l)
	}

	l.load()

	return l
}

func (l *Log) load() {
	b, err := os.ReadFile(l.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			slog.Warn("session log could not be read, starting empty",
				slog.String("path", l.path),
				slog.Any("error", err),
			)
		}

		return
	}

	var f session.File

	if err = json.Unmarshal(b, &f); err != nil {
		backup := l.path + corruptSuffix

		slog.Warn("session log is malformed, starting empty",
			slog.String("path", l.path),
			slog.String("backup", backup),
			slog.Any("error", err),
		)

		if rerr := os.Rename(l.path, backup); rerr != nil {
			slog.Error("moving malformed session log failed",
				slog.String("path", l.path),
				slog.Any("error", rerr),
			)
		}

		return
	}

	known := knownRecords(f.Sessions)
	if len(known) != len(f.Sessions) {
		// the next write drops the skipped records, so keep the original
		backup := l.path + corruptSuffix

		if werr := os.WriteFile(backup, b, osutil.FilePermission); werr != nil {
			slog.Error("backing up session log failed",
				slog.String("path", backup),
				slog.Any("error", werr),
			)
		}

		f.Sessions = known
	}

	l.file = f
}

// knownRecords returns the records whose session type is recognised. Other
// records are logged and left out.
func knownRecords(records []session.Record) []session.Record {
	known := make([]session.Record, 0, len(records))

	for i := range records {
		if !slices.Contains(session.Kinds, records[i].Kind) {
			slog.Warn("skipping session record",
				slog.Int("id", records[i].ID),
				slog.Any("error", errUnknownKind.Fmt(records[i].Kind)),
			)

			continue
		}

		known = append(known, records[i])
	}

	return known
}

// Path returns the location of the log file.
func (l *Log) Path() string {
	return l.path
}

// Len returns the number of records.
func (l *Log) Len() int {
	return len(l.file.Sessions)
}

// Metadata returns the metadata written with the last save.
func (l *Log) Metadata() session.Metadata {
	return l.file.Metadata
}

// Records returns a copy of every record in append order.
func (l *Log) Records() []session.Record {
	return slices.Clone(l.file.Sessions)
}

// Append records a finished session and persists the log. If the write
// fails, ErrPersistence is returned and the record is discarded.
func (l *Log) Append(
	kind session.Kind,
	durationMinutes int,
	completed bool,
	notes string,
) (session.Record, error) {
	now := l.now()

	rec := session.Record{
		ID:        len(l.file.Sessions) + 1,
		Date:      now.Format(timeutil.DateLayout),
		StartTime: now.Format(timeutil.ClockLayout),
		Kind:      kind,
		Duration:  max(durationMinutes, 0),
		Completed: completed,
		Notes:     notes,
		Timestamp: session.Time{Time: now},
	}

	next := session.File{
		Metadata: session.Metadata{
			LastUpdated:   session.Time{Time: now},
			TotalSessions: len(l.file.Sessions) + 1,
		},
		Sessions: append(slices.Clone(l.file.Sessions), rec),
	}

	if err := l.write(&next); err != nil {
		return session.Record{}, err
	}

	l.file = next

	slog.Debug("session appended",
		slog.Int("id", rec.ID),
		slog.String("type", string(rec.Kind)),
		slog.Int("duration", rec.Duration),
		slog.Bool("completed", rec.Completed),
	)

	return rec, nil
}

func (l *Log) write(f *session.File) error {
	b, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return ErrPersistence.Wrap(err)
	}

	b = append(b, '\n')

	dir := filepath.Dir(l.path)

	if err = os.MkdirAll(dir, osutil.DirPermission); err != nil {
		return ErrPersistence.Wrap(err)
	}

	tmp, err := os.CreateTemp(dir, ".sessions-*.json")
	if err != nil {
		return ErrPersistence.Wrap(err)
	}

	tmpPath := tmp.Name()

	cleanup := func(cause error) error {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)

		return ErrPersistence.Wrap(cause)
	}

	if _, err = tmp.Write(b); err != nil {
		return cleanup(err)
	}

	if err = tmp.Chmod(osutil.FilePermission); err != nil {
		return cleanup(err)
	}

	if err = tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return ErrPersistence.Wrap(err)
	}

	if err = os.Rename(tmpPath, l.path); err != nil {
		_ = os.Remove(tmpPath)
		return ErrPersistence.Wrap(err)
	}

	return nil
}

// RecentHistory returns up to limit of the most recent records, oldest
// first.
func (l *Log) RecentHistory(limit int) []session.Record {
	if limit <= 0 {
		return []session.Record{}
	}

	start := max(len(l.file.Sessions)-limit, 0)

	return slices.Clone(l.file.Sessions[start:])
}
