package config

import (
	"errors"
	"io/fs"
	"log/slog"
	"math"
	"os"
	"path/filepath"

	"github.com/spf13/cast"
	"github.com/spf13/viper"

	"github.com/ayoisaiah/studytimer/internal/osutil"
)

const envPrefix = "STUDYTIMER"

// Store reads and writes the settings file.
type Store struct {
	path string
}

// NewStore returns a Store backed by the JSON file at path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the location of the settings file.
func (s *Store) Path() string {
	return s.path
}

func (s *Store) viper(withEnv bool) *viper.Viper {
	v := viper.New()
	v.SetConfigFile(s.path)
	v.SetConfigType("json")

	if withEnv {
		v.SetEnvPrefix(envPrefix)
		v.AutomaticEnv()
	}

	return v
}

// Load reads the settings file. It never fails: a missing or unreadable file
// yields the defaults, and each key that is absent or invalid falls back to
// its own default. Environment variables such as STUDYTIMER_WORK_DURATION
// take precedence over the file.
func (s *Store) Load() TimerConfig {
	return s.load(true)
}

// LoadFile is like Load but ignores environment overrides. It is the base
// for changes that are written back to the file.
func (s *Store) LoadFile() TimerConfig {
	return s.load(false)
}

func (s *Store) load(withEnv bool) TimerConfig {
	cfg := Default()
	v := s.viper(withEnv)

	if err := v.ReadInConfig(); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			slog.Debug("settings file not found, using defaults",
				slog.String("path", s.path),
			)
		} else {
			slog.Warn("settings file could not be parsed, using defaults",
				slog.String("path", s.path),
				slog.Any("error", err),
			)
		}
	}

	for _, f := range cfg.fields() {
		raw := v.Get(f.key)
		if raw == nil {
			continue
		}

		n, ok := positiveInt(raw)
		if !ok {
			slog.Warn("ignoring invalid setting",
				slog.String("key", f.key),
				slog.Any("value", raw),
			)

			continue
		}

		*f.value = n
	}

	return cfg
}

// positiveInt accepts integers, integral floats (JSON numbers) and numeric
// strings (environment variables).
func positiveInt(raw any) (int, bool) {
	var n int

	switch val := raw.(type) {
	case bool:
		return 0, false
	case float64:
		if val != math.Trunc(val) || val > math.MaxInt32 {
			return 0, false
		}

		n = int(val)
	default:
		var err error

		n, err = cast.ToIntE(raw)
		if err != nil {
			return 0, false
		}
	}

	return n, n > 0
}

// Save validates cfg and atomically replaces the settings file. An invalid
// configuration is rejected before anything is written.
func (s *Store) Save(cfg TimerConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	dir := filepath.Dir(s.path)

	if err := os.MkdirAll(dir, osutil.DirPermission); err != nil {
		return ErrPersistence.Wrap(err)
	}

	tmp, err := os.CreateTemp(dir, ".settings-*.json")
	if err != nil {
		return ErrPersistence.Wrap(err)
	}

	tmpPath := tmp.Name()

	if err = tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return ErrPersistence.Wrap(err)
	}

	v := viper.New()
	v.SetConfigType("json")

	for key, val := range cfg.Map() {
		v.Set(key, val)
	}

	if err = v.WriteConfigAs(tmpPath); err != nil {
		_ = os.Remove(tmpPath)
		return ErrPersistence.Wrap(err)
	}

	if err = os.Chmod(tmpPath, osutil.FilePermission); err != nil {
		_ = os.Remove(tmpPath)
		return ErrPersistence.Wrap(err)
	}

	if err = os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return ErrPersistence.Wrap(err)
	}

	slog.Info("settings saved",
		slog.String("path", s.path),
		slog.Any("settings", cfg.Map()),
	)

	return nil
}

// Reset persists the default configuration and returns it.
func (s *Store) Reset() (TimerConfig, error) {
	cfg := Default()

	if err := s.Save(cfg); err != nil {
		return TimerConfig{}, err
	}

	return cfg, nil
}
