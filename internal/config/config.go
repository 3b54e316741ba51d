// Package config loads, validates and persists the timer configuration
package config

import (
	"fmt"
	"log/slog"

	"github.com/davecgh/go-spew/spew"
)

const Version = "v1.0.0"

const (
	DefaultWorkMinutes             = 25
	DefaultShortBreakMinutes       = 5
	DefaultLongBreakMinutes        = 15
	DefaultSessionsBeforeLongBreak = 4
)

// Keys of the settings file.
const (
	KeyWorkDuration            = "work_duration"
	KeyShortBreakDuration      = "short_break_duration"
	KeyLongBreakDuration       = "long_break_duration"
	KeySessionsBeforeLongBreak = "sessions_before_long_break"
)

type (
	// TimerConfig holds the session durations (in minutes) and the number of
	// work sessions before a long break. All fields must be positive.
	TimerConfig struct {
		WorkMinutes             int `json:"work_duration"              validate:"gt=0"`
		ShortBreakMinutes       int `json:"short_break_duration"       validate:"gt=0"`
		LongBreakMinutes        int `json:"long_break_duration"        validate:"gt=0"`
		SessionsBeforeLongBreak int `json:"sessions_before_long_break" validate:"gt=0"`
	}

	// Option is a function that modifies a TimerConfig.
	Option func(*TimerConfig) error

	field struct {
		value *int
		key   string
	}
)

// Default returns the configuration used when nothing has been saved.
func Default() TimerConfig {
	return TimerConfig{
		WorkMinutes:             DefaultWorkMinutes,
		ShortBreakMinutes:       DefaultShortBreakMinutes,
		LongBreakMinutes:        DefaultLongBreakMinutes,
		SessionsBeforeLongBreak: DefaultSessionsBeforeLongBreak,
	}
}

func (c *TimerConfig) fields() []field {
	return []field{
		{key: KeyWorkDuration, value: &c.WorkMinutes},
		{key: KeyShortBreakDuration, value: &c.ShortBreakMinutes},
		{key: KeyLongBreakDuration, value: &c.LongBreakMinutes},
		{key: KeySessionsBeforeLongBreak, value: &c.SessionsBeforeLongBreak},
	}
}

// Map returns the configuration keyed by settings file keys.
func (c TimerConfig) Map() map[string]int {
	m := make(map[string]int, 4)

	for _, f := range c.fields() {
		m[f.key] = *f.value
	}

	return m
}

// Set assigns value to the field stored under key. The value is not
// validated.
func (c *TimerConfig) Set(key string, value int) error {
	for _, f := range c.fields() {
		if f.key == key {
			*f.value = value
			return nil
		}
	}

	return ErrInvalidConfiguration.Wrap(errUnknownKey.Fmt(key))
}

// WithChanges returns a copy of c in which every field that differs between
// before and after takes the value from after.
func (c TimerConfig) WithChanges(before, after TimerConfig) TimerConfig {
	was, now := before.fields(), after.fields()

	for i, f := range c.fields() {
		if *was[i].value != *now[i].value {
			*f.value = *now[i].value
		}
	}

	return c
}

// New loads the persisted configuration and applies options on top of it.
// Options only affect the returned value; nothing is written back.
func New(s *Store, opts ...Option) (TimerConfig, error) {
	cfg := s.Load()

	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return TimerConfig{}, fmt.Errorf("config option error: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return TimerConfig{}, err
	}

	slog.Debug("timer configuration resolved", slog.String("config", spew.Sdump(cfg)))

	return cfg, nil
}
