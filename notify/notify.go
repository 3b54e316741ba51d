// Package notify announces the end of a timer phase. Sound notifiers are
// tried in order until one succeeds; other notifiers always run. No failure
// is ever returned to the caller.
package notify

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ayoisaiah/studytimer/timer"
)

// Event describes a phase change.
type Event struct {
	Ended   timer.Phase
	Next    timer.Phase
	Skipped bool
}

// Title returns the heading of a desktop notification for e.
func (e Event) Title() string {
	if e.Skipped {
		return "Session Skipped"
	}

	return "Session Complete!"
}

// Message returns the body of a desktop notification for e.
func (e Event) Message() string {
	return fmt.Sprintf("%s finished!\nReady for %s?", e.Ended.Label(), e.Next.Label())
}

// Notifier delivers a notification for an event.
type Notifier interface {
	Notify(ctx context.Context, ev Event) error
	Name() string
}

// Chain combines notifiers.
type Chain struct {
	sounds []Notifier
	extras []Notifier
}

// NewChain returns a chain that plays the first working sound from sounds
// and then runs every extra notifier.
func NewChain(sounds []Notifier, extras ...Notifier) *Chain {
	return &Chain{
		sounds: sounds,
		extras: extras,
	}
}

// Notify delivers ev. Failures are logged and otherwise ignored.
func (c *Chain) Notify(ctx context.Context, ev Event) {
	for _, n := range c.sounds {
		err := n.Notify(ctx, ev)
		if err == nil {
			slog.Debug("notification sound played", slog.String("notifier", n.Name()))
			break
		}

		slog.Warn("notification sound failed",
			slog.String("notifier", n.Name()),
			slog.Any("error", err),
		)
	}

	for _, n := range c.extras {
		if err := n.Notify(ctx, ev); err != nil {
			slog.Warn("notifier failed",
				slog.String("notifier", n.Name()),
				slog.Any("error", err),
			)
		}
	}
}
