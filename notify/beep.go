package notify

import (
	"context"

	"github.com/gen2brain/beeep"
)

// Beep sounds the system bell.
type Beep struct {
	beep func(freq float64, duration int) error
}

// NewBeep returns a Beep that uses the platform beep.
func NewBeep() *Beep {
	return &Beep{beep: beeep.Beep}
}

// Name implements Notifier.
func (b *Beep) Name() string {
	return "beep"
}

// Notify implements Notifier.
func (b *Beep) Notify(_ context.Context, _ Event) error {
	return b.beep(beeep.DefaultFreq, beeep.DefaultDuration)
}

// Desktop shows a desktop notification.
type Desktop struct {
	notify func(title, message string) error
}

// NewDesktop returns a Desktop notifier.
func NewDesktop() *Desktop {
	return &Desktop{
		notify: func(title, message string) error {
			return beeep.Notify(title, message, "")
		},
	}
}

// Name implements Notifier.
func (d *Desktop) Name() string {
	return "desktop"
}

// Notify implements Notifier.
func (d *Desktop) Notify(_ context.Context, ev Event) error {
	return d.notify(ev.Title(), ev.Message())
}
