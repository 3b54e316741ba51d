package config

import (
	"github.com/urfave/cli/v2"
)

// Duration flag names shared with the app package.
const (
	FlagWork              = "work"
	FlagShortBreak        = "short-break"
	FlagLongBreak         = "long-break"
	FlagLongBreakInterval = "long-break-interval"
)

// CLIOptions represents the timer overrides accepted on the command line.
// Zero values mean "not set".
type CLIOptions struct {
	Work              uint
	ShortBreak        uint
	LongBreak         uint
	LongBreakInterval uint
}

// WithCLIConfig returns an Option that applies duration flags for the
// current run only.
func WithCLIConfig(ctx *cli.Context) Option {
	return func(c *TimerConfig) error {
		opts := CLIOptions{}

		if ctx.IsSet(FlagWork) {
			opts.Work = ctx.Uint(FlagWork)
		}

		if ctx.IsSet(FlagShortBreak) {
			opts.ShortBreak = ctx.Uint(FlagShortBreak)
		}

		if ctx.IsSet(FlagLongBreak) {
			opts.LongBreak = ctx.Uint(FlagLongBreak)
		}

		if ctx.IsSet(FlagLongBreakInterval) {
			opts.LongBreakInterval = ctx.Uint(FlagLongBreakInterval)
		}

		return applyCLIOptions(c, opts)
	}
}

// applyCLIOptions applies CLI options to the config.
func applyCLIOptions(c *TimerConfig, opts CLIOptions) error {
	overrides := []struct {
		dst *int
		val uint
	}{
		{&c.WorkMinutes, opts.Work},
		{&c.ShortBreakMinutes, opts.ShortBreak},
		{&c.LongBreakMinutes, opts.LongBreak},
		{&c.SessionsBeforeLongBreak, opts.LongBreakInterval},
	}

	for _, o := range overrides {
		if o.val > 0 {
			*o.dst = int(o.val)
		}
	}

	return c.Validate()
}
