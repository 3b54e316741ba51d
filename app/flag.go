package app

import (
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/studytimer/internal/config"
)

var (
	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	darkThemeFlag = &cli.BoolFlag{
		Name:    "dark-theme",
		Usage:   "Use colours suited to dark terminal backgrounds",
		EnvVars: []string{"STUDYTIMER_DARK_THEME"},
	}

	debugFlag = &cli.BoolFlag{
		Name:    "debug",
		Usage:   "Write debug messages to the log file",
		EnvVars: []string{envDebug},
	}

	disableNotificationFlag = &cli.BoolFlag{
		Name:    "disable-notification",
		Aliases: []string{"d"},
		Usage:   "Disable the system notification that appears after a session is completed",
	}

	sessionCmdFlag = &cli.StringFlag{
		Name:    "session-cmd",
		Aliases: []string{"cmd"},
		Usage:   "Execute an arbitrary command after each session",
	}

	soundFlag = &cli.StringFlag{
		Name:  "sound",
		Usage: "Sound file (mp3, ogg, flac or wav) played when a session ends.\n\t\t\t\tA generated tone is used by default. Disable sound by setting to 'off'",
	}

	workFlag = &cli.UintFlag{
		Name:    config.FlagWork,
		Aliases: []string{"w"},
		Usage:   "Work duration in minutes (default: 25)",
	}

	shortBreakFlag = &cli.UintFlag{
		Name:    config.FlagShortBreak,
		Aliases: []string{"s"},
		Usage:   "Short break duration in minutes (default: 5)",
	}

	longBreakFlag = &cli.UintFlag{
		Name:    config.FlagLongBreak,
		Aliases: []string{"l"},
		Usage:   "Long break duration in minutes (default: 15)",
	}

	longBreakIntervalFlag = &cli.UintFlag{
		Name:    config.FlagLongBreakInterval,
		Aliases: []string{"int"},
		Usage:   "The number of work sessions before a long break (default: 4)",
	}

	dateFlag = &cli.StringFlag{
		Name:  "date",
		Usage: "Reference day for the statistics (e.g. 'yesterday', '2025-03-10')",
	}

	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Print the output as JSON",
	}

	limitFlag = &cli.UintFlag{
		Name:    "limit",
		Aliases: []string{"n"},
		Usage:   "Maximum number of sessions to print",
		Value:   defaultHistoryLimit,
	}
)
