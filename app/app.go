// Package app defines the studytimer command-line interface
package app

import (
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/studytimer/internal/config"
	"github.com/ayoisaiah/studytimer/internal/ui"
)

// disableStyling disables all styling provided by pterm and lipgloss.
func disableStyling() {
	pterm.DisableColor()
	ui.DisableColor()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

// Get retrieves the studytimer app instance.
func Get() *cli.App {
	return &cli.App{
		Name: "studytimer",
		Usage: `
		studytimer is a Pomodoro timer for the command-line. Work sessions
		alternate with short breaks, and every few sessions a long break is
		due. Finished sessions are logged for daily and weekly statistics.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:   "resume",
				Usage:  "Resume the timer saved when studytimer last exited",
				Action: resumeAction,
			},
			{
				Name:   "stats",
				Usage:  "Show today's and this week's statistics",
				Flags:  []cli.Flag{dateFlag, jsonFlag},
				Action: statsAction,
			},
			{
				Name:   "history",
				Usage:  "List the most recent sessions, newest first",
				Flags:  []cli.Flag{limitFlag, jsonFlag},
				Action: historyAction,
			},
			{
				Name:  "settings",
				Usage: "Show or change the saved timer settings",
				Subcommands: []*cli.Command{
					{
						Name:   "show",
						Usage:  "Print the settings in effect",
						Flags:  []cli.Flag{jsonFlag},
						Action: settingsShowAction,
					},
					{
						Name:      "set",
						Usage:     "Validate and save a single setting",
						ArgsUsage: "<setting> <value>",
						Action:    settingsSetAction,
					},
					{
						Name:   "reset",
						Usage:  "Restore the default settings",
						Action: settingsResetAction,
					},
					{
						Name:   "edit",
						Usage:  "Open the settings file in your text editor",
						Action: settingsEditAction,
					},
				},
			},
		},
		Flags: []cli.Flag{
			workFlag,
			shortBreakFlag,
			longBreakFlag,
			longBreakIntervalFlag,
			soundFlag,
			disableNotificationFlag,
			sessionCmdFlag,
			noColorFlag,
			darkThemeFlag,
			debugFlag,
		},
		Action: defaultAction,
		Before: beforeAction,
		After:  afterAction,
	}
}
