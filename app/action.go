package app

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/studytimer/internal/config"
	"github.com/ayoisaiah/studytimer/internal/pathutil"
	"github.com/ayoisaiah/studytimer/internal/timeutil"
	"github.com/ayoisaiah/studytimer/internal/ui"
	"github.com/ayoisaiah/studytimer/notify"
	"github.com/ayoisaiah/studytimer/sessionlog"
	"github.com/ayoisaiah/studytimer/stats"
	"github.com/ayoisaiah/studytimer/store"
	"github.com/ayoisaiah/studytimer/timer"
	"github.com/ayoisaiah/studytimer/tui"
)

const (
	envDebug = "STUDYTIMER_DEBUG"
)

const (
	soundOff            = "off"
	defaultHistoryLimit = 10
	logCloserKey        = "log-closer"
)

// firstNonEmptyString returns its first non-empty argument, or "" if all
// arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

func printJSON(w io.Writer, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(b))

	return err
}

// newNotifier builds the notifier chain from the command-line flags.
func newNotifier(ctx *cli.Context) (*notify.Chain, error) {
	var sounds []notify.Notifier

	if sound := ctx.String(soundFlag.Name); sound != soundOff {
		sounds = append(sounds, notify.NewSpeaker(sound), notify.NewBeep())
	}

	var extras []notify.Notifier

	if !ctx.Bool(disableNotificationFlag.Name) {
		extras = append(extras, notify.NewDesktop())
	}

	if cmdLine := ctx.String(sessionCmdFlag.Name); cmdLine != "" {
		cmd, err := notify.NewCommand(cmdLine)
		if err != nil {
			return nil, err
		}

		extras = append(extras, cmd)
	}

	return notify.NewChain(sounds, extras...), nil
}

// openSnapshots opens the snapshot database, which also guards against a
// second running instance.
func openSnapshots(path string) (store.DB, error) {
	client, err := store.NewClient(path)
	if err != nil {
		return nil, err
	}

	return client, nil
}

// runTimer opens the persisted state and hands it to the TUI. With resume
// set, the timer continues from the saved snapshot.
func runTimer(ctx *cli.Context, resume bool) error {
	paths, err := pathutil.Resolve()
	if err != nil {
		return err
	}

	settings := config.NewStore(paths.ConfigFilePath())

	cfg, err := config.New(settings, config.WithCLIConfig(ctx))
	if err != nil {
		return err
	}

	notifier, err := newNotifier(ctx)
	if err != nil {
		return err
	}

	db, err := openSnapshots(paths.DBFilePath())
	if err != nil {
		return err
	}

	defer db.Close()

	t := timer.New(cfg)

	if resume {
		snap, err := db.LoadTimer()
		if err != nil {
			return err
		}

		t = timer.Restore(cfg, snap.State)

		slog.InfoContext(
			ctx.Context,
			"timer restored",
			slog.Time("saved_at", snap.SavedAt),
			slog.String("phase", t.Phase().String()),
			slog.Int("remaining", t.RemainingSeconds()),
		)
	}

	return tui.Run(ctx.Context, tui.Deps{
		Timer:     t,
		Log:       sessionlog.Open(paths.SessionFilePath()),
		Settings:  settings,
		Notifier:  notifier,
		Snapshots: db,
	})
}

// defaultAction starts a new timer.
func defaultAction(ctx *cli.Context) error {
	return runTimer(ctx, false)
}

// resumeAction recovers the timer saved on the last exit.
func resumeAction(ctx *cli.Context) error {
	return runTimer(ctx, true)
}

func openSessionLog() (*sessionlog.Log, error) {
	paths, err := pathutil.Resolve()
	if err != nil {
		return nil, err
	}

	return sessionlog.Open(paths.SessionFilePath()), nil
}

// statsAction prints the statistics for the day given by --date, which
// defaults to today.
func statsAction(ctx *cli.Context) error {
	day, err := timeutil.FromStr(ctx.String(dateFlag.Name), time.Now())
	if err != nil {
		return err
	}

	log, err := openSessionLog()
	if err != nil {
		return err
	}

	report := stats.Build(log, day)

	if ctx.Bool(jsonFlag.Name) {
		return printJSON(ctx.App.Writer, report)
	}

	return stats.Render(ctx.App.Writer, report)
}

// historyAction prints the most recent sessions.
func historyAction(ctx *cli.Context) error {
	log, err := openSessionLog()
	if err != nil {
		return err
	}

	records := log.RecentHistory(int(ctx.Uint(limitFlag.Name)))

	if ctx.Bool(jsonFlag.Name) {
		return printJSON(ctx.App.Writer, records)
	}

	return stats.PrintHistory(ctx.App.Writer, records)
}

func beforeAction(ctx *cli.Context) error {
	// Override the default help template
	cli.AppHelpTemplate = helpText()

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	if !ui.ColorEnabled(os.Stdout, ctx.Bool(noColorFlag.Name)) {
		disableStyling()
	}

	ui.DarkTheme = ctx.Bool(darkThemeFlag.Name)

	paths, err := pathutil.Resolve()
	if err != nil {
		return err
	}

	logger, closer := newLogger(paths.LogFilePath(), ctx.Bool(debugFlag.Name))
	slog.SetDefault(logger)

	if ctx.App.Metadata == nil {
		ctx.App.Metadata = make(map[string]any)
	}

	ctx.App.Metadata[logCloserKey] = closer

	slog.DebugContext(
		ctx.Context,
		"starting studytimer",
		slog.String("version", ctx.App.Version),
		slog.Any("args", ctx.Args().Slice()),
	)

	return nil
}

func afterAction(ctx *cli.Context) error {
	slog.InfoContext(ctx.Context, "exiting studytimer")

	if closer, ok := ctx.App.Metadata[logCloserKey].(io.Closer); ok {
		return closer.Close()
	}

	return nil
}
