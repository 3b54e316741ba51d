package app

import (
	"os"
	"os/exec"
	"runtime"
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/studytimer/internal/config"
	"github.com/ayoisaiah/studytimer/internal/osutil"
	"github.com/ayoisaiah/studytimer/internal/pathutil"
	"github.com/ayoisaiah/studytimer/internal/ui"
	"github.com/ayoisaiah/studytimer/report"
)

var settingKeys = []string{
	config.KeyWorkDuration,
	config.KeyShortBreakDuration,
	config.KeyLongBreakDuration,
	config.KeySessionsBeforeLongBreak,
}

func settingsStore() (*config.Store, error) {
	paths, err := pathutil.Resolve()
	if err != nil {
		return nil, err
	}

	return config.NewStore(paths.ConfigFilePath()), nil
}

// settingsShowAction prints the settings in effect: the saved values, the
// defaults for anything not saved, and environment overrides.
func settingsShowAction(ctx *cli.Context) error {
	s, err := settingsStore()
	if err != nil {
		return err
	}

	values := s.Load().Map()

	if ctx.Bool(jsonFlag.Name) {
		return printJSON(ctx.App.Writer, values)
	}

	rows := make([][]string, 0, len(settingKeys))
	for _, key := range settingKeys {
		rows = append(rows, []string{
			key,
			strconv.Itoa(values[key]),
			strconv.Itoa(config.UpperBound(key)),
		})
	}

	return ui.PrintTable(ctx.App.Writer, []string{"SETTING", "VALUE", "MAX"}, rows)
}

// settingsSetAction validates a single value and saves it together with the
// other values in the settings file. Environment overrides are not written.
func settingsSetAction(ctx *cli.Context) error {
	if ctx.NArg() != 2 {
		return errSetUsage
	}

	key, raw := ctx.Args().Get(0), ctx.Args().Get(1)

	n, err := config.ParseField(key, raw)
	if err != nil {
		return err
	}

	s, err := settingsStore()
	if err != nil {
		return err
	}

	cfg := s.LoadFile()

	if err = cfg.Set(key, n); err != nil {
		return err
	}

	if err = s.Save(cfg); err != nil {
		return err
	}

	report.Success(ctx.App.Writer, "%s set to %d", key, n)

	return nil
}

// settingsResetAction overwrites the settings file with the defaults.
func settingsResetAction(ctx *cli.Context) error {
	s, err := settingsStore()
	if err != nil {
		return err
	}

	if _, err = s.Reset(); err != nil {
		return err
	}

	report.Success(ctx.App.Writer, "settings restored to defaults")

	return nil
}

// settingsEditAction opens the settings file in the user's default text
// editor. The defaults are written first if the file does not exist yet.
func settingsEditAction(_ *cli.Context) error {
	defaultEditor := "nano"

	if runtime.GOOS == osutil.Windows {
		defaultEditor = "C:\\Windows\\system32\\notepad.exe"
	}

	editor := firstNonEmptyString(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		defaultEditor,
	)

	s, err := settingsStore()
	if err != nil {
		return err
	}

	if _, err = os.Stat(s.Path()); os.IsNotExist(err) {
		if err = s.Save(s.LoadFile()); err != nil {
			return err
		}
	}

	cmd := exec.Command(editor, s.Path())

	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout

	return cmd.Run()
}
