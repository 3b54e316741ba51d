// Package report prints user-facing status messages
package report

import (
	"io"
	"os"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/studytimer/internal/osutil"
)

// Success prints a formatted confirmation to w.
func Success(w io.Writer, format string, args ...any) {
	pterm.Success.WithWriter(w).Printfln(format, args...)
}

// Error prints err to standard error.
func Error(err error) {
	pterm.Error.WithWriter(os.Stderr).Println(err)
}

// Quit prints err and exits with a failure code.
func Quit(err error) {
	Error(err)
	os.Exit(int(osutil.ExitError))
}
