package stats

import (
	"fmt"
	"io"
	"slices"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/studytimer/internal/session"
	"github.com/ayoisaiah/studytimer/internal/ui"
)

var historyHeader = []string{"#", "DATE", "START", "TYPE", "DURATION", "STATUS", "NOTES"}

// kindLabel returns the coloured label of a session kind.
func kindLabel(k session.Kind) string {
	switch k {
	case session.Focus:
		return ui.Magenta(k.Label())
	case session.ShortBreak:
		return ui.Cyan(k.Label())
	case session.LongBreak:
		return ui.Yellow(k.Label())
	}

	return k.Label()
}

// HistoryRows converts records to table rows, newest first.
func HistoryRows(records []session.Record) [][]string {
	rows := make([][]string, 0, len(records))

	for _, rec := range slices.Backward(records) {
		status := ui.Green("completed")
		if !rec.Completed {
			status = ui.Red("incomplete")
		}

		rows = append(rows, []string{
			fmt.Sprintf("%d", rec.ID),
			rec.Date,
			rec.StartTime,
			kindLabel(rec.Kind),
			fmt.Sprintf("%d min", rec.Duration),
			status,
			rec.Notes,
		})
	}

	return rows
}

// PrintHistory prints records as a table, newest first.
func PrintHistory(w io.Writer, records []session.Record) error {
	if len(records) == 0 {
		pterm.Info.WithWriter(w).Println(noSessionsMsg)
		return nil
	}

	return ui.PrintTable(w, historyHeader, HistoryRows(records))
}
