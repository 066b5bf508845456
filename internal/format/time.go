// Package format renders timestamps and durations for terminal output,
// following the display_date and display_time config keys.
package format

import (
	"fmt"
	"time"

	"github.com/footprint-tools/shellshell/internal/config"
)

var datePresets = map[string]string{
	"":           "Jan 02",
	"mm/dd/yyyy": "01/02/2006",
	"yyyy-mm-dd": "2006-01-02",
	"dd/mm/yyyy": "02/01/2006",
}

// Layout holds the Go layouts picked from the display settings.
type Layout struct {
	Date    string
	Clock   string
	Seconds string
}

// NewLayout resolves display_date and display_time through get. A
// display_date that is not a preset is used as a Go layout; any
// display_time other than 12h means 24h.
func NewLayout(get func(key string) (string, bool)) Layout {
	date, _ := get("display_date")
	clock, _ := get("display_time")

	l := Layout{Date: date, Clock: "15:04", Seconds: "15:04:05"}
	if preset, ok := datePresets[date]; ok {
		l.Date = preset
	}
	if clock == "12h" {
		l.Clock, l.Seconds = "3:04 PM", "3:04:05 PM"
	}
	return l
}

// DateTime renders "Jan 23 15:04" style output.
func (l Layout) DateTime(t time.Time) string { return t.Format(l.Date + " " + l.Clock) }

// Full is DateTime with seconds.
func (l Layout) Full(t time.Time) string { return t.Format(l.Date + " " + l.Seconds) }

// Package-level helpers read the user's config on each call.

func DateTime(t time.Time) string { return NewLayout(config.Get).DateTime(t) }
func Date(t time.Time) string     { return t.Format(NewLayout(config.Get).Date) }
func Time(t time.Time) string     { return t.Format(NewLayout(config.Get).Clock) }
func Full(t time.Time) string     { return NewLayout(config.Get).Full(t) }

// Duration renders elapsed time compactly: "850ms", "2.4s", "3m05s".
func Duration(d time.Duration) string {
	switch {
	case d < 0:
		return "0ms"
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	case d < time.Minute:
		return fmt.Sprintf("%.1fs", d.Seconds())
	default:
		d = d.Round(time.Second)
		return fmt.Sprintf("%dm%02ds", int(d.Minutes()), int(d.Seconds())%60)
	}
}
