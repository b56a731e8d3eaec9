package services

import (
	"math"
	"time"
)

const (
	Range24h     = "24h"
	Range1w      = "1w"
	Range1m      = "1m"
	DefaultRange = Range1w
)

var SupportedRanges = []string{Range24h, Range1w, Range1m}

// Window is an inclusive [Start, End] interval.
type Window struct {
	Start time.Time
	End   time.Time
}

// ResolveWindow maps a range token to the window ending at now. Weeks and
// months are calendar arithmetic, so 1m is not a fixed 30 days.
func ResolveWindow(rangeToken string, now time.Time) (Window, error) {
	var start time.Time
	switch rangeToken {
	case Range24h:
		start = now.Add(-24 * time.Hour)
	case Range1w:
		start = now.AddDate(0, 0, -7)
	case Range1m:
		start = now.AddDate(0, -1, 0)
	default:
		return Window{}, &InvalidRangeError{Range: rangeToken}
	}
	return Window{Start: start, End: now}, nil
}

// SpanDays is the window length rounded up to whole days.
func (w Window) SpanDays() int {
	d := w.End.Sub(w.Start)
	if d <= 0 {
		return 0
	}
	return int(math.Ceil(d.Hours() / 24))
}

func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// DayWindow covers the UTC calendar day containing t.
func DayWindow(t time.Time) Window {
	t = t.UTC()
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return Window{Start: start, End: start.AddDate(0, 0, 1).Add(-time.Nanosecond)}
}
