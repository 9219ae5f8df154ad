package domain

import (
	"fmt"
	"time"
)

// DateLayout is the date format accepted on the command line.
const DateLayout = "2006-01-02"

// TimeWindow is a half-open UTC interval [Start, End) scoping which pull
// requests are analyzed.
type TimeWindow struct {
	Start time.Time
	End   time.Time
}

// NewTimeWindow builds a window from an inclusive start and exclusive end.
func NewTimeWindow(start, end time.Time) TimeWindow {
	return TimeWindow{Start: start.UTC(), End: end.UTC()}
}

// PreviousMonth returns the full calendar month preceding ref, in UTC.
// For a ref anywhere in August the window is [Aug 1 minus one month, Aug 1).
func PreviousMonth(ref time.Time) TimeWindow {
	ref = ref.UTC()
	end := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, time.UTC)
	return TimeWindow{Start: end.AddDate(0, -1, 0), End: end}
}

// ParseDate parses a YYYY-MM-DD value as midnight UTC.
func ParseDate(value string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, value, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected format YYYY-MM-DD", value)
	}
	return t, nil
}

// ParseDateWindow builds a window from YYYY-MM-DD start and end dates.
// The end date is inclusive as a date, so the window is half-open at the
// following midnight.
func ParseDateWindow(startValue, endValue string) (TimeWindow, error) {
	start, err := ParseDate(startValue)
	if err != nil {
		return TimeWindow{}, err
	}
	end, err := ParseDate(endValue)
	if err != nil {
		return TimeWindow{}, err
	}
	if start.After(end) {
		return TimeWindow{}, fmt.Errorf("start date %s is after end date %s", startValue, endValue)
	}
	return NewTimeWindow(start, end.AddDate(0, 0, 1)), nil
}

// Contains reports whether t falls within the window.
func (w TimeWindow) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// PrecedesStart reports whether t falls strictly before the window start.
// It is the termination predicate for the paginated listing sweep: once a
// creation-sorted descending listing yields such a timestamp, every later
// item is older still and paging can stop.
func (w TimeWindow) PrecedesStart(t time.Time) bool {
	return t.Before(w.Start)
}

// String renders the window as an inclusive date range for report headers.
func (w TimeWindow) String() string {
	last := w.End.Add(-time.Second)
	return w.Start.Format(DateLayout) + " to " + last.Format(DateLayout)
}
