package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cast"
)

const (
	// WindowBoundLayout renders a bound the way report file names carry it.
	WindowBoundLayout = "2006-01-02T15:04:05"

	// CaptureLayout is the capture timestamp layout embedded in object keys.
	CaptureLayout = "20060102T1504Z"
)

var (
	ErrInvalidWindow      = errors.New("invalid time window")
	ErrInvalidWindowBound = errors.New("invalid window bound")
)

// TimeWindow is an open interval (Start, End) in UTC.
type TimeWindow struct {
	start time.Time
	end   time.Time
}

// NewTimeWindow builds a window normalized to UTC. Start must be before End.
func NewTimeWindow(start, end time.Time) (TimeWindow, error) {
	start, end = start.UTC(), end.UTC()
	if !start.Before(end) {
		return TimeWindow{}, fmt.Errorf("%w: start %s must be before end %s", ErrInvalidWindow,
			start.Format(time.RFC3339Nano), end.Format(time.RFC3339Nano))
	}
	return TimeWindow{start: start, end: end}, nil
}

// ParseTimeWindow parses both bounds with ParseWindowBound.
func ParseTimeWindow(start, end string) (TimeWindow, error) {
	s, err := ParseWindowBound(start)
	if err != nil {
		return TimeWindow{}, err
	}
	e, err := ParseWindowBound(end)
	if err != nil {
		return TimeWindow{}, err
	}
	return NewTimeWindow(s, e)
}

// ParseWindowBound accepts any ISO-8601 shape cast understands. Values with an
// offset are converted to UTC; naive values are read as UTC.
func ParseWindowBound(value string) (time.Time, error) {
	t, err := cast.ToTimeInDefaultLocationE(value, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w %q: %w", ErrInvalidWindowBound, value, err)
	}
	return t.UTC(), nil
}

func (w TimeWindow) Start() time.Time { return w.start }

func (w TimeWindow) End() time.Time { return w.end }

// Contains reports whether start < t < end. Both bounds are excluded.
func (w TimeWindow) Contains(t time.Time) bool {
	return w.start.Before(t) && t.Before(w.end)
}

// Days returns midnight of every UTC calendar day from the start date to the
// end date, both inclusive.
func (w TimeWindow) Days() []time.Time {
	first := time.Date(w.start.Year(), w.start.Month(), w.start.Day(), 0, 0, 0, 0, time.UTC)
	last := time.Date(w.end.Year(), w.end.Month(), w.end.Day(), 0, 0, 0, 0, time.UTC)

	var days []time.Time
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

func (w TimeWindow) String() string {
	return w.start.Format(WindowBoundLayout) + "_" + w.end.Format(WindowBoundLayout)
}
