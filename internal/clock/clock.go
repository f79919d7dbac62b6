// Package clock converts between the locale-facing time representations
// (12-hour clock strings, DD/MM/YYYY dates) and the canonical forms used
// for storage and arithmetic.
package clock

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrParse reports a malformed time or date string.
var ErrParse = errors.New("malformed time value")

// TimeOfDay is a wall-clock time in 24-hour representation.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// ParseClock parses a 12-hour clock string of the form "H:MM" or "HH:MM"
// followed by a meridiem marker ("a.m."/"p.m.", tolerating "am"/"AM" forms).
// Hour 12 with an a.m. marker maps to hour 0; hours below 12 with a p.m.
// marker gain 12.
func ParseClock(s string) (TimeOfDay, error) {
	fields := strings.Fields(strings.TrimSpace(s))
	if len(fields) != 2 {
		return TimeOfDay{}, fmt.Errorf("%w: %q", ErrParse, s)
	}

	hm := strings.Split(fields[0], ":")
	if len(hm) != 2 {
		return TimeOfDay{}, fmt.Errorf("%w: %q", ErrParse, s)
	}
	hour, err := strconv.Atoi(hm[0])
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("%w: %q", ErrParse, s)
	}
	minute, err := strconv.Atoi(hm[1])
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("%w: %q", ErrParse, s)
	}
	if hour < 1 || hour > 12 || minute < 0 || minute > 59 {
		return TimeOfDay{}, fmt.Errorf("%w: %q", ErrParse, s)
	}

	switch strings.ReplaceAll(strings.ToLower(fields[1]), ".", "") {
	case "am":
		if hour == 12 {
			hour = 0
		}
	case "pm":
		if hour < 12 {
			hour += 12
		}
	default:
		return TimeOfDay{}, fmt.Errorf("%w: %q", ErrParse, s)
	}

	return TimeOfDay{Hour: hour, Minute: minute}, nil
}

// ParseClock24 parses a 24-hour "HH:MM" string, the shape used for storage
// and for edit input.
func ParseClock24(s string) (TimeOfDay, error) {
	hm := strings.Split(strings.TrimSpace(s), ":")
	if len(hm) != 2 {
		return TimeOfDay{}, fmt.Errorf("%w: %q", ErrParse, s)
	}
	hour, err := strconv.Atoi(hm[0])
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("%w: %q", ErrParse, s)
	}
	minute, err := strconv.Atoi(hm[1])
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("%w: %q", ErrParse, s)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return TimeOfDay{}, fmt.Errorf("%w: %q", ErrParse, s)
	}
	return TimeOfDay{Hour: hour, Minute: minute}, nil
}

// FromTime extracts the time of day from t.
func FromTime(t time.Time) TimeOfDay {
	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute()}
}

// Format12 renders the canonical two-digit-hour 12-hour form, e.g. "09:05 a.m.".
func (t TimeOfDay) Format12() string {
	hour := t.Hour % 12
	if hour == 0 {
		hour = 12
	}
	marker := "a.m."
	if t.Hour >= 12 {
		marker = "p.m."
	}
	return fmt.Sprintf("%02d:%02d %s", hour, t.Minute, marker)
}

// Format24 renders the storage form "HH:MM".
func (t TimeOfDay) Format24() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// MinutesSinceMidnight returns the offset of t from midnight in minutes.
func (t TimeOfDay) MinutesSinceMidnight() int {
	return t.Hour*60 + t.Minute
}

// DurationMinutes returns end - start in minutes, both taken on the same
// nominal calendar day. The result is negative when end precedes start;
// callers reject such mutations rather than store them.
func DurationMinutes(start, end TimeOfDay) int {
	return end.MinutesSinceMidnight() - start.MinutesSinceMidnight()
}

// FormatDuration renders a minute count as "{H}h {M}m" using floor division.
func FormatDuration(minutes int) string {
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}
