package clock

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Date is a calendar date without a time component.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// Today returns the calendar date of the given instant in its location.
func Today(now time.Time) Date {
	return Date{Year: now.Year(), Month: now.Month(), Day: now.Day()}
}

// ParseDateISO parses the canonical storage form "YYYY-MM-DD".
func ParseDateISO(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(s))
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrParse, s)
	}
	return Today(t), nil
}

// ParseDateSlash parses the locale form "DD/MM/YYYY". It requires exactly
// three numeric segments and rejects dates that do not exist on the calendar.
func ParseDateSlash(s string) (Date, error) {
	parts := strings.Split(strings.TrimSpace(s), "/")
	if len(parts) != 3 {
		return Date{}, fmt.Errorf("%w: %q", ErrParse, s)
	}
	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return Date{}, fmt.Errorf("%w: %q", ErrParse, s)
		}
		nums[i] = n
	}

	d := Date{Year: nums[2], Month: time.Month(nums[1]), Day: nums[0]}
	if !d.valid() {
		return Date{}, fmt.Errorf("%w: %q", ErrParse, s)
	}
	return d, nil
}

// ParseDate accepts either the ISO or the DD/MM/YYYY shape.
func ParseDate(s string) (Date, error) {
	if d, err := ParseDateISO(s); err == nil {
		return d, nil
	}
	return ParseDateSlash(s)
}

func (d Date) valid() bool {
	t := d.Time()
	return t.Year() == d.Year && t.Month() == d.Month && t.Day() == d.Day
}

// ISO renders the canonical storage form "YYYY-MM-DD".
func (d Date) ISO() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Slash renders the locale form "DD/MM/YYYY".
func (d Date) Slash() string {
	return fmt.Sprintf("%02d/%02d/%04d", d.Day, int(d.Month), d.Year)
}

// Time returns midnight UTC of the date, for ordering arithmetic.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// AddDays returns the date n days after d (n may be negative).
func (d Date) AddDays(n int) Date {
	return Today(d.Time().AddDate(0, 0, n))
}

// IsZero reports whether d is the zero date.
func (d Date) IsZero() bool {
	return d == Date{}
}

// Before reports whether d is strictly earlier than other.
func (d Date) Before(other Date) bool {
	return d.Time().Before(other.Time())
}

// After reports whether d is strictly later than other.
func (d Date) After(other Date) bool {
	return d.Time().After(other.Time())
}
