package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/lmorales/jornada/internal/clock"
	"github.com/lmorales/jornada/internal/domain"
)

// parseClockFlag accepts both "HH:MM" and "hh:mm a.m./p.m." spellings.
func parseClockFlag(s string) (clock.TimeOfDay, error) {
	if tod, err := clock.ParseClock24(s); err == nil {
		return tod, nil
	}
	return clock.ParseClock(s)
}

// atTime replaces now's time of day with the --at flag value when set.
func atTime(now time.Time, at string) (time.Time, error) {
	if at == "" {
		return now, nil
	}
	tod, err := parseClockFlag(at)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q: %w", at, err)
	}
	return time.Date(now.Year(), now.Month(), now.Day(),
		tod.Hour, tod.Minute, 0, 0, now.Location()), nil
}

func parseRecordID(arg string) (domain.RecordID, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid record id %q", arg)
	}
	return domain.RecordID(id), nil
}

// parseListFilter builds a record filter from the --date and --month flags.
func parseListFilter(dateFlag, monthFlag string) (domain.Filter, error) {
	var filter domain.Filter

	if dateFlag != "" {
		date, err := clock.ParseDate(dateFlag)
		if err != nil {
			return filter, fmt.Errorf("invalid date %q: %w", dateFlag, err)
		}
		filter.Date = &date
	}

	if monthFlag != "" {
		t, err := time.Parse("2006-01", monthFlag)
		if err != nil {
			return filter, fmt.Errorf("invalid month %q (want YYYY-MM)", monthFlag)
		}
		filter.Year = t.Year()
		filter.Month = t.Month()
	}

	return filter, nil
}
