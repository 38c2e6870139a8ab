package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	ErrInvalidTimeOfDay = errors.New("time of day must be in HH:MM format")
	ErrDuplicateWeekday = errors.New("schedule has more than one entry for the same weekday")
	ErrIncompleteWeek   = errors.New("schedule must cover all seven weekdays")
)

// WeekdayHours is one row of the store's operating calendar.
// A closed day carries no meaningful time bounds.
type WeekdayHours struct {
	Weekday time.Weekday
	Open    bool
	Opens   string
	Closes  string
}

// ValidateWeek checks the calendar covers each weekday exactly once and that
// open days carry well-formed bounds.
func ValidateWeek(hours []WeekdayHours) error {
	seen := map[time.Weekday]bool{}
	for _, h := range hours {
		if seen[h.Weekday] {
			return fmt.Errorf("%w: %s", ErrDuplicateWeekday, h.Weekday)
		}
		seen[h.Weekday] = true
		if !h.Open {
			continue
		}
		if _, err := minuteOfDay(h.Opens); err != nil {
			return err
		}
		if _, err := minuteOfDay(h.Closes); err != nil {
			return err
		}
	}
	if len(seen) != 7 {
		return ErrIncompleteWeek
	}
	return nil
}

// DefaultWeek returns a calendar with every day closed.
func DefaultWeek() []WeekdayHours {
	week := make([]WeekdayHours, 7)
	for d := time.Sunday; d <= time.Saturday; d++ {
		week[d] = WeekdayHours{Weekday: d}
	}
	return week
}

// IsOpenAt reports whether the store accepts orders at the given instant.
//
// The manual flag is an absolute kill-switch: when false the store is closed no
// matter what the calendar says. An empty calendar defers entirely to the manual
// flag. Otherwise the entry matching now's weekday decides: a missing or closed
// entry, or one with missing/malformed bounds, means closed; an open entry admits
// any instant inside [opens, closes], both bounds inclusive, so a customer acting
// at the exact closing minute is still served.
//
// Pure and cache-free: callers must re-evaluate on every read since now moves.
func IsOpenAt(hours []WeekdayHours, manualOpen bool, now time.Time) bool {
	if !manualOpen {
		return false
	}
	if len(hours) == 0 {
		return true
	}
	var today *WeekdayHours
	for i := range hours {
		if hours[i].Weekday == now.Weekday() {
			today = &hours[i]
			break
		}
	}
	if today == nil || !today.Open {
		return false
	}
	opens, err := minuteOfDay(today.Opens)
	if err != nil {
		return false
	}
	closes, err := minuteOfDay(today.Closes)
	if err != nil {
		return false
	}
	current := now.Hour()*60 + now.Minute()
	return current >= opens && current <= closes
}

func minuteOfDay(clock string) (int, error) {
	parts := strings.SplitN(strings.TrimSpace(clock), ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, clock)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, clock)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, clock)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, clock)
	}
	return hour*60 + minute, nil
}
