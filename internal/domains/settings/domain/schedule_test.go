package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// June 4th 2025 is a Wednesday.
func wednesdayAt(hour, minute int) time.Time {
	return time.Date(2025, time.June, 4, hour, minute, 0, 0, time.UTC)
}

func openWeek(weekday time.Weekday, opens, closes string) []WeekdayHours {
	week := DefaultWeek()
	week[weekday] = WeekdayHours{Weekday: weekday, Open: true, Opens: opens, Closes: closes}
	return week
}

func TestIsOpenAt_ManualSwitchOverridesEverything(t *testing.T) {
	week := openWeek(time.Wednesday, "08:00", "18:00")
	assert.False(t, IsOpenAt(week, false, wednesdayAt(12, 0)))
	assert.False(t, IsOpenAt(nil, false, wednesdayAt(12, 0)))
}

func TestIsOpenAt_EmptyScheduleTrustsManualSwitch(t *testing.T) {
	assert.True(t, IsOpenAt(nil, true, wednesdayAt(3, 0)))
	assert.True(t, IsOpenAt([]WeekdayHours{}, true, wednesdayAt(23, 59)))
}

func TestIsOpenAt_InsideWindow(t *testing.T) {
	week := openWeek(time.Wednesday, "08:00", "18:00")
	assert.True(t, IsOpenAt(week, true, wednesdayAt(8, 0)))
	assert.True(t, IsOpenAt(week, true, wednesdayAt(12, 30)))
}

func TestIsOpenAt_ClosingMinuteIsInclusive(t *testing.T) {
	week := openWeek(time.Wednesday, "08:00", "18:00")
	assert.True(t, IsOpenAt(week, true, wednesdayAt(18, 0)))
	assert.False(t, IsOpenAt(week, true, wednesdayAt(18, 1)))
}

func TestIsOpenAt_BeforeOpening(t *testing.T) {
	week := openWeek(time.Wednesday, "08:00", "18:00")
	assert.False(t, IsOpenAt(week, true, wednesdayAt(7, 59)))
}

func TestIsOpenAt_ClosedDay(t *testing.T) {
	week := openWeek(time.Thursday, "08:00", "18:00")
	assert.False(t, IsOpenAt(week, true, wednesdayAt(12, 0)))
}

func TestIsOpenAt_MissingEntryForToday(t *testing.T) {
	week := []WeekdayHours{{Weekday: time.Monday, Open: true, Opens: "08:00", Closes: "18:00"}}
	assert.False(t, IsOpenAt(week, true, wednesdayAt(12, 0)))
}

func TestIsOpenAt_MalformedBoundsMeanClosed(t *testing.T) {
	week := openWeek(time.Wednesday, "", "18:00")
	assert.False(t, IsOpenAt(week, true, wednesdayAt(12, 0)))

	week = openWeek(time.Wednesday, "08:00", "late")
	assert.False(t, IsOpenAt(week, true, wednesdayAt(12, 0)))
}

func TestValidateWeek(t *testing.T) {
	require.NoError(t, ValidateWeek(DefaultWeek()))

	dup := append(DefaultWeek(), WeekdayHours{Weekday: time.Sunday})
	require.ErrorIs(t, ValidateWeek(dup), ErrDuplicateWeekday)

	short := DefaultWeek()[:6]
	require.ErrorIs(t, ValidateWeek(short), ErrIncompleteWeek)

	bad := openWeek(time.Monday, "25:00", "26:00")
	require.ErrorIs(t, ValidateWeek(bad), ErrInvalidTimeOfDay)
}
