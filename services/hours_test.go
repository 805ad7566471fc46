package services

import (
	"testing"
	"time"

	"orderweb/entity"

	"github.com/stretchr/testify/assert"
)

// wednesday at the given clock time
func wednesdayAt(hour, min int) time.Time {
	return time.Date(2026, 8, 26, hour, min, 0, 0, time.UTC)
}

func TestHoursStatusNoConfig(t *testing.T) {
	st := HoursStatus(nil, wednesdayAt(3, 0))
	assert.True(t, st.IsOpen)
}

func TestHoursStatusWindow(t *testing.T) {
	hours := []entity.OpeningHour{
		{Weekday: 3, Opens: "17:00", Closes: "23:00"},
	}

	st := HoursStatus(hours, wednesdayAt(18, 30))
	assert.True(t, st.IsOpen)
	assert.Equal(t, "Open until 23:00", st.Message)

	st = HoursStatus(hours, wednesdayAt(12, 0))
	assert.False(t, st.IsOpen)
	assert.Equal(t, "Closed. Opens today at 17:00", st.Message)

	st = HoursStatus(hours, wednesdayAt(23, 0))
	assert.False(t, st.IsOpen, "close time is exclusive")
	assert.Equal(t, "Closed for today", st.Message)
}

func TestHoursStatusSplitService(t *testing.T) {
	hours := []entity.OpeningHour{
		{Weekday: 3, Opens: "12:00", Closes: "14:30"},
		{Weekday: 3, Opens: "17:00", Closes: "23:00"},
	}

	assert.True(t, HoursStatus(hours, wednesdayAt(13, 0)).IsOpen)
	st := HoursStatus(hours, wednesdayAt(15, 0))
	assert.False(t, st.IsOpen)
	assert.Equal(t, "Closed. Opens today at 17:00", st.Message)
}

func TestHoursStatusOvernightWindow(t *testing.T) {
	hours := []entity.OpeningHour{
		{Weekday: 3, Opens: "17:00", Closes: "01:00"},
	}

	st := HoursStatus(hours, wednesdayAt(23, 30))
	assert.True(t, st.IsOpen)
	assert.Equal(t, "Open until 01:00", st.Message)

	// thursday 00:30 still falls inside wednesday's window
	thursday := time.Date(2026, 8, 27, 0, 30, 0, 0, time.UTC)
	st = HoursStatus(hours, thursday)
	assert.True(t, st.IsOpen)
	assert.Equal(t, "Open until 01:00", st.Message)

	assert.False(t, HoursStatus(hours, time.Date(2026, 8, 27, 2, 0, 0, 0, time.UTC)).IsOpen)
	assert.False(t, HoursStatus(hours, wednesdayAt(12, 0)).IsOpen)
}

func TestHoursStatusClosedDay(t *testing.T) {
	hours := []entity.OpeningHour{
		{Weekday: 3, Opens: "17:00", Closes: "23:00", Closed: true},
	}
	assert.False(t, HoursStatus(hours, wednesdayAt(18, 0)).IsOpen)
}

func TestHoursStatusOtherWeekday(t *testing.T) {
	hours := []entity.OpeningHour{
		{Weekday: 5, Opens: "17:00", Closes: "23:00"},
	}
	assert.False(t, HoursStatus(hours, wednesdayAt(18, 0)).IsOpen)
}

func TestSortHours(t *testing.T) {
	rows := []entity.OpeningHour{
		{Weekday: 3, Opens: "17:00"},
		{Weekday: 1, Opens: "12:00"},
		{Weekday: 3, Opens: "12:00"},
	}
	SortHours(rows)
	assert.Equal(t, 1, rows[0].Weekday)
	assert.Equal(t, "12:00", rows[1].Opens)
	assert.Equal(t, "17:00", rows[2].Opens)
}
