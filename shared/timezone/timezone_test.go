package timezone_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"clubhouse/shared/timezone"
)

func initZone(t *testing.T, name string) {
	t.Helper()

	assert.NoError(t, timezone.Init(name))
}

func TestInit_UnknownZone(t *testing.T) {
	err := timezone.Init("Atlantis/Lost")

	assert.Error(t, err)
}

func TestUnixAt(t *testing.T) {
	initZone(t, "Asia/Jakarta")

	loc, err := time.LoadLocation("Asia/Jakarta")
	assert.NoError(t, err)

	want := time.Date(2026, 9, 1, 10, 30, 0, 0, loc).Unix()

	got, err := timezone.UnixAt("2026-09-01", "10:30")
	assert.NoError(t, err)
	assert.Equal(t, want, got)

	got, err = timezone.UnixAt("2026-09-01", "10:30:00")
	assert.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestUnixAt_BadInput(t *testing.T) {
	initZone(t, "Asia/Jakarta")

	_, err := timezone.UnixAt("2026-13-01", "10:30")
	assert.Error(t, err)

	_, err = timezone.UnixAt("2026-09-01", "25:00")
	assert.Error(t, err)
}

func TestDayStartUnix(t *testing.T) {
	initZone(t, "Asia/Jakarta")

	loc, err := time.LoadLocation("Asia/Jakarta")
	assert.NoError(t, err)

	want := time.Date(2026, 9, 1, 0, 0, 0, 0, loc).Unix()

	got, err := timezone.DayStartUnix("2026-09-01")
	assert.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestNumericDate(t *testing.T) {
	initZone(t, "Asia/Jakarta")

	loc, err := time.LoadLocation("Asia/Jakarta")
	assert.NoError(t, err)

	// Late UTC evening is already the next calendar day in Jakarta.
	utcEvening := time.Date(2026, 8, 31, 20, 0, 0, 0, time.UTC)

	assert.Equal(t, int64(20260901), timezone.NumericDate(utcEvening))
	assert.Equal(t, int64(20260831), timezone.NumericDate(time.Date(2026, 8, 31, 12, 0, 0, 0, loc)))
}

func TestNumericDateOf(t *testing.T) {
	initZone(t, "Asia/Jakarta")

	got, err := timezone.NumericDateOf("2026-09-01")
	assert.NoError(t, err)
	assert.Equal(t, int64(20260901), got)

	_, err = timezone.NumericDateOf("not-a-date")
	assert.Error(t, err)
}

func TestNormalizeClock(t *testing.T) {
	assert.Equal(t, "10:30:00", timezone.NormalizeClock("10:30"))
	assert.Equal(t, "10:30:45", timezone.NormalizeClock("10:30:45"))
}

func TestMinuteOfDay(t *testing.T) {
	tests := []struct {
		clock string
		want  int
	}{
		{"00:00", 0},
		{"06:00", 360},
		{"23:00:00", 1380},
		{"10:45", 645},
	}

	for _, tt := range tests {
		got, err := timezone.MinuteOfDay(tt.clock)

		assert.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	_, err := timezone.MinuteOfDay("garbage")
	assert.Error(t, err)
}

func TestWeekday(t *testing.T) {
	initZone(t, "Asia/Jakarta")

	tests := []struct {
		date string
		want int
	}{
		{"2026-08-30", 1}, // Sunday
		{"2026-08-31", 2}, // Monday
		{"2026-09-05", 7}, // Saturday
	}

	for _, tt := range tests {
		got, err := timezone.Weekday(tt.date)

		assert.NoError(t, err)
		assert.Equal(t, tt.want, got, tt.date)
	}
}
