package timezone

import (
	"fmt"
	"time"

	"clubhouse/shared/constant"

	"github.com/rs/zerolog/log"
)

var (
	appLocation *time.Location
)

// Init loads the club timezone. Called once at process start; every
// local-to-UTC conversion in the booking core goes through this package so
// derived epoch values are computed in exactly one place.
func Init(name string) error {
	if name == "" {
		log.Warn().Msg("No timezone configured, using UTC as default")
		appLocation = time.UTC

		return nil
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		appLocation = time.UTC

		return fmt.Errorf("loading timezone %q: %w", name, err)
	}

	appLocation = loc
	log.Info().
		Str("timezone", name).
		Str("location", loc.String()).
		Msg("Application timezone initialized")

	return nil
}

// Now returns the current time in the application timezone
func Now() time.Time {
	if appLocation == nil {
		log.Warn().Msg("Timezone not initialized, using UTC")
		return time.Now().UTC()
	}
	return time.Now().In(appLocation)
}

// ToAppTime converts a time to the application timezone
func ToAppTime(t time.Time) time.Time {
	if appLocation == nil {
		log.Warn().Msg("Timezone not initialized, using UTC")
		return t.UTC()
	}
	return t.In(appLocation)
}

// GetLocation returns the current application timezone location
func GetLocation() *time.Location {
	if appLocation == nil {
		log.Warn().Msg("Timezone not initialized, returning UTC")
		return time.UTC
	}
	return appLocation
}

// Parse parses a time string in the application timezone
func Parse(layout, value string) (time.Time, error) {
	if appLocation == nil {
		log.Warn().Msg("Timezone not initialized, parsing in UTC")
		return time.Parse(layout, value)
	}
	return time.ParseInLocation(layout, value, appLocation)
}

// Format formats a time in the application timezone
func Format(t time.Time, layout string) string {
	return ToAppTime(t).Format(layout)
}

// UnixAt returns the UTC epoch second of a local calendar date and
// wall-clock time ("2006-01-02", "15:04" or "15:04:05").
func UnixAt(date, clock string) (int64, error) {
	t, err := Parse(constant.DateFormat+" "+constant.ClockFormat, date+" "+NormalizeClock(clock))
	if err != nil {
		return 0, fmt.Errorf("parsing local time %q %q: %w", date, clock, err)
	}

	return t.Unix(), nil
}

// DayStartUnix returns the UTC epoch second of local midnight on the given date.
func DayStartUnix(date string) (int64, error) {
	t, err := Parse(constant.DateFormat, date)
	if err != nil {
		return 0, fmt.Errorf("parsing local date %q: %w", date, err)
	}

	return t.Unix(), nil
}

// NumericDate collapses a calendar date in the application timezone into a
// comparable yyyymmdd integer.
func NumericDate(t time.Time) int64 {
	local := ToAppTime(t)

	return int64(local.Year())*10000 + int64(local.Month())*100 + int64(local.Day())
}

// NumericDateOf parses "2006-01-02" into the yyyymmdd integer form.
func NumericDateOf(date string) (int64, error) {
	t, err := Parse(constant.DateFormat, date)
	if err != nil {
		return 0, fmt.Errorf("parsing local date %q: %w", date, err)
	}

	return NumericDate(t), nil
}

// Clock formats a wall-clock time-of-day in the application timezone.
func Clock(t time.Time) string {
	return Format(t, constant.ClockFormat)
}

// NormalizeClock pads "HH:MM" to "HH:MM:SS"; full clock strings pass through.
func NormalizeClock(clock string) string {
	if len(clock) == len(constant.HourMinFormat) {
		return clock + ":00"
	}

	return clock
}

// MinuteOfDay converts "HH:MM" or "HH:MM:SS" to minutes since local midnight.
func MinuteOfDay(clock string) (int, error) {
	t, err := time.Parse(constant.ClockFormat, NormalizeClock(clock))
	if err != nil {
		return 0, fmt.Errorf("parsing clock %q: %w", clock, err)
	}

	return t.Hour()*60 + t.Minute(), nil
}

// Weekday returns the day of week for a local date, numbered 1 (Sunday)
// through 7 (Saturday) to match the schedule item rows.
func Weekday(date string) (int, error) {
	t, err := Parse(constant.DateFormat, date)
	if err != nil {
		return 0, fmt.Errorf("parsing local date %q: %w", date, err)
	}

	return int(t.Weekday()) + 1, nil
}
