// Package timezone holds the club's wall-clock arithmetic.
//
// Bookings are stored as local calendar dates and times-of-day; every rule in
// the permission engine compares UTC epoch seconds. This package is the single
// boundary between the two representations:
//
//	utcStart, _ := timezone.UnixAt("2024-06-01", "09:00")
//	dayStart, _ := timezone.DayStartUnix("2024-06-01")
//	minute, _ := timezone.MinuteOfDay("09:30")
//
// Initialize once at startup with the club's IANA zone name:
//
//	timezone.Init(cfg.App.Timezone)
package timezone
