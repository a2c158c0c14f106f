// Package timezone pins every business date to the hotel's local zone.
//
// Booking dates such as check-in, check-out and the once-per-day guest rule are calendar
// days at the property, not UTC days. The zone is read from APP_TIMEZONE (default
// Asia/Manila) on first use and falls back to UTC if it cannot be resolved. Pin replaces
// it at runtime.
//
//	now := timezone.Now()        // wall clock at the property
//	today := timezone.Today()    // midnight of the current property day
//	day := timezone.DateOf(t)    // midnight of the property day that contains t
//	t, err := timezone.Parse(constant.DateFormat, "2025-06-03")
package timezone
