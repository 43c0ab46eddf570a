// Package timezone keeps every timestamp the service produces in one
// configured location (APP_TIMEZONE, e.g. "Africa/Cairo").
//
//	now := timezone.Now()
//	day := timezone.Today()
//	t, err := timezone.Parse(time.DateOnly, "2024-01-01")
//
// The location is loaded when the package is imported; unknown names
// fall back to UTC.
package timezone
