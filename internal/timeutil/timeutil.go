// Package timeutil pins the organizational timezone used for calendar-day
// boundaries. The operation runs on Bogota time (UTC-5, no DST).
package timeutil

import "time"

// OrgZone is the fixed organizational timezone.
var OrgZone = time.FixedZone("America/Bogota", -5*3600)

// Today returns the current calendar date in the organizational timezone,
// normalized to midnight.
func Today() time.Time {
	return DateOf(time.Now())
}

// DateOf normalizes an instant to its calendar date in the org timezone.
func DateOf(t time.Time) time.Time {
	y, m, d := t.In(OrgZone).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, OrgZone)
}

// DayWindow returns the [00:00, 24:00) bounds of the given date in the org
// timezone. The date's own location is ignored; only Y/M/D matter.
func DayWindow(date time.Time) (from, to time.Time) {
	y, m, d := date.Date()
	from = time.Date(y, m, d, 0, 0, 0, 0, OrgZone)
	return from, from.AddDate(0, 0, 1)
}

// ParseDate parses a YYYY-MM-DD string as an org-timezone date.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", s, OrgZone)
}

// SameDate reports whether two instants fall on the same org-timezone date.
func SameDate(a, b time.Time) bool {
	return DateOf(a).Equal(DateOf(b))
}
