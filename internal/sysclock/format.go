package sysclock

import "time"

// systemsetup argument formats for the macOS back end. Kept free of
// build tags so they are testable everywhere.

func systemsetupDate(t time.Time) string {
	return t.Format("01/02/2006")
}

func systemsetupTime(t time.Time) string {
	return t.Format("15:04:05.000")
}
