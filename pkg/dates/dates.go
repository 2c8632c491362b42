// Package dates converts between the user-facing YYYY-MM-DD convention and
// the Darwinbox API's DD-MM-YYYY convention and resolves relative ranges.
package dates

import (
	"fmt"
	"time"
)

const (
	// DayFormat is the user-facing date layout. All tool arguments use it.
	DayFormat = "2006-01-02"
	// APIDayFormat is the layout most Darwinbox endpoints expect.
	APIDayFormat = "02-01-2006"
	// MonthFormat is the layout of the monthly attendance month parameter.
	MonthFormat = "2006-01"
)

// Validate reports whether s is a valid date in YYYY-MM-DD form.
func Validate(s string) bool {
	_, err := time.Parse(DayFormat, s)
	return err == nil
}

// ValidateMonth reports whether s is a valid month in YYYY-MM form.
func ValidateMonth(s string) bool {
	_, err := time.Parse(MonthFormat, s)
	return err == nil
}

// Convert turns a YYYY-MM-DD date into DD-MM-YYYY.
func Convert(s string) (string, error) {
	t, err := time.Parse(DayFormat, s)
	if err != nil {
		return "", fmt.Errorf("invalid date format: %s", s)
	}
	return t.Format(APIDayFormat), nil
}

// DayBounds expands a YYYY-MM-DD range into the full day-start/day-end
// timestamps the encashment endpoint expects.
func DayBounds(start, end string) (string, string, error) {
	from, err := time.Parse(DayFormat, start)
	if err != nil {
		return "", "", fmt.Errorf("invalid date format: %s", start)
	}
	to, err := time.Parse(DayFormat, end)
	if err != nil {
		return "", "", fmt.Errorf("invalid date format: %s", end)
	}
	return from.Format(APIDayFormat) + " 00:00:00", to.Format(APIDayFormat) + " 23:59:59", nil
}

// LastWeek returns the most recently completed Monday-Sunday span before
// today, as a YYYY-MM-DD pair.
func LastWeek(today time.Time) (string, string) {
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	sinceMonday := (int(day.Weekday()) + 6) % 7
	monday := day.AddDate(0, 0, -sinceMonday-7)
	sunday := monday.AddDate(0, 0, 6)
	return monday.Format(DayFormat), sunday.Format(DayFormat)
}

// LastMonth returns the full previous calendar month as a YYYY-MM-DD pair.
func LastMonth(today time.Time) (string, string) {
	firstOfThis := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
	first := firstOfThis.AddDate(0, -1, 0)
	last := firstOfThis.AddDate(0, 0, -1)
	return first.Format(DayFormat), last.Format(DayFormat)
}
