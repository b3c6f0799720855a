package dateutil

import (
	"errors"
	"strings"
	"time"

	"github.com/jinzhu/now"
)

// dateLayouts lists the accepted input forms. Every entry carries a year,
// month and day: jinzhu/now fills missing fields from the current time, so a
// time-only or month-day layout would turn "10:30" into today's date.
var dateLayouts = []string{
	"2006-1-2",
	"2006-1-2 15:4",
	"2006-1-2 15:4:5",
	"2006-1-2 15:4:5.999999999",
	time.RFC3339,
	time.RFC3339Nano,
	"2006-1-2T15:4",
	"2006-1-2T15:4:5",
	"2006/1/2",
	"2006/1/2 15:4",
	"2006/1/2 15:4:5",
	"2006.1.2",
	"1/2/2006",
	"1/2/2006 15:4",
	"1/2/2006 15:4:5",
	"January 2, 2006",
	"January 2 2006",
	"Jan 2, 2006",
	"Jan 2 2006",
	"2 January 2006",
	"2 Jan 2006",
	"Mon, Jan 2, 2006",
	"Monday, January 2, 2006",
	"Mon Jan 2 2006",
	time.ANSIC,
	time.UnixDate,
	time.RFC1123,
	time.RFC1123Z,
	time.RFC822,
	time.RFC822Z,
	time.RFC850,
}

var parser = &now.Config{
	WeekStartDay: time.Sunday,
	TimeFormats:  dateLayouts,
}

// Parse reads s as a calendar date with an optional time of day, in the local
// time zone. ISO, slash separated, RFC 3339, RFC 1123 and written-out month
// forms ("March 7, 2024", "7 Mar 2024") are accepted. Input without a full
// date, such as "10:30" or "3/7", and dates outside the calendar, such as
// February 30, are rejected.
func Parse(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrEmptyInput
	}

	t, err := parser.Parse(s)
	if err != nil {
		return time.Time{}, errors.Join(ErrInvalidDate, err)
	}
	return t, nil
}

// IsValid reports whether Parse accepts s.
func IsValid(s string) bool {
	_, err := Parse(s)
	return err == nil
}

func StartOfDay(t time.Time) time.Time {
	return now.With(t).BeginningOfDay()
}

func EndOfDay(t time.Time) time.Time {
	return now.With(t).EndOfDay()
}

// StartOfWeek returns the beginning of the Sunday-based week containing t.
func StartOfWeek(t time.Time) time.Time {
	return now.With(t).BeginningOfWeek()
}

func StartOfMonth(t time.Time) time.Time {
	return now.With(t).BeginningOfMonth()
}

func EndOfMonth(t time.Time) time.Time {
	return now.With(t).EndOfMonth()
}

func StartOfYear(t time.Time) time.Time {
	return now.With(t).BeginningOfYear()
}

func EndOfYear(t time.Time) time.Time {
	return now.With(t).EndOfYear()
}

func AddDays(t time.Time, days int) time.Time {
	return t.AddDate(0, 0, days)
}

// DiffInDays returns the number of calendar days from b to a, ignoring the
// time of day. DST transitions do not skew the result.
func DiffInDays(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	ua := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	ub := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(ua.Sub(ub).Hours() / 24)
}

func IsSameDay(a, b time.Time) bool {
	return DiffInDays(a, b) == 0
}
