// Package dateutil provides date parsing helpers for harvest and conversion
// code.
package dateutil

import (
	"regexp"
	"time"

	"github.com/araddon/dateparse"
	"github.com/jinzhu/now"
)

// Parse parses a date string in any common format.
func Parse(value string) (time.Time, error) {
	return dateparse.ParseStrict(value)
}

// MustParse is like Parse but panics on error.
func MustParse(value string) time.Time {
	t, err := dateparse.ParseStrict(value)
	if err != nil {
		panic(err)
	}
	return t
}

var yearPattern = regexp.MustCompile(`\b(19|20)\d{2}\b`)

// Year extracts a four digit year from a date string, via full parse first,
// then a best effort pattern match. Returns the empty string if nothing
// looks like a year.
func Year(value string) string {
	if value == "" {
		return ""
	}
	if t, err := dateparse.ParseStrict(value); err == nil {
		return t.Format("2006")
	}
	return yearPattern.FindString(value)
}

// DayRange pads a point in time to the enclosing day, e.g. for day sliced
// feed filenames.
func DayRange(t time.Time) (start, end time.Time) {
	return now.With(t).BeginningOfDay(), now.With(t).EndOfDay()
}
