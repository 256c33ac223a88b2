// Package xflag contains extra flag types.
package xflag

import (
	"time"

	"github.com/miku/bibmerge/dateutil"
)

// Date can be used to parse dates from the command line.
type Date struct {
	time.Time
}

// String returns the date formatted as YYYY-MM-DD.
func (d *Date) String() string {
	if d.Time.IsZero() {
		return ""
	}
	return d.Time.Format("2006-01-02")
}

// Set parses a date flag value.
func (d *Date) Set(value string) error {
	t, err := dateutil.Parse(value)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}
