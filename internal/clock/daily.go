package clock

import (
	"fmt"
	"time"
)

// DailyTime is a wall-clock time of day in a location.
type DailyTime struct {
	Hour     int
	Minute   int
	Location *time.Location
}

// ParseDailyTime parses "HH:MM" in the named IANA location.
func ParseDailyTime(value, location string) (DailyTime, error) {
	loc, err := time.LoadLocation(location)
	if err != nil {
		return DailyTime{}, fmt.Errorf("load location %q: %w", location, err)
	}
	parsed, err := time.Parse("15:04", value)
	if err != nil {
		return DailyTime{}, fmt.Errorf("parse daily time %q: %w", value, err)
	}
	return DailyTime{Hour: parsed.Hour(), Minute: parsed.Minute(), Location: loc}, nil
}

// Next returns the first occurrence of d strictly after now.
func (d DailyTime) Next(now time.Time) time.Time {
	loc := d.Location
	if loc == nil {
		loc = time.UTC
	}
	local := now.In(loc)
	next := time.Date(local.Year(), local.Month(), local.Day(), d.Hour, d.Minute, 0, 0, loc)
	if !next.After(local) {
		next = time.Date(local.Year(), local.Month(), local.Day()+1, d.Hour, d.Minute, 0, 0, loc)
	}
	return next
}

func (d DailyTime) String() string {
	loc := d.Location
	if loc == nil {
		loc = time.UTC
	}
	return fmt.Sprintf("%02d:%02d %s", d.Hour, d.Minute, loc)
}
