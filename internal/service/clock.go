package service

import (
	"time"

	"taskly-be/internal/entities"
)

// Clock returns the current time. Tests substitute a fixed one.
type Clock func() time.Time

// SystemClock reads the wall clock in loc.
func SystemClock(loc *time.Location) Clock {
	return func() time.Time {
		return time.Now().In(loc)
	}
}

func (c Clock) today() entities.Date {
	return entities.DateOf(c())
}
