package clock

import (
	"embrew-service/internal/app/contracts"
	"time"
)

type systemClock struct {
	location *time.Location
}

// NewSystemClock reads the wall clock in the business timezone.
func NewSystemClock(location *time.Location) contracts.Clock {
	if location == nil {
		location = time.Local
	}
	return &systemClock{location: location}
}

func (c *systemClock) Now() time.Time {
	return time.Now().In(c.location)
}

func (c *systemClock) Location() *time.Location {
	return c.location
}

// FixedClock always answers the same instant.
type FixedClock struct {
	At time.Time
}

func (c FixedClock) Now() time.Time {
	return c.At
}

func (c FixedClock) Location() *time.Location {
	return c.At.Location()
}
