package services

import (
	"time"

	"github.com/Basri-akbas/Finance-Tracker/internal/core/domain"
	portssvc "github.com/Basri-akbas/Finance-Tracker/internal/core/ports/services"
)

// SystemClock reads the wall clock in a fixed location.
type SystemClock struct {
	location *time.Location
}

// NewSystemClock creates a clock whose "today" is the calendar date in loc.
func NewSystemClock(loc *time.Location) SystemClock {
	if loc == nil {
		loc = time.UTC
	}
	return SystemClock{location: loc}
}

func (c SystemClock) Today() domain.Date {
	return domain.DateOf(time.Now().In(c.location))
}

// FixedClock always reports the same date.
type FixedClock struct {
	Date domain.Date
}

func (c FixedClock) Today() domain.Date {
	return c.Date
}

var (
	_ portssvc.Clock = SystemClock{}
	_ portssvc.Clock = FixedClock{}
)
