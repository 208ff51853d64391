package daily

import (
	"fmt"
	"time"
)

const layoutISO = "2006-01-02"

// DefaultTimezone is the home zone all "today" resolution is pinned to when
// the config does not name one. Date boundaries follow this zone no matter
// where the process runs.
const DefaultTimezone = "Asia/Shanghai"

// Clock resolves the canonical "today" in a fixed home timezone. Widgets and
// selection rules take a Clock instead of reading ambient time so tests can
// pin the date.
type Clock interface {
	Now() time.Time
	Today() string
}

type zoneClock struct {
	loc *time.Location
}

// NewClock returns a Clock pinned to the named timezone. An empty name falls
// back to DefaultTimezone.
func NewClock(timezone string) (Clock, error) {
	if timezone == "" {
		timezone = DefaultTimezone
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("daily: load timezone %q: %w", timezone, err)
	}
	return &zoneClock{loc: loc}, nil
}

func (c *zoneClock) Now() time.Time { return time.Now().In(c.loc) }

func (c *zoneClock) Today() string { return c.Now().Format(layoutISO) }

type fixedClock struct {
	at time.Time
}

// Fixed returns a Clock frozen at the given YYYY-MM-DD, for tests.
func Fixed(today string) Clock {
	at, err := time.Parse(layoutISO, today)
	if err != nil {
		at = time.Time{}
	}
	return &fixedClock{at: at}
}

func (c *fixedClock) Now() time.Time { return c.at }

func (c *fixedClock) Today() string { return c.at.Format(layoutISO) }
