package domain

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-WorkshopScheduler/pkg/types"
)

// OperatingHours daily open/close times, applied uniformly to all open days
type OperatingHours struct {
	Start types.TimeString
	End   types.TimeString
}

// ShopCalendarConfig describes when and how much the workshop can take in.
// Threaded explicitly into every calculation — never a package-level singleton.
type ShopCalendarConfig struct {
	// OpenWeekdays weekday names (time.Weekday.String() form) on which
	// the shop accepts appointments
	OpenWeekdays []string

	OperatingHours OperatingHours

	// BayCount maximum number of jobs occupying the shop concurrently
	BayCount int

	// Timezone IANA name of the shop-local timezone; all weekday and
	// time-of-day decisions are made in this zone
	Timezone string
}

// IsOpenOn reports whether the shop accepts appointments on the weekday of date.
// The caller passes a shop-local date.
func (c *ShopCalendarConfig) IsOpenOn(date time.Time) bool {
	weekday := date.Weekday().String()
	for _, d := range c.OpenWeekdays {
		if d == weekday {
			return true
		}
	}
	return false
}

// OperatingWindow parses the operating hours into minute offsets from midnight.
// Malformed HH:MM values are a caller contract violation, surfaced as an error.
func (c *ShopCalendarConfig) OperatingWindow() (startMin, endMin int, err error) {
	startMin, err = c.OperatingHours.Start.MinutesOfDay()
	if err != nil {
		return 0, 0, err
	}
	endMin, err = c.OperatingHours.End.MinutesOfDay()
	if err != nil {
		return 0, 0, err
	}
	return startMin, endMin, nil
}

// Location resolves the shop-local timezone
func (c *ShopCalendarConfig) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}

// Validate checks the config invariants: start < end, bayCount >= 1,
// recognised weekday names and a loadable timezone
func (c *ShopCalendarConfig) Validate() error {
	startMin, endMin, err := c.OperatingWindow()
	if err != nil {
		return err
	}
	if startMin >= endMin {
		return fmt.Errorf("operating hours start %s must be before end %s",
			c.OperatingHours.Start, c.OperatingHours.End)
	}
	if c.BayCount < MinBayCount || c.BayCount > MaxBayCount {
		return fmt.Errorf("bay count %d out of range [%d, %d]", c.BayCount, MinBayCount, MaxBayCount)
	}
	if len(c.OpenWeekdays) == 0 {
		return fmt.Errorf("at least one open weekday is required")
	}
	for _, d := range c.OpenWeekdays {
		if !isWeekdayName(d) {
			return fmt.Errorf("unknown weekday name %q", d)
		}
	}
	if _, err := c.Location(); err != nil {
		return fmt.Errorf("unknown timezone %q", c.Timezone)
	}
	return nil
}

func isWeekdayName(s string) bool {
	for d := time.Sunday; d <= time.Saturday; d++ {
		if d.String() == s {
			return true
		}
	}
	return false
}
