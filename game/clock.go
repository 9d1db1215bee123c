package game

import (
	"github.com/pthm-cable/hominids/components"
	"github.com/pthm-cable/hominids/systems"
)

// Last day of each season.
var seasonEnds = [components.NumSeasons]int{90, 273, 334, components.DaysInYear}

// seasonOf returns the 1-based season of a 1-based day of the year.
func seasonOf(day int) int {
	for s, last := range seasonEnds {
		if day <= last {
			return s + 1
		}
	}
	return components.NumSeasons
}

// seasonSpan returns the first day and length of a season.
func seasonSpan(season int) (first, length int) {
	first = 1
	if season > 1 {
		first = seasonEnds[season-2] + 1
	}
	return first, seasonEnds[season-1] - first + 1
}

// Clock is the simulated calendar. A day is ActiveMinutes foraging minutes.
type Clock struct {
	Minute int // 0..ActiveMinutes-1
	Day    int // 1..365
	Season int // 1..4
	Year   int // 1-based

	ActiveMinutes int
}

// NewClock starts at minute 0 of day 1, year 1.
func NewClock(activeMinutes int) Clock {
	return Clock{Day: 1, Season: 1, Year: 1, ActiveMinutes: activeMinutes}
}

// Calendar returns the fields foragers need.
func (c Clock) Calendar() systems.Calendar {
	return systems.Calendar{Day: c.Day, Season: c.Season}
}

// DayInSeason returns the 1-based day within the current season and the
// season's length.
func (c Clock) DayInSeason() (day, length int) {
	first, length := seasonSpan(c.Season)
	return c.Day - first + 1, length
}

// tick advances one minute and reports whether the day ended.
func (c *Clock) tick() bool {
	c.Minute++
	if c.Minute < c.ActiveMinutes {
		return false
	}
	c.Minute = 0
	return true
}

// nextDay moves to the following day, wrapping the year.
func (c *Clock) nextDay() {
	c.Day++
	if c.Day > components.DaysInYear {
		c.Day = 1
		c.Year++
	}
	c.Season = seasonOf(c.Day)
}
