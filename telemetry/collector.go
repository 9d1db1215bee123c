// Package telemetry collects daily statistics and writes run results
// as CSV files and an optional SQLite archive.
package telemetry

import (
	"github.com/pthm-cable/hominids/components"
	"github.com/pthm-cable/hominids/systems"
)

// DaySample is the world state handed to the collector when a day closes.
type DaySample struct {
	DayIndex int
	Year     int
	Day      int
	Season   int

	Calories [components.NumKinds][]float64 // calories eaten today, one per forager
	Starving [components.NumKinds]int

	Carcasses      [systems.NumCarcassSizes]int
	PlantAbundance float64
}

// Collector accumulates events over a simulated day and produces DayStats.
type Collector struct {
	outcomes [systems.NumOutcomes]int
	spawned  int
	pruned   int

	seasonDays [components.NumSeasons]int
}

// NewCollector creates a new stats collector.
func NewCollector() *Collector {
	return &Collector{}
}

// RecordOutcome records one forager minute.
func (c *Collector) RecordOutcome(o systems.Outcome) {
	if o < systems.NumOutcomes {
		c.outcomes[o]++
	}
}

// RecordCarcasses records the midnight carcass update.
func (c *Collector) RecordCarcasses(spawned, pruned int) {
	c.spawned += spawned
	c.pruned += pruned
}

// Flush produces the day's stats and resets the daily counters.
func (c *Collector) Flush(s DaySample) DayStats {
	st := DayStats{
		DayIndex: s.DayIndex,
		Year:     s.Year,
		Day:      s.Day,
		Season:   s.Season,

		PlantMinutes:  c.outcomes[systems.OutcomeAtePlant],
		MeatMinutes:   c.outcomes[systems.OutcomeAteMeat],
		WaitMinutes:   c.outcomes[systems.OutcomeWaiting],
		TravelMinutes: c.outcomes[systems.OutcomeMoved] + c.outcomes[systems.OutcomeWandered] + c.outcomes[systems.OutcomeApproached],
		GaveUp:        c.outcomes[systems.OutcomeGaveUp],
		Nested:        c.outcomes[systems.OutcomeNested],

		CarcassesSmall:   s.Carcasses[systems.CarcassSmall],
		CarcassesMedium:  s.Carcasses[systems.CarcassMedium],
		CarcassesLarge:   s.Carcasses[systems.CarcassLarge],
		CarcassesSpawned: c.spawned,
		CarcassesPruned:  c.pruned,

		PlantAbundance: s.PlantAbundance,
	}
	for k := components.Kind(0); k < components.NumKinds; k++ {
		st.setSpecies(k, Describe(s.Calories[k]), s.Starving[k])
	}
	if s.Season >= 1 && s.Season <= components.NumSeasons {
		c.seasonDays[s.Season-1]++
	}

	c.outcomes = [systems.NumOutcomes]int{}
	c.spawned, c.pruned = 0, 0
	return st
}

// SeasonDays returns how many days of each season have been flushed.
func (c *Collector) SeasonDays() [components.NumSeasons]int {
	return c.seasonDays
}
