// Package components defines ECS components for the simulation.
package components

// Kind identifies a hominid species.
type Kind uint8

const (
	KindBoisei   Kind = iota // Australopithecus boisei
	KindErgaster             // Homo ergaster
	NumKinds
)

// Calendar sizes used by the ledgers.
const (
	NumSeasons = 4
	DaysInYear = 365
)

// Ledger holds cumulative calories split by source.
// Season and day arguments are 1-based.
type Ledger struct {
	PlantBySeason   [NumSeasons]float64
	CarcassBySeason [NumSeasons]float64
	RootBySeason    [NumSeasons]float64 // dug plants (tools or digging phase)
	NonRootBySeason [NumSeasons]float64

	DailyPlant   [DaysInYear]float64
	DailyCarcass [DaysInYear]float64
}

// AddPlant records plant calories.
func (l *Ledger) AddPlant(season, day int, calories float64, root bool) {
	l.PlantBySeason[season-1] += calories
	l.DailyPlant[day-1] += calories
	if root {
		l.RootBySeason[season-1] += calories
	} else {
		l.NonRootBySeason[season-1] += calories
	}
}

// AddCarcass records meat calories.
func (l *Ledger) AddCarcass(season, day int, calories float64) {
	l.CarcassBySeason[season-1] += calories
	l.DailyCarcass[day-1] += calories
}

// Totals returns lifetime plant and carcass calories.
func (l *Ledger) Totals() (plant, carcass float64) {
	for s := 0; s < NumSeasons; s++ {
		plant += l.PlantBySeason[s]
		carcass += l.CarcassBySeason[s]
	}
	return plant, carcass
}

// Nest holds the nightly nesting state, reset each day.
type Nest struct {
	Nesting bool
	Site    Cell
	HasSite bool
}

// ScavengeState is the cooperative scavenging state of a forager.
type ScavengeState uint8

const (
	ScavengeIdle    ScavengeState = iota
	ScavengeWaiting               // waiting at Scavenge.Carcass for cooperators
)

// Scavenge holds carcass wait state and the per-day ignore set.
type Scavenge struct {
	State   ScavengeState
	Carcass uint32 // awaited carcass while waiting
	Timer   int    // minutes left to wait
	Ignored map[uint32]struct{}
}

// Ignore abandons a carcass for the rest of the day.
func (s *Scavenge) Ignore(id uint32) {
	if s.Ignored == nil {
		s.Ignored = make(map[uint32]struct{})
	}
	s.Ignored[id] = struct{}{}
	if s.State == ScavengeWaiting && s.Carcass == id {
		s.StopWaiting()
	}
}

// IsIgnored reports whether the carcass is ignored today.
func (s *Scavenge) IsIgnored(id uint32) bool {
	_, ok := s.Ignored[id]
	return ok
}

// IsWaitingFor reports whether the forager is waiting at the carcass.
func (s *Scavenge) IsWaitingFor(id uint32) bool {
	return s.State == ScavengeWaiting && s.Carcass == id
}

// StartWaiting begins a wait of the given length.
func (s *Scavenge) StartWaiting(id uint32, minutes int) {
	s.State = ScavengeWaiting
	s.Carcass = id
	s.Timer = minutes
}

// StopWaiting returns to idle.
func (s *Scavenge) StopWaiting() {
	s.State = ScavengeIdle
	s.Carcass = 0
	s.Timer = 0
}

// Reset clears all scavenging state for a new day.
func (s *Scavenge) Reset() {
	s.StopWaiting()
	clear(s.Ignored)
}

// Tally counts minutes spent in one cell, plus nights nested there.
type Tally struct {
	Eating int
	Travel int
	Nests  int
}

// Activity holds per-cell minute tallies over the whole run.
type Activity struct {
	Cells map[Cell]*Tally
}

func (a *Activity) tally(c Cell) *Tally {
	if a.Cells == nil {
		a.Cells = make(map[Cell]*Tally)
	}
	t, ok := a.Cells[c]
	if !ok {
		t = &Tally{}
		a.Cells[c] = t
	}
	return t
}

// Eat records an eating minute at c.
func (a *Activity) Eat(c Cell) { a.tally(c).Eating++ }

// Travel records a travel minute ending at c.
func (a *Activity) Travel(c Cell) { a.tally(c).Travel++ }

// Nest records a night spent at c.
func (a *Activity) Nest(c Cell) { a.tally(c).Nests++ }
