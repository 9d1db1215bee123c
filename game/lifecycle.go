package game

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/hominids/components"
	"github.com/pthm-cable/hominids/config"
	"github.com/pthm-cable/hominids/systems"
)

// spawnRoster creates the configured foragers at random cells, roster
// order first, using the run rng.
func (w *World) spawnRoster() {
	for _, spec := range w.cfg.Derived.Roster {
		for i := 0; i < spec.Count; i++ {
			at := components.Cell{X: w.rng.Intn(w.land.W), Y: w.rng.Intn(w.land.H)}
			w.spawnForager(spec, at)
		}
	}
	w.order = make([]ecs.Entity, len(w.agents))
}

// spawnForager creates one forager entity.
func (w *World) spawnForager(spec config.RosterSpec, at components.Cell) ecs.Entity {
	id := w.nextID
	w.nextID++

	kind := components.Kind(spec.Species)
	pos := at
	f := components.Forager{
		ID:     id,
		Kind:   kind,
		Caps:   components.CapabilitiesFromOptions(spec.Options),
		Traits: components.TraitsFromSpecies(w.cfg.SpeciesParams(spec.Species)),
	}
	diet := components.Diet{ActiveRemaining: w.clock.ActiveMinutes}
	var (
		ledger   components.Ledger
		nest     components.Nest
		scav     components.Scavenge
		activity components.Activity
	)

	e := w.entityMapper.NewEntity(&pos, &f, &diet, &ledger, &nest, &scav, &activity)
	w.agents = append(w.agents, e)
	w.options[id] = spec.Options.String()
	w.occupancy.Insert(systems.Occupant{ID: id, Kind: kind}, at)
	return e
}
