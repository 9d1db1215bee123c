package game

import (
	"context"
	"log/slog"

	"github.com/pthm-cable/hominids/telemetry"
)

// Step advances the world by one foraging minute.
func (w *World) Step() {
	w.perf.StartMinute()

	w.beginMinute()

	w.perf.StartPhase(telemetry.PhaseShuffle)
	w.shuffle()

	w.perf.StartPhase(telemetry.PhaseForagers)
	cal := w.clock.Calendar()
	for _, e := range w.order {
		w.collector.RecordOutcome(w.foraging.Step(w.agent(e), cal))
	}

	if w.clock.Minute == 0 {
		w.perf.StartPhase(telemetry.PhaseMidnight)
		w.midnight()
	}

	if w.clock.tick() {
		w.perf.StartPhase(telemetry.PhaseTelemetry)
		w.beginDay()
	}

	w.perf.EndMinute()
}

// beginMinute clears state that lives for a single minute.
func (w *World) beginMinute() {
	w.calls.Clear()
}

// shuffle reorders the agents with the run rng, once per minute.
func (w *World) shuffle() {
	copy(w.order, w.agents)
	w.rng.Shuffle(len(w.order), func(i, j int) {
		w.order[i], w.order[j] = w.order[j], w.order[i]
	})
}

// midnight runs the daily updates of the plant and carcass layers.
func (w *World) midnight() {
	day, length := w.clock.DayInSeason()
	w.plants.DailyUpdate(w.clock.Season, day, length)

	spawned := w.carcasses.SpawnCheck(w.land, w.rng)
	w.carcasses.RefreshPresence(w.occupancy)
	pruned := w.carcasses.PruneDepleted()
	w.collector.RecordCarcasses(spawned, pruned)

	roster := telemetry.CarcassRoster(w.clock.Year, w.clock.Day, w.carcasses.All())
	if err := w.outputManager.WriteCarcasses(roster); err != nil {
		slog.Error("failed to write carcass roster", "error", err)
	}
}

// RunDays advances n whole days. Cancellation is checked between minutes;
// the context error is returned when it fires.
func (w *World) RunDays(ctx context.Context, n int) error {
	minutes := n * w.clock.ActiveMinutes
	for i := 0; i < minutes; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		w.Step()
	}
	return nil
}
