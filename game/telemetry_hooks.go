package game

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/pthm-cable/hominids/components"
	"github.com/pthm-cable/hominids/systems"
	"github.com/pthm-cable/hominids/telemetry"
)

// beginDay closes the finished day for every forager, records its
// telemetry and moves the clock to the next day.
func (w *World) beginDay() {
	w.dayIndex++
	sample := telemetry.DaySample{
		DayIndex: w.dayIndex,
		Year:     w.clock.Year,
		Day:      w.clock.Day,
		Season:   w.clock.Season,
	}

	for _, e := range w.agents {
		_, f, diet, _, nest, scav, _ := w.entityMapper.Get(e)
		sample.Calories[f.Kind] = append(sample.Calories[f.Kind], diet.CaloriesToday)

		diet.CloseDay(f.Traits.TrackWindow, w.clock.ActiveMinutes)
		if systems.IsStarving(diet, f.Traits) {
			sample.Starving[f.Kind]++
		}
		// The last site stays on record for the agent summary.
		nest.Nesting = false
		scav.Reset()
	}
	sample.Carcasses = w.carcasses.CountBySize()
	for s := 0; s < w.plants.Catalog.Len(); s++ {
		sample.PlantAbundance += w.plants.Total(s)
	}

	stats := w.collector.Flush(sample)
	w.lastDay = stats
	w.recordDay(stats)

	prevSeason, prevYear := w.clock.Season, w.clock.Year
	w.clock.nextDay()
	if w.clock.Season != prevSeason {
		w.logSeasonChange(prevSeason, stats)
	}
	if w.clock.Year != prevYear {
		slog.Info("year complete", "year", prevYear, "days", w.dayIndex)
	}
}

// recordDay writes a closed day to every enabled sink.
func (w *World) recordDay(stats telemetry.DayStats) {
	if w.logDays {
		slog.Info("day", "stats", stats)
	}

	if err := w.outputManager.WriteDay(stats); err != nil {
		slog.Error("failed to write daily stats", "error", err)
	}
	if w.store != nil {
		if err := w.store.RecordDay(stats); err != nil {
			slog.Error("failed to archive day", "error", err)
		}
	}

	for _, bm := range w.bookmarks.Check(stats) {
		bm.LogBookmark()
		if err := w.outputManager.WriteBookmark(bm); err != nil {
			slog.Error("failed to write bookmark", "error", err)
		}
	}
}

// AgentRecords summarises every forager in creation order.
func (w *World) AgentRecords() []telemetry.AgentRecord {
	records := make([]telemetry.AgentRecord, 0, len(w.agents))
	for _, e := range w.agents {
		pos, f, diet, ledger, nest, _, act := w.entityMapper.Get(e)
		starving := systems.IsStarving(diet, f.Traits)
		records = append(records, telemetry.NewAgentRecord(f, w.options[f.ID], *pos, nest, diet, ledger, act, starving))
	}
	return records
}

// SpatialRecords returns per-cell activity for every cell.
func (w *World) SpatialRecords() []telemetry.CellRecord {
	grid := telemetry.NewSpatialGrid(w.land.W, w.land.H, func(c components.Cell) string {
		return w.land.ZoneAt(c).String()
	})
	for _, e := range w.agents {
		_, f, _, _, _, _, act := w.entityMapper.Get(e)
		grid.AddActivity(f.Kind, act)
	}
	for x := 0; x < w.land.W; x++ {
		for y := 0; y < w.land.H; y++ {
			c := components.Cell{X: x, Y: y}
			grid.SetAbundance(c, w.plants.CellTotal(c))
		}
	}
	return grid.Records()
}

// SeasonSummaries returns per-species, per-season calorie summaries.
func (w *World) SeasonSummaries(agents []telemetry.AgentRecord) []telemetry.SeasonSummary {
	var req [components.NumKinds]float64
	for k := components.Kind(0); k < components.NumKinds; k++ {
		req[k] = w.cfg.SpeciesParams(int(k)).DailyCalorieRequirement
	}
	return telemetry.SummarizeSeasons(agents, w.collector.SeasonDays(), req)
}

// Finish writes the end-of-run result files and closes the archive run.
func (w *World) Finish() error {
	agents := w.AgentRecords()

	if err := w.outputManager.WriteAgents(agents); err != nil {
		return err
	}
	if err := w.outputManager.WriteSpatial(w.SpatialRecords()); err != nil {
		return err
	}
	if err := w.outputManager.WriteSeasons(w.SeasonSummaries(agents)); err != nil {
		return err
	}
	if w.store != nil {
		if err := w.store.FinishRun(w.dayIndex, agents, time.Now()); err != nil {
			return fmt.Errorf("archive: %w", err)
		}
	}

	w.logSummary(agents)
	return nil
}
