package game

import (
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/pthm-cable/hominids/components"
	"github.com/pthm-cable/hominids/telemetry"
)

// logSeasonChange logs the closing day of a season.
func (w *World) logSeasonChange(season int, last telemetry.DayStats) {
	slog.Info("season complete",
		"season", season,
		"year", last.Year,
		"day_index", last.DayIndex,
		"boisei_cal_mean", humanize.Comma(int64(last.BoiseiCalMean)),
		"ergaster_cal_mean", humanize.Comma(int64(last.ErgasterCalMean)),
		"boisei_starving", last.BoiseiStarving,
		"ergaster_starving", last.ErgasterStarving,
		"carcasses", last.CarcassesSmall+last.CarcassesMedium+last.CarcassesLarge,
		"perf", w.perf.Stats(),
	)
}

// logSummary logs lifetime totals per species at the end of a run.
func (w *World) logSummary(agents []telemetry.AgentRecord) {
	var (
		count    [components.NumKinds]int
		starving [components.NumKinds]int
		plant    [components.NumKinds]float64
		meat     [components.NumKinds]float64
		avg      [components.NumKinds]float64
	)
	for _, a := range agents {
		count[a.Kind]++
		if a.Starving {
			starving[a.Kind]++
		}
		plant[a.Kind] += a.PlantCalories
		meat[a.Kind] += a.CarcassCalories
		avg[a.Kind] += a.AvgDailyCalories
	}

	for k := components.Kind(0); k < components.NumKinds; k++ {
		if count[k] == 0 {
			continue
		}
		slog.Info("run summary",
			"species", k.String(),
			"agents", count[k],
			"starving", starving[k],
			"avg_daily_calories", humanize.Comma(int64(avg[k]/float64(count[k]))),
			"plant_calories", humanize.SI(plant[k], "cal"),
			"carcass_calories", humanize.SI(meat[k], "cal"),
		)
	}
	slog.Info("run complete",
		"seed", w.seed,
		"days", w.dayIndex,
		"elapsed", time.Since(w.started).Round(time.Millisecond).String(),
		"output_dir", w.outputManager.Dir(),
	)
}
