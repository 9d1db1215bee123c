package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/hominids/components"
)

// Distribution summarises a sample of daily calorie totals.
type Distribution struct {
	N      int
	Mean   float64
	StdDev float64
	Min    float64
	P10    float64
	P50    float64
	P90    float64
	Max    float64
}

// Describe computes a Distribution. Quantiles use the empirical CDF.
// An empty sample yields the zero value; a single value has zero spread.
func Describe(values []float64) Distribution {
	n := len(values)
	if n == 0 {
		return Distribution{}
	}
	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	d := Distribution{
		N:    n,
		Mean: stat.Mean(sorted, nil),
		Min:  sorted[0],
		P10:  stat.Quantile(0.10, stat.Empirical, sorted, nil),
		P50:  stat.Quantile(0.50, stat.Empirical, sorted, nil),
		P90:  stat.Quantile(0.90, stat.Empirical, sorted, nil),
		Max:  sorted[n-1],
	}
	if n > 1 {
		d.StdDev = stat.StdDev(sorted, nil)
	}
	return d
}

// DayStats is one row of daily.csv.
type DayStats struct {
	DayIndex int `csv:"day_index"` // days since the run started, 1-based
	Year     int `csv:"year"`
	Day      int `csv:"day"`
	Season   int `csv:"season"`

	BoiseiCount       int     `csv:"boisei"`
	BoiseiCalMean     float64 `csv:"boisei_cal_mean"`
	BoiseiCalP10      float64 `csv:"boisei_cal_p10"`
	BoiseiCalP50      float64 `csv:"boisei_cal_p50"`
	BoiseiCalP90      float64 `csv:"boisei_cal_p90"`
	BoiseiStarving    int     `csv:"boisei_starving"`
	ErgasterCount     int     `csv:"ergaster"`
	ErgasterCalMean   float64 `csv:"ergaster_cal_mean"`
	ErgasterCalP10    float64 `csv:"ergaster_cal_p10"`
	ErgasterCalP50    float64 `csv:"ergaster_cal_p50"`
	ErgasterCalP90    float64 `csv:"ergaster_cal_p90"`
	ErgasterStarving  int     `csv:"ergaster_starving"`

	// Minutes spent by all foragers today
	PlantMinutes  int `csv:"plant_minutes"`
	MeatMinutes   int `csv:"meat_minutes"`
	WaitMinutes   int `csv:"wait_minutes"`
	TravelMinutes int `csv:"travel_minutes"`
	GaveUp        int `csv:"gave_up"`
	Nested        int `csv:"nested"`

	// Carcass layer after the midnight update
	CarcassesSmall   int `csv:"carcasses_small"`
	CarcassesMedium  int `csv:"carcasses_medium"`
	CarcassesLarge   int `csv:"carcasses_large"`
	CarcassesSpawned int `csv:"carcasses_spawned"`
	CarcassesPruned  int `csv:"carcasses_pruned"`

	PlantAbundance float64 `csv:"plant_abundance"`
}

// setSpecies fills the per-species columns.
func (s *DayStats) setSpecies(kind components.Kind, d Distribution, starving int) {
	switch kind {
	case components.KindBoisei:
		s.BoiseiCount = d.N
		s.BoiseiCalMean, s.BoiseiCalP10, s.BoiseiCalP50, s.BoiseiCalP90 = d.Mean, d.P10, d.P50, d.P90
		s.BoiseiStarving = starving
	case components.KindErgaster:
		s.ErgasterCount = d.N
		s.ErgasterCalMean, s.ErgasterCalP10, s.ErgasterCalP50, s.ErgasterCalP90 = d.Mean, d.P10, d.P50, d.P90
		s.ErgasterStarving = starving
	}
}

// LogValue implements slog.LogValuer for structured logging.
func (s DayStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("day_index", s.DayIndex),
		slog.Int("year", s.Year),
		slog.Int("day", s.Day),
		slog.Int("season", s.Season),
		slog.Int("boisei", s.BoiseiCount),
		slog.Float64("boisei_cal_mean", s.BoiseiCalMean),
		slog.Int("boisei_starving", s.BoiseiStarving),
		slog.Int("ergaster", s.ErgasterCount),
		slog.Float64("ergaster_cal_mean", s.ErgasterCalMean),
		slog.Int("ergaster_starving", s.ErgasterStarving),
		slog.Int("meat_minutes", s.MeatMinutes),
		slog.Int("plant_minutes", s.PlantMinutes),
		slog.Int("carcasses", s.CarcassesSmall+s.CarcassesMedium+s.CarcassesLarge),
		slog.Float64("plant_abundance", s.PlantAbundance),
	)
}

// SeasonSummary is one row of seasons.csv: the spread of mean daily
// calories across the foragers of a species within a season.
type SeasonSummary struct {
	Species     string  `csv:"species"`
	Season      int     `csv:"season"`
	Days        int     `csv:"days"`
	Agents      int     `csv:"agents"`
	Mean        float64 `csv:"mean_daily_calories"`
	StdDev      float64 `csv:"std_daily_calories"`
	Min         float64 `csv:"min"`
	P10         float64 `csv:"p10"`
	P50         float64 `csv:"p50"`
	P90         float64 `csv:"p90"`
	Max         float64 `csv:"max"`
	MeatShare   float64 `csv:"meat_share"`
	RootShare   float64 `csv:"root_share"`
	Requirement float64 `csv:"daily_requirement"`
	AboveNeed   float64 `csv:"fraction_meeting_requirement"`
}

// SummarizeSeasons builds per-species, per-season summaries from agent
// records. days holds the number of simulated days in each season.
func SummarizeSeasons(agents []AgentRecord, days [components.NumSeasons]int, requirement [components.NumKinds]float64) []SeasonSummary {
	var out []SeasonSummary
	for k := components.Kind(0); k < components.NumKinds; k++ {
		for s := 0; s < components.NumSeasons; s++ {
			if days[s] == 0 {
				continue
			}
			var daily []float64
			var plant, meat, root float64
			above := 0
			for i := range agents {
				a := &agents[i]
				if a.Kind != k {
					continue
				}
				total := a.Ledger.PlantBySeason[s] + a.Ledger.CarcassBySeason[s]
				v := total / float64(days[s])
				daily = append(daily, v)
				if v >= requirement[k] {
					above++
				}
				plant += a.Ledger.PlantBySeason[s]
				meat += a.Ledger.CarcassBySeason[s]
				root += a.Ledger.RootBySeason[s]
			}
			if len(daily) == 0 {
				continue
			}
			d := Describe(daily)
			row := SeasonSummary{
				Species:     k.String(),
				Season:      s + 1,
				Days:        days[s],
				Agents:      d.N,
				Mean:        d.Mean,
				StdDev:      d.StdDev,
				Min:         d.Min,
				P10:         d.P10,
				P50:         d.P50,
				P90:         d.P90,
				Max:         d.Max,
				Requirement: requirement[k],
				AboveNeed:   float64(above) / float64(d.N),
			}
			if plant+meat > 0 {
				row.MeatShare = meat / (plant + meat)
			}
			if plant > 0 {
				row.RootShare = root / plant
			}
			out = append(out, row)
		}
	}
	return out
}
