package telemetry

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pthm-cable/hominids/components"
	"github.com/pthm-cable/hominids/systems"
)

// AgentRecord is one row of agents.csv and of the archive's agents table.
type AgentRecord struct {
	ID      uint32 `csv:"agent_id" db:"agent_id"`
	Label   string `csv:"label" db:"label"`
	Species string `csv:"species" db:"species"`
	Options string `csv:"options" db:"options"`

	X     int `csv:"x" db:"x"`
	Y     int `csv:"y" db:"y"`
	NestX int `csv:"nest_x" db:"nest_x"` // -1 when never nested
	NestY int `csv:"nest_y" db:"nest_y"`

	Days             int     `csv:"days" db:"days"`
	AvgDailyCalories float64 `csv:"avg_daily_calories" db:"avg_daily_calories"`
	Starving         bool    `csv:"starving" db:"starving"`
	PlantCalories    float64 `csv:"plant_calories" db:"plant_calories"`
	CarcassCalories  float64 `csv:"carcass_calories" db:"carcass_calories"`
	RootCalories     float64 `csv:"root_calories" db:"root_calories"`
	EatingMinutes    int     `csv:"eating_minutes" db:"eating_minutes"`
	TravelMinutes    int     `csv:"travel_minutes" db:"travel_minutes"`

	Kind   components.Kind   `csv:"-" db:"-"`
	Ledger components.Ledger `csv:"-" db:"-"`
}

// NewAgentRecord summarises one forager.
func NewAgentRecord(f *components.Forager, options string, pos components.Cell, nest *components.Nest,
	diet *components.Diet, ledger *components.Ledger, activity *components.Activity, starving bool) AgentRecord {
	r := AgentRecord{
		ID:               f.ID,
		Label:            fmt.Sprintf("%s%d", f.Kind.Prefix(), f.ID),
		Species:          f.Kind.String(),
		Options:          options,
		X:                pos.X,
		Y:                pos.Y,
		NestX:            -1,
		NestY:            -1,
		Days:             diet.DaysRecorded,
		AvgDailyCalories: diet.AverageDaily(),
		Starving:         starving,
		Kind:             f.Kind,
		Ledger:           *ledger,
	}
	if nest.HasSite {
		r.NestX, r.NestY = nest.Site.X, nest.Site.Y
	}
	r.PlantCalories, r.CarcassCalories = ledger.Totals()
	for s := 0; s < components.NumSeasons; s++ {
		r.RootCalories += ledger.RootBySeason[s]
	}
	for _, t := range activity.Cells {
		r.EatingMinutes += t.Eating
		r.TravelMinutes += t.Travel
	}
	return r
}

// CarcassRecord is one row of carcasses.csv: a live carcass at midnight
// with the foragers standing on it.
type CarcassRecord struct {
	Year      int     `csv:"year"`
	Day       int     `csv:"day"`
	ID        uint32  `csv:"carcass_id"`
	Size      string  `csv:"size"`
	X         int     `csv:"x"`
	Y         int     `csv:"y"`
	Total     float64 `csv:"total_g"`
	Remaining float64 `csv:"remaining_g"`
	Present   int     `csv:"present"`
	Foragers  string  `csv:"forager_ids"` // semicolon separated
}

// CarcassRoster snapshots carcasses after the midnight presence refresh.
func CarcassRoster(year, day int, carcasses []*systems.Carcass) []CarcassRecord {
	rows := make([]CarcassRecord, 0, len(carcasses))
	for _, c := range carcasses {
		ids := make([]string, len(c.Present))
		for i, id := range c.Present {
			ids[i] = strconv.FormatUint(uint64(id), 10)
		}
		rows = append(rows, CarcassRecord{
			Year:      year,
			Day:       day,
			ID:        c.ID,
			Size:      c.Size.String(),
			X:         c.Cell.X,
			Y:         c.Cell.Y,
			Total:     c.Total,
			Remaining: c.Remaining,
			Present:   len(c.Present),
			Foragers:  strings.Join(ids, ";"),
		})
	}
	return rows
}

// CellRecord is one row of spatial.csv: per-species activity in a cell.
type CellRecord struct {
	GridCode int    `csv:"gridcode"`
	X        int    `csv:"x"`
	Y        int    `csv:"y"`
	Zone     string `csv:"zone"`

	BEating int `csv:"B_eating"`
	BTravel int `csv:"B_travel"`
	BScan   int `csv:"B_scan"`
	BNests  int `csv:"B_nests"`
	EEating int `csv:"E_eating"`
	ETravel int `csv:"E_travel"`
	EScan   int `csv:"E_scan"`
	ENests  int `csv:"E_nests"`

	PlantAbundance float64 `csv:"plant_abundance"`
}

// SpatialGrid accumulates forager activity per cell.
type SpatialGrid struct {
	w, h  int
	cells []CellRecord
}

// NewSpatialGrid creates a grid; zone names each cell.
func NewSpatialGrid(w, h int, zone func(c components.Cell) string) *SpatialGrid {
	g := &SpatialGrid{w: w, h: h, cells: make([]CellRecord, w*h)}
	// x outer, y inner, as in the gridcode
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			c := components.Cell{X: x, Y: y}
			g.cells[c.Index(w)] = CellRecord{GridCode: x*h + y, X: x, Y: y, Zone: zone(c)}
		}
	}
	return g
}

// AddActivity folds one forager's tallies into the grid.
func (g *SpatialGrid) AddActivity(kind components.Kind, a *components.Activity) {
	for c, t := range a.Cells {
		r := &g.cells[c.Index(g.w)]
		switch kind {
		case components.KindBoisei:
			r.BEating += t.Eating
			r.BTravel += t.Travel
			r.BScan += t.Eating + t.Travel
			r.BNests += t.Nests
		case components.KindErgaster:
			r.EEating += t.Eating
			r.ETravel += t.Travel
			r.EScan += t.Eating + t.Travel
			r.ENests += t.Nests
		}
	}
}

// SetAbundance records the plant abundance of a cell.
func (g *SpatialGrid) SetAbundance(c components.Cell, v float64) {
	g.cells[c.Index(g.w)].PlantAbundance = v
}

// Records returns the rows in gridcode order.
func (g *SpatialGrid) Records() []CellRecord {
	out := make([]CellRecord, 0, len(g.cells))
	for x := 0; x < g.w; x++ {
		for y := 0; y < g.h; y++ {
			out = append(out, g.cells[components.Cell{X: x, Y: y}.Index(g.w)])
		}
	}
	return out
}
