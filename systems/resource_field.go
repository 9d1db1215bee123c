package systems

import (
	"github.com/pthm-cable/hominids/components"
	"github.com/pthm-cable/hominids/config"
)

// GrowthParams holds plant regrowth parameters.
type GrowthParams struct {
	InitialFraction float64 // floor outside fruiting, starting abundance
	FinalFraction   float64 // logistic target during fruiting
	GrowthRate      float64 // per day
	DecayRate       float64 // per day
	ReseedFraction  float64 // restored when abundance is exactly zero
}

// GrowthParamsFromConfig converts growth config.
func GrowthParamsFromConfig(g config.GrowthConfig) GrowthParams {
	return GrowthParams{
		InitialFraction: g.InitialFoodFraction,
		FinalFraction:   g.FinalFoodFraction,
		GrowthRate:      g.GrowthRate,
		DecayRate:       g.DecayRate,
		ReseedFraction:  g.ReseedFraction,
	}
}

// Available is a plant food present in a cell this season.
type Available struct {
	Index   int // catalog index
	Species *PlantSpecies
	Amount  float64
}

// ResourceField holds per-cell plant abundance for every species.
// Slices are indexed cell*numSpecies + species.
type ResourceField struct {
	W, H    int
	Catalog *Catalog

	// Current abundance, consumed by foragers and regrown daily
	Res []float64
	// Carrying capacity from the cell's zone
	Cap []float64

	Params GrowthParams

	n int
}

// NewResourceField sizes capacities from the landscape zones and starts
// every cell at capacity × initial fraction.
func NewResourceField(land *Landscape, catalog *Catalog, p GrowthParams) *ResourceField {
	n := catalog.Len()
	rf := &ResourceField{
		W: land.W, H: land.H,
		Catalog: catalog,
		Res:     make([]float64, land.Cells()*n),
		Cap:     make([]float64, land.Cells()*n),
		Params:  p,
		n:       n,
	}
	for y := 0; y < land.H; y++ {
		for x := 0; x < land.W; x++ {
			c := components.Cell{X: x, Y: y}
			zone := land.ZoneAt(c)
			base := c.Index(land.W) * n
			for s, sp := range catalog.Species {
				rf.Cap[base+s] = sp.Density[zone]
				rf.Res[base+s] = sp.Density[zone] * p.InitialFraction
			}
		}
	}
	return rf
}

func (rf *ResourceField) idx(c components.Cell, species int) int {
	return c.Index(rf.W)*rf.n + species
}

// Amount returns the current abundance.
func (rf *ResourceField) Amount(c components.Cell, species int) float64 {
	return rf.Res[rf.idx(c, species)]
}

// Capacity returns the carrying capacity.
func (rf *ResourceField) Capacity(c components.Cell, species int) float64 {
	return rf.Cap[rf.idx(c, species)]
}

// DailyUpdate regrows fruiting species logistically toward
// capacity × final fraction and decays the others toward
// capacity × initial fraction. dayInSeason and daysInSeason are carried
// for callers that log progress through a season.
func (rf *ResourceField) DailyUpdate(season, dayInSeason, daysInSeason int) {
	p := rf.Params
	decay := 1 - p.DecayRate

	for s, sp := range rf.Catalog.Species {
		fruiting := sp.FruitsIn(season)
		for i := s; i < len(rf.Res); i += rf.n {
			capacity := rf.Cap[i]
			if capacity <= 0 {
				continue
			}
			cur := rf.Res[i]
			var next float64
			if fruiting {
				target := capacity * p.FinalFraction
				if cur == 0 {
					next = min(capacity*p.ReseedFraction, target)
				} else {
					next = min(cur+p.GrowthRate*cur*(1-cur/target), target)
				}
			} else {
				next = max(cur*decay, capacity*p.InitialFraction)
			}
			mustf(next >= 0, "negative abundance %v for %s", next, sp.Name)
			rf.Res[i] = next
		}
	}
}

// Consume removes feeding units from a cell, floored at zero.
func (rf *ResourceField) Consume(c components.Cell, species int, units float64) {
	i := rf.idx(c, species)
	rf.Res[i] = max(rf.Res[i]-units, 0)
}

// AvailableAt appends the species fruiting in season with positive
// abundance at c, in catalog order.
func (rf *ResourceField) AvailableAt(c components.Cell, season int, dst []Available) []Available {
	base := c.Index(rf.W) * rf.n
	for s, sp := range rf.Catalog.Species {
		amount := rf.Res[base+s]
		if amount > 0 && sp.FruitsIn(season) {
			dst = append(dst, Available{Index: s, Species: sp, Amount: amount})
		}
	}
	return dst
}

// HasNestingTree reports whether any nesting-tree species is present at c.
func (rf *ResourceField) HasNestingTree(c components.Cell) bool {
	base := c.Index(rf.W) * rf.n
	for s, sp := range rf.Catalog.Species {
		if sp.NestingTree && rf.Res[base+s] > 0 {
			return true
		}
	}
	return false
}

// Total returns the summed abundance of a species over all cells.
func (rf *ResourceField) Total(species int) float64 {
	var sum float64
	for i := species; i < len(rf.Res); i += rf.n {
		sum += rf.Res[i]
	}
	return sum
}

// CellTotal returns the summed abundance of all species at c.
func (rf *ResourceField) CellTotal(c components.Cell) float64 {
	base := c.Index(rf.W) * rf.n
	var sum float64
	for s := 0; s < rf.n; s++ {
		sum += rf.Res[base+s]
	}
	return sum
}
