package systems

import (
	"github.com/pthm-cable/hominids/components"
	"github.com/pthm-cable/hominids/config"
)

// PlantSpecies is an immutable plant food description shared by all cells.
type PlantSpecies struct {
	ID              int
	Name            string
	Disabled        bool
	ToolsRequired   bool
	DiggingPhase    bool
	Edible          [components.NumKinds]bool
	Density         [NumZones]float64 // carrying capacity per zone
	NestingTree     bool
	Fruiting        [components.NumSeasons]bool
	FeedingUnit     float64 // grams per feeding unit
	CaloriesPerGram float64
	Visibility      float64 // detection probability per scan
	HandlingMinutes float64

	// ReturnRate is calories per minute of handling.
	ReturnRate float64
}

// NewPlantSpecies builds a species from a validated table row.
func NewPlantSpecies(r config.PlantRecord) *PlantSpecies {
	sp := &PlantSpecies{
		ID:              r.ID,
		Name:            r.Name,
		Disabled:        bool(r.Disabled),
		ToolsRequired:   bool(r.ToolsRequired),
		DiggingPhase:    bool(r.DiggingPhase),
		NestingTree:     bool(r.NestingTree),
		Fruiting:        r.Fruiting,
		FeedingUnit:     r.GramsPerUnit,
		CaloriesPerGram: r.CaloriesPerGram,
		Visibility:      r.Visibility,
		HandlingMinutes: r.HandlingMinutes,
	}
	sp.Edible[components.KindBoisei] = bool(r.EdibleByBoisei)
	sp.Edible[components.KindErgaster] = bool(r.EdibleByErgaster)
	sp.Density[ZoneChannel] = r.PerChannel
	sp.Density[ZoneFlooded] = r.PerFlooded
	sp.Density[ZoneUnflooded] = r.PerUnflooded
	if sp.HandlingMinutes > 0 {
		sp.ReturnRate = sp.FeedingUnit * sp.CaloriesPerGram / sp.HandlingMinutes
	}
	return sp
}

// FruitsIn reports whether the species bears food in a 1-based season.
func (sp *PlantSpecies) FruitsIn(season int) bool {
	if season < 1 || season > components.NumSeasons {
		return false
	}
	return sp.Fruiting[season-1]
}

// EdibleBy reports whether a forager of the given kind can eat this species.
func (sp *PlantSpecies) EdibleBy(kind components.Kind, canDig bool) bool {
	if !sp.Edible[kind] {
		return false
	}
	if sp.ToolsRequired && !canDig {
		return false
	}
	return !sp.Disabled
}

// IsRoot reports whether calories from this species count as dug roots.
func (sp *PlantSpecies) IsRoot() bool {
	return sp.ToolsRequired || sp.DiggingPhase
}

// Catalog is the ordered list of plant species.
type Catalog struct {
	Species []*PlantSpecies
	byID    map[int]int
}

// NewCatalog builds a catalog in table order.
func NewCatalog(records []config.PlantRecord) *Catalog {
	c := &Catalog{
		Species: make([]*PlantSpecies, len(records)),
		byID:    make(map[int]int, len(records)),
	}
	for i, r := range records {
		c.Species[i] = NewPlantSpecies(r)
		c.byID[r.ID] = i
	}
	return c
}

// Len returns the number of species.
func (c *Catalog) Len() int { return len(c.Species) }

// Index returns the catalog index of a species ID.
func (c *Catalog) Index(id int) (int, bool) {
	i, ok := c.byID[id]
	return i, ok
}
