package systems

import (
	"math/rand"

	"github.com/pthm-cable/hominids/components"
	"github.com/pthm-cable/hominids/config"
)

// CarcassSize is the size category of a carcass.
type CarcassSize uint8

const (
	CarcassSmall CarcassSize = iota
	CarcassMedium
	CarcassLarge
	NumCarcassSizes
)

// String returns the size name.
func (s CarcassSize) String() string {
	switch s {
	case CarcassSmall:
		return "small"
	case CarcassMedium:
		return "medium"
	case CarcassLarge:
		return "large"
	}
	return "unknown"
}

// Carcass is an ephemeral meat source at a fixed cell.
type Carcass struct {
	ID        uint32
	Size      CarcassSize
	Total     float64 // grams at creation
	Remaining float64 // grams left, never increases
	Cell      components.Cell
	Present   []uint32 // forager IDs co-located at the last presence refresh
}

// Depleted reports whether nothing is left to eat.
func (c *Carcass) Depleted() bool {
	return c.Remaining <= 0
}

// CarcassParams holds appearance and size parameters.
type CarcassParams struct {
	Appearance  [NumZones]float64        // daily appearance probability per cell
	SmallBelow  [NumZones]float64        // draw < this → small
	MediumBelow [NumZones]float64        // draw < this → medium, else large
	Weights     [NumCarcassSizes]float64 // grams by size
}

// CarcassParamsFromConfig converts carcass config into cumulative thresholds.
func CarcassParamsFromConfig(cc config.CarcassConfig) CarcassParams {
	var p CarcassParams
	p.Appearance = [NumZones]float64{cc.Appearance.Channel, cc.Appearance.Flooded, cc.Appearance.Unflooded}
	for z, d := range [NumZones]config.SizeDistribution{cc.Sizes.Channel, cc.Sizes.Flooded, cc.Sizes.Unflooded} {
		p.SmallBelow[z] = d.Small
		p.MediumBelow[z] = d.Small + d.Medium
	}
	p.Weights = [NumCarcassSizes]float64{cc.Weights.Small, cc.Weights.Medium, cc.Weights.Large}
	return p
}

// CarcassField holds the active carcass population.
type CarcassField struct {
	Params CarcassParams

	list   []*Carcass
	byID   map[uint32]*Carcass
	nextID uint32
}

// NewCarcassField creates an empty carcass layer.
func NewCarcassField(p CarcassParams) *CarcassField {
	return &CarcassField{
		Params: p,
		byID:   make(map[uint32]*Carcass),
		nextID: 1,
	}
}

// Add places a new carcass of the given size at c. IDs start at 1.
func (cf *CarcassField) Add(size CarcassSize, c components.Cell) *Carcass {
	w := cf.Params.Weights[size]
	carcass := &Carcass{ID: cf.nextID, Size: size, Total: w, Remaining: w, Cell: c}
	cf.nextID++
	cf.list = append(cf.list, carcass)
	cf.byID[carcass.ID] = carcass
	return carcass
}

// SpawnCheck draws once per cell against the zone's appearance probability
// and creates a carcass of a zone-weighted size on success. Cells are
// visited x outer, y inner. Returns the number created.
func (cf *CarcassField) SpawnCheck(land *Landscape, rng *rand.Rand) int {
	created := 0
	for x := 0; x < land.W; x++ {
		for y := 0; y < land.H; y++ {
			c := components.Cell{X: x, Y: y}
			zone := land.ZoneAt(c)
			if rng.Float64() >= cf.Params.Appearance[zone] {
				continue
			}
			cf.Add(cf.drawSize(zone, rng), c)
			created++
		}
	}
	return created
}

func (cf *CarcassField) drawSize(zone Zone, rng *rand.Rand) CarcassSize {
	r := rng.Float64()
	switch {
	case r < cf.Params.SmallBelow[zone]:
		return CarcassSmall
	case r < cf.Params.MediumBelow[zone]:
		return CarcassMedium
	}
	return CarcassLarge
}

// Near appends non-depleted carcasses within raw (non-wrapping) Manhattan
// distance dist of pos.
func (cf *CarcassField) Near(pos components.Cell, dist int, dst []*Carcass) []*Carcass {
	for _, c := range cf.list {
		if c.Depleted() {
			continue
		}
		if Manhattan(pos, c.Cell) <= dist {
			dst = append(dst, c)
		}
	}
	return dst
}

// Get returns the carcass with the given ID, or nil once pruned.
func (cf *CarcassField) Get(id uint32) *Carcass {
	return cf.byID[id]
}

// Eat removes up to grams from a carcass and returns the amount removed.
func (cf *CarcassField) Eat(c *Carcass, grams float64) float64 {
	actual := min(grams, c.Remaining)
	if actual <= 0 {
		return 0
	}
	c.Remaining -= actual
	mustf(c.Remaining >= 0, "carcass %d remaining mass %v", c.ID, c.Remaining)
	return actual
}

// RefreshPresence rebuilds every carcass's co-located forager set from the
// occupancy grid. Only exact cell matches count.
func (cf *CarcassField) RefreshPresence(occ *OccupancyGrid) {
	for _, c := range cf.list {
		c.Present = c.Present[:0]
		for _, o := range occ.At(c.Cell) {
			c.Present = append(c.Present, o.ID)
		}
	}
}

// PruneDepleted drops carcasses with no mass left. Returns the number removed.
func (cf *CarcassField) PruneDepleted() int {
	kept := cf.list[:0]
	removed := 0
	for _, c := range cf.list {
		if c.Depleted() {
			delete(cf.byID, c.ID)
			removed++
			continue
		}
		kept = append(kept, c)
	}
	for i := len(kept); i < len(cf.list); i++ {
		cf.list[i] = nil
	}
	cf.list = kept
	return removed
}

// All returns the active carcasses in creation order.
func (cf *CarcassField) All() []*Carcass {
	return cf.list
}

// Len returns the number of active carcasses.
func (cf *CarcassField) Len() int {
	return len(cf.list)
}

// CountBySize returns active carcass counts per size.
func (cf *CarcassField) CountBySize() [NumCarcassSizes]int {
	var counts [NumCarcassSizes]int
	for _, c := range cf.list {
		counts[c.Size]++
	}
	return counts
}
