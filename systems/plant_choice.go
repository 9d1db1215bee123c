package systems

import (
	"sort"

	"github.com/pthm-cable/hominids/components"
)

type plantOption struct {
	cell     components.Cell
	index    int
	species  *PlantSpecies
	distance float64
}

// scanPlants appends the plant foods the forager notices this minute in its
// 3×3 neighbourhood. Every edible species present gets one detection draw.
func (s *ForagingSystem) scanPlants(a Agent, season int, dst []plantOption) []plantOption {
	kind, canDig := a.Forager.Kind, a.Forager.Caps.CanDig
	for _, c := range s.Land.Neighborhood(*a.Pos) {
		s.avail = s.Plants.AvailableAt(c, season, s.avail[:0])
		for _, av := range s.avail {
			if !av.Species.EdibleBy(kind, canDig) {
				continue
			}
			if s.rng.Float64() < av.Species.Visibility {
				dst = append(dst, plantOption{
					cell:     c,
					index:    av.Index,
					species:  av.Species,
					distance: s.Land.Distance(*a.Pos, c),
				})
			}
		}
	}
	return dst
}

// bestPlant picks the highest-return visible plant, nearest first among
// equals, uniformly at random among exact ties.
func (s *ForagingSystem) bestPlant(a Agent, season int) (plantOption, bool) {
	opts := s.scanPlants(a, season, s.plantOpts[:0])
	s.plantOpts = opts
	if len(opts) == 0 || a.Diet.Gut >= a.Forager.Traits.BellyCapacity {
		return plantOption{}, false
	}

	sort.SliceStable(opts, func(i, j int) bool {
		if opts[i].species.ReturnRate != opts[j].species.ReturnRate {
			return opts[i].species.ReturnRate > opts[j].species.ReturnRate
		}
		return opts[i].distance < opts[j].distance
	})

	bestRate, bestDist := opts[0].species.ReturnRate, opts[0].distance
	s.ties = s.ties[:0]
	for i, o := range opts {
		if o.species.ReturnRate != bestRate || o.distance != bestDist {
			break
		}
		s.ties = append(s.ties, i)
	}
	return opts[s.ties[s.pick(len(s.ties))]], true
}

// eatPlant moves to the plant's cell if needed and eats one feeding unit.
// The cell loses one abundance unit whatever the grams absorbed.
func (s *ForagingSystem) eatPlant(a Agent, o plantOption, cal Calendar) Outcome {
	s.moveTo(a, o.cell)

	grams := min(o.species.FeedingUnit, a.Diet.GutSpace(a.Forager.Traits.BellyCapacity))
	if grams <= 0 {
		return OutcomeSated
	}
	calories := grams * o.species.CaloriesPerGram
	a.Diet.Gut += grams
	a.Diet.CaloriesToday += calories
	a.Ledger.AddPlant(cal.Season, cal.Day, calories, o.species.IsRoot())

	s.Plants.Consume(o.cell, o.index, 1)
	a.Activity.Eat(o.cell)
	return OutcomeAtePlant
}
