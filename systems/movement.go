package systems

import "github.com/pthm-cable/hominids/components"

// Prospect is the expected caloric value of a cell for a forager: the sum
// of return rate × visibility over edible species available this season.
func (s *ForagingSystem) Prospect(a Agent, c components.Cell, season int) float64 {
	var total float64
	s.avail = s.Plants.AvailableAt(c, season, s.avail[:0])
	for _, av := range s.avail {
		if av.Species.EdibleBy(a.Forager.Kind, a.Forager.Caps.CanDig) {
			total += av.Species.ReturnRate * av.Species.Visibility
		}
	}
	return total
}

// move steps toward the most promising neighbouring cell, or wanders when
// nothing nearby has any prospect.
func (s *ForagingSystem) move(a Agent, season int) Outcome {
	var (
		cells    [9]components.Cell
		n        int
		bestVal  float64
		bestDist float64
	)
	for _, c := range s.Land.Neighborhood(*a.Pos) {
		v := s.Prospect(a, c, season)
		if v <= 0 {
			continue
		}
		d := s.Land.Distance(*a.Pos, c)
		switch {
		case v > bestVal:
			bestVal, bestDist = v, d
			cells[0], n = c, 1
		case v == bestVal && d < bestDist:
			bestDist = d
			cells[0], n = c, 1
		case v == bestVal && d == bestDist:
			cells[n] = c
			n++
		}
	}

	if n > 0 {
		s.moveTo(a, cells[s.pick(n)])
		return OutcomeMoved
	}
	s.wander(a)
	return OutcomeWandered
}

// wander picks a random cell on the ring at the wandering distance and
// takes one step toward it.
func (s *ForagingSystem) wander(a Agent) {
	wd := s.Params.WanderingDistance
	if wd <= 0 {
		return
	}
	side := 2*wd + 1
	ring := side*side - (side-2)*(side-2)
	k := s.rng.Intn(ring)

	var target components.Cell
	for dx := -wd; dx <= wd; dx++ {
		for dy := -wd; dy <= wd; dy++ {
			if absInt(dx) < wd && absInt(dy) < wd {
				continue
			}
			if k == 0 {
				target = s.Land.Wrap(a.Pos.X+dx, a.Pos.Y+dy)
			}
			k--
		}
	}
	s.moveTo(a, s.Land.StepToward(*a.Pos, target))
}
