package systems

import "github.com/pthm-cable/hominids/components"

type siteCount struct {
	cell  components.Cell
	count int
}

// FindNestSite chooses where the forager spends the night. Group nesters
// join peers of their kind when enough of them share a cell and otherwise
// fall back to the nearest nesting tree.
func (s *ForagingSystem) FindNestSite(a Agent) (components.Cell, bool) {
	if a.Forager.Caps.GroupNesting && s.Peers != nil {
		if site, ok := s.groupNestSite(a); ok {
			return site, true
		}
	}
	return s.IndividualNestSite(*a.Pos)
}

// IndividualNestSite returns the nearest cell within the scan radius that
// holds a nesting tree with positive abundance. Distance is raw Manhattan:
// the search stops at the grid edge instead of wrapping. Cells are scanned
// x then y and the first one found wins ties.
func (s *ForagingSystem) IndividualNestSite(pos components.Cell) (components.Cell, bool) {
	r := s.Params.NestScanDistance
	var (
		best  components.Cell
		found bool
	)
	bestDist := r + 1
	for dx := -r; dx <= r; dx++ {
		span := r - absInt(dx)
		for dy := -span; dy <= span; dy++ {
			d := absInt(dx) + absInt(dy)
			if d >= bestDist {
				continue
			}
			c := components.Cell{X: pos.X + dx, Y: pos.Y + dy}
			if !s.Land.Contains(c) {
				continue
			}
			if s.Plants.HasNestingTree(c) {
				best, bestDist, found = c, d, true
			}
		}
	}
	return best, found
}

func (s *ForagingSystem) groupNestSite(a Agent) (components.Cell, bool) {
	s.peerCells = s.Peers.Peers(a.Forager.Kind, a.Forager.ID, s.peerCells[:0])
	if len(s.peerCells) == 0 {
		return components.Cell{}, false
	}

	// Count peers per cell, keeping first-appearance order.
	s.siteCount = s.siteCount[:0]
	for _, c := range s.peerCells {
		seen := false
		for i := range s.siteCount {
			if s.siteCount[i].cell == c {
				s.siteCount[i].count++
				seen = true
				break
			}
		}
		if !seen {
			s.siteCount = append(s.siteCount, siteCount{cell: c, count: 1})
		}
	}

	threshold := int(float64(len(s.peerCells)) * a.Forager.Traits.GroupNestingThreshold)
	var (
		best  components.Cell
		found bool
	)
	bestDist := 0
	for _, sc := range s.siteCount {
		if sc.count < threshold {
			continue
		}
		d := s.Land.TorusManhattan(*a.Pos, sc.cell)
		if !found || d < bestDist {
			best, bestDist, found = sc.cell, d, true
		}
	}
	return best, found
}
