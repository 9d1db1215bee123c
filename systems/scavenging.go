package systems

import "github.com/pthm-cable/hominids/components"

// scavengeable reports whether a forager would consider a carcass this minute.
func scavengeable(a Agent, c *Carcass) bool {
	return a.Forager.Caps.CanEatMeat && !c.Depleted() && !a.Scavenge.IsIgnored(c.ID)
}

// bestCarcass gathers sighted and announced carcasses and picks one: the
// awaited carcass if still a candidate, else the one with the most meat.
func (s *ForagingSystem) bestCarcass(a Agent) *Carcass {
	if !a.Forager.Caps.CanEatMeat {
		return nil
	}
	sc := a.Scavenge

	found := s.Carcasses.Near(*a.Pos, s.Params.DetectionRange, s.nearby[:0])
	cands := found[:0]
	for _, c := range found {
		if scavengeable(a, c) {
			cands = append(cands, c)
		}
	}
	if called := s.Calls.Nearest(*a.Pos, s.Params.Earshot, s.Land, s.Carcasses, sc.IsIgnored); called != nil {
		dup := false
		for _, c := range cands {
			if c == called {
				dup = true
				break
			}
		}
		if !dup {
			cands = append(cands, called)
		}
	}
	s.nearby = cands

	if sc.State == components.ScavengeWaiting {
		for _, c := range cands {
			if c.ID == sc.Carcass {
				return c
			}
		}
		// The awaited carcass is gone.
		sc.StopWaiting()
	}

	var best *Carcass
	for _, c := range cands {
		if best == nil || c.Remaining > best.Remaining {
			best = c
		}
	}
	return best
}

// scavenge runs the cooperative scavenging protocol against one carcass.
func (s *ForagingSystem) scavenge(a Agent, c *Carcass, cal Calendar) Outcome {
	sc := a.Scavenge
	caps := a.Forager.Caps

	// A non-cooperator drops an understaffed carcass as soon as it picks it.
	if c.Size != CarcassSmall && !caps.Cooperates && s.headcount(a, c) < s.Params.RequiredCooperators {
		sc.Ignore(c.ID)
		return OutcomeGaveUp
	}

	if *a.Pos != c.Cell {
		s.moveTo(a, s.Land.StepToward(*a.Pos, c.Cell))
		return OutcomeApproached
	}

	n := s.Occupancy.CountKind(c.Cell, a.Forager.Kind)
	if n == 1 && caps.Cooperates {
		s.Calls.Post(c.ID)
	}

	switch {
	case c.Size == CarcassSmall:
		return s.eatMeat(a, c, cal)
	case n >= s.Params.RequiredCooperators:
		if sc.IsWaitingFor(c.ID) {
			sc.StopWaiting()
		}
		return s.eatMeat(a, c, cal)
	case caps.Cooperates && sc.IsWaitingFor(c.ID):
		sc.Timer--
		if sc.Timer <= 0 {
			sc.Ignore(c.ID)
			return OutcomeGaveUp
		}
		return OutcomeWaiting
	case caps.Cooperates && sc.State == components.ScavengeIdle:
		sc.StartWaiting(c.ID, s.Params.WaitMinutes)
		return OutcomeWaiting
	}
	sc.Ignore(c.ID)
	return OutcomeGaveUp
}

// headcount is the number of same-kind foragers at the carcass once a
// arrives there.
func (s *ForagingSystem) headcount(a Agent, c *Carcass) int {
	n := s.Occupancy.CountKind(c.Cell, a.Forager.Kind)
	if *a.Pos != c.Cell {
		n++
	}
	return n
}

// eatMeat takes one minute's share of a carcass. Medium and large carcasses
// split the per-minute rate among everyone at the cell.
func (s *ForagingSystem) eatMeat(a Agent, c *Carcass, cal Calendar) Outcome {
	grams := s.Params.GramsPerMinute
	if c.Size != CarcassSmall {
		if n := s.Occupancy.Count(c.Cell); n > 0 {
			grams /= float64(n)
		}
	}
	grams = min(grams, c.Remaining, a.Diet.GutSpace(a.Forager.Traits.BellyCapacity))
	if grams <= 0 {
		return OutcomeSated
	}

	eaten := s.Carcasses.Eat(c, grams)
	calories := eaten * s.Params.MeatCaloriesPerGram
	a.Diet.Gut += eaten
	a.Diet.CaloriesToday += calories
	a.Ledger.AddCarcass(cal.Season, cal.Day, calories)
	a.Activity.Eat(c.Cell)
	return OutcomeAteMeat
}
