package systems

import (
	"testing"

	"github.com/pthm-cable/hominids/components"
	"github.com/pthm-cable/hominids/config"
)

func TestPlantTieBreakIsUniform(t *testing.T) {
	records := []config.PlantRecord{
		plantRecord(1, 50, 10, 5, 1, 1),
		plantRecord(2, 50, 10, 5, 1, 1),
	}
	r := newRig(t, 10, 10, records, testParams())
	a := r.addAgent(components.KindBoisei, components.Capabilities{}, components.Cell{X: 4, Y: 4})

	const trials = 4000
	var counts [2]int
	for i := 0; i < trials; i++ {
		o, ok := r.fs.bestPlant(a, 1)
		if !ok {
			t.Fatal("expected a visible plant")
		}
		if o.cell != *a.Pos {
			t.Fatalf("picked %v, want the forager's own cell", o.cell)
		}
		counts[o.index]++
	}
	for i, n := range counts {
		frac := float64(n) / trials
		if frac < 0.45 || frac > 0.55 {
			t.Errorf("species %d chosen %.3f of the time, want about 0.5", i+1, frac)
		}
	}
}

func TestPlantChoicePrefersRateThenDistance(t *testing.T) {
	records := []config.PlantRecord{
		plantRecord(1, 0, 10, 5, 1, 1),
		plantRecord(2, 0, 10, 3, 1, 1),
	}
	r := newRig(t, 10, 10, records, testParams())
	a := r.addAgent(components.KindBoisei, components.Capabilities{}, components.Cell{X: 0, Y: 0})

	// Richer species one cell away across the wrap, poorer one underfoot.
	rich := components.Cell{X: 9, Y: 0}
	i0 := rich.Index(10) * 2
	r.plants.Res[i0], r.plants.Cap[i0] = 5, 5
	i1 := (components.Cell{}).Index(10)*2 + 1
	r.plants.Res[i1], r.plants.Cap[i1] = 5, 5

	if got := r.fs.Step(a, summer); got != OutcomeAtePlant {
		t.Fatalf("outcome = %v, want ate_plant", got)
	}
	if *a.Pos != rich {
		t.Errorf("pos = %v, want %v", *a.Pos, rich)
	}
	if a.Diet.CaloriesToday != 50 {
		t.Errorf("calories = %v, want 50", a.Diet.CaloriesToday)
	}
	if got := r.plants.Amount(rich, 0); got != 4 {
		t.Errorf("abundance after one feeding unit = %v, want 4", got)
	}
	tally := a.Activity.Cells[rich]
	if tally.Travel != 1 || tally.Eating != 1 {
		t.Errorf("tally = %+v, want one travel and one eating minute", tally)
	}
}

func TestMeatWinsReturnRateTies(t *testing.T) {
	tests := []struct {
		name       string
		meatCalPer float64
		want       Outcome
	}{
		{"tie goes to meat", 4, OutcomeAteMeat},
		{"strictly richer plant", 3.9, OutcomeAtePlant},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := testParams()
			p.MeatCaloriesPerGram = tt.meatCalPer
			// Plant return rate = 100 g × 2 cal/g / 1 min = 200 = 4 × 50.
			r := newRig(t, 10, 10, []config.PlantRecord{plantRecord(1, 10, 100, 2, 1, 1)}, p)
			cell := components.Cell{X: 2, Y: 2}
			a := r.addAgent(components.KindErgaster, meatEater, cell)
			r.carcasses.Add(CarcassSmall, cell)

			if got := r.fs.Step(a, summer); got != tt.want {
				t.Errorf("outcome = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGutNeverExceedsCapacity(t *testing.T) {
	r := newRig(t, 10, 10, []config.PlantRecord{plantRecord(1, 10, 100, 2, 1, 1)}, testParams())
	a := r.addAgent(components.KindBoisei, components.Capabilities{}, components.Cell{X: 5, Y: 5})
	a.Forager.Traits.BellyCapacity = 250

	for m := 0; m < 10; m++ {
		r.fs.Step(a, summer)
		if a.Diet.Gut > 250 {
			t.Fatalf("minute %d: gut %v above capacity", m, a.Diet.Gut)
		}
	}
	if a.Diet.Gut != 250 {
		t.Errorf("gut = %v, want 250", a.Diet.Gut)
	}
	if a.Diet.CaloriesToday != 500 {
		t.Errorf("calories = %v, want 500", a.Diet.CaloriesToday)
	}
}

func TestToolPlantsNeedDigging(t *testing.T) {
	rec := plantRecord(1, 10, 100, 2, 1, 1)
	rec.ToolsRequired = true
	r := newRig(t, 10, 10, []config.PlantRecord{rec}, testParams())
	digger := r.addAgent(components.KindBoisei, components.Capabilities{CanDig: true}, components.Cell{X: 1, Y: 1})
	other := r.addAgent(components.KindBoisei, components.Capabilities{}, components.Cell{X: 6, Y: 6})

	if got := r.fs.Step(digger, summer); got != OutcomeAtePlant {
		t.Errorf("digger: %v, want ate_plant", got)
	}
	if digger.Ledger.RootBySeason[1] != 200 || digger.Ledger.NonRootBySeason[1] != 0 {
		t.Errorf("root split = %v / %v", digger.Ledger.RootBySeason[1], digger.Ledger.NonRootBySeason[1])
	}
	if got := r.fs.Step(other, summer); got != OutcomeWandered {
		t.Errorf("non-digger: %v, want wandered", got)
	}
}

func TestRestingWhenNoActiveMinutes(t *testing.T) {
	r := newRig(t, 10, 10, nil, testParams())
	a := r.addAgent(components.KindBoisei, components.Capabilities{}, components.Cell{X: 1, Y: 1})
	a.Diet.ActiveRemaining = 0

	if got := r.fs.Step(a, summer); got != OutcomeResting {
		t.Errorf("outcome = %v, want resting", got)
	}
	if a.Diet.ActiveRemaining != 0 || *a.Pos != (components.Cell{X: 1, Y: 1}) {
		t.Error("resting forager changed state")
	}
}

func TestWanderStaysOnRing(t *testing.T) {
	r := newRig(t, 20, 20, nil, testParams())
	start := components.Cell{X: 10, Y: 10}
	a := r.addAgent(components.KindBoisei, components.Capabilities{}, start)

	for i := 0; i < 200; i++ {
		*a.Pos = start
		r.occ.Clear()
		r.occ.Insert(a.occupant(), start)
		if got := r.fs.Step(a, summer); got != OutcomeWandered {
			t.Fatalf("outcome = %v, want wandered", got)
		}
		dx, dy := r.land.Delta(start, *a.Pos)
		if absInt(dx) > 1 || absInt(dy) > 1 || (dx == 0 && dy == 0) {
			t.Fatalf("wander step (%d,%d) is not a single unit step", dx, dy)
		}
	}
}

func TestProspectMovesTowardFood(t *testing.T) {
	// Invisible plants are never eaten but still draw the forager.
	records := []config.PlantRecord{plantRecord(1, 0, 10, 5, 1, 0)}
	r := newRig(t, 10, 10, records, testParams())
	a := r.addAgent(components.KindBoisei, components.Capabilities{}, components.Cell{X: 5, Y: 5})
	food := components.Cell{X: 6, Y: 5}
	i := food.Index(10)
	r.plants.Res[i], r.plants.Cap[i] = 3, 3

	// Visibility is zero, so the prospect is zero too: wandering.
	if got := r.fs.Step(a, summer); got != OutcomeWandered {
		t.Fatalf("outcome = %v, want wandered", got)
	}

	r.plants.Catalog.Species[0].Visibility = 0.000001
	*a.Pos = components.Cell{X: 5, Y: 5}
	r.occ.Clear()
	r.occ.Insert(a.occupant(), *a.Pos)
	got := r.fs.Step(a, summer)
	if got == OutcomeAtePlant {
		// The one-in-a-million detection draw succeeded; still moved onto the food.
		got = OutcomeMoved
	}
	if got != OutcomeMoved || *a.Pos != food {
		t.Errorf("outcome = %v at %v, want moved to %v", got, *a.Pos, food)
	}
}

func TestStarvation(t *testing.T) {
	traits := testTraits() // 3500 × 0.5 = 1750 threshold, 14-day window
	below, above := 1000.0, 2000.0

	fill := func(n int, v float64) []float64 {
		h := make([]float64, n)
		for i := range h {
			h[i] = v
		}
		return h
	}
	tests := []struct {
		name    string
		history []float64
		want    bool
	}{
		{"window not full", fill(13, below), false},
		{"all fourteen below", fill(14, below), true},
		{"one day above", append(fill(13, below), above), false},
		{"thirteen above one below", append(fill(13, above), below), false},
		{"old good days outside window", append(fill(5, above), fill(14, below)...), true},
		{"exactly at threshold", fill(14, 1750), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := &components.Diet{History: tt.history}
			if got := IsStarving(d, traits); got != tt.want {
				t.Errorf("IsStarving() = %v, want %v", got, tt.want)
			}
		})
	}
}
