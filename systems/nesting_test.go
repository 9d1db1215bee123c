package systems

import (
	"testing"

	"github.com/pthm-cable/hominids/components"
	"github.com/pthm-cable/hominids/config"
)

func treeRig(t *testing.T, trees ...components.Cell) *rig {
	t.Helper()
	rec := plantRecord(1, 0, 10, 1, 1, 1)
	rec.NestingTree = true
	r := newRig(t, 30, 30, []config.PlantRecord{rec}, testParams())
	for _, c := range trees {
		i := c.Index(30)
		r.plants.Res[i], r.plants.Cap[i] = 1, 1
	}
	return r
}

func TestIndividualNestSite(t *testing.T) {
	tests := []struct {
		name  string
		trees []components.Cell
		want  components.Cell
		found bool
	}{
		{"none", nil, components.Cell{}, false},
		{"out of radius", []components.Cell{{X: 26, Y: 15}}, components.Cell{}, false},
		{"nearest wins", []components.Cell{{X: 20, Y: 15}, {X: 13, Y: 14}}, components.Cell{X: 13, Y: 14}, true},
		{"first scanned wins ties", []components.Cell{{X: 17, Y: 15}, {X: 13, Y: 15}}, components.Cell{X: 13, Y: 15}, true},
		{"across the wrap", []components.Cell{{X: 0, Y: 0}}, components.Cell{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := treeRig(t, tt.trees...)
			got, ok := r.fs.IndividualNestSite(components.Cell{X: 15, Y: 15})
			if ok != tt.found || (ok && got != tt.want) {
				t.Errorf("IndividualNestSite = %v, %v; want %v, %v", got, ok, tt.want, tt.found)
			}
		})
	}

	// Near the corner the search does not cross the seam, even when the
	// tree is five steps away on the torus.
	r := treeRig(t, components.Cell{X: 29, Y: 28}, components.Cell{X: 4, Y: 6})
	if got, ok := r.fs.IndividualNestSite(components.Cell{X: 1, Y: 1}); !ok || got != (components.Cell{X: 4, Y: 6}) {
		t.Errorf("edge search = %v, %v; want (4,6)", got, ok)
	}
	r = treeRig(t, components.Cell{X: 29, Y: 28})
	if got, ok := r.fs.IndividualNestSite(components.Cell{X: 1, Y: 1}); ok {
		t.Errorf("found %v across the seam", got)
	}
}

func TestGroupNestSite(t *testing.T) {
	r := treeRig(t, components.Cell{X: 12, Y: 12})
	group := components.Capabilities{GroupNesting: true}
	a := r.addAgent(components.KindBoisei, group, components.Cell{X: 10, Y: 10})
	// Four peers: threshold int(4 × 0.25) = 1, so any peer cell qualifies.
	r.addAgent(components.KindBoisei, group, components.Cell{X: 20, Y: 20})
	r.addAgent(components.KindBoisei, group, components.Cell{X: 8, Y: 9})
	r.addAgent(components.KindBoisei, group, components.Cell{X: 8, Y: 9})
	r.addAgent(components.KindBoisei, group, components.Cell{X: 25, Y: 3})
	// Other species are not peers.
	r.addAgent(components.KindErgaster, group, components.Cell{X: 10, Y: 11})

	site, ok := r.fs.FindNestSite(a)
	if !ok || site != (components.Cell{X: 8, Y: 9}) {
		t.Errorf("FindNestSite = %v, %v; want (8,9)", site, ok)
	}

	// Raising the threshold to half the peers leaves only the shared cell.
	a.Forager.Traits.GroupNestingThreshold = 0.5
	if site, _ := r.fs.FindNestSite(a); site != (components.Cell{X: 8, Y: 9}) {
		t.Errorf("threshold 0.5 site = %v", site)
	}

	// Nobody qualifies: fall back to the nesting tree.
	a.Forager.Traits.GroupNestingThreshold = 0.75
	if site, ok := r.fs.FindNestSite(a); !ok || site != (components.Cell{X: 12, Y: 12}) {
		t.Errorf("fallback site = %v, %v; want (12,12)", site, ok)
	}
}

func TestGroupNesterAloneFallsBack(t *testing.T) {
	r := treeRig(t, components.Cell{X: 5, Y: 6})
	a := r.addAgent(components.KindErgaster, components.Capabilities{GroupNesting: true}, components.Cell{X: 5, Y: 5})
	if site, ok := r.fs.FindNestSite(a); !ok || site != (components.Cell{X: 5, Y: 6}) {
		t.Errorf("FindNestSite = %v, %v", site, ok)
	}
}

func TestNestingWindowRelocates(t *testing.T) {
	r := treeRig(t, components.Cell{X: 7, Y: 7})
	a := r.addAgent(components.KindBoisei, components.Capabilities{}, components.Cell{X: 4, Y: 4})
	a.Diet.ActiveRemaining = r.fs.Params.ExtraNestingSteps

	if got := r.fs.Step(a, summer); got != OutcomeNested {
		t.Fatalf("outcome = %v, want nested", got)
	}
	want := components.Cell{X: 7, Y: 7}
	if *a.Pos != want || !a.Nest.Nesting || a.Nest.Site != want {
		t.Errorf("pos %v nest %+v", *a.Pos, *a.Nest)
	}
	if a.Diet.ActiveRemaining != r.fs.Params.ExtraNestingSteps-1 {
		t.Errorf("active remaining = %d", a.Diet.ActiveRemaining)
	}
	if r.occ.Count(want) != 1 {
		t.Error("occupancy not moved to the nest")
	}
	if got := r.fs.Step(a, summer); got == OutcomeNested {
		t.Error("nested twice in one day")
	}
}
