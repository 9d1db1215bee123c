package systems

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/pthm-cable/hominids/components"
	"github.com/pthm-cable/hominids/config"
)

func init() {
	config.MustInit("")
}

// rig is a small hand-built world for exercising the foraging system.
type rig struct {
	land      *Landscape
	plants    *ResourceField
	carcasses *CarcassField
	occ       *OccupancyGrid
	calls     *CallBoard
	fs        *ForagingSystem
	agents    []Agent
}

func testParams() ForagingParams {
	return ForagingParams{
		ExtraNestingSteps:   180,
		DetectionRange:      5,
		Earshot:             10,
		WanderingDistance:   2,
		NestScanDistance:    10,
		MeatCaloriesPerGram: 1570,
		GramsPerMinute:      50,
		RequiredCooperators: 3,
		WaitMinutes:         10,
	}
}

func testTraits() components.Traits {
	return components.Traits{
		DailyRequirement:      3500,
		BellyCapacity:         5000,
		TrackWindow:           14,
		DietThreshold:         0.5,
		GroupNestingThreshold: 0.25,
	}
}

func uniformGrid(w, h int, code byte) config.ZoneGrid {
	return config.ZoneGrid{Width: w, Height: h, Codes: bytes.Repeat([]byte{code}, w*h)}
}

// plantRecord returns an always-fruiting species edible by both kinds with
// the same density in every zone.
func plantRecord(id int, density, grams, calPerGram, handling, visibility float64) config.PlantRecord {
	return config.PlantRecord{
		ID:               id,
		Name:             "plant",
		EdibleByBoisei:   true,
		EdibleByErgaster: true,
		PerChannel:       density,
		PerFlooded:       density,
		PerUnflooded:     density,
		Fruiting:         config.Seasons{true, true, true, true},
		GramsPerUnit:     grams,
		CaloriesPerGram:  calPerGram,
		Visibility:       visibility,
		HandlingMinutes:  handling,
	}
}

func newRig(t *testing.T, w, h int, records []config.PlantRecord, p ForagingParams) *rig {
	t.Helper()
	land := NewLandscape(uniformGrid(w, h, config.CodeUnflooded))
	growth := GrowthParams{InitialFraction: 1, FinalFraction: 1, GrowthRate: 0.1, DecayRate: 0.05, ReseedFraction: 0.01}
	r := &rig{
		land:      land,
		plants:    NewResourceField(land, NewCatalog(records), growth),
		carcasses: NewCarcassField(CarcassParams{Weights: [NumCarcassSizes]float64{1000, 10000, 100000}}),
		occ:       NewOccupancyGrid(w, h),
		calls:     &CallBoard{},
	}
	r.fs = NewForagingSystem(r.land, r.plants, r.carcasses, r.occ, r.calls, r, p, rand.New(rand.NewSource(1)))
	return r
}

func (r *rig) Peers(kind components.Kind, exclude uint32, dst []components.Cell) []components.Cell {
	for _, a := range r.agents {
		if a.Forager.Kind == kind && a.Forager.ID != exclude {
			dst = append(dst, *a.Pos)
		}
	}
	return dst
}

func (r *rig) addAgent(kind components.Kind, caps components.Capabilities, at components.Cell) Agent {
	a := Agent{
		Pos:      &components.Cell{X: at.X, Y: at.Y},
		Forager:  &components.Forager{ID: uint32(len(r.agents) + 1), Kind: kind, Caps: caps, Traits: testTraits()},
		Diet:     &components.Diet{ActiveRemaining: 720},
		Ledger:   &components.Ledger{},
		Nest:     &components.Nest{},
		Scavenge: &components.Scavenge{},
		Activity: &components.Activity{},
	}
	r.agents = append(r.agents, a)
	r.occ.Insert(a.occupant(), at)
	return a
}

// minute runs one scheduler minute over the rig's agents in insertion order.
func (r *rig) minute(cal Calendar) []Outcome {
	r.calls.Clear()
	out := make([]Outcome, len(r.agents))
	for i, a := range r.agents {
		out[i] = r.fs.Step(a, cal)
	}
	return out
}

var (
	meatEater  = components.Capabilities{CanEatMeat: true}
	cooperator = components.Capabilities{CanEatMeat: true, Cooperates: true}
	summer     = Calendar{Day: 100, Season: 2}
)
