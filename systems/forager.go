package systems

import (
	"math/rand"

	"github.com/pthm-cable/hominids/components"
	"github.com/pthm-cable/hominids/config"
)

// Agent bundles the component pointers of one forager for a single step.
type Agent struct {
	Pos      *components.Cell
	Forager  *components.Forager
	Diet     *components.Diet
	Ledger   *components.Ledger
	Nest     *components.Nest
	Scavenge *components.Scavenge
	Activity *components.Activity
}

func (a Agent) occupant() Occupant {
	return Occupant{ID: a.Forager.ID, Kind: a.Forager.Kind}
}

// Calendar is the part of the clock a forager needs.
type Calendar struct {
	Day    int // 1..365
	Season int // 1..4
}

// Outcome describes what a forager did in one minute.
type Outcome uint8

const (
	OutcomeResting Outcome = iota
	OutcomeNested
	OutcomeAtePlant
	OutcomeAteMeat
	OutcomeSated // chose food but had no gut space left
	OutcomeApproached
	OutcomeWaiting
	OutcomeGaveUp
	OutcomeMoved
	OutcomeWandered
	NumOutcomes
)

var outcomeNames = [NumOutcomes]string{
	"resting", "nested", "ate_plant", "ate_meat", "sated",
	"approached", "waiting", "gave_up", "moved", "wandered",
}

func (o Outcome) String() string {
	if o < NumOutcomes {
		return outcomeNames[o]
	}
	return "unknown"
}

// ForagingParams holds the behavioural constants shared by all foragers.
type ForagingParams struct {
	ExtraNestingSteps int

	DetectionRange    int // raw Manhattan range for carcass sighting
	Earshot           int // toroidal Manhattan range for calls
	WanderingDistance int
	NestScanDistance  int

	MeatCaloriesPerGram float64
	GramsPerMinute      float64
	RequiredCooperators int
	WaitMinutes         int
}

// ForagingParamsFromConfig extracts foraging constants from config.
func ForagingParamsFromConfig(cfg *config.Config) ForagingParams {
	return ForagingParams{
		ExtraNestingSteps:   cfg.World.ExtraNestingSteps,
		DetectionRange:      cfg.Senses.DetectionRange,
		Earshot:             cfg.Senses.Earshot,
		WanderingDistance:   cfg.Senses.WanderingDistance,
		NestScanDistance:    cfg.Senses.NestScanDistance,
		MeatCaloriesPerGram: cfg.Carcass.CaloriesPerGram,
		GramsPerMinute:      cfg.Carcass.GramsPerMinute,
		RequiredCooperators: cfg.Carcass.RequiredCooperators,
		WaitMinutes:         cfg.Carcass.WaitMinutes,
	}
}

// MeatReturnRate is calories per minute of scavenging, independent of
// carcass size.
func (p ForagingParams) MeatReturnRate() float64 {
	return p.MeatCaloriesPerGram * p.GramsPerMinute
}

// PeerLocator reports where other foragers of a kind currently stand.
type PeerLocator interface {
	// Peers appends the cells of every forager of kind except exclude,
	// in a stable order.
	Peers(kind components.Kind, exclude uint32, dst []components.Cell) []components.Cell
}

// ForagingSystem runs the one-minute decision cycle of a forager.
// It is not safe for concurrent use; the scheduler calls Step for one
// agent at a time.
type ForagingSystem struct {
	Land      *Landscape
	Plants    *ResourceField
	Carcasses *CarcassField
	Occupancy *OccupancyGrid
	Calls     *CallBoard
	Peers     PeerLocator
	Params    ForagingParams

	rng *rand.Rand

	// Scratch buffers reused across steps
	avail     []Available
	plantOpts []plantOption
	ties      []int
	nearby    []*Carcass
	peerCells []components.Cell
	siteCount []siteCount
}

// NewForagingSystem wires a foraging system to the world layers.
func NewForagingSystem(land *Landscape, plants *ResourceField, carcasses *CarcassField,
	occ *OccupancyGrid, calls *CallBoard, peers PeerLocator, p ForagingParams, rng *rand.Rand) *ForagingSystem {
	return &ForagingSystem{
		Land:      land,
		Plants:    plants,
		Carcasses: carcasses,
		Occupancy: occ,
		Calls:     calls,
		Peers:     peers,
		Params:    p,
		rng:       rng,
	}
}

// Step advances one forager by one minute.
func (s *ForagingSystem) Step(a Agent, cal Calendar) Outcome {
	if a.Diet.ActiveRemaining <= 0 {
		return OutcomeResting
	}

	out := s.decide(a, cal)
	a.Diet.ActiveRemaining--

	mustf(a.Diet.Gut <= a.Forager.Traits.BellyCapacity,
		"forager %d gut %v exceeds capacity %v", a.Forager.ID, a.Diet.Gut, a.Forager.Traits.BellyCapacity)
	return out
}

func (s *ForagingSystem) decide(a Agent, cal Calendar) Outcome {
	if a.Diet.ActiveRemaining <= s.Params.ExtraNestingSteps && !a.Nest.Nesting {
		if site, ok := s.FindNestSite(a); ok {
			s.relocate(a, site)
			a.Nest.Nesting = true
			a.Nest.Site = site
			a.Nest.HasSite = true
			a.Activity.Nest(site)
			return OutcomeNested
		}
	}

	plant, hasPlant := s.bestPlant(a, cal.Season)
	carcass := s.bestCarcass(a)

	switch {
	case hasPlant && carcass != nil:
		if plant.species.ReturnRate > s.Params.MeatReturnRate() {
			return s.eatPlant(a, plant, cal)
		}
		return s.scavenge(a, carcass, cal)
	case hasPlant:
		return s.eatPlant(a, plant, cal)
	case carcass != nil:
		return s.scavenge(a, carcass, cal)
	}
	return s.move(a, cal.Season)
}

// moveTo changes the forager's cell and logs a travel minute there.
func (s *ForagingSystem) moveTo(a Agent, to components.Cell) {
	if *a.Pos == to {
		return
	}
	s.relocate(a, to)
	a.Activity.Travel(to)
}

// relocate changes the forager's cell without logging travel.
func (s *ForagingSystem) relocate(a Agent, to components.Cell) {
	s.Occupancy.Move(a.occupant(), *a.Pos, to)
	*a.Pos = to
}

// pick returns a uniform index in [0, n), drawing only when there is a choice.
func (s *ForagingSystem) pick(n int) int {
	if n <= 1 {
		return 0
	}
	return s.rng.Intn(n)
}
