// Package game owns the simulated world and advances it minute by minute.
package game

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/hominids/components"
	"github.com/pthm-cable/hominids/config"
	"github.com/pthm-cable/hominids/systems"
	"github.com/pthm-cable/hominids/telemetry"
)

// ErrUnseeded is returned when a world is created without a seed.
var ErrUnseeded = errors.New("world seed must be non-zero")

// Options holds run settings that are not part of the model configuration.
type Options struct {
	Seed      int64
	OutputDir string // CSV result directory (empty = disabled)
	Archive   string // SQLite archive path (empty = disabled)
	LogDays   bool   // log every closed day, not only season changes
}

// World holds the complete simulation state. It is owned by a single
// goroutine; nothing in it is safe for concurrent use.
type World struct {
	cfg   *config.Config
	world *ecs.World
	rng   *rand.Rand
	seed  int64

	// Entity mappers - every forager carries all seven components
	entityMapper *ecs.Map7[
		components.Cell,
		components.Forager,
		components.Diet,
		components.Ledger,
		components.Nest,
		components.Scavenge,
		components.Activity,
	]
	entityFilter *ecs.Filter7[
		components.Cell,
		components.Forager,
		components.Diet,
		components.Ledger,
		components.Nest,
		components.Scavenge,
		components.Activity,
	]

	// Individual component mappers for lookups
	posMap     *ecs.Map1[components.Cell]
	foragerMap *ecs.Map1[components.Forager]

	agents  []ecs.Entity // creation order
	order   []ecs.Entity // shuffled every minute
	options map[uint32]string
	nextID  uint32

	land      *systems.Landscape
	plants    *systems.ResourceField
	carcasses *systems.CarcassField
	occupancy *systems.OccupancyGrid
	calls     *systems.CallBoard
	foraging  *systems.ForagingSystem

	clock    Clock
	dayIndex int // days closed so far

	collector     *telemetry.Collector
	bookmarks     *telemetry.BookmarkDetector
	outputManager *telemetry.OutputManager
	store         *telemetry.Store
	perf          *telemetry.PerfCollector
	logDays       bool
	started       time.Time
	lastDay       telemetry.DayStats
}

// NewWorld builds a world from a loaded configuration and spawns the roster.
func NewWorld(cfg *config.Config, opts Options) (*World, error) {
	if opts.Seed == 0 {
		return nil, ErrUnseeded
	}

	world := ecs.NewWorld()
	rng := rand.New(rand.NewSource(opts.Seed))
	land := systems.NewLandscape(cfg.Derived.Zones)

	w := &World{
		cfg:   cfg,
		world: world,
		rng:   rng,
		seed:  opts.Seed,
		entityMapper: ecs.NewMap7[
			components.Cell,
			components.Forager,
			components.Diet,
			components.Ledger,
			components.Nest,
			components.Scavenge,
			components.Activity,
		](world),
		entityFilter: ecs.NewFilter7[
			components.Cell,
			components.Forager,
			components.Diet,
			components.Ledger,
			components.Nest,
			components.Scavenge,
			components.Activity,
		](world),
		posMap:     ecs.NewMap1[components.Cell](world),
		foragerMap: ecs.NewMap1[components.Forager](world),
		options:    make(map[uint32]string),
		nextID:     1,

		land:      land,
		plants:    systems.NewResourceField(land, systems.NewCatalog(cfg.Derived.Plants), systems.GrowthParamsFromConfig(cfg.Growth)),
		carcasses: systems.NewCarcassField(systems.CarcassParamsFromConfig(cfg.Carcass)),
		occupancy: systems.NewOccupancyGrid(land.W, land.H),
		calls:     &systems.CallBoard{},

		clock:     NewClock(cfg.World.ActiveMinutesPerDay),
		collector: telemetry.NewCollector(),
		bookmarks: telemetry.NewBookmarkDetector(14),
		perf:      telemetry.NewPerfCollector(cfg.World.ActiveMinutesPerDay),
		logDays:   opts.LogDays,
		started:   time.Now(),
	}
	w.foraging = systems.NewForagingSystem(w.land, w.plants, w.carcasses, w.occupancy, w.calls, w,
		systems.ForagingParamsFromConfig(cfg), rng)

	w.spawnRoster()

	if err := w.openOutputs(opts); err != nil {
		w.Close()
		return nil, err
	}
	return w, nil
}

func (w *World) openOutputs(opts Options) error {
	om, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return err
	}
	w.outputManager = om
	if err := om.WriteConfig(w.cfg); err != nil {
		return err
	}

	if opts.Archive == "" {
		return nil
	}
	store, err := telemetry.OpenStore(opts.Archive)
	if err != nil {
		return err
	}
	w.store = store
	data, err := w.cfg.YAML()
	if err != nil {
		return err
	}
	if _, err := store.BeginRun(w.seed, data, w.started); err != nil {
		return fmt.Errorf("archive: %w", err)
	}
	return nil
}

// Peers implements systems.PeerLocator in creation order.
func (w *World) Peers(kind components.Kind, exclude uint32, dst []components.Cell) []components.Cell {
	for _, e := range w.agents {
		f := w.foragerMap.Get(e)
		if f.Kind != kind || f.ID == exclude {
			continue
		}
		dst = append(dst, *w.posMap.Get(e))
	}
	return dst
}

// agent bundles an entity's components for the foraging system.
func (w *World) agent(e ecs.Entity) systems.Agent {
	pos, f, diet, ledger, nest, scav, act := w.entityMapper.Get(e)
	return systems.Agent{
		Pos:      pos,
		Forager:  f,
		Diet:     diet,
		Ledger:   ledger,
		Nest:     nest,
		Scavenge: scav,
		Activity: act,
	}
}

// Clock returns the current calendar position.
func (w *World) Clock() Clock { return w.clock }

// DaysElapsed returns the number of completed days.
func (w *World) DaysElapsed() int { return w.dayIndex }

// Seed returns the run seed.
func (w *World) Seed() int64 { return w.seed }

// Landscape returns the zone grid.
func (w *World) Landscape() *systems.Landscape { return w.land }

// Plants returns the plant layer.
func (w *World) Plants() *systems.ResourceField { return w.plants }

// Carcasses returns the carcass layer.
func (w *World) Carcasses() *systems.CarcassField { return w.carcasses }

// Perf returns the performance collector.
func (w *World) Perf() *telemetry.PerfCollector { return w.perf }

// LastDay returns the stats of the most recently closed day.
func (w *World) LastDay() telemetry.DayStats { return w.lastDay }

// Close releases output files and the archive.
func (w *World) Close() error {
	var errs []error
	if err := w.outputManager.Close(); err != nil {
		errs = append(errs, err)
	}
	if w.store != nil {
		if err := w.store.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
