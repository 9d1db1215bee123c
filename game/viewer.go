package game

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/hominids/camera"
	"github.com/pthm-cable/hominids/components"
	"github.com/pthm-cable/hominids/renderer"
	"github.com/pthm-cable/hominids/ui"
)

// Viewer limits
const (
	ScreenWidth  = 1280
	ScreenHeight = 800
	CellPixels   = 16
	MaxSpeed     = 720 // minutes per frame, one full day
)

// Viewer drives a World from the raylib window loop.
type Viewer struct {
	world *World

	camera   *camera.Camera
	terrain  *renderer.TerrainRenderer
	hud      *ui.HUD
	controls ui.SpeedControls

	paused  bool
	speed   int // simulated minutes per frame
	maxDays int // stop stepping after this many days (0 = unlimited)

	screenWidth, screenHeight float32

	// Scratch buffers reused every frame
	views    []AgentView
	foragers []renderer.Forager
	slots    map[components.Cell]int
}

// NewViewer creates a viewer; the raylib window must already be open.
func NewViewer(w *World, screenWidth, screenHeight, maxDays int) *Viewer {
	sw, sh := float32(screenWidth), float32(screenHeight)
	return &Viewer{
		world:        w,
		camera:       camera.New(sw, sh, w.land.W, w.land.H, CellPixels),
		terrain:      renderer.NewTerrainRenderer(w.land, w.plants),
		hud:          ui.NewHUD(300),
		controls:     ui.SpeedControls{X: sw - 310, Y: 10, MaxSpeed: MaxSpeed},
		speed:        10,
		maxDays:      maxDays,
		screenWidth:  sw,
		screenHeight: sh,
		slots:        make(map[components.Cell]int),
	}
}

// Done reports whether the day limit has been reached.
func (v *Viewer) Done() bool {
	return v.maxDays > 0 && v.world.DaysElapsed() >= v.maxDays
}

// Update handles input and advances the world by the current speed.
func (v *Viewer) Update() {
	v.handleInput()
	v.world.perf.RecordFrame()

	if v.paused {
		return
	}
	for i := 0; i < v.speed && !v.Done(); i++ {
		v.world.Step()
	}
}

// Draw renders one frame.
func (v *Viewer) Draw() {
	rl.BeginDrawing()
	defer rl.EndDrawing()
	rl.ClearBackground(rl.Black)

	w := v.world
	v.terrain.Draw(v.camera, w.land, w.plants)
	renderer.DrawCarcasses(v.camera, w.carcasses.All())

	v.views = w.Agents(v.views[:0])
	v.foragers = v.foragers[:0]
	clear(v.slots)
	for _, a := range v.views {
		slot := v.slots[a.Pos]
		v.slots[a.Pos] = slot + 1
		v.foragers = append(v.foragers, renderer.Forager{
			Kind: a.Kind, Pos: a.Pos, Slot: slot, Waiting: a.Waiting, Nesting: a.Nesting,
		})
	}
	renderer.DrawForagers(v.camera, v.foragers)

	v.hud.Draw(v.hudData())
	v.paused, v.speed = v.controls.Draw(v.paused, v.speed)
	v.hud.DrawControls(int32(v.screenHeight), "SPACE pause | , . speed | arrows pan | wheel/+- zoom | HOME reset")
}

// hudData gathers the per-frame HUD values.
func (v *Viewer) hudData() ui.HUDData {
	w := v.world
	last := w.LastDay()
	d := ui.HUDData{
		Title:     "Hominid foraging",
		Year:      w.clock.Year,
		Day:       w.clock.Day,
		Season:    w.clock.Season,
		Minute:    w.clock.Minute,
		Carcasses: w.carcasses.Len(),
		Speed:     v.speed,
		FPS:       rl.GetFPS(),
		MinPerSec: w.perf.Stats().MinutesPerSecond,
		Paused:    v.paused,
		Hover:     v.hoverText(),
	}

	var sum [components.NumKinds]float64
	var count [components.NumKinds]int
	for _, a := range v.views {
		sum[a.Kind] += a.CaloriesToday
		count[a.Kind]++
	}
	starving := [components.NumKinds]int{last.BoiseiStarving, last.ErgasterStarving}
	yesterday := [components.NumKinds]float64{last.BoiseiCalMean, last.ErgasterCalMean}
	for k := components.Kind(0); k < components.NumKinds; k++ {
		if count[k] == 0 {
			continue
		}
		d.Species = append(d.Species, ui.SpeciesLine{
			Name:          k.String(),
			Count:         count[k],
			Starving:      starving[k],
			MeanToday:     sum[k] / float64(count[k]),
			Requirement:   w.cfg.SpeciesParams(int(k)).DailyCalorieRequirement,
			YesterdayMean: yesterday[k],
		})
	}
	return d
}

// hoverText describes the cell under the mouse.
func (v *Viewer) hoverText() string {
	m := rl.GetMousePosition()
	x, y := v.camera.ScreenToCell(m.X, m.Y)
	c := components.Cell{X: x, Y: y}
	w := v.world
	return fmt.Sprintf("(%d,%d) %s | plants %.2f | foragers %d",
		x, y, w.land.ZoneAt(c), w.plants.CellTotal(c), w.occupancy.Count(c))
}
