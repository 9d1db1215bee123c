// Package renderer draws the landscape, carcasses and foragers with raylib.
package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/hominids/camera"
	"github.com/pthm-cable/hominids/components"
	"github.com/pthm-cable/hominids/systems"
)

// Bare ground and full-growth colours per zone.
var zonePalette = [systems.NumZones][2]rl.Color{
	systems.ZoneChannel:   {{R: 40, G: 70, B: 110, A: 255}, {R: 40, G: 120, B: 110, A: 255}},
	systems.ZoneFlooded:   {{R: 110, G: 100, B: 70, A: 255}, {R: 70, G: 140, B: 60, A: 255}},
	systems.ZoneUnflooded: {{R: 150, G: 130, B: 90, A: 255}, {R: 90, G: 150, B: 50, A: 255}},
}

// lerp blends two colours; t is clamped to [0, 1].
func lerp(a, b rl.Color, t float32) rl.Color {
	t = max(0, min(t, 1))
	mix := func(x, y uint8) uint8 {
		return uint8(float32(x) + (float32(y)-float32(x))*t + 0.5)
	}
	return rl.Color{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}

// cellColor shades a zone by how close its plants are to capacity.
func cellColor(zone systems.Zone, growth float32) rl.Color {
	p := zonePalette[zone]
	return lerp(p[0], p[1], growth)
}

// TerrainRenderer draws the zone grid shaded by plant abundance.
type TerrainRenderer struct {
	capacity []float64 // per-cell plant capacity, fixed for the run
}

// NewTerrainRenderer precomputes per-cell capacities.
func NewTerrainRenderer(land *systems.Landscape, plants *systems.ResourceField) *TerrainRenderer {
	r := &TerrainRenderer{capacity: make([]float64, land.Cells())}
	n := plants.Catalog.Len()
	for y := 0; y < land.H; y++ {
		for x := 0; x < land.W; x++ {
			c := components.Cell{X: x, Y: y}
			for s := 0; s < n; s++ {
				r.capacity[c.Index(land.W)] += plants.Capacity(c, s)
			}
		}
	}
	return r
}

// Draw renders every visible cell.
func (r *TerrainRenderer) Draw(cam *camera.Camera, land *systems.Landscape, plants *systems.ResourceField) {
	size := cam.CellSize()
	for y := 0; y < land.H; y++ {
		for x := 0; x < land.W; x++ {
			if !cam.IsVisible(x, y) {
				continue
			}
			c := components.Cell{X: x, Y: y}
			var growth float32
			if capacity := r.capacity[c.Index(land.W)]; capacity > 0 {
				growth = float32(plants.CellTotal(c) / capacity)
			}
			sx, sy := cam.CellToScreen(x, y)
			rl.DrawRectangleV(rl.Vector2{X: sx, Y: sy}, rl.Vector2{X: size, Y: size}, cellColor(land.ZoneAt(c), growth))
		}
	}
}
