package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/hominids/camera"
	"github.com/pthm-cable/hominids/components"
	"github.com/pthm-cable/hominids/systems"
)

var (
	boiseiColor   = rl.Color{R: 230, G: 200, B: 60, A: 255}
	ergasterColor = rl.Color{R: 220, G: 80, B: 60, A: 255}
	waitingRing   = rl.Color{R: 255, G: 255, B: 255, A: 220}
	nestRing      = rl.Color{R: 30, G: 30, B: 30, A: 220}
	carcassColor  = rl.Color{R: 120, G: 20, B: 30, A: 255}
)

// carcassRadius scales a marker by size class and remaining mass.
func carcassRadius(size systems.CarcassSize, remaining, total, cellPx float32) float32 {
	base := cellPx * (0.2 + 0.1*float32(size))
	if total <= 0 {
		return base
	}
	return base * (0.5 + 0.5*remaining/total)
}

// DrawCarcasses renders the carcass layer.
func DrawCarcasses(cam *camera.Camera, carcasses []*systems.Carcass) {
	size := cam.CellSize()
	for _, c := range carcasses {
		if !cam.IsVisible(c.Cell.X, c.Cell.Y) {
			continue
		}
		sx, sy := cam.CellToScreen(c.Cell.X, c.Cell.Y)
		radius := carcassRadius(c.Size, float32(c.Remaining), float32(c.Total), size)
		rl.DrawRectangleV(
			rl.Vector2{X: sx + size/2 - radius, Y: sy + size/2 - radius},
			rl.Vector2{X: 2 * radius, Y: 2 * radius},
			carcassColor,
		)
	}
}

// Forager is what the renderer needs to draw one agent.
type Forager struct {
	Kind    components.Kind
	Pos     components.Cell
	Slot    int // index among the foragers sharing the cell
	Waiting bool
	Nesting bool
}

// slotOffset spreads up to nine foragers on a 3x3 lattice inside a cell.
func slotOffset(slot int, cellPx float32) (dx, dy float32) {
	slot %= 9
	return cellPx * (0.2 + 0.3*float32(slot%3)), cellPx * (0.2 + 0.3*float32(slot/3))
}

// DrawForagers renders the agents on top of the landscape.
func DrawForagers(cam *camera.Camera, foragers []Forager) {
	size := cam.CellSize()
	radius := max(size*0.12, 1.5)
	for _, f := range foragers {
		if !cam.IsVisible(f.Pos.X, f.Pos.Y) {
			continue
		}
		sx, sy := cam.CellToScreen(f.Pos.X, f.Pos.Y)
		dx, dy := slotOffset(f.Slot, size)
		center := rl.Vector2{X: sx + dx, Y: sy + dy}

		color := boiseiColor
		if f.Kind == components.KindErgaster {
			color = ergasterColor
		}
		rl.DrawCircleV(center, radius, color)
		switch {
		case f.Waiting:
			rl.DrawCircleLines(int32(center.X), int32(center.Y), radius+2, waitingRing)
		case f.Nesting:
			rl.DrawCircleLines(int32(center.X), int32(center.Y), radius+2, nestRing)
		}
	}
}
