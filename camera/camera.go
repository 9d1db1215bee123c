// Package camera maps the toroidal cell grid onto the viewer window.
package camera

import "math"

// Camera controls the viewport into the landscape grid.
// World coordinates are pixels at zoom 1: cell (x, y) spans
// [x*CellPx, (x+1)*CellPx).
type Camera struct {
	// Position is the camera center in world coordinates
	X, Y float32

	// Zoom level (1.0 = one cell is CellPx pixels)
	Zoom float32

	// Viewport dimensions (screen size)
	ViewportW, ViewportH float32

	// Grid size in cells, and cell edge at zoom 1
	GridW, GridH int
	CellPx       float32

	// Zoom constraints
	MinZoom, MaxZoom float32
}

// New creates a camera centered on the grid.
func New(viewportW, viewportH float32, gridW, gridH int, cellPx float32) *Camera {
	c := &Camera{
		X:         float32(gridW) * cellPx / 2,
		Y:         float32(gridH) * cellPx / 2,
		Zoom:      1.0,
		ViewportW: viewportW,
		ViewportH: viewportH,
		GridW:     gridW,
		GridH:     gridH,
		CellPx:    cellPx,
		MaxZoom:   8.0,
	}
	c.updateMinZoom()
	if c.Zoom < c.MinZoom {
		c.Zoom = c.MinZoom
	}
	return c
}

func (c *Camera) worldW() float32 { return float32(c.GridW) * c.CellPx }
func (c *Camera) worldH() float32 { return float32(c.GridH) * c.CellPx }

// updateMinZoom keeps the visible area inside one copy of the torus so no
// cell is drawn twice.
func (c *Camera) updateMinZoom() {
	c.MinZoom = max(c.ViewportW/c.worldW(), c.ViewportH/c.worldH())
}

// CellSize returns the on-screen edge of a cell.
func (c *Camera) CellSize() float32 {
	return c.CellPx * c.Zoom
}

// CellToScreen returns the top-left screen corner of a cell, taking the
// shortest way around the torus from the camera center.
func (c *Camera) CellToScreen(x, y int) (sx, sy float32) {
	dx := toroidalDelta(float32(x)*c.CellPx, c.X, c.worldW())
	dy := toroidalDelta(float32(y)*c.CellPx, c.Y, c.worldH())
	return c.ViewportW/2 + dx*c.Zoom, c.ViewportH/2 + dy*c.Zoom
}

// ScreenToCell returns the cell under a screen position.
func (c *Camera) ScreenToCell(sx, sy float32) (x, y int) {
	wx := mod(c.X+(sx-c.ViewportW/2)/c.Zoom, c.worldW())
	wy := mod(c.Y+(sy-c.ViewportH/2)/c.Zoom, c.worldH())
	x = int(wx / c.CellPx)
	y = int(wy / c.CellPx)
	// Guard the float edge at exactly worldW.
	return min(x, c.GridW-1), min(y, c.GridH-1)
}

// IsVisible reports whether any part of a cell could be on screen.
func (c *Camera) IsVisible(x, y int) bool {
	sx, sy := c.CellToScreen(x, y)
	size := c.CellSize()
	return sx+size >= 0 && sy+size >= 0 && sx <= c.ViewportW && sy <= c.ViewportH
}

// Resize updates viewport dimensions and recalculates zoom constraints.
func (c *Camera) Resize(viewportW, viewportH float32) {
	if viewportW == c.ViewportW && viewportH == c.ViewportH {
		return
	}
	c.ViewportW = viewportW
	c.ViewportH = viewportH
	c.updateMinZoom()
	if c.Zoom < c.MinZoom {
		c.Zoom = c.MinZoom
	}
}

// Pan moves the camera by the given delta in screen pixels.
// Automatically wraps around world boundaries.
func (c *Camera) Pan(dx, dy float32) {
	c.X = mod(c.X+dx/c.Zoom, c.worldW())
	c.Y = mod(c.Y+dy/c.Zoom, c.worldH())
}

// SetZoom sets the zoom level, clamped to min/max.
func (c *Camera) SetZoom(zoom float32) {
	c.Zoom = clamp(zoom, c.MinZoom, c.MaxZoom)
}

// ZoomBy multiplies the current zoom by the given factor.
func (c *Camera) ZoomBy(factor float32) {
	c.SetZoom(c.Zoom * factor)
}

// Reset returns the camera to the grid center at the smallest zoom that
// fills the viewport.
func (c *Camera) Reset() {
	c.X = c.worldW() / 2
	c.Y = c.worldH() / 2
	c.SetZoom(1.0)
}

// toroidalDelta computes the shortest signed distance from 'from' to 'to'
// in a toroidal space of the given size.
func toroidalDelta(to, from, size float32) float32 {
	d := to - from
	if d > size/2 {
		d -= size
	} else if d < -size/2 {
		d += size
	}
	return d
}

// mod computes the positive modulo (Go's % can return negative).
func mod(x, m float32) float32 {
	r := float32(math.Mod(float64(x), float64(m)))
	if r < 0 {
		r += m
	}
	return r
}

// clamp restricts a value to a range.
func clamp(x, lo, hi float32) float32 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
