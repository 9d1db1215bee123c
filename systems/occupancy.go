// Package systems provides the simulation systems: landscape, plant and
// carcass layers, the forager occupancy index and the foraging decision logic.
package systems

import "github.com/pthm-cable/hominids/components"

// Occupant is a forager standing in a cell.
type Occupant struct {
	ID   uint32
	Kind components.Kind
}

// OccupancyGrid indexes foragers by cell. Within a cell, occupants keep
// arrival order.
type OccupancyGrid struct {
	w, h  int
	cells [][]Occupant
}

// NewOccupancyGrid creates an empty grid.
func NewOccupancyGrid(w, h int) *OccupancyGrid {
	return &OccupancyGrid{w: w, h: h, cells: make([][]Occupant, w*h)}
}

// Insert adds a forager at c.
func (g *OccupancyGrid) Insert(o Occupant, c components.Cell) {
	i := c.Index(g.w)
	g.cells[i] = append(g.cells[i], o)
}

// Remove deletes a forager from c. Returns false if it was not there.
func (g *OccupancyGrid) Remove(id uint32, c components.Cell) bool {
	i := c.Index(g.w)
	list := g.cells[i]
	for j, o := range list {
		if o.ID == id {
			g.cells[i] = append(list[:j], list[j+1:]...)
			return true
		}
	}
	return false
}

// Move relocates a forager between cells.
func (g *OccupancyGrid) Move(o Occupant, from, to components.Cell) {
	if from == to {
		return
	}
	mustf(g.Remove(o.ID, from), "forager %d not found at %v", o.ID, from)
	g.Insert(o, to)
}

// At returns the occupants of c. The slice must not be retained.
func (g *OccupancyGrid) At(c components.Cell) []Occupant {
	return g.cells[c.Index(g.w)]
}

// Count returns how many foragers stand at c.
func (g *OccupancyGrid) Count(c components.Cell) int {
	return len(g.cells[c.Index(g.w)])
}

// CountKind returns how many foragers of a kind stand at c.
func (g *OccupancyGrid) CountKind(c components.Cell, kind components.Kind) int {
	n := 0
	for _, o := range g.cells[c.Index(g.w)] {
		if o.Kind == kind {
			n++
		}
	}
	return n
}

// Clear removes everyone.
func (g *OccupancyGrid) Clear() {
	for i := range g.cells {
		g.cells[i] = g.cells[i][:0]
	}
}
