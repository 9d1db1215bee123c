package systems

import (
	"math"

	"github.com/pthm-cable/hominids/components"
	"github.com/pthm-cable/hominids/config"
)

// Zone is the static terrain class of a cell.
type Zone uint8

const (
	ZoneChannel Zone = iota
	ZoneFlooded
	ZoneUnflooded
	NumZones
)

// String returns the zone name.
func (z Zone) String() string {
	switch z {
	case ZoneChannel:
		return "channel"
	case ZoneFlooded:
		return "flooded"
	case ZoneUnflooded:
		return "unflooded"
	}
	return "unknown"
}

// zoneFromCode maps a validated landscape code to a zone.
func zoneFromCode(code byte) Zone {
	switch code {
	case config.CodeChannel:
		return ZoneChannel
	case config.CodeFlooded:
		return ZoneFlooded
	}
	return ZoneUnflooded
}

// Landscape is a static toroidal grid of zones.
type Landscape struct {
	W, H  int
	zones []Zone
}

// NewLandscape builds a landscape from a validated zone grid.
func NewLandscape(grid config.ZoneGrid) *Landscape {
	l := &Landscape{W: grid.Width, H: grid.Height, zones: make([]Zone, len(grid.Codes))}
	for i, code := range grid.Codes {
		l.zones[i] = zoneFromCode(code)
	}
	return l
}

// Cells returns the number of cells.
func (l *Landscape) Cells() int { return l.W * l.H }

// ZoneAt returns the zone of a cell.
func (l *Landscape) ZoneAt(c components.Cell) Zone {
	return l.zones[c.Index(l.W)]
}

// Contains reports whether c lies on the grid without wrapping.
func (l *Landscape) Contains(c components.Cell) bool {
	return c.X >= 0 && c.X < l.W && c.Y >= 0 && c.Y < l.H
}

// Wrap folds any coordinate pair onto the torus.
func (l *Landscape) Wrap(x, y int) components.Cell {
	return components.Cell{X: modInt(x, l.W), Y: modInt(y, l.H)}
}

// Neighborhood returns the 3×3 Moore neighbourhood including the centre,
// dx outer and dy inner, wrapped.
func (l *Landscape) Neighborhood(c components.Cell) [9]components.Cell {
	var out [9]components.Cell
	i := 0
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			out[i] = l.Wrap(c.X+dx, c.Y+dy)
			i++
		}
	}
	return out
}

// Delta returns the signed per-axis shortest path from one cell to another.
func (l *Landscape) Delta(from, to components.Cell) (dx, dy int) {
	return torusDelta(to.X-from.X, l.W), torusDelta(to.Y-from.Y, l.H)
}

// Distance returns the Euclidean distance on the torus.
func (l *Landscape) Distance(a, b components.Cell) float64 {
	dx := torusAbs(a.X-b.X, l.W)
	dy := torusAbs(a.Y-b.Y, l.H)
	return math.Sqrt(float64(dx*dx + dy*dy))
}

// TorusManhattan returns the Manhattan distance on the torus.
func (l *Landscape) TorusManhattan(a, b components.Cell) int {
	return torusAbs(a.X-b.X, l.W) + torusAbs(a.Y-b.Y, l.H)
}

// Manhattan returns the raw Manhattan distance, without wraparound.
func Manhattan(a, b components.Cell) int {
	return absInt(a.X-b.X) + absInt(a.Y-b.Y)
}

// StepToward returns the cell one diagonal-first unit step from 'from'
// toward 'to', going the short way round on each axis.
func (l *Landscape) StepToward(from, to components.Cell) components.Cell {
	dx, dy := l.Delta(from, to)
	return l.Wrap(from.X+signInt(dx), from.Y+signInt(dy))
}
