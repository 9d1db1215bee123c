package systems

import "github.com/pthm-cable/hominids/components"

// CallBoard holds carcasses announced by cooperators during the current
// minute, in announcement order.
type CallBoard struct {
	ids []uint32
}

// Clear empties the board. The scheduler calls it at the start of every minute.
func (b *CallBoard) Clear() {
	b.ids = b.ids[:0]
}

// Post announces a carcass once per minute.
func (b *CallBoard) Post(id uint32) {
	for _, have := range b.ids {
		if have == id {
			return
		}
	}
	b.ids = append(b.ids, id)
}

// Len returns the number of announced carcasses.
func (b *CallBoard) Len() int {
	return len(b.ids)
}

// Nearest returns the closest announced carcass within earshot of pos by
// toroidal Manhattan distance, skipping ignored and depleted ones. Ties keep
// the earliest announcement.
func (b *CallBoard) Nearest(pos components.Cell, earshot int, land *Landscape, carcasses *CarcassField, ignored func(uint32) bool) *Carcass {
	var best *Carcass
	bestDist := earshot + 1
	for _, id := range b.ids {
		if ignored(id) {
			continue
		}
		c := carcasses.Get(id)
		if c == nil || c.Depleted() {
			continue
		}
		d := land.TorusManhattan(pos, c.Cell)
		if d <= earshot && d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}
