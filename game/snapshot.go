package game

import "github.com/pthm-cable/hominids/components"

// AgentView is a read-only copy of one forager for display.
type AgentView struct {
	ID            uint32
	Kind          components.Kind
	Pos           components.Cell
	Waiting       bool
	Nesting       bool
	CaloriesToday float64
}

// Agents appends a view of every forager.
func (w *World) Agents(dst []AgentView) []AgentView {
	query := w.entityFilter.Query()
	for query.Next() {
		pos, f, diet, _, nest, scav, _ := query.Get()
		dst = append(dst, AgentView{
			ID:            f.ID,
			Kind:          f.Kind,
			Pos:           *pos,
			Waiting:       scav.State == components.ScavengeWaiting,
			Nesting:       nest.Nesting,
			CaloriesToday: diet.CaloriesToday,
		})
	}
	return dst
}

// AgentCount returns the number of foragers.
func (w *World) AgentCount() int {
	return len(w.agents)
}
