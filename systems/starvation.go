package systems

import "github.com/pthm-cable/hominids/components"

// IsStarving reports whether every one of the last TrackWindow days fell
// below the species' diet threshold. It is false until the window is full.
func IsStarving(d *components.Diet, t components.Traits) bool {
	w := t.TrackWindow
	if w <= 0 || len(d.History) < w {
		return false
	}
	limit := t.DailyRequirement * t.DietThreshold
	for _, cal := range d.History[len(d.History)-w:] {
		if cal >= limit {
			return false
		}
	}
	return true
}
