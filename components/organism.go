package components

// Forager holds the immutable identity of a hominid agent.
type Forager struct {
	ID     uint32
	Kind   Kind
	Caps   Capabilities
	Traits Traits
}

// Diet holds a forager's daily intake state.
type Diet struct {
	Gut             float64 // grams eaten today, never above Traits.BellyCapacity
	CaloriesToday   float64
	ActiveRemaining int       // foraging minutes left today
	History         []float64 // most recent daily totals, oldest first, at most TrackWindow long

	LifetimeCalories float64
	DaysRecorded     int
}

// GutSpace returns the grams that still fit in the gut.
func (d *Diet) GutSpace(capacity float64) float64 {
	return capacity - d.Gut
}

// CloseDay pushes today's total onto the bounded history and resets the
// daily counters for a new day of activeMinutes.
func (d *Diet) CloseDay(window, activeMinutes int) {
	d.History = append(d.History, d.CaloriesToday)
	if len(d.History) > window {
		n := copy(d.History, d.History[len(d.History)-window:])
		d.History = d.History[:n]
	}
	d.LifetimeCalories += d.CaloriesToday
	d.DaysRecorded++

	d.CaloriesToday = 0
	d.Gut = 0
	d.ActiveRemaining = activeMinutes
}

// AverageDaily returns mean calories over all closed days.
func (d *Diet) AverageDaily() float64 {
	if d.DaysRecorded == 0 {
		return 0
	}
	return d.LifetimeCalories / float64(d.DaysRecorded)
}
