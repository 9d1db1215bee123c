package telemetry

import (
	"testing"

	"github.com/pthm-cable/hominids/components"
	"github.com/pthm-cable/hominids/systems"
)

func TestCollectorFlush(t *testing.T) {
	c := NewCollector()

	outcomes := []systems.Outcome{
		systems.OutcomeAtePlant, systems.OutcomeAtePlant,
		systems.OutcomeAteMeat,
		systems.OutcomeWaiting, systems.OutcomeWaiting, systems.OutcomeWaiting,
		systems.OutcomeMoved, systems.OutcomeWandered, systems.OutcomeApproached,
		systems.OutcomeGaveUp,
		systems.OutcomeNested,
		systems.OutcomeResting,
	}
	for _, o := range outcomes {
		c.RecordOutcome(o)
	}
	c.RecordCarcasses(3, 1)
	c.RecordCarcasses(1, 0)

	var s DaySample
	s.DayIndex, s.Year, s.Day, s.Season = 5, 1, 5, 1
	s.Calories[components.KindBoisei] = []float64{1000, 3000}
	s.Starving[components.KindErgaster] = 2
	s.Carcasses = [systems.NumCarcassSizes]int{4, 2, 1}
	s.PlantAbundance = 123.5

	st := c.Flush(s)
	checks := []struct {
		name      string
		got, want int
	}{
		{"day index", st.DayIndex, 5},
		{"plant minutes", st.PlantMinutes, 2},
		{"meat minutes", st.MeatMinutes, 1},
		{"wait minutes", st.WaitMinutes, 3},
		{"travel minutes", st.TravelMinutes, 3},
		{"gave up", st.GaveUp, 1},
		{"nested", st.Nested, 1},
		{"spawned", st.CarcassesSpawned, 4},
		{"pruned", st.CarcassesPruned, 1},
		{"small", st.CarcassesSmall, 4},
		{"medium", st.CarcassesMedium, 2},
		{"large", st.CarcassesLarge, 1},
		{"boisei count", st.BoiseiCount, 2},
		{"ergaster count", st.ErgasterCount, 0},
		{"ergaster starving", st.ErgasterStarving, 2},
	}
	for _, ch := range checks {
		if ch.got != ch.want {
			t.Errorf("%s = %d, want %d", ch.name, ch.got, ch.want)
		}
	}
	if st.BoiseiCalMean != 2000 {
		t.Errorf("boisei mean = %v, want 2000", st.BoiseiCalMean)
	}
	if st.PlantAbundance != 123.5 {
		t.Errorf("plant abundance = %v", st.PlantAbundance)
	}

	// Counters reset after a flush.
	s.DayIndex, s.Day, s.Season = 6, 6, 2
	st = c.Flush(s)
	if st.PlantMinutes != 0 || st.CarcassesSpawned != 0 || st.Nested != 0 {
		t.Errorf("counters not reset: %+v", st)
	}

	days := c.SeasonDays()
	if days != [components.NumSeasons]int{1, 1, 0, 0} {
		t.Errorf("season days = %v, want [1 1 0 0]", days)
	}
}
