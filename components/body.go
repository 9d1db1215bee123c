package components

import "github.com/pthm-cable/hominids/config"

// Capabilities holds the behavioural switches of a forager.
// Cooperates is only ever true together with CanEatMeat.
type Capabilities struct {
	GroupNesting bool
	CanDig       bool
	CanEatMeat   bool
	Cooperates   bool
}

// CapabilitiesFromOptions converts a parsed roster capability string.
func CapabilitiesFromOptions(o config.AgentOptions) Capabilities {
	return Capabilities{
		GroupNesting: o.GroupNesting,
		CanDig:       o.CanDig,
		CanEatMeat:   o.CanEatMeat,
		Cooperates:   o.Cooperates && o.CanEatMeat,
	}
}

// Traits holds species physiology copied onto each forager.
type Traits struct {
	DailyRequirement      float64 // calories per day
	BellyCapacity         float64 // grams
	TrackWindow           int     // days examined for starvation
	DietThreshold         float64 // fraction of DailyRequirement
	GroupNestingThreshold float64 // fraction of same-species peers needed at a group nest
}

// TraitsFromSpecies builds traits from species config.
func TraitsFromSpecies(sp config.SpeciesConfig) Traits {
	return Traits{
		DailyRequirement:      sp.DailyCalorieRequirement,
		BellyCapacity:         sp.BellyCapacityGrams,
		TrackWindow:           sp.DietTrackLength,
		DietThreshold:         sp.DietThreshold,
		GroupNestingThreshold: sp.GroupNestingAgentThreshold,
	}
}
