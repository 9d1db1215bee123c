package config

import (
	"errors"
	"fmt"
)

// Validate checks numeric ranges. All failures are joined and wrap ErrInvalidConfig.
func (c *Config) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
	}

	if c.World.ActiveMinutesPerDay <= 0 {
		bad("world.active_minutes_per_day must be > 0, got %d", c.World.ActiveMinutesPerDay)
	}
	if c.World.ExtraNestingSteps < 0 || c.World.ExtraNestingSteps > c.World.ActiveMinutesPerDay {
		bad("world.extra_nesting_steps must be in [0, active_minutes_per_day], got %d", c.World.ExtraNestingSteps)
	}

	g := c.Growth
	if !unit(g.InitialFoodFraction) || !unit(g.FinalFoodFraction) || g.InitialFoodFraction > g.FinalFoodFraction {
		bad("growth fractions need 0 <= initial (%v) <= final (%v) <= 1", g.InitialFoodFraction, g.FinalFoodFraction)
	}
	if g.GrowthRate <= 0 || !unit(g.DecayRate) || !unit(g.ReseedFraction) {
		bad("growth rates out of range (growth %v, decay %v, reseed %v)", g.GrowthRate, g.DecayRate, g.ReseedFraction)
	}

	cc := c.Carcass
	appearance := []struct {
		zone string
		p    float64
	}{
		{"channel", cc.Appearance.Channel},
		{"flooded", cc.Appearance.Flooded},
		{"unflooded", cc.Appearance.Unflooded},
	}
	for _, a := range appearance {
		if !unit(a.p) {
			bad("carcass.appearance.%s must be a probability, got %v", a.zone, a.p)
		}
	}
	sizes := []struct {
		zone string
		d    SizeDistribution
	}{
		{"channel", cc.Sizes.Channel},
		{"flooded", cc.Sizes.Flooded},
		{"unflooded", cc.Sizes.Unflooded},
	}
	for _, z := range sizes {
		if !unit(z.d.Small) || !unit(z.d.Medium) || z.d.Small+z.d.Medium > 1+1e-9 {
			bad("carcass.sizes.%s small+medium must be <= 1, got %v+%v", z.zone, z.d.Small, z.d.Medium)
		}
	}
	if cc.Weights.Small <= 0 || cc.Weights.Medium <= 0 || cc.Weights.Large <= 0 {
		bad("carcass.weights must all be > 0")
	}
	if cc.CaloriesPerGram <= 0 || cc.GramsPerMinute <= 0 {
		bad("carcass.calories_per_gram and grams_per_minute must be > 0")
	}
	if cc.RequiredCooperators < 1 {
		bad("carcass.required_cooperators must be >= 1, got %d", cc.RequiredCooperators)
	}
	if cc.WaitMinutes < 1 {
		bad("carcass.wait_minutes must be >= 1, got %d", cc.WaitMinutes)
	}

	s := c.Senses
	if s.DetectionRange < 0 || s.Earshot < 0 || s.WanderingDistance < 1 || s.NestScanDistance < 0 {
		bad("senses distances must be >= 0 (wandering_distance >= 1)")
	}

	for i, sp := range []SpeciesConfig{c.Species.Boisei, c.Species.Ergaster} {
		name := SpeciesNames[i]
		if sp.DailyCalorieRequirement <= 0 || sp.BellyCapacityGrams <= 0 {
			bad("species.%s requirement and belly capacity must be > 0", name)
		}
		if sp.DietTrackLength < 1 {
			bad("species.%s.diet_track_length must be >= 1, got %d", name, sp.DietTrackLength)
		}
		if !unit(sp.DietThreshold) || !unit(sp.GroupNestingAgentThreshold) {
			bad("species.%s thresholds must be fractions", name)
		}
	}

	if c.Landscape.Path == "" {
		gen := c.Landscape.Generate
		if gen.Width < 1 || gen.Height < 1 || gen.Octaves < 1 || gen.Scale <= 0 {
			bad("landscape.generate needs positive width, height, octaves and scale")
		}
	}

	return errors.Join(errs...)
}

func unit(p float64) bool {
	return p >= 0 && p <= 1
}
