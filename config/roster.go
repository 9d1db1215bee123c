package config

import (
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Species indices shared with the simulation.
const (
	SpeciesBoisei = iota
	SpeciesErgaster
)

// SpeciesNames maps species indices to their roster names.
var SpeciesNames = []string{"boisei", "ergaster"}

// AgentOptions is a parsed capability string.
type AgentOptions struct {
	GroupNesting bool
	CanDig       bool
	CanEatMeat   bool
	Cooperates   bool
}

// String returns the canonical capability string.
func (o AgentOptions) String() string {
	var b strings.Builder
	if o.GroupNesting {
		b.WriteByte('g')
	} else {
		b.WriteByte('i')
	}
	if o.CanDig {
		b.WriteByte('d')
	}
	if o.CanEatMeat {
		b.WriteByte('m')
	}
	if o.Cooperates {
		b.WriteByte('c')
	}
	return b.String()
}

// RosterSpec is a validated roster request.
type RosterSpec struct {
	Species int
	Count   int
	Options AgentOptions
}

// ParseOptions decodes a capability string: i (individual nesting) or
// g (group nesting), d (digging), m (meat eating), c (cooperation).
// Letters are case-insensitive; cooperation requires meat eating.
func ParseOptions(s string) (AgentOptions, error) {
	var o AgentOptions
	var sawI bool
	for _, r := range strings.ToLower(s) {
		switch r {
		case 'i':
			sawI = true
		case 'g':
			o.GroupNesting = true
		case 'd':
			o.CanDig = true
		case 'm':
			o.CanEatMeat = true
		case 'c':
			o.Cooperates = true
		case ' ', '-':
		default:
			return AgentOptions{}, fmt.Errorf("%w: unknown option %q in %q", ErrInvalidConfig, r, s)
		}
	}
	if sawI && o.GroupNesting {
		return AgentOptions{}, fmt.Errorf("%w: options %q ask for both individual and group nesting", ErrInvalidConfig, s)
	}
	if o.Cooperates && !o.CanEatMeat {
		return AgentOptions{}, fmt.Errorf("%w: options %q: cooperation requires meat eating (m)", ErrInvalidConfig, s)
	}
	return o, nil
}

// LookupSpecies resolves a species name, suggesting the closest match on failure.
func LookupSpecies(name string) (int, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	best, bestDist := "", -1
	for i, n := range SpeciesNames {
		if key == n {
			return i, nil
		}
		d := levenshtein.ComputeDistance(key, n)
		if bestDist < 0 || d < bestDist {
			best, bestDist = n, d
		}
	}
	if bestDist >= 0 && bestDist <= suggestLimit(len(best)) {
		return -1, fmt.Errorf("%w: unknown species %q (did you mean %q?)", ErrInvalidConfig, name, best)
	}
	return -1, fmt.Errorf("%w: unknown species %q", ErrInvalidConfig, name)
}

func suggestLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}

// ParseRoster validates roster entries.
func ParseRoster(entries []RosterEntry) ([]RosterSpec, error) {
	specs := make([]RosterSpec, 0, len(entries))
	for _, e := range entries {
		species, err := LookupSpecies(e.Species)
		if err != nil {
			return nil, err
		}
		if e.Count < 0 {
			return nil, fmt.Errorf("%w: roster count for %s must be >= 0, got %d", ErrInvalidConfig, e.Species, e.Count)
		}
		opts, err := ParseOptions(e.Options)
		if err != nil {
			return nil, err
		}
		specs = append(specs, RosterSpec{Species: species, Count: e.Count, Options: opts})
	}
	return specs, nil
}
