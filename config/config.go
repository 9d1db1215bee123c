// Package config provides configuration loading and access for the simulation.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// ErrInvalidConfig marks every load-time validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds all simulation configuration parameters.
type Config struct {
	World     WorldConfig     `yaml:"world"`
	Landscape LandscapeConfig `yaml:"landscape"`
	Plants    PlantsConfig    `yaml:"plants"`
	Growth    GrowthConfig    `yaml:"growth"`
	Carcass   CarcassConfig   `yaml:"carcass"`
	Senses    SensesConfig    `yaml:"senses"`
	Species   SpeciesSet      `yaml:"species"`
	Roster    []RosterEntry   `yaml:"roster"`
	Output    OutputConfig    `yaml:"output"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// WorldConfig holds the simulated clock settings.
type WorldConfig struct {
	ActiveMinutesPerDay int `yaml:"active_minutes_per_day"` // Foraging minutes per simulated day
	ExtraNestingSteps   int `yaml:"extra_nesting_steps"`    // Agents look for a nest when this many minutes remain
	Years               int `yaml:"years"`                  // Default run length
}

// LandscapeConfig selects the zone grid source.
// When Path is empty a grid is generated from simplex noise.
type LandscapeConfig struct {
	Path     string         `yaml:"path"`
	Generate GenerateConfig `yaml:"generate"`
}

// GenerateConfig holds procedural landscape parameters.
type GenerateConfig struct {
	Width        int     `yaml:"width"`
	Height       int     `yaml:"height"`
	Seed         int64   `yaml:"seed"`
	Scale        float64 `yaml:"scale"` // Base noise frequency per cell
	Octaves      int     `yaml:"octaves"`
	Persistence  float64 `yaml:"persistence"`   // Amplitude multiplier per octave
	ChannelBelow float64 `yaml:"channel_below"` // Noise below this is channel
	FloodedBelow float64 `yaml:"flooded_below"` // Noise below this (and above channel) is floodplain
}

// PlantsConfig selects the plant species table.
// When Path is empty the embedded table is used.
type PlantsConfig struct {
	Path string `yaml:"path"`
}

// GrowthConfig holds plant regrowth parameters.
type GrowthConfig struct {
	InitialFoodFraction float64 `yaml:"initial_food_fraction"` // Floor outside fruiting, starting abundance
	FinalFoodFraction   float64 `yaml:"final_food_fraction"`   // Logistic target during fruiting
	GrowthRate          float64 `yaml:"growth_rate"`           // Intrinsic logistic rate per day
	DecayRate           float64 `yaml:"decay_rate"`            // Exponential decay per day
	ReseedFraction      float64 `yaml:"reseed_fraction"`       // Abundance restored from exactly zero
}

// ZoneValues holds one value per landscape zone.
type ZoneValues struct {
	Channel   float64 `yaml:"channel"`
	Flooded   float64 `yaml:"flooded"`
	Unflooded float64 `yaml:"unflooded"`
}

// SizeDistribution holds small and medium carcass probabilities for a zone.
// Large takes the remainder.
type SizeDistribution struct {
	Small  float64 `yaml:"small"`
	Medium float64 `yaml:"medium"`
}

// ZoneSizes holds the size distribution per zone.
type ZoneSizes struct {
	Channel   SizeDistribution `yaml:"channel"`
	Flooded   SizeDistribution `yaml:"flooded"`
	Unflooded SizeDistribution `yaml:"unflooded"`
}

// CarcassWeights holds carcass masses in grams by size.
type CarcassWeights struct {
	Small  float64 `yaml:"small"`
	Medium float64 `yaml:"medium"`
	Large  float64 `yaml:"large"`
}

// CarcassConfig holds carcass appearance and scavenging parameters.
type CarcassConfig struct {
	Appearance          ZoneValues     `yaml:"appearance"` // Daily appearance probability per cell
	Sizes               ZoneSizes      `yaml:"sizes"`
	Weights             CarcassWeights `yaml:"weights"`
	CaloriesPerGram     float64        `yaml:"calories_per_gram"`
	GramsPerMinute      float64        `yaml:"grams_per_minute"`
	RequiredCooperators int            `yaml:"required_cooperators"`
	WaitMinutes         int            `yaml:"wait_minutes"`
}

// SensesConfig holds detection and movement distances in cells.
type SensesConfig struct {
	DetectionRange    int `yaml:"detection_range"` // Raw Manhattan carcass detection
	Earshot           int `yaml:"earshot"`         // Toroidal Manhattan call range
	WanderingDistance int `yaml:"wandering_distance"`
	NestScanDistance  int `yaml:"nest_scan_distance"`
}

// SpeciesConfig holds per-hominid physiology.
type SpeciesConfig struct {
	DailyCalorieRequirement    float64 `yaml:"daily_calorie_requirement"`
	BellyCapacityGrams         float64 `yaml:"belly_capacity_grams"`
	DietTrackLength            int     `yaml:"diet_track_length"` // Days examined for starvation
	DietThreshold              float64 `yaml:"diet_threshold"`    // Fraction of the requirement
	GroupNestingAgentThreshold float64 `yaml:"group_nesting_agent_threshold"`
}

// SpeciesSet holds physiology for both hominid species.
type SpeciesSet struct {
	Boisei   SpeciesConfig `yaml:"boisei"`
	Ergaster SpeciesConfig `yaml:"ergaster"`
}

// RosterEntry requests Count agents of a species with a capability string.
type RosterEntry struct {
	Species string `yaml:"species"`
	Count   int    `yaml:"count"`
	Options string `yaml:"options"`
}

// OutputConfig holds result file settings.
type OutputConfig struct {
	Dir     string `yaml:"dir"`     // CSV output directory (empty = disabled)
	Archive string `yaml:"archive"` // SQLite archive path (empty = disabled)
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	Zones  ZoneGrid      // Validated landscape
	Plants []PlantRecord // Validated plant table, file order
	Roster []RosterSpec  // Parsed roster requests
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used. Relative table paths
// are resolved against the config file's directory.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	baseDir := ""
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
		baseDir = filepath.Dir(path)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.computeDerived(baseDir); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse builds a configuration from YAML bytes merged over the defaults.
// Table paths are resolved against the working directory.
func Parse(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.computeDerived(""); err != nil {
		return nil, err
	}
	return cfg, nil
}

// computeDerived loads the landscape and plant tables and parses the roster.
func (c *Config) computeDerived(baseDir string) error {
	zones, err := c.loadZones(baseDir)
	if err != nil {
		return err
	}
	c.Derived.Zones = zones

	plants, err := c.loadPlants(baseDir)
	if err != nil {
		return err
	}
	c.Derived.Plants = plants

	roster, err := ParseRoster(c.Roster)
	if err != nil {
		return err
	}
	c.Derived.Roster = roster
	return nil
}

func (c *Config) loadZones(baseDir string) (ZoneGrid, error) {
	if c.Landscape.Path == "" {
		return GenerateZones(c.Landscape.Generate), nil
	}
	data, err := os.ReadFile(resolve(baseDir, c.Landscape.Path))
	if err != nil {
		return ZoneGrid{}, fmt.Errorf("reading landscape: %w", err)
	}
	grid, err := ParseZones(data)
	if err != nil {
		return ZoneGrid{}, fmt.Errorf("landscape %s: %w", c.Landscape.Path, err)
	}
	return grid, nil
}

func (c *Config) loadPlants(baseDir string) ([]PlantRecord, error) {
	data := defaultPlantsCSV
	if c.Plants.Path != "" {
		var err error
		data, err = os.ReadFile(resolve(baseDir, c.Plants.Path))
		if err != nil {
			return nil, fmt.Errorf("reading plant table: %w", err)
		}
	}
	plants, err := ParsePlants(data)
	if err != nil {
		return nil, fmt.Errorf("plant table: %w", err)
	}
	return plants, nil
}

func resolve(baseDir, path string) string {
	if baseDir == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(baseDir, path)
}

// SpeciesParams returns the physiology for a species index (see SpeciesNames).
func (c *Config) SpeciesParams(species int) SpeciesConfig {
	if species == SpeciesErgaster {
		return c.Species.Ergaster
	}
	return c.Species.Boisei
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := c.YAML()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// YAML returns the configuration serialized as YAML.
func (c *Config) YAML() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("marshaling config: %w", err)
	}
	return data, nil
}
