package config

import (
	"bytes"
	_ "embed"
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/gocarina/gocsv"
)

//go:embed plants.csv
var defaultPlantsCSV []byte

// PlantRecord is one row of the plant species table.
type PlantRecord struct {
	ID               int     `csv:"id"`
	Name             string  `csv:"name"`
	Disabled         Flag    `csv:"disabled"`
	ToolsRequired    Flag    `csv:"tools_required"`
	DiggingPhase     Flag    `csv:"has_digging_phase"`
	EdibleByBoisei   Flag    `csv:"edible_by_boisei"`
	EdibleByErgaster Flag    `csv:"edible_by_ergaster"`
	PerChannel       float64 `csv:"plants_per_channel"`
	PerFlooded       float64 `csv:"plants_per_flooded"`
	PerUnflooded     float64 `csv:"plants_per_unflooded"`
	NestingTree      Flag    `csv:"nesting_tree"`
	Fruiting         Seasons `csv:"seasons_fruiting"`
	GramsPerUnit     float64 `csv:"grams_per_feeding_unit"`
	CaloriesPerGram  float64 `csv:"calories_per_gram"`
	Visibility       float64 `csv:"visibility_probability"`
	HandlingMinutes  float64 `csv:"handling_time_minutes"`
}

// Flag is a Y/N spreadsheet column.
type Flag bool

// UnmarshalCSV accepts Y/N (any case) and an empty cell as N.
func (f *Flag) UnmarshalCSV(s string) error {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "Y", "YES", "TRUE", "1":
		*f = true
	case "", "N", "NO", "FALSE", "0":
		*f = false
	default:
		return fmt.Errorf("flag %q is not Y or N", s)
	}
	return nil
}

// MarshalCSV writes Y or N.
func (f Flag) MarshalCSV() (string, error) {
	if f {
		return "Y", nil
	}
	return "N", nil
}

// Seasons is a four-letter Y/N fruiting pattern, e.g. "YYNN".
type Seasons [4]bool

// UnmarshalCSV parses a four-letter Y/N pattern.
func (s *Seasons) UnmarshalCSV(v string) error {
	v = strings.ToUpper(strings.TrimSpace(v))
	if len(v) != 4 {
		return fmt.Errorf("fruiting pattern %q must have 4 letters", v)
	}
	for i := 0; i < 4; i++ {
		switch v[i] {
		case 'Y':
			s[i] = true
		case 'N':
			s[i] = false
		default:
			return fmt.Errorf("fruiting pattern %q: letter %d is not Y or N", v, i+1)
		}
	}
	return nil
}

// MarshalCSV writes the four-letter pattern.
func (s Seasons) MarshalCSV() (string, error) {
	var b [4]byte
	for i, on := range s {
		b[i] = 'N'
		if on {
			b[i] = 'Y'
		}
	}
	return string(b[:]), nil
}

// plantColumns lists the columns every plant table must carry.
var plantColumns = []string{
	"id", "name", "disabled", "tools_required", "has_digging_phase",
	"edible_by_boisei", "edible_by_ergaster",
	"plants_per_channel", "plants_per_flooded", "plants_per_unflooded",
	"nesting_tree", "seasons_fruiting", "grams_per_feeding_unit",
	"calories_per_gram", "visibility_probability", "handling_time_minutes",
}

// ParsePlants decodes and validates a plant species table.
func ParsePlants(data []byte) ([]PlantRecord, error) {
	header, err := csv.NewReader(bytes.NewReader(data)).Read()
	if err != nil {
		return nil, fmt.Errorf("%w: reading header: %v", ErrInvalidConfig, err)
	}
	have := make(map[string]bool, len(header))
	for _, h := range header {
		have[strings.TrimSpace(h)] = true
	}
	for _, col := range plantColumns {
		if !have[col] {
			return nil, fmt.Errorf("%w: missing column %q", ErrInvalidConfig, col)
		}
	}

	var records []PlantRecord
	if err := gocsv.UnmarshalBytes(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: no plant species", ErrInvalidConfig)
	}

	seen := make(map[int]bool, len(records))
	for i, r := range records {
		row := i + 2
		switch {
		case strings.TrimSpace(r.Name) == "":
			return nil, fmt.Errorf("%w: row %d: empty name", ErrInvalidConfig, row)
		case seen[r.ID]:
			return nil, fmt.Errorf("%w: row %d: duplicate id %d", ErrInvalidConfig, row, r.ID)
		case r.HandlingMinutes <= 0:
			return nil, fmt.Errorf("%w: %s: handling_time_minutes must be > 0", ErrInvalidConfig, r.Name)
		case r.GramsPerUnit <= 0 || r.CaloriesPerGram < 0:
			return nil, fmt.Errorf("%w: %s: feeding unit and calories must be positive", ErrInvalidConfig, r.Name)
		case !unit(r.Visibility):
			return nil, fmt.Errorf("%w: %s: visibility_probability %v is not a probability", ErrInvalidConfig, r.Name, r.Visibility)
		case r.PerChannel < 0 || r.PerFlooded < 0 || r.PerUnflooded < 0:
			return nil, fmt.Errorf("%w: %s: negative density", ErrInvalidConfig, r.Name)
		}
		seen[r.ID] = true
	}
	return records, nil
}
