package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error: %v", err)
	}

	if cfg.World.ActiveMinutesPerDay != 720 {
		t.Errorf("active minutes = %d, want 720", cfg.World.ActiveMinutesPerDay)
	}
	if cfg.Carcass.CaloriesPerGram != 1570 {
		t.Errorf("carcass calories per gram = %v, want 1570", cfg.Carcass.CaloriesPerGram)
	}

	zones := cfg.Derived.Zones
	if zones.Width != 40 || zones.Height != 40 || len(zones.Codes) != 1600 {
		t.Errorf("generated landscape %dx%d (%d codes), want 40x40", zones.Width, zones.Height, len(zones.Codes))
	}
	if len(cfg.Derived.Plants) != 10 {
		t.Errorf("plants = %d, want 10", len(cfg.Derived.Plants))
	}
	if len(cfg.Derived.Roster) != 2 {
		t.Fatalf("roster = %d entries, want 2", len(cfg.Derived.Roster))
	}
	erg := cfg.Derived.Roster[1]
	if erg.Species != SpeciesErgaster || !erg.Options.Cooperates || !erg.Options.GroupNesting {
		t.Errorf("ergaster roster = %+v", erg)
	}
}

func TestLoadUserFileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	grid := "CFU\nUUF\n"
	if err := os.WriteFile(filepath.Join(dir, "land.txt"), []byte(grid), 0644); err != nil {
		t.Fatal(err)
	}
	yml := "landscape:\n  path: land.txt\ncarcass:\n  required_cooperators: 2\n"
	path := filepath.Join(dir, "cfg.yaml")
	if err := os.WriteFile(path, []byte(yml), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Carcass.RequiredCooperators != 2 {
		t.Errorf("required cooperators = %d, want 2", cfg.Carcass.RequiredCooperators)
	}
	if cfg.Carcass.GramsPerMinute != 50 {
		t.Errorf("grams per minute = %v, want default 50", cfg.Carcass.GramsPerMinute)
	}
	z := cfg.Derived.Zones
	if z.Width != 3 || z.Height != 2 || z.At(2, 1) != CodeFlooded {
		t.Errorf("landscape = %+v", z)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		yml  string
	}{
		{"zero active minutes", "world:\n  active_minutes_per_day: 0\n"},
		{"nesting longer than day", "world:\n  extra_nesting_steps: 9999\n"},
		{"initial above final", "growth:\n  initial_food_fraction: 0.9\n  final_food_fraction: 0.5\n"},
		{"size sum above one", "carcass:\n  sizes:\n    channel: {small: 0.7, medium: 0.5}\n"},
		{"no cooperators", "carcass:\n  required_cooperators: 0\n"},
		{"short track", "species:\n  boisei:\n    diet_track_length: 0\n"},
		{"unknown species", "roster:\n  - species: ergastr\n    count: 1\n    options: i\n"},
		{"cooperation without meat", "roster:\n  - species: boisei\n    count: 1\n    options: ic\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yml))
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Parse error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestValidateErrorOrderIsStable(t *testing.T) {
	yml := `
carcass:
  appearance: {channel: 2, flooded: -1, unflooded: 3}
  sizes:
    channel:   {small: 0.9, medium: 0.9}
    flooded:   {small: 0.8, medium: 0.8}
    unflooded: {small: 0.7, medium: 0.7}
`
	_, err := Parse([]byte(yml))
	if err == nil {
		t.Fatal("expected validation errors")
	}
	first := err.Error()

	var last int
	for _, want := range []string{
		"carcass.appearance.channel", "carcass.appearance.flooded", "carcass.appearance.unflooded",
		"carcass.sizes.channel", "carcass.sizes.flooded", "carcass.sizes.unflooded",
	} {
		i := strings.Index(first, want)
		if i < last {
			t.Fatalf("%q out of order in:\n%s", want, first)
		}
		last = i
	}

	for i := 0; i < 20; i++ {
		if _, err := Parse([]byte(yml)); err == nil || err.Error() != first {
			t.Fatalf("run %d reported:\n%v\nwant:\n%s", i, err, first)
		}
	}
}

func TestParseZones(t *testing.T) {
	grid, err := ParseZones([]byte("# voi\nc, f, u\n\nU F C\n"))
	if err != nil {
		t.Fatalf("ParseZones error: %v", err)
	}
	if grid.Width != 3 || grid.Height != 2 {
		t.Fatalf("grid %dx%d, want 3x2", grid.Width, grid.Height)
	}
	if grid.At(0, 0) != CodeChannel || grid.At(2, 1) != CodeChannel || grid.At(1, 1) != CodeFlooded {
		t.Errorf("codes = %q", grid.Codes)
	}

	bad := []string{"CFX\n", "CF\nCFU\n", "", "# only a comment\n"}
	for _, in := range bad {
		if _, err := ParseZones([]byte(in)); !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("ParseZones(%q) error = %v, want ErrInvalidConfig", in, err)
		}
	}
}

func TestGenerateZonesDeterministic(t *testing.T) {
	cfg := GenerateConfig{Width: 16, Height: 12, Seed: 3, Scale: 0.1, Octaves: 3, Persistence: 0.5, ChannelBelow: 0.35, FloodedBelow: 0.55}
	a := GenerateZones(cfg)
	b := GenerateZones(cfg)
	if string(a.Codes) != string(b.Codes) {
		t.Error("same seed produced different landscapes")
	}
	for _, c := range a.Codes {
		if c != CodeChannel && c != CodeFlooded && c != CodeUnflooded {
			t.Fatalf("unexpected code %q", c)
		}
	}
}

func TestParsePlants(t *testing.T) {
	plants, err := ParsePlants(defaultPlantsCSV)
	if err != nil {
		t.Fatalf("ParsePlants error: %v", err)
	}
	acacia := plants[0]
	if acacia.Name != "Acacia tortilis" || !bool(acacia.NestingTree) || acacia.Fruiting != (Seasons{true, false, false, true}) {
		t.Errorf("acacia = %+v", acacia)
	}
	if !bool(plants[9].Disabled) {
		t.Error("last species should be disabled")
	}
}

func TestParsePlantsErrors(t *testing.T) {
	header := strings.Join(plantColumns, ",")
	row := func(fields string) []byte { return []byte(header + "\n" + fields + "\n") }

	tests := []struct {
		name string
		data []byte
	}{
		{"missing column", []byte("id,name\n1,x\n")},
		{"bad flag", row("1,a,maybe,N,N,Y,Y,1,1,1,N,YYYY,10,1,0.5,1")},
		{"bad season", row("1,a,N,N,N,Y,Y,1,1,1,N,YYY,10,1,0.5,1")},
		{"zero handling", row("1,a,N,N,N,Y,Y,1,1,1,N,YYYY,10,1,0.5,0")},
		{"visibility above one", row("1,a,N,N,N,Y,Y,1,1,1,N,YYYY,10,1,1.5,1")},
		{"no rows", []byte(header + "\n")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParsePlants(tt.data); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("ParsePlants error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestParseOptions(t *testing.T) {
	tests := []struct {
		in      string
		want    AgentOptions
		wantErr bool
	}{
		{"i", AgentOptions{}, false},
		{"g", AgentOptions{GroupNesting: true}, false},
		{"GDMC", AgentOptions{GroupNesting: true, CanDig: true, CanEatMeat: true, Cooperates: true}, false},
		{"im", AgentOptions{CanEatMeat: true}, false},
		{"ig", AgentOptions{}, true},
		{"ic", AgentOptions{}, true},
		{"ix", AgentOptions{}, true},
	}
	for _, tt := range tests {
		got, err := ParseOptions(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseOptions(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseOptions(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}

	if s := (AgentOptions{GroupNesting: true, CanEatMeat: true, Cooperates: true}).String(); s != "gmc" {
		t.Errorf("String() = %q, want gmc", s)
	}
}

func TestLookupSpeciesSuggestion(t *testing.T) {
	if idx, err := LookupSpecies("Ergaster"); err != nil || idx != SpeciesErgaster {
		t.Errorf("LookupSpecies(Ergaster) = %d, %v", idx, err)
	}
	_, err := LookupSpecies("boisie")
	if err == nil || !strings.Contains(err.Error(), `did you mean "boisei"`) {
		t.Errorf("LookupSpecies(boisie) error = %v, want suggestion", err)
	}
	_, err = LookupSpecies("sapiens")
	if err == nil || strings.Contains(err.Error(), "did you mean") {
		t.Errorf("LookupSpecies(sapiens) error = %v, want no suggestion", err)
	}
}
