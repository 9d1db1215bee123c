package config

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"

	opensimplex "github.com/ojrac/opensimplex-go"
)

// Zone codes as they appear in landscape files.
const (
	CodeChannel   byte = 'C'
	CodeFlooded   byte = 'F'
	CodeUnflooded byte = 'U'
)

// ZoneGrid is a validated W×H grid of zone codes, row-major (y*Width + x).
type ZoneGrid struct {
	Width, Height int
	Codes         []byte
}

// At returns the zone code at (x, y).
func (g ZoneGrid) At(x, y int) byte {
	return g.Codes[y*g.Width+x]
}

// ParseZones reads a landscape grid: one row per line, one C/F/U code per
// cell. Spaces, tabs and commas between codes are ignored, as are blank
// lines and lines starting with '#'.
func ParseZones(data []byte) (ZoneGrid, error) {
	var grid ZoneGrid
	sc := bufio.NewScanner(bytes.NewReader(data))
	row := 0
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		var codes []byte
		for col, r := range strings.ToUpper(line) {
			switch r {
			case ' ', '\t', ',':
				continue
			case rune(CodeChannel), rune(CodeFlooded), rune(CodeUnflooded):
				codes = append(codes, byte(r))
			default:
				return ZoneGrid{}, fmt.Errorf("%w: unknown zone code %q at row %d col %d", ErrInvalidConfig, r, row+1, col+1)
			}
		}
		if grid.Width == 0 {
			grid.Width = len(codes)
		} else if len(codes) != grid.Width {
			return ZoneGrid{}, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidConfig, row+1, len(codes), grid.Width)
		}
		grid.Codes = append(grid.Codes, codes...)
		row++
	}
	if err := sc.Err(); err != nil {
		return ZoneGrid{}, fmt.Errorf("scanning landscape: %w", err)
	}
	if row == 0 || grid.Width == 0 {
		return ZoneGrid{}, fmt.Errorf("%w: landscape is empty", ErrInvalidConfig)
	}
	grid.Height = row
	return grid, nil
}

// GenerateZones builds a landscape from layered simplex noise: low values
// become channel, middle values floodplain, the rest unflooded ground.
func GenerateZones(cfg GenerateConfig) ZoneGrid {
	noise := opensimplex.NewNormalized(cfg.Seed)
	grid := ZoneGrid{
		Width:  cfg.Width,
		Height: cfg.Height,
		Codes:  make([]byte, cfg.Width*cfg.Height),
	}
	for y := 0; y < cfg.Height; y++ {
		for x := 0; x < cfg.Width; x++ {
			v := octaveNoise(noise, float64(x), float64(y), cfg.Octaves, cfg.Scale, cfg.Persistence)
			code := CodeUnflooded
			switch {
			case v < cfg.ChannelBelow:
				code = CodeChannel
			case v < cfg.FloodedBelow:
				code = CodeFlooded
			}
			grid.Codes[y*cfg.Width+x] = code
		}
	}
	return grid
}

// octaveNoise generates fractal noise by layering multiple frequencies.
func octaveNoise(noise opensimplex.Noise, x, y float64, octaves int, frequency, persistence float64) float64 {
	total := 0.0
	amplitude := 1.0
	maxVal := 0.0

	for i := 0; i < octaves; i++ {
		total += noise.Eval2(x*frequency, y*frequency) * amplitude
		maxVal += amplitude
		amplitude *= persistence
		frequency *= 2
	}

	return total / maxVal
}
