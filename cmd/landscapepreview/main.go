// Landscape preview tool - tune procedural zone generation with sliders.
//
// Usage: go run ./cmd/landscapepreview [-config path]
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
	gui "github.com/gen2brain/raylib-go/raygui"
	"gopkg.in/yaml.v3"

	"github.com/pthm-cable/hominids/config"
)

const (
	windowWidth  = 1000
	windowHeight = 720
	previewSize  = 512
	panelWidth   = windowWidth - previewSize - 30
)

var zoneColors = map[byte]rl.Color{
	config.CodeChannel:   {R: 40, G: 90, B: 160, A: 255},
	config.CodeFlooded:   {R: 90, G: 150, B: 90, A: 255},
	config.CodeUnflooded: {R: 180, G: 160, B: 100, A: 255},
}

func main() {
	configPath := flag.String("config", "", "Path to config file (empty = embedded defaults)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("loading config", "error", err)
		os.Exit(1)
	}
	initial := cfg.Landscape.Generate
	params := initial

	rl.InitWindow(windowWidth, windowHeight, "Landscape Preview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(30)

	grid := config.GenerateZones(params)
	for !rl.WindowShouldClose() {
		changed := false

		rl.BeginDrawing()
		rl.ClearBackground(rl.RayWhite)

		drawGrid(grid)
		rl.DrawRectangleLines(10, 10, previewSize, previewSize, rl.DarkGray)

		statsY := int32(previewSize + 25)
		rl.DrawText(zoneStats(grid), 15, statsY, 16, rl.DarkGray)
		rl.DrawText(fmt.Sprintf("%d x %d cells", grid.Width, grid.Height), 15, statsY+20, 16, rl.DarkGray)

		panelX := float32(previewSize + 20)
		panelY := float32(10)
		rl.DrawText("Landscape Generation", int32(panelX), int32(panelY), 20, rl.DarkGray)
		panelY += 35

		slider := func(label, format string, value, lo, hi float32) float32 {
			rl.DrawText(label, int32(panelX), int32(panelY), 14, rl.Gray)
			panelY += 18
			v := gui.SliderBar(
				rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
				fmt.Sprintf(format, lo), fmt.Sprintf(format, hi),
				value, lo, hi,
			)
			rl.DrawText(fmt.Sprintf(format, value), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.DarkGray)
			panelY += 35
			if v != value {
				changed = true
			}
			return v
		}

		params.Width = int(slider("Width (cells)", "%.0f", float32(params.Width), 8, 128))
		params.Height = int(slider("Height (cells)", "%.0f", float32(params.Height), 8, 128))
		params.Scale = float64(slider("Scale (base noise frequency)", "%.3f", float32(params.Scale), 0.01, 0.3))
		params.Octaves = int(slider("Octaves (detail level)", "%.0f", float32(params.Octaves), 1, 6))
		params.Persistence = float64(slider("Persistence (amplitude per octave)", "%.2f", float32(params.Persistence), 0.2, 0.9))
		params.ChannelBelow = float64(slider("Channel below", "%.2f", float32(params.ChannelBelow), 0, 1))
		params.FloodedBelow = float64(slider("Flooded below", "%.2f", float32(params.FloodedBelow), 0, 1))
		params.Seed = int64(slider("Seed", "%.0f", float32(params.Seed), 0, 99999))
		if params.FloodedBelow < params.ChannelBelow {
			params.FloodedBelow = params.ChannelBelow
		}
		panelY += 10

		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, "Random Seed") {
			params.Seed = int64(rl.GetRandomValue(0, 99999))
			changed = true
		}
		if gui.Button(rl.Rectangle{X: panelX + 130, Y: panelY, Width: 120, Height: 30}, "Reset All") {
			params = initial
			changed = true
		}
		panelY += 45

		snippet := generateYAML(params)
		rl.DrawText("YAML Config:", int32(panelX), int32(panelY), 16, rl.DarkGray)
		panelY += 25
		for _, line := range strings.Split(strings.TrimRight(snippet, "\n"), "\n") {
			rl.DrawText(line, int32(panelX), int32(panelY), 14, rl.Gray)
			panelY += 16
		}

		rl.DrawText("Press C to copy YAML to clipboard", int32(panelX), int32(windowHeight-30), 12, rl.LightGray)
		if rl.IsKeyPressed(rl.KeyC) {
			rl.SetClipboardText(snippet)
		}

		rl.EndDrawing()

		if changed {
			grid = config.GenerateZones(params)
		}
	}
}

// drawGrid scales the zone grid into the preview square.
func drawGrid(grid config.ZoneGrid) {
	cell := float32(previewSize) / float32(max(grid.Width, grid.Height))
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			rl.DrawRectangleRec(rl.Rectangle{
				X:      10 + float32(x)*cell,
				Y:      10 + float32(y)*cell,
				Width:  cell + 0.5,
				Height: cell + 0.5,
			}, zoneColors[grid.At(x, y)])
		}
	}
}

func zoneStats(grid config.ZoneGrid) string {
	var channel, flooded, unflooded int
	for _, c := range grid.Codes {
		switch c {
		case config.CodeChannel:
			channel++
		case config.CodeFlooded:
			flooded++
		default:
			unflooded++
		}
	}
	n := float64(max(len(grid.Codes), 1))
	return fmt.Sprintf("Channel %.0f%%  Flooded %.0f%%  Unflooded %.0f%%",
		100*float64(channel)/n, 100*float64(flooded)/n, 100*float64(unflooded)/n)
}

// generateYAML renders params as a landscape block ready to paste into a config file.
func generateYAML(params config.GenerateConfig) string {
	doc := map[string]any{
		"landscape": map[string]any{"generate": params},
	}
	out, err := yaml.Marshal(doc)
	if err != nil {
		return err.Error()
	}
	return string(out)
}
