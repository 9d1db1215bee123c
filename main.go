package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/hominids/config"
	"github.com/pthm-cable/hominids/game"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without graphics")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	years := flag.Int("years", 0, "Years to simulate (0 = use config)")
	days := flag.Int("days", 0, "Days to simulate, overrides -years")
	outputDir := flag.String("output-dir", "", "Output directory for CSV results (empty = use config)")
	archive := flag.String("archive", "", "SQLite archive path (empty = use config)")
	logDays := flag.Bool("log-days", false, "Log every simulated day")

	flag.Parse()

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	totalDays := *days
	if totalDays == 0 {
		y := cfg.World.Years
		if *years > 0 {
			y = *years
		}
		totalDays = y * 365
	}

	opts := game.Options{
		Seed:      rngSeed,
		OutputDir: firstNonEmpty(*outputDir, cfg.Output.Dir),
		Archive:   firstNonEmpty(*archive, cfg.Output.Archive),
		LogDays:   *logDays,
	}

	if *headless {
		if err := runHeadless(cfg, opts, totalDays); err != nil {
			slog.Error("simulation failed", "error", err)
			os.Exit(1)
		}
		return
	}

	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(game.ScreenWidth, game.ScreenHeight, "Hominid foraging")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	w, err := game.NewWorld(cfg, opts)
	if err != nil {
		slog.Error("failed to create world", "error", err)
		os.Exit(1)
	}
	defer w.Close()
	slog.Info("starting simulation", "seed", rngSeed, "days", totalDays, "agents", w.AgentCount())

	v := game.NewViewer(w, game.ScreenWidth, game.ScreenHeight, totalDays)
	for !rl.WindowShouldClose() {
		v.Update()
		v.Draw()
	}
	if err := w.Finish(); err != nil {
		slog.Error("failed to write results", "error", err)
	}
}

// runHeadless simulates totalDays without a window. Ctrl-C stops between
// minutes and still writes the results gathered so far.
func runHeadless(cfg *config.Config, opts game.Options, totalDays int) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	w, err := game.NewWorld(cfg, opts)
	if err != nil {
		return err
	}
	defer w.Close()

	slog.Info("starting headless simulation",
		"seed", opts.Seed,
		"days", totalDays,
		"agents", w.AgentCount(),
		"output_dir", opts.OutputDir,
	)

	err = w.RunDays(ctx, totalDays)
	if errors.Is(err, context.Canceled) {
		slog.Warn("interrupted", "days", w.DaysElapsed())
	} else if err != nil {
		return err
	}
	return w.Finish()
}

func firstNonEmpty(a, b string) string {
	if a != "" {
		return a
	}
	return b
}
