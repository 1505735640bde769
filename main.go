package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/vibeforge1111/particle-dance-on-claude/config"
	"github.com/vibeforge1111/particle-dance-on-claude/game"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without graphics or audio")
	logStats := flag.Bool("log-stats", false, "Output window stats via slog")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	seed := flag.Uint64("seed", 0, "RNG seed (0 = time-based)")
	maxTicks := flag.Int("max-ticks", 0, "Stop after N ticks (0 = unlimited)")

	flag.Parse()

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = uint64(time.Now().UnixNano())
	}

	// JSON to stdout for structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	opts := game.Options{
		Seed:      rngSeed,
		Headless:  *headless,
		MaxTicks:  int32(*maxTicks),
		LogStats:  *logStats,
		OutputDir: *outputDir,
	}

	if *headless {
		g, err := game.New(opts)
		if err != nil {
			slog.Error("failed to initialize", "error", err)
			os.Exit(1)
		}
		defer g.Close()

		slog.Info("starting headless run",
			"seed", rngSeed,
			"max_ticks", *maxTicks,
		)
		g.RunHeadless(10 * time.Second)
		slog.Info("headless run finished", "tick", g.Tick())
		return
	}

	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), game.Title)
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))
	if cfg.Screen.Fullscreen {
		rl.ToggleFullscreen()
	}

	g, err := game.New(opts)
	if err != nil {
		slog.Error("failed to initialize", "error", err)
		os.Exit(1)
	}
	defer g.Close()

	slog.Info("starting", "seed", rngSeed, "particles", cfg.Particles.Initial)

	for !rl.WindowShouldClose() {
		g.Update()
		g.Draw()

		if g.ShouldStop() {
			break
		}
	}
}
