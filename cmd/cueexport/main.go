// cueexport renders every synthesized sound cue to a WAV file so the audio
// recipes can be auditioned and tweaked without launching the simulator.
package main

import (
	"flag"
	"log/slog"
	"math/rand/v2"
	"os"
	"path/filepath"

	"github.com/vibeforge1111/particle-dance-on-claude/audio"
	"github.com/vibeforge1111/particle-dance-on-claude/config"
)

func main() {
	outDir := flag.String("out", "cues", "Output directory for WAV files")
	seed := flag.Uint64("seed", 1, "RNG seed for noise textures")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := config.Init(""); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		slog.Error("creating output directory", "error", err)
		os.Exit(1)
	}

	rng := rand.New(rand.NewPCG(*seed, *seed))
	rate := config.Cfg().Audio.SampleRate

	for name, data := range audio.ExportCues(rng, rate) {
		path := filepath.Join(*outDir, name+".wav")
		if err := os.WriteFile(path, data, 0644); err != nil {
			slog.Error("writing cue", "cue", name, "error", err)
			os.Exit(1)
		}
		slog.Info("wrote cue", "path", path, "bytes", len(data))
	}
}
