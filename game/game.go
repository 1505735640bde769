// Package game wires the particle field, gesture input, audio, rendering and
// telemetry into the frame loop.
package game

import (
	"fmt"
	"log/slog"
	"math/rand/v2"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/vibeforge1111/particle-dance-on-claude/audio"
	"github.com/vibeforge1111/particle-dance-on-claude/config"
	"github.com/vibeforge1111/particle-dance-on-claude/gesture"
	"github.com/vibeforge1111/particle-dance-on-claude/particles"
	"github.com/vibeforge1111/particle-dance-on-claude/renderer"
	"github.com/vibeforge1111/particle-dance-on-claude/telemetry"
	"github.com/vibeforge1111/particle-dance-on-claude/ui"
)

// Title shown in the HUD and window bar.
const Title = "Particle Dance"

// idleTimeout is how long without any interaction before the field switches
// to autonomous drift.
const idleTimeout = 30.0

// Options configures a game instance.
type Options struct {
	Seed      uint64
	Headless  bool
	MaxTicks  int32
	LogStats  bool
	OutputDir string
}

// Game holds the complete application state.
type Game struct {
	rng        *rand.Rand
	store      *particles.Store
	detector   *gesture.MouseDetector
	dispatcher *gesture.Dispatcher

	sound    *audio.Engine
	rend     *renderer.Renderer
	hud      *ui.HUD
	settings *ui.SettingsPanel

	collector *telemetry.Collector
	perf      *telemetry.PerfCollector
	output    *telemetry.OutputManager

	tick     int32
	simTime  float64
	maxTicks int32
	headless bool
	logStats bool

	paused   bool
	showHelp bool

	mergeTotal   int
	lastGesture  gesture.Kind
	lastActivity float64
	pointerHeld  bool
	pointerRepel bool

	screenW, screenH int32
}

// New creates a fully wired game. In headless mode no raylib window or audio
// device is touched, so it is safe on machines without a display.
func New(opts Options) (*Game, error) {
	cfg := config.Cfg()

	// Two stream seeds so reordering audio synthesis can't shift the
	// simulation sequence.
	simRNG := rand.New(rand.NewPCG(opts.Seed, opts.Seed^0x9e3779b97f4a7c15))

	g := &Game{
		rng:      simRNG,
		headless: opts.Headless,
		maxTicks: opts.MaxTicks,
		logStats: opts.LogStats,
		screenW:  int32(cfg.Screen.Width),
		screenH:  int32(cfg.Screen.Height),
	}

	g.store = particles.NewStore(simRNG)
	g.store.SpawnInitial(cfg.Particles.Initial)
	g.detector = gesture.NewMouseDetector()
	g.dispatcher = gesture.NewDispatcher(g.store)

	windowTicks := int32(cfg.Telemetry.StatsWindow * float64(cfg.Screen.TargetFPS))
	g.collector = telemetry.NewCollector(windowTicks)
	g.perf = telemetry.NewPerfCollector(int(windowTicks))

	output, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("initializing output: %w", err)
	}
	g.output = output
	if err := g.output.WriteConfig(cfg); err != nil {
		return nil, fmt.Errorf("writing run config: %w", err)
	}

	if !opts.Headless {
		audioRNG := rand.New(rand.NewPCG(opts.Seed^0xdeadbeef, opts.Seed))
		g.sound = audio.NewEngine(audioRNG)
		g.sound.StartAmbient()
		g.rend = renderer.NewRenderer()
		g.hud = ui.NewHUD()
		g.settings = ui.NewSettingsPanel(g.screenW)
	}

	return g, nil
}

// ShouldStop reports whether a tick limit was set and reached.
func (g *Game) ShouldStop() bool {
	return g.maxTicks > 0 && g.tick >= g.maxTicks
}

// Tick returns the current tick number.
func (g *Game) Tick() int32 {
	return g.tick
}

// Close flushes telemetry and releases audio resources.
func (g *Game) Close() error {
	if g.sound != nil {
		g.sound.Close()
	}
	return g.output.Close()
}

// normalizeDT converts a wall-clock frame time to simulation steps, where one
// step is one frame at the target rate. Capped so a stalled frame doesn't
// slingshot the physics.
func normalizeDT(frameTime float32) float32 {
	dt := frameTime * float32(config.Cfg().Screen.TargetFPS)
	if dt > 3 {
		dt = 3
	}
	return dt
}

// Update advances one interactive frame.
func (g *Game) Update() {
	g.perf.StartTick()
	frameTime := rl.GetFrameTime()

	g.perf.StartPhase(telemetry.PhaseInput)
	g.handleInput()
	g.dispatchCommands(g.detector.Update(g.pollMouse()))

	g.perf.StartPhase(telemetry.PhasePhysics)
	if !g.paused {
		g.step(normalizeDT(frameTime))
	}

	g.perf.StartPhase(telemetry.PhaseAudio)
	g.sound.Update()

	g.simTime += float64(frameTime)
	g.tick++
	g.flushTelemetry(float64(rl.GetFPS()))
	g.perf.EndTick()
}

// step advances the simulation and records what happened.
func (g *Game) step(dt float32) {
	before := g.store.Count()
	g.store.Update(dt)

	merges := g.store.MergeCount()
	if merges > 0 {
		g.mergeTotal += merges
		g.collector.RecordMerges(merges)
		if g.sound != nil {
			g.sound.PlayMerge(g.simTime)
		}
	}
	if after := g.store.Count(); after < before {
		g.collector.RecordRemoved(before - after)
	} else if after > before {
		// Bubble offspring
		g.collector.RecordSpawns(after - before)
	}

	if !g.store.IdleMode() && g.simTime-g.lastActivity > idleTimeout {
		g.store.SetIdleMode(true)
	}
}

// flushTelemetry closes a stats window when due.
func (g *Game) flushTelemetry(fps float64) {
	stats, ok := g.collector.EndOfTick(g.tick, g.simTime, g.store, fps)
	if !ok {
		return
	}
	if g.logStats {
		telemetry.LogWindow(stats)
	}
	if err := g.output.WriteTelemetry(stats); err != nil {
		slog.Error("writing telemetry", "error", err)
	}
	if err := g.output.WritePerf(g.perf.Stats(), g.tick); err != nil {
		slog.Error("writing perf", "error", err)
	}
}
