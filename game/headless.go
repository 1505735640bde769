package game

import (
	"time"

	"github.com/vibeforge1111/particle-dance-on-claude/config"
	"github.com/vibeforge1111/particle-dance-on-claude/gesture"
	"github.com/vibeforge1111/particle-dance-on-claude/telemetry"
)

// UpdateHeadless advances one fixed-step tick without touching raylib, audio
// or the window system. Used for benchmarks and deterministic CSV runs.
func (g *Game) UpdateHeadless() {
	g.perf.StartTick()

	g.perf.StartPhase(telemetry.PhasePhysics)
	g.step(1)

	g.simTime += 1.0 / float64(config.Cfg().Screen.TargetFPS)
	g.tick++
	g.flushTelemetry(0)
	g.perf.EndTick()
}

// InjectCommand dispatches a gesture command directly, bypassing the mouse
// detector. Headless scripts and tests drive interaction through this.
func (g *Game) InjectCommand(cmd gesture.Command) gesture.Feedback {
	fb := g.dispatcher.Dispatch(cmd, g.simTime)
	g.collector.RecordCommand()
	g.lastGesture = cmd.Kind
	g.lastActivity = g.simTime
	if g.store.IdleMode() {
		g.store.SetIdleMode(false)
	}
	if fb.Spawned > 0 {
		g.collector.RecordSpawns(fb.Spawned)
	}
	return fb
}

// RunHeadless runs until the tick limit (or forever when none is set),
// reporting progress periodically.
func (g *Game) RunHeadless(progressEvery time.Duration) {
	lastReport := time.Now()
	for !g.ShouldStop() {
		g.UpdateHeadless()

		if progressEvery > 0 && time.Since(lastReport) >= progressEvery {
			telemetry.LogPerf(g.perf.Stats())
			lastReport = time.Now()
		}
	}
}
