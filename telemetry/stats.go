// Package telemetry aggregates per-window simulation statistics and writes
// them to CSV for offline analysis of long headless runs.
package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for a time window.
type WindowStats struct {
	WindowEndTick int32   `csv:"window_end"`
	SimTimeSec    float64 `csv:"sim_time"`

	// Field state at window end
	ParticleCount int `csv:"particles"`
	BubbleCount   int `csv:"bubbles"`

	// Events during window
	Merges   int `csv:"merges"`
	Spawns   int `csv:"spawns"`
	Removed  int `csv:"removed"`
	Commands int `csv:"commands"`

	// Speed distribution (sampled at window end)
	SpeedMean float64 `csv:"speed_mean"`
	SpeedStd  float64 `csv:"speed_std"`
	SpeedP10  float64 `csv:"speed_p10"`
	SpeedP50  float64 `csv:"speed_p50"`
	SpeedP90  float64 `csv:"speed_p90"`

	FPS float64 `csv:"fps"`
}

// ComputeSpeedStats calculates mean, std, and percentiles from speed samples.
func ComputeSpeedStats(values []float64) (mean, std, p10, p50, p90 float64) {
	if len(values) == 0 {
		return 0, 0, 0, 0, 0
	}

	mean = stat.Mean(values, nil)
	if len(values) > 1 {
		std = stat.StdDev(values, nil)
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	p10 = stat.Quantile(0.10, stat.Empirical, sorted, nil)
	p50 = stat.Quantile(0.50, stat.Empirical, sorted, nil)
	p90 = stat.Quantile(0.90, stat.Empirical, sorted, nil)

	return mean, std, p10, p50, p90
}

// Collector accumulates event counts between window boundaries.
type Collector struct {
	windowTicks int32
	windowStart int32

	merges   int
	spawns   int
	removed  int
	commands int

	speedScratch []float64
}

// NewCollector creates a collector that closes a window every windowTicks.
func NewCollector(windowTicks int32) *Collector {
	if windowTicks < 1 {
		windowTicks = 1
	}
	return &Collector{windowTicks: windowTicks}
}

// RecordMerges adds merges observed this tick.
func (c *Collector) RecordMerges(n int) { c.merges += n }

// RecordSpawns adds particles spawned this tick.
func (c *Collector) RecordSpawns(n int) { c.spawns += n }

// RecordRemoved adds particles removed this tick.
func (c *Collector) RecordRemoved(n int) { c.removed += n }

// RecordCommand counts one dispatched interaction command.
func (c *Collector) RecordCommand() { c.commands++ }

// FieldSampler is the view of the particle field the collector samples at
// window boundaries.
type FieldSampler interface {
	Count() int
	BubbleCount() int
	Speeds(dst []float64) []float64
}

// EndOfTick closes the window if tick is on a boundary. The returned bool is
// false mid-window.
func (c *Collector) EndOfTick(tick int32, simTime float64, field FieldSampler, fps float64) (WindowStats, bool) {
	if tick-c.windowStart < c.windowTicks {
		return WindowStats{}, false
	}

	c.speedScratch = field.Speeds(c.speedScratch[:0])
	mean, std, p10, p50, p90 := ComputeSpeedStats(c.speedScratch)

	stats := WindowStats{
		WindowEndTick: tick,
		SimTimeSec:    simTime,
		ParticleCount: field.Count(),
		BubbleCount:   field.BubbleCount(),
		Merges:        c.merges,
		Spawns:        c.spawns,
		Removed:       c.removed,
		Commands:      c.commands,
		SpeedMean:     mean,
		SpeedStd:      std,
		SpeedP10:      p10,
		SpeedP50:      p50,
		SpeedP90:      p90,
		FPS:           fps,
	}

	c.windowStart = tick
	c.merges = 0
	c.spawns = 0
	c.removed = 0
	c.commands = 0

	return stats, true
}

// LogWindow emits a window summary via slog.
func LogWindow(stats WindowStats) {
	slog.Info("telemetry window",
		"tick", stats.WindowEndTick,
		"particles", stats.ParticleCount,
		"bubbles", stats.BubbleCount,
		"merges", stats.Merges,
		"spawns", stats.Spawns,
		"commands", stats.Commands,
		"speed_mean", stats.SpeedMean,
		"speed_p90", stats.SpeedP90,
		"fps", stats.FPS,
	)
}
