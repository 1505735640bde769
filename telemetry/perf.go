package telemetry

import (
	"log/slog"
	"time"
)

// Phase names for the frame step.
const (
	PhaseInput   = "input"
	PhasePhysics = "physics"
	PhaseAudio   = "audio"
	PhaseRender  = "render"
)

// PerfSample holds timing data for a single tick.
type PerfSample struct {
	TickDuration time.Duration
	Phases       map[string]time.Duration
}

// PerfCollector tracks performance metrics over a rolling window.
type PerfCollector struct {
	windowSize  int
	samples     []PerfSample
	writeIndex  int
	sampleCount int

	currentPhases map[string]time.Duration
	tickStart     time.Time
	phaseStart    time.Time
	lastPhase     string
}

// NewPerfCollector creates a collector averaging over windowSize ticks.
func NewPerfCollector(windowSize int) *PerfCollector {
	if windowSize < 1 {
		windowSize = 60
	}
	return &PerfCollector{
		windowSize:    windowSize,
		samples:       make([]PerfSample, windowSize),
		currentPhases: make(map[string]time.Duration),
	}
}

// StartTick begins timing a new tick.
func (p *PerfCollector) StartTick() {
	p.tickStart = time.Now()
	p.currentPhases = make(map[string]time.Duration)
	p.lastPhase = ""
}

// StartPhase begins timing a specific phase, closing the previous one.
func (p *PerfCollector) StartPhase(phase string) {
	now := time.Now()
	if p.lastPhase != "" {
		p.currentPhases[p.lastPhase] += now.Sub(p.phaseStart)
	}
	p.phaseStart = now
	p.lastPhase = phase
}

// EndTick finishes timing the current tick and records the sample.
func (p *PerfCollector) EndTick() {
	now := time.Now()
	if p.lastPhase != "" {
		p.currentPhases[p.lastPhase] += now.Sub(p.phaseStart)
	}

	p.samples[p.writeIndex] = PerfSample{
		TickDuration: now.Sub(p.tickStart),
		Phases:       p.currentPhases,
	}
	p.writeIndex = (p.writeIndex + 1) % p.windowSize
	if p.sampleCount < p.windowSize {
		p.sampleCount++
	}
}

// PerfStats holds aggregated performance statistics over the window.
type PerfStats struct {
	AvgTickDuration time.Duration
	MaxTickDuration time.Duration
	PhaseAvg        map[string]time.Duration
	TicksPerSecond  float64
}

// Stats aggregates the current window.
func (p *PerfCollector) Stats() PerfStats {
	stats := PerfStats{PhaseAvg: make(map[string]time.Duration)}
	if p.sampleCount == 0 {
		return stats
	}

	var total time.Duration
	phaseTotals := make(map[string]time.Duration)
	for i := 0; i < p.sampleCount; i++ {
		s := &p.samples[i]
		total += s.TickDuration
		if s.TickDuration > stats.MaxTickDuration {
			stats.MaxTickDuration = s.TickDuration
		}
		for phase, d := range s.Phases {
			phaseTotals[phase] += d
		}
	}

	n := time.Duration(p.sampleCount)
	stats.AvgTickDuration = total / n
	for phase, d := range phaseTotals {
		stats.PhaseAvg[phase] = d / n
	}
	if stats.AvgTickDuration > 0 {
		stats.TicksPerSecond = float64(time.Second) / float64(stats.AvgTickDuration)
	}
	return stats
}

// PerfStatsCSV is the flattened row written to perf.csv.
type PerfStatsCSV struct {
	WindowEnd   int32   `csv:"window_end"`
	AvgTickUs   int64   `csv:"avg_tick_us"`
	MaxTickUs   int64   `csv:"max_tick_us"`
	InputUs     int64   `csv:"input_us"`
	PhysicsUs   int64   `csv:"physics_us"`
	AudioUs     int64   `csv:"audio_us"`
	RenderUs    int64   `csv:"render_us"`
	TicksPerSec float64 `csv:"ticks_per_sec"`
}

// ToCSV flattens the stats for CSV output.
func (s PerfStats) ToCSV(windowEnd int32) PerfStatsCSV {
	return PerfStatsCSV{
		WindowEnd:   windowEnd,
		AvgTickUs:   s.AvgTickDuration.Microseconds(),
		MaxTickUs:   s.MaxTickDuration.Microseconds(),
		InputUs:     s.PhaseAvg[PhaseInput].Microseconds(),
		PhysicsUs:   s.PhaseAvg[PhasePhysics].Microseconds(),
		AudioUs:     s.PhaseAvg[PhaseAudio].Microseconds(),
		RenderUs:    s.PhaseAvg[PhaseRender].Microseconds(),
		TicksPerSec: s.TicksPerSecond,
	}
}

// LogPerf emits a performance summary via slog.
func LogPerf(stats PerfStats) {
	slog.Debug("perf window",
		"avg_tick", stats.AvgTickDuration,
		"max_tick", stats.MaxTickDuration,
		"ticks_per_sec", stats.TicksPerSecond,
	)
}
