package telemetry

import (
	"math"
	"testing"
)

func TestComputeSpeedStats(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	mean, std, p10, p50, p90 := ComputeSpeedStats(values)

	if math.Abs(mean-5.5) > 0.001 {
		t.Errorf("mean = %v, want 5.5", mean)
	}
	// Sample standard deviation of 1..10
	if math.Abs(std-3.0277) > 0.001 {
		t.Errorf("std = %v, want ~3.0277", std)
	}
	if p10 != 1 {
		t.Errorf("p10 = %v, want 1", p10)
	}
	if p50 != 5 {
		t.Errorf("p50 = %v, want 5", p50)
	}
	if p90 != 9 {
		t.Errorf("p90 = %v, want 9", p90)
	}
}

func TestComputeSpeedStatsEmpty(t *testing.T) {
	mean, std, p10, p50, p90 := ComputeSpeedStats(nil)
	if mean != 0 || std != 0 || p10 != 0 || p50 != 0 || p90 != 0 {
		t.Errorf("empty input should yield zeros, got %v %v %v %v %v", mean, std, p10, p50, p90)
	}
}

func TestComputeSpeedStatsSingle(t *testing.T) {
	mean, std, _, p50, _ := ComputeSpeedStats([]float64{4.2})
	if mean != 4.2 || p50 != 4.2 {
		t.Errorf("mean/p50 = %v/%v, want 4.2/4.2", mean, p50)
	}
	if std != 0 {
		t.Errorf("std of one sample = %v, want 0", std)
	}
}

// fakeField is a FieldSampler with canned values.
type fakeField struct {
	count   int
	bubbles int
	speeds  []float64
}

func (f *fakeField) Count() int       { return f.count }
func (f *fakeField) BubbleCount() int { return f.bubbles }
func (f *fakeField) Speeds(dst []float64) []float64 {
	return append(dst, f.speeds...)
}

func TestCollectorWindowBoundary(t *testing.T) {
	c := NewCollector(10)
	field := &fakeField{count: 42, bubbles: 3, speeds: []float64{1, 2, 3}}

	c.RecordMerges(2)
	c.RecordSpawns(5)
	c.RecordCommand()

	// Mid-window ticks produce nothing
	for tick := int32(1); tick < 10; tick++ {
		if _, ok := c.EndOfTick(tick, float64(tick)/60, field, 60); ok {
			t.Fatalf("window closed early at tick %d", tick)
		}
	}

	stats, ok := c.EndOfTick(10, 10.0/60, field, 60)
	if !ok {
		t.Fatal("window did not close on the boundary tick")
	}
	if stats.WindowEndTick != 10 {
		t.Errorf("window end = %d, want 10", stats.WindowEndTick)
	}
	if stats.ParticleCount != 42 || stats.BubbleCount != 3 {
		t.Errorf("field state = %d/%d, want 42/3", stats.ParticleCount, stats.BubbleCount)
	}
	if stats.Merges != 2 || stats.Spawns != 5 || stats.Commands != 1 {
		t.Errorf("events = %d/%d/%d, want 2/5/1", stats.Merges, stats.Spawns, stats.Commands)
	}
	if stats.SpeedMean != 2 {
		t.Errorf("speed mean = %v, want 2", stats.SpeedMean)
	}
}

func TestCollectorResetsBetweenWindows(t *testing.T) {
	c := NewCollector(10)
	field := &fakeField{count: 1, speeds: []float64{1}}

	c.RecordMerges(7)
	if _, ok := c.EndOfTick(10, 1, field, 60); !ok {
		t.Fatal("first window did not close")
	}

	stats, ok := c.EndOfTick(20, 2, field, 60)
	if !ok {
		t.Fatal("second window did not close")
	}
	if stats.Merges != 0 {
		t.Errorf("merges leaked across windows: %d", stats.Merges)
	}
}

func TestCollectorMinimumWindow(t *testing.T) {
	c := NewCollector(0) // clamped to 1
	field := &fakeField{count: 1, speeds: []float64{1}}

	if _, ok := c.EndOfTick(1, 0, field, 60); !ok {
		t.Error("single-tick window did not close")
	}
}
