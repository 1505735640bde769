// Package particles implements the particle simulation core: a dense columnar
// store, a grid-hash spatial index, force field operations, a stochastic merge
// engine, and the color/bubble/boundary behaviors layered on top.
package particles

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/vibeforge1111/particle-dance-on-claude/config"
)

// Vec2 is a 2D vector in screen space.
type Vec2 struct {
	X, Y float32
}

// HSV is a color with hue in [0,360) and saturation/value in [0,1].
type HSV struct {
	H, S, V float32
}

// Store holds all live particle state in dense columnar arrays.
// Live particles occupy contiguous slots [0, count); removal is
// swap-with-last, so indices are not stable across a merge pass.
type Store struct {
	cfg *config.Config
	rng *rand.Rand

	width, height float32
	gravityDir    float32 // 1 = down, -1 = up, 0 = off

	count         int
	positions     []Vec2
	velocities    []Vec2
	accelerations []Vec2
	colors        []HSV
	targetColors  []HSV
	sizes         []float32
	masses        []float32
	temperatures  []float32
	lifetimes     []float32 // reserved, never decremented
	trailAlpha    []float32
	isBubble      []bool

	paletteName string
	palette     []HSV

	recentMerges int

	grid *SpatialHash

	// Idle/screensaver state
	idleMode    bool
	idleTime    float32
	idleAngle   float32
	idleCenters []Vec2

	// Scratch buffers reused across frames
	queryScratch  []Hit
	bubbleScratch []int
}

// NewStore creates an empty store sized from the active configuration.
func NewStore(rng *rand.Rand) *Store {
	cfg := config.Cfg()
	maxParticles := cfg.Particles.Max

	s := &Store{
		cfg:           cfg,
		rng:           rng,
		width:         cfg.Derived.ScreenW32,
		height:        cfg.Derived.ScreenH32,
		gravityDir:    1,
		positions:     make([]Vec2, maxParticles),
		velocities:    make([]Vec2, maxParticles),
		accelerations: make([]Vec2, maxParticles),
		colors:        make([]HSV, maxParticles),
		targetColors:  make([]HSV, maxParticles),
		sizes:         make([]float32, maxParticles),
		masses:        make([]float32, maxParticles),
		temperatures:  make([]float32, maxParticles),
		lifetimes:     make([]float32, maxParticles),
		trailAlpha:    make([]float32, maxParticles),
		isBubble:      make([]bool, maxParticles),
	}

	s.grid = NewSpatialHash(s.width, s.height, cfg.Spatial.CellSize)

	if !s.setPalette(cfg.Color.Palette) {
		s.setPalette("default")
	}

	return s
}

// SpawnOptions overrides the randomized defaults of a spawned particle.
// Nil/zero fields keep the default behavior.
type SpawnOptions struct {
	Velocity *Vec2
	Color    *HSV
	Size     float32 // <= 0 means random in the configured range
}

// Spawn creates a particle at (x, y) with randomized defaults.
// Returns false without mutation when the store is at capacity.
func (s *Store) Spawn(x, y float32) bool {
	return s.SpawnWith(x, y, SpawnOptions{})
}

// SpawnWith creates a particle at (x, y) honoring the given overrides.
// Returns false without mutation when the store is at capacity.
func (s *Store) SpawnWith(x, y float32, opts SpawnOptions) bool {
	if s.count >= s.cfg.Particles.Max {
		return false
	}

	i := s.count
	s.positions[i] = Vec2{X: x, Y: y}

	if opts.Velocity != nil {
		s.velocities[i] = *opts.Velocity
	} else {
		drift := s.cfg.Particles.DriftSpeed
		s.velocities[i] = Vec2{
			X: s.uniform(-drift, drift),
			Y: s.uniform(-drift, drift),
		}
	}

	s.accelerations[i] = Vec2{}

	if opts.Color != nil {
		s.colors[i] = *opts.Color
	} else {
		s.colors[i] = s.pickPaletteColor(s.cfg.Color.HueJitter)
	}
	s.targetColors[i] = s.pickPaletteColor(s.cfg.Color.HueJitter)

	if opts.Size > 0 {
		s.sizes[i] = opts.Size
	} else {
		s.sizes[i] = s.uniform(s.cfg.Particles.MinSize, s.cfg.Particles.MaxSize)
	}

	s.masses[i] = s.sizes[i] * s.cfg.Particles.MassFactor
	s.temperatures[i] = s.uniform(0.3, 1.0)
	s.lifetimes[i] = 1.0
	s.trailAlpha[i] = 1.0
	s.isBubble[i] = false

	s.count++
	return true
}

// SpawnCluster spawns up to count particles with Gaussian offsets around
// (x, y) and small random velocities. Returns the number actually spawned,
// which may be less than requested if capacity is hit.
func (s *Store) SpawnCluster(x, y float32, count int, spread float32) int {
	normal := distuv.Normal{Mu: 0, Sigma: float64(spread), Src: s.rng}

	spawned := 0
	for n := 0; n < count; n++ {
		px := x + float32(normal.Rand())
		py := y + float32(normal.Rand())
		vel := Vec2{X: s.uniform(-1, 1), Y: s.uniform(-1, 1)}
		if s.SpawnWith(px, py, SpawnOptions{Velocity: &vel}) {
			spawned++
		}
	}
	return spawned
}

// SpawnInitial seeds n particles uniformly across the screen, inset by the
// configured spawn margin.
func (s *Store) SpawnInitial(n int) {
	margin := s.cfg.Particles.SpawnMargin
	for range n {
		x := s.uniform(margin, s.width-margin)
		y := s.uniform(margin, s.height-margin)
		s.Spawn(x, y)
	}
}

// Remove deletes the given particle indices via swap-with-last, processed in
// descending order so later removals stay valid. Out-of-range and duplicate
// indices are ignored.
func (s *Store) Remove(indices []int) {
	if len(indices) == 0 {
		return
	}
	marked := make([]bool, s.count)
	for _, idx := range indices {
		if idx >= 0 && idx < s.count {
			marked[idx] = true
		}
	}
	s.removeMarked(marked)
}

// removeMarked swap-removes every marked slot, scanning from the top so a
// particle swapped in from above has already been handled.
func (s *Store) removeMarked(marked []bool) {
	for idx := s.count - 1; idx >= 0; idx-- {
		if marked[idx] {
			s.swapRemove(idx)
		}
	}
}

// swapRemove overwrites slot idx with the last live particle and truncates.
func (s *Store) swapRemove(idx int) {
	last := s.count - 1
	if idx < last {
		s.positions[idx] = s.positions[last]
		s.velocities[idx] = s.velocities[last]
		s.accelerations[idx] = s.accelerations[last]
		s.colors[idx] = s.colors[last]
		s.targetColors[idx] = s.targetColors[last]
		s.sizes[idx] = s.sizes[last]
		s.masses[idx] = s.masses[last]
		s.temperatures[idx] = s.temperatures[last]
		s.lifetimes[idx] = s.lifetimes[last]
		s.trailAlpha[idx] = s.trailAlpha[last]
		s.isBubble[idx] = s.isBubble[last]
	}
	s.count--
}

// Resize rescales all live positions proportionally to the new dimensions.
// Non-positive prior dimensions scale by 1 instead of dividing by zero.
func (s *Store) Resize(width, height float32) {
	scaleX := float32(1)
	scaleY := float32(1)
	if s.width > 0 {
		scaleX = width / s.width
	}
	if s.height > 0 {
		scaleY = height / s.height
	}

	for i := 0; i < s.count; i++ {
		s.positions[i].X *= scaleX
		s.positions[i].Y *= scaleY
	}

	s.width = width
	s.height = height
	s.grid.Resize(width, height)
}

// Reset removes all particles and clears transient state.
func (s *Store) Reset() {
	s.count = 0
	s.recentMerges = 0
	s.grid.Clear()
}

// SetGravityDirection sets gravity direction: 1 = down, -1 = up, 0 = off.
func (s *Store) SetGravityDirection(direction int) {
	s.gravityDir = float32(direction)
}

// GravityDirection returns the current gravity direction as -1, 0 or 1.
func (s *Store) GravityDirection() int {
	return int(s.gravityDir)
}

// Count returns the number of live particles.
func (s *Store) Count() int {
	return s.count
}

// MergeCount returns the number of merges recorded since the last Update
// began. Used to trigger audio feedback.
func (s *Store) MergeCount() int {
	return s.recentMerges
}

// BubbleCount returns the number of live particles flagged as bubbles.
func (s *Store) BubbleCount() int {
	n := 0
	for i := 0; i < s.count; i++ {
		if s.isBubble[i] {
			n++
		}
	}
	return n
}

// Speeds appends the instantaneous speed of every live particle to dst and
// returns the extended slice. Used by telemetry aggregation.
func (s *Store) Speeds(dst []float64) []float64 {
	for i := 0; i < s.count; i++ {
		v := s.velocities[i]
		dst = append(dst, float64(hypot32(v.X, v.Y)))
	}
	return dst
}

// Snapshot is a read-only copy of renderable particle state. Slices are in
// store order, which is not stable across frames due to swap-removal.
type Snapshot struct {
	Count      int
	Positions  []Vec2
	Colors     []HSV
	Sizes      []float32
	TrailAlpha []float32
	IsBubble   []bool
}

// Snapshot copies the current renderable state of all live particles.
func (s *Store) Snapshot() Snapshot {
	n := s.count
	snap := Snapshot{
		Count:      n,
		Positions:  make([]Vec2, n),
		Colors:     make([]HSV, n),
		Sizes:      make([]float32, n),
		TrailAlpha: make([]float32, n),
		IsBubble:   make([]bool, n),
	}
	copy(snap.Positions, s.positions[:n])
	copy(snap.Colors, s.colors[:n])
	copy(snap.Sizes, s.sizes[:n])
	copy(snap.TrailAlpha, s.trailAlpha[:n])
	copy(snap.IsBubble, s.isBubble[:n])
	return snap
}

// uniform returns a uniform random float32 in [lo, hi).
func (s *Store) uniform(lo, hi float32) float32 {
	return lo + s.rng.Float32()*(hi-lo)
}
