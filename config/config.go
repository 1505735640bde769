// Package config provides configuration loading and access for the simulator.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all simulator configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Particles ParticlesConfig `yaml:"particles"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Merge     MergeConfig     `yaml:"merge"`
	Bubble    BubbleConfig    `yaml:"bubble"`
	Color     ColorConfig     `yaml:"color"`
	Spatial   SpatialConfig   `yaml:"spatial"`
	Gesture   GestureConfig   `yaml:"gesture"`
	Audio     AudioConfig     `yaml:"audio"`
	Render    RenderConfig    `yaml:"render"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	TargetFPS  int  `yaml:"target_fps"`
	Fullscreen bool `yaml:"fullscreen"`
}

// ParticlesConfig holds particle store parameters.
type ParticlesConfig struct {
	Max         int     `yaml:"max"`          // Hard capacity of the store
	Initial     int     `yaml:"initial"`      // Particles seeded at startup
	MinSize     float32 `yaml:"min_size"`     // Lower bound of spawn size range
	MaxSize     float32 `yaml:"max_size"`     // Upper bound of spawn size range
	MassFactor  float32 `yaml:"mass_factor"`  // mass = size * mass_factor
	DriftSpeed  float32 `yaml:"drift_speed"`  // Max random velocity component at spawn
	SpawnMargin float32 `yaml:"spawn_margin"` // Inset from edges for initial seeding
}

// PhysicsConfig holds per-frame integration parameters.
type PhysicsConfig struct {
	Gravity       float32 `yaml:"gravity"`
	Buoyancy      float32 `yaml:"buoyancy"`
	Viscosity     float32 `yaml:"viscosity"` // Multiplicative drag, < 1
	Margin        float32 `yaml:"margin"`    // Boundary inset
	Bounce        float32 `yaml:"bounce"`    // Boundary damping, < 1
	TempFloor     float32 `yaml:"temp_floor"`
	Cooling       float32 `yaml:"cooling"`     // Multiplicative temperature decay
	TrailScale    float32 `yaml:"trail_scale"` // trail_alpha = clamp(speed * scale)
	TrailMinAlpha float32 `yaml:"trail_min_alpha"`
}

// MergeConfig holds merge engine parameters.
type MergeConfig struct {
	Chance          float32 `yaml:"chance"`            // Fraction of frames a merge pass runs
	SampleMax       int     `yaml:"sample_max"`        // Max particles examined per pass
	MaxParticleSize float32 `yaml:"max_particle_size"` // Hard size cap
	BubbleThreshold float32 `yaml:"bubble_threshold"`  // Size at which a particle becomes a bubble
	GrowthFactor    float32 `yaml:"growth_factor"`     // new = s1 + s2 * growth_factor
	RadiusFactor    float32 `yaml:"radius_factor"`     // Query radius = max_particle_size * this
}

// BubbleConfig holds bubble dynamics parameters.
type BubbleConfig struct {
	ExtraBuoyancy float32 `yaml:"extra_buoyancy"` // Velocity bias against gravity direction
	ShrinkRate    float32 `yaml:"shrink_rate"`    // Size lost per frame
	SpawnChance   float32 `yaml:"spawn_chance"`   // Per-frame chance a bubble sheds a child
	SpawnMinSize  float32 `yaml:"spawn_min_size"` // Bubble must be at least this big to shed
	ChildMinSize  float32 `yaml:"child_min_size"`
	ChildMaxSize  float32 `yaml:"child_max_size"`
	SpawnSizeCost float32 `yaml:"spawn_size_cost"` // Size lost when shedding a child
	SpawnOffset   float32 `yaml:"spawn_offset"`    // Child placed within ± this offset
}

// ColorConfig holds color transition parameters.
type ColorConfig struct {
	ShiftSpeed      float32 `yaml:"shift_speed"`      // Fraction of delta applied per frame (x 0.01)
	RetargetDegrees float32 `yaml:"retarget_degrees"` // Hue gap below which a new target is drawn
	HueJitter       float32 `yaml:"hue_jitter"`       // ± degrees applied when picking from palette
	RetargetJitter  float32 `yaml:"retarget_jitter"`  // ± degrees for drift retargets
	SVJitterFloor   float32 `yaml:"sv_jitter_floor"`  // sat/val scaled by uniform [floor, 1]
	Palette         string  `yaml:"palette"`          // Active palette name at startup
}

// SpatialConfig holds spatial index parameters.
type SpatialConfig struct {
	CellSize float32 `yaml:"cell_size"`
}

// GestureConfig maps gestures to force parameters.
type GestureConfig struct {
	TouchRadius     float32 `yaml:"touch_radius"`
	AttractRadius   float32 `yaml:"attract_radius"`
	AttractStrength float32 `yaml:"attract_strength"`
	RepelRadius     float32 `yaml:"repel_radius"`
	RepelStrength   float32 `yaml:"repel_strength"`
	ExplodeRadius   float32 `yaml:"explode_radius"`
	ExplodeStrength float32 `yaml:"explode_strength"`
	VortexRadius    float32 `yaml:"vortex_radius"`
	WaveStrength    float32 `yaml:"wave_strength"`
	TwoHandStrength float32 `yaml:"two_hand_strength"`
	SpawnCount      int     `yaml:"spawn_count"`
	SpawnSpread     float32 `yaml:"spawn_spread"`
	SpawnCooldown   float64 `yaml:"spawn_cooldown"` // Seconds between pinch spawns
}

// AudioConfig holds audio synthesis and playback settings.
type AudioConfig struct {
	Enabled    bool    `yaml:"enabled"`
	Volume     float32 `yaml:"volume"`
	Binaural   bool    `yaml:"binaural"`
	SampleRate int     `yaml:"sample_rate"`
}

// RenderConfig holds render toggles.
type RenderConfig struct {
	Glow   bool `yaml:"glow"`
	Trails bool `yaml:"trails"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow float64 `yaml:"stats_window"` // Window length in seconds
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	ScreenW32 float32
	ScreenH32 float32
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	// Start with embedded defaults
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	// Load user config if provided
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	// Compute derived values
	cfg.computeDerived()

	return cfg, nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.ScreenW32 = float32(c.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Screen.Height)
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
