package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load defaults: %v", err)
	}

	if cfg.Screen.Width <= 0 || cfg.Screen.Height <= 0 {
		t.Errorf("screen = %dx%d, want positive", cfg.Screen.Width, cfg.Screen.Height)
	}
	if cfg.Particles.Max < cfg.Particles.Initial {
		t.Errorf("max %d < initial %d", cfg.Particles.Max, cfg.Particles.Initial)
	}
	if cfg.Physics.Viscosity <= 0 || cfg.Physics.Viscosity >= 1 {
		t.Errorf("viscosity = %v, want in (0, 1)", cfg.Physics.Viscosity)
	}
	if cfg.Merge.Chance < 0 || cfg.Merge.Chance > 1 {
		t.Errorf("merge chance = %v, want in [0, 1]", cfg.Merge.Chance)
	}
	if cfg.Color.Palette == "" {
		t.Error("no default palette configured")
	}
	if cfg.Audio.SampleRate <= 0 {
		t.Errorf("sample rate = %d, want positive", cfg.Audio.SampleRate)
	}
}

func TestLoadComputesDerived(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load defaults: %v", err)
	}

	if cfg.Derived.ScreenW32 != float32(cfg.Screen.Width) {
		t.Errorf("derived width = %v, want %d", cfg.Derived.ScreenW32, cfg.Screen.Width)
	}
	if cfg.Derived.ScreenH32 != float32(cfg.Screen.Height) {
		t.Errorf("derived height = %v, want %d", cfg.Derived.ScreenH32, cfg.Screen.Height)
	}
}

func TestLoadOverridesMerge(t *testing.T) {
	path := filepath.Join(t.TempDir(), "override.yaml")
	override := "particles:\n  max: 123\n"
	if err := os.WriteFile(path, []byte(override), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load override: %v", err)
	}

	if cfg.Particles.Max != 123 {
		t.Errorf("max = %d, want overridden 123", cfg.Particles.Max)
	}
	// Untouched fields keep the defaults
	if cfg.Screen.Width != 1280 {
		t.Errorf("width = %d, want default 1280", cfg.Screen.Width)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/config.yaml"); err == nil {
		t.Error("missing file should error")
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("particles: [not a map"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("malformed YAML should error")
	}
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load defaults: %v", err)
	}
	cfg.Particles.Max = 777

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("WriteYAML: %v", err)
	}

	back, err := Load(path)
	if err != nil {
		t.Fatalf("reloading written config: %v", err)
	}
	if back.Particles.Max != 777 {
		t.Errorf("round-trip max = %d, want 777", back.Particles.Max)
	}
}

func TestMustInitAndCfg(t *testing.T) {
	MustInit("")
	cfg := Cfg()
	if cfg == nil {
		t.Fatal("Cfg returned nil after Init")
	}
}
