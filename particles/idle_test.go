package particles

import "testing"

func TestSetIdleModePlacesCenters(t *testing.T) {
	s := newTestStore(t, 1)

	s.SetIdleMode(true)

	if !s.IdleMode() {
		t.Fatal("idle mode not enabled")
	}
	if len(s.idleCenters) != idleCenterCount {
		t.Fatalf("centers = %d, want %d", len(s.idleCenters), idleCenterCount)
	}
	for i, c := range s.idleCenters {
		if c.X < s.width*0.2 || c.X > s.width*0.8 || c.Y < s.height*0.2 || c.Y > s.height*0.8 {
			t.Errorf("center %d at %v outside the inner region", i, c)
		}
	}
}

func TestIdleModeDisable(t *testing.T) {
	s := newTestStore(t, 1)
	s.SetIdleMode(true)
	s.SetIdleMode(false)

	if s.IdleMode() {
		t.Error("idle mode still enabled")
	}
}

func TestIdleKeepsCentersClamped(t *testing.T) {
	s := newTestStore(t, 1)
	s.Spawn(640, 360)
	s.SetIdleMode(true)

	for range 1000 {
		s.updateIdle(1)
	}

	for i, c := range s.idleCenters {
		if c.X < s.width*0.1 || c.X > s.width*0.9 || c.Y < s.height*0.1 || c.Y > s.height*0.9 {
			t.Errorf("center %d drifted out of bounds: %v", i, c)
		}
	}
}

func TestIdleMovesDistantParticles(t *testing.T) {
	s := newTestStore(t, 1)
	vel := Vec2{}
	s.SpawnWith(s.cfg.Physics.Margin, s.cfg.Physics.Margin, SpawnOptions{Velocity: &vel, Size: 8})
	s.SetIdleMode(true)

	s.updateIdle(1)

	if s.velocities[0] == (Vec2{}) {
		t.Error("particle far from all centers should feel idle forces")
	}
}
