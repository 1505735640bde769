package particles

import "testing"

func TestUpdateEmptyStore(t *testing.T) {
	s := newTestStore(t, 1)
	s.Update(1) // must not panic
	if s.Count() != 0 {
		t.Errorf("count = %d, want 0", s.Count())
	}
}

func TestUpdateResetsMergeCounter(t *testing.T) {
	s := newTestStore(t, 1)
	s.Spawn(400, 400) // single particle: the merge pass can never fire
	s.recentMerges = 5

	s.Update(1)

	if s.MergeCount() != 0 {
		t.Errorf("merge count = %d, want 0 after a merge-free frame", s.MergeCount())
	}
}

func TestWarmParticlesFallSlower(t *testing.T) {
	s := newTestStore(t, 1)
	vel := Vec2{}
	s.SpawnWith(400, 300, SpawnOptions{Velocity: &vel, Size: 8})
	s.SpawnWith(600, 300, SpawnOptions{Velocity: &vel, Size: 8})
	s.temperatures[0] = 0.2
	s.temperatures[1] = 1.0

	s.Update(1)

	// acceleration.Y = gravity - buoyancy*temp, so the cold particle gains
	// more downward velocity
	if s.velocities[0].Y <= s.velocities[1].Y {
		t.Errorf("cold vy %v should exceed warm vy %v", s.velocities[0].Y, s.velocities[1].Y)
	}
	if s.velocities[1].Y <= 0 {
		t.Errorf("gravity should still win at temp 1: vy = %v", s.velocities[1].Y)
	}
}

func TestGravityFlip(t *testing.T) {
	s := newTestStore(t, 1)
	vel := Vec2{}
	s.SpawnWith(400, 300, SpawnOptions{Velocity: &vel, Size: 8})
	s.SetGravityDirection(-1)

	s.Update(1)

	if s.velocities[0].Y >= 0 {
		t.Errorf("inverted gravity should push upward, vy = %v", s.velocities[0].Y)
	}
}

func TestViscosityDampsVelocity(t *testing.T) {
	s := newTestStore(t, 1)
	vel := Vec2{X: 10, Y: 0}
	s.SpawnWith(400, 300, SpawnOptions{Velocity: &vel, Size: 8})

	s.Update(1)

	if s.velocities[0].X >= 10 || s.velocities[0].X < 9 {
		t.Errorf("vx = %v, want damped to ~9.5", s.velocities[0].X)
	}
}

func TestBoundaryClampAndBounce(t *testing.T) {
	s := newTestStore(t, 1)
	margin := s.cfg.Physics.Margin
	bounce := s.cfg.Physics.Bounce

	vel := Vec2{X: -8, Y: 0}
	s.SpawnWith(margin-20, 300, SpawnOptions{Velocity: &vel, Size: 8})

	s.handleBoundaries()

	if s.positions[0].X != margin {
		t.Errorf("x = %v, want clamped to margin %v", s.positions[0].X, margin)
	}
	if want := 8 * bounce; s.velocities[0].X != want {
		t.Errorf("vx = %v, want reflected inward %v", s.velocities[0].X, want)
	}
}

func TestBoundaryAllFourEdges(t *testing.T) {
	s := newTestStore(t, 1)
	margin := s.cfg.Physics.Margin
	right := s.width - margin
	bottom := s.height - margin

	tests := []struct {
		name   string
		pos    Vec2
		vel    Vec2
		wantP  Vec2
		signX  float32 // expected sign of vx after (0 = unchanged)
		signY  float32
	}{
		{"left", Vec2{X: 0, Y: 300}, Vec2{X: -4, Y: 0}, Vec2{X: margin, Y: 300}, 1, 0},
		{"right", Vec2{X: s.width, Y: 300}, Vec2{X: 4, Y: 0}, Vec2{X: right, Y: 300}, -1, 0},
		{"top", Vec2{X: 300, Y: 0}, Vec2{X: 0, Y: -4}, Vec2{X: 300, Y: margin}, 0, 1},
		{"bottom", Vec2{X: 300, Y: s.height}, Vec2{X: 0, Y: 4}, Vec2{X: 300, Y: bottom}, 0, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s.Reset()
			v := tt.vel
			s.SpawnWith(tt.pos.X, tt.pos.Y, SpawnOptions{Velocity: &v, Size: 8})

			s.handleBoundaries()

			if s.positions[0] != tt.wantP {
				t.Errorf("pos = %v, want %v", s.positions[0], tt.wantP)
			}
			if tt.signX > 0 && s.velocities[0].X <= 0 {
				t.Errorf("vx = %v, want > 0", s.velocities[0].X)
			}
			if tt.signX < 0 && s.velocities[0].X >= 0 {
				t.Errorf("vx = %v, want < 0", s.velocities[0].X)
			}
			if tt.signY > 0 && s.velocities[0].Y <= 0 {
				t.Errorf("vy = %v, want > 0", s.velocities[0].Y)
			}
			if tt.signY < 0 && s.velocities[0].Y >= 0 {
				t.Errorf("vy = %v, want < 0", s.velocities[0].Y)
			}
		})
	}
}

func TestCoolingHasFloor(t *testing.T) {
	s := newTestStore(t, 1)
	vel := Vec2{}
	s.SpawnWith(400, 300, SpawnOptions{Velocity: &vel, Size: 8})
	s.temperatures[0] = s.cfg.Physics.TempFloor

	for range 100 {
		s.Update(1)
	}

	if s.temperatures[0] < s.cfg.Physics.TempFloor {
		t.Errorf("temperature %v fell below the floor %v", s.temperatures[0], s.cfg.Physics.TempFloor)
	}
}

func TestTrailAlphaTracksSpeed(t *testing.T) {
	s := newTestStore(t, 1)
	phys := &s.cfg.Physics

	slow := Vec2{}
	fast := Vec2{X: 50, Y: 0}
	s.SpawnWith(400, 300, SpawnOptions{Velocity: &slow, Size: 8})
	s.SpawnWith(600, 300, SpawnOptions{Velocity: &fast, Size: 8})

	s.Update(1)

	if s.trailAlpha[0] != phys.TrailMinAlpha {
		t.Errorf("stationary alpha = %v, want floor %v", s.trailAlpha[0], phys.TrailMinAlpha)
	}
	if s.trailAlpha[1] != 1 {
		t.Errorf("fast alpha = %v, want clamped to 1", s.trailAlpha[1])
	}
}

func TestParticlesStayInBounds(t *testing.T) {
	s := newTestStore(t, 11)
	s.SpawnInitial(300)
	margin := s.cfg.Physics.Margin

	for range 300 {
		s.ApplyForce(640, 360, 400, 2.0, true) // keep shoving them outward
		s.Update(1)
	}

	for i := 0; i < s.Count(); i++ {
		p := s.positions[i]
		if p.X < margin || p.X > s.width-margin || p.Y < margin || p.Y > s.height-margin {
			t.Fatalf("particle %d at %v escaped the margins", i, p)
		}
	}
}
