package particles

// Update advances the simulation by one frame. dt is normalized to a 60 fps
// baseline (dt = 1 means one full frame at 60 fps).
//
// Pipeline order: idle forces (if enabled), integration, boundary handling,
// cooling, trail alpha, probabilistic merge pass, color transitions, bubble
// dynamics. The merge counter is reset at the top of every frame.
func (s *Store) Update(dt float32) {
	s.recentMerges = 0
	if s.count == 0 {
		return
	}

	if s.idleMode {
		s.updateIdle(dt)
	}

	phys := &s.cfg.Physics

	for i := 0; i < s.count; i++ {
		// Gravity plus buoyancy: warm particles rise against gravity
		s.accelerations[i].Y = phys.Gravity*s.gravityDir -
			phys.Buoyancy*s.temperatures[i]*s.gravityDir

		s.velocities[i].X += s.accelerations[i].X * dt
		s.velocities[i].Y += s.accelerations[i].Y * dt

		s.velocities[i].X *= phys.Viscosity
		s.velocities[i].Y *= phys.Viscosity

		s.positions[i].X += s.velocities[i].X * dt
		s.positions[i].Y += s.velocities[i].Y * dt
	}

	s.handleBoundaries()

	for i := 0; i < s.count; i++ {
		s.accelerations[i] = Vec2{}

		// Heat added by interactions fades back toward the floor
		s.temperatures[i] = max(s.temperatures[i]*phys.Cooling, phys.TempFloor)

		speed := hypot32(s.velocities[i].X, s.velocities[i].Y)
		s.trailAlpha[i] = clamp32(speed*phys.TrailScale, phys.TrailMinAlpha, 1)
	}

	if s.rng.Float32() < s.cfg.Merge.Chance {
		s.mergePass()
	}

	s.updateColors()
	s.updateBubbles()
}

// handleBoundaries applies independent per-axis soft collision: positions
// crossing the margin are clamped and the velocity component is reflected
// outbound-to-inbound with damping. Runs every frame after integration.
func (s *Store) handleBoundaries() {
	margin := s.cfg.Physics.Margin
	bounce := s.cfg.Physics.Bounce
	right := s.width - margin
	bottom := s.height - margin

	for i := 0; i < s.count; i++ {
		p := &s.positions[i]
		v := &s.velocities[i]

		if p.X < margin {
			p.X = margin
			v.X = abs32(v.X) * bounce
		} else if p.X > right {
			p.X = right
			v.X = -abs32(v.X) * bounce
		}

		if p.Y < margin {
			p.Y = margin
			v.Y = abs32(v.Y) * bounce
		} else if p.Y > bottom {
			p.Y = bottom
			v.Y = -abs32(v.Y) * bounce
		}
	}
}
