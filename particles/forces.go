package particles

// Force field operations. All of them mutate velocities only (never
// positions) and return the number of affected particles for feedback.

// ApplyForce applies an attract or repel force from (cx, cy) to every
// particle within radius, with inverse-distance falloff. It returns the
// affected count and a touching count for particles inside the smaller
// configured touch radius; touched particles are heated.
func (s *Store) ApplyForce(cx, cy, radius, strength float32, repel bool) (affected, touching int) {
	if s.count == 0 {
		return 0, 0
	}

	touchRadius := s.cfg.Gesture.TouchRadius

	for i := 0; i < s.count; i++ {
		dx := s.positions[i].X - cx
		dy := s.positions[i].Y - cy
		dist := hypot32(dx, dy)

		if dist < touchRadius {
			touching++
		}
		if dist >= radius {
			continue
		}
		affected++

		safe := max(dist, 1)
		mag := strength / (safe*0.1 + 1)
		nx := dx / safe
		ny := dy / safe

		if repel {
			s.velocities[i].X += nx * mag
			s.velocities[i].Y += ny * mag
		} else {
			s.velocities[i].X -= nx * mag
			s.velocities[i].Y -= ny * mag
		}
	}

	if affected == 0 {
		return 0, touching
	}

	// Heat up particles close enough to be "touched"
	if touching > 0 {
		for i := 0; i < s.count; i++ {
			dx := s.positions[i].X - cx
			dy := s.positions[i].Y - cy
			if hypot32(dx, dy) < touchRadius {
				s.temperatures[i] = min(s.temperatures[i]+0.1, 1)
			}
		}
	}

	return affected, touching
}

// ApplyVortex applies a rotational force around (cx, cy). Magnitude scales
// linearly to zero at the radius edge; direction is perpendicular to the
// radial vector.
func (s *Store) ApplyVortex(cx, cy, radius, strength float32) int {
	if s.count == 0 {
		return 0
	}

	affected := 0
	for i := 0; i < s.count; i++ {
		dx := s.positions[i].X - cx
		dy := s.positions[i].Y - cy
		dist := hypot32(dx, dy)
		if dist >= radius {
			continue
		}
		affected++

		safe := max(dist, 1)
		mag := strength * (1 - dist/radius)

		s.velocities[i].X += -dy / safe * mag
		s.velocities[i].Y += dx / safe * mag
	}

	return affected
}

// ApplyDirectionalFlow adds a uniform velocity increment to all live
// particles in the normalized (dx, dy) direction. A global wind, not a
// localized force.
func (s *Store) ApplyDirectionalFlow(dx, dy, strength float32) {
	if s.count == 0 {
		return
	}

	mag := hypot32(dx, dy)
	if mag > 0 {
		dx /= mag
		dy /= mag
	}

	for i := 0; i < s.count; i++ {
		s.velocities[i].X += dx * strength
		s.velocities[i].Y += dy * strength
	}
}

// AttractBetweenPoints pulls particles toward the midpoint of the two points
// and warms them slightly. Used for the two-hand merge interaction.
func (s *Store) AttractBetweenPoints(x1, y1, x2, y2, radius, strength float32) int {
	if s.count == 0 {
		return 0
	}

	cx := (x1 + x2) / 2
	cy := (y1 + y2) / 2

	affected := 0
	for i := 0; i < s.count; i++ {
		dx := s.positions[i].X - cx
		dy := s.positions[i].Y - cy
		dist := hypot32(dx, dy)
		if dist >= radius {
			continue
		}
		affected++

		safe := max(dist, 1)
		mag := strength / (safe*0.05 + 1)

		s.velocities[i].X -= dx / safe * mag
		s.velocities[i].Y -= dy / safe * mag
		s.temperatures[i] = min(s.temperatures[i]+0.05, 1)
	}

	return affected
}

// Explode scatters particles away from a point. Alias for a repel ApplyForce.
func (s *Store) Explode(cx, cy, radius, strength float32) int {
	affected, _ := s.ApplyForce(cx, cy, radius, strength, true)
	return affected
}
