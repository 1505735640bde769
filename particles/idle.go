package particles

import "math"

// Idle/screensaver mode: when no hands are detected for a while, a few
// slowly drifting attractor points keep the particles in gentle orbital
// motion so the screen never goes static.

const idleCenterCount = 3

// SetIdleMode enables or disables screensaver mode. Enabling places fresh
// random attractor points.
func (s *Store) SetIdleMode(enabled bool) {
	if enabled && !s.idleMode {
		s.idleCenters = s.idleCenters[:0]
		for range idleCenterCount {
			s.idleCenters = append(s.idleCenters, Vec2{
				X: s.uniform(s.width*0.2, s.width*0.8),
				Y: s.uniform(s.height*0.2, s.height*0.8),
			})
		}
		s.idleAngle = 0
	}
	s.idleMode = enabled
}

// IdleMode reports whether screensaver mode is active.
func (s *Store) IdleMode() bool {
	return s.idleMode
}

// updateIdle applies gentle radial attraction plus a tangential swirl around
// each drifting attractor point.
func (s *Store) updateIdle(dt float32) {
	s.idleTime += dt
	s.idleAngle += 0.005 * dt

	// Drift the attractor points along slow circular paths
	for i := range s.idleCenters {
		angle := float64(s.idleAngle) + float64(i)*(2*math.Pi/idleCenterCount)
		cx := s.idleCenters[i].X + float32(math.Cos(angle))*0.5
		cy := s.idleCenters[i].Y + float32(math.Sin(angle))*0.3

		cx = clamp32(cx, s.width*0.1, s.width*0.9)
		cy = clamp32(cy, s.height*0.1, s.height*0.9)
		s.idleCenters[i] = Vec2{X: cx, Y: cy}
	}

	for _, c := range s.idleCenters {
		for i := 0; i < s.count; i++ {
			dx := s.positions[i].X - c.X
			dy := s.positions[i].Y - c.Y
			dist := hypot32(dx, dy)
			if dist <= 50 {
				// Don't pull particles all the way in
				continue
			}

			safe := max(dist, 1)
			nx := dx / safe
			ny := dy / safe

			attract := 0.02 / (safe*0.01 + 1)
			s.velocities[i].X -= nx * attract
			s.velocities[i].Y -= ny * attract

			swirl := 0.015 / (safe*0.01 + 1)
			s.velocities[i].X += -ny * swirl
			s.velocities[i].Y += nx * swirl
		}
	}

	// Occasionally relocate one attractor to keep the motion from settling
	if s.rng.Float32() < 0.001 {
		idx := s.rng.IntN(len(s.idleCenters))
		s.idleCenters[idx] = Vec2{
			X: s.uniform(s.width*0.2, s.width*0.8),
			Y: s.uniform(s.height*0.2, s.height*0.8),
		}
	}
}
