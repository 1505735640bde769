package particles

// updateBubbles advances bubble dynamics: extra buoyancy against the gravity
// direction, slow shrinkage (with mass kept consistent), flag clearing below
// the threshold, and the occasional child particle shed from a large bubble.
func (s *Store) updateBubbles() {
	if s.count == 0 {
		return
	}

	cfg := &s.cfg.Bubble
	bubbles := s.bubbleScratch[:0]

	for i := 0; i < s.count; i++ {
		if !s.isBubble[i] {
			continue
		}
		bubbles = append(bubbles, i)

		s.velocities[i].Y -= cfg.ExtraBuoyancy * s.gravityDir

		s.sizes[i] -= cfg.ShrinkRate
		s.masses[i] = s.sizes[i] * s.cfg.Particles.MassFactor
		if s.sizes[i] < s.cfg.Merge.BubbleThreshold {
			s.isBubble[i] = false
		}
	}
	s.bubbleScratch = bubbles

	if len(bubbles) == 0 {
		return
	}

	// Occasionally a large bubble sheds a small child particle. This is the
	// only creation path besides external spawn calls.
	if s.rng.Float32() < cfg.SpawnChance {
		idx := bubbles[s.rng.IntN(len(bubbles))]
		if s.sizes[idx] > cfg.SpawnMinSize {
			drift := s.cfg.Particles.DriftSpeed
			vel := Vec2{X: s.uniform(-drift, drift), Y: s.uniform(-drift, drift)}
			spawned := s.SpawnWith(
				s.positions[idx].X+s.uniform(-cfg.SpawnOffset, cfg.SpawnOffset),
				s.positions[idx].Y+s.uniform(-cfg.SpawnOffset, cfg.SpawnOffset),
				SpawnOptions{
					Velocity: &vel,
					Size:     s.uniform(cfg.ChildMinSize, cfg.ChildMaxSize),
				},
			)
			if spawned {
				s.sizes[idx] -= cfg.SpawnSizeCost
				s.masses[idx] = s.sizes[idx] * s.cfg.Particles.MassFactor
			}
		}
	}
}
