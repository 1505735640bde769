package particles

// mergePass consolidates nearby particles into larger blobs. The spatial
// index is rebuilt from scratch, then a bounded random sample of particles is
// checked against their neighbors. Each particle absorbs at most one neighbor
// per pass; consumed particles are batch-removed at the end.
func (s *Store) mergePass() {
	if s.count < 2 {
		return
	}

	// Rebuild the index for the current frame
	s.grid.Clear()
	for i := 0; i < s.count; i++ {
		s.grid.Insert(i, s.positions[i].X, s.positions[i].Y)
	}

	// Bounded sample without replacement keeps worst-case cost independent
	// of the live count
	checkCount := min(s.count, s.cfg.Merge.SampleMax)
	order := s.rng.Perm(s.count)[:checkCount]

	consumed := make([]bool, s.count)
	mergeRadius := s.cfg.Merge.MaxParticleSize * s.cfg.Merge.RadiusFactor
	merged := 0

	for _, i := range order {
		if consumed[i] {
			continue
		}

		s.queryScratch = s.grid.QueryRadiusInto(s.queryScratch[:0],
			s.positions[i].X, s.positions[i].Y, mergeRadius)

		for _, h := range s.queryScratch {
			j := h.Index
			if j <= i || consumed[j] {
				continue
			}

			mergeThreshold := (s.sizes[i] + s.sizes[j]) * 0.5
			if h.Dist < mergeThreshold {
				s.absorb(i, j)
				consumed[j] = true
				merged++
				break // at most one merge per particle per pass
			}
		}
	}

	if merged > 0 {
		s.removeMarked(consumed)
		s.recentMerges += merged
	}
}

// absorb merges particle j into particle i: mass-weighted position and
// velocity, plain component-average color, sub-linear capped size growth.
func (s *Store) absorb(i, j int) {
	mi := s.masses[i]
	mj := s.masses[j]
	total := mi + mj

	s.positions[i].X = (s.positions[i].X*mi + s.positions[j].X*mj) / total
	s.positions[i].Y = (s.positions[i].Y*mi + s.positions[j].Y*mj) / total
	s.velocities[i].X = (s.velocities[i].X*mi + s.velocities[j].X*mj) / total
	s.velocities[i].Y = (s.velocities[i].Y*mi + s.velocities[j].Y*mj) / total

	// Plain average, not circular hue blending; hue stays in [0,360)
	// because both inputs are
	s.colors[i].H = (s.colors[i].H + s.colors[j].H) / 2
	s.colors[i].S = (s.colors[i].S + s.colors[j].S) / 2
	s.colors[i].V = (s.colors[i].V + s.colors[j].V) / 2

	newSize := min(
		s.sizes[i]+s.sizes[j]*s.cfg.Merge.GrowthFactor,
		s.cfg.Merge.MaxParticleSize,
	)
	s.sizes[i] = newSize
	s.masses[i] = newSize * s.cfg.Particles.MassFactor

	if newSize >= s.cfg.Merge.BubbleThreshold {
		s.isBubble[i] = true
		s.temperatures[i] = min(s.temperatures[i]+0.2, 1)
	}
}
