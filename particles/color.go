package particles

// palettes maps palette names to ordered lists of base HSV colors used to
// seed and re-target particle color drift.
var palettes = map[string][]HSV{
	"default": {
		{330, 1.0, 1.0},  // Magenta
		{190, 1.0, 0.83}, // Cyan
		{43, 1.0, 1.0},   // Amber
		{265, 0.77, 0.93}, // Violet
		{158, 0.97, 1.0}, // Mint
	},
	"sunset": {
		{15, 1.0, 1.0},  // Orange-red
		{35, 1.0, 1.0},  // Orange
		{50, 0.9, 1.0},  // Golden
		{340, 0.8, 0.9}, // Pink
		{280, 0.6, 0.8}, // Lavender
	},
	"ocean": {
		{200, 1.0, 0.9}, // Deep blue
		{180, 0.8, 1.0}, // Cyan
		{160, 0.9, 0.8}, // Teal
		{220, 0.7, 0.6}, // Navy
		{190, 0.5, 1.0}, // Light blue
	},
	"aurora": {
		{120, 1.0, 0.9}, // Green
		{160, 0.9, 1.0}, // Cyan-green
		{280, 0.8, 0.9}, // Purple
		{200, 0.7, 1.0}, // Blue
		{80, 0.6, 1.0},  // Yellow-green
	},
	"monochrome": {
		{0, 0.0, 1.0},
		{0, 0.0, 0.8},
		{0, 0.0, 0.6},
		{0, 0.0, 0.9},
		{0, 0.0, 0.7},
	},
}

// paletteOrder fixes the cycling order of NextPalette.
var paletteOrder = []string{"default", "sunset", "ocean", "aurora", "monochrome"}

// PaletteNames returns the available palette names in cycling order.
func PaletteNames() []string {
	names := make([]string, len(paletteOrder))
	copy(names, paletteOrder)
	return names
}

// SetPalette switches the active palette and re-targets every live
// particle's color_target without altering its current color. Returns false
// for an unknown name.
func (s *Store) SetPalette(name string) bool {
	if !s.setPalette(name) {
		return false
	}
	for i := 0; i < s.count; i++ {
		s.targetColors[i] = s.pickPaletteColor(s.cfg.Color.HueJitter)
	}
	return true
}

// setPalette switches the active palette without re-targeting.
func (s *Store) setPalette(name string) bool {
	p, ok := palettes[name]
	if !ok {
		return false
	}
	s.paletteName = name
	s.palette = p
	return true
}

// Palette returns the active palette name.
func (s *Store) Palette() string {
	return s.paletteName
}

// NextPalette cycles to the next palette and returns its name.
func (s *Store) NextPalette() string {
	for i, name := range paletteOrder {
		if name == s.paletteName {
			next := paletteOrder[(i+1)%len(paletteOrder)]
			s.SetPalette(next)
			return next
		}
	}
	s.SetPalette(paletteOrder[0])
	return paletteOrder[0]
}

// pickPaletteColor draws a random base color from the active palette with
// ± jitter degrees of hue and scaled saturation/value.
func (s *Store) pickPaletteColor(jitter float32) HSV {
	base := s.palette[s.rng.IntN(len(s.palette))]
	floor := s.cfg.Color.SVJitterFloor
	return HSV{
		H: wrapHue(base.H + s.uniform(-jitter, jitter)),
		S: base.S * s.uniform(floor, 1),
		V: base.V * s.uniform(floor, 1),
	}
}

// updateColors drifts every particle's color toward its target by a fixed
// fraction of the delta, taking the shortest circular hue path. Particles
// that reach their target hue are re-targeted at random, producing the
// perpetual lava-lamp drift.
func (s *Store) updateColors() {
	if s.count == 0 {
		return
	}

	k := s.cfg.Color.ShiftSpeed * 0.01
	threshold := s.cfg.Color.RetargetDegrees

	for i := 0; i < s.count; i++ {
		dh := s.targetColors[i].H - s.colors[i].H
		if dh > 180 {
			dh -= 360
		} else if dh < -180 {
			dh += 360
		}

		s.colors[i].H = wrapHue(s.colors[i].H + dh*k)
		s.colors[i].S += (s.targetColors[i].S - s.colors[i].S) * k
		s.colors[i].V += (s.targetColors[i].V - s.colors[i].V) * k

		if abs32(dh) < threshold {
			s.targetColors[i] = s.pickPaletteColor(s.cfg.Color.RetargetJitter)
		}
	}
}
