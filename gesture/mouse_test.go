package gesture

import "testing"

func TestMouseButtonsMapToGestures(t *testing.T) {
	tests := []struct {
		name  string
		state MouseState
		want  Kind
	}{
		{"left attracts", MouseState{Left: true}, OpenPalm},
		{"right repels", MouseState{Right: true}, Fist},
		{"middle spawns", MouseState{Middle: true}, Pinch},
		{"both explode", MouseState{Left: true, Right: true}, Spread},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMouseDetector()
			cmds := m.Update(tt.state)
			if len(cmds) != 1 {
				t.Fatalf("commands = %d, want 1", len(cmds))
			}
			if cmds[0].Kind != tt.want {
				t.Errorf("kind = %v, want %v", cmds[0].Kind, tt.want)
			}
		})
	}
}

func TestMouseIdleProducesNothing(t *testing.T) {
	m := NewMouseDetector()
	if cmds := m.Update(MouseState{X: 100, Y: 100}); len(cmds) != 0 {
		t.Errorf("commands = %d, want 0", len(cmds))
	}
}

func TestMouseFastMotionIsWave(t *testing.T) {
	m := NewMouseDetector()
	m.Update(MouseState{X: 100, Y: 100})
	cmds := m.Update(MouseState{X: 200, Y: 100}) // 100 px in one frame

	if len(cmds) != 1 {
		t.Fatalf("commands = %d, want 1", len(cmds))
	}
	if cmds[0].Kind != Wave {
		t.Fatalf("kind = %v, want Wave", cmds[0].Kind)
	}
	if cmds[0].DX <= 0 {
		t.Errorf("wave dx = %v, want rightward", cmds[0].DX)
	}
	if cmds[0].DY != 0 {
		t.Errorf("wave dy = %v, want 0", cmds[0].DY)
	}
}

func TestMouseSlowMotionIsNotWave(t *testing.T) {
	m := NewMouseDetector()
	m.Update(MouseState{X: 100, Y: 100})
	cmds := m.Update(MouseState{X: 105, Y: 100})

	if len(cmds) != 0 {
		t.Errorf("commands = %d, want 0 for slow motion", len(cmds))
	}
}

func TestMouseButtonOverridesWave(t *testing.T) {
	m := NewMouseDetector()
	m.Update(MouseState{X: 100, Y: 100})
	cmds := m.Update(MouseState{X: 300, Y: 100, Left: true})

	if len(cmds) != 1 || cmds[0].Kind != OpenPalm {
		t.Errorf("commands = %v, want a single OpenPalm", cmds)
	}
}

func TestMouseRotationKeys(t *testing.T) {
	m := NewMouseDetector()
	cmds := m.Update(MouseState{X: 100, Y: 100, RotateCW: true})

	if len(cmds) != 1 || cmds[0].Kind != Rotate {
		t.Fatalf("commands = %v, want a single Rotate", cmds)
	}
	if cmds[0].Strength <= 0 {
		t.Errorf("cw strength = %v, want > 0", cmds[0].Strength)
	}

	cmds = NewMouseDetector().Update(MouseState{RotateCCW: true})
	if len(cmds) != 1 || cmds[0].Strength >= 0 {
		t.Errorf("ccw strength should be negative, got %v", cmds)
	}
}

func TestMouseGravityKeys(t *testing.T) {
	m := NewMouseDetector()
	cmds := m.Update(MouseState{GravityUp: true})

	if len(cmds) != 1 || cmds[0].Kind != PalmUp {
		t.Fatalf("commands = %v, want a single PalmUp", cmds)
	}

	cmds = NewMouseDetector().Update(MouseState{GravityDown: true})
	if len(cmds) != 1 || cmds[0].Kind != PalmDown {
		t.Errorf("commands = %v, want a single PalmDown", cmds)
	}
}

func TestKindStrings(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{None, "NONE"},
		{OpenPalm, "OPEN_PALM"},
		{Fist, "FIST"},
		{Pinch, "PINCH"},
		{Spread, "SPREAD"},
		{Wave, "WAVE"},
		{PalmUp, "PALM_UP"},
		{PalmDown, "PALM_DOWN"},
		{Rotate, "ROTATE"},
		{TwoHandMerge, "TWO_HANDS_MERGE"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}
