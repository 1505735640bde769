package gesture

import "math"

// MouseState is one frame of raw pointer/keyboard input, polled by the
// caller. Keeping it a plain value keeps the detector testable without a
// window system.
type MouseState struct {
	X, Y                float32
	Left, Middle, Right bool
	RotateCW, RotateCCW bool // vortex keys
	GravityUp           bool
	GravityDown         bool
}

// waveSpeedThreshold is the pointer speed (px/frame) above which bare
// movement reads as a wave gesture.
const waveSpeedThreshold = 20

// rotationAngle is the synthetic hand-rotation angle applied while a vortex
// key is held.
const rotationAngle = 0.15

// MouseDetector is the fallback gesture source when no camera pipeline is
// available. Buttons map to gestures; pointer velocity drives the wave.
type MouseDetector struct {
	history [5][2]float32
	filled  int
}

// NewMouseDetector creates a mouse-driven gesture detector.
func NewMouseDetector() *MouseDetector {
	return &MouseDetector{}
}

// Update consumes one frame of input and returns the commands it implies.
// The slice is empty when nothing is pressed and the pointer is slow.
func (m *MouseDetector) Update(state MouseState) []Command {
	// Track recent positions for velocity
	copy(m.history[:], m.history[1:])
	m.history[len(m.history)-1] = [2]float32{state.X, state.Y}
	if m.filled < len(m.history) {
		m.filled++
	}

	var vx, vy float32
	if m.filled >= 2 {
		prev := m.history[len(m.history)-2]
		vx = state.X - prev[0]
		vy = state.Y - prev[1]
	}
	speed := float32(math.Sqrt(float64(vx*vx + vy*vy)))

	var cmds []Command

	switch {
	case state.Left && state.Right:
		cmds = append(cmds, Command{Kind: Spread, X: state.X, Y: state.Y})
	case state.Middle:
		cmds = append(cmds, Command{Kind: Pinch, X: state.X, Y: state.Y})
	case state.Right:
		cmds = append(cmds, Command{Kind: Fist, X: state.X, Y: state.Y})
	case state.Left:
		cmds = append(cmds, Command{Kind: OpenPalm, X: state.X, Y: state.Y})
	case speed > waveSpeedThreshold:
		cmds = append(cmds, Command{
			Kind: Wave,
			X:    state.X, Y: state.Y,
			DX: vx * 0.1, DY: vy * 0.1,
		})
	}

	if state.RotateCW {
		cmds = append(cmds, Command{Kind: Rotate, X: state.X, Y: state.Y, Strength: rotationAngle})
	} else if state.RotateCCW {
		cmds = append(cmds, Command{Kind: Rotate, X: state.X, Y: state.Y, Strength: -rotationAngle})
	}

	if state.GravityUp {
		cmds = append(cmds, Command{Kind: PalmUp})
	} else if state.GravityDown {
		cmds = append(cmds, Command{Kind: PalmDown})
	}

	return cmds
}
