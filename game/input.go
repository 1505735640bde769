package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/vibeforge1111/particle-dance-on-claude/config"
	"github.com/vibeforge1111/particle-dance-on-claude/gesture"
)

// handleInput processes keyboard input.
func (g *Game) handleInput() {
	g.handleResize()

	if rl.IsKeyPressed(rl.KeyF) {
		rl.ToggleFullscreen()
	}
	if rl.IsKeyPressed(rl.KeySpace) {
		g.paused = !g.paused
	}
	if rl.IsKeyPressed(rl.KeyH) {
		g.showHelp = !g.showHelp
	}
	if rl.IsKeyPressed(rl.KeyS) {
		g.settings.Toggle()
	}
	if rl.IsKeyPressed(rl.KeyG) {
		g.rend.SetGlow(!g.rend.Glow())
	}
	if rl.IsKeyPressed(rl.KeyT) {
		g.rend.SetTrails(!g.rend.Trails())
	}
	if rl.IsKeyPressed(rl.KeyA) {
		g.sound.SetEnabled(!g.sound.Enabled())
		if g.sound.Enabled() {
			g.sound.StartAmbient()
		}
	}
	if rl.IsKeyPressed(rl.KeyB) {
		g.sound.ToggleBinaural()
	}
	if rl.IsKeyPressed(rl.KeyP) {
		g.store.NextPalette()
	}
	if rl.IsKeyPressed(rl.KeyR) {
		g.store.Reset()
		g.store.SpawnInitial(config.Cfg().Particles.Initial)
		g.mergeTotal = 0
	}

	// Volume on the number row
	for key := int32(rl.KeyOne); key <= rl.KeyNine; key++ {
		if rl.IsKeyPressed(key) {
			g.sound.SetMasterVolume(float32(key-rl.KeyOne+1) / 9)
		}
	}
}

// handleResize propagates a window resize into the simulation and UI.
func (g *Game) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	w := int32(rl.GetScreenWidth())
	h := int32(rl.GetScreenHeight())
	if w == g.screenW && h == g.screenH {
		return
	}
	g.screenW = w
	g.screenH = h

	g.store.Resize(float32(w), float32(h))
	g.rend.Resize(w, h)
	g.settings.Resize(w)
}

// pollMouse reads raw pointer and gesture-key state for the detector.
func (g *Game) pollMouse() gesture.MouseState {
	pos := rl.GetMousePosition()
	return gesture.MouseState{
		X:           pos.X,
		Y:           pos.Y,
		Left:        rl.IsMouseButtonDown(rl.MouseButtonLeft),
		Middle:      rl.IsMouseButtonPressed(rl.MouseButtonMiddle),
		Right:       rl.IsMouseButtonDown(rl.MouseButtonRight),
		RotateCCW:   rl.IsKeyDown(rl.KeyQ),
		RotateCW:    rl.IsKeyDown(rl.KeyE),
		GravityUp:   rl.IsKeyPressed(rl.KeyUp),
		GravityDown: rl.IsKeyPressed(rl.KeyDown),
	}
}

// dispatchCommands applies detected commands to the field and triggers the
// matching audio cues.
func (g *Game) dispatchCommands(cmds []gesture.Command) {
	g.pointerHeld = false
	g.pointerRepel = false

	for _, cmd := range cmds {
		fb := g.dispatcher.Dispatch(cmd, g.simTime)
		g.collector.RecordCommand()
		g.lastGesture = cmd.Kind
		g.lastActivity = g.simTime
		if g.store.IdleMode() {
			g.store.SetIdleMode(false)
		}

		switch cmd.Kind {
		case gesture.OpenPalm, gesture.TwoHandMerge:
			g.pointerHeld = true
		case gesture.Fist, gesture.Spread:
			g.pointerHeld = true
			g.pointerRepel = true
		}

		if fb.Spawned > 0 {
			g.collector.RecordSpawns(fb.Spawned)
		}
		g.playFeedback(cmd.Kind, fb)
	}
}

// playFeedback maps dispatch feedback to sound cues.
func (g *Game) playFeedback(kind gesture.Kind, fb gesture.Feedback) {
	if g.sound == nil {
		return
	}
	now := g.simTime

	switch kind {
	case gesture.OpenPalm:
		if fb.Touching > 0 {
			g.sound.PlayTouchPop(fb.Touching, now)
		}
		if fb.Affected > 0 {
			g.sound.PlayWhoosh(0.3, now)
		}
	case gesture.Fist:
		if fb.Affected > 0 {
			g.sound.PlayWhoosh(0.5, now)
		}
	case gesture.Pinch:
		if fb.Spawned > 0 {
			g.sound.PlaySpawn()
		}
	case gesture.Spread:
		if fb.Affected > 0 {
			g.sound.PlayPop(1, now)
		}
	case gesture.Wave:
		g.sound.PlayWhoosh(0.4, now)
	case gesture.Rotate:
		if fb.Affected > 0 {
			g.sound.PlaySwirl(now)
		}
	case gesture.PalmUp, gesture.PalmDown:
		if fb.Affected > 0 {
			g.sound.PlayGravityShift()
		}
	case gesture.TwoHandMerge:
		if fb.Affected > 0 {
			g.sound.PlayResonantTone(now)
		}
	}
}
