// Package renderer draws the particle field and interaction cues. It only
// consumes store snapshots, so the simulation never depends on raylib state.
package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/vibeforge1111/particle-dance-on-claude/config"
	"github.com/vibeforge1111/particle-dance-on-claude/particles"
)

// trailFadeAlpha is the opacity of the black quad drawn over the previous
// frame when trails are on. Lower values leave longer trails.
const trailFadeAlpha = 25

// Renderer draws particles with optional glow and motion trails.
type Renderer struct {
	glow   bool
	trails bool

	screenW, screenH int32
}

// NewRenderer creates a renderer sized to the configured screen.
func NewRenderer() *Renderer {
	cfg := config.Cfg()
	return &Renderer{
		glow:    cfg.Render.Glow,
		trails:  cfg.Render.Trails,
		screenW: int32(cfg.Screen.Width),
		screenH: int32(cfg.Screen.Height),
	}
}

// Resize updates the cached screen size after a window resize.
func (r *Renderer) Resize(width, height int32) {
	r.screenW = width
	r.screenH = height
}

// BeginFrame clears the frame. With trails enabled the previous frame is only
// partially covered, which is what produces the motion smear.
func (r *Renderer) BeginFrame() {
	if r.trails {
		rl.DrawRectangle(0, 0, r.screenW, r.screenH, rl.Color{R: 0, G: 0, B: 0, A: trailFadeAlpha})
	} else {
		rl.ClearBackground(rl.Black)
	}
}

// DrawParticles renders a snapshot of the particle field.
func (r *Renderer) DrawParticles(snap particles.Snapshot) {
	for i := 0; i < snap.Count; i++ {
		pos := snap.Positions[i]
		hsv := snap.Colors[i]
		size := snap.Sizes[i]

		color := rl.ColorFromHSV(hsv.H, hsv.S, hsv.V)
		color = rl.Fade(color, snap.TrailAlpha[i])

		if r.glow {
			// Two soft halos behind the body.
			rl.DrawCircleV(rl.Vector2{X: pos.X, Y: pos.Y}, size*2, rl.Fade(color, 0.08))
			rl.DrawCircleV(rl.Vector2{X: pos.X, Y: pos.Y}, size*1.4, rl.Fade(color, 0.2))
		}

		rl.DrawCircleV(rl.Vector2{X: pos.X, Y: pos.Y}, size, color)

		if snap.IsBubble[i] {
			// Specular highlight and rim make bubbles read as hollow.
			rl.DrawCircleLines(int32(pos.X), int32(pos.Y), size+1, rl.Fade(rl.White, 0.5))
			hx := pos.X - size*0.35
			hy := pos.Y - size*0.35
			rl.DrawCircleV(rl.Vector2{X: hx, Y: hy}, size*0.25, rl.Fade(rl.White, 0.7))
		}
	}
}

// gestureColor maps interaction kinds to indicator colors.
func gestureColor(active bool, repel bool) rl.Color {
	switch {
	case !active:
		return rl.Fade(rl.White, 0.3)
	case repel:
		return rl.Fade(rl.Red, 0.7)
	default:
		return rl.Fade(rl.SkyBlue, 0.7)
	}
}

// DrawPointer renders the interaction cursor: a crosshair ring that shows
// where gestures land and whether they attract or repel.
func (r *Renderer) DrawPointer(x, y float32, active, repel bool) {
	color := gestureColor(active, repel)

	rl.DrawCircleLines(int32(x), int32(y), 12, color)
	rl.DrawLine(int32(x)-18, int32(y), int32(x)-8, int32(y), color)
	rl.DrawLine(int32(x)+8, int32(y), int32(x)+18, int32(y), color)
	rl.DrawLine(int32(x), int32(y)-18, int32(x), int32(y)-8, color)
	rl.DrawLine(int32(x), int32(y)+8, int32(x), int32(y)+18, color)

	if active {
		rl.DrawCircleV(rl.Vector2{X: x, Y: y}, 3, color)
	}
}

// DrawForceRing renders the outline of an active force radius so the reach of
// a held gesture is visible.
func (r *Renderer) DrawForceRing(x, y, radius float32, repel bool) {
	rl.DrawCircleLines(int32(x), int32(y), radius, gestureColor(true, repel))
}

// SetGlow toggles the glow halos.
func (r *Renderer) SetGlow(on bool) { r.glow = on }

// Glow reports whether glow is enabled.
func (r *Renderer) Glow() bool { return r.glow }

// SetTrails toggles motion trails.
func (r *Renderer) SetTrails(on bool) { r.trails = on }

// Trails reports whether trails are enabled.
func (r *Renderer) Trails() bool { return r.trails }
