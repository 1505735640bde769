package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/vibeforge1111/particle-dance-on-claude/config"
	"github.com/vibeforge1111/particle-dance-on-claude/telemetry"
	"github.com/vibeforge1111/particle-dance-on-claude/ui"
)

const controlsLegend = "LMB attract | RMB repel | MMB spawn | Q/E vortex | Up/Down gravity | H help"

// Draw renders one frame.
func (g *Game) Draw() {
	g.perf.StartPhase(telemetry.PhaseRender)

	rl.BeginDrawing()
	g.rend.BeginFrame()
	g.rend.DrawParticles(g.store.Snapshot())

	pos := rl.GetMousePosition()
	g.rend.DrawPointer(pos.X, pos.Y, g.pointerHeld, g.pointerRepel)
	if g.pointerHeld {
		cfg := &config.Cfg().Gesture
		radius := cfg.AttractRadius
		if g.pointerRepel {
			radius = cfg.RepelRadius
		}
		g.rend.DrawForceRing(pos.X, pos.Y, radius, g.pointerRepel)
	}

	g.hud.Draw(ui.HUDData{
		Title:         Title,
		ParticleCount: g.store.Count(),
		MaxParticles:  config.Cfg().Particles.Max,
		BubbleCount:   g.store.BubbleCount(),
		MergeTotal:    g.mergeTotal,
		Palette:       g.store.Palette(),
		Gesture:       g.lastGesture.String(),
		Tick:          g.tick,
		FPS:           rl.GetFPS(),
		Paused:        g.paused,
		Idle:          g.store.IdleMode(),
		ScreenWidth:   g.screenW,
		ScreenHeight:  g.screenH,
	})
	g.hud.DrawControls(g.screenH, controlsLegend)

	g.applySettings()

	if g.showHelp {
		g.hud.DrawHelp(g.screenW, g.screenH)
	}

	rl.EndDrawing()
}

// applySettings draws the settings panel and applies any edits.
func (g *Game) applySettings() {
	if !g.settings.Visible() {
		return
	}

	before := ui.Settings{
		Volume:   g.sound.MasterVolume(),
		Glow:     g.rend.Glow(),
		Trails:   g.rend.Trails(),
		Audio:    g.sound.Enabled(),
		Binaural: g.sound.Binaural(),
	}
	after := g.settings.Draw(before)

	if after.Volume != before.Volume {
		g.sound.SetMasterVolume(after.Volume)
	}
	g.rend.SetGlow(after.Glow)
	g.rend.SetTrails(after.Trails)
	if after.Audio != before.Audio {
		g.sound.SetEnabled(after.Audio)
		if after.Audio {
			g.sound.StartAmbient()
		}
	}
	if after.Binaural != before.Binaural {
		g.sound.ToggleBinaural()
	}
	if after.NextPalette {
		g.store.NextPalette()
	}
	if after.Reset {
		g.store.Reset()
		g.store.SpawnInitial(config.Cfg().Particles.Initial)
		g.mergeTotal = 0
	}
}
