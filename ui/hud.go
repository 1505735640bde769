// Package ui renders the heads-up display and the settings panel.
package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// HUDData holds everything the HUD needs for one frame.
type HUDData struct {
	Title         string
	ParticleCount int
	MaxParticles  int
	BubbleCount   int
	MergeTotal    int
	Palette       string
	Gesture       string
	Tick          int32
	FPS           int32
	Paused        bool
	Idle          bool
	ScreenWidth   int32
	ScreenHeight  int32
}

// HUD renders the main heads-up display.
type HUD struct{}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{}
}

// Draw renders the HUD.
func (h *HUD) Draw(data HUDData) {
	rl.DrawText(data.Title, 10, 10, 20, rl.White)

	rl.DrawText(
		fmt.Sprintf("Particles: %d/%d | Bubbles: %d | Merges: %d",
			data.ParticleCount, data.MaxParticles, data.BubbleCount, data.MergeTotal),
		10, 35, 16, rl.LightGray,
	)

	rl.DrawText(
		fmt.Sprintf("Palette: %s | Tick: %d | FPS: %d", data.Palette, data.Tick, data.FPS),
		10, 55, 16, rl.LightGray,
	)

	status := "Running"
	switch {
	case data.Paused:
		status = "PAUSED"
	case data.Idle:
		status = "Idle drift"
	}
	if data.Gesture != "" && data.Gesture != "NONE" {
		status += " | " + data.Gesture
	}
	rl.DrawText(status, 10, 75, 16, rl.Yellow)
}

// DrawControls renders the control legend at the bottom of the screen.
func (h *HUD) DrawControls(screenHeight int32, controls string) {
	rl.DrawText(controls, 10, screenHeight-25, 14, rl.Gray)
}

// helpLines is the full keybinding reference shown by the help overlay.
var helpLines = []string{
	"Left click / hold      attract particles",
	"Right click / hold     repel particles",
	"Middle click           spawn a cluster",
	"Left + right click     explosion",
	"Fast pointer motion    directional wave",
	"Q / E                  vortex (ccw / cw)",
	"Up / Down              flip gravity",
	"P                      cycle palette",
	"G                      toggle glow",
	"T                      toggle trails",
	"A                      toggle audio",
	"B                      toggle binaural drone",
	"S                      settings panel",
	"Space                  pause",
	"F                      fullscreen",
	"R                      reset field",
	"H                      close this help",
}

// DrawHelp renders the help overlay over a dimmed background.
func (h *HUD) DrawHelp(screenWidth, screenHeight int32) {
	rl.DrawRectangle(0, 0, screenWidth, screenHeight, rl.Fade(rl.Black, 0.7))

	const lineHeight = 22
	panelW := int32(460)
	panelH := int32(len(helpLines))*lineHeight + 70
	x := (screenWidth - panelW) / 2
	y := (screenHeight - panelH) / 2

	rl.DrawRectangle(x, y, panelW, panelH, rl.Fade(rl.DarkGray, 0.9))
	rl.DrawRectangleLines(x, y, panelW, panelH, rl.Gray)

	rl.DrawText("Controls", x+20, y+15, 20, rl.White)
	textY := y + 50
	for _, line := range helpLines {
		rl.DrawText(line, x+20, textY, 16, rl.LightGray)
		textY += lineHeight
	}
}
