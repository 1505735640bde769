package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Settings is the set of values the panel edits. The caller passes the
// current state in and applies whatever comes back changed.
type Settings struct {
	Volume   float32
	Glow     bool
	Trails   bool
	Audio    bool
	Binaural bool

	// One-shot button presses
	NextPalette bool
	Reset       bool
}

// SettingsPanel is a small raygui overlay for tuning the experience without
// touching the config file.
type SettingsPanel struct {
	visible bool
	x, y    float32
}

// NewSettingsPanel creates a hidden settings panel anchored near the top
// right of the screen.
func NewSettingsPanel(screenWidth int32) *SettingsPanel {
	return &SettingsPanel{
		x: float32(screenWidth) - 260,
		y: 10,
	}
}

// Toggle flips panel visibility.
func (p *SettingsPanel) Toggle() {
	p.visible = !p.visible
}

// Visible reports whether the panel is shown.
func (p *SettingsPanel) Visible() bool {
	return p.visible
}

// Resize re-anchors the panel after a window resize.
func (p *SettingsPanel) Resize(screenWidth int32) {
	p.x = float32(screenWidth) - 260
}

// Draw renders the panel and returns the (possibly edited) settings. Returns
// the input unchanged while hidden.
func (p *SettingsPanel) Draw(s Settings) Settings {
	if !p.visible {
		return s
	}

	const panelW = 250
	const panelH = 235
	x := p.x
	y := p.y

	rl.DrawRectangle(int32(x), int32(y), panelW, panelH, rl.Fade(rl.Black, 0.8))
	rl.DrawRectangleLines(int32(x), int32(y), panelW, panelH, rl.Gray)

	rl.DrawText("Settings", int32(x)+10, int32(y)+10, 18, rl.White)
	rowY := y + 40

	rl.DrawText("Volume", int32(x)+10, int32(rowY), 14, rl.LightGray)
	s.Volume = gui.SliderBar(
		rl.Rectangle{X: x + 80, Y: rowY, Width: 120, Height: 16},
		"0", "1",
		s.Volume, 0, 1,
	)
	rl.DrawText(fmt.Sprintf("%.1f", s.Volume), int32(x+205), int32(rowY), 14, rl.LightGray)
	rowY += 30

	s.Glow = gui.CheckBox(rl.Rectangle{X: x + 10, Y: rowY, Width: 16, Height: 16}, "Glow", s.Glow)
	s.Trails = gui.CheckBox(rl.Rectangle{X: x + 120, Y: rowY, Width: 16, Height: 16}, "Trails", s.Trails)
	rowY += 30

	s.Audio = gui.CheckBox(rl.Rectangle{X: x + 10, Y: rowY, Width: 16, Height: 16}, "Audio", s.Audio)
	s.Binaural = gui.CheckBox(rl.Rectangle{X: x + 120, Y: rowY, Width: 16, Height: 16}, "Binaural", s.Binaural)
	rowY += 35

	s.NextPalette = gui.Button(rl.Rectangle{X: x + 10, Y: rowY, Width: 110, Height: 28}, "Next Palette")
	s.Reset = gui.Button(rl.Rectangle{X: x + 130, Y: rowY, Width: 110, Height: 28}, "Reset Field")

	return s
}
