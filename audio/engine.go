package audio

import (
	"math/rand/v2"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/vibeforge1111/particle-dance-on-claude/config"
)

// Relative gains for the two cue families.
const (
	interactionVolume = 0.6
	ambientVolume     = 0.4
)

// Per-cue cooldowns in seconds, so dense interaction doesn't stack dozens of
// overlapping voices.
const (
	touchCooldown    = 0.1
	popCooldown      = 0.5
	whooshCooldown   = 0.3
	mergeCooldown    = 0.3
	swirlCooldown    = 1.0
	resonantCooldown = 1.0
)

// Engine owns the synthesized cue set and the raylib audio device. All Play
// methods take the caller's clock in seconds for cooldown bookkeeping and
// are no-ops while the engine is disabled.
type Engine struct {
	rng     *rand.Rand
	master  float32
	enabled bool

	touchPops []rl.Sound
	pops      []rl.Sound
	whooshes  []rl.Sound

	chime        rl.Sound
	merge        rl.Sound
	swirl        rl.Sound
	gravityShift rl.Sound
	resonant     rl.Sound

	ambient    rl.Sound
	binaural   rl.Sound
	ambientOn  bool
	binauralOn bool

	lastPlayed map[string]float64
}

// NewEngine initializes the audio device and synthesizes every cue. The rng
// only adds texture variation; it is independent of the simulation RNG.
func NewEngine(rng *rand.Rand) *Engine {
	cfg := config.Cfg().Audio
	rate := cfg.SampleRate

	rl.InitAudioDevice()

	e := &Engine{
		rng:        rng,
		master:     cfg.Volume,
		enabled:    cfg.Enabled,
		lastPlayed: make(map[string]float64),
	}

	for _, freq := range []float64{1500, 1800, 2100} {
		e.touchPops = append(e.touchPops, loadMono(genTouchPop(rng, rate, freq), rate))
	}
	for _, freq := range []float64{400, 500, 600, 700} {
		duration := 0.15 + rng.Float64()*0.1
		e.pops = append(e.pops, loadMono(genPop(rng, rate, freq, duration), rate))
	}
	for range 3 {
		duration := 0.4 + rng.Float64()*0.3
		e.whooshes = append(e.whooshes, loadMono(genWhoosh(rng, rate, duration), rate))
	}

	e.chime = loadMono(genChime(rate), rate)
	e.merge = loadMono(genMerge(rng, rate), rate)
	e.swirl = loadMono(genSwirl(rng, rate), rate)
	e.gravityShift = loadMono(genGravityShift(rate), rate)
	e.resonant = loadMono(genResonantTone(rate), rate)

	e.ambient = loadMono(genAmbientDrone(rng, rate), rate)
	left, right := genBinauralDrone(rate, 6.0) // theta-range beat
	e.binaural = loadStereo(left, right, rate)

	return e
}

// loadMono builds a playable raylib sound from a mono buffer.
func loadMono(buf buffer, sampleRate int) rl.Sound {
	data := wavBytes(pcm16(buf), sampleRate, 1)
	wave := rl.LoadWaveFromMemory(".wav", data, int32(len(data)))
	snd := rl.LoadSoundFromWave(wave)
	rl.UnloadWave(wave)
	return snd
}

// loadStereo builds a playable raylib sound from left/right buffers.
func loadStereo(left, right buffer, sampleRate int) rl.Sound {
	data := wavBytes(interleave(pcm16(left), pcm16(right)), sampleRate, 2)
	wave := rl.LoadWaveFromMemory(".wav", data, int32(len(data)))
	snd := rl.LoadSoundFromWave(wave)
	rl.UnloadWave(wave)
	return snd
}

// shouldPlay records and rate-limits cue triggers.
func (e *Engine) shouldPlay(key string, cooldown, now float64) bool {
	if !e.enabled {
		return false
	}
	if now-e.lastPlayed[key] < cooldown {
		return false
	}
	e.lastPlayed[key] = now
	return true
}

func (e *Engine) play(snd rl.Sound, volume float32) {
	rl.SetSoundVolume(snd, clampVolume(volume*e.master))
	rl.PlaySound(snd)
}

func clampVolume(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// PlayTouchPop plays up to three light ticks for particles inside the touch
// radius.
func (e *Engine) PlayTouchPop(count int, now float64) {
	if !e.shouldPlay("touch", touchCooldown, now) {
		return
	}
	for range min(count, 3) {
		snd := e.touchPops[e.rng.IntN(len(e.touchPops))]
		e.play(snd, interactionVolume*0.3)
	}
}

// PlayPop plays a random bubble pop scaled by intensity.
func (e *Engine) PlayPop(intensity float32, now float64) {
	if !e.shouldPlay("pop", popCooldown, now) {
		return
	}
	snd := e.pops[e.rng.IntN(len(e.pops))]
	e.play(snd, interactionVolume*min(intensity, 1))
}

// PlayWhoosh plays a random whoosh scaled by intensity.
func (e *Engine) PlayWhoosh(intensity float32, now float64) {
	if !e.shouldPlay("whoosh", whooshCooldown, now) {
		return
	}
	snd := e.whooshes[e.rng.IntN(len(e.whooshes))]
	e.play(snd, interactionVolume*min(intensity, 1))
}

// PlaySpawn plays the spawn chime.
func (e *Engine) PlaySpawn() {
	if !e.enabled {
		return
	}
	e.play(e.chime, interactionVolume*0.6)
}

// PlayMerge plays the merge thonk.
func (e *Engine) PlayMerge(now float64) {
	if !e.shouldPlay("merge", mergeCooldown, now) {
		return
	}
	e.play(e.merge, interactionVolume*0.7)
}

// PlaySwirl plays the vortex swirl.
func (e *Engine) PlaySwirl(now float64) {
	if !e.shouldPlay("swirl", swirlCooldown, now) {
		return
	}
	e.play(e.swirl, interactionVolume*0.4)
}

// PlayGravityShift plays the gravity-flip bass sweep. Rate limiting is the
// dispatcher's job here.
func (e *Engine) PlayGravityShift() {
	if !e.enabled {
		return
	}
	e.play(e.gravityShift, interactionVolume*0.6)
}

// PlayResonantTone plays the two-hand merge chord.
func (e *Engine) PlayResonantTone(now float64) {
	if !e.shouldPlay("resonant", resonantCooldown, now) {
		return
	}
	e.play(e.resonant, interactionVolume*0.5)
}

// StartAmbient starts the ambient drone loop.
func (e *Engine) StartAmbient() {
	e.ambientOn = true
}

// StopAmbient stops the ambient drone loop.
func (e *Engine) StopAmbient() {
	e.ambientOn = false
	rl.StopSound(e.ambient)
}

// ToggleBinaural switches the binaural beat layer and reports its new state.
func (e *Engine) ToggleBinaural() bool {
	e.binauralOn = !e.binauralOn
	if !e.binauralOn {
		rl.StopSound(e.binaural)
	}
	return e.binauralOn
}

// Binaural reports whether the binaural layer is on.
func (e *Engine) Binaural() bool {
	return e.binauralOn
}

// SetEnabled enables or disables all playback.
func (e *Engine) SetEnabled(enabled bool) {
	e.enabled = enabled
	if !enabled {
		e.StopAmbient()
		if e.binauralOn {
			e.ToggleBinaural()
		}
	}
}

// Enabled reports whether playback is active.
func (e *Engine) Enabled() bool {
	return e.enabled
}

// SetMasterVolume sets the master volume in [0, 1].
func (e *Engine) SetMasterVolume(v float32) {
	e.master = clampVolume(v)
}

// MasterVolume returns the current master volume.
func (e *Engine) MasterVolume() float32 {
	return e.master
}

// Update keeps the drone loops running; raylib sounds are one-shot, so the
// loops are re-triggered when they run out.
func (e *Engine) Update() {
	if !e.enabled {
		return
	}
	if e.ambientOn && !rl.IsSoundPlaying(e.ambient) {
		e.play(e.ambient, ambientVolume)
	}
	if e.binauralOn && !rl.IsSoundPlaying(e.binaural) {
		e.play(e.binaural, ambientVolume*0.5)
	}
}

// Close stops playback and releases the audio device.
func (e *Engine) Close() {
	e.StopAmbient()
	for _, snd := range e.touchPops {
		rl.UnloadSound(snd)
	}
	for _, snd := range e.pops {
		rl.UnloadSound(snd)
	}
	for _, snd := range e.whooshes {
		rl.UnloadSound(snd)
	}
	rl.UnloadSound(e.chime)
	rl.UnloadSound(e.merge)
	rl.UnloadSound(e.swirl)
	rl.UnloadSound(e.gravityShift)
	rl.UnloadSound(e.resonant)
	rl.UnloadSound(e.ambient)
	rl.UnloadSound(e.binaural)
	rl.CloseAudioDevice()
}
