package audio

import "math/rand/v2"

// ExportCues renders one of each cue as encoded WAV bytes, keyed by cue name.
// Used by the cueexport tool; playback goes through the engine instead.
func ExportCues(rng *rand.Rand, sampleRate int) map[string][]byte {
	mono := func(buf buffer) []byte {
		return wavBytes(pcm16(buf), sampleRate, 1)
	}

	cues := map[string][]byte{
		"touch_pop":     mono(genTouchPop(rng, sampleRate, 1800)),
		"pop":           mono(genPop(rng, sampleRate, 500, 0.2)),
		"whoosh":        mono(genWhoosh(rng, sampleRate, 0.5)),
		"chime":         mono(genChime(sampleRate)),
		"merge":         mono(genMerge(rng, sampleRate)),
		"swirl":         mono(genSwirl(rng, sampleRate)),
		"gravity_shift": mono(genGravityShift(sampleRate)),
		"resonant":      mono(genResonantTone(sampleRate)),
		"ambient":       mono(genAmbientDrone(rng, sampleRate)),
	}

	left, right := genBinauralDrone(sampleRate, 6.0)
	cues["binaural"] = wavBytes(interleave(pcm16(left), pcm16(right)), sampleRate, 2)

	return cues
}
