package audio

import (
	"math"
	"math/rand/v2"
)

// Cue generators. All return unity-gain buffers; playback volume is applied
// by the engine. The recipes aim for soft, rounded ASMR textures rather than
// game-style blips.

// genTouchPop is a very light tick for particles brushing the touch radius.
func genTouchPop(rng *rand.Rand, sampleRate int, baseFreq float64) buffer {
	samples := seconds(0.08, sampleRate)

	wave := sine(samples, sampleRate, func(t float64) float64 {
		return baseFreq * math.Exp(-t*50)
	})
	wave = shape(wave, sampleRate, func(t float64) float64 {
		return math.Exp(-t*40) * (1 - math.Exp(-t*500)) * 0.15
	})

	texture := shape(noise(rng, samples), sampleRate, func(t float64) float64 {
		return 0.02 * math.Exp(-t*50)
	})
	return mix(wave, texture, 1)
}

// genPop is a soft bubble pop with a quick downward pitch glide.
func genPop(rng *rand.Rand, sampleRate int, baseFreq, duration float64) buffer {
	samples := seconds(duration, sampleRate)

	wave := sine(samples, sampleRate, func(t float64) float64 {
		return baseFreq * math.Exp(-t*30)
	})
	wave = shape(wave, sampleRate, func(t float64) float64 {
		return math.Exp(-t*15) * (1 - math.Exp(-t*200)) * 0.3
	})

	texture := shape(noise(rng, samples), sampleRate, func(t float64) float64 {
		return 0.05 * math.Exp(-t*20)
	})
	wave = mix(wave, texture, 1)

	return smooth(wave, 5)
}

// genWhoosh is lowpassed noise with a rise-and-fall envelope.
func genWhoosh(rng *rand.Rand, sampleRate int, duration float64) buffer {
	samples := seconds(duration, sampleRate)

	wave := smooth(noise(rng, samples), 50)
	return shape(wave, sampleRate, func(t float64) float64 {
		s := math.Sin(math.Pi * t / duration)
		return s * s * 0.2
	})
}

// genChime is a crystalline spawn chime built from decaying harmonics.
func genChime(sampleRate int) buffer {
	const duration = 0.8
	samples := seconds(duration, sampleRate)

	freqs := []float64{800, 1200, 1600, 2400}
	wave := make(buffer, samples)

	for i, freq := range freqs {
		amp := 0.3 / float64(i+1)
		decay := 3 + float64(i)*0.5
		partial := sine(samples, sampleRate, func(float64) float64 { return freq })
		partial = shape(partial, sampleRate, func(t float64) float64 {
			return amp * math.Exp(-t*decay)
		})
		wave = mix(wave, partial, 1)
	}

	// Gentle attack
	return shape(wave, sampleRate, func(t float64) float64 {
		return 1 - math.Exp(-t*50)
	})
}

// genMerge is a low thonk with a pitch drop and a subtle click transient.
func genMerge(rng *rand.Rand, sampleRate int) buffer {
	const duration = 0.25
	samples := seconds(duration, sampleRate)

	wave := sine(samples, sampleRate, func(t float64) float64 {
		return 150 * math.Exp(-t*20)
	})
	wave = shape(wave, sampleRate, func(t float64) float64 {
		return math.Exp(-t*8) * (1 - math.Exp(-t*100)) * 0.5
	})

	clickLen := seconds(0.01, sampleRate)
	click := shape(noise(rng, clickLen), sampleRate, func(t float64) float64 {
		return 0.3 * math.Exp(-t*100)
	})
	return mix(wave, click, 1)
}

// genSwirl is rising-filtered noise for the vortex gesture: the lowpass
// kernel narrows over the sound so the texture brightens as it spins up.
func genSwirl(rng *rand.Rand, sampleRate int) buffer {
	const duration = 1.5
	samples := seconds(duration, sampleRate)

	src := noise(rng, samples)
	wave := make(buffer, samples)

	const block = 100
	for i := 0; i < samples; i += block {
		end := min(i+block, samples)
		kernel := max(10, 50-int(40*float64(i)/float64(samples)))
		segment := smooth(src[i:end], kernel)
		copy(wave[i:end], segment)
	}

	return shape(wave, sampleRate, func(t float64) float64 {
		return math.Sin(math.Pi*t/duration) * 0.15
	})
}

// genGravityShift is a deep bass sweep with a sub-bass layer.
func genGravityShift(sampleRate int) buffer {
	const duration = 0.5
	samples := seconds(duration, sampleRate)

	wave := sine(samples, sampleRate, func(t float64) float64 {
		return 80 + (40-80)*t/duration
	})
	sub := sine(samples, sampleRate, func(float64) float64 { return 30 })
	wave = mix(wave, sub, 0.3)

	return shape(wave, sampleRate, func(t float64) float64 {
		return math.Sqrt(math.Sin(math.Pi*t/duration)) * 0.4
	})
}

// genResonantTone is a slowly swelling major chord for the two-hand merge.
func genResonantTone(sampleRate int) buffer {
	const duration = 1.0
	samples := seconds(duration, sampleRate)

	freqs := []float64{220, 277.18, 329.63, 440} // A3 C#4 E4 A4
	wave := make(buffer, samples)

	for i, freq := range freqs {
		amp := 0.2 / float64(i+1)
		partial := sine(samples, sampleRate, func(float64) float64 { return freq })
		partial = shape(partial, sampleRate, func(t float64) float64 {
			return amp * (1 + 0.1*math.Sin(2*math.Pi*2*t))
		})
		wave = mix(wave, partial, 1)
	}

	return shape(wave, sampleRate, func(t float64) float64 {
		attack := 1 - math.Exp(-t*3)
		decay := math.Exp(-(t - duration*0.3) * 2)
		if decay > 1 {
			decay = 1
		}
		return attack * decay
	})
}

// genAmbientDrone is a warm pad of detuned fifths with slow amplitude
// modulation, faded at both ends so it loops cleanly.
func genAmbientDrone(rng *rand.Rand, sampleRate int) buffer {
	const duration = 10.0
	samples := seconds(duration, sampleRate)

	freqs := []float64{55, 82.5, 110, 165} // A1 E2 A2 E3
	wave := make(buffer, samples)

	for _, freq := range freqs {
		detuned := freq + rng.Float64() - 0.5
		phase := rng.Float64() * 2 * math.Pi
		partial := sine(samples, sampleRate, func(float64) float64 { return detuned })
		partial = shape(partial, sampleRate, func(t float64) float64 {
			return 1 + 0.1*math.Sin(2*math.Pi*0.1*t+phase)
		})
		wave = mix(wave, partial, 0.15)
	}

	return loopFade(wave, seconds(0.5, sampleRate))
}

// genBinauralDrone builds the two channels of a theta-range binaural beat:
// the right ear runs beatFreq Hz above the left.
func genBinauralDrone(sampleRate int, beatFreq float64) (left, right buffer) {
	const duration = 10.0
	const baseFreq = 100.0
	samples := seconds(duration, sampleRate)

	channel := func(freq float64) buffer {
		wave := sine(samples, sampleRate, func(float64) float64 { return freq })
		for i := range wave {
			wave[i] *= 0.2
		}
		harmonic := sine(samples, sampleRate, func(float64) float64 { return freq * 2 })
		wave = mix(wave, harmonic, 0.05)
		return loopFade(wave, seconds(0.5, sampleRate))
	}

	return channel(baseFreq), channel(baseFreq + beatFreq)
}
