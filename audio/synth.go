// Package audio synthesizes the simulator's sound cues procedurally and
// plays them through the raylib audio device. No sample assets are shipped;
// every cue is generated at startup.
package audio

import (
	"bytes"
	"encoding/binary"
	"math"
	"math/rand/v2"
)

// buffer is mono float64 samples at unity gain.
type buffer []float64

// seconds converts a duration to a sample count.
func seconds(d float64, sampleRate int) int {
	return int(d * float64(sampleRate))
}

// sine fills a buffer with sin(2*pi*freq(t)*t). freq is evaluated per sample
// so generators can sweep pitch.
func sine(samples, sampleRate int, freq func(t float64) float64) buffer {
	buf := make(buffer, samples)
	for i := range buf {
		t := float64(i) / float64(sampleRate)
		buf[i] = math.Sin(2 * math.Pi * freq(t) * t)
	}
	return buf
}

// noise fills a buffer with uniform noise in [-1, 1).
func noise(rng *rand.Rand, samples int) buffer {
	buf := make(buffer, samples)
	for i := range buf {
		buf[i] = rng.Float64()*2 - 1
	}
	return buf
}

// shape multiplies each sample by env(t).
func shape(buf buffer, sampleRate int, env func(t float64) float64) buffer {
	for i := range buf {
		t := float64(i) / float64(sampleRate)
		buf[i] *= env(t)
	}
	return buf
}

// mix adds b into a in place, scaled, extending a if needed.
func mix(a, b buffer, scale float64) buffer {
	if len(b) > len(a) {
		extended := make(buffer, len(b))
		copy(extended, a)
		a = extended
	}
	for i := range b {
		a[i] += b[i] * scale
	}
	return a
}

// smooth applies a moving-average lowpass with the given kernel size.
func smooth(buf buffer, kernel int) buffer {
	if kernel < 2 || kernel > len(buf) {
		return buf
	}
	out := make(buffer, len(buf))
	var sum float64
	for i := range buf {
		sum += buf[i]
		if i >= kernel {
			sum -= buf[i-kernel]
		}
		n := min(i+1, kernel)
		out[i] = sum / float64(n)
	}
	return out
}

// loopFade applies linear fade-in/fade-out ramps so a looped buffer has no
// click at the seam.
func loopFade(buf buffer, fadeSamples int) buffer {
	if fadeSamples > len(buf)/2 {
		fadeSamples = len(buf) / 2
	}
	for i := 0; i < fadeSamples; i++ {
		ramp := float64(i) / float64(fadeSamples)
		buf[i] *= ramp
		buf[len(buf)-1-i] *= ramp
	}
	return buf
}

// pcm16 clips samples to [-1, 1] and converts to 16-bit.
func pcm16(buf buffer) []int16 {
	out := make([]int16, len(buf))
	for i, v := range buf {
		if v > 1 {
			v = 1
		} else if v < -1 {
			v = -1
		}
		out[i] = int16(v * 32767)
	}
	return out
}

// interleave merges left/right channels into an interleaved stereo stream.
// The shorter channel is zero-padded.
func interleave(left, right []int16) []int16 {
	n := max(len(left), len(right))
	out := make([]int16, 2*n)
	for i := 0; i < n; i++ {
		if i < len(left) {
			out[2*i] = left[i]
		}
		if i < len(right) {
			out[2*i+1] = right[i]
		}
	}
	return out
}

// wavBytes encodes PCM16 samples as an in-memory RIFF/WAVE file, which is
// what the raylib wave loader expects.
func wavBytes(samples []int16, sampleRate, channels int) []byte {
	dataSize := len(samples) * 2
	blockAlign := channels * 2
	byteRate := sampleRate * blockAlign

	var w bytes.Buffer
	w.WriteString("RIFF")
	binary.Write(&w, binary.LittleEndian, uint32(36+dataSize))
	w.WriteString("WAVE")

	w.WriteString("fmt ")
	binary.Write(&w, binary.LittleEndian, uint32(16))
	binary.Write(&w, binary.LittleEndian, uint16(1)) // PCM
	binary.Write(&w, binary.LittleEndian, uint16(channels))
	binary.Write(&w, binary.LittleEndian, uint32(sampleRate))
	binary.Write(&w, binary.LittleEndian, uint32(byteRate))
	binary.Write(&w, binary.LittleEndian, uint16(blockAlign))
	binary.Write(&w, binary.LittleEndian, uint16(16)) // bits per sample

	w.WriteString("data")
	binary.Write(&w, binary.LittleEndian, uint32(dataSize))
	binary.Write(&w, binary.LittleEndian, samples)

	return w.Bytes()
}
