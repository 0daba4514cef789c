// Package tone turns array values into a sine-ish voice for sonifying
// animation steps.
package tone

import (
	"math"
	"sync"
)

const (
	SampleRate = 44100
	MinFreq    = 120.0
	MaxFreq    = 1200.0
)

// Frequency maps v in [0, top] linearly onto [MinFreq, MaxFreq].
func Frequency(v, top int) float64 {
	if top <= 0 {
		return MinFreq
	}
	t := math.Max(0, math.Min(float64(v)/float64(top), 1))
	return MinFreq + t*(MaxFreq-MinFreq)
}

// Changed returns the first index where cur differs from prev, or -1.
func Changed(prev, cur []int) int {
	for i := range cur {
		if i >= len(prev) || prev[i] != cur[i] {
			return i
		}
	}
	return -1
}

// Synth is a single triangle voice with a decaying envelope. Note is
// called from the UI goroutine and Fill from the audio callback.
type Synth struct {
	mu     sync.Mutex
	freq   float64
	target float64
	env    float64
	phase  float64
	filter [2]float64

	// Decay is the per-sample envelope multiplier.
	Decay  float64
	Volume float64
}

func NewSynth() *Synth {
	return &Synth{
		freq:   MinFreq,
		target: MinFreq,
		Decay:  0.9995,
		Volume: 0.25,
	}
}

// Note retriggers the envelope at freq.
func (s *Synth) Note(freq float64) {
	s.mu.Lock()
	s.target = freq
	s.env = 1
	s.mu.Unlock()
}

// Level is the current envelope level.
func (s *Synth) Level() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.env
}

// Fill writes one buffer of stereo samples.
func (s *Synth) Fill(out [][]float32) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(out) == 0 {
		return
	}
	dt := 1.0 / SampleRate
	for i := range out[0] {
		// Glide towards the target to avoid clicks between notes.
		s.freq += (s.target - s.freq) * 0.01
		s.phase += s.freq * dt
		s.phase -= math.Floor(s.phase)

		sample := triangle(s.phase) * s.env * s.Volume
		for ch := range out {
			var v float64
			v, s.filter[ch%2] = lpf(sample, 2000, dt, s.filter[ch%2])
			out[ch][i] = float32(v)
		}
		s.env *= s.Decay
	}
}

func triangle(phase float64) float64 {
	p := phase - math.Floor(phase)
	return 4.0*math.Abs(p-0.5) - 1.0
}

// lpf is a one-pole low pass filter.
func lpf(sample, cutoff, dt, state float64) (float64, float64) {
	rc := 1.0 / (2.0 * math.Pi * cutoff)
	alpha := dt / (rc + dt)
	out := state + alpha*(sample-state)
	return out, out
}
