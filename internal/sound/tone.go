// Package sound synthesises the short feedback tones the minigames play.
//
// A Manager owns the single audio Output of the process and an enabled flag
// gating every playback. Tones use a fixed envelope: gain starts at 0.3 and
// decays exponentially to 0.01 over the tone's duration.
package sound

import (
	"math"
	"time"
)

// Waveform is the oscillator shape of a tone.
type Waveform string

const (
	Sine     Waveform = "sine"
	Square   Waveform = "square"
	Sawtooth Waveform = "sawtooth"
	Triangle Waveform = "triangle"
)

const (
	DefaultDuration = 200 * time.Millisecond
	DefaultWaveform = Sine

	peakGain = 0.3
	tailGain = 0.01
)

// ParseWaveform maps a name to a Waveform. Unknown names fall back to Sine.
func ParseWaveform(name string) Waveform {
	switch w := Waveform(name); w {
	case Sine, Square, Sawtooth, Triangle:
		return w
	default:
		return DefaultWaveform
	}
}

// Tone is one synthesised note.
type Tone struct {
	Frequency float64       `json:"frequency"`
	Duration  time.Duration `json:"duration"`
	Waveform  Waveform      `json:"waveform"`
}

func (t Tone) withDefaults() Tone {
	if t.Duration <= 0 {
		t.Duration = DefaultDuration
	}
	t.Waveform = ParseWaveform(string(t.Waveform))
	return t
}

// Render returns the tone as mono samples in [-1, 1] at sampleRate.
func (t Tone) Render(sampleRate int) []float64 {
	t = t.withDefaults()
	if sampleRate <= 0 {
		return nil
	}
	dur := t.Duration.Seconds()
	n := int(dur * float64(sampleRate))
	out := make([]float64, n)
	for i := range out {
		sec := float64(i) / float64(sampleRate)
		out[i] = oscillate(t.Waveform, t.Frequency*sec) * envelope(sec, dur)
	}
	return out
}

// envelope is the exponential ramp from peakGain at 0 to tailGain at dur.
func envelope(sec, dur float64) float64 {
	return peakGain * math.Pow(tailGain/peakGain, sec/dur)
}

// oscillate evaluates one cycle-normalised waveform at cycles (t*f).
func oscillate(w Waveform, cycles float64) float64 {
	phase := cycles - math.Floor(cycles)
	switch w {
	case Square:
		if phase < 0.5 {
			return 1
		}
		return -1
	case Sawtooth:
		p := phase + 0.5
		return 2*(p-math.Floor(p)) - 1
	case Triangle:
		p := phase + 0.25
		return 1 - 4*math.Abs(p-math.Floor(p)-0.5)
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}

// PCM16 converts samples to signed 16-bit values, clipping out-of-range input.
func PCM16(samples []float64) []int16 {
	out := make([]int16, len(samples))
	for i, s := range samples {
		s = math.Max(-1, math.Min(1, s))
		out[i] = int16(math.Round(s * math.MaxInt16))
	}
	return out
}
