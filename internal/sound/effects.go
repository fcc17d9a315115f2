package sound

import (
	"math"
	"sort"
	"time"
)

// Voice is a tone started Offset after the effect begins.
type Voice struct {
	Tone   Tone
	Offset time.Duration
}

// Effect is a named sequence of voices.
type Effect struct {
	Name   string
	Voices []Voice
}

var effects = map[string]Effect{
	"success": {Name: "success", Voices: []Voice{
		{Tone: Tone{Frequency: 800, Duration: 150 * time.Millisecond, Waveform: Sine}},
	}},
	"error": {Name: "error", Voices: []Voice{
		{Tone: Tone{Frequency: 200, Duration: 300 * time.Millisecond, Waveform: Square}},
	}},
	// C, E, G a few milliseconds apart
	"perfect": {Name: "perfect", Voices: []Voice{
		{Tone: Tone{Frequency: 523, Duration: 200 * time.Millisecond, Waveform: Sine}},
		{Tone: Tone{Frequency: 659, Duration: 200 * time.Millisecond, Waveform: Sine}, Offset: 50 * time.Millisecond},
		{Tone: Tone{Frequency: 784, Duration: 200 * time.Millisecond, Waveform: Sine}, Offset: 100 * time.Millisecond},
	}},
}

// LookupEffect returns the effect registered under name.
func LookupEffect(name string) (Effect, bool) {
	e, ok := effects[name]
	return e, ok
}

// EffectNames lists the registered effects in ascending order.
func EffectNames() []string {
	names := make([]string, 0, len(effects))
	for n := range effects {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Mix renders every voice of e into one buffer at sampleRate.
func Mix(e Effect, sampleRate int) []float64 {
	if sampleRate <= 0 {
		return nil
	}
	total := 0
	rendered := make([][]float64, len(e.Voices))
	starts := make([]int, len(e.Voices))
	for i, v := range e.Voices {
		rendered[i] = v.Tone.Render(sampleRate)
		starts[i] = int(v.Offset.Seconds() * float64(sampleRate))
		if end := starts[i] + len(rendered[i]); end > total {
			total = end
		}
	}

	out := make([]float64, total)
	for i, samples := range rendered {
		for j, s := range samples {
			out[starts[i]+j] += s
		}
	}
	for i, s := range out {
		out[i] = math.Max(-1, math.Min(1, s))
	}
	return out
}
