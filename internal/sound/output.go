package sound

import (
	"log"
	"os"
	"sync"
)

// Discard drops every tone after logging it. Used on hosts without audio.
type Discard struct {
	logger *log.Logger
}

func NewDiscard() *Discard {
	return &Discard{logger: log.New(os.Stdout, "[SOUND] ", log.LstdFlags)}
}

func (d *Discard) Play(t Tone) error {
	d.logger.Printf("tone_dropped frequency=%.0f duration=%v waveform=%s", t.Frequency, t.Duration, t.Waveform)
	return nil
}

// Recorder keeps every tone it is asked to play.
type Recorder struct {
	mu    sync.Mutex
	tones []Tone
}

func (r *Recorder) Play(t Tone) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tones = append(r.tones, t)
	return nil
}

// Tones returns a copy of the recorded tones in play order.
func (r *Recorder) Tones() []Tone {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Tone(nil), r.tones...)
}
