package sound

import (
	"fmt"
	"log"
	"os"
	"sync"
	"sync/atomic"
	"time"
)

// Output is the audio context tones are played on.
type Output interface {
	Play(t Tone) error
}

// Manager gates playback on an enabled flag and owns the process's Output.
// Construct one at startup and share it.
type Manager struct {
	mu  sync.RWMutex
	out Output

	enabled atomic.Bool

	// after runs f once d has elapsed; replaced in tests.
	after  func(d time.Duration, f func())
	logger *log.Logger
}

// New returns an enabled Manager with no output attached yet.
func New() *Manager {
	m := &Manager{
		after:  func(d time.Duration, f func()) { time.AfterFunc(d, f) },
		logger: log.New(os.Stdout, "[SOUND] ", log.LstdFlags),
	}
	m.enabled.Store(true)
	return m
}

// Init attaches the audio output. A second call replaces the first output.
func (m *Manager) Init(out Output) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.out = out
}

// Initialized reports whether an output is attached.
func (m *Manager) Initialized() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.out != nil
}

// Enabled reports whether playback is on.
func (m *Manager) Enabled() bool { return m.enabled.Load() }

// Toggle flips the enabled flag and returns the new value.
func (m *Manager) Toggle() bool {
	for {
		old := m.enabled.Load()
		if m.enabled.CompareAndSwap(old, !old) {
			m.logger.Printf("sound_toggled enabled=%v", !old)
			return !old
		}
	}
}

// Play synthesises one tone. It does nothing when sound is disabled or no
// output is attached. A zero duration means DefaultDuration and an empty
// waveform means DefaultWaveform.
func (m *Manager) Play(frequency float64, duration time.Duration, waveform Waveform) error {
	if !m.enabled.Load() {
		return nil
	}
	m.mu.RLock()
	out := m.out
	m.mu.RUnlock()
	if out == nil {
		return nil
	}

	t := Tone{Frequency: frequency, Duration: duration, Waveform: waveform}.withDefaults()
	if err := out.Play(t); err != nil {
		return fmt.Errorf("play %.0fHz %s: %w", t.Frequency, t.Waveform, err)
	}
	return nil
}

// PlayEffect plays a registered effect. Voices with an offset are scheduled
// on independent timers that cannot be cancelled; each checks the enabled
// flag again when it fires.
func (m *Manager) PlayEffect(name string) error {
	e, ok := LookupEffect(name)
	if !ok {
		return fmt.Errorf("unknown effect %q", name)
	}
	for _, v := range e.Voices {
		v := v
		if v.Offset <= 0 {
			if err := m.Play(v.Tone.Frequency, v.Tone.Duration, v.Tone.Waveform); err != nil {
				return err
			}
			continue
		}
		m.after(v.Offset, func() {
			if err := m.Play(v.Tone.Frequency, v.Tone.Duration, v.Tone.Waveform); err != nil {
				m.logger.Printf("scheduled_play_failed effect=%s err=%v", name, err)
			}
		})
	}
	return nil
}

func (m *Manager) PlaySuccess() error { return m.PlayEffect("success") }

func (m *Manager) PlayError() error { return m.PlayEffect("error") }

// PlayPerfect approximates a C major chord with three staggered tones.
func (m *Manager) PlayPerfect() error { return m.PlayEffect("perfect") }
