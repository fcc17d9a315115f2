//go:build cgo

package sound

import (
	"encoding/binary"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// EbitenOutput plays tones through Ebiten's audio package.
type EbitenOutput struct {
	mu      sync.Mutex
	ctx     *audio.Context
	players []*audio.Player
}

// NewEbitenOutput creates the audio context. Ebiten allows only one context
// per process, so call it once.
func NewEbitenOutput(sampleRate int) (*EbitenOutput, error) {
	return &EbitenOutput{ctx: audio.NewContext(sampleRate)}, nil
}

func (o *EbitenOutput) Play(t Tone) error {
	pcm := PCM16(t.Render(o.ctx.SampleRate()))

	// Ebiten expects interleaved stereo, 16-bit little endian.
	buf := make([]byte, len(pcm)*4)
	for i, s := range pcm {
		binary.LittleEndian.PutUint16(buf[i*4:], uint16(s))
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(s))
	}

	p := o.ctx.NewPlayerFromBytes(buf)
	p.Play()

	o.mu.Lock()
	defer o.mu.Unlock()
	live := o.players[:0]
	for _, old := range o.players {
		if old.IsPlaying() {
			live = append(live, old)
			continue
		}
		_ = old.Close()
	}
	o.players = append(live, p)
	return nil
}
