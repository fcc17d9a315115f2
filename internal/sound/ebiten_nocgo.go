//go:build !cgo

package sound

import "errors"

// EbitenOutput is unavailable without cgo.
type EbitenOutput struct{}

func NewEbitenOutput(sampleRate int) (*EbitenOutput, error) {
	return nil, errors.New("ebiten audio output requires cgo")
}

func (o *EbitenOutput) Play(t Tone) error {
	return errors.New("ebiten audio output requires cgo")
}
