package display

import (
	"encoding/binary"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

const (
	sampleRate    = 44100
	toneFrequency = 440
	toneAmplitude = 0x1000
)

// beeper plays a square tone while the sound timer is active.
type beeper struct {
	player *audio.Player
}

func newBeeper() (*beeper, error) {
	ctx := audio.NewContext(sampleRate)
	player, err := ctx.NewPlayer(&squareWave{})
	if err != nil {
		return nil, fmt.Errorf("creating audio player: %w", err)
	}
	return &beeper{player: player}, nil
}

// update starts or stops the tone.
func (b *beeper) update(active bool) {
	switch {
	case active && !b.player.IsPlaying():
		b.player.Play()
	case !active && b.player.IsPlaying():
		b.player.Pause()
	}
}

func (b *beeper) close() error {
	if err := b.player.Close(); err != nil {
		return fmt.Errorf("closing audio player: %w", err)
	}
	return nil
}

// squareWave is an endless stream of 16 bit signed little endian stereo
// samples of a square tone.
type squareWave struct {
	position int64
}

// Read fills the buffer with complete stereo frames.
func (s *squareWave) Read(buf []byte) (int, error) {
	const frameSize = 4
	const period = sampleRate / toneFrequency

	n := len(buf) / frameSize * frameSize
	for i := 0; i < n; i += frameSize {
		sample := int16(toneAmplitude)
		if s.position%period >= period/2 {
			sample = -sample
		}
		binary.LittleEndian.PutUint16(buf[i:], uint16(sample))
		binary.LittleEndian.PutUint16(buf[i+2:], uint16(sample))
		s.position++
	}
	return n, nil
}
