// Package audio plays the sound timer tone through the beep speaker.
package audio

import (
	"fmt"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
	frequency  = 440
	volume     = 0.2
)

// tone is a square wave that is silent while inactive.
type tone struct {
	active bool
	phase  int
	period int
}

func newTone() *tone {
	return &tone{period: int(sampleRate) / frequency}
}

func (t *tone) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		value := 0.0
		if t.active {
			value = volume
			if t.phase >= t.period/2 {
				value = -volume
			}
		}
		samples[i][0] = value
		samples[i][1] = value
		t.phase = (t.phase + 1) % t.period
	}
	return len(samples), true
}

func (t *tone) Err() error {
	return nil
}

// Beeper plays the tone whenever it is set active.
type Beeper struct {
	tone *tone
}

// NewBeeper initializes the speaker and starts the silent tone.
func NewBeeper() (*Beeper, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("initializing speaker: %w", err)
	}

	b := &Beeper{tone: newTone()}
	speaker.Play(b.tone)
	return b, nil
}

// SetActive turns the tone on or off.
func (b *Beeper) SetActive(active bool) {
	speaker.Lock()
	b.tone.active = active
	speaker.Unlock()
}

// Close stops playback.
func (b *Beeper) Close() {
	speaker.Clear()
}
