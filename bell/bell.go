// Package bell plays a short speaker tone as an audible terminal bell,
// for hosts where the display device has no bell of its own.
package bell

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
	toneLength = 60 * time.Millisecond
)

// Bell is a speaker-backed bell. One per process; the speaker is a
// global device.
type Bell struct {
	freq   float64
	opened bool
}

// Open initializes the speaker. Fails when no audio device is available;
// callers should treat that as non-fatal and fall back to the driver bell.
func Open(freqHz int) (*Bell, error) {
	if freqHz <= 0 {
		freqHz = 880
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("speaker init: %w", err)
	}
	return &Bell{freq: float64(freqHz), opened: true}, nil
}

// Ring plays the bell tone. Asynchronous; returns immediately.
func (b *Bell) Ring() {
	if b == nil || !b.opened {
		return
	}
	sine, err := generators.SineTone(sampleRate, b.freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(toneLength), sine))
}

// Close releases the speaker.
func (b *Bell) Close() {
	if b == nil || !b.opened {
		return
	}
	speaker.Close()
	b.opened = false
}
