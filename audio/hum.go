package audio

import (
	"math"

	"github.com/gopxl/beep"
)

// Hum is an endless fluorescent-light buzz: a mains tone, its harmonic and a slow flicker.
type Hum struct {
	sr    beep.SampleRate
	phase float64
	pos   int
}

func NewHum(sr beep.SampleRate) *Hum {
	return &Hum{sr: sr}
}

func (h *Hum) Stream(samples [][2]float64) (n int, ok bool) {
	rate := float64(h.sr)
	for i := range samples {
		t := float64(h.pos) / rate
		flicker := 0.85 + 0.15*math.Sin(2*math.Pi*0.3*t)
		v := 0.6*math.Sin(2*math.Pi*h.phase) + 0.25*math.Sin(4*math.Pi*h.phase)
		v *= 0.5 * flicker

		samples[i][0] = v
		samples[i][1] = v

		h.phase += 60 / rate
		h.phase -= math.Floor(h.phase)
		h.pos++
	}
	return len(samples), true
}

func (h *Hum) Err() error { return nil }
