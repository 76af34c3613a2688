// Package audio plays the impact cue through the system speaker, or falls
// back to the terminal bell.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// Impact cue shape: a square wave sweeping down in pitch while fading out.
const (
	cueDuration  = 300 * time.Millisecond
	cueStartFreq = 300.0
	cueEndFreq   = 50.0
	cueStartGain = 0.8
	cueEndGain   = 0.001
)

// ImpactCue generates the impact sound. Frequency and gain both fall
// exponentially over the cue's length; the stream ends after it.
type ImpactCue struct {
	sr    beep.SampleRate
	pos   int
	total int
	phase float64 // In cycles, wrapped to [0, 1)
}

// NewImpactCue creates an impact cue generator for sample rate sr.
func NewImpactCue(sr beep.SampleRate) *ImpactCue {
	return &ImpactCue{
		sr:    sr,
		total: sr.N(cueDuration),
	}
}

// Len returns the cue length in samples.
func (c *ImpactCue) Len() int {
	return c.total
}

// Stream implements beep.Streamer.
func (c *ImpactCue) Stream(samples [][2]float64) (n int, ok bool) {
	if c.pos >= c.total {
		return 0, false
	}
	for i := range samples {
		if c.pos >= c.total {
			return i, true
		}
		progress := float64(c.pos) / float64(c.total)
		freq := sweep(cueStartFreq, cueEndFreq, progress)
		gain := sweep(cueStartGain, cueEndGain, progress)

		sample := gain
		if c.phase >= 0.5 {
			sample = -gain
		}
		samples[i][0] = sample
		samples[i][1] = sample

		c.phase += freq / float64(c.sr)
		c.phase -= math.Floor(c.phase)
		c.pos++
	}
	return len(samples), true
}

// Err implements beep.Streamer.
func (c *ImpactCue) Err() error {
	return nil
}

// sweep interpolates exponentially from start to end, progress in [0, 1].
func sweep(start, end, progress float64) float64 {
	return start * math.Pow(end/start, progress)
}
