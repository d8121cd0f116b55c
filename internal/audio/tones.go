package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// sweep generates a sine tone whose frequency glides from startFreq to
// endFreq over the given duration, with a linear fade-out so clips never
// click at the end.
type sweep struct {
	startFreq float64
	endFreq   float64
	volume    float64
	phase     float64
	duration  int
	position  int
	rate      beep.SampleRate
}

// newSweep creates a frequency-sweep streamer.
func newSweep(startFreq, endFreq, volume float64, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &sweep{
		startFreq: startFreq,
		endFreq:   endFreq,
		volume:    volume,
		duration:  rate.N(duration),
		rate:      rate,
	}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.position >= s.duration {
			return i, i > 0
		}

		t := float64(s.position) / float64(s.duration)
		freq := s.startFreq + (s.endFreq-s.startFreq)*t
		fade := 1.0 - t

		val := math.Sin(2*math.Pi*s.phase) * s.volume * fade
		samples[i][0] = val
		samples[i][1] = val

		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase) // Keep in [0, 1)
		s.position++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }
