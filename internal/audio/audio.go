// Package audio synthesizes the game's sound effects with beep. Sounds are
// generated tones, not assets, so the binary stays self-contained.
package audio

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(48000)

// Sound names accepted by PlaySound.
const (
	SoundScore     = "score"
	SoundHighScore = "highscore"
	SoundCollision = "collision"
)

// Manager owns the speaker and mixes sound effects into it. The zero of
// a *Manager (nil) is a valid silent player, and PlaySound before
// Initialize is a no-op, so callers never need to guard.
type Manager struct {
	mixer       *beep.Mixer
	initialized bool
}

// NewManager creates a sound manager. Call Initialize before playing.
func NewManager() *Manager {
	return &Manager{mixer: &beep.Mixer{}}
}

// Initialize opens the speaker and starts the mixer.
func (m *Manager) Initialize() error {
	if m.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(m.mixer)
	m.initialized = true
	return nil
}

// PlaySound plays a named effect at the given volume (0..1). Unknown
// names and an uninitialized or nil manager are silent no-ops.
func (m *Manager) PlaySound(name string, volume float64) {
	if m == nil || !m.initialized {
		return
	}
	if volume < 0 {
		volume = 0
	}
	if volume > 1 {
		volume = 1
	}

	var s beep.Streamer
	switch name {
	case SoundScore:
		// Rising chirp
		s = newSweep(440, 880, volume, 120*time.Millisecond, sampleRate)
	case SoundHighScore:
		s = newSweep(523, 1046, volume, 200*time.Millisecond, sampleRate)
	case SoundCollision:
		// Falling buzz
		s = newSweep(220, 70, volume, 250*time.Millisecond, sampleRate)
	default:
		return
	}

	speaker.Lock()
	m.mixer.Add(s)
	speaker.Unlock()
}

// Close silences the mixer. The speaker itself stays open; beep does not
// expose a teardown for it.
func (m *Manager) Close() {
	if m == nil || !m.initialized {
		return
	}
	speaker.Lock()
	m.mixer.Clear()
	speaker.Unlock()
	m.initialized = false
}
