// Package audio plays the game's synthesized sound effects through the
// system speaker.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-jump/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// Manager mixes fire-and-forget effects into a single speaker stream.
// It is safe to call Play before Init or after a failed Init; such calls do nothing.
type Manager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	muted       bool
	initialized bool
}

// NewManager creates a manager with the given master volume in [0, 1].
func NewManager(volume float64) *Manager {
	return &Manager{
		mixer:  &beep.Mixer{},
		volume: core.ClampF(volume, 0, 1),
	}
}

// Init opens the speaker and starts the mixer.
func (m *Manager) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(m.mixer)
	m.initialized = true
	return nil
}

// Close stops every playing effect.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	speaker.Clear()
	m.initialized = false
}

// SetMuted turns playback off or back on.
func (m *Manager) SetMuted(muted bool) {
	m.mu.Lock()
	m.muted = muted
	m.mu.Unlock()
}

// Muted reports whether playback is off.
func (m *Manager) Muted() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.muted
}

// Play starts s without waiting for it to finish.
func (m *Manager) Play(s core.Sound) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized || m.muted || m.volume <= 0 {
		return
	}
	st := Effect(s, sampleRate)
	if st == nil {
		return
	}

	speaker.Lock()
	m.mixer.Add(newVolume(st, m.volume))
	speaker.Unlock()
}
