package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"ballfield/game"
)

const (
	sampleRate = beep.SampleRate(48000)
)

// SoundManager plays event cues through the speaker. It observes the game
// core and is safe to use when the speaker never initialized.
type SoundManager struct {
	game.NopObserver

	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
	played      [cueCount]int
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}

// SetMuted silences or restores cue playback
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	sm.muted = muted
	sm.mu.Unlock()
}

// Muted reports whether playback is silenced
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// Play queues c on the mixer. It is a no-op while muted or uninitialized.
func (sm *SoundManager) Play(c Cue) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}
	s := NewCue(c, sampleRate)
	if s == nil {
		return
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
	sm.played[c]++
}

// Played returns how many times c reached the mixer
func (sm *SoundManager) Played(c Cue) int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if c < 0 || c >= cueCount {
		return 0
	}
	return sm.played[c]
}

func (sm *SoundManager) BallDestroyed(b game.Ball, cause game.DestroyCause) {
	if c, ok := CueForDestroy(b, cause); ok {
		sm.Play(c)
	}
}

func (sm *SoundManager) PhaseChanged(_, to game.Phase) {
	if c, ok := CueForPhase(to); ok {
		sm.Play(c)
	}
}
