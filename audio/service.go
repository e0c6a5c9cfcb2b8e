package audio

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/datastorm/core"
	"github.com/lixenwraith/datastorm/parameter"
)

// Service synthesizes and plays game sound effects through the speaker.
// Degrades gracefully: if no audio backend is available the service stays
// disabled and every Play returns false without error.
type Service struct {
	mu     sync.Mutex
	config Config
	mixer  *beep.Mixer

	initialized atomic.Bool
	disabled    atomic.Bool
	muted       atomic.Bool

	// active counts streamers currently mixed, bounding concurrency
	active atomic.Int64
}

// NewService creates an uninitialized sound service
func NewService(cfg Config) *Service {
	s := &Service{
		config: cfg,
		mixer:  &beep.Mixer{},
	}
	s.muted.Store(!cfg.Enabled)
	return s
}

// Initialize opens the speaker and attaches the mixer. A backend failure
// disables the service instead of failing the host.
func (s *Service) Initialize() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized.Load() {
		return nil
	}

	if err := speaker.Init(s.config.SampleRate, s.config.SampleRate.N(s.config.BufferLen)); err != nil {
		s.disabled.Store(true)
		return nil
	}

	speaker.Play(s.mixer)
	s.initialized.Store(true)
	return nil
}

// Cleanup silences and detaches everything
func (s *Service) Cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized.Load() {
		return
	}
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	s.initialized.Store(false)
}

// Play synthesizes and queues one effect. Returns false when the effect
// was not played: disabled, muted, or too many concurrent sounds.
func (s *Service) Play(st core.SoundType) bool {
	if !s.initialized.Load() || s.disabled.Load() || s.muted.Load() {
		return false
	}
	if s.active.Load() >= parameter.AudioMaxConcurrentSounds {
		return false
	}

	streamer := s.synthesize(st)
	if streamer == nil {
		return false
	}

	s.active.Add(1)
	done := beep.Callback(func() {
		s.active.Add(-1)
	})

	speaker.Lock()
	s.mixer.Add(beep.Seq(streamer, done))
	speaker.Unlock()
	return true
}

// ToggleMute flips the mute state, returning true if sound is now enabled
func (s *Service) ToggleMute() bool {
	newMute := !s.muted.Load()
	s.muted.Store(newMute)
	return !newMute
}

// IsMuted returns current mute state
func (s *Service) IsMuted() bool {
	return s.muted.Load()
}

// synthesize builds the streamer for one effect type
func (s *Service) synthesize(st core.SoundType) beep.Streamer {
	rate := s.config.SampleRate
	gain := s.config.MasterVolume

	switch st {
	case core.SoundHit:
		osc := NewOscillator(220, 80*time.Millisecond, WaveSquare, rate)
		return NewEnvelope(osc, 80*time.Millisecond, 2*time.Millisecond, 40*time.Millisecond, gain*0.5, rate)

	case core.SoundExplosion:
		osc := NewOscillator(0, 300*time.Millisecond, WaveNoise, rate)
		return NewEnvelope(osc, 300*time.Millisecond, 5*time.Millisecond, 220*time.Millisecond, gain*0.8, rate)

	case core.SoundPickup:
		swp := NewSweep(440, 880, 120*time.Millisecond, rate)
		return NewEnvelope(swp, 120*time.Millisecond, 5*time.Millisecond, 60*time.Millisecond, gain*0.6, rate)

	case core.SoundDenied:
		osc := NewOscillator(110, 150*time.Millisecond, WaveSquare, rate)
		return NewEnvelope(osc, 150*time.Millisecond, 2*time.Millisecond, 80*time.Millisecond, gain*0.5, rate)

	case core.SoundMultiplierLost:
		swp := NewSweep(660, 165, 350*time.Millisecond, rate)
		return NewEnvelope(swp, 350*time.Millisecond, 5*time.Millisecond, 150*time.Millisecond, gain*0.7, rate)

	case core.SoundLevelComplete:
		swp := NewSweep(330, 990, 500*time.Millisecond, rate)
		return NewEnvelope(swp, 500*time.Millisecond, 10*time.Millisecond, 200*time.Millisecond, gain*0.7, rate)

	case core.SoundPlayerDeath:
		swp := NewSweep(440, 55, 900*time.Millisecond, rate)
		return NewEnvelope(swp, 900*time.Millisecond, 5*time.Millisecond, 400*time.Millisecond, gain, rate)
	}
	return nil
}
