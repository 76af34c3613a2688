package audio

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/tomz197/missiles/internal/draw"
)

const sampleRate = beep.SampleRate(44100)

// Speaker plays cues on the system audio device. The device is opened on
// the first cue; if that fails the speaker stays silent for good.
type Speaker struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	failed      bool
	logger      *log.Logger

	// init opens the device; replaced in tests.
	init func(sr beep.SampleRate, bufferSize int) error
}

// NewSpeaker creates a speaker. logger may be nil.
func NewSpeaker(logger *log.Logger) *Speaker {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Speaker{
		mixer:  &beep.Mixer{},
		logger: logger,
		init:   speaker.Init,
	}
}

// Initialize opens the audio device. Calling it again after success is a
// no-op.
func (s *Speaker) Initialize() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.initLocked()
}

var errAudioUnavailable = errors.New("audio device unavailable")

func (s *Speaker) initLocked() error {
	if s.initialized {
		return nil
	}
	if s.failed {
		return errAudioUnavailable
	}
	if err := s.init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		s.failed = true
		s.logger.Warn("audio disabled", "err", err)
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(s.mixer)
	s.initialized = true
	return nil
}

// PlayImpact implements game.Audio. Failures are logged once and otherwise
// ignored.
func (s *Speaker) PlayImpact() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initLocked() != nil {
		return
	}
	cue := NewImpactCue(sampleRate)
	speaker.Lock()
	s.mixer.Add(beep.Take(cue.Len(), cue))
	speaker.Unlock()
}

// Available reports whether the device opened successfully.
func (s *Speaker) Available() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.initialized
}

// Cleanup stops any playing cues.
func (s *Speaker) Cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
}

// Bell rings the terminal bell on each impact.
type Bell struct {
	w io.Writer
}

// NewBell creates a bell writing to w.
func NewBell(w io.Writer) *Bell {
	return &Bell{w: w}
}

// PlayImpact implements game.Audio.
func (b *Bell) PlayImpact() {
	draw.Bell(b.w)
}

// Silent discards cues.
type Silent struct{}

// PlayImpact implements game.Audio.
func (Silent) PlayImpact() {}
