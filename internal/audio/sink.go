// Package audio plays the game's named sound effects. Effects are
// synthesised with beep oscillators and mixed onto the speaker; when no
// audio device is available a silent sink takes its place.
package audio

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/cavyn/internal/config"
	"github.com/vovakirdan/cavyn/internal/core"
)

// Sink receives the effects emitted by the simulation.
type Sink interface {
	Play(s core.Sound)
	Close()
}

// Silent discards every effect.
type Silent struct{}

func (Silent) Play(core.Sound) {}
func (Silent) Close() {}

// maxVoices bounds concurrently mixed effects.
const maxVoices = 16

// Speaker mixes effects onto the default output device.
type Speaker struct {
	mu     sync.Mutex
	cfg    config.AudioConfig
	mixer  *beep.Mixer
	log    *log.Logger
	closed bool
}

// speakerOnce guards the process-wide speaker initialisation.
var (
	speakerOnce sync.Once
	speakerErr  error
)

// NewSpeaker initialises the output device and starts the mixer.
func NewSpeaker(cfg config.AudioConfig, logger *log.Logger) (*Speaker, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if cfg.SampleRate <= 0 {
		return nil, fmt.Errorf("audio: invalid sample rate %d", cfg.SampleRate)
	}
	rate := beep.SampleRate(cfg.SampleRate)
	speakerOnce.Do(func() {
		speakerErr = speaker.Init(rate, rate.N(100*time.Millisecond))
	})
	if speakerErr != nil {
		return nil, fmt.Errorf("audio: cannot open output device: %w", speakerErr)
	}

	s := &Speaker{cfg: cfg, mixer: &beep.Mixer{}, log: logger}
	speaker.Play(s.mixer)
	logger.Debug("audio ready", "rate", cfg.SampleRate, "volume", cfg.MasterVolume)
	return s, nil
}

// Play mixes one effect in. Unknown names are ignored.
func (s *Speaker) Play(name core.Sound) {
	st := Effect(name, s.cfg)
	if st == nil {
		s.log.Debug("unknown sound", "sound", name)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	speaker.Lock()
	defer speaker.Unlock()
	if s.mixer.Len() >= maxVoices {
		return
	}
	s.mixer.Add(st)
}

// Close silences the mixer. The device stays open for the process.
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
}

// New returns a speaker sink, or a silent one when audio is disabled or the
// device cannot be opened.
func New(cfg config.AudioConfig, logger *log.Logger) Sink {
	if !cfg.Enabled {
		return Silent{}
	}
	sp, err := NewSpeaker(cfg, logger)
	if err != nil {
		if logger != nil {
			logger.Warn("audio unavailable, continuing silent", "err", err)
		}
		return Silent{}
	}
	return sp
}

// Recorder is a sink that remembers what was played.
type Recorder struct {
	mu     sync.Mutex
	played []core.Sound
}

func (r *Recorder) Play(s core.Sound) {
	r.mu.Lock()
	r.played = append(r.played, s)
	r.mu.Unlock()
}

func (r *Recorder) Close() {}

// Played returns the effects received so far.
func (r *Recorder) Played() []core.Sound {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]core.Sound(nil), r.played...)
}
