package audio

import (
	"slices"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/cavyn/internal/config"
	"github.com/vovakirdan/cavyn/internal/core"
	"github.com/vovakirdan/cavyn/internal/games/cavyn"
)

// drain streams s to the end and returns the sample count and peak amplitude.
func drain(s beep.Streamer) (int, float64) {
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			peak = max(peak, buf[i][0], -buf[i][0])
		}
		total += n
		if !ok {
			return total, peak
		}
	}
}

func TestOscillatorSquare(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(220, 50*time.Millisecond, WaveSquare, rate)

	samples := make([][2]float64, 50)
	n, ok := osc.Stream(samples)
	if !ok || n != 50 {
		t.Fatalf("Stream() = %d/%v, expected 50/true", n, ok)
	}
	for i := 0; i < n; i++ {
		if v := samples[i][0]; v != -1 && v != 1 {
			t.Errorf("sample %d = %v, expected -1 or 1", i, v)
		}
	}
}

func TestOscillatorDuration(t *testing.T) {
	rate := beep.SampleRate(44100)
	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveSaw, WaveNoise} {
		n, peak := drain(NewGlide(200, 800, 100*time.Millisecond, wave, rate))
		if n != rate.N(100*time.Millisecond) {
			t.Errorf("wave %d: streamed %d samples, expected %d", wave, n, rate.N(100*time.Millisecond))
		}
		if peak > 1 {
			t.Errorf("wave %d: peak %v, expected at most 1", wave, peak)
		}
	}
}

func TestEnvelopeRamps(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := NewOscillator(0, time.Second, WaveSquare, rate)
	env := NewEnvelope(osc, time.Second, 100*time.Millisecond, 100*time.Millisecond, rate)

	samples := make([][2]float64, 1000)
	n, _ := env.Stream(samples)
	if n != 1000 {
		t.Fatalf("Stream() = %d, expected 1000", n)
	}
	if samples[0][0] != 0 {
		t.Errorf("first sample = %v, expected silence at attack start", samples[0][0])
	}
	if samples[500][0] != 1 {
		t.Errorf("middle sample = %v, expected full sustain", samples[500][0])
	}
	if samples[999][0] > 0.02 {
		t.Errorf("last sample = %v, expected release near zero", samples[999][0])
	}
}

func TestEveryGameSoundHasRecipe(t *testing.T) {
	cfg := config.DefaultCavynConfig().Audio
	for _, s := range cavyn.AllSounds {
		if !Known(s) {
			t.Errorf("no recipe for %q", s)
			continue
		}
		if _, ok := cfg.Volumes[string(s)]; !ok {
			t.Errorf("no default volume for %q", s)
		}
		n, peak := drain(Effect(s, cfg))
		if n != Length(s, cfg) {
			t.Errorf("Effect(%q) streamed %d samples, expected %d", s, n, Length(s, cfg))
		}
		if peak <= 0 {
			t.Errorf("Effect(%q) is silent", s)
		}
		if peak > 1 {
			t.Errorf("Effect(%q) peak %v, expected at most 1", s, peak)
		}
	}
}

func TestEffectVolume(t *testing.T) {
	cfg := config.DefaultCavynConfig().Audio
	cfg.MasterVolume = 0
	if _, peak := drain(Effect("coin", cfg)); peak != 0 {
		t.Errorf("peak at zero volume = %v, expected 0", peak)
	}
	if Effect("kazoo", cfg) != nil {
		t.Error("Effect(kazoo) returned a stream")
	}
}

func TestNewDisabledIsSilent(t *testing.T) {
	cfg := config.DefaultCavynConfig().Audio
	cfg.Enabled = false
	sink := New(cfg, nil)
	if _, ok := sink.(Silent); !ok {
		t.Errorf("New() = %T, expected Silent", sink)
	}
	sink.Play("jump")
	sink.Close()
}

func TestRecorder(t *testing.T) {
	var r Recorder
	r.Play("jump")
	r.Play("coin")
	if got := r.Played(); !slices.Equal(got, []core.Sound{"jump", "coin"}) {
		t.Errorf("Played() = %v, expected [jump coin]", got)
	}
}
