package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/cavyn/internal/config"
	"github.com/vovakirdan/cavyn/internal/core"
)

// note is one enveloped tone of an effect.
type note struct {
	from, to float64 // Hz; equal for a fixed pitch
	dur      time.Duration
	wave     WaveType
	attack   time.Duration
	release  time.Duration
	gain     float64
}

// recipe is a sequence of note layers. Layers inside a step play together,
// steps play one after another.
type recipe [][]note

func tone(freq float64, dur time.Duration, wave WaveType) note {
	return note{from: freq, to: freq, dur: dur, wave: wave, attack: 5 * time.Millisecond, release: dur / 2, gain: 1}
}

func glide(from, to float64, dur time.Duration, wave WaveType) note {
	return note{from: from, to: to, dur: dur, wave: wave, attack: 5 * time.Millisecond, release: dur / 3, gain: 1}
}

func (n note) withGain(g float64) note {
	n.gain = g
	return n
}

const ms = time.Millisecond

var recipes = map[core.Sound]recipe{
	"jump":          {{glide(300, 620, 90*ms, WaveSquare).withGain(0.6)}},
	"block_land":    {{tone(90, 60*ms, WaveNoise).withGain(0.5), tone(70, 80*ms, WaveSine)}},
	"chest_open":    {{tone(660, 70*ms, WaveSquare)}, {tone(880, 70*ms, WaveSquare)}, {tone(1320, 140*ms, WaveSine)}},
	"chest_destroy": {{tone(0, 120*ms, WaveNoise).withGain(0.7), glide(220, 80, 120*ms, WaveSaw).withGain(0.4)}},
	"coin":          {{tone(987.77, 50*ms, WaveSquare)}, {tone(1318.51, 110*ms, WaveSquare)}},
	"collect_item":  {{glide(440, 880, 120*ms, WaveSine), glide(880, 1760, 120*ms, WaveSine).withGain(0.3)}},
	"super_jump":    {{glide(200, 1200, 260*ms, WaveSquare).withGain(0.6)}},
	"warp":          {{glide(1200, 150, 200*ms, WaveSine)}, {glide(150, 1200, 200*ms, WaveSine)}},
	"explosion":     {{tone(0, 450*ms, WaveNoise), glide(120, 30, 450*ms, WaveSine)}},
	"combo_end":     {{glide(660, 330, 180*ms, WaveSaw).withGain(0.5)}},
	"time_slow_start": {
		{glide(500, 180, 220*ms, WaveSine)},
	},
	"time_slow_end": {
		{glide(180, 500, 180*ms, WaveSine)},
	},
	"time_empty": {{tone(110, 90*ms, WaveSquare)}, {tone(82.41, 140*ms, WaveSquare)}},
	"death":      {{glide(440, 55, 700*ms, WaveSaw), tone(0, 400*ms, WaveNoise).withGain(0.5)}},
	"upgrade":    {{tone(523.25, 80*ms, WaveSquare)}, {tone(659.25, 80*ms, WaveSquare)}, {tone(783.99, 80*ms, WaveSquare)}, {tone(1046.5, 200*ms, WaveSine)}},
	"coin_end":   {{tone(1318.51, 60*ms, WaveSquare)}, {tone(987.77, 60*ms, WaveSquare)}, {tone(1318.51, 160*ms, WaveSine)}},
}

// Known reports whether an effect has a recipe.
func Known(s core.Sound) bool {
	_, ok := recipes[s]
	return ok
}

// Effect builds the stream of a named effect at the configured volume, or
// nil for an unknown name.
func Effect(s core.Sound, cfg config.AudioConfig) beep.Streamer {
	r, ok := recipes[s]
	if !ok {
		return nil
	}
	rate := beep.SampleRate(cfg.SampleRate)

	steps := make([]beep.Streamer, 0, len(r))
	for _, layers := range r {
		voices := make([]beep.Streamer, 0, len(layers))
		for _, n := range layers {
			osc := NewGlide(n.from, n.to, n.dur, n.wave, rate)
			shaped := NewEnvelope(osc, n.dur, n.attack, n.release, rate)
			voices = append(voices, newVolume(shaped, n.gain/float64(len(layers))))
		}
		steps = append(steps, beep.Mix(voices...))
	}

	vol, ok := cfg.Volumes[string(s)]
	if !ok {
		vol = 1
	}
	return newVolume(beep.Seq(steps...), vol*cfg.MasterVolume)
}

// Length returns the effect duration in samples at the configured rate.
func Length(s core.Sound, cfg config.AudioConfig) int {
	rate := beep.SampleRate(cfg.SampleRate)
	total := 0
	for _, layers := range recipes[s] {
		longest := 0
		for _, n := range layers {
			longest = max(longest, rate.N(n.dur))
		}
		total += longest
	}
	return total
}
