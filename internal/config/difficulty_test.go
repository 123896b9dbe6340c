package config

import (
	"math"
	"testing"
)

func TestDifficultyLevel(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "time", MaxAt: 20000},
	})

	tests := []struct {
		ticks int
		want  float64
	}{
		{0, 0},
		{10000, 0.5},
		{20000, 1},
		{40000, 1},
	}
	for _, tt := range tests {
		if got := d.Level(0, tt.ticks); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Level(0, %d) = %v, expected %v", tt.ticks, got, tt.want)
		}
	}

	off := NewDifficultyManager(DifficultyConfig{
		Enabled:      false,
		InitialLevel: 0.25,
		Progression:  ProgressionConfig{Type: "time", MaxAt: 20000},
	})
	if got := off.Level(0, 20000); got != 0.25 {
		t.Errorf("Level() disabled = %v, expected 0.25", got)
	}
}

func TestSpawnRamp(t *testing.T) {
	d := NewDifficultyManager(DefaultCavynConfig().Difficulty)

	tests := []struct {
		ticks    int
		interval float64
		exponent float64
	}{
		{0, 35, 2.2},
		{10000, 22.5, 1.2},
		{20000, 10, 0.2},
		{30000, 10, 0.2},
	}
	for _, tt := range tests {
		if got := d.SpawnInterval(10, 25, tt.ticks); math.Abs(got-tt.interval) > 1e-9 {
			t.Errorf("SpawnInterval(%d) = %v, expected %v", tt.ticks, got, tt.interval)
		}
		if got := d.Exponent(2.2, 2.0, nil, tt.ticks); math.Abs(got-tt.exponent) > 1e-9 {
			t.Errorf("Exponent(%d) = %v, expected %v", tt.ticks, got, tt.exponent)
		}
	}

	floor := 1.0
	if got := d.Exponent(2.2, 2.0, &floor, 20000); got != 1.0 {
		t.Errorf("Exponent() with floor = %v, expected 1.0", got)
	}
}
