package config

import "math"

// DifficultyManager calculates the spawner ramp based on score/time.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: cfg.InitialLevel,
	}
}

// Level returns the current difficulty level (0.0 to 1.0) based on score/ticks.
func (d *DifficultyManager) Level(score int, ticks int) float64 {
	if !d.cfg.Enabled || d.cfg.Progression.Type == "none" {
		return d.initialLevel
	}

	var progress float64
	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "time":
		progress = float64(ticks) / maxAt
	default:
		return d.initialLevel
	}

	// Clamp progress to [0, 1]
	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// SpawnInterval returns the spawner cooldown threshold in ticks. It shrinks
// from base+span at level 0 to base at level 1.
func (d *DifficultyManager) SpawnInterval(base, span float64, ticks int) float64 {
	level := d.Level(0, ticks)
	return base + span*(1.0-level)
}

// Exponent returns the column weighting exponent. It falls from start at
// level 0 to start-span at level 1. A non-nil floor clamps the result.
func (d *DifficultyManager) Exponent(start, span float64, floor *float64, ticks int) float64 {
	level := d.Level(0, ticks)
	e := start - span*level
	if floor != nil && e < *floor {
		e = *floor
	}
	return e
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
