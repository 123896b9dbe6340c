package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestEmbeddedMatchesDefaults(t *testing.T) {
	cfg, err := ParseCavyn(defaultCavynYAML)
	if err != nil {
		t.Fatalf("ParseCavyn(embedded) error: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultCavynConfig()) {
		t.Errorf("embedded cavyn.yaml differs from DefaultCavynConfig()")
	}
}

func TestLoadCavynCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cavyn.yaml")
	data := []byte("combo:\n  duration: 240\nrules:\n  glass_cannon_ignores_shield: true\nspawner:\n  exponent_floor: 1.0\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, src, err := LoadCavynWithSource(path)
	if err != nil {
		t.Fatalf("LoadCavynWithSource() error: %v", err)
	}
	if src != path {
		t.Errorf("source = %q, expected %q", src, path)
	}
	if cfg.Combo.Duration != 240 {
		t.Errorf("Combo.Duration = %v, expected 240", cfg.Combo.Duration)
	}
	if !cfg.Rules.GlassCannonIgnoresShield {
		t.Error("GlassCannonIgnoresShield should be true")
	}
	if cfg.Spawner.ExponentFloor == nil || *cfg.Spawner.ExponentFloor != 1.0 {
		t.Errorf("ExponentFloor = %v, expected 1.0", cfg.Spawner.ExponentFloor)
	}
	// Untouched keys keep their defaults.
	if cfg.Combo.Coin != 0.1 {
		t.Errorf("Combo.Coin = %v, expected 0.1", cfg.Combo.Coin)
	}
	if cfg.World.Columns != 12 {
		t.Errorf("World.Columns = %d, expected 12", cfg.World.Columns)
	}
}

func TestLoadCavynErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadCavyn(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("world: [1, 2"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadCavyn(bad); err == nil {
		t.Error("expected error for malformed YAML")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("world:\n  columns: 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadCavyn(invalid); err == nil {
		t.Error("expected validation error for 2 columns")
	}
}

func TestApplyCavynPreset(t *testing.T) {
	tests := []struct {
		preset  DifficultyPreset
		enabled bool
		level   float64
	}{
		{DifficultyEasy, true, 0.0},
		{DifficultyNormal, true, 0.3},
		{DifficultyHard, true, 0.7},
		{DifficultyFixed, false, 0.0},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultCavynConfig()
			ApplyCavynPreset(&cfg, tt.preset)
			if cfg.Difficulty.Enabled != tt.enabled {
				t.Errorf("Enabled = %v, expected %v", cfg.Difficulty.Enabled, tt.enabled)
			}
			if cfg.Difficulty.InitialLevel != tt.level {
				t.Errorf("InitialLevel = %v, expected %v", cfg.Difficulty.InitialLevel, tt.level)
			}
		})
	}
}

func TestUpgradeCost(t *testing.T) {
	cfg := DefaultCavynConfig()
	up, ok := cfg.Upgrade("jumps")
	if !ok {
		t.Fatal("jumps upgrade missing")
	}
	tests := []struct {
		level int
		cost  int
		ok    bool
	}{
		{0, 150, true},
		{1, 400, true},
		{2, 0, false},
		{-1, 0, false},
	}
	for _, tt := range tests {
		cost, ok := up.Cost(tt.level)
		if cost != tt.cost || ok != tt.ok {
			t.Errorf("Cost(%d) = %d, %v, expected %d, %v", tt.level, cost, ok, tt.cost, tt.ok)
		}
	}

	long := UpgradeConfig{ID: "x", MaxLevel: 4, Costs: []int{10}}
	if cost, _ := long.Cost(2); cost != 40 {
		t.Errorf("Cost(2) past the table = %d, expected 40", cost)
	}
	if _, ok := cfg.Upgrade("nope"); ok {
		t.Error("unknown upgrade should not be found")
	}
}
