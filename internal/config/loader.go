package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file name looked up in every search location.
const FileName = "cavyn.yaml"

// LoadCavyn loads the game tunables.
// Search order: customPath -> ~/.cavyn/configs/cavyn.yaml -> ./configs/cavyn.yaml -> embedded default
// Keys missing from a file keep their built-in values.
func LoadCavyn(customPath string) (CavynConfig, error) {
	cfg, _, err := LoadCavynWithSource(customPath)
	return cfg, err
}

// LoadCavynWithSource is LoadCavyn that also reports which file was used.
// The source is "embedded" or "builtin" when no file was found.
func LoadCavynWithSource(customPath string) (CavynConfig, string, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultCavynConfig(), "", fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := ParseCavyn(data)
		if err != nil {
			return DefaultCavynConfig(), "", fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	// Try user config directory
	if userCfgPath := UserConfigPath(); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := ParseCavyn(data); err == nil {
				return cfg, userCfgPath, nil
			}
		}
	}

	// Try local configs directory
	local := filepath.Join("configs", FileName)
	if data, err := os.ReadFile(local); err == nil {
		if cfg, err := ParseCavyn(data); err == nil {
			return cfg, local, nil
		}
	}

	// Use embedded default YAML
	cfg, err := ParseCavyn(defaultCavynYAML)
	if err != nil {
		return DefaultCavynConfig(), "builtin", nil // Fallback to hardcoded if embed fails
	}
	return cfg, "embedded", nil
}

// ParseCavyn decodes YAML over the built-in defaults and validates the result.
func ParseCavyn(data []byte) (CavynConfig, error) {
	cfg := DefaultCavynConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Marshal encodes the config as YAML.
func (c CavynConfig) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// Validate rejects tunables the simulation cannot run with.
func (c CavynConfig) Validate() error {
	var errs []error
	if c.World.Tile <= 0 {
		errs = append(errs, fmt.Errorf("world.tile must be positive, got %d", c.World.Tile))
	}
	if c.World.Columns < 4 {
		errs = append(errs, fmt.Errorf("world.columns must be at least 4, got %d", c.World.Columns))
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		errs = append(errs, errors.New("player size must be positive"))
	}
	if c.Player.Width >= float64(c.World.Tile) && c.World.Tile > 0 {
		errs = append(errs, fmt.Errorf("player.width must be below the tile size %d", c.World.Tile))
	}
	if c.Time.MeterCap <= 0 || c.Player.FocusCap <= 0 {
		errs = append(errs, errors.New("meter caps must be positive"))
	}
	if c.Spawner.KindRoll <= 0 {
		errs = append(errs, fmt.Errorf("spawner.kind_roll must be positive, got %d", c.Spawner.KindRoll))
	}
	if c.Perks.Threshold <= 0 {
		errs = append(errs, fmt.Errorf("perks.threshold must be positive, got %d", c.Perks.Threshold))
	}
	if len(c.Biomes) == 0 {
		errs = append(errs, errors.New("at least one biome is required"))
	}
	for i := 1; i < len(c.Biomes); i++ {
		if c.Biomes[i].Threshold < c.Biomes[i-1].Threshold {
			errs = append(errs, fmt.Errorf("biome %q threshold is below the previous biome", c.Biomes[i].Name))
		}
	}
	return errors.Join(errs...)
}

// UserConfigPath returns the path to the user config file, or empty if home is unavailable.
func UserConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".cavyn", "configs", FileName)
}

// ApplyCavynPreset modifies the config based on a difficulty preset.
func ApplyCavynPreset(cfg *CavynConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Spawner.WarmupTicks = 300
		cfg.Time.MeterCap = 150
	case DifficultyHard:
		cfg.Spawner.WarmupTicks = 90
		cfg.Combo.Duration = 150
	}
}
