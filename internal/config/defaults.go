package config

import (
	_ "embed"
)

//go:embed defaults/cavyn.yaml
var defaultCavynYAML []byte

// DefaultCavynConfig returns the built-in tunables.
func DefaultCavynConfig() CavynConfig {
	return CavynConfig{
		World: WorldConfig{
			Tile:       16,
			Columns:    12,
			DisplayW:   320,
			DisplayH:   180,
			ScrollLerp: 0.1,
			ScrollSnap: 0.2,
			Motes:      24,
		},
		Player: PlayerConfig{
			Width:               10,
			Height:              14,
			Speed:               1.4,
			SpeedPerLevel:       0.2,
			Accel:               0.3,
			Gravity:             0.3,
			FeatherGravity:      0.24,
			MaxFall:             4,
			JumpVelocity:        -5,
			AcrobatJumpVelocity: -6.5,
			AirJumpVelocity:     -4,
			BounceVelocity:      -9,
			ChestHopVelocity:    -3.5,
			SuperJumpVelocity:   -8,
			BaseJumps:           1,
			CoyoteTicks:         6,
			JumpBufferTicks:     8,
			WallContactTicks:    15,
			StickySlide:         1.0,
			DashTicks:           8,
			DashSpeed:           8,
			FocusCap:            100,
			FocusDashCost:       50,
			FocusRefill:         0.4,
			FocusDrain:          1.5,
			FuseTicks:           90,
			MagnetDivisor:       80,
			MagnetMax:           0.25,
		},
		Time: TimeConfig{
			SlowScale:   0.4,
			MeterCap:    120,
			MeterDrain:  0.75,
			MeterRefill: 0.2,
		},
		Spawner: SpawnerConfig{
			WarmupTicks:   180,
			BaseInterval:  10,
			IntervalRange: 25,
			ExponentStart: 2.2,
			ExponentSpan:  2.0,
			KindRoll:      30,
		},
		Falling: FallingConfig{
			Speed:         1.4,
			GrazeMargin:   8,
			GrazeCombo:    0.2,
			DashCoins:     2,
			DashCombo:     0.3,
			ChainCoins:    1,
			ShakeColumns:  2,
			GreedCoinsMin: 5,
			GreedCoinsMax: 10,
		},
		Combo: ComboConfig{
			Duration:   180,
			Coin:       0.1,
			Bounce:     0.5,
			Chest:      1.0,
			Projectile: 0.05,
		},
		Items: ItemsConfig{
			Gravity:             0.2,
			MaxFall:             3,
			Friction:            0.05,
			PickupAge:           30,
			ItemChance:          0.3,
			ItemLuckBonus:       0.1,
			ChestCoinsMin:       2,
			ChestCoinsMax:       6,
			BombRadiusTiles:     4,
			FreezeTicks:         360,
			MagnetRange:         20,
			MagnetRangePerLevel: 10,
			MagnetAccel:         0.05,
			MagnetAccelPerLevel: 0.05,
		},
		Projectiles: ProjectileConfig{
			Speed:            4,
			MaxActive:        4,
			Lifetime:         90,
			Pierce:           1,
			TechnicianPierce: 2,
		},
		Perks: PerksConfig{
			Threshold:  75,
			OfferCount: 3,
		},
		Upgrades: []UpgradeConfig{
			{ID: "jumps", Title: "Extra jump", MaxLevel: 2, Costs: []int{150, 400}},
			{ID: "speed", Title: "Run speed", MaxLevel: 5, Costs: []int{50, 100, 175, 275, 400}},
			{ID: "item_luck", Title: "Item luck", MaxLevel: 4, Costs: []int{75, 150, 300, 500}},
			{ID: "coin_magnet", Title: "Coin magnet", MaxLevel: 3, Costs: []int{100, 250, 450}},
		},
		Biomes: []BiomeConfig{
			{
				Name:        "cavern",
				Threshold:   0,
				Kinds:       []string{"normal", "chest", "fragile", "bounce", "spike", "greed"},
				TileColor:   "brown",
				AccentColor: "yellow",
			},
			{
				Name:        "crystal",
				Threshold:   150,
				Kinds:       []string{"normal", "chest", "fragile", "bounce", "spike", "greed", "magnetic"},
				Specials:    map[int]string{6: "magnetic"},
				TileColor:   "cyan",
				AccentColor: "magenta",
			},
			{
				Name:        "moss",
				Threshold:   300,
				Kinds:       []string{"normal", "chest", "fragile", "bounce", "spike", "greed", "sticky"},
				Specials:    map[int]string{6: "sticky"},
				TileColor:   "green",
				AccentColor: "yellow",
			},
			{
				Name:        "abyss",
				Threshold:   500,
				Kinds:       []string{"normal", "chest", "fragile", "bounce", "spike", "greed", "magnetic", "sticky"},
				Specials:    map[int]string{6: "magnetic", 9: "sticky"},
				TileColor:   "bright_blue",
				AccentColor: "red",
			},
		},
		Audio: AudioConfig{
			Enabled:      true,
			MasterVolume: 0.5,
			SampleRate:   44100,
			Volumes: map[string]float64{
				"jump":            0.6,
				"block_land":      0.4,
				"chest_open":      0.8,
				"chest_destroy":   0.7,
				"coin":            0.5,
				"collect_item":    0.7,
				"super_jump":      0.8,
				"warp":            0.7,
				"explosion":       1.0,
				"combo_end":       0.6,
				"time_slow_start": 0.5,
				"time_slow_end":   0.5,
				"time_empty":      0.6,
				"death":           1.0,
				"upgrade":         0.8,
				"coin_end":        0.7,
			},
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "time",
				MaxAt: 20000,
			},
		},
	}
}
