// Package config provides YAML-based tunables loading and difficulty
// management for the game.
package config

// CavynConfig contains every tunable constant of the simulation.
type CavynConfig struct {
	World       WorldConfig      `yaml:"world"`
	Player      PlayerConfig     `yaml:"player"`
	Time        TimeConfig       `yaml:"time"`
	Spawner     SpawnerConfig    `yaml:"spawner"`
	Falling     FallingConfig    `yaml:"falling"`
	Combo       ComboConfig      `yaml:"combo"`
	Items       ItemsConfig      `yaml:"items"`
	Projectiles ProjectileConfig `yaml:"projectiles"`
	Perks       PerksConfig      `yaml:"perks"`
	Rules       RulesConfig      `yaml:"rules"`
	Upgrades    []UpgradeConfig  `yaml:"upgrades"`
	Biomes      []BiomeConfig    `yaml:"biomes"`
	Audio       AudioConfig      `yaml:"audio"`
	Difficulty  DifficultyConfig `yaml:"difficulty"`
}

// WorldConfig defines the tile lattice and the scroller.
type WorldConfig struct {
	Tile       int     `yaml:"tile"`        // Tile edge in pixels
	Columns    int     `yaml:"columns"`     // Shaft width W including both walls
	DisplayW   int     `yaml:"display_w"`   // Logical display width in pixels
	DisplayH   int     `yaml:"display_h"`   // Logical display height in pixels
	ScrollLerp float64 `yaml:"scroll_lerp"` // Fraction of the remaining distance per tick
	ScrollSnap float64 `yaml:"scroll_snap"` // Distance at which the height snaps
	Motes      int     `yaml:"motes"`       // Background parallax dots
}

// PlayerConfig defines the character body and movement rules.
type PlayerConfig struct {
	Width               float64 `yaml:"width"`
	Height              float64 `yaml:"height"`
	Speed               float64 `yaml:"speed"`
	SpeedPerLevel       float64 `yaml:"speed_per_level"`
	Accel               float64 `yaml:"accel"` // Blend toward target speed per tick
	Gravity             float64 `yaml:"gravity"`
	FeatherGravity      float64 `yaml:"feather_gravity"`
	MaxFall             float64 `yaml:"max_fall"`
	JumpVelocity        float64 `yaml:"jump_velocity"`
	AcrobatJumpVelocity float64 `yaml:"acrobat_jump_velocity"`
	AirJumpVelocity     float64 `yaml:"air_jump_velocity"`
	BounceVelocity      float64 `yaml:"bounce_velocity"`
	ChestHopVelocity    float64 `yaml:"chest_hop_velocity"`
	SuperJumpVelocity   float64 `yaml:"super_jump_velocity"`
	BaseJumps           int     `yaml:"base_jumps"`
	CoyoteTicks         float64 `yaml:"coyote_ticks"`
	JumpBufferTicks     float64 `yaml:"jump_buffer_ticks"`
	WallContactTicks    float64 `yaml:"wall_contact_ticks"`
	StickySlide         float64 `yaml:"sticky_slide"`
	DashTicks           float64 `yaml:"dash_ticks"`
	DashSpeed           float64 `yaml:"dash_speed"`
	FocusCap            float64 `yaml:"focus_cap"`
	FocusDashCost       float64 `yaml:"focus_dash_cost"`
	FocusRefill         float64 `yaml:"focus_refill"`
	FocusDrain          float64 `yaml:"focus_drain"`
	FuseTicks           float64 `yaml:"fuse_ticks"`
	MagnetDivisor       float64 `yaml:"magnet_divisor"`
	MagnetMax           float64 `yaml:"magnet_max"`
}

// TimeConfig defines the slow-time meter.
type TimeConfig struct {
	SlowScale   float64 `yaml:"slow_scale"`
	MeterCap    float64 `yaml:"meter_cap"`
	MeterDrain  float64 `yaml:"meter_drain"`
	MeterRefill float64 `yaml:"meter_refill"`
}

// SpawnerConfig defines the falling tile cadence and column weighting.
type SpawnerConfig struct {
	WarmupTicks   int      `yaml:"warmup_ticks"`
	BaseInterval  float64  `yaml:"base_interval"`
	IntervalRange float64  `yaml:"interval_range"`
	ExponentStart float64  `yaml:"exponent_start"`
	ExponentSpan  float64  `yaml:"exponent_span"`
	ExponentFloor *float64 `yaml:"exponent_floor,omitempty"` // nil keeps the formula unclamped
	KindRoll      int      `yaml:"kind_roll"`
}

// FallingConfig defines falling tile motion and interactions.
type FallingConfig struct {
	Speed         float64 `yaml:"speed"`
	GrazeMargin   float64 `yaml:"graze_margin"`
	GrazeCombo    float64 `yaml:"graze_combo"`
	DashCoins     int     `yaml:"dash_coins"`
	DashCombo     float64 `yaml:"dash_combo"`
	ChainCoins    int     `yaml:"chain_coins"`
	ShakeColumns  int     `yaml:"shake_columns"`
	GreedCoinsMin int     `yaml:"greed_coins_min"`
	GreedCoinsMax int     `yaml:"greed_coins_max"`
}

// ComboConfig defines the multiplier increments and window.
type ComboConfig struct {
	Duration   float64 `yaml:"duration"`
	Coin       float64 `yaml:"coin"`
	Bounce     float64 `yaml:"bounce"`
	Chest      float64 `yaml:"chest"`
	Projectile float64 `yaml:"projectile"`
}

// ItemsConfig defines item physics, loot and effects.
type ItemsConfig struct {
	Gravity             float64 `yaml:"gravity"`
	MaxFall             float64 `yaml:"max_fall"`
	Friction            float64 `yaml:"friction"`
	PickupAge           int     `yaml:"pickup_age"`
	ItemChance          float64 `yaml:"item_chance"`
	ItemLuckBonus       float64 `yaml:"item_luck_bonus"`
	ChestCoinsMin       int     `yaml:"chest_coins_min"`
	ChestCoinsMax       int     `yaml:"chest_coins_max"`
	BombRadiusTiles     float64 `yaml:"bomb_radius_tiles"`
	FreezeTicks         float64 `yaml:"freeze_ticks"`
	MagnetRange         float64 `yaml:"magnet_range"`
	MagnetRangePerLevel float64 `yaml:"magnet_range_per_level"`
	MagnetAccel         float64 `yaml:"magnet_accel"`
	MagnetAccelPerLevel float64 `yaml:"magnet_accel_per_level"`
}

// ProjectileConfig defines player-fired projectiles.
type ProjectileConfig struct {
	Speed            float64 `yaml:"speed"`
	MaxActive        int     `yaml:"max_active"`
	Lifetime         int     `yaml:"lifetime"`
	Pierce           int     `yaml:"pierce"`
	TechnicianPierce int     `yaml:"technician_pierce"`
}

// PerksConfig defines the in-run perk offer cadence.
type PerksConfig struct {
	Threshold  int `yaml:"threshold"`
	OfferCount int `yaml:"offer_count"`
}

// RulesConfig holds switches for behaviors that differ between game versions.
type RulesConfig struct {
	GlassCannonIgnoresShield bool `yaml:"glass_cannon_ignores_shield"`
}

// UpgradeConfig defines one persistent upgrade track.
type UpgradeConfig struct {
	ID       string `yaml:"id"`
	Title    string `yaml:"title"`
	MaxLevel int    `yaml:"max_level"`
	Costs    []int  `yaml:"costs"` // Cost of level i+1
}

// BiomeConfig defines a spawn profile reached at a coin threshold.
type BiomeConfig struct {
	Name        string         `yaml:"name"`
	Threshold   int            `yaml:"threshold"`
	Kinds       []string       `yaml:"kinds"`
	Specials    map[int]string `yaml:"specials,omitempty"` // Kind roll -> special tile kind
	TileColor   string         `yaml:"tile_color"`
	AccentColor string         `yaml:"accent_color"`
}

// AudioConfig defines the boot-time effect volumes.
type AudioConfig struct {
	Enabled      bool               `yaml:"enabled"`
	MasterVolume float64            `yaml:"master_volume"`
	SampleRate   int                `yaml:"sample_rate"`
	Volumes      map[string]float64 `yaml:"volumes"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI flag value to a preset. Unknown values map to "".
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	}
	return ""
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// Upgrade returns the upgrade track with the given id.
func (c *CavynConfig) Upgrade(id string) (UpgradeConfig, bool) {
	for _, u := range c.Upgrades {
		if u.ID == id {
			return u, true
		}
	}
	return UpgradeConfig{}, false
}

// Cost returns the price of buying the level after current, or false at max.
func (u UpgradeConfig) Cost(current int) (int, bool) {
	if current >= u.MaxLevel || current < 0 {
		return 0, false
	}
	if current < len(u.Costs) {
		return u.Costs[current], true
	}
	if len(u.Costs) == 0 {
		return 0, true
	}
	// Past the table the last price doubles per level.
	last := u.Costs[len(u.Costs)-1]
	for i := len(u.Costs); i <= current; i++ {
		last *= 2
	}
	return last, true
}
