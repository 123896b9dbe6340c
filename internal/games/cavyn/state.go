package cavyn

// RunState is the mutable state of one run shared by every subsystem.
type RunState struct {
	Tick      int     // Master clock, one per simulated tick
	TimeScale float64 // Rate multiplier for this tick
	TimeMeter float64 // Slow-time meter in [0, cap]
	Slowing   bool    // Time was dilated last tick
	SlowHeld  bool    // Slow-time key is held
	SlowSpent bool    // Meter ran dry during the current hold

	Dead      bool
	DeadTicks int
	Banked    bool
	Coins     int

	Shake  float64 // Screen shake magnitude, decays one per tick
	Freeze float64 // Falling tiles are frozen while positive
	Biome  int

	Perks             PerkSet
	LastPerkThreshold int

	Combo Combo

	Height       float64 // Current world origin offset in pixels
	TargetHeight float64
	Scrolling    bool
}

// addShake raises the screen shake to at least m.
func (r *RunState) addShake(m float64) {
	if m > r.Shake {
		r.Shake = m
	}
}
