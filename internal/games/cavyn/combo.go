package cavyn

import "math"

// Combo is the lossy score multiplier. Multiplier is 1 exactly when Timer is 0.
type Combo struct {
	Multiplier float64
	Timer      float64
}

// NewCombo returns an idle combo.
func NewCombo() Combo {
	return Combo{Multiplier: 1}
}

// Active reports whether the multiplier is above its floor.
func (c Combo) Active() bool {
	return c.Timer > 0
}

// gainCombo raises the multiplier by inc, scaled by combo-gain listeners,
// and restarts the window.
func (g *Game) gainCombo(inc float64) {
	if inc <= 0 {
		return
	}
	g.bus.ComboGain(&inc)
	g.run.Combo.Multiplier += inc
	g.run.Combo.Timer = g.cfg.Combo.Duration
}

// updateCombo runs the decay countdown.
func (g *Game) updateCombo() {
	c := &g.run.Combo
	if c.Timer <= 0 {
		return
	}
	rate := g.run.TimeScale
	g.bus.ComboTick(&rate)
	c.Timer -= rate
	if c.Timer <= 0 {
		c.Multiplier = 1
		c.Timer = 0
		g.emit(SoundComboEnd)
		x, y := g.comboAnchor()
		g.burst(x, y, 24, g.accentColor(), false)
	}
}

// awardCoins adds a combo-scaled coin reward.
func (g *Game) awardCoins(base int) int {
	n := int(math.Floor(float64(base) * g.run.Combo.Multiplier))
	g.run.Coins += n
	return n
}

// addCoins adds a flat reward.
func (g *Game) addCoins(n int) {
	g.run.Coins += n
}

// comboAnchor returns the world position under the combo readout.
func (g *Game) comboAnchor() (float64, float64) {
	return g.grid.PlayLeft() + 12, -g.run.Height + 12
}
