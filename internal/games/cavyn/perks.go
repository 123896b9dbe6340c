package cavyn

import "github.com/vovakirdan/cavyn/internal/core"

// Perk is an in-run modifier chosen at coin thresholds.
type Perk uint8

const (
	PerkAcrobat Perk = iota
	PerkOvercharge
	PerkFeatherFall
	PerkTechnician
	PerkGreedy
	PerkGlassCannon
	perkCount
)

var perkNames = [...]string{
	PerkAcrobat:     "acrobat",
	PerkOvercharge:  "overcharge",
	PerkFeatherFall: "feather_fall",
	PerkTechnician:  "technician",
	PerkGreedy:      "greedy",
	PerkGlassCannon: "glass_cannon",
}

var perkBlurbs = [...]string{
	PerkAcrobat:     "higher jumps off walls",
	PerkOvercharge:  "dash hits chain to nearby blocks",
	PerkFeatherFall: "gentler gravity",
	PerkTechnician:  "shots pierce twice",
	PerkGreedy:      "chests drop double coins",
	PerkGlassCannon: "double combo gains, double decay",
}

func (p Perk) String() string {
	if p >= perkCount {
		return "unknown"
	}
	return perkNames[p]
}

// Blurb returns a one-line description for menus.
func (p Perk) Blurb() string {
	if p >= perkCount {
		return ""
	}
	return perkBlurbs[p]
}

// AllPerks lists the perk pool in offer order.
func AllPerks() []Perk {
	out := make([]Perk, 0, perkCount)
	for p := Perk(0); p < perkCount; p++ {
		out = append(out, p)
	}
	return out
}

// PerkSet is the set of perks owned during a run.
type PerkSet uint8

// Has reports ownership of p.
func (s PerkSet) Has(p Perk) bool { return s&(1<<p) != 0 }

// Add marks p as owned.
func (s *PerkSet) Add(p Perk) { *s |= 1 << p }

// List returns owned perks in pool order.
func (s PerkSet) List() []Perk {
	var out []Perk
	for _, p := range AllPerks() {
		if s.Has(p) {
			out = append(out, p)
		}
	}
	return out
}

// JumpKind distinguishes the three jump rules.
type JumpKind uint8

const (
	JumpGround JumpKind = iota
	JumpCoyote
	JumpAir
)

// JumpEvent is passed to on-jump listeners before the velocity is applied.
type JumpEvent struct {
	Kind     JumpKind
	Velocity float64
}

// DashHit is passed to on-dash-hit listeners after a falling tile is destroyed.
type DashHit struct {
	Tile *FallingTile
}

// Loot is passed to on-loot listeners when a chest yields coins.
type Loot struct {
	Coins int
}

// EffectBus dispatches hook points to the listeners registered by owned perks.
type EffectBus struct {
	jump       []func(*JumpEvent)
	gravity    []func(*float64)
	comboGain  []func(*float64)
	comboTick  []func(*float64)
	dashHit    []func(*DashHit)
	projectile []func(*Projectile)
	loot       []func(*Loot)
}

// OnJump registers a listener that can scale a jump before it applies.
func (b *EffectBus) OnJump(fn func(*JumpEvent)) { b.jump = append(b.jump, fn) }

// OnGravity registers a listener that can scale the player gravity.
func (b *EffectBus) OnGravity(fn func(*float64)) { b.gravity = append(b.gravity, fn) }

// OnComboGain registers a listener that can scale combo increments.
func (b *EffectBus) OnComboGain(fn func(*float64)) { b.comboGain = append(b.comboGain, fn) }

// OnComboTick registers a listener that can scale the combo decay rate.
func (b *EffectBus) OnComboTick(fn func(*float64)) { b.comboTick = append(b.comboTick, fn) }

// OnDashHit registers a listener run after a dash destroys a tile.
func (b *EffectBus) OnDashHit(fn func(*DashHit)) { b.dashHit = append(b.dashHit, fn) }

// OnProjectile registers a listener run on every new projectile.
func (b *EffectBus) OnProjectile(fn func(*Projectile)) { b.projectile = append(b.projectile, fn) }

// OnLoot registers a listener that can change a chest coin yield.
func (b *EffectBus) OnLoot(fn func(*Loot)) { b.loot = append(b.loot, fn) }

// Jump runs the jump listeners in registration order.
func (b *EffectBus) Jump(e *JumpEvent) {
	for _, fn := range b.jump {
		fn(e)
	}
}

// Gravity runs the gravity listeners.
func (b *EffectBus) Gravity(g *float64) {
	for _, fn := range b.gravity {
		fn(g)
	}
}

// ComboGain runs the combo gain listeners.
func (b *EffectBus) ComboGain(inc *float64) {
	for _, fn := range b.comboGain {
		fn(inc)
	}
}

// ComboTick runs the combo decay listeners.
func (b *EffectBus) ComboTick(rate *float64) {
	for _, fn := range b.comboTick {
		fn(rate)
	}
}

// DashHit runs the dash hit listeners.
func (b *EffectBus) DashHit(h *DashHit) {
	for _, fn := range b.dashHit {
		fn(h)
	}
}

// Projectile runs the projectile spawn listeners.
func (b *EffectBus) Projectile(p *Projectile) {
	for _, fn := range b.projectile {
		fn(p)
	}
}

// Loot runs the loot listeners.
func (b *EffectBus) Loot(l *Loot) {
	for _, fn := range b.loot {
		fn(l)
	}
}

// grantPerk adds p to the run and registers its listeners.
func (g *Game) grantPerk(p Perk) {
	if g.run.Perks.Has(p) {
		return
	}
	g.run.Perks.Add(p)
	g.log.Debug("perk granted", "perk", p, "coins", g.run.Coins)

	switch p {
	case PerkAcrobat:
		g.bus.OnJump(func(e *JumpEvent) {
			if e.Kind != JumpAir && g.player.WallContact > 0 {
				e.Velocity = g.cfg.Player.AcrobatJumpVelocity
			}
		})
	case PerkOvercharge:
		g.bus.OnDashHit(func(h *DashHit) {
			g.chainDestroy(h.Tile)
		})
	case PerkFeatherFall:
		g.bus.OnGravity(func(v *float64) {
			*v = g.cfg.Player.FeatherGravity
		})
	case PerkTechnician:
		g.bus.OnProjectile(func(pr *Projectile) {
			pr.Pierce = g.cfg.Projectiles.TechnicianPierce
		})
	case PerkGreedy:
		g.bus.OnLoot(func(l *Loot) {
			l.Coins *= 2
		})
	case PerkGlassCannon:
		g.bus.OnComboGain(func(inc *float64) { *inc *= 2 })
		g.bus.OnComboTick(func(rate *float64) { *rate *= 2 })
	}
}

// PerkOffer is the pending in-run choice. The simulation is suspended while
// one is active.
type PerkOffer struct {
	Choices []Perk
	Cursor  int
}

// Selected returns the highlighted perk.
func (o *PerkOffer) Selected() Perk {
	return o.Choices[o.Cursor]
}

// checkPerkOffer raises an offer when the coin counter crosses a new multiple
// of the perk threshold.
func (g *Game) checkPerkOffer() {
	if g.run.Dead || g.offer != nil {
		return
	}
	threshold := g.run.Coins / g.cfg.Perks.Threshold
	if threshold <= g.run.LastPerkThreshold {
		return
	}
	g.run.LastPerkThreshold = threshold

	var pool []Perk
	for _, p := range AllPerks() {
		if !g.run.Perks.Has(p) {
			pool = append(pool, p)
		}
	}
	if len(pool) == 0 {
		return
	}
	n := core.Min(g.cfg.Perks.OfferCount, len(pool))
	offer := &PerkOffer{Choices: make([]Perk, 0, n)}
	for _, i := range g.rng.Perm(len(pool))[:n] {
		offer.Choices = append(offer.Choices, pool[i])
	}
	g.offer = offer
	g.log.Debug("perk offer", "threshold", threshold, "choices", offer.Choices)
}

// handleOfferInput moves the cursor or confirms the highlighted perk.
func (g *Game) handleOfferInput(in core.InputFrame) {
	o := g.offer
	n := len(o.Choices)
	switch {
	case in.Pressed(core.ActionPerkUp):
		o.Cursor = (o.Cursor + n - 1) % n
	case in.Pressed(core.ActionPerkDown):
		o.Cursor = (o.Cursor + 1) % n
	case in.Pressed(core.ActionPerkConfirm):
		g.grantPerk(o.Selected())
		g.emit(SoundUpgrade)
		g.offer = nil
	}
}
