package cavyn

import (
	"math"

	"github.com/vovakirdan/cavyn/internal/core"
	"github.com/vovakirdan/cavyn/internal/games/cavyn/world"
)

// AnimState is the sprite state selected each tick by priority.
type AnimState uint8

const (
	AnimIdle AnimState = iota
	AnimRun
	AnimJump
	AnimCharge
)

func (a AnimState) String() string {
	switch a {
	case AnimRun:
		return "run"
	case AnimJump:
		return "jump"
	case AnimCharge:
		return "charge"
	default:
		return "idle"
	}
}

// Player is the character body and its control state.
type Player struct {
	Body
	Facing   float64 // +1 right, -1 left
	Rotation float64
	ScaleY   float64

	LeftHeld, RightHeld bool

	Jumps, MaxJumps int
	Speed           float64

	Coyote      float64
	JumpBuffer  float64
	Dash        float64
	WallContact float64
	AirTime     float64

	Focus    float64
	Charging bool

	Grounded    bool
	WasGrounded bool
	Jumping     bool // Airborne because of a jump, coyote stays disarmed
	Contacts    world.Contacts

	Anim   AnimState
	Item   ItemKind
	Shield bool

	wantJump    bool
	wantRelease bool
}

// resetPlayer places a fresh body standing on the floor of the middle column.
func (g *Game) resetPlayer() {
	pc := g.cfg.Player
	ts := float64(g.cfg.World.Tile)
	cx := (g.grid.FirstColumn() + g.grid.LastColumn()) / 2
	g.player = Player{
		Body: Body{Box: core.NewBox(
			float64(cx)*ts+(ts-pc.Width)/2,
			float64(g.grid.Height(cx))*ts-pc.Height,
			pc.Width, pc.Height,
		)},
		Facing:      1,
		ScaleY:      1,
		MaxJumps:    pc.BaseJumps + g.level(upgradeJumps),
		Speed:       pc.Speed + pc.SpeedPerLevel*float64(g.level(upgradeSpeed)),
		Focus:       pc.FocusCap,
		Grounded:    true,
		WasGrounded: true,
	}
	g.player.Jumps = g.player.MaxJumps
}

// handlePlayerInput records held directions and queues discrete actions.
func (g *Game) handlePlayerInput(in core.InputFrame) {
	p := &g.player
	p.LeftHeld = in.Held(core.ActionLeft)
	p.RightHeld = in.Held(core.ActionRight)
	g.run.SlowHeld = in.Held(core.ActionSlowTime)

	if in.Pressed(core.ActionJump) {
		p.wantJump = true
	}
	if in.Pressed(core.ActionDashCharge) && !p.Charging && p.Dash <= 0 && p.Focus >= g.cfg.Player.FocusDashCost {
		p.Charging = true
	}
	if in.Released(core.ActionDashCharge) && p.Charging {
		p.wantRelease = true
	}
	if in.Pressed(core.ActionShoot) {
		g.fire(in.Held(core.ActionUp), in.Held(core.ActionDown))
	}
	if in.Pressed(core.ActionUseItem) {
		g.useItem()
	}
}

// updatePlayer runs the character controller for one tick.
func (g *Game) updatePlayer() {
	p := &g.player
	pc := g.cfg.Player
	ts := g.run.TimeScale

	p.Coyote = math.Max(0, p.Coyote-ts)
	p.JumpBuffer = math.Max(0, p.JumpBuffer-ts)
	p.Dash = math.Max(0, p.Dash-ts)
	p.WallContact = math.Max(0, p.WallContact-ts)

	if !p.Charging {
		p.Focus = math.Min(pc.FocusCap, p.Focus+pc.FocusRefill*ts)
	}

	if p.wantRelease {
		p.wantRelease = false
		if p.Charging {
			g.releaseDash()
		}
	}

	if p.Dash > 0 {
		p.VX = p.Facing * pc.DashSpeed
		p.VY = 0
	} else {
		target := 0.0
		if p.LeftHeld {
			target -= p.Speed
		}
		if p.RightHeld {
			target += p.Speed
		}
		p.VX += (target - p.VX) * math.Min(1, pc.Accel*ts)
		if target == 0 && math.Abs(p.VX) < 0.1 {
			p.VX = 0
		}

		gravity := pc.Gravity
		g.bus.Gravity(&gravity)
		p.VY = math.Min(p.VY+gravity*ts, pc.MaxFall)

		if p.VX != 0 {
			p.Facing = core.Sign(p.VX)
		}
	}

	if p.wantJump {
		p.wantJump = false
		g.tryJump()
	}

	switch {
	case p.Charging:
		p.Anim = AnimCharge
	case p.Dash > 0 || !p.Grounded:
		p.Anim = AnimJump
	case math.Abs(p.VX) > 0.1:
		p.Anim = AnimRun
	default:
		p.Anim = AnimIdle
	}

	solids := g.solidsAround(p.Box)
	if p.Dash <= 0 {
		for _, f := range g.falling {
			solids = append(solids, f.Box(g.grid.TileSize()))
		}
	}
	c := p.move(ts, solids)
	p.Contacts = c

	if c.Wall() {
		p.WallContact = pc.WallContactTicks
		if p.Dash <= 0 {
			p.VX = 0
		}
	}
	if c.Top && p.VY < 0 {
		p.VY = 0
	}

	p.Grounded = c.Bottom
	if p.Grounded {
		if !p.WasGrounded {
			p.ScaleY = 0.7
		}
		p.VY = 0
		p.AirTime = 0
		p.Jumps = p.MaxJumps
		p.Jumping = false
		p.Rotation = 0
		p.Coyote = 0
		if p.JumpBuffer > 0 {
			p.JumpBuffer = 0
			g.jump(JumpGround)
		}
	} else {
		p.AirTime += ts
		if p.WasGrounded && !p.Jumping {
			p.Coyote = pc.CoyoteTicks
		}
		if g.besideSticky() {
			p.VY = math.Min(p.VY, pc.StickySlide)
		}
		if p.Jumping && p.Jumps < p.MaxJumps-1 {
			p.Rotation += 0.25 * ts * p.Facing
		}
	}
	p.WasGrounded = p.Grounded
	p.ScaleY = core.Lerp(p.ScaleY, 1, math.Min(1, 0.2*ts))

	if p.sanitize() {
		g.log.Warn("non-finite player state reset", "tick", g.run.Tick)
	}
}

// tryJump applies the jump rules: grounded, coyote, air, otherwise buffer.
func (g *Game) tryJump() {
	p := &g.player
	switch {
	case p.Grounded:
		g.jump(JumpGround)
	case p.Coyote > 0:
		g.jump(JumpCoyote)
	case p.Jumps > 0:
		g.jump(JumpAir)
	default:
		p.JumpBuffer = g.cfg.Player.JumpBufferTicks
	}
}

// jump performs one jump of the given kind.
func (g *Game) jump(kind JumpKind) {
	p := &g.player
	pc := g.cfg.Player
	e := JumpEvent{Kind: kind, Velocity: pc.JumpVelocity}
	if kind == JumpAir {
		e.Velocity = pc.AirJumpVelocity
	}
	g.bus.Jump(&e)

	p.VY = e.Velocity
	p.Grounded = false
	p.Jumping = true
	p.Coyote = 0
	switch kind {
	case JumpGround:
		p.Jumps = core.Max(0, p.Jumps-1)
	case JumpAir:
		p.Jumps = core.Max(0, p.Jumps-1)
		g.burst(p.CenterX(), p.Box.Bottom(), 12, core.ColorWhite, false)
	}
	g.emit(SoundJump)
}

// releaseDash spends focus and starts the dash.
func (g *Game) releaseDash() {
	p := &g.player
	pc := g.cfg.Player
	p.Focus = math.Max(0, p.Focus-pc.FocusDashCost)
	p.Charging = false
	p.Dash = pc.DashTicks
	g.directedBurst(p.CenterX(), p.CenterY(), p.Facing, 16, core.ColorBrightCyan)
}

// besideSticky reports a sticky tile in the cell adjacent to either side of
// the player's vertical centre.
func (g *Game) besideSticky() bool {
	p := &g.player
	y := p.CenterY()
	for _, x := range []float64{p.Box.X - 1, p.Box.Right() + 1} {
		cx, cy := g.grid.CellAt(x, y)
		if t, ok := g.grid.Get(cx, cy); ok && t.Kind == world.KindSticky {
			return true
		}
	}
	return false
}

// playerColumn returns the grid column under the player's centre.
func (g *Game) playerColumn() int {
	return g.grid.ClampColumn(g.grid.ColumnAt(g.player.CenterX()))
}
