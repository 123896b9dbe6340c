package cavyn

import (
	"math"
	"testing"

	"github.com/vovakirdan/cavyn/internal/core"
)

func TestGroundJump(t *testing.T) {
	g := newQuietGame(t)
	stepN(g, 2)

	g.Step(press(core.ActionJump))
	p := g.Player()
	if p.VY != g.cfg.Player.JumpVelocity {
		t.Errorf("VY = %v, expected %v", p.VY, g.cfg.Player.JumpVelocity)
	}
	if p.Jumps != p.MaxJumps-1 {
		t.Errorf("Jumps = %d, expected %d", p.Jumps, p.MaxJumps-1)
	}
	if !p.Jumping || p.Grounded {
		t.Errorf("Jumping/Grounded = %v/%v, expected true/false", p.Jumping, p.Grounded)
	}
}

func TestAirJump(t *testing.T) {
	g := newQuietGame(t)
	g.player.Box.Y = 60
	g.player.Grounded, g.player.WasGrounded = false, false
	g.player.Jumping = true
	stepN(g, 2)

	g.Step(press(core.ActionJump))
	p := g.Player()
	if p.VY != g.cfg.Player.AirJumpVelocity {
		t.Errorf("VY = %v, expected %v", p.VY, g.cfg.Player.AirJumpVelocity)
	}
	if p.Jumps != 0 {
		t.Errorf("Jumps = %d, expected 0", p.Jumps)
	}
}

func TestNoCoyoteAfterJumping(t *testing.T) {
	g := newQuietGame(t)
	stepN(g, 2)
	g.Step(press(core.ActionJump))
	stepN(g, 2)

	g.Step(press(core.ActionJump))
	p := g.Player()
	if p.Coyote != 0 {
		t.Errorf("Coyote = %v after a jump, expected 0", p.Coyote)
	}
	if p.JumpBuffer != g.cfg.Player.JumpBufferTicks {
		t.Errorf("JumpBuffer = %v, expected %v", p.JumpBuffer, g.cfg.Player.JumpBufferTicks)
	}
}

func TestBufferedJumpFiresOnLanding(t *testing.T) {
	g := newQuietGame(t)
	g.player.Box.Y -= 4
	g.player.Grounded, g.player.WasGrounded = false, false
	g.player.Jumping = true
	g.player.Jumps = 0

	g.Step(press(core.ActionJump))
	if g.player.JumpBuffer <= 0 {
		t.Fatal("expected the jump to be buffered")
	}

	jumped := false
	for i := 0; i < int(g.cfg.Player.JumpBufferTicks); i++ {
		res := g.Step(idle())
		if countSound(res.Sounds, SoundJump) > 0 {
			jumped = true
			if g.player.VY != g.cfg.Player.JumpVelocity {
				t.Errorf("VY = %v, expected %v", g.player.VY, g.cfg.Player.JumpVelocity)
			}
			break
		}
	}
	if !jumped {
		t.Error("buffered jump never fired")
	}
}

func TestRunAcceleratesTowardSpeed(t *testing.T) {
	g := newQuietGame(t)
	in := press(core.ActionRight)
	for i := 0; i < 30; i++ {
		g.Step(in)
		in = in.Next()
	}
	p := g.Player()
	if p.VX <= 0 || p.VX > p.Speed+epsilon {
		t.Errorf("VX = %v, expected (0, %v]", p.VX, p.Speed)
	}
	if p.Facing != 1 {
		t.Errorf("Facing = %v, expected 1", p.Facing)
	}
	if p.Anim != AnimRun {
		t.Errorf("Anim = %v, expected run", p.Anim)
	}

	g.Step(release(core.ActionRight))
	stepN(g, 60)
	if g.Player().VX != 0 {
		t.Errorf("VX = %v after release, expected 0", g.Player().VX)
	}
}

func TestWallStopsPlayer(t *testing.T) {
	g := newQuietGame(t)
	in := press(core.ActionLeft)
	for i := 0; i < 200; i++ {
		g.Step(in)
		in = in.Next()
	}
	p := g.Player()
	if p.Box.X != g.grid.PlayLeft() {
		t.Errorf("X = %v, expected %v against the wall", p.Box.X, g.grid.PlayLeft())
	}
	if p.WallContact <= 0 {
		t.Error("expected recent wall contact")
	}
}

func TestDashNeedsFocus(t *testing.T) {
	g := newQuietGame(t)
	g.player.Focus = g.cfg.Player.FocusDashCost - 1
	g.Step(press(core.ActionDashCharge))
	if g.player.Charging {
		t.Error("charging started without enough focus")
	}
}

func TestChargingDilatesTime(t *testing.T) {
	g := newQuietGame(t)
	res := g.Step(press(core.ActionDashCharge))
	if g.Run().TimeScale != g.cfg.Time.SlowScale {
		t.Errorf("TimeScale = %v, expected %v", g.Run().TimeScale, g.cfg.Time.SlowScale)
	}
	if countSound(res.Sounds, SoundTimeSlowStart) != 1 {
		t.Errorf("time_slow_start sounds = %d, expected 1", countSound(res.Sounds, SoundTimeSlowStart))
	}
	if g.player.Anim != AnimCharge {
		t.Errorf("Anim = %v, expected charge", g.player.Anim)
	}
	focus := g.player.Focus
	if focus >= g.cfg.Player.FocusCap {
		t.Errorf("Focus = %v, expected drain while charging", focus)
	}

	for i := 0; i < 200 && g.player.Charging; i++ {
		g.Step(idle())
	}
	if g.player.Charging {
		t.Error("charge never ran out of focus")
	}
	if g.player.Focus >= g.cfg.Player.FocusDashCost {
		t.Errorf("Focus = %v, expected it drained below the dash cost", g.player.Focus)
	}
}

func TestSanitizeResetsNonFinite(t *testing.T) {
	b := Body{VX: 1, VY: 2}
	b.Box.X = math.Inf(1)
	if !b.sanitize() {
		t.Error("sanitize() = false, expected true")
	}
	if b.Box.X != 0 || b.VX != 1 || b.VY != 2 {
		t.Errorf("sanitize() left %+v", b)
	}
	if b.sanitize() {
		t.Error("sanitize() = true on a finite body")
	}
}
