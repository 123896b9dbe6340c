package cavyn

import "math"

// updateClock advances the master counter and derives this tick's time scale
// from the slow-time key, the dash charge and the meters.
func (g *Game) updateClock() {
	r := &g.run
	p := &g.player
	tc := g.cfg.Time
	pc := g.cfg.Player

	r.Tick++

	if r.Dead {
		r.SlowHeld = false
		p.Charging = false
	}

	if !r.SlowHeld {
		r.SlowSpent = false
	}

	slowing := false
	switch {
	case p.Charging:
		slowing = true
		p.Focus -= pc.FocusDrain
		if p.Focus <= 0 {
			p.Focus = 0
			p.Charging = false
		}
	case r.SlowHeld && !r.SlowSpent && r.TimeMeter > 0:
		slowing = true
		r.TimeMeter = math.Max(0, r.TimeMeter-tc.MeterDrain)
		if r.TimeMeter == 0 {
			r.SlowSpent = true
			g.emit(SoundTimeEmpty)
		}
	}

	if slowing {
		r.TimeScale = tc.SlowScale
	} else {
		r.TimeScale = 1
		r.TimeMeter = math.Min(tc.MeterCap, r.TimeMeter+tc.MeterRefill)
	}

	if slowing != r.Slowing {
		if slowing {
			g.emit(SoundTimeSlowStart)
		} else {
			g.emit(SoundTimeSlowEnd)
		}
		r.Slowing = slowing
	}

	r.Shake = math.Max(0, r.Shake-1)
	r.Freeze = math.Max(0, r.Freeze-r.TimeScale)
}
