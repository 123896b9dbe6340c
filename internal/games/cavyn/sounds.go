package cavyn

import "github.com/vovakirdan/cavyn/internal/core"

// Named audio effects emitted by the simulation.
const (
	SoundJump          core.Sound = "jump"
	SoundBlockLand     core.Sound = "block_land"
	SoundChestOpen     core.Sound = "chest_open"
	SoundChestDestroy  core.Sound = "chest_destroy"
	SoundCoin          core.Sound = "coin"
	SoundCollectItem   core.Sound = "collect_item"
	SoundSuperJump     core.Sound = "super_jump"
	SoundWarp          core.Sound = "warp"
	SoundExplosion     core.Sound = "explosion"
	SoundComboEnd      core.Sound = "combo_end"
	SoundTimeSlowStart core.Sound = "time_slow_start"
	SoundTimeSlowEnd   core.Sound = "time_slow_end"
	SoundTimeEmpty     core.Sound = "time_empty"
	SoundDeath         core.Sound = "death"
	SoundUpgrade       core.Sound = "upgrade"
	SoundCoinEnd       core.Sound = "coin_end"
)

// AllSounds lists every effect in a stable order.
var AllSounds = []core.Sound{
	SoundJump, SoundBlockLand, SoundChestOpen, SoundChestDestroy, SoundCoin,
	SoundCollectItem, SoundSuperJump, SoundWarp, SoundExplosion, SoundComboEnd,
	SoundTimeSlowStart, SoundTimeSlowEnd, SoundTimeEmpty, SoundDeath,
	SoundUpgrade, SoundCoinEnd,
}

// emit queues a sound for the current step result.
func (g *Game) emit(s core.Sound) {
	g.sounds = append(g.sounds, s)
}
