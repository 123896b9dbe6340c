// Package cavyn implements the game simulation: a fixed-tick loop over the
// tile shaft, falling tiles, the character controller, combo scoring, items,
// projectiles, particles, world scrolling and time dilation.
package cavyn

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/cavyn/internal/config"
	"github.com/vovakirdan/cavyn/internal/core"
	"github.com/vovakirdan/cavyn/internal/games/cavyn/world"
)

// Upgrade ids shared with the save blob.
const (
	upgradeJumps      = "jumps"
	upgradeSpeed      = "speed"
	upgradeItemLuck   = "item_luck"
	upgradeCoinMagnet = "coin_magnet"
)

// UpgradeIDs lists the persistent upgrade tracks the simulation reads.
var UpgradeIDs = []string{upgradeJumps, upgradeSpeed, upgradeItemLuck, upgradeCoinMagnet}

// Profile is the persistent side of the meta loop: upgrade levels read at
// the start of a run and the bank receiving a finished run's coins.
type Profile interface {
	Level(id string) int
	Bank(coins int) error
}

// Options configures a Game.
type Options struct {
	Config  config.CavynConfig
	Profile Profile     // Optional; nil plays without upgrades or banking
	Logger  *log.Logger // Optional; nil discards
}

// Game implements the Cavyn simulation.
type Game struct {
	opts    Options
	cfg     config.CavynConfig
	runtime core.RuntimeConfig
	log     *log.Logger

	rng        *rand.Rand
	difficulty *config.DifficultyManager
	bus        *EffectBus
	biomes     []Biome
	levels     map[string]int

	grid        *world.Grid
	run         RunState
	player      Player
	spawner     Spawner
	falling     []*FallingTile
	items       []*Item
	projectiles []*Projectile
	sparks      []Spark
	motes       []Mote
	offer       *PerkOffer

	sounds []core.Sound
}

// New creates a game. Call Reset before stepping.
func New(opts Options) *Game {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{opts: opts, cfg: opts.Config, log: logger}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "cavyn"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Cavyn"
}

// SetConfig replaces the tunables used from the next Reset on.
func (g *Game) SetConfig(cfg config.CavynConfig) {
	g.opts.Config = cfg
}

// Reset starts a new run.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.cfg = g.opts.Config
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.bus = &EffectBus{}
	g.biomes = g.buildBiomes(g.cfg.Biomes)

	g.levels = make(map[string]int, len(UpgradeIDs))
	if g.opts.Profile != nil {
		for _, id := range UpgradeIDs {
			g.levels[id] = g.opts.Profile.Level(id)
		}
	}

	g.grid = world.NewGrid(g.cfg.World.Columns, g.cfg.World.Tile)
	g.run = RunState{
		TimeScale: 1,
		TimeMeter: g.cfg.Time.MeterCap,
		Combo:     NewCombo(),
	}
	g.spawner = Spawner{}
	g.falling = nil
	g.items = nil
	g.projectiles = nil
	g.sparks = nil
	g.offer = nil
	g.sounds = nil
	g.resetPlayer()
	g.initMotes()

	g.log.Debug("run started", "seed", runtime.Seed, "levels", g.levels)
}

// level returns the purchased level of an upgrade for this run.
func (g *Game) level(id string) int {
	return g.levels[id]
}

// Step advances the simulation by one fixed tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.sounds = nil

	// (1) input dispatch
	if g.offer != nil {
		g.handleOfferInput(in)
		return g.result()
	}
	if g.run.Dead {
		if in.Pressed(core.ActionRestart) && g.run.Banked {
			next := g.runtime
			next.Seed = g.rng.Int63()
			g.Reset(next)
			return g.result()
		}
		g.bankRun()
		g.run.DeadTicks++
	} else {
		g.handlePlayerInput(in)
	}

	// (2) clock, time dilation and combo decay
	g.updateClock()
	g.updateCombo()
	// (3) biome
	g.updateBiome()
	// (4) spawner
	g.updateSpawner()
	// (5) falling tiles
	g.updateFalling()
	// (6) fragile fuses and magnetic pull
	g.updateTileEffects()
	// (7) items
	g.updateItems()
	// (8) projectiles
	g.updateProjectiles()
	// (9) character controller
	if !g.run.Dead {
		g.updatePlayer()
		// (10) interaction resolver
		g.resolveInteractions()
	}
	// (11) particles
	g.updateParticles()
	// (12) scroller
	g.updateScroller()
	// (13) perk offer
	g.checkPerkOffer()

	return g.result()
}

// bankRun transfers the run's coins to the profile once, on the tick after
// death.
func (g *Game) bankRun() {
	if g.run.Banked {
		return
	}
	g.run.Banked = true
	g.emit(SoundCoinEnd)
	if g.opts.Profile == nil {
		return
	}
	if err := g.opts.Profile.Bank(g.run.Coins); err != nil {
		g.log.Warn("cannot bank run", "coins", g.run.Coins, "err", err)
		return
	}
	g.log.Info("run banked", "coins", g.run.Coins)
}

func (g *Game) result() core.StepResult {
	return core.StepResult{State: g.State(), Sounds: g.sounds}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.run.Coins,
		GameOver: g.run.Dead,
		Paused:   g.offer != nil,
	}
}

// Run returns a copy of the run state.
func (g *Game) Run() RunState {
	return g.run
}

// Player returns a copy of the character.
func (g *Game) Player() Player {
	return g.player
}

// Grid exposes the tile lattice for read access.
func (g *Game) Grid() *world.Grid {
	return g.grid
}

// Offer returns the pending perk offer, or nil.
func (g *Game) Offer() *PerkOffer {
	return g.offer
}

// Config returns the tunables of the current run.
func (g *Game) Config() config.CavynConfig {
	return g.cfg
}
