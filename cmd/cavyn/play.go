package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/cavyn/internal/audio"
	"github.com/vovakirdan/cavyn/internal/config"
	"github.com/vovakirdan/cavyn/internal/core"
	"github.com/vovakirdan/cavyn/internal/games/cavyn"
	"github.com/vovakirdan/cavyn/internal/platform/tui"
	"github.com/vovakirdan/cavyn/internal/storage"
)

var (
	flagDifficulty string
	flagWatch      bool
	flagMute       bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a run",
	Long: `Start a Cavyn run. Coins are banked to the save when the run ends.

Controls:
  A/D, Left/Right - Run
  W/S, Up/Down    - Aim shots / move the perk cursor
  Space           - Jump (again in the air with upgrades)
  J               - Shoot
  K               - Use the held item
  L               - Hold to charge a dash, release to dash
  ; or F          - Hold to slow time
  Enter           - Take the highlighted perk
  R               - Restart after death
  Ctrl+S          - Save a text screenshot
  Q/Ctrl+C        - Quit

Difficulty options:
  easy   - Start at lowest difficulty, longer warmup and a bigger time meter
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, shorter warmup and combo window
  fixed  - No progression, stays at the config's initial level

Examples:
  cavyn play
  cavyn play --difficulty hard
  cavyn play --seed 42
  cavyn play --config ./cavyn.yaml --watch`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload the config file when it changes (applies on restart)")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound effects")
}

func runPlay(cmd *cobra.Command, args []string) {
	if flagFPS <= 0 {
		fmt.Fprintf(os.Stderr, "Error: --fps must be positive, got %d\n", flagFPS)
		os.Exit(1)
	}
	if err := requireTerminal(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := newLogger(true)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	cfg, source, err := loadTunables(flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Info("tunables loaded", "source", source, "difficulty", flagDifficulty)

	// The game still runs without a save; nothing is banked.
	opts := cavyn.Options{Config: cfg, Logger: logger}
	store, err := storage.Open(flagSavePath, cfg.Upgrades, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open save: %v\n", err)
		logger.Warn("playing without a save", "err", err)
	} else {
		opts.Profile = store
	}

	width, height := terminalSize()
	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	audioCfg := cfg.Audio
	if flagMute {
		audioCfg.Enabled = false
	}

	session := tui.Options{
		Game:    cavyn.New(opts),
		Runtime: runtime,
		Sink:    audio.New(audioCfg, logger),
		Logger:  logger,
	}
	if flagWatch {
		watcher := startWatcher(source, logger)
		if watcher != nil {
			defer watcher.Close() //nolint:errcheck
			session.Watcher = watcher
			preset := config.ParsePreset(flagDifficulty)
			session.Tune = func(c *config.CavynConfig) { config.ApplyCavynPreset(c, preset) }
		}
	}

	if err := tui.Run(session); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}

	if store != nil {
		data := store.Data()
		fmt.Printf("Banked %d coins. Best run: %d.\n", data.BankedCoins, data.HighScore)
	}
}

// startWatcher watches the config file the tunables came from. Embedded
// defaults have no file to watch.
func startWatcher(source string, logger *log.Logger) *config.Watcher {
	if source == "" || source == "embedded" || source == "builtin" {
		fmt.Fprintln(os.Stderr, "Warning: --watch needs a config file; pass --config")
		return nil
	}
	w, err := config.NewWatcher(source)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		return nil
	}
	logger.Info("watching config", "path", w.Path())
	return w
}
