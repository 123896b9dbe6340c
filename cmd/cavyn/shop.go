package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/cavyn/internal/audio"
	"github.com/vovakirdan/cavyn/internal/platform/tui"
	"github.com/vovakirdan/cavyn/internal/storage"
)

var shopCmd = &cobra.Command{
	Use:   "shop",
	Short: "Buy upgrades with banked coins",
	Long: `Open the upgrade shop. Upgrades persist across runs:

  Extra jump  - one more jump in the air per level
  Run speed   - faster running
  Item luck   - better odds of item drops from chests
  Coin magnet - pulls nearby coins toward you

Examples:
  cavyn shop
  cavyn shop --save ./save.yaml`,
	Args: cobra.NoArgs,
	Run:  runShop,
}

func runShop(cmd *cobra.Command, args []string) {
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

	cfg, _, err := loadTunables("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagSavePath, cfg.Upgrades, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening save: %v\n", err)
		os.Exit(1)
	}

	sink := audio.New(cfg.Audio, logger)
	defer sink.Close()

	width, height := terminalSize()
	if err := tui.RunShop(store, cfg.Upgrades, sink, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error running shop: %v\n", err)
		os.Exit(1)
	}
}
