package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/cavyn/internal/storage"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the save: banked coins, best run and upgrades",
	Long: `Display the save file: banked coins, the best run and every upgrade
track with its level and the price of the next level.

Examples:
  cavyn stats
  cavyn stats --save ./save.yaml`,
	Args: cobra.NoArgs,
	Run:  runStats,
}

func runStats(cmd *cobra.Command, args []string) {
	logger, closeLog, err := newLogger(false)
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
	data := store.Data()

	fmt.Printf("Cavyn - %s\n", store.Path())
	fmt.Println()
	fmt.Printf("  Banked coins  %d\n", data.BankedCoins)
	fmt.Printf("  Best run      %d\n", data.HighScore)
	fmt.Println()

	fmt.Printf("  %-14s  %-7s  %s\n", "Upgrade", "Level", "Next")
	fmt.Printf("  %-14s  %-7s  %s\n", "-------", "-----", "----")
	for _, tr := range cfg.Upgrades {
		next := "max"
		if cost, ok := store.NextCost(tr.ID); ok {
			next = fmt.Sprintf("%d", cost)
		}
		level := fmt.Sprintf("%d/%d", store.Level(tr.ID), tr.MaxLevel)
		fmt.Printf("  %-14s  %-7s  %s\n", tr.Title, level, next)
	}
}
