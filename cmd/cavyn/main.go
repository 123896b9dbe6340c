// cavyn is a vertical arcade game for the terminal: stay on top of the
// falling tiles, bank coins and buy upgrades between runs.
//
// Usage:
//
//	cavyn play               - Start a run
//	cavyn shop               - Spend banked coins on upgrades
//	cavyn stats              - Show the save: coins, best run, upgrades
//	cavyn config             - Print the effective tunables as YAML
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible runs
//	--save <path>       - Set save path (default: ~/.cavyn/save.yaml)
//	--config <path>     - Load tunables from a YAML file
//	--log <path>        - Log file for the full-screen commands (default: ~/.cavyn/cavyn.log)
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagSavePath string
	flagConfig   string
	flagLogPath  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "cavyn",
	Short: "Cavyn - a falling-tile arcade game in your terminal",
	Long: `Cavyn is a vertical arcade game. Tiles rain down the shaft and stack up;
stay on top, grab coins, chain a combo and slow time when it gets tight.
Coins are banked when a run ends and buy permanent upgrades in the shop.

Available commands:
  play     - Start a run
  shop     - Buy upgrades with banked coins
  stats    - Show the save file
  config   - Print the effective tunables

Examples:
  cavyn play
  cavyn play --difficulty hard
  cavyn play --config ./cavyn.yaml --watch
  cavyn shop
  cavyn config > cavyn.yaml`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagSavePath, "save", "~/.cavyn/save.yaml", "Path to the save file")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a tunables YAML file")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "~/.cavyn/cavyn.log", "Log file used while the game owns the terminal")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(shopCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(configCmd)
}
