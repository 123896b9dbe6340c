package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/cavyn/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective tunables as YAML",
	Long: `Print the tunables a run would use, after the config search order and
the difficulty preset are applied. The output is a valid config file.

Search order: --config, ~/.cavyn/configs/cavyn.yaml, ./configs/cavyn.yaml,
then the built-in defaults.

Examples:
  cavyn config
  cavyn config --difficulty hard
  cavyn config > ~/.cavyn/configs/cavyn.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runConfig(cmd *cobra.Command, args []string) {
	cfg, source, err := loadTunables(flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	data, err := cfg.Marshal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding config: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("# source: %s\n", source)
	os.Stdout.Write(data) //nolint:errcheck
}

// loadTunables resolves the config and applies a difficulty preset.
func loadTunables(difficulty string) (config.CavynConfig, string, error) {
	preset := config.ParsePreset(difficulty)
	if difficulty != "" && preset == "" {
		return config.CavynConfig{}, "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", difficulty)
	}
	cfg, source, err := config.LoadCavynWithSource(flagConfig)
	if err != nil {
		return cfg, source, err
	}
	config.ApplyCavynPreset(&cfg, preset)
	return cfg, source, nil
}
