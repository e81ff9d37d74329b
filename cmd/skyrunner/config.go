package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/skyrunner/internal/config"
)

var flagResolved bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Print the built-in configuration as YAML. Save it to
~/.skyrunner/configs/skyrunner.yaml or ./configs/skyrunner.yaml and edit
to taste; keys left out keep their defaults.

With --resolved the effective configuration is printed instead: the file
given by --config (or the first one found on the search path) merged over
the defaults, with --difficulty applied.

Examples:
  skyrunner config > ~/.skyrunner/configs/skyrunner.yaml
  skyrunner config --resolved --config ./my-skyrunner.yaml --difficulty hard`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagResolved, "resolved", false, "Print the effective configuration")
	configCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	configCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runConfig(cmd *cobra.Command, args []string) error {
	if !flagResolved {
		fmt.Print(string(config.DefaultYAML()))
		return nil
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if p := config.ParsePreset(flagDifficulty); p != "" {
		config.ApplyPreset(&cfg, p)
	}

	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	fmt.Print(string(out))
	return nil
}
