package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/star-catcher/internal/config"
	"github.com/vovakirdan/star-catcher/internal/games/catcher"
	"github.com/vovakirdan/star-catcher/internal/games/flappy"
	"github.com/vovakirdan/star-catcher/internal/registry"
)

var (
	flagShowConfig string
	flagDefaults   bool
)

var configCmd = &cobra.Command{
	Use:   "config <variant>",
	Short: "Print the configuration a variant would use",
	Long: `Prints the effective YAML configuration of a variant after the search
order is applied: --config, ~/.starcatcher/configs/<variant>.yaml,
./configs/<variant>.yaml, then the built-in defaults.

Save the output as one of those files to customise the game.

Examples:
  starcatcher config flappy
  starcatcher config catcher --defaults > ~/.starcatcher/configs/catcher.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagShowConfig, "config", "", "Path to custom variant config YAML")
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults")
}

func runConfig(cmd *cobra.Command, args []string) error {
	id := args[0]
	if !registry.Exists(id) {
		return fmt.Errorf("unknown variant %q", id)
	}

	if flagDefaults {
		_, err := cmd.OutOrStdout().Write(config.GetDefaultYAML(id))
		return err
	}

	cfg, err := loadConfig(id, flagShowConfig)
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

// loadConfig loads and validates the config of a variant.
func loadConfig(id, path string) (any, error) {
	switch id {
	case flappy.ID:
		return config.LoadFlappy(path)
	case catcher.ID:
		return config.LoadCatcher(path)
	}
	return nil, fmt.Errorf("variant %q has no configuration", id)
}

// setConfigPath points a variant at a custom config file.
func setConfigPath(id, path string) {
	switch id {
	case flappy.ID:
		flappy.SetConfigPath(path)
	case catcher.ID:
		catcher.SetConfigPath(path)
	}
}
