package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-jump/internal/config"
)

var flagCheck string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default config or validate a config file",
	Long: `Without flags, print the embedded default configuration as YAML.
Save it, edit it, and pass it to 'jump play --config'.

With --check, load the given file on top of the defaults and report
whether every platform it can generate stays reachable.

Examples:
  jump config > my-jump.yaml
  jump config --check my-jump.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagCheck, "check", "", "Validate this config file")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	if flagCheck == "" {
		_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
		return err
	}

	data, err := os.ReadFile(flagCheck)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	cfg, err := config.ParseJump(data)
	if err != nil {
		return fmt.Errorf("%s: %w", flagCheck, err)
	}

	phys := cfg.Physics
	fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (reach %.2f-%.2f, apex %.2f)\n",
		flagCheck, phys.MinReach(), phys.MaxReach(), phys.Apex())
	return nil
}
