package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-scorch/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default match configuration",
	Long: `Print the default match configuration YAML. Save it to
~/.scorch/configs/scorch.yaml or ./configs/scorch.yaml and edit it to
customize matches, or pass a copy with --config.

Example:
  scorch config > ~/.scorch/configs/scorch.yaml`,
	Run: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) {
	if _, err := os.Stdout.Write(config.GetDefaultYAML()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
