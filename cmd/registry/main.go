// Package main provides the registry CLI: manage schema versions, validate
// context documents and roll the active schema back, against the same
// SQLite store the API server uses.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "registry",
		Short: "Context schema registry",
		Long: `Validate, version and roll back context documents describing
multimodal data-ingestion pipelines. Schemas are immutable once
registered; rollback only moves the active pointer.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to YAML config file")

	cmd.AddCommand(
		serveCmd(&configPath),
		registerCmd(&configPath),
		rollbackCmd(&configPath),
		validateCmd(&configPath),
		historyCmd(&configPath),
		currentCmd(&configPath),
		upgradeCmd(&configPath),
		summaryCmd(&configPath),
	)

	return cmd
}
