/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/friendsincode/sintesi/internal/config"
	"github.com/friendsincode/sintesi/internal/logging"
	"github.com/friendsincode/sintesi/internal/version"
)

var (
	logger  zerolog.Logger
	cfg     *config.Config
	cfgPath string
)

var rootCmd = &cobra.Command{
	Use:   "sintesi",
	Short: "sintesi - Italian booking-intent training data synthesizer",
	Long:  "sintesi generates labeled Italian utterance/intent pairs for booking assistants and partitions them into train/test/validation datasets.",
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the sintesi version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.Version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "config.yaml", "Path to the YAML configuration file")
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig loads configuration (called by commands that need it)
func loadConfig() error {
	var err error
	cfg, err = config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger = logging.Setup(cfg.Environment)
	return nil
}
