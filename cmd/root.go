package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/verityai/capital-recommender/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "capital-recommender",
	Short: "UK business funding recommendation engine",
	Long:  "Analyzes UK business profiles, screens a funding-source catalog against eligibility and market conditions, and produces ranked broker recommendations.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
