package main

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var marketCmd = &cobra.Command{
	Use:   "market",
	Short: "Inspect and refresh market conditions",
}

var marketShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the current market conditions",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := initEnv()
		if err != nil {
			return err
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(e.Market.Conditions())
	},
}

var marketRefreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Refresh market conditions and the catalog snapshot",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := initEnv()
		if err != nil {
			return err
		}

		cond := e.Market.Refresh()
		snap := e.Catalog.Refresh()

		zap.L().Info("market data refreshed",
			zap.Int("catalog_version", snap.Version),
		)

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{
			"market_conditions": cond,
			"catalog_version":   snap.Version,
		})
	},
}

func init() {
	marketCmd.AddCommand(marketShowCmd)
	marketCmd.AddCommand(marketRefreshCmd)
	rootCmd.AddCommand(marketCmd)
}
