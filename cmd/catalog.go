package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/verityai/capital-recommender/internal/money"
)

var catalogJSON bool

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect the funding-source catalog",
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all catalog sources",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := initEnv()
		if err != nil {
			return err
		}

		snap := e.Catalog.Snapshot()
		if catalogJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(snap.Sources)
		}

		fmt.Printf("Catalog version %d (%d sources)\n\n", snap.Version, len(snap.Sources))
		for _, s := range snap.Sources {
			fmt.Printf("%-24s %-16s %-22s %s\n",
				s.SourceID, s.Type,
				money.Range(s.Amount.Min, s.Amount.Max),
				s.Availability,
			)
		}
		return nil
	},
}

var catalogSummaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print the market-intelligence summary of the catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := initEnv()
		if err != nil {
			return err
		}

		summary := e.Catalog.Snapshot().Summarize()
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(summary)
	},
}

func init() {
	catalogListCmd.Flags().BoolVar(&catalogJSON, "json", false, "print full records as JSON")
	catalogCmd.AddCommand(catalogListCmd)
	catalogCmd.AddCommand(catalogSummaryCmd)
	rootCmd.AddCommand(catalogCmd)
}
