package main

import (
	"encoding/json"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/verityai/capital-recommender/internal/profile"
)

var (
	recommendInput  string
	recommendPretty bool
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Generate funding recommendations for a single business profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := initEnv()
		if err != nil {
			return err
		}

		data, err := os.ReadFile(recommendInput)
		if err != nil {
			return eris.Wrap(err, "read profile file")
		}

		var req profile.Request
		if err := json.Unmarshal(data, &req); err != nil {
			return eris.Wrap(err, "parse profile JSON")
		}

		resp := e.Engine.Recommend(req)

		zap.L().Info("recommendation complete",
			zap.String("business_id", resp.BusinessID),
			zap.Bool("success", resp.Success),
			zap.Int("recommendations", len(resp.Recommendations)),
		)

		enc := json.NewEncoder(os.Stdout)
		if recommendPretty {
			enc.SetIndent("", "  ")
		}
		return enc.Encode(resp)
	},
}

func init() {
	recommendCmd.Flags().StringVar(&recommendInput, "input", "", "business profile JSON file (required)")
	recommendCmd.Flags().BoolVar(&recommendPretty, "pretty", false, "indent JSON output")
	_ = recommendCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(recommendCmd)
}
