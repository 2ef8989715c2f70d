package main

import (
	"context"
	"encoding/json"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/verityai/capital-recommender/internal/engine"
	"github.com/verityai/capital-recommender/internal/profile"
)

var (
	batchInput       string
	batchConcurrency int
	batchOutput      string
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Process a file of business profiles concurrently",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		e, err := initEnv()
		if err != nil {
			return err
		}

		data, err := os.ReadFile(batchInput)
		if err != nil {
			return eris.Wrap(err, "read profiles file")
		}

		var requests []profile.Request
		if err := json.Unmarshal(data, &requests); err != nil {
			return eris.Wrap(err, "parse profiles JSON")
		}

		concurrency := batchConcurrency
		if concurrency <= 0 {
			concurrency = cfg.Batch.Concurrency
		}

		responses, err := processBatch(ctx, e, requests, concurrency, cfg.Batch.RequestsPerSec)
		if err != nil {
			return err
		}

		out := os.Stdout
		if batchOutput != "" {
			f, err := os.Create(batchOutput)
			if err != nil {
				return eris.Wrap(err, "create output file")
			}
			defer f.Close()
			out = f
		}

		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(responses)
	},
}

func init() {
	batchCmd.Flags().StringVar(&batchInput, "input", "", "JSON array of business profiles (required)")
	batchCmd.Flags().IntVar(&batchConcurrency, "concurrency", 0, "parallel workers (default from config)")
	batchCmd.Flags().StringVar(&batchOutput, "output", "", "write responses to file instead of stdout")
	_ = batchCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(batchCmd)
}

// processBatch runs each profile through an independent engine call. Safe
// to parallelize: every call binds to one immutable catalog snapshot.
// Individual failures become unsuccessful envelopes, never abort the batch.
func processBatch(ctx context.Context, e *env, requests []profile.Request, concurrency int, perSec float64) ([]*engine.Response, error) {
	if len(requests) == 0 {
		zap.L().Info("no profiles to process")
		return nil, nil
	}

	zap.L().Info("processing batch",
		zap.Int("profiles", len(requests)),
		zap.Int("concurrency", concurrency),
	)

	limiter := rate.NewLimiter(rate.Limit(perSec), concurrency)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	responses := make([]*engine.Response, len(requests))
	var succeeded, failed atomic.Int64

	for i, req := range requests {
		i, req := i, req
		g.Go(func() error {
			if err := limiter.Wait(gctx); err != nil {
				return err
			}

			resp := e.Engine.Recommend(req)
			responses[i] = resp
			if resp.Success {
				succeeded.Add(1)
			} else {
				failed.Add(1)
				zap.L().Warn("profile rejected",
					zap.String("business_id", resp.BusinessID),
					zap.Strings("errors", resp.Errors),
				)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, eris.Wrap(err, "batch processing")
	}

	zap.L().Info("batch complete",
		zap.Int64("succeeded", succeeded.Load()),
		zap.Int64("failed", failed.Load()),
	)
	return responses, nil
}
