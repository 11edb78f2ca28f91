package main

import (
	"fmt"
	"os"
	"sort"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/edu-recommender/internal/catalog"
	"github.com/jonathan/edu-recommender/internal/config"
	"github.com/jonathan/edu-recommender/internal/observability"
	"github.com/jonathan/edu-recommender/internal/types"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the pipeline for every bundled persona",
	Long:  `Run the recommendation pipeline concurrently for all bundled personas and print each result. Useful as a smoke test of the configured providers.`,
	RunE:  runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)
}

func runDemo(cmd *cobra.Command, _ []string) error {
	store, err := catalog.Load()
	if err != nil {
		return fmt.Errorf("loading catalogue: %w", err)
	}

	cfg := config.FromEnv()
	runner, cleanup, err := buildRunner(cmd.Context(), cfg, store)
	if err != nil {
		return err
	}
	defer cleanup()

	users := store.Users()
	results := make([]*types.RecommendationResponse, len(users))
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(cmd.Context())
	for i, user := range users {
		g.Go(func() error {
			resp, err := runner.Run(ctx, user)
			if err != nil {
				return fmt.Errorf("persona %s: %w", user.UserID, err)
			}
			mu.Lock()
			results[i] = resp
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	sort.Slice(results, func(i, j int) bool { return results[i].UserID < results[j].UserID })

	printer := observability.NewPrinter(os.Stdout)
	for i, resp := range results {
		user, _ := store.UserByID(resp.UserID)
		printer.PrintProfile(&user)
		printer.PrintPipelineLog(resp.PipelineLog)
		printer.PrintRecommendations(resp.Recommendations)
		if i < len(results)-1 {
			fmt.Println()
		}
	}
	return nil
}
