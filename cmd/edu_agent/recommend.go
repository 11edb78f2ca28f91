package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/edu-recommender/internal/catalog"
	"github.com/jonathan/edu-recommender/internal/config"
	"github.com/jonathan/edu-recommender/internal/observability"
	"github.com/jonathan/edu-recommender/internal/types"
)

var (
	recommendUserID      string
	recommendProfilePath string
	recommendJSON        bool
	recommendVerbose     bool
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Produce top-3 recommendations for a learner",
	Long: `Run the recommendation pipeline for a learner profile.

The profile comes either from a bundled persona (--user) or from a JSON file
(--profile). Exactly one of the two must be given.`,
	RunE: runRecommend,
}

func init() {
	recommendCmd.Flags().StringVar(&recommendUserID, "user", "", "Bundled persona id (e.g. u1)")
	recommendCmd.Flags().StringVar(&recommendProfilePath, "profile", "", "Path to a learner profile JSON file")
	recommendCmd.Flags().BoolVar(&recommendJSON, "json", false, "Print the raw JSON response")
	recommendCmd.Flags().BoolVarP(&recommendVerbose, "verbose", "v", false, "Print the profile and pipeline log")
	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(cmd *cobra.Command, _ []string) error {
	if (recommendUserID == "") == (recommendProfilePath == "") {
		return fmt.Errorf("exactly one of --user or --profile is required")
	}

	store, err := catalog.Load()
	if err != nil {
		return fmt.Errorf("loading catalogue: %w", err)
	}

	profile, err := resolveProfile(store)
	if err != nil {
		return err
	}
	if err := profile.Validate(); err != nil {
		return fmt.Errorf("invalid profile: %w", err)
	}

	cfg := config.FromEnv()
	runner, cleanup, err := buildRunner(cmd.Context(), cfg, store)
	if err != nil {
		return err
	}
	defer cleanup()

	resp, err := runner.Run(cmd.Context(), profile)
	if err != nil {
		return fmt.Errorf("recommendation pipeline failed: %w", err)
	}

	if recommendJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(resp)
	}

	printer := observability.NewPrinter(os.Stdout)
	if recommendVerbose {
		printer.PrintProfile(&profile)
		printer.PrintPipelineLog(resp.PipelineLog)
	}
	printer.PrintRecommendations(resp.Recommendations)
	return nil
}

func resolveProfile(store *catalog.Store) (types.UserProfile, error) {
	if recommendUserID != "" {
		profile, ok := store.UserByID(recommendUserID)
		if !ok {
			return types.UserProfile{}, fmt.Errorf("unknown persona %q, try the users command", recommendUserID)
		}
		return profile, nil
	}

	data, err := os.ReadFile(recommendProfilePath)
	if err != nil {
		return types.UserProfile{}, fmt.Errorf("reading profile: %w", err)
	}
	var profile types.UserProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return types.UserProfile{}, fmt.Errorf("parsing profile: %w", err)
	}
	return profile, nil
}
