package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/edu-recommender/internal/catalog"
)

var (
	catalogJSONOut bool
	usersJSONOut   bool
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the educational content catalogue",
	RunE:  runCatalog,
}

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "List the bundled learner personas",
	RunE:  runUsers,
}

func init() {
	catalogCmd.Flags().BoolVar(&catalogJSONOut, "json", false, "Print as JSON")
	usersCmd.Flags().BoolVar(&usersJSONOut, "json", false, "Print as JSON")
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(usersCmd)
}

func runCatalog(_ *cobra.Command, _ []string) error {
	store, err := catalog.Load()
	if err != nil {
		return fmt.Errorf("loading catalogue: %w", err)
	}

	if catalogJSONOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(store.All())
	}

	for _, item := range store.All() {
		fmt.Printf("%2d  %-50s %-12s %3d min  %s\n",
			item.ID, item.Title, item.Difficulty, item.DurationMinutes, item.Format)
	}
	return nil
}

func runUsers(_ *cobra.Command, _ []string) error {
	store, err := catalog.Load()
	if err != nil {
		return fmt.Errorf("loading catalogue: %w", err)
	}

	if usersJSONOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(store.Users())
	}

	for _, user := range store.Users() {
		fmt.Printf("%-4s %-8s %-9s %-12s %3d min/day  interests: %s\n",
			user.UserID, user.Name, user.LearningStyle, user.PreferredDifficulty,
			user.TimePerDay, strings.Join(user.InterestTags, ", "))
	}
	return nil
}
