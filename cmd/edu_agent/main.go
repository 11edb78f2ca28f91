// Package main provides the entry point for the EduRecommender CLI and API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "edu_agent",
	Short: "EduRecommender HTTP API Server and CLI",
	Long:  "EduRecommender produces personalised educational content recommendations using embedding retrieval and LLM re-ranking, exposed via REST API and CLI.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
