package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/edu-recommender/internal/catalog"
	"github.com/jonathan/edu-recommender/internal/config"
	"github.com/jonathan/edu-recommender/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the recommendation pipeline and catalogue over REST.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (defaults to PORT env or 8000)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg := config.FromEnv()
	if servePort != 0 {
		cfg.Port = servePort
	}

	store, err := catalog.Load()
	if err != nil {
		return fmt.Errorf("loading catalogue: %w", err)
	}

	runner, cleanup, err := buildRunner(cmd.Context(), cfg, store)
	if err != nil {
		return err
	}
	defer cleanup()

	srv := server.New(server.Config{
		Port:               cfg.Port,
		RateLimitPerMinute: cfg.RateLimitPerMinute,
	}, store, runner)

	return srv.Start()
}
