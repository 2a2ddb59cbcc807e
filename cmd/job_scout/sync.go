package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/job-scout/internal/config"
	"github.com/jonathan/job-scout/internal/db"
	"github.com/jonathan/job-scout/internal/jobsearch"
	"github.com/jonathan/job-scout/internal/matching"
	"github.com/jonathan/job-scout/internal/observability"
)

var (
	syncUserID  string
	syncVerbose bool
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Run one job sync for a user",
	Long:  `Fetch jobs from the upstream search API for a user's stored profile, normalize and deduplicate them, and persist new matches.`,
	RunE:  runSync,
}

func init() {
	syncCmd.Flags().StringVar(&syncUserID, "user", "", "User UUID (required)")
	syncCmd.Flags().BoolVarP(&syncVerbose, "verbose", "v", false, "Print the stored profile before syncing")
	_ = syncCmd.MarkFlagRequired("user")
	rootCmd.AddCommand(syncCmd)
}

func runSync(_ *cobra.Command, _ []string) error {
	userID, err := uuid.Parse(syncUserID)
	if err != nil {
		return fmt.Errorf("invalid user ID %q: %w", syncUserID, err)
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}
	apiKey := os.Getenv("JSEARCH_API_KEY")
	if apiKey == "" {
		return fmt.Errorf("JSEARCH_API_KEY environment variable is required")
	}
	host := os.Getenv("JSEARCH_API_HOST")
	if host == "" {
		host = config.DefaultJSearchHost
	}

	ctx := context.Background()
	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	client, err := jobsearch.NewClient(jobsearch.Options{
		BaseURL: "https://" + host,
		APIKey:  apiKey,
		APIHost: host,
	})
	if err != nil {
		return fmt.Errorf("failed to create job search client: %w", err)
	}

	printer := observability.NewPrinter(os.Stdout)

	if syncVerbose {
		profile, err := database.GetCandidateProfile(ctx, userID)
		if err != nil {
			return fmt.Errorf("failed to load candidate profile: %w", err)
		}
		printer.PrintCandidateProfile(profile)
	}

	summary, err := matching.NewSyncer(database, database, client).Run(ctx, userID)
	if err != nil {
		return fmt.Errorf("sync failed: %w", err)
	}

	fmt.Fprintf(os.Stdout, "Sync complete for user %s\n", userID)
	printer.PrintSyncSummary(summary)

	return nil
}
