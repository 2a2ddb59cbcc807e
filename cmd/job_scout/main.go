// Package main provides the entry point for the Job Scout HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "job_scout",
	Short: "Job Scout HTTP API Server",
	Long:  "Job Scout parses uploaded resumes into candidate profiles and keeps a deduplicated feed of matching job postings from upstream search APIs.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
