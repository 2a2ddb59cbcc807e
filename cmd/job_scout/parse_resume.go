package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/job-scout/internal/ingestion"
	"github.com/jonathan/job-scout/internal/llm"
)

var resumeFile string

var parseResumeCmd = &cobra.Command{
	Use:   "parse-resume",
	Short: "Parse a PDF resume into a candidate profile",
	Long:  `Extract text from a PDF resume, run it through the LLM parser, and print the structured candidate profile as JSON.`,
	RunE:  runParseResume,
}

func init() {
	parseResumeCmd.Flags().StringVarP(&resumeFile, "file", "f", "", "Path to PDF resume (required)")
	_ = parseResumeCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(parseResumeCmd)
}

func runParseResume(_ *cobra.Command, _ []string) error {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}

	resumeText, err := ingestion.NewPDFExtractor().ExtractFile(resumeFile)
	if err != nil {
		return fmt.Errorf("failed to extract resume text: %w", err)
	}

	ctx := context.Background()
	client, err := llm.NewClient(ctx, llm.DefaultConfig(), apiKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer func() { _ = client.Close() }()

	extractor, err := llm.NewProfileExtractor(client)
	if err != nil {
		return fmt.Errorf("failed to create profile extractor: %w", err)
	}

	profile, err := extractor.Extract(ctx, resumeText)
	if err != nil {
		return fmt.Errorf("failed to parse resume: %w", err)
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(profile); err != nil {
		return fmt.Errorf("failed to encode profile: %w", err)
	}

	return nil
}
