// Package config provides configuration loading and validation for the
// server and CLI.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// DefaultJSearchHost is the RapidAPI host of the job search provider.
const DefaultJSearchHost = "jsearch.p.rapidapi.com"

// AppConfig holds application configuration read from environment variables.
type AppConfig struct {
	DatabaseURL   string // PostgreSQL connection URL (required)
	GeminiAPIKey  string // API key for resume parsing (required)
	JSearchAPIKey string // RapidAPI key for the job search provider (required)
	JSearchHost   string // RapidAPI host (default: jsearch.p.rapidapi.com)
	Port          int    // HTTP listen port (default: 8080)
}

// NewAppConfig creates the application configuration from environment
// variables. It reads DATABASE_URL, GEMINI_API_KEY, JSEARCH_API_KEY
// (all required), JSEARCH_API_HOST, and PORT.
func NewAppConfig() (*AppConfig, error) {
	port := 8080
	if portStr := os.Getenv("PORT"); portStr != "" {
		p, err := strconv.Atoi(portStr)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT: %v", err)
		}
		port = p
	}

	host := os.Getenv("JSEARCH_API_HOST")
	if host == "" {
		host = DefaultJSearchHost
	}

	config := &AppConfig{
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		GeminiAPIKey:  os.Getenv("GEMINI_API_KEY"),
		JSearchAPIKey: os.Getenv("JSEARCH_API_KEY"),
		JSearchHost:   host,
		Port:          port,
	}

	if err := config.normalize(); err != nil {
		return nil, err
	}

	return config, nil
}

// JSearchBaseURL returns the base URL of the job search provider.
func (c *AppConfig) JSearchBaseURL() string {
	return "https://" + c.JSearchHost
}

// normalize validates the configuration.
func (c *AppConfig) normalize() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required but not set")
	}
	if c.GeminiAPIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY is required but not set")
	}
	if c.JSearchAPIKey == "" {
		return fmt.Errorf("JSEARCH_API_KEY is required but not set")
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("PORT out of range: %d", c.Port)
	}
	return nil
}
