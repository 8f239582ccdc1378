// Package main provides the blogforge CLI: style-transfer blog conversion
// for single posts and CSV-driven batch runs.
package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/hyuklee/blogforge/internal/config"
	"github.com/hyuklee/blogforge/internal/llm"
)

var rootCmd = &cobra.Command{
	Use:   "blogforge",
	Short: "Style-transfer blog ghost-writer",
	Long:  "blogforge analyzes the writing style of a source blog post and generates a post for a new business in the same voice, one at a time or from a CSV work list.",
}

var configPath string

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "blogforge.json", "Path to the JSON config file")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig loads the config file and resolves the API key from the
// environment when the file carries none.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if cfg.APIKey == "" {
		switch cfg.Provider {
		case llm.ProviderGemini:
			cfg.APIKey = os.Getenv("GEMINI_API_KEY")
		default:
			cfg.APIKey = os.Getenv("OPENAI_API_KEY")
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newLLMClient creates the configured provider client. The API key must be
// present by the time generation is requested.
func newLLMClient(ctx context.Context, cfg *config.Config) (llm.Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API key is required (set OPENAI_API_KEY or GEMINI_API_KEY, or api_key in %s)", configPath)
	}
	return llm.NewClient(ctx, cfg.Provider, cfg.APIKey)
}

// newRand returns the randomness source for feature selection and fallback
// titles, seeded from config when a fixed seed is set.
func newRand(cfg *config.Config) *rand.Rand {
	if cfg.FeatureSelectSeed != nil {
		return rand.New(rand.NewSource(*cfg.FeatureSelectSeed))
	}
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
