package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hyuklee/blogforge/internal/analysis"
	"github.com/hyuklee/blogforge/internal/observability"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze the writing style of a source post",
	Long:  "Extracts the style fingerprint of a blog post (sentence endings, expressions, emotions, markers) without calling any API.",
	RunE:  runAnalyze,
}

var (
	analyzeSourceFile string
	analyzeJSON       bool
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeSourceFile, "source", "s", "", "Path to the source blog post text file (required)")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Print the fingerprint as JSON")

	if err := analyzeCmd.MarkFlagRequired("source"); err != nil {
		panic(fmt.Sprintf("failed to mark source flag as required: %v", err))
	}

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, _ []string) error {
	source, err := os.ReadFile(analyzeSourceFile)
	if err != nil {
		return fmt.Errorf("failed to read source file: %w", err)
	}

	fingerprint := analysis.NewAnalyzer().Analyze(string(source))

	if analyzeJSON {
		data, err := json.MarshalIndent(fingerprint, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode fingerprint: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	observability.NewPrinter(os.Stdout).PrintFingerprint(fingerprint)
	fmt.Printf("글자수 (공백 제외): %d\n", analysis.CountChars(string(source)))
	return nil
}
