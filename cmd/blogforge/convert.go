package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/hyuklee/blogforge/internal/analysis"
	"github.com/hyuklee/blogforge/internal/batch"
	"github.com/hyuklee/blogforge/internal/convert"
	"github.com/hyuklee/blogforge/internal/observability"
	"github.com/hyuklee/blogforge/internal/preset"
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert one source post for a business preset",
	Long:  "Analyzes the source post's style and generates a post for the given business preset in the same voice, including a title.",
	RunE:  runConvert,
}

var (
	convertSourceFile string
	convertPresetName string
	convertKeyword    string
	convertOutputFile string
)

func init() {
	convertCmd.Flags().StringVarP(&convertSourceFile, "source", "s", "", "Path to the source blog post text file (required)")
	convertCmd.Flags().StringVarP(&convertPresetName, "preset", "p", "", "Business preset name in the preset directory (required)")
	convertCmd.Flags().StringVarP(&convertKeyword, "keyword", "k", "", "SEO keyword overriding the preset's keywords")
	convertCmd.Flags().StringVarP(&convertOutputFile, "out", "o", "", "Output file path (default: print to stdout)")

	if err := convertCmd.MarkFlagRequired("source"); err != nil {
		panic(fmt.Sprintf("failed to mark source flag as required: %v", err))
	}
	if err := convertCmd.MarkFlagRequired("preset"); err != nil {
		panic(fmt.Sprintf("failed to mark preset flag as required: %v", err))
	}

	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	source, err := os.ReadFile(convertSourceFile)
	if err != nil {
		return fmt.Errorf("failed to read source file: %w", err)
	}

	profile, err := preset.NewStore(cfg.PresetDir).Load(convertPresetName)
	if err != nil {
		return err
	}
	if convertKeyword != "" {
		profile = profile.WithKeywords(convertKeyword)
	}

	ctx := cmd.Context()
	client, err := newLLMClient(ctx, cfg)
	if err != nil {
		return err
	}
	defer client.Close()

	engine := convert.NewEngine(cfg, client, newRand(cfg))
	artifact, err := engine.Convert(ctx, string(source), profile)
	if err != nil {
		return err
	}

	if cfg.Verbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintFingerprint(analysis.NewAnalyzer().Analyze(string(source)))
		printer.PrintValidation(&artifact.Validation)
	}

	rendered := batch.RenderArtifact(artifact)
	if convertOutputFile == "" {
		fmt.Println(rendered)
		return nil
	}
	if dir := filepath.Dir(convertOutputFile); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(convertOutputFile, []byte(rendered), 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	fmt.Printf("저장 완료: %s\n", convertOutputFile)
	return nil
}
