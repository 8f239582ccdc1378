package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hyuklee/blogforge/internal/parsing"
	"github.com/hyuklee/blogforge/internal/preset"
)

var presetCmd = &cobra.Command{
	Use:   "preset",
	Short: "Manage business presets",
	Long:  "Lists, shows, and imports the business presets used by convert and batch runs.",
}

var presetListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved presets",
	RunE:  runPresetList,
}

var presetShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Print one preset as JSON",
	Args:  cobra.ExactArgs(1),
	RunE:  runPresetShow,
}

var presetImportCmd = &cobra.Command{
	Use:   "import <document>",
	Short: "Import a free-form business-info document as a preset",
	Long:  "Parses a business-info text document (**섹션** headers, menu lines with prices) and saves it as a JSON preset.",
	Args:  cobra.ExactArgs(1),
	RunE:  runPresetImport,
}

var presetImportName string

func init() {
	presetImportCmd.Flags().StringVar(&presetImportName, "name", "", "Preset file name (default: the business name)")

	presetCmd.AddCommand(presetListCmd)
	presetCmd.AddCommand(presetShowCmd)
	presetCmd.AddCommand(presetImportCmd)
	rootCmd.AddCommand(presetCmd)
}

func runPresetList(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	names, err := preset.NewStore(cfg.PresetDir).List()
	if err != nil {
		return err
	}
	if len(names) == 0 {
		fmt.Printf("저장된 프리셋이 없습니다 (%s)\n", cfg.PresetDir)
		return nil
	}
	for _, name := range names {
		fmt.Println(name)
	}
	return nil
}

func runPresetShow(_ *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	profile, err := preset.NewStore(cfg.PresetDir).Load(args[0])
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode preset: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func runPresetImport(_ *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	document, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read document: %w", err)
	}

	profile, err := parsing.ParseProfile(string(document))
	if err != nil {
		return err
	}

	path, err := preset.NewStore(cfg.PresetDir).Save(profile, presetImportName)
	if err != nil {
		return err
	}
	fmt.Printf("프리셋 저장 완료: %s\n", path)
	return nil
}
