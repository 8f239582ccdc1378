package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/hyuklee/blogforge/internal/batch"
	"github.com/hyuklee/blogforge/internal/convert"
	"github.com/hyuklee/blogforge/internal/observability"
	"github.com/hyuklee/blogforge/internal/preset"
	"github.com/hyuklee/blogforge/internal/types"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Run a CSV work list of conversions",
	Long:  "Processes a CSV work list (원본파일경로, 키워드, 프리셋파일) sequentially, partitioning results per business into 성공/실패 directories. Ctrl-C stops after the current item.",
	RunE:  runBatch,
}

var (
	batchCSVFile       string
	batchDefaultPreset string
	batchDryRun        bool
)

func init() {
	batchCmd.Flags().StringVarP(&batchCSVFile, "csv", "c", "", "Path to the work-list CSV file (required)")
	batchCmd.Flags().StringVarP(&batchDefaultPreset, "preset", "p", "", "Default business preset for rows without one")
	batchCmd.Flags().BoolVar(&batchDryRun, "dry-run", false, "Load the work list and print the token estimate without calling the API")

	if err := batchCmd.MarkFlagRequired("csv"); err != nil {
		panic(fmt.Sprintf("failed to mark csv flag as required: %v", err))
	}

	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store := preset.NewStore(cfg.PresetDir)
	var defaultProfile *types.BusinessProfile
	if batchDefaultPreset != "" {
		defaultProfile, err = store.Load(batchDefaultPreset)
		if err != nil {
			return err
		}
	}

	ctx := cmd.Context()
	var orch *batch.Orchestrator
	if batchDryRun {
		orch = batch.NewOrchestrator(cfg, nil, store, defaultProfile)
	} else {
		client, err := newLLMClient(ctx, cfg)
		if err != nil {
			return err
		}
		defer client.Close()
		orch = batch.NewOrchestrator(cfg, convert.NewEngine(cfg, client, newRand(cfg)), store, defaultProfile)
	}

	count, err := orch.LoadCSV(batchCSVFile)
	if err != nil {
		return err
	}
	fmt.Printf("CSV 파일 로드 완료: %d개 항목\n", count)

	if batchDryRun {
		fmt.Printf("예상 토큰 사용량: 약 %d 토큰\n", orch.EstimateTokens())
		return nil
	}

	// First Ctrl-C finishes the current item, a second one kills the run.
	interrupts := make(chan os.Signal, 1)
	signal.Notify(interrupts, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(interrupts)
	go func() {
		<-interrupts
		fmt.Println("\n중지 요청됨, 현재 항목 완료 후 종료합니다...")
		orch.Stop()
	}()

	orch.Progress = func(done, total int) {
		fmt.Printf("진행: %d/%d\n", done, total)
	}
	orch.Status = func(index int, status types.ItemStatus, message string) {
		fmt.Printf("  [%d] %s: %s\n", index, status, message)
	}

	summary, err := orch.Run(ctx)
	if err != nil {
		return err
	}
	observability.NewPrinter(os.Stdout).PrintRunSummary(summary)
	return nil
}
