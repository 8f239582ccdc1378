// Package batch drives CSV work lists through the conversion engine: one
// item at a time, with per-item retry, per-business output partitioning,
// and pause/stop control from another goroutine.
package batch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync/atomic"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/google/uuid"

	"github.com/hyuklee/blogforge/internal/config"
	"github.com/hyuklee/blogforge/internal/convert"
	"github.com/hyuklee/blogforge/internal/preset"
	"github.com/hyuklee/blogforge/internal/types"
)

// tokensPerItem is the rough per-item token budget used by the dry-run
// estimate: prompt plus completion for the body, plus the title call.
const tokensPerItem = 3500

// pausePoll is how often a paused run rechecks its flags.
const pausePoll = 200 * time.Millisecond

// timestampLayout names run directories and log files.
const timestampLayout = "20060102_150405"

// Orchestrator runs a loaded work list sequentially on the calling
// goroutine. Stop, Pause, and Resume are safe to call from other
// goroutines; everything else is single-threaded.
type Orchestrator struct {
	cfg            *config.Config
	engine         *convert.Engine
	presets        *preset.Store
	defaultProfile *types.BusinessProfile

	items     []types.WorkItem
	stopFlag  atomic.Bool
	pauseFlag atomic.Bool

	// Progress receives (processed, total) after each finished item.
	Progress func(done, total int)
	// Status receives per-item state transitions with a short message.
	Status func(index int, status types.ItemStatus, message string)
}

// NewOrchestrator creates a batch orchestrator. defaultProfile backs items
// without a preset reference and may be nil when every row names a preset.
func NewOrchestrator(cfg *config.Config, engine *convert.Engine, presets *preset.Store, defaultProfile *types.BusinessProfile) *Orchestrator {
	return &Orchestrator{
		cfg:            cfg,
		engine:         engine,
		presets:        presets,
		defaultProfile: defaultProfile,
	}
}

// LoadCSV loads the work list and returns the number of runnable items.
func (o *Orchestrator) LoadCSV(path string) (int, error) {
	items, err := LoadWorklist(path, func(format string, args ...any) {
		fmt.Printf("경고: "+format+"\n", args...)
	})
	if err != nil {
		return 0, err
	}
	o.items = items
	return len(items), nil
}

// Items returns a snapshot of the work items and their current state.
func (o *Orchestrator) Items() []types.WorkItem {
	return append([]types.WorkItem(nil), o.items...)
}

// EstimateTokens returns the dry-run API usage estimate for the loaded list.
func (o *Orchestrator) EstimateTokens() int {
	return len(o.items) * tokensPerItem
}

// Stop makes the run finish the current item and then end.
func (o *Orchestrator) Stop() { o.stopFlag.Store(true) }

// Pause holds the run before the next item until Resume or Stop.
func (o *Orchestrator) Pause() { o.pauseFlag.Store(true) }

// Resume releases a paused run.
func (o *Orchestrator) Resume() { o.pauseFlag.Store(false) }

// Run processes every loaded item and writes the partitioned outputs. A
// stopped or cancelled run still writes the failed-item CSVs and summaries
// for the work done so far.
func (o *Orchestrator) Run(ctx context.Context) (*types.RunSummary, error) {
	if len(o.items) == 0 {
		return nil, errors.New("no work items loaded")
	}

	timestamp := time.Now().Format(timestampLayout)
	runLog, err := OpenRunLog(o.cfg.OutputDir, timestamp)
	if err != nil {
		return nil, err
	}
	defer runLog.Close()
	o.presets.Warnf = runLog.Warnf

	defaultProfile, err := o.resolveDefaultProfile(runLog)
	if err != nil {
		return nil, err
	}

	total := len(o.items)
	runLog.Infof("처리 시작: 총 %d개 항목", total)

	cache := make(map[string]*types.BusinessProfile)
	dirs := make(map[string]businessDirs)
	businessOf := make([]string, total)
	processed := 0
	successCount := 0

	for i := range o.items {
		item := &o.items[i]

		if o.waitWhilePaused(ctx); o.stopFlag.Load() || ctx.Err() != nil {
			runLog.Infof("사용자에 의해 중지됨")
			break
		}

		profile := o.profileFor(item, defaultProfile, cache, runLog)
		businessOf[i] = profile.Name
		businessDir, err := o.ensureDirs(dirs, profile.Name, timestamp)
		if err != nil {
			item.Status = types.StatusFailed
			item.ErrorMessage = err.Error()
			o.notify(item.Index, types.StatusFailed, truncate(err.Error(), 50))
			runLog.Errorf("출력 폴더 생성 실패: %s - %v", profile.Name, err)
		} else {
			o.runItem(ctx, item, profile, businessDir, runLog)
		}
		if item.Status == types.StatusSuccess {
			successCount++
		}

		processed++
		if o.Progress != nil {
			o.Progress(processed, total)
		}
		if processed < total {
			o.sleep(ctx, o.cfg.APIDelay())
		}
	}

	summary := o.writeRunOutputs(dirs, businessOf, timestamp, runLog)
	runLog.Infof("처리 완료: 성공 %d/%d", successCount, total)
	return summary, nil
}

// resolveDefaultProfile picks the profile for preset-less rows: the
// configured one, else the first row's preset. A preset that fails to load
// here is fatal, since nothing can back it up.
func (o *Orchestrator) resolveDefaultProfile(runLog *RunLog) (*types.BusinessProfile, error) {
	if o.defaultProfile != nil {
		return o.defaultProfile, nil
	}
	first := o.items[0]
	if first.PresetFile == "" {
		return nil, errors.New("no default business profile and the first row names no preset")
	}
	profile, err := o.presets.Load(first.PresetFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load default preset: %w", err)
	}
	runLog.Infof("기본 업체 정보: %s (%s)", profile.Name, first.PresetFile)
	return profile, nil
}

// profileFor resolves the item's business profile through the preset cache.
// A preset that fails to load falls back to the default profile, and the
// failure is cached so it is reported once per file, not once per row.
func (o *Orchestrator) profileFor(item *types.WorkItem, defaultProfile *types.BusinessProfile, cache map[string]*types.BusinessProfile, runLog *RunLog) *types.BusinessProfile {
	if item.PresetFile == "" {
		return defaultProfile
	}
	if cached, ok := cache[item.PresetFile]; ok {
		return cached
	}
	profile, err := o.presets.Load(item.PresetFile)
	if err != nil {
		runLog.Warnf("프리셋 로드 실패 (%s): %v", item.PresetFile, err)
		profile = defaultProfile
	}
	cache[item.PresetFile] = profile
	return profile
}

func (o *Orchestrator) ensureDirs(dirs map[string]businessDirs, business, timestamp string) (businessDirs, error) {
	if existing, ok := dirs[business]; ok {
		return existing, nil
	}
	created, err := makeBusinessDirs(o.cfg.OutputDir, business, timestamp)
	if err != nil {
		return businessDirs{}, err
	}
	dirs[business] = created
	return created, nil
}

// runItem converts one item with per-attempt retry and writes its artifact.
// The item ends up in StatusSuccess or StatusFailed; the work list row is
// never lost.
func (o *Orchestrator) runItem(ctx context.Context, item *types.WorkItem, profile *types.BusinessProfile, dirs businessDirs, runLog *RunLog) {
	itemProfile := profile.WithKeywords(item.Keyword)

	item.Status = types.StatusProcessing
	o.notify(item.Index, types.StatusProcessing, "변환 중...")
	start := time.Now()

	err := retry.Do(
		func() error {
			source, err := os.ReadFile(item.SourcePath)
			if err != nil {
				return fmt.Errorf("failed to read source %s: %w", item.SourcePath, err)
			}
			artifact, err := o.engine.Convert(ctx, string(source), itemProfile)
			if err != nil {
				return err
			}
			path, err := writeArtifact(dirs, profile.Name, item.Keyword, artifact)
			if err != nil {
				return err
			}
			item.Result = RenderArtifact(artifact)
			item.OutputPath = path
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(uint(o.cfg.MaxRetries)),
		retry.Delay(o.cfg.RetryDelay()),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(attempt uint, err error) {
			item.RetryCount = int(attempt) + 1
			runLog.Warnf("재시도 %d/%d: %s - %v", item.RetryCount, o.cfg.MaxRetries, item.Keyword, err)
		}),
	)

	item.ElapsedSeconds = time.Since(start).Seconds()
	if err != nil {
		item.Status = types.StatusFailed
		item.ErrorMessage = err.Error()
		o.notify(item.Index, types.StatusFailed, truncate(err.Error(), 50))
		runLog.Errorf("실패: %s - %v", item.Keyword, err)
		return
	}
	item.Status = types.StatusSuccess
	o.notify(item.Index, types.StatusSuccess, fmt.Sprintf("완료 (%.1f초)", item.ElapsedSeconds))
	runLog.Infof("성공: %s_%s.txt", profile.Name, item.Keyword)
}

// writeRunOutputs writes failed_items.csv and summary.json per business and
// assembles the aggregate run summary. Output problems at this stage are
// logged, not fatal; the conversions themselves already happened.
func (o *Orchestrator) writeRunOutputs(dirs map[string]businessDirs, businessOf []string, timestamp string, runLog *RunLog) *types.RunSummary {
	summary := &types.RunSummary{
		RunID:      uuid.NewString(),
		Total:      len(o.items),
		ByBusiness: make(map[string]types.BusinessSummary),
		Timestamp:  timestamp,
	}

	failedOf := make(map[string][]types.WorkItem)
	for i, item := range o.items {
		business := businessOf[i]
		if business == "" {
			continue // never reached before a stop
		}
		perBusiness := summary.ByBusiness[business]
		perBusiness.BusinessName = business
		perBusiness.Timestamp = timestamp
		perBusiness.Total++
		switch item.Status {
		case types.StatusSuccess:
			perBusiness.Success++
			summary.Success++
		case types.StatusFailed:
			perBusiness.Failed++
			summary.Failed++
			failedOf[business] = append(failedOf[business], item)
		}
		summary.ByBusiness[business] = perBusiness
	}

	for business, businessDir := range dirs {
		if failed := failedOf[business]; len(failed) > 0 {
			if err := writeFailedItems(businessDir, failed); err != nil {
				runLog.Errorf("실패 목록 저장 오류 (%s): %v", business, err)
			}
		}
		if err := writeBusinessSummary(businessDir, summary.ByBusiness[business]); err != nil {
			runLog.Errorf("요약 저장 오류 (%s): %v", business, err)
		}
	}
	return summary
}

// waitWhilePaused blocks while the pause flag is set. Stop and context
// cancellation both break the wait.
func (o *Orchestrator) waitWhilePaused(ctx context.Context) {
	for o.pauseFlag.Load() && !o.stopFlag.Load() && ctx.Err() == nil {
		time.Sleep(pausePoll)
	}
}

// sleep is the inter-item throttle, cut short by cancellation.
func (o *Orchestrator) sleep(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	select {
	case <-ctx.Done():
	case <-time.After(d):
	}
}

func (o *Orchestrator) notify(index int, status types.ItemStatus, message string) {
	if o.Status != nil {
		o.Status(index, status, message)
	}
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
