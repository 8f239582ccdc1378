package batch

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hyuklee/blogforge/internal/types"
)

// Per-business output subdirectories.
const (
	successDirName = "성공"
	failedDirName  = "실패"
)

// businessDirs is the success/failed directory pair for one business within
// a run.
type businessDirs struct {
	success string
	failed  string
}

// makeBusinessDirs creates {base}/{business}_{timestamp}/{성공,실패} and
// returns the pair.
func makeBusinessDirs(base, business, timestamp string) (businessDirs, error) {
	root := filepath.Join(base, fmt.Sprintf("%s_%s", business, timestamp))
	dirs := businessDirs{
		success: filepath.Join(root, successDirName),
		failed:  filepath.Join(root, failedDirName),
	}
	for _, dir := range []string{dirs.success, dirs.failed} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return businessDirs{}, fmt.Errorf("failed to create output directory %s: %w", dir, err)
		}
	}
	return dirs, nil
}

// RenderArtifact assembles the text written to disk: the title line, a blank
// line, then the body. An artifact without a title is just the body.
func RenderArtifact(artifact *types.GeneratedArtifact) string {
	if artifact.Title == "" {
		return artifact.Body
	}
	return "제목:" + artifact.Title + "\n\n" + artifact.Body
}

// writeArtifact writes one successful result as {business}_{keyword}.txt in
// the business's success directory.
func writeArtifact(dirs businessDirs, business, keyword string, artifact *types.GeneratedArtifact) (string, error) {
	path := filepath.Join(dirs.success, fmt.Sprintf("%s_%s.txt", business, keyword))
	if err := os.WriteFile(path, []byte(RenderArtifact(artifact)), 0o644); err != nil {
		return "", fmt.Errorf("failed to write result %s: %w", path, err)
	}
	return path, nil
}

// writeFailedItems writes the business's failed rows as a CSV that can be
// re-fed to a later run after fixing the cause.
func writeFailedItems(dirs businessDirs, items []types.WorkItem) error {
	path := filepath.Join(dirs.failed, "failed_items.csv")
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write([]string{columnSource, columnKeyword, columnPreset, "에러메시지"}); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	for _, item := range items {
		record := []string{item.SourcePath, item.Keyword, item.PresetFile, item.ErrorMessage}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
	}
	writer.Flush()
	return writer.Error()
}

// writeBusinessSummary writes summary.json next to the success/failed pair.
func writeBusinessSummary(dirs businessDirs, summary types.BusinessSummary) error {
	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode summary for %s: %w", summary.BusinessName, err)
	}
	path := filepath.Join(filepath.Dir(dirs.success), "summary.json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
