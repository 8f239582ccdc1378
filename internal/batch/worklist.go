package batch

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/hyuklee/blogforge/internal/types"
)

// Work-list CSV column headers. The preset column is optional per row and
// may be absent from the file entirely.
const (
	columnSource  = "원본파일경로"
	columnKeyword = "키워드"
	columnPreset  = "프리셋파일"
)

// LoadWorklist parses a work-list CSV into work items. The file may start
// with a UTF-8 BOM (Excel exports do). Rows missing a source path or keyword,
// and rows whose source file does not exist, are skipped with a warning
// through warnf. Item indices follow data-row order.
func LoadWorklist(path string, warnf func(format string, args ...any)) ([]types.WorkItem, error) {
	if warnf == nil {
		warnf = func(string, ...any) {}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read work list %s: %w", path, err)
	}
	content := strings.TrimPrefix(string(data), "\uFEFF")

	reader := csv.NewReader(strings.NewReader(content))
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse work list %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("work list %s is empty", path)
	}

	columns := make(map[string]int)
	for i, name := range records[0] {
		columns[strings.TrimSpace(name)] = i
	}
	if _, ok := columns[columnSource]; !ok {
		return nil, fmt.Errorf("work list %s has no %s column", path, columnSource)
	}
	if _, ok := columns[columnKeyword]; !ok {
		return nil, fmt.Errorf("work list %s has no %s column", path, columnKeyword)
	}

	var items []types.WorkItem
	for idx, record := range records[1:] {
		source := field(record, columns, columnSource)
		keyword := field(record, columns, columnKeyword)
		if source == "" || keyword == "" {
			warnf("row %d missing source path or keyword, skipping", idx+1)
			continue
		}
		if _, err := os.Stat(source); err != nil {
			warnf("source file missing, skipping row %d: %s", idx+1, source)
			continue
		}
		items = append(items, types.WorkItem{
			Index:      idx,
			SourcePath: source,
			Keyword:    keyword,
			PresetFile: field(record, columns, columnPreset),
			Status:     types.StatusPending,
		})
	}
	return items, nil
}

func field(record []string, columns map[string]int, name string) string {
	i, ok := columns[name]
	if !ok || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}
