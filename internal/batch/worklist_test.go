package batch

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoadWorklist(t *testing.T) {
	dir := t.TempDir()
	sourceA := filepath.Join(dir, "a.txt")
	sourceB := filepath.Join(dir, "b.txt")
	writeFile(t, sourceA, "본문 A")
	writeFile(t, sourceB, "본문 B")

	csvPath := filepath.Join(dir, "work.csv")
	writeFile(t, csvPath, "\uFEFF원본파일경로,키워드,프리셋파일\n"+
		sourceA+",일산 맛집,굴비명가.json\n"+
		sourceB+",강남 분식,\n"+
		",키워드만,\n"+
		sourceA+",,\n"+
		filepath.Join(dir, "missing.txt")+",없는 파일,\n")

	var warnings int
	items, err := LoadWorklist(csvPath, func(string, ...any) { warnings++ })
	require.NoError(t, err)

	require.Len(t, items, 2)
	assert.Equal(t, 0, items[0].Index)
	assert.Equal(t, sourceA, items[0].SourcePath)
	assert.Equal(t, "일산 맛집", items[0].Keyword)
	assert.Equal(t, "굴비명가.json", items[0].PresetFile)
	assert.Equal(t, 1, items[1].Index)
	assert.Empty(t, items[1].PresetFile)
	assert.Equal(t, 3, warnings, "two incomplete rows plus the missing source file")
}

func TestLoadWorklistWithoutPresetColumn(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "a.txt")
	writeFile(t, source, "본문")

	csvPath := filepath.Join(dir, "work.csv")
	writeFile(t, csvPath, "원본파일경로,키워드\n"+source+",목포 맛집\n")

	items, err := LoadWorklist(csvPath, nil)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Empty(t, items[0].PresetFile)
}

func TestLoadWorklistMissingColumns(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "work.csv")
	writeFile(t, csvPath, "경로,키워드\n/tmp/x.txt,키워드\n")

	_, err := LoadWorklist(csvPath, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "원본파일경로")
}

func TestLoadWorklistMissingFile(t *testing.T) {
	_, err := LoadWorklist(filepath.Join(t.TempDir(), "none.csv"), nil)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
