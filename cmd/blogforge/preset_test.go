package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyuklee/blogforge/internal/config"
	"github.com/hyuklee/blogforge/internal/preset"
)

func writeTestConfig(t *testing.T, presetDir string) {
	t.Helper()
	dir := t.TempDir()
	cfg := config.Default()
	cfg.PresetDir = presetDir
	path := filepath.Join(dir, "blogforge.json")
	require.NoError(t, cfg.Save(path))

	previous := configPath
	configPath = path
	t.Cleanup(func() { configPath = previous })
}

func TestPresetImportAndList(t *testing.T) {
	presetDir := filepath.Join(t.TempDir(), "업체정보")
	writeTestConfig(t, presetDir)

	document := filepath.Join(t.TempDir(), "doc.txt")
	require.NoError(t, os.WriteFile(document, []byte(
		"**업체명**\n굴비명가 일산점\n\n**주소**\n경기 고양시 일산동구 중앙로 1\n\n**메뉴**\n- 굴비정식 15,000원\n\n**특징**\n정갈한 한상차림\n"), 0o644))

	presetImportName = ""
	require.NoError(t, runPresetImport(nil, []string{document}))

	names, err := preset.NewStore(presetDir).List()
	require.NoError(t, err)
	assert.Equal(t, []string{"굴비명가 일산점.json"}, names)

	profile, err := preset.NewStore(presetDir).Load("굴비명가 일산점")
	require.NoError(t, err)
	assert.Equal(t, "굴비명가", profile.ShortName)
	require.Len(t, profile.MenuItems, 1)
	assert.Equal(t, "굴비정식", profile.MenuItems[0].Name)
	assert.Equal(t, []string{"정갈한 한상차림"}, profile.Features)
}

func TestPresetImportRejectsBadDocument(t *testing.T) {
	writeTestConfig(t, filepath.Join(t.TempDir(), "업체정보"))

	document := filepath.Join(t.TempDir(), "doc.txt")
	require.NoError(t, os.WriteFile(document, []byte("섹션 없는 내용\n"), 0o644))

	assert.Error(t, runPresetImport(nil, []string{document}))
}
