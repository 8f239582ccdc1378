package preset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyuklee/blogforge/internal/types"
)

func storeProfile() *types.BusinessProfile {
	return &types.BusinessProfile{
		Name:         "굴비명가 일산점",
		Address:      "경기 고양시 일산동구 중앙로 1",
		Features:     []string{"주차 가능"},
		OrderedItems: []types.MenuItem{{Name: "굴비정식", Price: "15,000원"}},
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store := NewStore(t.TempDir())

	path, err := store.Save(storeProfile(), "")
	require.NoError(t, err)
	assert.Equal(t, "굴비명가 일산점.json", filepath.Base(path))

	loaded, err := store.Load("굴비명가 일산점")
	require.NoError(t, err)
	assert.Equal(t, "굴비명가 일산점", loaded.Name)
	assert.Equal(t, "굴비명가", loaded.ShortName, "short name derived on load")
	assert.Equal(t, []types.MenuItem{{Name: "굴비정식", Price: "15,000원"}}, loaded.OrderedItems)
}

func TestLoadKeepsExplicitShortName(t *testing.T) {
	store := NewStore(t.TempDir())
	profile := storeProfile()
	profile.ShortName = "명가"

	_, err := store.Save(profile, "custom")
	require.NoError(t, err)

	loaded, err := store.Load("custom.json")
	require.NoError(t, err)
	assert.Equal(t, "명가", loaded.ShortName)
}

func TestLoadRejectsSchemaViolation(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)
	require.NotEmpty(t, store.schemaPath, "schema file must resolve from the package directory")

	bad := []byte(`{"name": "이름뿐", "address": "서울", "menu_items": [{"price": "5,000원"}]}`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.json"), bad, 0o644))

	_, err := store.Load("bad")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema validation failed")
}

func TestLoadRejectsInvalidProfile(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)

	// Schema-valid but missing the ordered menu the pipeline requires.
	noOrders := []byte(`{"name": "주문없는집", "address": "서울 강남구"}`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "noorders.json"), noOrders, 0o644))

	_, err := store.Load("noorders")
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	store := NewStore(t.TempDir())
	_, err := store.Load("없는파일")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestMissingSchemaOnlyWarns(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)
	store.schemaPath = ""

	var warned bool
	store.Warnf = func(string, ...any) { warned = true }

	_, err := store.Save(storeProfile(), "")
	require.NoError(t, err)
	_, err = store.Load("굴비명가 일산점")
	require.NoError(t, err)
	assert.True(t, warned)
}

func TestListSorted(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)

	for _, name := range []string{"b.json", "a.json", "ignore.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("{}"), 0o644))
	}

	names, err := store.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"a.json", "b.json"}, names)
}

func TestListMissingDirIsEmpty(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "none"))
	names, err := store.List()
	require.NoError(t, err)
	assert.Empty(t, names)
}
