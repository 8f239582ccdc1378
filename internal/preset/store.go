// Package preset stores business profiles as JSON files in a preset
// directory, one file per business. Loaded presets are schema-checked
// before they are trusted.
package preset

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hyuklee/blogforge/internal/schemas"
	"github.com/hyuklee/blogforge/internal/types"
)

// Store reads and writes business presets under one directory.
type Store struct {
	dir        string
	schemaPath string

	// Warnf receives non-fatal problems, e.g. a missing schema file.
	Warnf func(format string, args ...any)
}

// NewStore creates a preset store rooted at dir. The directory is created
// on first Save, not here.
func NewStore(dir string) *Store {
	return &Store{
		dir:        dir,
		schemaPath: schemas.ResolvePath(schemas.PresetSchemaFile),
		Warnf:      func(string, ...any) {},
	}
}

// Load reads one preset by file name (with or without the .json extension).
// A missing short name is derived from the business name. Schema violations
// and profile-invariant failures are load errors; an unresolvable schema
// file only warns.
func (s *Store) Load(name string) (*types.BusinessProfile, error) {
	path := filepath.Join(s.dir, ensureJSONExt(name))
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read preset %s: %w", path, err)
	}

	if err := s.checkSchema(data); err != nil {
		return nil, fmt.Errorf("preset %s: %w", path, err)
	}

	var profile types.BusinessProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to parse preset %s: %w", path, err)
	}

	if profile.ShortName == "" && profile.Name != "" {
		profile.ShortName = types.DeriveShortName(profile.Name)
	}
	if err := profile.Validate(); err != nil {
		return nil, fmt.Errorf("preset %s: %w", path, err)
	}
	return &profile, nil
}

// Save writes the profile to {dir}/{name}.json, creating the directory as
// needed. An explicit fileName overrides the default naming.
func (s *Store) Save(profile *types.BusinessProfile, fileName string) (string, error) {
	if err := profile.Validate(); err != nil {
		return "", err
	}
	if fileName == "" {
		fileName = profile.Name + ".json"
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create preset directory %s: %w", s.dir, err)
	}

	data, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode preset %s: %w", profile.Name, err)
	}
	path := filepath.Join(s.dir, ensureJSONExt(fileName))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write preset %s: %w", path, err)
	}
	return path, nil
}

// List returns the preset file names in the store directory, sorted. A
// missing directory is an empty store, not an error.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list presets in %s: %w", s.dir, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return names, nil
}

// checkSchema validates raw preset bytes. Schema-load problems downgrade to
// a warning so a misplaced schema file never blocks a batch run.
func (s *Store) checkSchema(data []byte) error {
	if s.schemaPath == "" {
		s.Warnf("preset schema %s not found, skipping schema check", schemas.PresetSchemaFile)
		return nil
	}
	err := schemas.ValidateDocument(s.schemaPath, data)
	var loadErr *schemas.LoadError
	if errors.As(err, &loadErr) {
		s.Warnf("preset schema unusable, skipping schema check: %v", loadErr)
		return nil
	}
	return err
}

func ensureJSONExt(name string) string {
	if strings.HasSuffix(name, ".json") {
		return name
	}
	return name + ".json"
}
