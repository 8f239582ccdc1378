// Package prompts builds the generation and title prompts from the style
// fingerprint, the business profile, and the selected features. Static
// template fragments live in embedded JSON files; dynamic sections are
// assembled around them.
package prompts

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
)

//go:embed *.json
var templateFiles embed.FS

var (
	templates     map[string]string
	templatesOnce sync.Once
)

// loadTemplates reads every embedded template file into one key space.
// Keys are unique across files; a duplicate is a programming error.
func loadTemplates() {
	templates = make(map[string]string)
	entries, err := templateFiles.ReadDir(".")
	if err != nil {
		panic(fmt.Sprintf("failed to read embedded prompt templates: %v", err))
	}
	for _, entry := range entries {
		data, err := templateFiles.ReadFile(entry.Name())
		if err != nil {
			panic(fmt.Sprintf("failed to read prompt template %s: %v", entry.Name(), err))
		}
		var file map[string]string
		if err := json.Unmarshal(data, &file); err != nil {
			panic(fmt.Sprintf("failed to parse prompt template %s: %v", entry.Name(), err))
		}
		for key, value := range file {
			if _, exists := templates[key]; exists {
				panic(fmt.Sprintf("duplicate prompt template key %q", key))
			}
			templates[key] = value
		}
	}
}

// tmpl returns the named template fragment, panicking when it is missing:
// templates are compiled in, so a miss can only be a typo.
func tmpl(key string) string {
	templatesOnce.Do(loadTemplates)
	value, exists := templates[key]
	if !exists {
		panic(fmt.Sprintf("prompt template %q not found", key))
	}
	return value
}

// fill substitutes {{.Key}} placeholders in a template fragment.
func fill(template string, data map[string]string) string {
	result := template
	for key, value := range data {
		result = strings.ReplaceAll(result, fmt.Sprintf("{{.%s}}", key), value)
	}
	return result
}
