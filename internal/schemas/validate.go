// Package schemas validates JSON documents against the JSON Schema files
// shipped under schemas/ at the repository root.
package schemas

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// PresetSchemaFile is the repo-relative path of the business-preset schema.
const PresetSchemaFile = "schemas/preset.schema.json"

// ResolvePath finds a schema file by trying the path relative to the current
// working directory, then one and two levels up. Commands and tests run from
// different directories; this keeps the schema findable from all of them.
// Returns "" when no candidate exists.
func ResolvePath(relative string) string {
	candidates := []string{
		relative,
		filepath.Join("..", relative),
		filepath.Join("..", "..", relative),
	}
	for _, candidate := range candidates {
		abs, err := filepath.Abs(candidate)
		if err != nil {
			continue
		}
		if _, err := os.Stat(abs); err == nil {
			return abs
		}
	}
	return ""
}

// FieldError is a single schema violation at one field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError reports every violation found in a document.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("schema validation failed:\n")
	for i, fieldErr := range e.Errors {
		fmt.Fprintf(&sb, "  %d. %s: %s\n", i+1, fieldErr.Field, fieldErr.Message)
	}
	return sb.String()
}

// LoadError means the schema itself could not be loaded or parsed. Callers
// that treat the schema as advisory downgrade this to a warning.
type LoadError struct {
	Path  string
	Cause error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load schema %s: %v", e.Path, e.Cause)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// ValidateDocument validates raw JSON bytes against the schema at schemaPath.
func ValidateDocument(schemaPath string, document []byte) error {
	abs, err := filepath.Abs(schemaPath)
	if err != nil {
		return &LoadError{Path: schemaPath, Cause: err}
	}
	if _, err := os.Stat(abs); err != nil {
		return &LoadError{Path: abs, Cause: err}
	}

	schemaLoader := gojsonschema.NewReferenceLoader("file://" + abs)
	documentLoader := gojsonschema.NewBytesLoader(document)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return &LoadError{Path: abs, Cause: err}
	}
	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{Errors: make([]FieldError, 0, len(result.Errors()))}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}
	return validationErr
}
