// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values fall back to Default().
type Config struct {
	// Generation
	APIKey      string  `json:"api_key,omitempty"`     // OpenAI (or Gemini) API key
	Provider    string  `json:"provider,omitempty"`    // "openai" (default) or "gemini"
	Model       string  `json:"model,omitempty"`       // body-generation model
	TitleModel  string  `json:"title_model,omitempty"` // title-generation model
	MaxTokens   int     `json:"max_tokens,omitempty"`
	Temperature float64 `json:"temperature,omitempty"`

	// Body length targets. "Characters" means runes with spaces and newlines removed.
	MinChars    int `json:"min_chars,omitempty"`
	MaxChars    int `json:"max_chars,omitempty"`
	TargetChars int `json:"target_chars,omitempty"`

	// Validation thresholds
	CharDeviationLimit int `json:"char_deviation_limit,omitempty"` // max |generated - source|
	KeywordMin         int `json:"keyword_min,omitempty"`          // inclusive keyword-occurrence range
	KeywordMax         int `json:"keyword_max,omitempty"`

	// Feature selection
	FeatureSelectMin  int    `json:"feature_select_min,omitempty"`
	FeatureSelectMax  int    `json:"feature_select_max,omitempty"`
	FeatureSelectSeed *int64 `json:"feature_select_seed,omitempty"` // nil → non-deterministic

	// Title constraints (runes)
	TitleMinLen      int     `json:"title_min_len,omitempty"`
	TitleMaxLen      int     `json:"title_max_len,omitempty"`
	TitleMaxTokens   int     `json:"title_max_tokens,omitempty"`
	TitleTemperature float64 `json:"title_temperature,omitempty"`
	TitleTimeoutSecs int     `json:"title_timeout_secs,omitempty"`

	// Batch behavior
	OutputDir      string `json:"output_dir,omitempty"`
	PresetDir      string `json:"preset_dir,omitempty"`
	MaxRetries     int    `json:"max_retries,omitempty"`
	RetryDelaySecs int    `json:"retry_delay_secs,omitempty"`
	APIDelaySecs   int    `json:"api_delay_secs,omitempty"`

	Verbose bool `json:"verbose,omitempty"`
}

// Default returns the configuration defaults. The numeric thresholds mirror
// the production presets the pipeline was tuned with; all of them may be
// overridden from the config file.
func Default() *Config {
	return &Config{
		Provider:    "openai",
		Model:       "gpt-4.1",
		TitleModel:  "gpt-4.1",
		MaxTokens:   4096,
		Temperature: 0.7,

		MinChars:    1200,
		MaxChars:    1500,
		TargetChars: 1350,

		CharDeviationLimit: 200,
		KeywordMin:         5,
		KeywordMax:         10,

		FeatureSelectMin: 7,
		FeatureSelectMax: 8,

		TitleMinLen:      20,
		TitleMaxLen:      40,
		TitleMaxTokens:   100,
		TitleTemperature: 0.8,
		TitleTimeoutSecs: 3,

		OutputDir:      "output",
		PresetDir:      "업체정보",
		MaxRetries:     3,
		RetryDelaySecs: 5,
		APIDelaySecs:   2,
	}
}

// TitleTimeout returns the per-call deadline for title generation.
func (c *Config) TitleTimeout() time.Duration {
	return time.Duration(c.TitleTimeoutSecs) * time.Second
}

// RetryDelay returns the backoff delay between retries of a failed item.
func (c *Config) RetryDelay() time.Duration {
	return time.Duration(c.RetryDelaySecs) * time.Second
}

// APIDelay returns the throttle delay between successive completed items.
func (c *Config) APIDelay() time.Duration {
	return time.Duration(c.APIDelaySecs) * time.Second
}

// Load loads configuration from a JSON file and fills unset fields from
// Default(). A missing file is not an error; the defaults are returned.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var file Config
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	cfg.merge(&file)
	return cfg, nil
}

// Save persists the configuration as indented JSON, creating the parent
// directory when needed. The API key is included, so the file is written
// owner-readable only.
func (c *Config) Save(path string) error {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// merge overlays non-zero values from file onto c.
func (c *Config) merge(file *Config) {
	if file.APIKey != "" {
		c.APIKey = file.APIKey
	}
	if file.Provider != "" {
		c.Provider = file.Provider
	}
	if file.Model != "" {
		c.Model = file.Model
	}
	if file.TitleModel != "" {
		c.TitleModel = file.TitleModel
	}
	if file.MaxTokens > 0 {
		c.MaxTokens = file.MaxTokens
	}
	if file.Temperature > 0 {
		c.Temperature = file.Temperature
	}
	if file.MinChars > 0 {
		c.MinChars = file.MinChars
	}
	if file.MaxChars > 0 {
		c.MaxChars = file.MaxChars
	}
	if file.TargetChars > 0 {
		c.TargetChars = file.TargetChars
	}
	if file.CharDeviationLimit > 0 {
		c.CharDeviationLimit = file.CharDeviationLimit
	}
	if file.KeywordMin > 0 {
		c.KeywordMin = file.KeywordMin
	}
	if file.KeywordMax > 0 {
		c.KeywordMax = file.KeywordMax
	}
	if file.FeatureSelectMin > 0 {
		c.FeatureSelectMin = file.FeatureSelectMin
	}
	if file.FeatureSelectMax > 0 {
		c.FeatureSelectMax = file.FeatureSelectMax
	}
	if file.FeatureSelectSeed != nil {
		c.FeatureSelectSeed = file.FeatureSelectSeed
	}
	if file.TitleMinLen > 0 {
		c.TitleMinLen = file.TitleMinLen
	}
	if file.TitleMaxLen > 0 {
		c.TitleMaxLen = file.TitleMaxLen
	}
	if file.TitleMaxTokens > 0 {
		c.TitleMaxTokens = file.TitleMaxTokens
	}
	if file.TitleTemperature > 0 {
		c.TitleTemperature = file.TitleTemperature
	}
	if file.TitleTimeoutSecs > 0 {
		c.TitleTimeoutSecs = file.TitleTimeoutSecs
	}
	if file.OutputDir != "" {
		c.OutputDir = file.OutputDir
	}
	if file.PresetDir != "" {
		c.PresetDir = file.PresetDir
	}
	if file.MaxRetries > 0 {
		c.MaxRetries = file.MaxRetries
	}
	if file.RetryDelaySecs > 0 {
		c.RetryDelaySecs = file.RetryDelaySecs
	}
	if file.APIDelaySecs > 0 {
		c.APIDelaySecs = file.APIDelaySecs
	}
	if file.Verbose {
		c.Verbose = true
	}
}

// Validate checks that the configuration has a coherent set of values.
func (c *Config) Validate() error {
	if c.MinChars > c.MaxChars {
		return fmt.Errorf("config error: 'min_chars' (%d) exceeds 'max_chars' (%d)", c.MinChars, c.MaxChars)
	}
	if c.TargetChars < c.MinChars || c.TargetChars > c.MaxChars {
		return fmt.Errorf("config error: 'target_chars' (%d) outside [%d, %d]", c.TargetChars, c.MinChars, c.MaxChars)
	}
	if c.FeatureSelectMin > c.FeatureSelectMax {
		return fmt.Errorf("config error: 'feature_select_min' (%d) exceeds 'feature_select_max' (%d)", c.FeatureSelectMin, c.FeatureSelectMax)
	}
	if c.KeywordMin > c.KeywordMax {
		return fmt.Errorf("config error: 'keyword_min' (%d) exceeds 'keyword_max' (%d)", c.KeywordMin, c.KeywordMax)
	}
	if c.TitleMinLen > c.TitleMaxLen {
		return fmt.Errorf("config error: 'title_min_len' (%d) exceeds 'title_max_len' (%d)", c.TitleMinLen, c.TitleMaxLen)
	}
	if c.MaxRetries < 0 {
		return fmt.Errorf("config error: 'max_retries' must be non-negative")
	}
	return nil
}
