// Package convert runs a single blog conversion end to end: style analysis,
// prompt assembly, body generation, marker repair, validation, and title
// generation. One Engine is shared across a batch run so title uniqueness
// holds run-wide.
package convert

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	"github.com/hyuklee/blogforge/internal/analysis"
	"github.com/hyuklee/blogforge/internal/config"
	"github.com/hyuklee/blogforge/internal/llm"
	"github.com/hyuklee/blogforge/internal/markers"
	"github.com/hyuklee/blogforge/internal/prompts"
	"github.com/hyuklee/blogforge/internal/selection"
	"github.com/hyuklee/blogforge/internal/types"
	"github.com/hyuklee/blogforge/internal/validation"
)

// Engine converts one source post into a post for a new business. It is not
// safe for concurrent use; batch runs call it sequentially.
type Engine struct {
	cfg       *config.Config
	client    llm.Client
	analyzer  *analysis.Analyzer
	builder   *prompts.Builder
	markers   *markers.Processor
	validator *validation.Validator
	rng       *rand.Rand

	issuedTitles map[string]struct{}
}

// NewEngine creates a conversion engine. rng drives feature down-selection
// and fallback title choice; a seeded source makes both reproducible.
func NewEngine(cfg *config.Config, client llm.Client, rng *rand.Rand) *Engine {
	selector := selection.NewSelector(cfg.FeatureSelectMin, cfg.FeatureSelectMax)
	return &Engine{
		cfg:          cfg,
		client:       client,
		analyzer:     analysis.NewAnalyzer(),
		builder:      prompts.NewBuilder(cfg, selector),
		markers:      markers.NewProcessor(),
		validator:    validation.NewValidator(cfg),
		rng:          rng,
		issuedTitles: make(map[string]struct{}),
	}
}

// Convert runs the full pipeline over one source text. The returned artifact
// carries the bare body; callers prefix the title line when writing it out.
// Body-generation failure returns an error and no partial artifact.
func (e *Engine) Convert(ctx context.Context, source string, profile *types.BusinessProfile) (*types.GeneratedArtifact, error) {
	if err := profile.Validate(); err != nil {
		return nil, &PipelineError{Stage: StageProfile, Cause: err}
	}

	fingerprint := e.analyzer.Analyze(source)
	prompt := e.builder.ConversionPrompt(source, fingerprint, profile, e.rng)

	body, err := e.client.Complete(ctx, prompt, llm.Params{
		Model:       e.cfg.Model,
		MaxTokens:   e.cfg.MaxTokens,
		Temperature: e.cfg.Temperature,
	})
	if err != nil {
		return nil, &PipelineError{Stage: StageGenerate, Cause: err}
	}
	body = strings.TrimSpace(body)
	body = e.markers.EnsureMarkers(body, profile)

	artifact := &types.GeneratedArtifact{
		Body:       body,
		Validation: e.validator.Validate(body, source, profile),
	}
	if len(profile.Keywords) > 0 {
		artifact.Title = e.GenerateTitle(ctx, profile.Keywords[0], profile)
	}
	return artifact, nil
}

// GenerateTitle produces a title for the keyword: one fully-validated LLM
// attempt, one length-only retry, then the deterministic template fallback.
// Title generation never fails the conversion.
func (e *Engine) GenerateTitle(ctx context.Context, keyword string, profile *types.BusinessProfile) string {
	prompt := e.builder.TitlePrompt(keyword, profile)

	if title, ok := e.titleAttempt(ctx, prompt); ok {
		if e.titleValid(title, keyword) {
			return e.issue(title)
		}
		// Retry relaxes to the length check only.
		if title, ok := e.titleAttempt(ctx, prompt); ok && e.lengthValid(title) {
			return e.issue(title)
		}
	}
	return e.issue(e.fallbackTitle(keyword, profile))
}

// titleAttempt makes one bounded title call. Timeouts and other errors both
// resolve to the fallback path, so they collapse into !ok here.
func (e *Engine) titleAttempt(ctx context.Context, prompt string) (string, bool) {
	raw, err := e.client.Complete(ctx, prompt, llm.Params{
		Model:       e.cfg.TitleModel,
		MaxTokens:   e.cfg.TitleMaxTokens,
		Temperature: e.cfg.TitleTemperature,
		Timeout:     e.cfg.TitleTimeout(),
	})
	if err != nil {
		return "", false
	}
	title := sanitizeTitle(raw)
	return title, title != ""
}

func (e *Engine) titleValid(title, keyword string) bool {
	if !e.lengthValid(title) {
		return false
	}
	if !strings.Contains(title, keyword) {
		return false
	}
	_, taken := e.issuedTitles[title]
	return !taken
}

func (e *Engine) lengthValid(title string) bool {
	n := len([]rune(title))
	return n >= e.cfg.TitleMinLen && n <= e.cfg.TitleMaxLen
}

func (e *Engine) issue(title string) string {
	e.issuedTitles[title] = struct{}{}
	return title
}

// fallbackTitle builds a template title when the model path is exhausted.
func (e *Engine) fallbackTitle(keyword string, profile *types.BusinessProfile) string {
	name := profile.TitleName()
	templates := []string{
		fmt.Sprintf("%s %s에서 든든한 한끼 식사", keyword, name),
		fmt.Sprintf("%s %s 방문 후기", keyword, name),
		fmt.Sprintf("%s 맛집 탐방 %s 추천", name, keyword),
		fmt.Sprintf("%s %s의 특별한 메뉴", keyword, name),
		fmt.Sprintf("%s에서 만난 %s의 맛", name, keyword),
	}
	title := templates[e.rng.Intn(len(templates))]
	if len([]rune(title)) > e.cfg.TitleMaxLen {
		title = fmt.Sprintf("%s %s 방문기", keyword, name)
	}
	return title
}

// sanitizeTitle keeps the first non-empty line of the completion and strips
// quoting the model tends to add.
func sanitizeTitle(raw string) string {
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		line = strings.Trim(line, `"'`)
		line = strings.TrimSpace(strings.TrimPrefix(line, "제목:"))
		if line != "" {
			return line
		}
	}
	return ""
}
