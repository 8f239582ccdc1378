// Package validation computes the quality metrics over a generated post:
// length against the source, SEO keyword density, and repeated sentences.
// Validation never fails a conversion on its own; the report travels with
// the artifact so callers can decide.
package validation

import (
	"regexp"
	"strings"

	"github.com/hyuklee/blogforge/internal/analysis"
	"github.com/hyuklee/blogforge/internal/config"
	"github.com/hyuklee/blogforge/internal/types"
)

// Sentences shorter than this many runes are ignored by the repetition
// check; short connective sentences repeat naturally.
const repetitionMinRunes = 20

var sentenceBoundary = regexp.MustCompile(`[.!?]\s*`)

// Validator checks a generated body against its source and business profile.
type Validator struct {
	cfg *config.Config
}

// NewValidator creates a result validator with the given limits.
func NewValidator(cfg *config.Config) *Validator {
	return &Validator{cfg: cfg}
}

// Validate builds the report for one generated body. The body is the bare
// text, before any title line is prefixed.
func (v *Validator) Validate(body, source string, profile *types.BusinessProfile) types.ValidationReport {
	report := types.ValidationReport{
		CharCount:     analysis.CountChars(body),
		KeywordCounts: make(map[string]int),
	}

	deviation := report.CharCount - analysis.CountChars(source)
	if deviation < 0 {
		deviation = -deviation
	}
	report.CharDeviation = deviation
	report.LengthOK = deviation < v.cfg.CharDeviationLimit

	for _, keyword := range profile.Keywords {
		count := strings.Count(body, keyword)
		report.KeywordCounts[keyword] = count
		report.KeywordTotal += count
	}
	report.KeywordOK = report.KeywordTotal >= v.cfg.KeywordMin && report.KeywordTotal <= v.cfg.KeywordMax

	report.RepeatedSentences = repeatedSentences(body)
	report.HasRepetition = len(report.RepeatedSentences) > 0
	return report
}

// repeatedSentences returns each long sentence that occurs more than once,
// one entry per extra occurrence, in document order.
func repeatedSentences(body string) []string {
	seen := make(map[string]struct{})
	var repeated []string
	for _, sentence := range sentenceBoundary.Split(body, -1) {
		sentence = strings.TrimSpace(sentence)
		if len([]rune(sentence)) <= repetitionMinRunes {
			continue
		}
		if _, ok := seen[sentence]; ok {
			repeated = append(repeated, sentence)
		}
		seen[sentence] = struct{}{}
	}
	return repeated
}
