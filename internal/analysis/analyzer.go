// Package analysis extracts the stylistic fingerprint of a source blog post:
// sentence endings, characteristic expressions, emotion markers, and the
// positions of embedded structural markers.
package analysis

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/hyuklee/blogforge/internal/types"
)

const (
	// topEndings caps the ranked sentence-ending list.
	topEndings = 15
	// topEmotions caps the ranked emotion-token list.
	topEmotions = 10
	// perPatternExpressions caps matches collected per expression template.
	perPatternExpressions = 5
	// endingRunes is how many trailing runes form an ending candidate.
	endingRunes = 4
	// minSentenceRunes is the shortest sentence considered for endings.
	minSentenceRunes = 5
)

// sentenceSplit splits on terminal punctuation, one or more repeated.
var sentenceSplit = regexp.MustCompile(`[.!?]+\s*`)

// expressionPatterns are the connective and intensifier templates that mark
// a writer's voice. \w is ASCII-only in Go regexp, so word runs are matched
// with explicit Unicode classes.
var expressionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`[\p{L}\p{N}]+해서\s+[\p{L}\p{N}]+`),
	regexp.MustCompile(`[\p{L}\p{N}]+하고\s+[\p{L}\p{N}]+`),
	regexp.MustCompile(`[\p{L}\p{N}]+으니까?\s+[\p{L}\p{N}]+`),
	regexp.MustCompile(`[\p{L}\p{N}]+어도\s+[\p{L}\p{N}]+`),
	regexp.MustCompile(`정말\s+[\p{L}\p{N}]+`),
	regexp.MustCompile(`너무\s+[\p{L}\p{N}]+`),
	regexp.MustCompile(`[\p{L}\p{N}]+더라구요`),
	regexp.MustCompile(`[\p{L}\p{N}]+네요`),
	regexp.MustCompile(`[\p{L}\p{N}]+어요`),
}

// emotionPatterns match emotion-bearing word stems with their inflections.
var emotionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`만족[\p{L}]*`),
	regexp.MustCompile(`감동[\p{L}]*`),
	regexp.MustCompile(`좋[\p{L}]*`),
	regexp.MustCompile(`맛있[\p{L}]*`),
	regexp.MustCompile(`최고[\p{L}]*`),
	regexp.MustCompile(`추천[\p{L}]*`),
	regexp.MustCompile(`인상\s*깊[\p{L}]*`),
	regexp.MustCompile(`끝내[\p{L}]*`),
	regexp.MustCompile(`훌륭[\p{L}]*`),
	regexp.MustCompile(`즐겁[\p{L}]*`),
	regexp.MustCompile(`행복[\p{L}]*`),
	regexp.MustCompile(`놀라[\p{L}]*`),
	regexp.MustCompile(`신선[\p{L}]*`),
	regexp.MustCompile(`푸짐[\p{L}]*`),
	regexp.MustCompile(`든든[\p{L}]*`),
	regexp.MustCompile(`뿌듯[\p{L}]*`),
}

// excludedEndingRunes disqualify an ending candidate: brackets and the
// zero-width space that blog editors leave behind.
const excludedEndingRunes = "()[]​"

// Analyzer extracts a StyleFingerprint from raw blog text.
type Analyzer struct{}

// NewAnalyzer creates a style analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// Analyze extracts the style fingerprint of text. It is a pure function of
// the input and never fails; empty or pathological input yields an empty
// fingerprint.
func (a *Analyzer) Analyze(text string) *types.StyleFingerprint {
	fp := &types.StyleFingerprint{
		Markers: map[types.MarkerKind]types.MarkerInfo{},
	}

	fp.Endings = extractEndings(text)
	fp.Expressions = extractExpressions(text)
	fp.Emotions = extractEmotions(text)
	fp.SentencePatterns = analyzeSentencePatterns(text)
	analyzeMarkers(text, fp)

	return fp
}

// extractEndings collects the most frequent sentence-final tokens.
func extractEndings(text string) []string {
	var endings []string
	for _, sentence := range sentenceSplit.Split(text, -1) {
		sentence = strings.TrimSpace(sentence)
		runes := []rune(sentence)
		if len(runes) <= minSentenceRunes {
			continue
		}
		ending := strings.TrimSpace(string(runes[len(runes)-endingRunes:]))
		if ending == "" || strings.ContainsAny(ending, excludedEndingRunes) {
			continue
		}
		endings = append(endings, ending)
	}
	return topByFrequency(endings, topEndings)
}

// extractExpressions collects distinctive phrase fragments, deduplicated in
// first-seen order.
func extractExpressions(text string) []string {
	var expressions []string
	for _, pattern := range expressionPatterns {
		matches := pattern.FindAllString(text, -1)
		if len(matches) > perPatternExpressions {
			matches = matches[:perPatternExpressions]
		}
		expressions = append(expressions, matches...)
	}

	seen := make(map[string]bool, len(expressions))
	deduped := expressions[:0]
	for _, expr := range expressions {
		if !seen[expr] {
			seen[expr] = true
			deduped = append(deduped, expr)
		}
	}
	return deduped
}

// extractEmotions collects emotion-bearing tokens ranked by frequency.
func extractEmotions(text string) []string {
	var emotions []string
	for _, pattern := range emotionPatterns {
		emotions = append(emotions, pattern.FindAllString(text, -1)...)
	}
	return topByFrequency(emotions, topEmotions)
}

// analyzeSentencePatterns computes the auxiliary human-readable observations:
// frequent sentence openers and the average sentence length. These feed
// summaries only, never marker placement.
func analyzeSentencePatterns(text string) []string {
	var patterns []string

	var starters []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		runes := []rune(line)
		if len(runes) <= 10 {
			continue
		}
		starter := strings.TrimSpace(string(runes[:7]))
		if starter == "" || strings.ContainsAny(starter, excludedEndingRunes) {
			continue
		}
		starters = append(starters, starter)
	}
	var common []string
	for _, entry := range rankByFrequency(starters) {
		if entry.count > 1 && len(common) < 5 {
			common = append(common, entry.value)
		}
	}
	if len(common) > 0 {
		patterns = append(patterns, fmt.Sprintf("자주 시작하는 패턴: %s", strings.Join(common, ", ")))
	}

	var total, count int
	for _, sentence := range sentenceSplit.Split(text, -1) {
		sentence = strings.TrimSpace(sentence)
		if sentence == "" {
			continue
		}
		total += len([]rune(sentence))
		count++
	}
	if count > 0 {
		patterns = append(patterns, fmt.Sprintf("평균 문장 길이: 약 %d자", total/count))
	}

	return patterns
}

// analyzeMarkers records every occurrence of the structural markers with its
// line index, relative position, and a one-line context window on each side.
func analyzeMarkers(text string, fp *types.StyleFingerprint) {
	lines := strings.Split(text, "\n")

	for _, kind := range types.MarkerKinds() {
		info := types.MarkerInfo{}
		token := kind.Token()
		for i, line := range lines {
			if !strings.Contains(line, token) {
				continue
			}
			info.Present = true
			lo, hi := i-1, i+2
			if lo < 0 {
				lo = 0
			}
			if hi > len(lines) {
				hi = len(lines)
			}
			info.Occurrences = append(info.Occurrences, types.MarkerOccurrence{
				LineIndex:        i,
				RelativePosition: float64(i) / float64(len(lines)),
				Context:          strings.Join(lines[lo:hi], "\n"),
			})
		}
		fp.Markers[kind] = info
	}
}

type freqEntry struct {
	value string
	count int
}

// rankByFrequency orders values by descending count; ties keep first-seen
// order, which a stable sort over the first-seen sequence guarantees.
func rankByFrequency(values []string) []freqEntry {
	counts := make(map[string]int, len(values))
	var order []string
	for _, v := range values {
		if counts[v] == 0 {
			order = append(order, v)
		}
		counts[v]++
	}

	entries := make([]freqEntry, 0, len(order))
	for _, v := range order {
		entries = append(entries, freqEntry{value: v, count: counts[v]})
	}
	// Stable sort keeps first-seen order among equal counts.
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].count > entries[j].count
	})
	return entries
}

// topByFrequency returns the top-n values by descending frequency, ties in
// first-seen order.
func topByFrequency(values []string, n int) []string {
	entries := rankByFrequency(values)
	if len(entries) > n {
		entries = entries[:n]
	}
	result := make([]string, 0, len(entries))
	for _, e := range entries {
		result = append(result, e.value)
	}
	return result
}
