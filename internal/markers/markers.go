// Package markers repairs generated blog text whose structural markers the
// model dropped or placed nowhere. Insertion is anchor-based: each marker
// kind has a set of keywords whose first occurrence anchors the insertion
// point, with an end-of-document fallback.
package markers

import (
	"strings"

	"github.com/hyuklee/blogforge/internal/types"
)

// terminalRunes are the characters that end a complete Korean sentence for
// insertion purposes. A marker goes right after a finished sentence; mid-
// sentence anchors push the insertion to the next blank line.
const terminalRunes = ".!?다요죠"

// addressAnchorRunes is how much of the profile address doubles as a map
// anchor keyword.
const addressAnchorRunes = 10

// Processor inserts missing markers into generated text.
type Processor struct{}

// NewProcessor creates a marker processor.
func NewProcessor() *Processor {
	return &Processor{}
}

// EnsureMarkers returns text with every marker kind present, inserting each
// missing one near its anchor. A marker counts as present when any variant
// prefix of it appears, so "(지도삽입)" suppresses a second "(지도)". The
// operation is idempotent: text that already carries both markers is returned
// unchanged.
func (p *Processor) EnsureMarkers(text string, profile *types.BusinessProfile) string {
	result := text
	for _, kind := range types.MarkerKinds() {
		if strings.Contains(result, kind.VariantPrefix()) {
			continue
		}
		result = insertMarker(result, kind, anchorKeywords(kind, profile))
	}
	return result
}

// anchorKeywords returns the per-kind anchor keyword list. The map marker
// anchors on location language plus the head of the business address; the
// video marker anchors on menu and atmosphere language.
func anchorKeywords(kind types.MarkerKind, profile *types.BusinessProfile) []string {
	switch kind {
	case types.MarkerMap:
		keywords := []string{"위치", "주소"}
		if profile != nil && profile.Address != "" {
			head := []rune(profile.Address)
			if len(head) > addressAnchorRunes {
				head = head[:addressAnchorRunes]
			}
			keywords = append(keywords, string(head))
		}
		return keywords
	case types.MarkerVideo:
		return []string{"메뉴", "분위기", "인테리어", "맛있"}
	}
	return nil
}

// insertMarker places the marker token on its own line, padded by blank
// lines, after the anchor line (or after the sentence the anchor line starts,
// when the line does not end a sentence). Without an anchor the marker goes
// after the last non-blank line.
func insertMarker(text string, kind types.MarkerKind, keywords []string) string {
	lines := strings.Split(text, "\n")

	position := -1
	for i, line := range lines {
		if !containsAny(line, keywords) {
			continue
		}
		position = i + 1
		if !endsSentence(line) {
			for position < len(lines) && strings.TrimSpace(lines[position]) != "" {
				position++
			}
		}
		break
	}

	if position == -1 {
		position = len(lines)
		for position > 0 && strings.TrimSpace(lines[position-1]) == "" {
			position--
		}
	}

	inserted := make([]string, 0, len(lines)+3)
	inserted = append(inserted, lines[:position]...)
	inserted = append(inserted, "", kind.Token(), "")
	inserted = append(inserted, lines[position:]...)
	return strings.Join(inserted, "\n")
}

func containsAny(line string, keywords []string) bool {
	for _, keyword := range keywords {
		if keyword != "" && strings.Contains(line, keyword) {
			return true
		}
	}
	return false
}

func endsSentence(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return false
	}
	runes := []rune(trimmed)
	return strings.ContainsRune(terminalRunes, runes[len(runes)-1])
}
