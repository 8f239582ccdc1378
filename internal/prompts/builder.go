package prompts

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"github.com/hyuklee/blogforge/internal/config"
	"github.com/hyuklee/blogforge/internal/selection"
	"github.com/hyuklee/blogforge/internal/types"
)

// Fallback marker positions used when the source text carried no markers,
// expressed as a percentage of the document.
const (
	fallbackMapPercent   = 80
	fallbackVideoPercent = 60
)

// Rendering caps for the style-summary block. Beyond these the extra entries
// add prompt tokens without adding signal.
const (
	styleEndings     = 10
	styleExpressions = 10
	styleEmotions    = 8
	styleKeywords    = 5
)

// Builder assembles the conversion and title prompts. It owns the feature
// selector so the random down-selection happens at prompt-build time, once
// per generation attempt.
type Builder struct {
	cfg      *config.Config
	selector *selection.Selector
}

// NewBuilder creates a prompt builder backed by the given config and selector.
func NewBuilder(cfg *config.Config, selector *selection.Selector) *Builder {
	return &Builder{cfg: cfg, selector: selector}
}

// ConversionPrompt builds the full body-generation prompt: source text, style
// summary, business block, numbered rules, and conditional menu and marker
// guidance. rng drives the feature down-selection.
func (b *Builder) ConversionPrompt(source string, fingerprint *types.StyleFingerprint, profile *types.BusinessProfile, rng *rand.Rand) string {
	selected := b.selector.Select(profile.Features, rng)

	var prompt strings.Builder
	prompt.WriteString(fill(tmpl("conversion-intro"), map[string]string{
		"Source":     source,
		"Style":      styleSummary(fingerprint),
		"Business":   businessBlock(profile, selected),
		"Target":     strconv.Itoa(b.cfg.TargetChars),
		"Tolerance":  strconv.Itoa((b.cfg.MaxChars - b.cfg.MinChars) / 2),
		"Min":        strconv.Itoa(b.cfg.MinChars),
		"Max":        strconv.Itoa(b.cfg.MaxChars),
		"KeywordMin": strconv.Itoa(b.cfg.KeywordMin),
		"KeywordMax": strconv.Itoa(b.cfg.KeywordMax),
	}))

	if len(profile.OrderedItems) > 0 {
		prompt.WriteString(fill(tmpl("conversion-menu-rule"), map[string]string{
			"OrderedMenu": joinMenu(profile.OrderedItems),
		}))
	}

	prompt.WriteString(markerGuidance(fingerprint))

	prompt.WriteString(fill(tmpl("conversion-closing"), map[string]string{
		"Name":     profile.Name,
		"Location": profile.LocationName(),
	}))
	return prompt.String()
}

// TitlePrompt builds the title-generation prompt for one keyword.
func (b *Builder) TitlePrompt(keyword string, profile *types.BusinessProfile) string {
	mainMenu := ""
	if len(profile.OrderedItems) > 0 {
		mainMenu = profile.OrderedItems[0].Name
	} else if len(profile.MenuItems) > 0 {
		mainMenu = profile.MenuItems[0].Name
	}
	exampleMenu := mainMenu
	if exampleMenu == "" {
		exampleMenu = "특별한 메뉴"
		mainMenu = "다양한 메뉴"
	}

	keyFeatures := "특별한 맛집"
	if len(profile.Features) > 0 {
		features := profile.Features
		if len(features) > 2 {
			features = features[:2]
		}
		cleaned := make([]string, 0, len(features))
		for _, feature := range features {
			cleaned = append(cleaned, strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(feature), selection.RequiredFeatureTag)))
		}
		keyFeatures = strings.Join(cleaned, ", ")
	}

	return fill(tmpl("title-request"), map[string]string{
		"Keyword":     keyword,
		"TitleName":   profile.TitleName(),
		"KeyFeatures": keyFeatures,
		"MainMenu":    mainMenu,
		"ExampleMenu": exampleMenu,
		"MinLen":      strconv.Itoa(b.cfg.TitleMinLen),
		"MaxLen":      strconv.Itoa(b.cfg.TitleMaxLen),
	})
}

// styleSummary renders the fingerprint as the compact block the prompt embeds.
func styleSummary(fingerprint *types.StyleFingerprint) string {
	if fingerprint == nil {
		return ""
	}
	var lines []string
	if len(fingerprint.Endings) > 0 {
		lines = append(lines, "종결어미: "+strings.Join(capped(fingerprint.Endings, styleEndings), ", "))
	}
	if len(fingerprint.Expressions) > 0 {
		lines = append(lines, "특징 표현: "+strings.Join(capped(fingerprint.Expressions, styleExpressions), ", "))
	}
	if len(fingerprint.Emotions) > 0 {
		lines = append(lines, "감정 표현: "+strings.Join(capped(fingerprint.Emotions, styleEmotions), ", "))
	}
	lines = append(lines, fingerprint.SentencePatterns...)
	return strings.Join(lines, "\n")
}

// businessBlock renders the [새로운 업체 정보] section. Every field is a fixed
// line so the model sees an absent value as explicitly empty rather than
// missing.
func businessBlock(profile *types.BusinessProfile, selected []string) string {
	allMenu := joinMenu(profile.MenuItems)
	if allMenu == "" && len(selected) > 0 {
		allMenu = selected[0]
	}
	orderedMenu := joinMenu(profile.OrderedItems)
	if orderedMenu == "" {
		orderedMenu = "메뉴 정보 없음"
	}

	lines := []string{
		"업체명: " + profile.Name,
		fmt.Sprintf("위치: %s (%s)", profile.LocationName(), profile.Address),
		"전체 메뉴: " + allMenu,
		"실제 주문한 메뉴: " + orderedMenu,
		"운영시간: " + profile.Hours,
		"전화번호: " + profile.Phone,
		"특징: " + strings.Join(selected, ", "),
		"분위기: " + profile.Atmosphere,
		"타겟 고객: " + profile.TargetCustomer,
		"주차 정보: " + profile.ParkingInfo,
		"SEO 키워드: " + strings.Join(capped(profile.Keywords, styleKeywords), ", "),
	}
	return strings.Join(lines, "\n")
}

// markerGuidance renders rule 9. When the source carried markers the model is
// told to reproduce them near their original relative positions; otherwise it
// gets the fixed fallback positions.
func markerGuidance(fingerprint *types.StyleFingerprint) string {
	hasAny := fingerprint != nil &&
		(fingerprint.HasMarker(types.MarkerMap) || fingerprint.HasMarker(types.MarkerVideo))
	if !hasAny {
		return fill(tmpl("conversion-marker-fallback"), map[string]string{
			"MapPercent":   strconv.Itoa(fallbackMapPercent),
			"VideoPercent": strconv.Itoa(fallbackVideoPercent),
		})
	}

	var guidance strings.Builder
	guidance.WriteString(tmpl("conversion-marker-existing"))
	if position, ok := fingerprint.FirstMarkerPosition(types.MarkerMap); ok {
		guidance.WriteString(fill(tmpl("conversion-marker-map-position"), map[string]string{
			"Percent": strconv.Itoa(int(position * 100)),
		}))
	}
	if position, ok := fingerprint.FirstMarkerPosition(types.MarkerVideo); ok {
		guidance.WriteString(fill(tmpl("conversion-marker-video-position"), map[string]string{
			"Percent": strconv.Itoa(int(position * 100)),
		}))
	}
	return guidance.String()
}

func joinMenu(items []types.MenuItem) string {
	if len(items) == 0 {
		return ""
	}
	parts := make([]string, 0, len(items))
	for _, item := range items {
		parts = append(parts, item.String())
	}
	return strings.Join(parts, ", ")
}

func capped(values []string, limit int) []string {
	if len(values) <= limit {
		return values
	}
	return values[:limit]
}
