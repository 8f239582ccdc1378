// Package types provides type definitions for structured data used throughout the blogforge system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "strings"

// MarkerKind identifies a structural marker embedded in blog text.
type MarkerKind string

// Marker kinds recognized by the analyzer and the marker processor.
const (
	// MarkerMap is the location/map marker: (지도)
	MarkerMap MarkerKind = "map"
	// MarkerVideo is the media/video marker: (동영상)
	MarkerVideo MarkerKind = "video"
)

// Token returns the exact marker token as it appears in blog text.
func (k MarkerKind) Token() string {
	switch k {
	case MarkerMap:
		return "(지도)"
	case MarkerVideo:
		return "(동영상)"
	}
	return ""
}

// VariantPrefix returns the opening-bracket prefix that also matches
// mis-spelled variants such as "(지도삽입)".
func (k MarkerKind) VariantPrefix() string {
	token := k.Token()
	if token == "" {
		return ""
	}
	return strings.TrimSuffix(token, ")")
}

// MarkerKinds lists the marker kinds in processing order: location first,
// then media.
func MarkerKinds() []MarkerKind {
	return []MarkerKind{MarkerMap, MarkerVideo}
}

// MarkerOccurrence records one occurrence of a structural marker in a source text.
type MarkerOccurrence struct {
	LineIndex        int     `json:"line_index"`
	RelativePosition float64 `json:"relative_position"` // 0.0 (top) .. 1.0 (bottom)
	Context          string  `json:"context"`           // previous + current + next line
}

// MarkerInfo holds the presence flag and occurrence records for one marker kind.
type MarkerInfo struct {
	Present     bool               `json:"present"`
	Occurrences []MarkerOccurrence `json:"occurrences,omitempty"`
}

// StyleFingerprint is the extracted stylistic signature of a source blog post.
// It is computed once per conversion and never persisted.
type StyleFingerprint struct {
	Endings          []string                  `json:"endings"`           // sentence-final tokens, most frequent first
	Expressions      []string                  `json:"expressions"`       // distinctive phrase fragments, first-seen order
	Emotions         []string                  `json:"emotions"`          // emotion-bearing tokens, most frequent first
	SentencePatterns []string                  `json:"sentence_patterns"` // human-readable auxiliary observations
	Markers          map[MarkerKind]MarkerInfo `json:"markers"`
}

// HasMarker reports whether the source text contained the given marker kind.
func (f *StyleFingerprint) HasMarker(kind MarkerKind) bool {
	if f == nil || f.Markers == nil {
		return false
	}
	return f.Markers[kind].Present
}

// FirstMarkerPosition returns the relative position of the first occurrence of
// the given marker kind, and whether one exists.
func (f *StyleFingerprint) FirstMarkerPosition(kind MarkerKind) (float64, bool) {
	if !f.HasMarker(kind) {
		return 0, false
	}
	occ := f.Markers[kind].Occurrences
	if len(occ) == 0 {
		return 0, false
	}
	return occ[0].RelativePosition, true
}

// IsEmpty reports whether the fingerprint carries no extracted features at all.
// Pathological input (empty text) produces an empty fingerprint rather than an error.
func (f *StyleFingerprint) IsEmpty() bool {
	if f == nil {
		return true
	}
	if len(f.Endings) > 0 || len(f.Expressions) > 0 || len(f.Emotions) > 0 {
		return false
	}
	for _, info := range f.Markers {
		if info.Present {
			return false
		}
	}
	return true
}
