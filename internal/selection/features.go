// Package selection picks the bounded, partly-randomized subset of business
// features that goes into a generation prompt. Features tagged as required
// always survive the down-selection.
package selection

import (
	"math/rand"
	"strings"
)

// RequiredFeatureTag marks a feature that must survive random down-selection.
// The tag is stripped from the selected output.
const RequiredFeatureTag = "[필수]"

// Selector selects between MinCount and MaxCount features per prompt.
type Selector struct {
	MinCount int
	MaxCount int
}

// NewSelector creates a feature selector with the given selection bounds.
func NewSelector(minCount, maxCount int) *Selector {
	return &Selector{MinCount: minCount, MaxCount: maxCount}
}

// Select partitions features into required and optional, then fills the
// remaining budget with a random sample of the optional ones. rng is the
// only source of randomness; passing a seeded rand.Rand makes the result
// reproducible. Order within each partition follows the input order.
//
// When the required features alone meet or exceed MaxCount, the budget is
// filled by truncating them rather than dropping the required guarantee.
func (s *Selector) Select(features []string, rng *rand.Rand) []string {
	if len(features) == 0 {
		return nil
	}

	var required, optional []string
	for _, feature := range features {
		trimmed := strings.TrimSpace(feature)
		if strings.HasPrefix(trimmed, RequiredFeatureTag) {
			cleaned := strings.TrimSpace(strings.TrimPrefix(trimmed, RequiredFeatureTag))
			required = append(required, cleaned)
			continue
		}
		optional = append(optional, trimmed)
	}

	if len(required) >= s.MaxCount {
		return required[:s.MaxCount]
	}

	if len(required)+len(optional) <= s.MinCount {
		return append(required, optional...)
	}

	low := s.MinCount - len(required)
	if low < 0 {
		low = 0
	}
	high := s.MaxCount - len(required)
	remaining := low + rng.Intn(high-low+1)

	if remaining >= len(optional) {
		return append(required, optional...)
	}
	return append(required, sample(optional, remaining, rng)...)
}

// sample draws n distinct items from values without replacement, preserving
// no particular order (matching random.sample semantics).
func sample(values []string, n int, rng *rand.Rand) []string {
	perm := rng.Perm(len(values))
	picked := make([]string, 0, n)
	for _, idx := range perm[:n] {
		picked = append(picked, values[idx])
	}
	return picked
}
