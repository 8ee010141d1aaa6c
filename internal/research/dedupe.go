package research

import (
	"strings"

	"github.com/ObiBat/craefto-automation/internal/domain"
)

// Thresholds for treating two topics as near-duplicates: the word sets must
// share at least minSharedWords AND the overlap must cover at least
// containmentRatio of either set. Carried over as-is; tune with care.
const (
	minSharedWords   = 2
	containmentRatio = 0.6
)

// Dedupe drops candidates whose topic is a near-duplicate of an earlier one.
// Order-preserving: the first occurrence wins. Pure; O(n²) word-set
// comparisons, fine at the low-tens candidate counts the adapters cap at.
func Dedupe(candidates []domain.TopicCandidate) []domain.TopicCandidate {
	unique := make([]domain.TopicCandidate, 0, len(candidates))
	var seen []map[string]struct{}

	for _, cand := range candidates {
		words := wordSet(strings.ToLower(cand.Topic))

		duplicate := false
		for _, prev := range seen {
			if isNearDuplicate(words, prev) {
				duplicate = true
				break
			}
		}
		if duplicate {
			continue
		}

		unique = append(unique, cand)
		seen = append(seen, words)
	}

	return unique
}

// isNearDuplicate requires a non-trivial overlap, so two empty topics never
// match each other.
func isNearDuplicate(a, b map[string]struct{}) bool {
	overlap := 0
	for w := range a {
		if _, ok := b[w]; ok {
			overlap++
		}
	}
	if overlap < minSharedWords {
		return false
	}
	return float64(overlap)/float64(len(a)) >= containmentRatio ||
		float64(overlap)/float64(len(b)) >= containmentRatio
}

func wordSet(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, w := range strings.Fields(s) {
		set[w] = struct{}{}
	}
	return set
}
