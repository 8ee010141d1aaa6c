package research

import (
	"math"

	"github.com/ObiBat/craefto-automation/internal/domain"
)

// Score computes the composite relevance score for each candidate: the
// source-native raw score plus a craefto keyword boost, weighted by the
// per-source trust multiplier and capped at 100. One output per input,
// order-preserving, no renormalization across candidates.
func (c Config) Score(candidates []domain.TopicCandidate) []domain.ScoredTopic {
	scored := make([]domain.ScoredTopic, 0, len(candidates))

	for _, cand := range candidates {
		boost := c.CraeftoRelevance(cand.Topic) * c.KeywordBoostWeight

		multiplier, ok := c.SourceMultipliers[cand.Source]
		if !ok {
			multiplier = 1.0
		}

		final := math.Min((cand.RawScore+boost)*multiplier, 100)

		scored = append(scored, domain.ScoredTopic{
			TopicCandidate: cand,
			RelevanceScore: round2(final),
			CraeftoBoost:   round2(boost),
		})
	}

	return scored
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
