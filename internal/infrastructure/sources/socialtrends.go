package sources

import (
	"context"
	"log/slog"
	"math/rand"
	"time"

	"github.com/ObiBat/craefto-automation/internal/domain"
	"github.com/ObiBat/craefto-automation/internal/research"
)

const socialTrendsMax = 6

// socialTrendTopics stand in for a real social-platform trends API, which
// requires paid authentication. The list is curated SaaS conversation themes.
var socialTrendTopics = []string{
	"AI SaaS tools",
	"No-code platforms",
	"SaaS analytics",
	"Customer success tools",
	"SaaS pricing models",
	"API-first SaaS",
	"SaaS onboarding",
	"PLG strategies",
	"SaaS metrics",
	"B2B automation",
}

// SocialTrends serves the curated topic list with synthetic popularity scores
// that decay down the list. The random source is injectable so tests can pin
// the scores.
type SocialTrends struct {
	cfg    research.Config
	rng    *rand.Rand
	logger *slog.Logger
}

// NewSocialTrends wires the adapter; a nil rng gets a time-seeded one.
func NewSocialTrends(cfg research.Config, rng *rand.Rand, logger *slog.Logger) *SocialTrends {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &SocialTrends{cfg: cfg, rng: rng, logger: logger}
}

// Name identifies the adapter's provenance tag.
func (s *SocialTrends) Name() string { return string(domain.SourceTrendSocial) }

// Fetch returns the top 6 curated topics. Scores are drawn from [60,95) and
// lose 3 points per list position, so earlier entries stay hotter.
func (s *SocialTrends) Fetch(ctx context.Context) ([]domain.TopicCandidate, error) {
	candidates := make([]domain.TopicCandidate, 0, socialTrendsMax)
	for i, topic := range socialTrendTopics {
		if len(candidates) == socialTrendsMax {
			break
		}

		score := 60 + s.rng.Float64()*35 - float64(i)*3
		if score < 0 {
			score = 0
		}

		candidates = append(candidates, domain.TopicCandidate{
			Topic:        topic,
			RawScore:     score,
			Source:       domain.SourceTrendSocial,
			Context:      "Trending SaaS topic: " + topic,
			ContentAngle: s.cfg.Angle(topic),
		})
	}

	s.logger.Debug("social trends fetch done", "candidates", len(candidates))
	return candidates, nil
}
