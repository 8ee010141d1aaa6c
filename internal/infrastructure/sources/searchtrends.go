package sources

import (
	"context"
	"log/slog"
	"sort"

	"github.com/ObiBat/craefto-automation/internal/domain"
	"github.com/ObiBat/craefto-automation/internal/research"
)

const (
	searchTrendsMax      = 8
	searchTrendsMinScore = 30
)

// searchTrendTopics stand in for a search-trends API, which has no stable
// public endpoint. Curated web-development themes, filtered below by craefto
// keyword relevance so only on-brand entries survive.
var searchTrendTopics = []string{
	"React 18 features",
	"Next.js 14",
	"TypeScript best practices",
	"Tailwind CSS components",
	"Serverless architecture",
	"JAMstack",
	"Headless CMS",
	"Progressive Web Apps",
	"Web performance optimization",
	"Design systems",
	"Component libraries",
	"CSS-in-JS",
}

// SearchTrends scores each curated theme by craefto keyword density and keeps
// the ones above the relevance floor.
type SearchTrends struct {
	cfg    research.Config
	logger *slog.Logger
}

// NewSearchTrends wires the adapter.
func NewSearchTrends(cfg research.Config, logger *slog.Logger) *SearchTrends {
	if logger == nil {
		logger = slog.Default()
	}
	return &SearchTrends{cfg: cfg, logger: logger}
}

// Name identifies the adapter's provenance tag.
func (s *SearchTrends) Name() string { return string(domain.SourceTrendSearch) }

// Fetch returns up to 8 relevant themes, highest raw score first.
func (s *SearchTrends) Fetch(ctx context.Context) ([]domain.TopicCandidate, error) {
	var candidates []domain.TopicCandidate
	for _, topic := range searchTrendTopics {
		score := s.cfg.CraeftoRelevance(topic) * 100
		if score <= searchTrendsMinScore {
			continue
		}

		candidates = append(candidates, domain.TopicCandidate{
			Topic:        topic,
			RawScore:     score,
			Source:       domain.SourceTrendSearch,
			Context:      "Trending in web development: " + topic,
			ContentAngle: s.cfg.Angle(topic),
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].RawScore > candidates[j].RawScore
	})
	if len(candidates) > searchTrendsMax {
		candidates = candidates[:searchTrendsMax]
	}

	s.logger.Debug("search trends fetch done", "candidates", len(candidates))
	return candidates, nil
}
