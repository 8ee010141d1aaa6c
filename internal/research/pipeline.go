package research

import (
	"context"
	"log/slog"
	"sort"
	"sync"

	"github.com/ObiBat/craefto-automation/internal/domain"
	"github.com/ObiBat/craefto-automation/internal/ports"
)

// Pipeline fans out to every topic source concurrently, then runs the
// synchronous normalize/dedupe/score/synthesize stages over the joined
// results. A failed or empty source degrades the run, it never aborts it.
type Pipeline struct {
	cfg     Config
	sources []ports.TopicSource
	synth   *Synthesizer
	logger  *slog.Logger
}

// NewPipeline wires the coordinator. A nil picker keeps production title
// randomness.
func NewPipeline(cfg Config, sources []ports.TopicSource, pick TitlePicker, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{
		cfg:     cfg,
		sources: sources,
		synth:   NewSynthesizer(cfg, pick),
		logger:  logger,
	}
}

// Run executes one research pass and always returns a structured result;
// sub-lists may be empty when every source came back dry.
func (p *Pipeline) Run(ctx context.Context) domain.ResearchResult {
	candidates := p.fetchAll(ctx)

	// Backfill topics the adapter did not normalize.
	for i := range candidates {
		if candidates[i].Topic == "" {
			candidates[i].Topic = p.cfg.Normalize(candidates[i].Context)
		}
	}

	unique := Dedupe(candidates)
	scored := p.cfg.Score(unique)

	// Stable sort keeps concatenation order for tied scores.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].RelevanceScore > scored[j].RelevanceScore
	})
	if len(scored) > p.cfg.TopK {
		scored = scored[:p.cfg.TopK]
	}

	ideas := p.synth.Synthesize(scored)

	p.logger.Info("research run completed",
		"candidates", len(candidates),
		"unique", len(unique),
		"topics", len(scored),
		"ideas", len(ideas))

	return domain.ResearchResult{Topics: scored, Ideas: ideas}
}

// fetchAll queries all sources concurrently and joins their results in the
// order the sources were supplied. Errors are logged and contribute nothing.
func (p *Pipeline) fetchAll(ctx context.Context) []domain.TopicCandidate {
	perSource := make([][]domain.TopicCandidate, len(p.sources))

	var wg sync.WaitGroup
	for i, src := range p.sources {
		wg.Add(1)
		go func(i int, src ports.TopicSource) {
			defer wg.Done()

			candidates, err := src.Fetch(ctx)
			if err != nil {
				p.logger.Error("source fetch failed", "source", src.Name(), "error", err)
				return
			}
			p.logger.Debug("source fetched", "source", src.Name(), "count", len(candidates))
			perSource[i] = candidates
		}(i, src)
	}
	wg.Wait()

	var joined []domain.TopicCandidate
	for _, candidates := range perSource {
		joined = append(joined, candidates...)
	}
	return joined
}
