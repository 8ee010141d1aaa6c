package research

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"time"

	"github.com/ObiBat/craefto-automation/internal/domain"
)

// TitlePicker chooses an index into a title template list of length n.
// Production uses math/rand; tests substitute a fixed pick.
type TitlePicker func(n int) int

// Synthesizer expands top-ranked topics into concrete content-idea proposals.
type Synthesizer struct {
	cfg  Config
	pick TitlePicker
}

// NewSynthesizer builds a synthesizer; a nil picker falls back to rand.Intn.
func NewSynthesizer(cfg Config, pick TitlePicker) *Synthesizer {
	if pick == nil {
		pick = rand.Intn
	}
	return &Synthesizer{cfg: cfg, pick: pick}
}

// Synthesize turns the first IdeaTopN scored topics into ideas. Topics above
// the relevance threshold fan out to blog, social, and email; the rest get a
// blog idea only. Ideas are ranked by priority score, truncated to MaxIdeas,
// and only then stamped with IDs and a generation timestamp, so discarded
// ideas never consume a sequence number.
//
// The input is expected to be sorted already; no re-sort happens here.
func (s *Synthesizer) Synthesize(topics []domain.ScoredTopic) []domain.ContentIdea {
	limit := s.cfg.IdeaTopN
	if limit > len(topics) {
		limit = len(topics)
	}

	var ideas []domain.ContentIdea
	for _, topic := range topics[:limit] {
		formats := []domain.ContentFormat{domain.FormatBlog}
		if topic.RelevanceScore > s.cfg.IdeaThreshold {
			formats = []domain.ContentFormat{domain.FormatBlog, domain.FormatSocial, domain.FormatEmail}
		}

		for _, format := range formats {
			ideas = append(ideas, s.buildIdea(topic, format))
		}
	}

	sort.SliceStable(ideas, func(i, j int) bool {
		return ideas[i].PriorityScore > ideas[j].PriorityScore
	})

	if len(ideas) > s.cfg.MaxIdeas {
		ideas = ideas[:s.cfg.MaxIdeas]
	}

	now := time.Now().UTC()
	stamp := now.Format("20060102_150405")
	for i := range ideas {
		ideas[i].ID = fmt.Sprintf("idea_%s_%d", stamp, i)
		ideas[i].GeneratedAt = now
	}

	return ideas
}

func (s *Synthesizer) buildIdea(topic domain.ScoredTopic, format domain.ContentFormat) domain.ContentIdea {
	templates := s.cfg.TitleTemplates[format]
	var title string
	if len(templates) > 0 {
		title = fmt.Sprintf(templates[s.pick(len(templates))], topic.Topic)
	} else {
		title = topic.Topic
	}

	relevance := s.cfg.CraeftoRelevance(topic.Topic)
	weight, ok := s.cfg.FormatWeights[format]
	if !ok {
		weight = 1.0
	}

	return domain.ContentIdea{
		Title:               title,
		Topic:               topic.Topic,
		Format:              format,
		ContentAngle:        s.cfg.Angle(topic.Topic),
		SourceTrend:         topic.Source,
		PriorityScore:       round2(relevance * 100 * weight),
		Context:             truncate(topic.Context, 200),
		EstimatedEngagement: estimateEngagement(relevance),
		TargetAudience:      s.targetAudience(topic.Topic),
		ContentPillars:      s.contentPillars(topic.Topic),
		SEOKeywords:         s.seoKeywords(topic.Topic),
		CallToAction:        s.callToAction(format),
	}
}

func estimateEngagement(relevance float64) string {
	switch {
	case relevance > 0.7:
		return "Very High"
	case relevance > 0.4:
		return "High"
	default:
		return "Medium"
	}
}

func (s *Synthesizer) targetAudience(topic string) []string {
	lower := strings.ToLower(topic)
	switch {
	case containsAny(lower, []string{"founder", "startup", "business"}):
		return []string{"SaaS founders", "Startup founders"}
	case containsAny(lower, []string{"design", "ui", "ux"}):
		return []string{"Product designers", "UI/UX designers"}
	case containsAny(lower, []string{"marketing", "growth", "conversion"}):
		return []string{"Product marketers", "Growth teams"}
	default:
		return []string{"SaaS founders", "Product designers"}
	}
}

func (s *Synthesizer) contentPillars(topic string) []string {
	lower := strings.ToLower(topic)
	var pillars []string

	if containsAny(lower, []string{"framer", "template"}) {
		pillars = append(pillars, "Framer tutorials")
	}
	if containsAny(lower, []string{"design", "ui", "ux"}) {
		pillars = append(pillars, "SaaS design patterns", "Web Design trends")
	}
	if containsAny(lower, []string{"conversion", "optimization", "cro"}) {
		pillars = append(pillars, "CRO tips")
	}
	if containsAny(lower, []string{"template", "component"}) {
		pillars = append(pillars, "Template showcases")
	}

	if len(pillars) == 0 {
		pillars = []string{"SaaS design patterns"}
	}
	return pillars
}

func (s *Synthesizer) seoKeywords(topic string) []string {
	lower := strings.ToLower(topic)
	keywords := []string{lower}
	for _, addition := range []string{"saas design", "framer templates"} {
		keywords = append(keywords, lower+" "+addition)
	}
	return keywords
}

func (s *Synthesizer) callToAction(format domain.ContentFormat) string {
	ctas := s.cfg.CallToActions[format]
	if len(ctas) == 0 {
		ctas = s.cfg.CallToActions[domain.FormatBlog]
	}
	if len(ctas) == 0 {
		return ""
	}
	return ctas[0]
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
