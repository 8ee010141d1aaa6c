package research

import "github.com/ObiBat/craefto-automation/internal/domain"

// Config carries every tunable used by the research pipeline: keyword lists,
// per-source trust multipliers, thresholds, caps, and template tables. It is
// an immutable value handed to each component at construction time.
//
// The dedupe thresholds and the 30-point keyword boost are heuristics carried
// over for behavioral compatibility; they are tunable, not load-bearing.
type Config struct {
	// CraeftoKeywords drive the relevance boost and idea priority.
	CraeftoKeywords []string
	// SaaSKeywords gate launch-board entries on business relevance.
	SaaSKeywords []string
	// TechKeywords steer the normalizer toward tech phrases.
	TechKeywords []string
	// StopWords are removed before topic extraction.
	StopWords []string

	SourceMultipliers map[domain.Source]float64
	FormatWeights     map[domain.ContentFormat]float64

	// KeywordBoostWeight is the maximum relevance contribution of keyword
	// density (points out of 100).
	KeywordBoostWeight float64
	// IdeaThreshold is the relevance score above which a topic fans out to
	// every format instead of blog only.
	IdeaThreshold float64

	// TopK is how many scored topics a run returns.
	TopK int
	// IdeaTopN is how many top topics the synthesizer considers.
	IdeaTopN int
	// MaxIdeas is how many ideas a run keeps after priority ranking.
	MaxIdeas int

	ContentAngles  []string
	TitleTemplates map[domain.ContentFormat][]string
	CallToActions  map[domain.ContentFormat][]string
}

// DefaultConfig returns the production tuning.
func DefaultConfig() Config {
	return Config{
		CraeftoKeywords: []string{
			"framer", "design", "templates", "saas", "conversion", "landing page",
			"ui/ux", "web design", "no-code", "startup", "marketing", "growth",
			"optimization", "user experience", "interface", "prototype",
		},
		SaaSKeywords: []string{
			"saas", "software", "platform", "tool", "api", "automation",
			"business", "startup", "enterprise", "subscription", "cloud",
			"analytics", "dashboard", "integration", "workflow", "productivity",
		},
		TechKeywords: []string{
			"saas", "api", "ai", "ml", "automation", "platform", "tool",
			"app", "software", "system", "service", "solution",
		},
		StopWords: []string{
			"the", "a", "an", "and", "or", "but", "in", "on", "at", "to",
			"for", "of", "with", "by", "is", "are", "was", "were", "be",
			"been", "being", "have", "has", "had", "do", "does", "did",
			"will", "would", "could", "should",
		},
		SourceMultipliers: map[domain.Source]float64{
			domain.SourceForum:       1.2,
			domain.SourceLaunchBoard: 1.1,
			domain.SourceTrendSearch: 1.3,
			domain.SourceTrendSocial: 1.0,
		},
		FormatWeights: map[domain.ContentFormat]float64{
			domain.FormatBlog:   1.0,
			domain.FormatSocial: 0.8,
			domain.FormatEmail:  0.9,
		},
		KeywordBoostWeight: 30,
		IdeaThreshold:      70,
		TopK:               20,
		IdeaTopN:           10,
		MaxIdeas:           5,
		ContentAngles: []string{
			"Framer template showcase",
			"SaaS design breakdown",
			"CRO optimization tips",
			"Design trend analysis",
			"Template customization guide",
			"User experience insights",
			"Conversion optimization case study",
			"Design system breakdown",
			"No-code solution comparison",
			"Startup design mistakes",
		},
		TitleTemplates: map[domain.ContentFormat][]string{
			domain.FormatBlog: {
				"How %s is Transforming SaaS Design in 2024",
				"The Complete Guide to %s for SaaS Founders",
				"%s: What Every Designer Needs to Know",
				"Building Better SaaS Products with %s",
				"Why %s Matters for Your SaaS Growth Strategy",
			},
			domain.FormatSocial: {
				"%s is trending! Here's why it matters for SaaS:",
				"Quick tip: How to leverage %s in your design process",
				"%s breakdown - what you need to know",
				"%s insights that will boost your conversion rates",
			},
			domain.FormatEmail: {
				"Weekly Insight: %s Impact on SaaS",
				"Trend Alert: %s Opportunities",
				"Designer's Brief: %s Essentials",
			},
		},
		CallToActions: map[domain.ContentFormat][]string{
			domain.FormatBlog: {
				"Download our free Framer template collection",
				"Get started with our SaaS design system",
				"Book a free design consultation",
			},
			domain.FormatSocial: {
				"Follow for more SaaS design tips",
				"Check out our latest templates",
				"DM for custom design work",
			},
			domain.FormatEmail: {
				"Explore our template library",
				"Schedule a design review",
				"Join our design community",
			},
		},
	}
}

// CraeftoRelevance reports what fraction of the craefto keyword list occurs
// in text (case-insensitive substring match), clamped to [0,1].
func (c Config) CraeftoRelevance(text string) float64 {
	return keywordDensity(text, c.CraeftoKeywords)
}

// SaaSRelevance reports the SaaS keyword density of text, clamped to [0,1].
func (c Config) SaaSRelevance(text string) float64 {
	return keywordDensity(text, c.SaaSKeywords)
}
