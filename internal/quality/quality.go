// Package quality implements the pre-publish checklist run over generated
// content before hand-off: keyword-based brand voice, length, and
// call-to-action checks producing a 0-100 readiness score.
package quality

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Approval statuses derived from the overall score.
const (
	StatusApproved       = "approved"
	StatusMinorEdits     = "needs_minor_edits"
	StatusMajorRevision  = "needs_major_revision"
	approvedThreshold    = 80
	minorEditsThreshold  = 60
	weakPlatformCutoff   = 70
	brandVoicePointsEach = 10
	saasPointsEach       = 5
	actionPointsEach     = 10
)

// Config carries the keyword tables the checks count against.
type Config struct {
	BrandVoiceKeywords []string
	SaaSKeywords       []string
	CTAIndicators      []string
	ActionWords        []string
}

// DefaultConfig returns the craefto brand tuning.
func DefaultConfig() Config {
	return Config{
		BrandVoiceKeywords: []string{
			"premium", "crafted", "saas-focused", "practical",
			"speed-oriented", "film noise", "viby",
		},
		SaaSKeywords: []string{
			"saas", "software", "product", "growth", "conversion", "user", "customer",
		},
		CTAIndicators: []string{
			"link in bio", "dm me", "comment below", "share this",
			"save this", "visit", "check out", "learn more",
		},
		ActionWords: []string{
			"now", "today", "limited", "exclusive", "free", "download", "get", "start",
		},
	}
}

// Assessment is the checklist outcome for one content package.
type Assessment struct {
	OverallScore     float64            `json:"overall_score"`
	PlatformScores   map[string]float64 `json:"platform_scores"`
	BrandVoice       map[string]float64 `json:"brand_voice_check"`
	CTAEffectiveness map[string]float64 `json:"cta_effectiveness"`
	Recommendations  []string           `json:"recommendations"`
	ApprovalStatus   string             `json:"approval_status"`
}

// Checker runs the pre-publish checklist.
type Checker struct {
	cfg Config
}

// NewChecker builds a checker; a zero-value Config falls back to defaults.
func NewChecker(cfg Config) *Checker {
	if len(cfg.BrandVoiceKeywords) == 0 {
		cfg = DefaultConfig()
	}
	return &Checker{cfg: cfg}
}

// PrePublishChecklist scores each platform's text on content quality, brand
// voice, and CTA effectiveness, averages into an overall score, and derives
// an approval status. The "image" key is skipped (no text to analyze).
func (c *Checker) PrePublishChecklist(content map[string]string) Assessment {
	assessment := Assessment{
		PlatformScores:   map[string]float64{},
		BrandVoice:       map[string]float64{},
		CTAEffectiveness: map[string]float64{},
		ApprovalStatus:   StatusMajorRevision,
	}

	var total float64
	count := 0
	for platform, text := range content {
		if platform == "image" {
			continue
		}

		contentScore := c.contentQuality(text, platform)
		brandScore := c.brandVoice(text)
		ctaScore := c.ctaEffectiveness(text)

		assessment.PlatformScores[platform] = contentScore
		assessment.BrandVoice[platform] = brandScore
		assessment.CTAEffectiveness[platform] = ctaScore

		total += (contentScore + brandScore + ctaScore) / 3
		count++
	}

	if count > 0 {
		assessment.OverallScore = math.Round(total/float64(count)*10) / 10
	}

	switch {
	case assessment.OverallScore >= approvedThreshold:
		assessment.ApprovalStatus = StatusApproved
	case assessment.OverallScore >= minorEditsThreshold:
		assessment.ApprovalStatus = StatusMinorEdits
	}

	assessment.Recommendations = c.recommendations(assessment)
	return assessment
}

func (c *Checker) contentQuality(text, platform string) float64 {
	score := 70.0

	switch platform {
	case "linkedin":
		if len(text) >= 100 && len(text) <= 1300 {
			score += 10
		}
	case "x", "twitter":
		if len(text) >= 50 && len(text) <= 280 {
			score += 10
		}
	}

	lower := strings.ToLower(text)
	if strings.Contains(text, "?") {
		score += 5
	}
	if containsAnyWord(lower, []string{"you", "your", "we", "us"}) {
		score += 5
	}
	if strings.Count(text, "\n") >= 1 {
		score += 5
	}

	return math.Min(100, score)
}

func (c *Checker) brandVoice(text string) float64 {
	lower := strings.ToLower(text)
	score := 50.0

	brandMatches := countContained(lower, c.cfg.BrandVoiceKeywords)
	score += math.Min(30, float64(brandMatches*brandVoicePointsEach))

	saasMatches := countContained(lower, c.cfg.SaaSKeywords)
	score += math.Min(20, float64(saasMatches*saasPointsEach))

	return math.Min(100, score)
}

func (c *Checker) ctaEffectiveness(text string) float64 {
	lower := strings.ToLower(text)
	score := 40.0

	if countContained(lower, c.cfg.CTAIndicators) > 0 {
		score += 30
	}

	actionMatches := countContained(lower, c.cfg.ActionWords)
	score += math.Min(30, float64(actionMatches*actionPointsEach))

	return math.Min(100, score)
}

func (c *Checker) recommendations(a Assessment) []string {
	var recs []string

	switch {
	case a.OverallScore >= approvedThreshold:
		recs = append(recs, "Content approved - meets quality standards")
	case a.OverallScore >= minorEditsThreshold:
		recs = append(recs, "Minor edits needed - good foundation with room for improvement")
	default:
		recs = append(recs, "Major revision needed - content doesn't meet quality standards")
	}

	recs = append(recs, weakPlatformRecs(a.PlatformScores, "improve content structure and engagement")...)
	recs = append(recs, weakPlatformRecs(a.BrandVoice, "strengthen brand voice alignment")...)
	recs = append(recs, weakPlatformRecs(a.CTAEffectiveness, "add a stronger call-to-action")...)

	return recs
}

// weakPlatformRecs emits one recommendation per platform under the cutoff, in
// stable platform order so output is deterministic.
func weakPlatformRecs(scores map[string]float64, advice string) []string {
	platforms := make([]string, 0, len(scores))
	for platform := range scores {
		platforms = append(platforms, platform)
	}
	sort.Strings(platforms)

	var recs []string
	for _, platform := range platforms {
		if scores[platform] < weakPlatformCutoff {
			recs = append(recs, fmt.Sprintf("%s: %s", platform, advice))
		}
	}
	return recs
}

func countContained(text string, keywords []string) int {
	matches := 0
	for _, kw := range keywords {
		if strings.Contains(text, strings.ToLower(kw)) {
			matches++
		}
	}
	return matches
}

func containsAnyWord(text string, words []string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}
