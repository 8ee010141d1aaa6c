package quality

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentQuality(t *testing.T) {
	t.Parallel()

	checker := NewChecker(DefaultConfig())

	// Base score only: no length bonus, no question, no pronoun, no newline.
	assert.InDelta(t, 70, checker.contentQuality("short", "blog"), 1e-9)

	linkedin := "What makes your product stick?\n" +
		"Here is what we learned after shipping onboarding flows for two years straight."
	assert.InDelta(t, 95, checker.contentQuality(linkedin, "linkedin"), 1e-9)

	// Tweet-length bonus applies to both platform aliases.
	tweet := "Do you ship fast enough? Here is what we learned lately."
	assert.InDelta(t, 90, checker.contentQuality(tweet, "x"), 1e-9)
	assert.InDelta(t, 90, checker.contentQuality(tweet, "twitter"), 1e-9)
}

func TestBrandVoice(t *testing.T) {
	t.Parallel()

	checker := NewChecker(DefaultConfig())

	assert.InDelta(t, 50, checker.brandVoice("nothing on brand here"), 1e-9)
	assert.InDelta(t, 80, checker.brandVoice("premium crafted viby"), 1e-9)

	// Both bonus tracks are capped.
	maxed := "premium crafted viby practical saas software product growth conversion"
	assert.InDelta(t, 100, checker.brandVoice(maxed), 1e-9)
}

func TestCTAEffectiveness(t *testing.T) {
	t.Parallel()

	checker := NewChecker(DefaultConfig())

	assert.InDelta(t, 40, checker.ctaEffectiveness("plain text"), 1e-9)
	assert.InDelta(t, 100, checker.ctaEffectiveness("Check out this free download now"), 1e-9)
	assert.InDelta(t, 70, checker.ctaEffectiveness("learn more on our site"), 1e-9)
}

func TestPrePublishChecklistApproves(t *testing.T) {
	t.Parallel()

	checker := NewChecker(DefaultConfig())

	content := map[string]string{
		"linkedin": "Premium crafted viby SaaS software helps your product growth.\n" +
			"How do you ship faster? Check out our free template download now and start today.",
		"image": "https://cdn.example.com/cover.png",
	}

	got := checker.PrePublishChecklist(content)

	assert.Equal(t, StatusApproved, got.ApprovalStatus)
	assert.InDelta(t, 98.3, got.OverallScore, 1e-9)
	assert.NotContains(t, got.PlatformScores, "image")
	require.NotEmpty(t, got.Recommendations)
	assert.Equal(t, "Content approved - meets quality standards", got.Recommendations[0])
	assert.Len(t, got.Recommendations, 1)
}

func TestPrePublishChecklistFlagsWeakPlatforms(t *testing.T) {
	t.Parallel()

	checker := NewChecker(DefaultConfig())

	got := checker.PrePublishChecklist(map[string]string{"pinterest": "meh"})

	assert.Equal(t, StatusMajorRevision, got.ApprovalStatus)
	assert.InDelta(t, 53.3, got.OverallScore, 1e-9)
	assert.Equal(t, []string{
		"Major revision needed - content doesn't meet quality standards",
		"pinterest: strengthen brand voice alignment",
		"pinterest: add a stronger call-to-action",
	}, got.Recommendations)
}

func TestPrePublishChecklistEmptyContent(t *testing.T) {
	t.Parallel()

	checker := NewChecker(DefaultConfig())

	got := checker.PrePublishChecklist(map[string]string{})

	assert.Zero(t, got.OverallScore)
	assert.Equal(t, StatusMajorRevision, got.ApprovalStatus)
}

func TestNewCheckerDefaultsOnZeroConfig(t *testing.T) {
	t.Parallel()

	checker := NewChecker(Config{})

	assert.InDelta(t, 80, checker.brandVoice("premium crafted viby"), 1e-9)
}
