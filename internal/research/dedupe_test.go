package research

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ObiBat/craefto-automation/internal/domain"
)

func candidatesFor(topics ...string) []domain.TopicCandidate {
	out := make([]domain.TopicCandidate, 0, len(topics))
	for _, topic := range topics {
		out = append(out, domain.TopicCandidate{Topic: topic, Source: domain.SourceForum})
	}
	return out
}

func topicsOf(candidates []domain.TopicCandidate) []string {
	out := make([]string, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, c.Topic)
	}
	return out
}

func TestDedupeCollapsesNearDuplicates(t *testing.T) {
	t.Parallel()

	got := Dedupe(candidatesFor("AI SaaS Tools", "AI SaaS Tooling", "Framer Templates"))

	assert.Equal(t, []string{"AI SaaS Tools", "Framer Templates"}, topicsOf(got))
}

func TestDedupeFirstOccurrenceWins(t *testing.T) {
	t.Parallel()

	first := domain.TopicCandidate{Topic: "AI SaaS Tools", RawScore: 10, Source: domain.SourceForum}
	second := domain.TopicCandidate{Topic: "AI SaaS Tooling", RawScore: 90, Source: domain.SourceTrendSearch}

	got := Dedupe([]domain.TopicCandidate{first, second})

	assert.Len(t, got, 1)
	assert.Equal(t, first, got[0])
}

func TestDedupeSingleSharedWordIsNotDuplicate(t *testing.T) {
	t.Parallel()

	got := Dedupe(candidatesFor("SaaS Pricing", "SaaS Onboarding"))

	assert.Len(t, got, 2)
}

func TestDedupeContainmentOfShorterTopic(t *testing.T) {
	t.Parallel()

	// Overlap covers all of the shorter topic even though it is a small
	// fraction of the longer one.
	got := Dedupe(candidatesFor("Customer Success Tools Platform Review", "Customer Success"))

	assert.Equal(t, []string{"Customer Success Tools Platform Review"}, topicsOf(got))
}

func TestDedupeUnrelatedTopicsKept(t *testing.T) {
	t.Parallel()

	got := Dedupe(candidatesFor("Framer Templates", "Figma Plugins", "Serverless Billing"))

	assert.Len(t, got, 3)
}

func TestDedupeEmptyTopicsNeverMatch(t *testing.T) {
	t.Parallel()

	got := Dedupe(candidatesFor("", ""))

	assert.Len(t, got, 2)
}

func TestDedupeIdempotent(t *testing.T) {
	t.Parallel()

	input := candidatesFor("AI SaaS Tools", "AI SaaS Tooling", "Framer Templates", "Framer Template Packs")

	once := Dedupe(input)
	twice := Dedupe(once)

	assert.Equal(t, once, twice)
}
