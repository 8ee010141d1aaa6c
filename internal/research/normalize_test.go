package research

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "prefers window with tech keyword",
			raw:  "Best new automation workflows today",
			want: "Best New Automation",
		},
		{
			name: "drops stop words and short tokens",
			raw:  "The Future of AI in SaaS Product Design",
			want: "Future Saas Product",
		},
		{
			name: "falls back to first three meaningful words",
			raw:  "quick brown foxes jumping high",
			want: "Quick Brown Foxes",
		},
		{
			name: "single meaningful token",
			raw:  "Innovation",
			want: "Innovation",
		},
		{
			name: "empty input stays empty",
			raw:  "",
			want: "",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, cfg.Normalize(tt.raw))
		})
	}
}

func TestNormalizeDeterministic(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	raw := "Why SaaS onboarding flows fail and how design fixes them"

	first := cfg.Normalize(raw)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, cfg.Normalize(raw))
	}
}

func TestNormalizePunctuationOnlyFallsBackToPrefix(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	raw := strings.Repeat("?!", 40)

	got := cfg.Normalize(raw)
	assert.Equal(t, raw[:50], got)
}

func TestNormalizeMultibyteFallbackStaysValidUTF8(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	raw := strings.Repeat("→", 60)

	got := cfg.Normalize(raw)
	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, 50, utf8.RuneCountInString(got))
	assert.Equal(t, strings.Repeat("→", 50), got)
}

func TestCraeftoRelevance(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()

	assert.InDelta(t, 3.0/16.0, cfg.CraeftoRelevance("framer design templates"), 1e-9)
	assert.Zero(t, cfg.CraeftoRelevance("quarterly revenue report"))
	assert.LessOrEqual(t, cfg.CraeftoRelevance(strings.Join(cfg.CraeftoKeywords, " ")), 1.0)
}

func TestAngleSelection(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()

	assert.Equal(t, "SaaS design breakdown", cfg.Angle("Design systems"))
	assert.Equal(t, "Framer template showcase", cfg.Angle("Framer Templates"))
	assert.Equal(t, "CRO optimization tips", cfg.Angle("Conversion rate tactics"))
	// No bucket trigger falls through to the first configured angle.
	assert.Equal(t, cfg.ContentAngles[0], cfg.Angle("Quarterly Revenue"))
}
