package sources

import (
	"context"
	"math/rand"
	"reflect"
	"testing"

	"github.com/ObiBat/craefto-automation/internal/domain"
	"github.com/ObiBat/craefto-automation/internal/research"
)

func TestSocialTrendsFetch(t *testing.T) {
	t.Parallel()

	src := NewSocialTrends(research.DefaultConfig(), rand.New(rand.NewSource(1)), nil)

	got, err := src.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch returned error: %v", err)
	}

	if len(got) != socialTrendsMax {
		t.Fatalf("expected %d candidates, got %d", socialTrendsMax, len(got))
	}

	for i, cand := range got {
		if cand.Topic != socialTrendTopics[i] {
			t.Fatalf("candidate %d: expected topic %q, got %q", i, socialTrendTopics[i], cand.Topic)
		}
		if cand.Source != domain.SourceTrendSocial {
			t.Fatalf("candidate %d: unexpected source %s", i, cand.Source)
		}
		if cand.RawScore < 0 || cand.RawScore >= 95 {
			t.Fatalf("candidate %d: score %v out of range", i, cand.RawScore)
		}
	}
}

func TestSocialTrendsFetchSeededRepeatable(t *testing.T) {
	t.Parallel()

	cfg := research.DefaultConfig()

	first, err := NewSocialTrends(cfg, rand.New(rand.NewSource(7)), nil).Fetch(context.Background())
	if err != nil {
		t.Fatalf("first Fetch returned error: %v", err)
	}
	second, err := NewSocialTrends(cfg, rand.New(rand.NewSource(7)), nil).Fetch(context.Background())
	if err != nil {
		t.Fatalf("second Fetch returned error: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Fatal("same seed produced different candidates")
	}
}
