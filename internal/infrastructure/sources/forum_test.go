package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ObiBat/craefto-automation/internal/domain"
	"github.com/ObiBat/craefto-automation/internal/research"
)

func forumFeed(posts ...forumPost) string {
	children := make([]map[string]forumPost, 0, len(posts))
	for _, p := range posts {
		children = append(children, map[string]forumPost{"data": p})
	}
	raw, _ := json.Marshal(map[string]any{
		"data": map[string]any{"children": children},
	})
	return string(raw)
}

func TestForumFetch(t *testing.T) {
	t.Parallel()

	now := time.Now()
	body := forumFeed(
		forumPost{
			Title:      "Best automation workflows for SaaS founders",
			SelfText:   "We compared five setups and these won.",
			Score:      420,
			CreatedUTC: float64(now.Add(-time.Hour).Unix()),
		},
		forumPost{
			Title:      "Weekly promo thread",
			Score:      900,
			CreatedUTC: float64(now.Add(-time.Hour).Unix()),
			Stickied:   true,
		},
		forumPost{
			Title:      "Old discussion about churn metrics",
			Score:      300,
			CreatedUTC: float64(now.Add(-72 * time.Hour).Unix()),
		},
	)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/r/SaaS/hot.json" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if r.URL.Query().Get("limit") != "25" {
			t.Errorf("unexpected limit: %s", r.URL.Query().Get("limit"))
		}
		if ua := r.Header.Get("User-Agent"); !strings.HasPrefix(ua, "craefto-automation/") {
			t.Errorf("unexpected user agent: %s", ua)
		}
		fmt.Fprint(w, body)
	}))
	defer srv.Close()

	forum := NewForum(research.DefaultConfig(), srv.Client(), srv.URL, "SaaS", nil)

	got, err := forum.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch returned error: %v", err)
	}

	if len(got) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(got))
	}
	if got[0].Topic != "Best Automation Workflows" {
		t.Fatalf("unexpected topic: %s", got[0].Topic)
	}
	if got[0].RawScore != 42 {
		t.Fatalf("unexpected raw score: %v", got[0].RawScore)
	}
	if got[0].Source != domain.SourceForum {
		t.Fatalf("unexpected source: %s", got[0].Source)
	}
	if !strings.HasPrefix(got[0].Context, "Best automation workflows for SaaS founders. ") {
		t.Fatalf("unexpected context: %s", got[0].Context)
	}
}

func TestForumFetchCapsCandidates(t *testing.T) {
	t.Parallel()

	now := time.Now()
	var posts []forumPost
	for i := 0; i < 15; i++ {
		posts = append(posts, forumPost{
			Title:      fmt.Sprintf("Automation platform review number %d", i),
			Score:      float64(100 + i),
			CreatedUTC: float64(now.Add(-time.Hour).Unix()),
		})
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, forumFeed(posts...))
	}))
	defer srv.Close()

	forum := NewForum(research.DefaultConfig(), srv.Client(), srv.URL, "SaaS", nil)

	got, err := forum.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch returned error: %v", err)
	}
	if len(got) != forumMaxCandidates {
		t.Fatalf("expected %d candidates, got %d", forumMaxCandidates, len(got))
	}
}

func TestForumFetchUpstreamError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "too many requests", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	forum := NewForum(research.DefaultConfig(), srv.Client(), srv.URL, "SaaS", nil)

	if _, err := forum.Fetch(context.Background()); err == nil {
		t.Fatal("expected error for non-200 response")
	}
}
