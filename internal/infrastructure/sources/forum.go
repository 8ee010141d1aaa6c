package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/ObiBat/craefto-automation/internal/domain"
	"github.com/ObiBat/craefto-automation/internal/research"
)

const (
	defaultForumBaseURL = "https://www.reddit.com"
	defaultForumBoard   = "SaaS"
	forumFetchLimit     = 25
	forumMaxCandidates  = 10
	// forumFreshness drops posts older than this window.
	forumFreshness = 48 * time.Hour
)

// Forum pulls hot discussion posts from a Reddit-style JSON API and turns
// them into topic candidates. Vote score divided by 10 becomes the raw score.
type Forum struct {
	cfg     research.Config
	client  *http.Client
	baseURL string
	board   string
	now     func() time.Time
	logger  *slog.Logger
}

type forumPost struct {
	Title      string  `json:"title"`
	SelfText   string  `json:"selftext"`
	Score      float64 `json:"score"`
	CreatedUTC float64 `json:"created_utc"`
	Stickied   bool    `json:"stickied"`
}

type forumResponse struct {
	Data struct {
		Children []struct {
			Data forumPost `json:"data"`
		} `json:"children"`
	} `json:"data"`
}

// NewForum wires the adapter; empty baseURL/board and nil client get defaults.
func NewForum(cfg research.Config, client *http.Client, baseURL, board string, logger *slog.Logger) *Forum {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	if baseURL == "" {
		baseURL = defaultForumBaseURL
	}
	if board == "" {
		board = defaultForumBoard
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Forum{
		cfg:     cfg,
		client:  client,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		board:   board,
		now:     time.Now,
		logger:  logger,
	}
}

// Name identifies the adapter's provenance tag.
func (f *Forum) Name() string { return string(domain.SourceForum) }

// Fetch returns up to 10 fresh, non-stickied posts as candidates.
func (f *Forum) Fetch(ctx context.Context) ([]domain.TopicCandidate, error) {
	url := fmt.Sprintf("%s/r/%s/hot.json?limit=%d", f.baseURL, f.board, forumFetchLimit)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", "craefto-automation/1.0")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request forum feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("forum returned %s", resp.Status)
	}

	var feed forumResponse
	if err := json.NewDecoder(resp.Body).Decode(&feed); err != nil {
		return nil, fmt.Errorf("decode forum feed: %w", err)
	}

	candidates := make([]domain.TopicCandidate, 0, forumMaxCandidates)
	for _, child := range feed.Data.Children {
		post := child.Data
		if post.Stickied {
			continue
		}

		created := time.Unix(int64(post.CreatedUTC), 0)
		if f.now().Sub(created) > forumFreshness {
			continue
		}

		topic := f.cfg.Normalize(post.Title)
		if len(topic) <= 3 {
			continue
		}

		excerpt := strings.TrimSpace(post.Title + ". " + snippet(post.SelfText, 200))
		candidates = append(candidates, domain.TopicCandidate{
			Topic:        topic,
			RawScore:     math.Min(post.Score/10, 100),
			Source:       domain.SourceForum,
			Context:      excerpt,
			ContentAngle: f.cfg.Angle(topic),
		})

		if len(candidates) == forumMaxCandidates {
			break
		}
	}

	f.logger.Debug("forum fetch done", "posts", len(feed.Data.Children), "candidates", len(candidates))
	return candidates, nil
}

func snippet(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
