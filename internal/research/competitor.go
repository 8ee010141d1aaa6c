package research

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// focusAreas are the craefto editorial beats checked for competitor coverage.
var focusAreas = []string{
	"framer templates",
	"saas design",
	"conversion optimization",
	"ui/ux",
}

// CompetitorAnalysis summarizes what a competitor blog covers and which
// craefto focus areas it leaves open.
type CompetitorAnalysis struct {
	URL           string   `json:"url"`
	ContentTopics []string `json:"content_topics"`
	ContentGaps   []string `json:"content_gaps"`
}

// CompetitorAnalyzer scrapes a competitor blog and extracts its topics using
// the same normalizer the pipeline uses.
type CompetitorAnalyzer struct {
	cfg    Config
	client *http.Client
	logger *slog.Logger
}

// NewCompetitorAnalyzer wires an HTTP client; nil gets a 30s-timeout default.
func NewCompetitorAnalyzer(cfg Config, client *http.Client, logger *slog.Logger) *CompetitorAnalyzer {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &CompetitorAnalyzer{cfg: cfg, client: client, logger: logger}
}

// Analyze fetches the page, pulls up to 10 post titles, and diffs them
// against the craefto focus areas.
func (a *CompetitorAnalyzer) Analyze(ctx context.Context, pageURL string) (CompetitorAnalysis, error) {
	analysis := CompetitorAnalysis{URL: pageURL}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return analysis, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", "craefto-automation/1.0")

	resp, err := a.client.Do(req)
	if err != nil {
		return analysis, fmt.Errorf("fetch competitor page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return analysis, fmt.Errorf("competitor page returned %s", resp.Status)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return analysis, fmt.Errorf("parse competitor page: %w", err)
	}

	var topics []string
	doc.Find("article, [class*=post], [class*=article], [class*=blog]").
		EachWithBreak(func(i int, sel *goquery.Selection) bool {
			if len(topics) >= 10 {
				return false
			}
			title := strings.TrimSpace(sel.Find("h1, h2, h3, h4").First().Text())
			if title == "" {
				return true
			}
			if topic := a.cfg.Normalize(title); topic != "" {
				topics = append(topics, topic)
			}
			return true
		})

	analysis.ContentTopics = topics
	analysis.ContentGaps = contentGaps(topics)

	a.logger.Info("competitor analysis completed",
		"url", pageURL, "topics", len(topics), "gaps", len(analysis.ContentGaps))

	return analysis, nil
}

// contentGaps returns focus areas none of whose words show up in the
// competitor's topics.
func contentGaps(topics []string) []string {
	joined := strings.ToLower(strings.Join(topics, " "))

	var gaps []string
	for _, area := range focusAreas {
		covered := false
		for _, word := range strings.Fields(area) {
			if strings.Contains(joined, word) {
				covered = true
				break
			}
		}
		if !covered {
			gaps = append(gaps, area)
		}
	}
	return gaps
}
