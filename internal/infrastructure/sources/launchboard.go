package sources

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/ObiBat/craefto-automation/internal/domain"
	"github.com/ObiBat/craefto-automation/internal/research"
)

const (
	defaultLaunchBoardURL   = "https://www.producthunt.com/"
	launchBoardScanLimit    = 15
	launchBoardMax          = 8
	launchBoardMinDensity   = 0.3
	launchBoardMinDescChars = 20
)

// LaunchBoard scrapes a product-launch listing page and keeps entries whose
// text clears a SaaS keyword-density bar. The density itself (scaled to 100)
// is the raw score, since launch boards expose no vote counts in markup.
type LaunchBoard struct {
	cfg     research.Config
	client  *http.Client
	pageURL string
	logger  *slog.Logger
}

// NewLaunchBoard wires the scraper; empty pageURL and nil client get defaults.
func NewLaunchBoard(cfg research.Config, client *http.Client, pageURL string, logger *slog.Logger) *LaunchBoard {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	if pageURL == "" {
		pageURL = defaultLaunchBoardURL
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &LaunchBoard{cfg: cfg, client: client, pageURL: pageURL, logger: logger}
}

// Name identifies the adapter's provenance tag.
func (l *LaunchBoard) Name() string { return string(domain.SourceLaunchBoard) }

// Fetch scrapes the page and returns up to 8 SaaS-relevant launches.
func (l *LaunchBoard) Fetch(ctx context.Context) ([]domain.TopicCandidate, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", "craefto-automation/1.0")

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request launch board: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("launch board returned %s", resp.Status)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse launch board page: %w", err)
	}

	var candidates []domain.TopicCandidate
	scanned := 0
	doc.Find("article, [class*=product], [class*=item]").
		EachWithBreak(func(i int, card *goquery.Selection) bool {
			if scanned >= launchBoardScanLimit || len(candidates) >= launchBoardMax {
				return false
			}
			scanned++

			name := strings.TrimSpace(card.Find("h3, h4, a").First().Text())
			description := firstLongText(card)
			if name == "" || description == "" {
				return true
			}

			combined := name + " " + description
			density := l.cfg.SaaSRelevance(combined)
			if density <= launchBoardMinDensity {
				return true
			}

			topic := l.cfg.Normalize(name + ": " + description)
			if topic == "" {
				topic = name
			}

			candidates = append(candidates, domain.TopicCandidate{
				Topic:        topic,
				RawScore:     density * 100,
				Source:       domain.SourceLaunchBoard,
				Context:      snippet(name+": "+description, 200),
				ContentAngle: l.cfg.Angle(name),
			})
			return true
		})

	l.logger.Debug("launch board fetch done", "scanned", scanned, "candidates", len(candidates))
	return candidates, nil
}

// firstLongText returns the first paragraph-like text long enough to be a
// real product description.
func firstLongText(card *goquery.Selection) string {
	var found string
	card.Find("p, span").EachWithBreak(func(i int, sel *goquery.Selection) bool {
		text := strings.TrimSpace(sel.Text())
		if len(text) >= launchBoardMinDescChars {
			found = text
			return false
		}
		return true
	})
	return found
}
