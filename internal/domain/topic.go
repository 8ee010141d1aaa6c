package domain

import "time"

// Source identifies which external source produced a topic candidate.
type Source string

const (
	SourceForum       Source = "forum"
	SourceLaunchBoard Source = "launch_board"
	SourceTrendSocial Source = "trend_proxy_social"
	SourceTrendSearch Source = "trend_proxy_search"
)

// TopicCandidate is the raw output of a single source adapter.
type TopicCandidate struct {
	Topic        string  `json:"topic"`
	RawScore     float64 `json:"raw_score"`
	Source       Source  `json:"source"`
	Context      string  `json:"context"`
	ContentAngle string  `json:"content_angle"`
}

// ScoredTopic is a deduplicated candidate with its composite relevance score.
// CraeftoBoost is the keyword contribution, kept for debugging only.
type ScoredTopic struct {
	TopicCandidate
	RelevanceScore float64 `json:"relevance_score"`
	CraeftoBoost   float64 `json:"craefto_boost"`
}

// ContentFormat enumerates the output formats an idea can target.
type ContentFormat string

const (
	FormatBlog   ContentFormat = "blog"
	FormatSocial ContentFormat = "social"
	FormatEmail  ContentFormat = "email"
)

// ContentIdea is a concrete content proposal derived from a scored topic.
type ContentIdea struct {
	ID                  string        `json:"id"`
	Title               string        `json:"title"`
	Topic               string        `json:"topic"`
	Format              ContentFormat `json:"format"`
	ContentAngle        string        `json:"content_angle"`
	SourceTrend         Source        `json:"source_trend"`
	PriorityScore       float64       `json:"priority_score"`
	Context             string        `json:"context"`
	EstimatedEngagement string        `json:"estimated_engagement"`
	TargetAudience      []string      `json:"target_audience"`
	ContentPillars      []string      `json:"content_pillars"`
	SEOKeywords         []string      `json:"seo_keywords"`
	CallToAction        string        `json:"call_to_action"`
	GeneratedAt         time.Time     `json:"generated_at"`
}

// ResearchResult pairs the ranked topics with the synthesized ideas.
type ResearchResult struct {
	Topics []ScoredTopic `json:"scored_topics"`
	Ideas  []ContentIdea `json:"ideas"`
}

// RunStatus enumerates research run milestones.
type RunStatus string

const (
	StatusRunning   RunStatus = "running"
	StatusCompleted RunStatus = "completed"
)

// ResearchRun is a persisted snapshot of one pipeline execution.
type ResearchRun struct {
	ID         string         `json:"id"`
	Status     RunStatus      `json:"status"`
	StartedAt  time.Time      `json:"started_at"`
	FinishedAt time.Time      `json:"finished_at"`
	Result     ResearchResult `json:"result"`
}
