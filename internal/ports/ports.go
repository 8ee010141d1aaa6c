package ports

import (
	"context"
	"time"

	"github.com/ObiBat/craefto-automation/internal/domain"
)

// TopicSource pulls raw topic candidates from one external source. Fetch may
// return an error; the pipeline treats that as an empty contribution and
// never fails the run over it.
type TopicSource interface {
	Name() string
	Fetch(ctx context.Context) ([]domain.TopicCandidate, error)
}

// ResearchRepository persists pipeline runs for history and the HTTP API.
type ResearchRepository interface {
	SaveRun(ctx context.Context, run domain.ResearchRun) error
	LatestRun(ctx context.Context) (*domain.ResearchRun, error)
}

// Notifier hands the idea digest to downstream automation (Make.com-style
// webhooks or other channels).
type Notifier interface {
	PublishDigest(ctx context.Context, run domain.ResearchRun) error
}

// ChatClient pushes structured content briefs to LLM APIs for drafting.
type ChatClient interface {
	SendBrief(ctx context.Context, payload []byte) error
}

// Scheduler controls when research runs execute.
type Scheduler interface {
	Start(ctx context.Context, job func(time.Time)) error
	Stop(ctx context.Context) error
}
