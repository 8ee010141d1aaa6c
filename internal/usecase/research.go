package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ObiBat/craefto-automation/internal/domain"
	"github.com/ObiBat/craefto-automation/internal/ports"
	"github.com/ObiBat/craefto-automation/internal/research"
)

// ResearchDeps wires all driven adapters into the research workflow.
type ResearchDeps struct {
	Pipeline   *research.Pipeline
	Repository ports.ResearchRepository
	Notifier   ports.Notifier
	ChatClient ports.ChatClient
	Logger     *slog.Logger
}

// Research implements the run-persist-handoff workflow around the pipeline.
type Research struct {
	pipeline   *research.Pipeline
	repository ports.ResearchRepository
	notifier   ports.Notifier
	chatClient ports.ChatClient
	logger     *slog.Logger
}

// NewResearch constructs the orchestration component.
func NewResearch(deps ResearchDeps) *Research {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Research{
		pipeline:   deps.Pipeline,
		repository: deps.Repository,
		notifier:   deps.Notifier,
		chatClient: deps.ChatClient,
		logger:     logger,
	}
}

// RunOnce executes one research pass, persists the snapshot, and hands the
// ideas to downstream automation. The pipeline itself cannot fail; only the
// persistence and hand-off steps surface errors.
func (u *Research) RunOnce(ctx context.Context) (domain.ResearchRun, error) {
	run := domain.ResearchRun{
		ID:        uuid.New().String(),
		Status:    domain.StatusRunning,
		StartedAt: time.Now().UTC(),
	}

	if u.pipeline == nil {
		return run, fmt.Errorf("research pipeline is not configured")
	}

	run.Result = u.pipeline.Run(ctx)
	run.Status = domain.StatusCompleted
	run.FinishedAt = time.Now().UTC()

	if u.repository != nil {
		if err := u.repository.SaveRun(ctx, run); err != nil {
			return run, fmt.Errorf("persist run %s: %w", run.ID, err)
		}
	}

	if len(run.Result.Ideas) == 0 {
		u.logger.Info("run produced no ideas, skipping hand-off", "run_id", run.ID)
		return run, nil
	}

	if u.notifier != nil {
		if err := u.notifier.PublishDigest(ctx, run); err != nil {
			return run, fmt.Errorf("publish digest for run %s: %w", run.ID, err)
		}
	}

	if u.chatClient != nil {
		payload, err := buildBriefJSON(run)
		if err != nil {
			return run, fmt.Errorf("build content brief: %w", err)
		}
		if err := u.chatClient.SendBrief(ctx, payload); err != nil {
			return run, fmt.Errorf("send brief for run %s: %w", run.ID, err)
		}
	}

	return run, nil
}

// Latest returns the most recently persisted run, or nil without persistence.
func (u *Research) Latest(ctx context.Context) (*domain.ResearchRun, error) {
	if u.repository == nil {
		return nil, nil
	}
	return u.repository.LatestRun(ctx)
}

func buildBriefJSON(run domain.ResearchRun) ([]byte, error) {
	type item struct {
		ID           string   `json:"id"`
		Title        string   `json:"title"`
		Topic        string   `json:"topic"`
		Format       string   `json:"format"`
		ContentAngle string   `json:"content_angle"`
		SEOKeywords  []string `json:"seo_keywords"`
		CallToAction string   `json:"call_to_action"`
	}

	payload := make([]item, 0, len(run.Result.Ideas))
	for _, idea := range run.Result.Ideas {
		payload = append(payload, item{
			ID:           idea.ID,
			Title:        idea.Title,
			Topic:        idea.Topic,
			Format:       string(idea.Format),
			ContentAngle: idea.ContentAngle,
			SEOKeywords:  idea.SEOKeywords,
			CallToAction: idea.CallToAction,
		})
	}

	return json.Marshal(payload)
}
