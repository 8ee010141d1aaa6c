package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/ObiBat/craefto-automation/internal/domain"
	"github.com/ObiBat/craefto-automation/internal/ports"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// PostgresRepository persists research runs, their scored topics, and the
// synthesized ideas into Postgres.
type PostgresRepository struct {
	db *sql.DB
}

var _ ports.ResearchRepository = (*PostgresRepository)(nil)

// NewPostgresRepository wires a sql.DB implementation.
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// SaveRun writes the run snapshot in one transaction.
func (r *PostgresRepository) SaveRun(ctx context.Context, run domain.ResearchRun) error {
	if r.db == nil {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = psql.Insert("research_runs").
		Columns("id", "status", "started_at", "finished_at").
		Values(run.ID, run.Status, run.StartedAt, run.FinishedAt).
		RunWith(tx).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	if len(run.Result.Topics) > 0 {
		insert := psql.Insert("scored_topics").
			Columns("run_id", "position", "topic", "raw_score", "source",
				"context", "content_angle", "relevance_score", "craefto_boost")
		for i, t := range run.Result.Topics {
			insert = insert.Values(run.ID, i, t.Topic, t.RawScore, t.Source,
				t.Context, t.ContentAngle, t.RelevanceScore, t.CraeftoBoost)
		}
		if _, err := insert.RunWith(tx).ExecContext(ctx); err != nil {
			return fmt.Errorf("insert topics: %w", err)
		}
	}

	if len(run.Result.Ideas) > 0 {
		insert := psql.Insert("content_ideas").
			Columns("run_id", "position", "idea_id", "title", "topic", "format",
				"content_angle", "source_trend", "priority_score", "context",
				"estimated_engagement", "target_audience", "content_pillars",
				"seo_keywords", "call_to_action", "generated_at")
		for i, idea := range run.Result.Ideas {
			insert = insert.Values(run.ID, i, idea.ID, idea.Title, idea.Topic,
				idea.Format, idea.ContentAngle, idea.SourceTrend,
				idea.PriorityScore, idea.Context, idea.EstimatedEngagement,
				pq.Array(idea.TargetAudience), pq.Array(idea.ContentPillars),
				pq.Array(idea.SEOKeywords), idea.CallToAction, idea.GeneratedAt)
		}
		if _, err := insert.RunWith(tx).ExecContext(ctx); err != nil {
			return fmt.Errorf("insert ideas: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit run: %w", err)
	}
	return nil
}

// LatestRun loads the most recent run with its topics and ideas, or nil when
// nothing has been persisted yet.
func (r *PostgresRepository) LatestRun(ctx context.Context) (*domain.ResearchRun, error) {
	if r.db == nil {
		return nil, nil
	}

	var run domain.ResearchRun
	err := psql.Select("id", "status", "started_at", "finished_at").
		From("research_runs").
		OrderBy("started_at DESC").
		Limit(1).
		RunWith(r.db).
		QueryRowContext(ctx).
		Scan(&run.ID, &run.Status, &run.StartedAt, &run.FinishedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query latest run: %w", err)
	}

	run.Result.Topics, err = r.loadTopics(ctx, run.ID)
	if err != nil {
		return nil, err
	}
	run.Result.Ideas, err = r.loadIdeas(ctx, run.ID)
	if err != nil {
		return nil, err
	}

	return &run, nil
}

func (r *PostgresRepository) loadTopics(ctx context.Context, runID string) ([]domain.ScoredTopic, error) {
	rows, err := psql.Select("topic", "raw_score", "source", "context",
		"content_angle", "relevance_score", "craefto_boost").
		From("scored_topics").
		Where(sq.Eq{"run_id": runID}).
		OrderBy("position").
		RunWith(r.db).
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("query topics: %w", err)
	}
	defer rows.Close()

	var topics []domain.ScoredTopic
	for rows.Next() {
		var t domain.ScoredTopic
		if err := rows.Scan(&t.Topic, &t.RawScore, &t.Source, &t.Context,
			&t.ContentAngle, &t.RelevanceScore, &t.CraeftoBoost); err != nil {
			return nil, fmt.Errorf("scan topic: %w", err)
		}
		topics = append(topics, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("topics iteration: %w", err)
	}
	return topics, nil
}

func (r *PostgresRepository) loadIdeas(ctx context.Context, runID string) ([]domain.ContentIdea, error) {
	rows, err := psql.Select("idea_id", "title", "topic", "format",
		"content_angle", "source_trend", "priority_score", "context",
		"estimated_engagement", "target_audience", "content_pillars",
		"seo_keywords", "call_to_action", "generated_at").
		From("content_ideas").
		Where(sq.Eq{"run_id": runID}).
		OrderBy("position").
		RunWith(r.db).
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("query ideas: %w", err)
	}
	defer rows.Close()

	var ideas []domain.ContentIdea
	for rows.Next() {
		var idea domain.ContentIdea
		if err := rows.Scan(&idea.ID, &idea.Title, &idea.Topic, &idea.Format,
			&idea.ContentAngle, &idea.SourceTrend, &idea.PriorityScore,
			&idea.Context, &idea.EstimatedEngagement,
			pq.Array(&idea.TargetAudience), pq.Array(&idea.ContentPillars),
			pq.Array(&idea.SEOKeywords), &idea.CallToAction, &idea.GeneratedAt); err != nil {
			return nil, fmt.Errorf("scan idea: %w", err)
		}
		ideas = append(ideas, idea)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ideas iteration: %w", err)
	}
	return ideas, nil
}
