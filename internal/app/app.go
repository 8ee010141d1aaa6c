package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/ObiBat/craefto-automation/internal/config"
	"github.com/ObiBat/craefto-automation/internal/infrastructure/llm"
	"github.com/ObiBat/craefto-automation/internal/infrastructure/scheduler"
	"github.com/ObiBat/craefto-automation/internal/infrastructure/sources"
	"github.com/ObiBat/craefto-automation/internal/infrastructure/storage"
	"github.com/ObiBat/craefto-automation/internal/infrastructure/webhook"
	"github.com/ObiBat/craefto-automation/internal/ports"
	"github.com/ObiBat/craefto-automation/internal/quality"
	"github.com/ObiBat/craefto-automation/internal/research"
	"github.com/ObiBat/craefto-automation/internal/server"
	"github.com/ObiBat/craefto-automation/internal/usecase"
)

// Application wires configuration to use cases and lifecycle orchestration.
type Application struct {
	cfg       config.Config
	logger    *slog.Logger
	server    *server.Server
	scheduler *usecase.Scheduler
	db        *sql.DB
}

// New builds a runnable application instance.
func New(cfg config.Config, logger *slog.Logger) (*Application, error) {
	pipelineCfg := cfg.Research.Pipeline()
	httpClient := &http.Client{Timeout: 30 * time.Second}

	var topicSources []ports.TopicSource
	if cfg.Sources.Forum.Enabled {
		topicSources = append(topicSources, sources.NewForum(pipelineCfg, httpClient,
			cfg.Sources.Forum.BaseURL, cfg.Sources.Forum.Board,
			logger.With("component", "source.forum")))
	}
	if cfg.Sources.LaunchBoard.Enabled {
		topicSources = append(topicSources, sources.NewLaunchBoard(pipelineCfg, httpClient,
			cfg.Sources.LaunchBoard.URL, logger.With("component", "source.launch_board")))
	}
	if cfg.Sources.SocialTrends.Enabled {
		topicSources = append(topicSources, sources.NewSocialTrends(pipelineCfg, nil,
			logger.With("component", "source.trend_proxy_social")))
	}
	if cfg.Sources.SearchTrends.Enabled {
		topicSources = append(topicSources, sources.NewSearchTrends(pipelineCfg,
			logger.With("component", "source.trend_proxy_search")))
	}

	pipeline := research.NewPipeline(pipelineCfg, topicSources, nil,
		logger.With("component", "pipeline"))

	var db *sql.DB
	var repository ports.ResearchRepository
	if cfg.Database.DSN != "" {
		var err error
		db, err = sql.Open("postgres", cfg.Database.DSN)
		if err != nil {
			return nil, fmt.Errorf("open database: %w", err)
		}
		repository = storage.NewPostgresRepository(db)
	}

	var notifier ports.Notifier
	if cfg.Webhook.URL != "" {
		notifier = webhook.NewNotifier(cfg.Webhook.URL)
	}

	var chatClient ports.ChatClient
	if cfg.ChatGPT.APIKey != "" {
		chatClient = llm.NewChatGPTClient(cfg.ChatGPT)
	}

	researchUC := usecase.NewResearch(usecase.ResearchDeps{
		Pipeline:   pipeline,
		Repository: repository,
		Notifier:   notifier,
		ChatClient: chatClient,
		Logger:     logger.With("component", "research"),
	})

	var researchScheduler *usecase.Scheduler
	if cfg.Scheduler.Enabled {
		driver := scheduler.NewIntervalScheduler(cfg.Scheduler.Every())
		researchScheduler = usecase.NewScheduler(driver, researchUC)
	}

	competitor := research.NewCompetitorAnalyzer(pipelineCfg, httpClient,
		logger.With("component", "competitor"))
	checker := quality.NewChecker(quality.DefaultConfig())

	httpServer := server.NewServer(cfg.Server, researchUC, competitor, checker,
		logger.With("component", "server"))

	return &Application{
		cfg:       cfg,
		logger:    logger,
		server:    httpServer,
		scheduler: researchScheduler,
		db:        db,
	}, nil
}

// Run starts the scheduler and HTTP server; it blocks until the context is
// cancelled or the server fails.
func (a *Application) Run(ctx context.Context) error {
	if a.scheduler != nil {
		if err := a.scheduler.Start(ctx); err != nil {
			return fmt.Errorf("start scheduler: %w", err)
		}
		defer func() { _ = a.scheduler.Stop(context.Background()) }()
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- a.server.ListenAndServe()
	}()
	a.logger.Info("http server listening", "addr", a.cfg.Server.Addr)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return a.server.Shutdown(shutdownCtx)
	}
}

// Close releases held resources.
func (a *Application) Close() error {
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}
