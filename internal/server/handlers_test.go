package server

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ObiBat/craefto-automation/internal/config"
	"github.com/ObiBat/craefto-automation/internal/domain"
	"github.com/ObiBat/craefto-automation/internal/ports"
	"github.com/ObiBat/craefto-automation/internal/quality"
	"github.com/ObiBat/craefto-automation/internal/research"
	"github.com/ObiBat/craefto-automation/internal/usecase"
)

type fixedSource struct {
	out []domain.TopicCandidate
}

func (f fixedSource) Name() string { return "fixed" }

func (f fixedSource) Fetch(ctx context.Context) ([]domain.TopicCandidate, error) {
	return f.out, nil
}

func testRouter(t *testing.T, sources ...ports.TopicSource) http.Handler {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	pick := func(int) int { return 0 }

	pipeline := research.NewPipeline(research.DefaultConfig(), sources, pick, logger)
	researchUC := usecase.NewResearch(usecase.ResearchDeps{Pipeline: pipeline, Logger: logger})
	checker := quality.NewChecker(quality.DefaultConfig())
	competitor := research.NewCompetitorAnalyzer(research.DefaultConfig(), nil, logger)

	srv := NewServer(config.ServerConfig{Addr: ":0", CorsOrigins: []string{"*"}},
		researchUC, competitor, checker, logger)
	return srv.router
}

func TestHealthEndpoint(t *testing.T) {
	t.Parallel()

	router := testRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["status"] != "ok" {
		t.Fatalf("unexpected status: %q", body["status"])
	}
}

func TestRunResearchEndpoint(t *testing.T) {
	t.Parallel()

	router := testRouter(t, fixedSource{out: []domain.TopicCandidate{
		{Topic: "Framer Templates", RawScore: 90, Source: domain.SourceForum},
	}})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/research/run", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var run domain.ResearchRun
	if err := json.Unmarshal(rec.Body.Bytes(), &run); err != nil {
		t.Fatalf("decode run: %v", err)
	}
	if run.Status != domain.StatusCompleted {
		t.Fatalf("unexpected status: %s", run.Status)
	}
	if len(run.Result.Topics) != 1 {
		t.Fatalf("expected 1 topic, got %d", len(run.Result.Topics))
	}
	if len(run.Result.Ideas) == 0 {
		t.Fatal("expected ideas in run result")
	}
}

func TestLatestResearchWithoutPersistence(t *testing.T) {
	t.Parallel()

	router := testRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/research/latest", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestAnalyzeCompetitorRejectsMissingURL(t *testing.T) {
	t.Parallel()

	router := testRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/research/competitor", strings.NewReader(`{}`))
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestQualityCheckEndpoint(t *testing.T) {
	t.Parallel()

	router := testRouter(t)

	body := `{"content":{"blog":"Premium crafted SaaS copy for your product growth.\nCheck out the free download now."}}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/quality/check", strings.NewReader(body))
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var assessment quality.Assessment
	if err := json.Unmarshal(rec.Body.Bytes(), &assessment); err != nil {
		t.Fatalf("decode assessment: %v", err)
	}
	if assessment.OverallScore <= 0 {
		t.Fatalf("expected positive overall score, got %v", assessment.OverallScore)
	}
	if assessment.ApprovalStatus == "" {
		t.Fatal("expected an approval status")
	}
}

func TestQualityCheckRejectsEmptyBody(t *testing.T) {
	t.Parallel()

	router := testRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/quality/check", strings.NewReader(`{"content":{}}`))
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
