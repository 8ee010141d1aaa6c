package server

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/ObiBat/craefto-automation/internal/quality"
	"github.com/ObiBat/craefto-automation/internal/research"
	"github.com/ObiBat/craefto-automation/internal/usecase"
)

type handler struct {
	research   *usecase.Research
	competitor *research.CompetitorAnalyzer
	checker    *quality.Checker
	logger     *slog.Logger
}

func newHandler(
	researchUC *usecase.Research,
	competitor *research.CompetitorAnalyzer,
	checker *quality.Checker,
	logger *slog.Logger,
) *handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &handler{
		research:   researchUC,
		competitor: competitor,
		checker:    checker,
		logger:     logger,
	}
}

// Health reports liveness.
func (h *handler) Health(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// RunResearch triggers one pipeline run and returns the full snapshot.
func (h *handler) RunResearch(w http.ResponseWriter, r *http.Request) {
	run, err := h.research.RunOnce(r.Context())
	if err != nil {
		h.logger.Error("research run failed", "error", err)
		respondWithError(w, http.StatusInternalServerError, "research run failed")
		return
	}

	respondWithJSON(w, http.StatusOK, run)
}

// LatestResearch returns the most recently persisted run.
func (h *handler) LatestResearch(w http.ResponseWriter, r *http.Request) {
	run, err := h.research.Latest(r.Context())
	if err != nil {
		h.logger.Error("load latest run failed", "error", err)
		respondWithError(w, http.StatusInternalServerError, "failed to load latest run")
		return
	}
	if run == nil {
		respondWithError(w, http.StatusNotFound, "no research run recorded yet")
		return
	}

	respondWithJSON(w, http.StatusOK, run)
}

// AnalyzeCompetitor scrapes the given competitor page for content gaps.
func (h *handler) AnalyzeCompetitor(w http.ResponseWriter, r *http.Request) {
	if h.competitor == nil {
		respondWithError(w, http.StatusServiceUnavailable, "competitor analysis not configured")
		return
	}

	var req struct {
		URL string `json:"url"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.URL == "" {
		respondWithError(w, http.StatusBadRequest, "body must contain a url field")
		return
	}

	analysis, err := h.competitor.Analyze(r.Context(), req.URL)
	if err != nil {
		h.logger.Error("competitor analysis failed", "url", req.URL, "error", err)
		respondWithError(w, http.StatusBadGateway, "competitor analysis failed")
		return
	}

	respondWithJSON(w, http.StatusOK, analysis)
}

// QualityCheck runs the pre-publish checklist over a content package keyed by
// platform.
func (h *handler) QualityCheck(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Content map[string]string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.Content) == 0 {
		respondWithError(w, http.StatusBadRequest, "body must contain a content map")
		return
	}

	respondWithJSON(w, http.StatusOK, h.checker.PrePublishChecklist(req.Content))
}

func respondWithJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func respondWithError(w http.ResponseWriter, status int, message string) {
	respondWithJSON(w, status, map[string]string{"error": message})
}
