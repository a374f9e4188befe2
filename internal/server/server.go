// Package server exposes the analyzer, assistant, and history store over a
// small JSON HTTP API.
package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/fitscope/fitscope/internal/ai"
	"github.com/fitscope/fitscope/internal/analysis"
	"github.com/fitscope/fitscope/internal/assistant"
	"github.com/fitscope/fitscope/internal/history"
	"github.com/fitscope/fitscope/internal/utils"
)

const maxRequestBody = 1 << 20 // 1 MiB

// Server routes API requests to the underlying services. History is optional;
// without it analyses are served but not persisted.
type Server struct {
	analyzer  *analysis.Analyzer
	assistant *assistant.Assistant
	history   *history.Store
	logger    *zap.Logger
}

func New(analyzer *analysis.Analyzer, asst *assistant.Assistant, hist *history.Store, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		analyzer:  analyzer,
		assistant: asst,
		history:   hist,
		logger:    logger,
	}
}

func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/api/v1/analysis", s.handleAnalysis)
	mux.HandleFunc("/api/v1/assistant", s.handleAssistant)
	mux.HandleFunc("/api/v1/history", s.handleHistory)
	return mux
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type analysisRequest struct {
	JDText      string `json:"jdText"`
	CustomFocus string `json:"customFocus"`
}

func (s *Server) handleAnalysis(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req analysisRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	jdText := utils.StripNonPrintable(req.JDText)
	if strings.TrimSpace(jdText) == "" {
		writeError(w, http.StatusBadRequest, "jdText is required")
		return
	}

	result, err := s.analyzer.Analyze(r.Context(), jdText, utils.StripNonPrintable(req.CustomFocus))
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	if s.history != nil {
		if _, err := s.history.Save(jdText, result); err != nil {
			s.logger.Warn("failed to persist analysis", zap.Error(err))
		}
	}

	writeJSON(w, http.StatusOK, result)
}

type assistantRequest struct {
	Question string `json:"question"`
	Section  string `json:"section"`
}

func (s *Server) handleAssistant(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req assistantRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	question := utils.StripNonPrintable(req.Question)
	if strings.TrimSpace(question) == "" {
		writeError(w, http.StatusBadRequest, "question is required")
		return
	}

	reply, err := s.assistant.Ask(r.Context(), question, utils.StripNonPrintable(req.Section))
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, reply)
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	if s.history == nil {
		writeError(w, http.StatusNotFound, "history is not enabled")
		return
	}

	limit := 20
	if v := r.URL.Query().Get("limit"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed <= 0 {
			writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = parsed
	}
	if limit > 200 {
		limit = 200
	}

	entries, err := s.history.ListRecent(limit)
	if err != nil {
		s.logger.Error("failed to list history", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to list history")
		return
	}
	if entries == nil {
		entries = []history.Entry{}
	}

	writeJSON(w, http.StatusOK, map[string]any{"entries": entries})
}

// writeServiceError maps analysis/assistant failures onto status codes:
// upstream outages are 503, unusable model output is 502, anything else is
// treated as a bad request.
func (s *Server) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ai.ErrUnavailable):
		s.logger.Error("generation service unavailable", zap.Error(err))
		writeError(w, http.StatusServiceUnavailable, "generation service unavailable")
	case errors.Is(err, ai.ErrMalformedResponse), errors.Is(err, ai.ErrInvalidExtraction):
		s.logger.Error("unusable generation response", zap.Error(err))
		writeError(w, http.StatusBadGateway, "generation service returned an unusable response")
	default:
		writeError(w, http.StatusBadRequest, err.Error())
	}
}

func decodeBody(r *http.Request, dst any) error {
	return json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxRequestBody)).Decode(dst)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
