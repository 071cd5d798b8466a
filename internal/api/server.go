package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"letterqa/internal/config"
	"letterqa/internal/models"
	"letterqa/internal/rag"

	"go.temporal.io/api/serviceerror"
)

// AnswerService produces grounded answers with their verification block.
type AnswerService interface {
	Answer(ctx context.Context, question string, limit int) (rag.Result, error)
}

// StatusStore exposes the probes behind /api/status.
type StatusStore interface {
	Ping(ctx context.Context) error
	CountDocuments(ctx context.Context) (int64, error)
	CountChunks(ctx context.Context) (int64, error)
}

// IngestStarter kicks off an ingestion run and reports its identifiers.
type IngestStarter interface {
	StartIngest(ctx context.Context) (workflowID, runID string, err error)
}

type Server struct {
	cfg       config.Config
	store     StatusStore
	retriever rag.ChunkRetriever
	answers   AnswerService
	starter   IngestStarter
	memory    *rag.Memory
}

// NewServer wires explicitly-constructed collaborators; it owns none of
// them, so tests can substitute fakes and main owns shutdown.
func NewServer(cfg config.Config, store StatusStore, retriever rag.ChunkRetriever, answers AnswerService, starter IngestStarter) *Server {
	return &Server{
		cfg:       cfg,
		store:     store,
		retriever: retriever,
		answers:   answers,
		starter:   starter,
		memory:    rag.NewMemory(),
	}
}

func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/status", s.handleStatus)
	mux.HandleFunc("/api/retrieve", s.handleRetrieve)
	mux.HandleFunc("/api/query", s.handleQuery)
	mux.HandleFunc("/api/ingest", s.handleIngest)
	return withCORS(mux)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "letterqa",
	})
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeErr(w, http.StatusMethodNotAllowed, fmt.Errorf("method not allowed"))
		return
	}
	if err := s.store.Ping(r.Context()); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"status":   "error",
			"message":  err.Error(),
			"database": map[string]any{"connected": false, "ready": false},
		})
		return
	}
	totalDocs, err := s.store.CountDocuments(r.Context())
	if err != nil {
		writeErr(w, http.StatusInternalServerError, err)
		return
	}
	totalChunks, err := s.store.CountChunks(r.Context())
	if err != nil {
		writeErr(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"database": map[string]any{
			"connected":      true,
			"totalDocuments": totalDocs,
			"totalChunks":    totalChunks,
			"ready":          totalChunks > 0,
		},
		"environment": map[string]any{
			"embedProvider":  s.cfg.EmbedProvider,
			"llmProvider":    s.cfg.LLMProvider,
			"hasOpenAIKey":   s.cfg.OpenAIKey != "",
			"hasDatabaseUrl": s.cfg.PostgresURL != "",
		},
	})
}

func (s *Server) handleRetrieve(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeErr(w, http.StatusMethodNotAllowed, fmt.Errorf("method not allowed"))
		return
	}
	var req struct {
		Query string `json:"query"`
		Limit int    `json:"limit"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErr(w, http.StatusBadRequest, fmt.Errorf("invalid json: %w", err))
		return
	}
	req.Query = strings.TrimSpace(req.Query)
	if req.Query == "" {
		writeErr(w, http.StatusBadRequest, fmt.Errorf("query is required"))
		return
	}
	if req.Limit <= 0 {
		req.Limit = s.cfg.RetrieveLimit
	}
	chunks, err := s.retriever.Retrieve(r.Context(), req.Query, req.Limit)
	if err != nil {
		writeErr(w, http.StatusInternalServerError, fmt.Errorf("failed to retrieve chunks: %w", err))
		return
	}
	formatted := make([]map[string]any, 0, len(chunks))
	for i, c := range chunks {
		formatted = append(formatted, map[string]any{
			"index":   i + 1,
			"content": c.Content,
			"score":   c.Score,
			"source":  rag.SourceLabel(c),
			"year":    rag.YearLabel(c),
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"query":   req.Query,
		"chunks":  formatted,
		"total":   len(chunks),
	})
}

func (s *Server) handleQuery(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeErr(w, http.StatusMethodNotAllowed, fmt.Errorf("method not allowed"))
		return
	}
	var req struct {
		Question  string `json:"question"`
		Limit     int    `json:"limit"`
		SessionID string `json:"session_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErr(w, http.StatusBadRequest, fmt.Errorf("invalid json: %w", err))
		return
	}
	req.Question = strings.TrimSpace(req.Question)
	if req.Question == "" {
		writeErr(w, http.StatusBadRequest, fmt.Errorf("question is required"))
		return
	}
	if req.Limit <= 0 {
		req.Limit = s.cfg.RetrieveLimit
	}
	result, err := s.answers.Answer(r.Context(), req.Question, req.Limit)
	if err != nil {
		writeErr(w, http.StatusInternalServerError, fmt.Errorf("failed to process query: %w", err))
		return
	}
	// A request without a session gets a fresh one, so follow-up questions
	// can carry the returned id to keep one conversation thread.
	if req.SessionID == "" {
		req.SessionID = s.memory.NewSession()
	}
	_ = s.memory.Append(req.SessionID, rag.RoleUser, req.Question)
	_ = s.memory.Append(req.SessionID, rag.RoleAssistant, result.Answer)
	writeJSON(w, http.StatusOK, map[string]any{
		"success":         true,
		"question":        result.Question,
		"answer":          result.Answer,
		"ragVerification": result.Verification,
		"sources":         sourcesOf(result.Chunks),
		"session_id":      req.SessionID,
	})
}

func (s *Server) handleIngest(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeErr(w, http.StatusMethodNotAllowed, fmt.Errorf("method not allowed"))
		return
	}
	workflowID, runID, err := s.starter.StartIngest(r.Context())
	if err != nil {
		var already *serviceerror.WorkflowExecutionAlreadyStarted
		if errors.As(err, &already) {
			writeErr(w, http.StatusConflict, fmt.Errorf("an ingestion run is already in progress: %w", err))
			return
		}
		writeErr(w, http.StatusServiceUnavailable, fmt.Errorf("failed to start ingestion: %w", err))
		return
	}
	writeJSON(w, http.StatusAccepted, map[string]any{
		"workflow_id": workflowID,
		"run_id":      runID,
	})
}

func sourcesOf(chunks []models.RetrievedChunk) []map[string]any {
	out := make([]map[string]any, 0, len(chunks))
	for _, c := range chunks {
		out = append(out, map[string]any{
			"source": rag.SourceLabel(c),
			"year":   rag.YearLabel(c),
			"score":  c.Score,
		})
	}
	return out
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, code int, err error) {
	writeJSON(w, code, map[string]any{
		"success": false,
		"error":   http.StatusText(code),
		"message": err.Error(),
	})
}

func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
