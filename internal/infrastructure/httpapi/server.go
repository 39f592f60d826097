// Package httpapi serves the assistant over JSON/HTTP for the browser client.
package httpapi

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/rs/cors"

	"github.com/doeshing/vyra-go/internal/domain"
	"github.com/doeshing/vyra-go/internal/ports"
)

// Assistant is the core boundary the transport calls into.
type Assistant interface {
	Health() domain.Health
	Process(ctx context.Context, req domain.ProcessRequest) domain.Response
	ClearHistory(sessionID string) error
	GetHistory(sessionID string) ([]domain.Exchange, error)
}

// Options configure the server.
type Options struct {
	AllowedOrigins []string
	Metrics        http.Handler
}

// Server routes API requests to the assistant.
type Server struct {
	mux       *http.ServeMux
	handler   http.Handler
	assistant Assistant
	logger    ports.Logger
}

type sessionRequest struct {
	SessionID string `json:"session_id"`
}

type processCommandRequest struct {
	Command   string `json:"command"`
	SessionID string `json:"session_id"`
	UseAI     bool   `json:"use_ai"`
}

type clearHistoryResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

type historyResponse struct {
	Success bool              `json:"success"`
	History []domain.Exchange `json:"history"`
	Error   string            `json:"error,omitempty"`
}

type errorResponse struct {
	Response string         `json:"response"`
	Action   *domain.Action `json:"action"`
	Error    string         `json:"error"`
}

// NewServer creates a Server and registers its routes.
func NewServer(assistant Assistant, logger ports.Logger, opts Options) *Server {
	s := &Server{mux: http.NewServeMux(), assistant: assistant, logger: logger}
	s.routes(opts)
	return s
}

func (s *Server) routes(opts Options) {
	s.mux.HandleFunc("GET /api/health", s.handleHealth())
	s.mux.HandleFunc("POST /api/process-command", s.handleProcessCommand())
	s.mux.HandleFunc("POST /api/clear-history", s.handleClearHistory())
	s.mux.HandleFunc("POST /api/history", s.handleHistory())
	if opts.Metrics != nil {
		s.mux.Handle("GET /metrics", opts.Metrics)
	}

	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	c := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Origin", "Content-Type"},
		ExposedHeaders: []string{RequestIDHeader},
	})

	s.handler = s.requestID(s.recoverer(c.Handler(s.mux)))
}

// ServeHTTP implements the http.Handler interface.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

func (s *Server) handleHealth() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		s.writeJSON(w, http.StatusOK, s.assistant.Health())
	}
}

func (s *Server) handleProcessCommand() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req processCommandRequest
		s.decodeLenient(r, &req)

		resp := s.assistant.Process(r.Context(), domain.ProcessRequest{
			Command:   req.Command,
			SessionID: req.SessionID,
			UseAI:     req.UseAI,
		})
		s.writeJSON(w, http.StatusOK, resp)
	}
}

func (s *Server) handleClearHistory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req sessionRequest
		s.decodeLenient(r, &req)

		if err := s.assistant.ClearHistory(req.SessionID); err != nil {
			s.logError(r, "clear history failed", err)
			s.writeJSON(w, http.StatusInternalServerError, clearHistoryResponse{Error: err.Error()})
			return
		}
		s.writeJSON(w, http.StatusOK, clearHistoryResponse{Success: true, Message: "Chat history cleared"})
	}
}

func (s *Server) handleHistory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req sessionRequest
		s.decodeLenient(r, &req)

		history, err := s.assistant.GetHistory(req.SessionID)
		if err != nil {
			s.logError(r, "load history failed", err)
			s.writeJSON(w, http.StatusInternalServerError, historyResponse{History: []domain.Exchange{}, Error: err.Error()})
			return
		}
		s.writeJSON(w, http.StatusOK, historyResponse{Success: true, History: history})
	}
}

// decodeLenient fills target from the body; a missing or malformed body leaves the zero values.
func (s *Server) decodeLenient(r *http.Request, target any) {
	if r.Body == nil {
		return
	}
	if err := json.NewDecoder(io.LimitReader(r.Body, 1<<20)).Decode(target); err != nil && err != io.EOF {
		s.logger.Debug("request body ignored", map[string]interface{}{
			"path":       r.URL.Path,
			"error":      err.Error(),
			"request_id": RequestIDFrom(r.Context()),
		})
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Warn("failed to encode response", map[string]interface{}{"error": err.Error()})
	}
}

func (s *Server) logError(r *http.Request, msg string, err error) {
	s.logger.Error(msg, err, map[string]interface{}{
		"path":       r.URL.Path,
		"request_id": RequestIDFrom(r.Context()),
	})
}
